package blockchain

import (
	"github.com/tradewire/protocol/pkg/blockchain/btc"
	"github.com/tradewire/protocol/pkg/blockchain/eth"
	"github.com/tradewire/protocol/pkg/blockchain/neo"
	"github.com/tradewire/protocol/pkg/errs"
)

// PublicKey is a chain-tagged public key, mirroring Address.
type PublicKey struct {
	chain Blockchain
	btc   btc.PublicKey
	eth   eth.PublicKey
	neo   neo.PublicKey
}

// NewPublicKey parses a hex string using the parser of the selected chain.
func NewPublicKey(chain Blockchain, hexStr string) (PublicKey, error) {
	switch chain {
	case Bitcoin:
		k, err := btc.NewPublicKey(hexStr)
		if err != nil {
			return PublicKey{}, err
		}
		return PublicKey{chain: Bitcoin, btc: k}, nil
	case Ethereum:
		k, err := eth.NewPublicKey(hexStr)
		if err != nil {
			return PublicKey{}, err
		}
		return PublicKey{chain: Ethereum, eth: k}, nil
	case NEO:
		k, err := neo.NewPublicKey(hexStr)
		if err != nil {
			return PublicKey{}, err
		}
		return PublicKey{chain: NEO, neo: k}, nil
	default:
		return PublicKey{}, errs.Errorf("unknown blockchain: %d", chain)
	}
}

// Blockchain returns the chain tag of the key.
func (p PublicKey) Blockchain() Blockchain { return p.chain }

// Hex returns the chain-native hex encoding of the key.
func (p PublicKey) Hex() string {
	switch p.chain {
	case Bitcoin:
		return p.btc.Hex()
	case Ethereum:
		return p.eth.Hex()
	case NEO:
		return p.neo.Hex()
	default:
		return ""
	}
}

// ToAddress derives the chain-appropriate address for the key. Derivation is
// total for Ethereum and NEO; for Bitcoin the hashing step may fail.
func (p PublicKey) ToAddress() (Address, error) {
	switch p.chain {
	case Bitcoin:
		a, err := p.btc.ToAddress()
		if err != nil {
			return Address{}, err
		}
		return Address{chain: Bitcoin, btc: a}, nil
	case Ethereum:
		return Address{chain: Ethereum, eth: p.eth.ToAddress()}, nil
	case NEO:
		return Address{chain: NEO, neo: p.neo.ToAddress()}, nil
	default:
		return Address{}, errs.Errorf("unknown blockchain: %d", p.chain)
	}
}

// Bitcoin narrows to the Bitcoin representation. Fails when the tag does
// not match.
func (p PublicKey) Bitcoin() (btc.PublicKey, error) {
	if p.chain != Bitcoin {
		return btc.PublicKey{}, errs.Errorf("tried to convert a %s public key to a btc public key", p.chain)
	}
	return p.btc, nil
}

// Ethereum narrows to the Ethereum representation. Fails when the tag does
// not match.
func (p PublicKey) Ethereum() (eth.PublicKey, error) {
	if p.chain != Ethereum {
		return eth.PublicKey{}, errs.Errorf("tried to convert a %s public key to an eth public key", p.chain)
	}
	return p.eth, nil
}

// NEO narrows to the NEO representation. Fails when the tag does not match.
func (p PublicKey) NEO() (neo.PublicKey, error) {
	if p.chain != NEO {
		return neo.PublicKey{}, errs.Errorf("tried to convert a %s public key to a neo public key", p.chain)
	}
	return p.neo, nil
}
