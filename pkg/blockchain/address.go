package blockchain

import (
	"github.com/tradewire/protocol/pkg/blockchain/btc"
	"github.com/tradewire/protocol/pkg/blockchain/eth"
	"github.com/tradewire/protocol/pkg/blockchain/neo"
	"github.com/tradewire/protocol/pkg/errs"
)

// Address is a chain-tagged address. It is a closed sum over the three
// chain-specific representations; narrowing to a concrete chain's type is
// fallible so code consuming per-chain data can never silently accept an
// address from the wrong chain.
type Address struct {
	chain Blockchain
	btc   btc.Address
	eth   eth.Address
	neo   neo.Address
}

// NewAddress parses a hex string using the parser of the selected chain.
func NewAddress(chain Blockchain, hexStr string) (Address, error) {
	switch chain {
	case Bitcoin:
		a, err := btc.NewAddress(hexStr)
		if err != nil {
			return Address{}, err
		}
		return Address{chain: Bitcoin, btc: a}, nil
	case Ethereum:
		a, err := eth.NewAddress(hexStr)
		if err != nil {
			return Address{}, err
		}
		return Address{chain: Ethereum, eth: a}, nil
	case NEO:
		a, err := neo.NewAddress(hexStr)
		if err != nil {
			return Address{}, err
		}
		return Address{chain: NEO, neo: a}, nil
	default:
		return Address{}, errs.Errorf("unknown blockchain: %d", chain)
	}
}

// Blockchain returns the chain tag of the address.
func (a Address) Blockchain() Blockchain { return a.chain }

// Bitcoin narrows to the Bitcoin representation. Fails when the tag does
// not match.
func (a Address) Bitcoin() (btc.Address, error) {
	if a.chain != Bitcoin {
		return btc.Address{}, errs.Errorf("tried to convert a %s address to a btc address", a.chain)
	}
	return a.btc, nil
}

// Ethereum narrows to the Ethereum representation. Fails when the tag does
// not match.
func (a Address) Ethereum() (eth.Address, error) {
	if a.chain != Ethereum {
		return eth.Address{}, errs.Errorf("tried to convert a %s address to an eth address", a.chain)
	}
	return a.eth, nil
}

// NEO narrows to the NEO representation. Fails when the tag does not match.
func (a Address) NEO() (neo.Address, error) {
	if a.chain != NEO {
		return neo.Address{}, errs.Errorf("tried to convert a %s address to a neo address", a.chain)
	}
	return a.neo, nil
}

// String renders the chain-native human-readable form.
func (a Address) String() string {
	switch a.chain {
	case Bitcoin:
		return a.btc.String()
	case Ethereum:
		return a.eth.String()
	case NEO:
		return a.neo.String()
	default:
		return "<invalid address>"
	}
}
