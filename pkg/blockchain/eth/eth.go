// Package eth holds the Ethereum representations of addresses and public
// keys used when constructing and validating signable payload data.
package eth

import (
	"crypto/ecdsa"
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/tradewire/protocol/pkg/errs"
)

// Address is a 20-byte Ethereum account address.
type Address struct {
	addr common.Address
}

// NewAddress parses a hex-encoded Ethereum address, with or without the
// 0x prefix.
func NewAddress(hexStr string) (Address, error) {
	if !common.IsHexAddress(hexStr) {
		return Address{}, errs.Errorf("invalid ethereum address hex: %q", hexStr)
	}
	return Address{addr: common.HexToAddress(hexStr)}, nil
}

// Hex returns the EIP-55 checksummed hex encoding.
func (a Address) Hex() string { return a.addr.Hex() }

// Bytes returns the raw 20-byte address.
func (a Address) Bytes() []byte { return a.addr.Bytes() }

func (a Address) String() string { return a.Hex() }

// PublicKey is a secp256k1 public key in Ethereum's encoding.
type PublicKey struct {
	key *ecdsa.PublicKey
}

// NewPublicKey parses a hex-encoded secp256k1 public key. Both the 33-byte
// compressed and 65-byte uncompressed encodings are accepted.
func NewPublicKey(hexStr string) (PublicKey, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(hexStr, "0x"))
	if err != nil {
		return PublicKey{}, errs.Wrap(err, "invalid ethereum public key hex")
	}
	var key *ecdsa.PublicKey
	switch len(raw) {
	case 33:
		key, err = ethcrypto.DecompressPubkey(raw)
	case 65:
		key, err = ethcrypto.UnmarshalPubkey(raw)
	default:
		return PublicKey{}, errs.Errorf("invalid ethereum public key length: %d", len(raw))
	}
	if err != nil {
		return PublicKey{}, errs.Wrap(err, "could not parse ethereum public key")
	}
	return PublicKey{key: key}, nil
}

// Hex returns the compressed hex encoding of the key.
func (p PublicKey) Hex() string {
	return hex.EncodeToString(ethcrypto.CompressPubkey(p.key))
}

// ToAddress derives the account address from the public key. The derivation
// is total for Ethereum.
func (p PublicKey) ToAddress() Address {
	return Address{addr: ethcrypto.PubkeyToAddress(*p.key)}
}
