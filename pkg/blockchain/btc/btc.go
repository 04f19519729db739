// Package btc holds the Bitcoin representations of addresses and public
// keys used when constructing and validating signable payload data.
package btc

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ripemd160"

	"github.com/tradewire/protocol/pkg/errs"
)

// p2pkhVersion is the mainnet pay-to-pubkey-hash address version byte.
const p2pkhVersion = 0x00

// Address is a Bitcoin P2PKH address, held as the 20-byte public key hash.
// The protocol exchanges the hash in hex; String renders the familiar
// base58check form.
type Address struct {
	hash [ripemd160.Size]byte
}

// NewAddress parses a hex-encoded 20-byte public key hash.
func NewAddress(hexStr string) (Address, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(hexStr, "0x"))
	if err != nil {
		return Address{}, errs.Wrap(err, "invalid bitcoin address hex")
	}
	if len(raw) != ripemd160.Size {
		return Address{}, errs.Errorf("invalid bitcoin pubkey hash length: %d", len(raw))
	}
	var a Address
	copy(a.hash[:], raw)
	return a, nil
}

// Hex returns the hex encoding of the public key hash.
func (a Address) Hex() string { return hex.EncodeToString(a.hash[:]) }

// String returns the base58check P2PKH encoding.
func (a Address) String() string { return base58.CheckEncode(a.hash[:], p2pkhVersion) }

// PublicKey is a secp256k1 public key in Bitcoin's encoding.
type PublicKey struct {
	key *btcec.PublicKey
}

// NewPublicKey parses a hex-encoded secp256k1 public key in any of the
// encodings btcec accepts (compressed, uncompressed or hybrid).
func NewPublicKey(hexStr string) (PublicKey, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(hexStr, "0x"))
	if err != nil {
		return PublicKey{}, errs.Wrap(err, "invalid bitcoin public key hex")
	}
	key, err := btcec.ParsePubKey(raw)
	if err != nil {
		return PublicKey{}, errs.Wrap(err, "could not parse bitcoin public key")
	}
	return PublicKey{key: key}, nil
}

// FromECPoint wraps an existing btcec public key.
func FromECPoint(key *btcec.PublicKey) PublicKey { return PublicKey{key: key} }

// Hex returns the compressed hex encoding of the key.
func (p PublicKey) Hex() string {
	return hex.EncodeToString(p.key.SerializeCompressed())
}

// ToAddress derives the P2PKH address by hashing the compressed key with
// SHA-256 followed by RIPEMD-160.
func (p PublicKey) ToAddress() (Address, error) {
	if p.key == nil {
		return Address{}, errs.New("cannot derive address from uninitialized bitcoin key")
	}
	sha := sha256.Sum256(p.key.SerializeCompressed())
	h := ripemd160.New()
	if _, err := h.Write(sha[:]); err != nil {
		return Address{}, errs.Wrap(err, "bitcoin address derivation failed")
	}
	var a Address
	copy(a.hash[:], h.Sum(nil))
	return a, nil
}
