// Package neo holds the NEO representations of addresses and public keys
// used when constructing and validating signable payload data. NEO key
// material lives on the secp256r1 (NIST P-256) curve.
package neo

import (
	"crypto/elliptic"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ripemd160"

	"github.com/tradewire/protocol/pkg/errs"
)

const (
	// addressVersion is the NEO address version byte.
	addressVersion = 0x17

	// Opcodes of the single-key verification script wrapped around a public key.
	opPushBytes33 = 0x21
	opCheckSig    = 0xAC
)

// Address is a NEO address, held as the 20-byte verification script hash.
type Address struct {
	scriptHash [ripemd160.Size]byte
}

// NewAddress parses a hex-encoded 20-byte script hash.
func NewAddress(hexStr string) (Address, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(hexStr, "0x"))
	if err != nil {
		return Address{}, errs.Wrap(err, "invalid neo address hex")
	}
	if len(raw) != ripemd160.Size {
		return Address{}, errs.Errorf("invalid neo script hash length: %d", len(raw))
	}
	var a Address
	copy(a.scriptHash[:], raw)
	return a, nil
}

// Hex returns the hex encoding of the script hash.
func (a Address) Hex() string { return hex.EncodeToString(a.scriptHash[:]) }

// String returns the base58check encoding with the NEO version byte.
func (a Address) String() string { return base58.CheckEncode(a.scriptHash[:], addressVersion) }

// PublicKey is a secp256r1 public key in NEO's compressed encoding.
type PublicKey struct {
	comp [33]byte
}

// NewPublicKey parses a hex-encoded 33-byte compressed secp256r1 point.
func NewPublicKey(hexStr string) (PublicKey, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(hexStr, "0x"))
	if err != nil {
		return PublicKey{}, errs.Wrap(err, "invalid neo public key hex")
	}
	if len(raw) != 33 {
		return PublicKey{}, errs.Errorf("invalid neo public key length: %d", len(raw))
	}
	if x, _ := elliptic.UnmarshalCompressed(elliptic.P256(), raw); x == nil {
		return PublicKey{}, errs.New("neo public key is not on the secp256r1 curve")
	}
	var p PublicKey
	copy(p.comp[:], raw)
	return p, nil
}

// Hex returns the compressed hex encoding of the key.
func (p PublicKey) Hex() string {
	return hex.EncodeToString(p.comp[:])
}

// ToAddress derives the address of the single-key verification script
// PUSHBYTES33 <key> CHECKSIG. The derivation is total for NEO.
func (p PublicKey) ToAddress() Address {
	script := make([]byte, 0, 35)
	script = append(script, opPushBytes33)
	script = append(script, p.comp[:]...)
	script = append(script, opCheckSig)

	sha := sha256.Sum256(script)
	h := ripemd160.New()
	h.Write(sha[:])

	var a Address
	copy(a.scriptHash[:], h.Sum(nil))
	return a
}
