package curves

import (
	"crypto/ecdh"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/tradewire/protocol/pkg/errs"
)

// DHInitR1 generates n fresh secp256r1 (NIST P-256) keypairs for a
// Diffie-Hellman exchange. The same no-fallback rule as DHInitK1 applies.
func DHInitR1(n int) (secrets []*ecdh.PrivateKey, publics []*ecdh.PublicKey, err error) {
	curve := ecdh.P256()
	secrets = make([]*ecdh.PrivateKey, n)
	publics = make([]*ecdh.PublicKey, n)
	for i := 0; i < n; i++ {
		priv, err := curve.GenerateKey(rand.Reader)
		if err != nil {
			return nil, nil, errs.Wrap(err, "could not initialize r1 values")
		}
		secrets[i] = priv
		publics[i] = priv.PublicKey()
	}
	return secrets, publics, nil
}

// SharedSecretR1 combines a local secret scalar with a remote public point,
// yielding the 32-byte shared value both parties derive.
func SharedSecretR1(secret *ecdh.PrivateKey, remote *ecdh.PublicKey) ([]byte, error) {
	shared, err := secret.ECDH(remote)
	if err != nil {
		return nil, errs.Wrap(err, "r1 shared secret derivation failed")
	}
	return shared, nil
}

// ParseR1Point parses a hex-encoded secp256r1 point in compressed (33-byte)
// or uncompressed (65-byte) form. Rejects encodings that do not decode to a
// point on the curve.
func ParseR1Point(hexStr string) (*ecdh.PublicKey, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(hexStr, "0x"))
	if err != nil {
		return nil, errs.Wrap(err, "invalid r1 point hex")
	}

	var x, y *big.Int
	switch len(raw) {
	case 33:
		x, y = elliptic.UnmarshalCompressed(elliptic.P256(), raw)
	case 65:
		x, y = elliptic.Unmarshal(elliptic.P256(), raw)
	default:
		return nil, errs.Errorf("invalid r1 point length: %d", len(raw))
	}
	if x == nil {
		return nil, errs.New("point is not on the secp256r1 curve")
	}

	point, err := ecdh.P256().NewPublicKey(elliptic.Marshal(elliptic.P256(), x, y))
	if err != nil {
		return nil, errs.Wrap(err, "invalid r1 point")
	}
	return point, nil
}

// HexR1Point returns the compressed hex encoding of a secp256r1 point.
func HexR1Point(point *ecdh.PublicKey) string {
	raw := point.Bytes() // uncompressed form
	x, y := elliptic.Unmarshal(elliptic.P256(), raw)
	return hex.EncodeToString(elliptic.MarshalCompressed(elliptic.P256(), x, y))
}
