package curves

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/tradewire/protocol/pkg/errs"
)

// DHInitK1 generates n fresh secp256k1 keypairs for a Diffie-Hellman
// exchange. A generation failure (entropy exhaustion, library failure) fails
// the whole batch; callers must never retry with a smaller batch or weaker
// randomness.
func DHInitK1(n int) (secrets []*btcec.PrivateKey, publics []*btcec.PublicKey, err error) {
	secrets = make([]*btcec.PrivateKey, n)
	publics = make([]*btcec.PublicKey, n)
	for i := 0; i < n; i++ {
		priv, err := btcec.NewPrivateKey()
		if err != nil {
			return nil, nil, errs.Wrap(err, "could not initialize k1 values")
		}
		secrets[i] = priv
		publics[i] = priv.PubKey()
	}
	return secrets, publics, nil
}

// SharedSecretK1 combines a local secret scalar with a remote public point,
// yielding the 32-byte shared value both parties derive.
func SharedSecretK1(secret *btcec.PrivateKey, remote *btcec.PublicKey) []byte {
	return btcec.GenerateSharedSecret(secret, remote)
}

// ParseK1Point parses a hex-encoded secp256k1 point. Rejects encodings that
// do not decode to a point on the curve.
func ParseK1Point(hexStr string) (*btcec.PublicKey, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(hexStr, "0x"))
	if err != nil {
		return nil, errs.Wrap(err, "invalid k1 point hex")
	}
	point, err := btcec.ParsePubKey(raw)
	if err != nil {
		return nil, errs.Wrap(err, "invalid k1 point")
	}
	return point, nil
}

// HexK1Point returns the compressed hex encoding of a secp256k1 point.
func HexK1Point(point *btcec.PublicKey) string {
	return hex.EncodeToString(point.SerializeCompressed())
}
