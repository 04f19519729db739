package curves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDHInitK1(t *testing.T) {
	secrets, publics, err := DHInitK1(10)
	require.NoError(t, err)
	require.Len(t, secrets, 10)
	require.Len(t, publics, 10)

	for i, secret := range secrets {
		assert.True(t, publics[i].IsEqual(secret.PubKey()), "public %d must match its secret", i)
	}
}

func TestDHInitR1(t *testing.T) {
	secrets, publics, err := DHInitR1(10)
	require.NoError(t, err)
	require.Len(t, secrets, 10)
	require.Len(t, publics, 10)

	for i, secret := range secrets {
		assert.True(t, publics[i].Equal(secret.PublicKey()), "public %d must match its secret", i)
	}
}

func TestSharedSecretK1IsSymmetric(t *testing.T) {
	aSecrets, aPublics, err := DHInitK1(1)
	require.NoError(t, err)
	bSecrets, bPublics, err := DHInitK1(1)
	require.NoError(t, err)

	fromA := SharedSecretK1(aSecrets[0], bPublics[0])
	fromB := SharedSecretK1(bSecrets[0], aPublics[0])

	require.NotEmpty(t, fromA)
	assert.Equal(t, fromA, fromB)
}

func TestSharedSecretR1IsSymmetric(t *testing.T) {
	aSecrets, aPublics, err := DHInitR1(1)
	require.NoError(t, err)
	bSecrets, bPublics, err := DHInitR1(1)
	require.NoError(t, err)

	fromA, err := SharedSecretR1(aSecrets[0], bPublics[0])
	require.NoError(t, err)
	fromB, err := SharedSecretR1(bSecrets[0], aPublics[0])
	require.NoError(t, err)

	require.NotEmpty(t, fromA)
	assert.Equal(t, fromA, fromB)
}

func TestPointHexRoundTrip(t *testing.T) {
	t.Run("k1", func(t *testing.T) {
		_, publics, err := DHInitK1(1)
		require.NoError(t, err)

		parsed, err := ParseK1Point(HexK1Point(publics[0]))
		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(publics[0]))
	})

	t.Run("r1", func(t *testing.T) {
		_, publics, err := DHInitR1(1)
		require.NoError(t, err)

		parsed, err := ParseR1Point(HexR1Point(publics[0]))
		require.NoError(t, err)
		assert.True(t, parsed.Equal(publics[0]))
	})
}

// Compressed 3*G on secp256k1 and 2*G on secp256r1. A compressed encoding
// carries only an x-coordinate and some x values lie on both curves, so the
// rejection fixtures must be points whose x satisfies exactly one curve
// equation; these two do.
const (
	k1OnlyPoint = "02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"
	r1OnlyPoint = "037cf27b188d034f7e8a52380304b51ac3c08969e277f21b35a60b48fc47669978"
)

func TestParsePointRejectsOffCurve(t *testing.T) {
	t.Run("k1", func(t *testing.T) {
		_, err := ParseK1Point(k1OnlyPoint)
		require.NoError(t, err)

		_, err = ParseK1Point(r1OnlyPoint)
		assert.Error(t, err, "x off secp256k1 must be rejected")
	})

	t.Run("r1", func(t *testing.T) {
		_, err := ParseR1Point(r1OnlyPoint)
		require.NoError(t, err)

		_, err = ParseR1Point(k1OnlyPoint)
		assert.Error(t, err, "x off secp256r1 must be rejected")
	})
}

func TestParsePointRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "zz", "02deadbeef", "0479be667e"} {
		_, err := ParseK1Point(input)
		assert.Error(t, err, "k1 input %q", input)
		_, err = ParseR1Point(input)
		assert.Error(t, err, "r1 input %q", input)
	}
}
