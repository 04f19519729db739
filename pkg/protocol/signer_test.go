package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradewire/protocol/pkg/blockchain"
)

func newTestSigner(t *testing.T) *Signer {
	t.Helper()
	keyfile, err := ParseKeyfile([]byte(testKeyfileJSON))
	require.NoError(t, err)
	signer, err := NewSigner(keyfile)
	require.NoError(t, err)
	return signer
}

func TestParseKeyfile(t *testing.T) {
	t.Run("valid keyfile", func(t *testing.T) {
		keyfile, err := ParseKeyfile([]byte(testKeyfileJSON))
		require.NoError(t, err)
		assert.Len(t, keyfile.EthereumKey, 64)
	})

	t.Run("rejects bad keyfiles", func(t *testing.T) {
		tests := []struct {
			name string
			data string
		}{
			{"not json", `{{{`},
			{"missing chain key", `{"eth_private_key": "4c0883a69102937d6231471b5dbb6204fe512961708279feb1be6ae5538da033"}`},
			{"non-hex key", `{
				"btc_private_key": "zzzz71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291",
				"eth_private_key": "4c0883a69102937d6231471b5dbb6204fe512961708279feb1be6ae5538da033",
				"neo_private_key": "7d3b7e2f12ab34cd56ef78ab90cd12ef34ab56cd78ef90ab12cd34ef56ab78cd"}`},
			{"truncated key", `{
				"btc_private_key": "b71c71",
				"eth_private_key": "4c0883a69102937d6231471b5dbb6204fe512961708279feb1be6ae5538da033",
				"neo_private_key": "7d3b7e2f12ab34cd56ef78ab90cd12ef34ab56cd78ef90ab12cd34ef56ab78cd"}`},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				_, err := ParseKeyfile([]byte(test.data))
				assert.Error(t, err)
			})
		}
	})
}

func TestSignerPublicKey(t *testing.T) {
	signer := newTestSigner(t)

	for _, chain := range blockchain.All() {
		t.Run(chain.String(), func(t *testing.T) {
			key, err := signer.PublicKey(chain)
			require.NoError(t, err)
			assert.Equal(t, chain, key.Blockchain())

			// The key must survive a round trip through its hex form.
			rebuilt, err := blockchain.NewPublicKey(chain, key.Hex())
			require.NoError(t, err)
			assert.Equal(t, key.Hex(), rebuilt.Hex())
		})
	}
}

func TestSignerRValAccounting(t *testing.T) {
	t.Run("fill is additive, not idempotent", func(t *testing.T) {
		signer := newTestSigner(t)

		signer.FillRVals(blockchain.Ethereum, 100)
		signer.FillRVals(blockchain.Ethereum, 100)

		assert.Equal(t, 200, signer.RValCount(blockchain.Ethereum))
		assert.Equal(t, 0, signer.RValCount(blockchain.Bitcoin))
	})

	t.Run("consume pops stored secrets and decrements", func(t *testing.T) {
		signer := newTestSigner(t)
		signer.StoreRPool(blockchain.NEO, [][]byte{{0x01}, {0x02}})
		signer.FillRVals(blockchain.NEO, 2)

		first, err := signer.ConsumeRVal(blockchain.NEO)
		require.NoError(t, err)
		second, err := signer.ConsumeRVal(blockchain.NEO)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.Equal(t, 0, signer.RValCount(blockchain.NEO))

		_, err = signer.ConsumeRVal(blockchain.NEO)
		assert.Error(t, err, "dry pool must refuse to hand out secrets")
	})

	t.Run("consume on an unfilled chain fails", func(t *testing.T) {
		signer := newTestSigner(t)
		_, err := signer.ConsumeRVal(blockchain.Bitcoin)
		assert.Error(t, err)
	})
}
