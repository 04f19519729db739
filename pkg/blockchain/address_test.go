package blockchain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ethAddressHex = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"
	btcHashHex    = "89abcdefabbaabbaabbaabbaabbaabbaabbaabba"
	neoHashHex    = "d336d7eb9e393f1d1e33f1eba221c0a36a68a11a"
)

func TestNewAddress(t *testing.T) {
	t.Run("parses valid addresses per chain", func(t *testing.T) {
		tests := []struct {
			chain Blockchain
			hex   string
		}{
			{Ethereum, ethAddressHex},
			{Bitcoin, btcHashHex},
			{NEO, neoHashHex},
		}

		for _, test := range tests {
			t.Run(test.chain.String(), func(t *testing.T) {
				addr, err := NewAddress(test.chain, test.hex)
				require.NoError(t, err)
				assert.Equal(t, test.chain, addr.Blockchain())
				assert.NotEmpty(t, addr.String())
			})
		}
	})

	t.Run("rejects malformed input per chain", func(t *testing.T) {
		tests := []struct {
			name  string
			chain Blockchain
			hex   string
		}{
			{"eth not hex", Ethereum, "not-an-address"},
			{"eth too short", Ethereum, "0x1234"},
			{"btc odd hex", Bitcoin, "89abc"},
			{"btc wrong length", Bitcoin, "89abcdef"},
			{"neo wrong length", NEO, "d336d7eb"},
			{"neo not hex", NEO, strings.Repeat("zz", 20)},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				_, err := NewAddress(test.chain, test.hex)
				assert.Error(t, err)
			})
		}
	})
}

func TestAddressNarrowing(t *testing.T) {
	ethAddr, err := NewAddress(Ethereum, ethAddressHex)
	require.NoError(t, err)

	t.Run("matching tag succeeds", func(t *testing.T) {
		narrowed, err := ethAddr.Ethereum()
		require.NoError(t, err)
		assert.Equal(t, ethAddr.String(), narrowed.String())
	})

	t.Run("mismatched tag fails without panic", func(t *testing.T) {
		_, err := ethAddr.Bitcoin()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "btc")

		_, err = ethAddr.NEO()
		require.Error(t, err)
	})
}

func TestAddressStringForms(t *testing.T) {
	t.Run("bitcoin renders base58check", func(t *testing.T) {
		addr, err := NewAddress(Bitcoin, btcHashHex)
		require.NoError(t, err)
		// Mainnet P2PKH addresses start with 1.
		assert.True(t, strings.HasPrefix(addr.String(), "1"), addr.String())
	})

	t.Run("neo renders base58check with version 0x17", func(t *testing.T) {
		addr, err := NewAddress(NEO, neoHashHex)
		require.NoError(t, err)
		// Version byte 0x17 puts NEO addresses in the 'A' range.
		assert.True(t, strings.HasPrefix(addr.String(), "A"), addr.String())
	})

	t.Run("ethereum renders checksummed hex", func(t *testing.T) {
		addr, err := NewAddress(Ethereum, strings.ToLower(ethAddressHex))
		require.NoError(t, err)
		assert.Equal(t, ethAddressHex, addr.String())
	})
}
