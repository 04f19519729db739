package blockchain

import (
	"github.com/shopspring/decimal"

	"github.com/tradewire/protocol/pkg/errs"
)

// Asset is a tradable asset listed on the exchange, pinned to the chain its
// contract lives on.
type Asset struct {
	// Name is the human-readable name of the asset (e.g., "USD Coin").
	Name string
	// Symbol is the ticker symbol (e.g., "usdc").
	Symbol string
	// Blockchain is the chain the asset's contract is deployed on.
	Blockchain Blockchain
	// Decimals is the number of decimal places amounts of this asset carry.
	Decimals uint8
	// ContractAddress is the asset's contract hash, empty for native assets.
	ContractAddress string
}

// ParseAmount parses a decimal amount string and validates it against the
// asset's precision. Amounts with more fractional digits than the asset
// supports are rejected rather than rounded: payload encoding is byte-exact
// and silent rounding would change what gets signed.
func (a Asset) ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.Wrap(err, "invalid amount")
	}
	if int32(-d.Exponent()) > int32(a.Decimals) {
		return decimal.Zero, errs.Errorf("amount %s exceeds %s precision of %d decimals", s, a.Symbol, a.Decimals)
	}
	return d, nil
}

// AssetOrCrosschain is either a concrete tradable asset or the sentinel
// meaning the operation spans chains and has no single asset.
type AssetOrCrosschain struct {
	asset *Asset
}

// ForAsset wraps a concrete asset.
func ForAsset(a Asset) AssetOrCrosschain {
	return AssetOrCrosschain{asset: &a}
}

// Crosschain returns the sentinel for cross-chain operations.
func Crosschain() AssetOrCrosschain {
	return AssetOrCrosschain{}
}

// IsCrosschain reports whether this is the cross-chain sentinel.
func (ac AssetOrCrosschain) IsCrosschain() bool { return ac.asset == nil }

// Asset returns the concrete asset, failing on the cross-chain sentinel.
func (ac AssetOrCrosschain) Asset() (Asset, error) {
	if ac.asset == nil {
		return Asset{}, errs.New("operation is cross-chain and has no single asset")
	}
	return *ac.asset, nil
}

// String renders the asset symbol or the cross-chain marker.
func (ac AssetOrCrosschain) String() string {
	if ac.asset == nil {
		return "crosschain"
	}
	return ac.asset.Symbol
}
