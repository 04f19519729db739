package blockchain

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tradewire/protocol/pkg/errs"
)

const assetsFileName = "assets.yaml"

// AssetsConfig is the root of the assets.yaml document listing every asset
// the client is allowed to trade.
type AssetsConfig struct {
	Assets []AssetConfig `yaml:"assets"`
}

// AssetConfig describes a single listed asset.
type AssetConfig struct {
	// Name is the human-readable asset name. Inherits Symbol when empty.
	Name string `yaml:"name"`
	// Symbol is the ticker symbol. Required.
	Symbol string `yaml:"symbol" validate:"required,lowercase"`
	// Blockchain is the wire name of the chain ("btc", "eth" or "neo").
	Blockchain string `yaml:"blockchain" validate:"required,oneof=btc eth neo"`
	// Decimals is the amount precision of the asset.
	Decimals uint8 `yaml:"decimals" validate:"lte=18"`
	// ContractAddress is the hex contract hash, empty for native assets.
	ContractAddress string `yaml:"contract_address" validate:"omitempty,hexadecimal"`
	// Disabled excludes the asset from the registry without deleting its entry.
	Disabled bool `yaml:"disabled"`
}

// AssetRegistry is the validated, in-memory view of the assets configuration.
type AssetRegistry struct {
	bySymbol map[string]Asset
}

// LoadAssets reads and validates <configDirPath>/assets.yaml and returns the
// registry of enabled assets.
func LoadAssets(configDirPath string) (*AssetRegistry, error) {
	data, err := os.ReadFile(filepath.Join(configDirPath, assetsFileName))
	if err != nil {
		return nil, errs.Wrap(err, "could not read assets config")
	}
	return parseAssets(data)
}

func parseAssets(data []byte) (*AssetRegistry, error) {
	var conf AssetsConfig
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, errs.Wrap(err, "could not parse assets config")
	}

	validate := validator.New()
	reg := &AssetRegistry{bySymbol: make(map[string]Asset, len(conf.Assets))}
	for _, ac := range conf.Assets {
		if ac.Disabled {
			continue
		}
		if err := validate.Struct(ac); err != nil {
			return nil, errs.Wrap(err, "invalid asset entry")
		}
		chain, err := Parse(ac.Blockchain)
		if err != nil {
			return nil, err
		}
		name := ac.Name
		if name == "" {
			name = ac.Symbol
		}
		symbol := strings.ToLower(ac.Symbol)
		if _, dup := reg.bySymbol[symbol]; dup {
			return nil, errs.Errorf("duplicate asset symbol: %s", symbol)
		}
		reg.bySymbol[symbol] = Asset{
			Name:            name,
			Symbol:          symbol,
			Blockchain:      chain,
			Decimals:        ac.Decimals,
			ContractAddress: ac.ContractAddress,
		}
	}
	return reg, nil
}

// Asset looks up an enabled asset by symbol.
func (r *AssetRegistry) Asset(symbol string) (Asset, error) {
	a, ok := r.bySymbol[strings.ToLower(symbol)]
	if !ok {
		return Asset{}, errs.Errorf("unknown asset: %s", symbol)
	}
	return a, nil
}

// Symbols returns the symbols of all enabled assets.
func (r *AssetRegistry) Symbols() []string {
	out := make([]string, 0, len(r.bySymbol))
	for s := range r.bySymbol {
		out = append(out, s)
	}
	return out
}
