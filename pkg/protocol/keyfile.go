package protocol

import (
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/tradewire/protocol/pkg/errs"
)

// Keyfile is the JSON credential file the session is bootstrapped from. It
// carries one hex-encoded private key per supported chain. How the file is
// produced and protected at rest is an external concern.
type Keyfile struct {
	BitcoinKey  string `json:"btc_private_key" validate:"required,hexadecimal,len=64"`
	EthereumKey string `json:"eth_private_key" validate:"required,hexadecimal,len=64"`
	NEOKey      string `json:"neo_private_key" validate:"required,hexadecimal,len=64"`
}

// LoadKeyfile reads and validates a keyfile from disk.
func LoadKeyfile(path string) (*Keyfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "could not read keyfile")
	}
	return ParseKeyfile(data)
}

// ParseKeyfile decodes and validates keyfile bytes.
func ParseKeyfile(data []byte) (*Keyfile, error) {
	var kf Keyfile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, errs.Wrap(err, "malformed keyfile")
	}
	if err := validator.New().Struct(kf); err != nil {
		return nil, errs.Wrap(err, "invalid keyfile")
	}
	return &kf, nil
}
