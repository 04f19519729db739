package blockchain

import "github.com/tradewire/protocol/pkg/errs"

// Blockchain identifies one of the chains supported by the exchange
// protocol. The set is closed: adding a chain means touching every
// exhaustive switch in this module, which is intentional given the
// security cost of mishandling chain-specific data.
type Blockchain uint8

const (
	Bitcoin Blockchain = iota
	Ethereum
	NEO
)

// All returns every supported blockchain. Useful for exhaustive iteration
// in pool-replenishment loops and tests.
func All() []Blockchain {
	return []Blockchain{Bitcoin, Ethereum, NEO}
}

// CurveFamily is the elliptic curve group a blockchain's key material
// lives on.
type CurveFamily uint8

const (
	// CurveSecp256k1 backs Bitcoin and Ethereum.
	CurveSecp256k1 CurveFamily = iota
	// CurveSecp256r1 (NIST P-256) backs NEO.
	CurveSecp256r1
)

// Curve returns the curve family of the blockchain's key material.
func (b Blockchain) Curve() CurveFamily {
	switch b {
	case NEO:
		return CurveSecp256r1
	default:
		return CurveSecp256k1
	}
}

// String returns the wire name of the blockchain.
func (b Blockchain) String() string {
	switch b {
	case Bitcoin:
		return "btc"
	case Ethereum:
		return "eth"
	case NEO:
		return "neo"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler using the wire name.
func (b Blockchain) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Blockchain) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Parse converts a wire name back into a Blockchain.
func Parse(s string) (Blockchain, error) {
	switch s {
	case "btc":
		return Bitcoin, nil
	case "eth":
		return Ethereum, nil
	case "neo":
		return NEO, nil
	default:
		return 0, errs.Errorf("unknown blockchain: %q", s)
	}
}
