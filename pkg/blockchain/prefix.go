package blockchain

import "github.com/tradewire/protocol/pkg/errs"

// Prefix is the one-byte tag at the start of a signable binary payload that
// indicates which operation the payload represents. For example, a payload
// for the fill-order operation starts with 0x01. The encoding is identical
// across chains.
type Prefix uint8

const (
	PrefixSyncState  Prefix = 0x00
	PrefixFillOrder  Prefix = 0x01
	PrefixDeposit    Prefix = 0x02
	PrefixWithdrawal Prefix = 0x03
)

// Bytes returns the one-byte wire encoding of the prefix.
func (p Prefix) Bytes() [1]byte {
	return [1]byte{byte(p)}
}

// PrefixFromBytes decodes a prefix from its one-byte wire encoding. Any byte
// outside the four defined values is a decoding error.
func PrefixFromBytes(b [1]byte) (Prefix, error) {
	switch b[0] {
	case 0x00:
		return PrefixSyncState, nil
	case 0x01:
		return PrefixFillOrder, nil
	case 0x02:
		return PrefixDeposit, nil
	case 0x03:
		return PrefixWithdrawal, nil
	default:
		return 0, errs.Errorf("invalid prefix byte: %#02x", b[0])
	}
}

// String names the operation the prefix tags.
func (p Prefix) String() string {
	switch p {
	case PrefixSyncState:
		return "sync_state"
	case PrefixFillOrder:
		return "fill_order"
	case PrefixDeposit:
		return "deposit"
	case PrefixWithdrawal:
		return "withdrawal"
	default:
		return "unknown"
	}
}
