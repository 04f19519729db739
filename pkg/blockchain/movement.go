package blockchain

// MovementType is one of the two kinds of balance movements between a
// user's wallet and the exchange contract.
type MovementType uint8

const (
	MovementDeposit MovementType = iota
	MovementWithdrawal
)

// Prefix returns the payload prefix corresponding to the movement.
func (m MovementType) Prefix() Prefix {
	if m == MovementWithdrawal {
		return PrefixWithdrawal
	}
	return PrefixDeposit
}

// String returns the wire name of the movement type.
func (m MovementType) String() string {
	if m == MovementWithdrawal {
		return "withdrawal"
	}
	return "deposit"
}
