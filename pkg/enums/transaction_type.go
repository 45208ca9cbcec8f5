package enums

import "fmt"

// TransactionType is the direction of a stock movement.
type TransactionType string

const (
	TransactionTypeIncoming TransactionType = "incoming"
	TransactionTypeOutgoing TransactionType = "outgoing"
)

var validTransactionTypes = []TransactionType{
	TransactionTypeIncoming,
	TransactionTypeOutgoing,
}

// String implements fmt.Stringer.
func (t TransactionType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TransactionType.
func (t TransactionType) IsValid() bool {
	for _, candidate := range validTransactionTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// Sign returns +1 for incoming and -1 for outgoing movements.
func (t TransactionType) Sign() int {
	if t == TransactionTypeOutgoing {
		return -1
	}
	return 1
}

// ParseTransactionType converts raw input into a TransactionType.
func ParseTransactionType(value string) (TransactionType, error) {
	for _, candidate := range validTransactionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transaction type %q", value)
}
