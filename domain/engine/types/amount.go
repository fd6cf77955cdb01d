package types

import (
	"strconv"

	"github.com/danlabs/danwallet/domain/engine/engineerrors"
)

// Amount is a signed quantity of a fungible resource
type Amount int64

// ParseAmount parses a base 10 amount
func ParseAmount(s string) (Amount, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, engineerrors.WrapMalformedInput(err, "failed to parse amount")
	}
	return Amount(value), nil
}

// IsNegative returns true if the amount is below zero
func (amount Amount) IsNegative() bool {
	return amount < 0
}

func (amount Amount) String() string {
	return strconv.FormatInt(int64(amount), 10)
}
