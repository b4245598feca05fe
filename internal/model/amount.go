package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of decimal places carried by Amount.
const AmountPrecision = 4

var (
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrPrecisionExceeded = errors.New("amount has more than four decimal places")
	ErrAmountOverflow    = errors.New("amount out of range")
)

// Amount is a monetary value in minor units (1/10000). Balances never
// go negative, so the unsigned representation enforces the invariant at
// the type level.
type Amount uint64

var maxAmountUnits = decimal.NewFromInt(math.MaxInt64)

// ParseAmount converts a decimal string such as "1.5" or "2.0001" into
// minor units without going through floating point.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	if d.IsNegative() {
		return 0, ErrNegativeAmount
	}

	units := d.Shift(AmountPrecision)
	if !units.IsInteger() {
		return 0, ErrPrecisionExceeded
	}

	if units.Cmp(maxAmountUnits) > 0 {
		return 0, ErrAmountOverflow
	}

	return Amount(units.IntPart()), nil
}

// String renders the amount with fixed four-decimal precision.
func (a Amount) String() string {
	return decimal.New(int64(a), -AmountPrecision).StringFixed(AmountPrecision)
}
