package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// minorUnitExponent is the number of decimal places in one currency major unit (cents).
const minorUnitExponent = 2

// Money is a non-negative currency amount held as an integer count of minor units.
// Money is immutable.
type Money struct {
	minor int64
}

// NewMoneyFromMinorUnits creates Money from an integer count of minor units.
// For example: NewMoneyFromMinorUnits(1999) represents 19.99.
func NewMoneyFromMinorUnits(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{minor: minor}, nil
}

// NewMoneyFromDecimal converts a decimal major-unit amount into Money.
// The amount is rounded to minor units half away from zero, so 19.995 becomes 2000.
func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	minor, err := ToMinorUnits(amount)
	if err != nil {
		return Money{}, err
	}
	return NewMoneyFromMinorUnits(minor)
}

// NewMoneyFromString parses a decimal string such as "19.99" into Money.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	return NewMoneyFromDecimal(d)
}

// ToMinorUnits computes round(amount * 100) with round-half-away-from-zero.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	if amount.IsNegative() {
		return 0, ErrNegativePrice
	}
	rounded := amount.Shift(minorUnitExponent).Round(0)
	bi := rounded.BigInt()
	if !bi.IsInt64() {
		return 0, fmt.Errorf("%w: %s out of range", ErrInvalidPrice, amount.String())
	}
	return bi.Int64(), nil
}

// MinorUnits returns the amount in minor units. Used for persistence.
func (m Money) MinorUnits() int64 {
	return m.minor
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.minor, -minorUnitExponent)
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.minor == 0
}

// Equals returns true if m equals other.
func (m Money) Equals(other Money) bool {
	return m.minor == other.minor
}

// String returns the amount with two decimal places, e.g. "19.99".
func (m Money) String() string {
	return m.Decimal().StringFixed(minorUnitExponent)
}
