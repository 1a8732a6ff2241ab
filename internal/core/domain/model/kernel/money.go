package kernel

import (
	"fmt"
	"math"

	"canteen/internal/pkg/errs"
)

// Money is an amount in integer cents. Integer arithmetic keeps order totals
// exactly equal to the sum of their item subtotals.
type Money struct {
	cents int64
}

// NewMoney validates that cents is not negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%d is negative", cents))
	}
	return Money{cents: cents}, nil
}

// MoneyFromFloat converts a decimal amount in currency units (5.25) to Money,
// rounding to the nearest cent.
func MoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%v is not a finite number", amount))
	}
	return NewMoney(int64(math.Round(amount * 100)))
}

func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in currency units.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Multiply scales the amount by a non-negative factor such as an item quantity.
func (m Money) Multiply(factor int) Money {
	return Money{cents: m.cents * int64(factor)}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// String formats the amount with two decimals, e.g. "13.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
