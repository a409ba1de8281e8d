package kernel

import (
	"fmt"
	"math"

	"fuelsettlement/internal/pkg/errs"
)

// Money is a value object representing an amount denominated in the settlement
// currency's smallest unit. It is used for per-litre prices, escrow balances,
// and fund transfers.
//
// Money is immutable: arithmetic methods return new values and never mutate
// the receiver. The zero value represents zero money and is valid: it is the
// state of an escrow's released amount before any release, and of its held
// amount after one.
//
// Negative amounts cannot be constructed, which is what makes the conservation
// invariant of the escrow (held + released == total) checkable by simple
// addition.
//
// Example usage:
//
//	price, _ := kernel.NewMoney(2)          // 2 smallest units per litre
//	total, _ := price.MulQuantity(1000)     // 2000
//	total.IsZero()                          // false
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in the smallest currency unit.
// Returns an error if the amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns a Money value of zero.
func ZeroMoney() Money {
	return Money{}
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsEqual compares two Money values for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// IsGreaterOrEqual reports whether the amount is at least the other amount.
func (m Money) IsGreaterOrEqual(other Money) bool {
	return m.amount >= other.amount
}

// Add returns the sum of two Money values.
// Returns an error if the sum would overflow.
func (m Money) Add(other Money) (Money, error) {
	if m.amount > math.MaxInt64-other.amount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount",
			m.amount, 0, math.MaxInt64)
	}
	return Money{amount: m.amount + other.amount}, nil
}

// Sub returns the difference of two Money values.
// Returns an error if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d - %d is negative", m.amount, other.amount))
	}
	return Money{amount: m.amount - other.amount}, nil
}

// MulQuantity returns the amount multiplied by a positive integer quantity.
// This is how an order's total is derived from its per-litre price.
// Returns an error if the quantity is not positive or the product would overflow.
func (m Money) MulQuantity(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if m.amount != 0 && int64(quantity) > math.MaxInt64/m.amount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount",
			m.amount, 0, math.MaxInt64)
	}
	return Money{amount: m.amount * int64(quantity)}, nil
}

// String returns the amount formatted as a decimal integer.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
