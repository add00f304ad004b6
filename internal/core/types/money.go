// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// Round2 rounds a value half-up to two decimal places.
// Aggregate figures (subtotals, tax and discount amounts, grand totals)
// are rounded with this; intermediate per-line amounts stay unrounded.
func Round2(v Money) Money {
	return v.Round(2)
}

// Percent returns amount * rate / 100 without rounding.
func Percent(amount, rate Money) Money {
	return amount.Mul(rate).Div(decimal.NewFromInt(100))
}
