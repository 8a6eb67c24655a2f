// Package money holds the amount comparisons shared by the ledger packages.
package money

import "github.com/shopspring/decimal"

// Epsilon is the largest difference still treated as rounding noise.
var Epsilon = decimal.New(5, -3)

// Equal reports whether a and b differ by no more than Epsilon.
func Equal(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Epsilon)
}

// Positive reports whether d is strictly greater than zero.
func Positive(d decimal.Decimal) bool {
	return d.GreaterThan(decimal.Zero)
}

// Places is the number of decimal places amounts are stored with.
const Places = 2

// Storable reports whether d is representable in cents without rounding.
func Storable(d decimal.Decimal) bool {
	return d.Equal(d.Round(Places))
}
