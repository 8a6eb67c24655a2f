package cgd

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount reads a Portuguese-formatted amount: dots group thousands and
// the comma is the decimal mark. "1.234,56" is 1234.56, "-588,74" is -588.74.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(s, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	return decimal.NewFromString(clean)
}
