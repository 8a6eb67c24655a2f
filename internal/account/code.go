package account

import (
	"strconv"
	"strings"
)

// Band is a numeric range of account codes reserved for one kind of account.
type Band struct {
	Name string
	Min  int
	Max  int
}

var (
	BandAsset      = Band{Name: "asset", Min: 1000, Max: 1999}
	BandLiability  = Band{Name: "liability", Min: 2000, Max: 2999}
	BandEquity     = Band{Name: "equity", Min: 3000, Max: 3999}
	BandRevenue    = Band{Name: "revenue", Min: 4000, Max: 4999}
	BandExpense    = Band{Name: "expense", Min: 5000, Max: 9999}
	BandCreditCard = Band{Name: "credit_card", Min: 20000, Max: 29999}
)

// Contains reports whether code is numeric and inside the band.
func (b Band) Contains(code string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return false
	}

	return n >= b.Min && n <= b.Max
}

// BandFor returns the code band for new accounts of type t.
func BandFor(t Type, creditCard bool) Band {
	switch t {
	case TypeAsset:
		return BandAsset
	case TypeLiability:
		if creditCard {
			return BandCreditCard
		}

		return BandLiability
	case TypeEquity:
		return BandEquity
	case TypeRevenue:
		return BandRevenue
	default:
		return BandExpense
	}
}

// TypeForCode infers the account type from the band a code falls in.
func TypeForCode(code string) (Type, bool) {
	switch {
	case BandCreditCard.Contains(code), BandLiability.Contains(code):
		return TypeLiability, true
	case BandAsset.Contains(code):
		return TypeAsset, true
	case BandEquity.Contains(code):
		return TypeEquity, true
	case BandRevenue.Contains(code):
		return TypeRevenue, true
	case BandExpense.Contains(code):
		return TypeExpense, true
	}

	return "", false
}

// NextCode returns the lowest code at or above b.Min that is not in existing.
// A full band overflows past b.Max rather than failing. Non-numeric codes are
// ignored.
func NextCode(existing []string, b Band) string {
	used := make(map[int]struct{}, len(existing))

	for _, c := range existing {
		n, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil {
			continue
		}

		used[n] = struct{}{}
	}

	for c := b.Min; ; c++ {
		if _, taken := used[c]; !taken {
			return strconv.Itoa(c)
		}
	}
}
