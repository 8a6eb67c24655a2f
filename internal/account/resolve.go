package account

import (
	"bytes"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// Query identifies an account by code, name or a fragment of either.
// Type, when set, narrows the fuzzy tiers.
type Query struct {
	Identifier string
	Type       Type
}

// Resolver is one strategy of the resolution chain. Implementations expect
// accounts sorted by ID and free of deleted entries, and return the first
// acceptable account or nil.
type Resolver interface {
	Resolve(q Query, accounts []*Account) *Account
}

// Chain tries each resolver in order; the first hit wins.
type Chain []Resolver

// DefaultChain is code, then exact name, then name fragment, then last four digits.
func DefaultChain() Chain {
	return Chain{ByCode{}, ByName{}, ByNameFragment{}, ByLastFour{}}
}

func (c Chain) Resolve(q Query, accounts []*Account) *Account {
	for _, r := range c {
		if a := r.Resolve(q, accounts); a != nil {
			return a
		}
	}

	return nil
}

// SortByID orders accounts so that resolver ties go to the lowest ID.
func SortByID(accounts []*Account) {
	slices.SortFunc(accounts, func(a, b *Account) int {
		return bytes.Compare(a.ID[:], b.ID[:])
	})
}

// ByCode matches the identifier, or its leading numeric token ("6100 Rent"),
// against account codes.
type ByCode struct{}

func (ByCode) Resolve(q Query, accounts []*Account) *Account {
	ident := strings.TrimSpace(q.Identifier)
	if ident == "" {
		return nil
	}

	candidates := []string{ident}
	if code, _ := SplitCode(ident); code != "" && code != ident {
		candidates = append(candidates, code)
	}

	for _, c := range candidates {
		for _, a := range accounts {
			if a.Code == c {
				return a
			}
		}
	}

	return nil
}

// ByName matches the identifier, or what follows a leading code, against
// account names exactly.
type ByName struct{}

func (ByName) Resolve(q Query, accounts []*Account) *Account {
	ident := strings.TrimSpace(q.Identifier)
	if ident == "" {
		return nil
	}

	candidates := []string{ident}
	if _, rest := SplitCode(ident); rest != "" && rest != ident {
		candidates = append(candidates, rest)
	}

	for _, c := range candidates {
		for _, a := range accounts {
			if a.Name == c {
				return a
			}
		}
	}

	return nil
}

// ByNameFragment matches case-insensitively when the account name contains
// the identifier. A longer identifier that merely mentions a name does not
// match: "Cash advance fee" must not land on "Cash".
type ByNameFragment struct{}

func (ByNameFragment) Resolve(q Query, accounts []*Account) *Account {
	ident := strings.ToLower(strings.TrimSpace(q.Identifier))
	if ident == "" {
		return nil
	}

	for _, a := range accounts {
		if q.Type != "" && a.Type != q.Type {
			continue
		}

		name := strings.ToLower(strings.TrimSpace(a.Name))
		if name == "" {
			continue
		}

		if strings.Contains(name, ident) {
			return a
		}
	}

	return nil
}

var trailingFour = regexp.MustCompile(`(\d{4})\D*$`)

// ByLastFour handles "... account ending 2009" for bank and credit-card
// accounts whose name or code carries the same four digits.
type ByLastFour struct{}

func (ByLastFour) Resolve(q Query, accounts []*Account) *Account {
	if q.Type != "" && q.Type != TypeAsset && q.Type != TypeLiability {
		return nil
	}

	four := LastFour(q.Identifier)
	if four == "" {
		return nil
	}

	for _, a := range accounts {
		if !a.BankLinked() {
			continue
		}

		if q.Type != "" && a.Type != q.Type {
			continue
		}

		if strings.Contains(a.Name, four) || strings.HasSuffix(a.Code, four) {
			return a
		}
	}

	return nil
}

// LastFour extracts the trailing four-digit group from s, or "".
func LastFour(s string) string {
	m := trailingFour.FindStringSubmatch(s)
	if m == nil {
		return ""
	}

	return m[1]
}

// SplitCode splits "6100 Rent" into ("6100", "Rent"). The code is empty when
// the first token is not numeric.
func SplitCode(s string) (code, rest string) {
	first, remainder, _ := strings.Cut(s, " ")
	if first == "" || strings.IndexFunc(first, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return "", ""
	}

	return first, strings.TrimSpace(remainder)
}
