package journal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/money"
)

// Reason classifies why a journal operation was rejected.
type Reason string

const (
	ReasonEmpty             Reason = "empty_lines"
	ReasonZeroLine          Reason = "zero_line"
	ReasonTwoSidedLine      Reason = "two_sided_line"
	ReasonNegativeAmount    Reason = "negative_amount"
	ReasonPrecision         Reason = "precision"
	ReasonUnresolved        Reason = "unresolved_account"
	ReasonImbalanced        Reason = "imbalanced"
	ReasonInvalidTransition Reason = "invalid_transition"
)

// ValidationError is a rejection carrying the offending values. Line is the
// 1-based position of the offending line, or 0 when the journal as a whole
// is at fault.
type ValidationError struct {
	Reason      Reason
	Line        int
	Unresolved  []string
	Difference  decimal.Decimal
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Detail      string
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return "journal has no lines"
	case ReasonZeroLine:
		return fmt.Sprintf("line %d has neither a debit nor a credit", e.Line)
	case ReasonTwoSidedLine:
		return fmt.Sprintf("line %d has both a debit and a credit", e.Line)
	case ReasonNegativeAmount:
		return fmt.Sprintf("line %d has a negative amount", e.Line)
	case ReasonPrecision:
		return fmt.Sprintf("line %d has an amount finer than %d decimal places", e.Line, money.Places)
	case ReasonUnresolved:
		return "unresolved accounts: " + strings.Join(e.Unresolved, ", ")
	case ReasonImbalanced:
		return fmt.Sprintf("journal is out of balance by %s (debits %s, credits %s)",
			e.Difference.StringFixed(2), e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2))
	default:
		return e.Detail
	}
}

// LineParams is a candidate line. Account is a code, a name, or a fragment
// of either.
type LineParams struct {
	Account     string
	AccountType account.Type
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Category    string
	Location    string
	Vendor      string
	Funder      string
}

// checkLines rejects an empty journal and any line that is not strictly
// one-sided. Amounts must already be in cents so the checks below see what
// the store will hold.
func checkLines(lines []LineParams) error {
	if len(lines) == 0 {
		return &ValidationError{Reason: ReasonEmpty}
	}

	for i, l := range lines {
		n := i + 1

		switch {
		case l.Debit.IsNegative() || l.Credit.IsNegative():
			return &ValidationError{Reason: ReasonNegativeAmount, Line: n}
		case !money.Storable(l.Debit) || !money.Storable(l.Credit):
			return &ValidationError{Reason: ReasonPrecision, Line: n}
		case l.Debit.IsZero() && l.Credit.IsZero():
			return &ValidationError{Reason: ReasonZeroLine, Line: n}
		case l.Debit.IsPositive() && l.Credit.IsPositive():
			return &ValidationError{Reason: ReasonTwoSidedLine, Line: n}
		}
	}

	return nil
}

// checkBalance compares the debit and credit totals within money.Epsilon.
func checkBalance(lines []LineParams) error {
	var debit, credit decimal.Decimal

	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}

	if money.Equal(debit, credit) {
		return nil
	}

	return &ValidationError{
		Reason:      ReasonImbalanced,
		Difference:  debit.Sub(credit).Abs(),
		TotalDebit:  debit,
		TotalCredit: credit,
	}
}
