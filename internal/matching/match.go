package matching

import (
	"bytes"
	"slices"
	"strings"

	"github.com/MrJamesThe3rd/tally/internal/money"
)

// FromLine maps accounting polarity to bank polarity: a debit to the bank
// account is money received (credit), a credit is money paid out (debit).
// Lines without a positive side yield false.
func FromLine(l SourceLine) (*BankTransaction, bool) {
	bt := &BankTransaction{
		BankAccountID:   l.BankAccountID,
		JournalID:       &l.JournalID,
		JournalLineID:   &l.LineID,
		TransactionDate: l.Date,
		PostDate:        l.Date,
		Description:     l.Description,
		Status:          StatusUnmatched,
	}

	if bt.Description == "" {
		bt.Description = l.Memo
	}

	switch {
	case money.Positive(l.Debit) && !money.Positive(l.Credit):
		bt.Type = TypeCredit
		bt.Amount = l.Debit
	case money.Positive(l.Credit) && !money.Positive(l.Debit):
		bt.Type = TypeDebit
		bt.Amount = l.Credit
	default:
		return nil, false
	}

	return bt, true
}

// Pair is a feed row bound to the bank transaction it matched.
type Pair struct {
	Feed        FeedRow
	Transaction *BankTransaction
	MatchType   MatchType
}

type MatchResult struct {
	Pairs           []Pair
	UnmatchedFeed   []FeedRow
	UnmatchedLedger []*BankTransaction
}

// Match pairs feed rows with unmatched bank transactions of the session's
// account dated inside the session window. A candidate must have the same
// direction and an amount equal within money.Epsilon. Among candidates, the
// first whose description contains, or is contained in, the feed row's wins;
// otherwise the first candidate does. Candidates are ordered by date, then
// ID. Each transaction is used at most once; feed rows are taken in order.
func Match(session *Session, rows []FeedRow, ledger []*BankTransaction) *MatchResult {
	var candidates []*BankTransaction

	for _, bt := range ledger {
		if bt.Status != StatusUnmatched || bt.BankAccountID != session.BankAccountID || !session.Covers(bt.TransactionDate) {
			continue
		}

		candidates = append(candidates, bt)
	}

	slices.SortStableFunc(candidates, func(a, b *BankTransaction) int {
		if c := a.TransactionDate.Compare(b.TransactionDate); c != 0 {
			return c
		}

		return bytes.Compare(a.ID[:], b.ID[:])
	})

	used := make(map[*BankTransaction]bool, len(candidates))
	result := &MatchResult{}

	for _, row := range rows {
		bt, mt := bestCandidate(row, candidates, used)
		if bt == nil {
			result.UnmatchedFeed = append(result.UnmatchedFeed, row)
			continue
		}

		used[bt] = true
		result.Pairs = append(result.Pairs, Pair{Feed: row, Transaction: bt, MatchType: mt})
	}

	for _, bt := range candidates {
		if !used[bt] {
			result.UnmatchedLedger = append(result.UnmatchedLedger, bt)
		}
	}

	return result
}

func bestCandidate(row FeedRow, candidates []*BankTransaction, used map[*BankTransaction]bool) (*BankTransaction, MatchType) {
	var first *BankTransaction

	for _, bt := range candidates {
		if used[bt] || bt.Type != row.Type || !money.Equal(bt.Amount, row.Amount) {
			continue
		}

		if descriptionsOverlap(row.Description, bt.Description) {
			return bt, MatchDescription
		}

		if first == nil {
			first = bt
		}
	}

	if first == nil {
		return nil, ""
	}

	return first, MatchAmount
}

func descriptionsOverlap(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == "" || b == "" {
		return false
	}

	return strings.Contains(a, b) || strings.Contains(b, a)
}
