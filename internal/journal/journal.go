package journal

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("journal not found")

// State is the lifecycle position of a journal.
type State string

const (
	StateDraft   State = "draft"
	StatePosted  State = "posted"
	StateDeleted State = "deleted"
)

// Journal is a balanced set of debit and credit lines recorded as one
// accounting event. Lines are ordered by LineNumber, starting at 1.
type Journal struct {
	ID        uuid.UUID
	Date      time.Time
	Memo      string
	Source    string
	Type      string
	IsPosted  bool
	PostedAt  *time.Time
	PostedBy  string
	CreatedBy string
	IsDeleted bool
	CreatedAt time.Time
	Lines     []*Line
}

// OwnedBy reports whether owner created the journal. Journals of other
// owners are treated as missing.
func (j *Journal) OwnedBy(owner string) bool {
	return j.CreatedBy == owner
}

func (j *Journal) State() State {
	switch {
	case j.IsDeleted:
		return StateDeleted
	case j.IsPosted:
		return StatePosted
	default:
		return StateDraft
	}
}

// Totals sums the debit and credit sides of the journal.
func (j *Journal) Totals() (debit, credit decimal.Decimal) {
	for _, l := range j.Lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}

	return debit, credit
}

// Line is one debit or credit against a single account.
type Line struct {
	ID                uuid.UUID
	JournalID         uuid.UUID
	LineNumber        int
	AccountID         uuid.UUID
	Description       string
	Debit             decimal.Decimal
	Credit            decimal.Decimal
	Category          string
	Location          string
	Vendor            string
	Funder            string
	BankTransactionID *uuid.UUID
}

type ListFilter struct {
	Owner     string
	Posted    *bool
	StartDate *time.Time
	EndDate   *time.Time
}
