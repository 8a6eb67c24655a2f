package matching

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSessionNotFound = errors.New("reconciliation session not found")
	ErrSessionClosed   = errors.New("reconciliation session is completed")
	ErrInvalid         = errors.New("invalid reconciliation input")

	// ErrAlreadyGenerated means the line already has a live bank transaction.
	ErrAlreadyGenerated = errors.New("bank transaction already generated")
)

// Type is the bank's view of a movement: credit is money in, debit is money
// out.
type Type string

const (
	TypeCredit Type = "credit"
	TypeDebit  Type = "debit"
)

func (t Type) Valid() bool {
	return t == TypeCredit || t == TypeDebit
}

type Status string

const (
	StatusUnmatched Status = "unmatched"
	StatusMatched   Status = "matched"
	StatusVoid      Status = "void"
)

// MatchType records which rule paired a bank transaction with a feed row.
type MatchType string

const (
	MatchDescription MatchType = "auto_description"
	MatchAmount      MatchType = "auto_amount"
)

// BankTransaction is a bank-ledger row derived from a posted journal line.
type BankTransaction struct {
	ID              uuid.UUID
	BankAccountID   uuid.UUID
	JournalID       *uuid.UUID
	JournalLineID   *uuid.UUID
	TransactionDate time.Time
	PostDate        time.Time
	Description     string
	Amount          decimal.Decimal
	Type            Type
	Status          Status
	ReferenceNumber string
	MatchType       MatchType
	Notes           string
	SessionID       *uuid.UUID
	CreatedAt       time.Time
}

type SessionStatus string

const (
	SessionOpen      SessionStatus = "open"
	SessionCompleted SessionStatus = "completed"
)

// Session is the envelope under which a bank feed is matched against the
// bank ledger of one account.
type Session struct {
	ID                   uuid.UUID
	BankAccountID        uuid.UUID
	StartDate            time.Time
	EndDate              time.Time
	BankStatementBalance decimal.Decimal
	Status               SessionStatus
	Owner                string
	CreatedAt            time.Time
}

// OwnedBy reports whether owner opened the session. Sessions of other owners
// are treated as missing.
func (s *Session) OwnedBy(owner string) bool {
	return s.Owner == owner
}

// Covers reports whether d falls inside the session window, both ends
// inclusive, compared by calendar date.
func (s *Session) Covers(d time.Time) bool {
	day := d.Format(time.DateOnly)
	return day >= s.StartDate.Format(time.DateOnly) && day <= s.EndDate.Format(time.DateOnly)
}

// FeedRow is one row of an externally imported bank statement. Amount is
// always positive; Type carries the direction.
type FeedRow struct {
	Date        time.Time
	Amount      decimal.Decimal
	Type        Type
	Description string
}

// SourceLine is a posted journal line on a bank account that has no live
// bank transaction yet.
type SourceLine struct {
	LineID        uuid.UUID
	JournalID     uuid.UUID
	BankAccountID uuid.UUID
	Date          time.Time
	Memo          string
	Description   string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
}
