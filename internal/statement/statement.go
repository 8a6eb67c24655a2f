package statement

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyProcessed      = errors.New("statement already processed")
	ErrStartingBalanceExists = errors.New("account already has a starting balance")
	ErrInvalid               = errors.New("invalid statement")
)

// Record is one ingested statement.
type Record struct {
	ID                uuid.UUID
	AccountID         uuid.UUID
	StatementNumber   string
	LastFour          string
	StatementDate     time.Time
	IsStartingBalance bool
	ProcessedAt       time.Time
	Owner             string
}

// Key identifies the account side of a statement: the account itself when
// known, else the last four digits printed on the statement.
type Key struct {
	AccountID *uuid.UUID
	LastFour  string
}

// Outcome is the result of an ingestion. Only OutcomeRecorded changes state.
type Outcome string

const (
	OutcomeRecorded              Outcome = "recorded"
	OutcomeAlreadyProcessed      Outcome = "already_processed"
	OutcomeNeedsAccount          Outcome = "needs_account"
	OutcomeStartingBalanceExists Outcome = "starting_balance_exists"
)
