package statement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/audit"
	"github.com/MrJamesThe3rd/tally/internal/journal"
	"github.com/MrJamesThe3rd/tally/internal/metrics"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=statement
type Repository interface {
	IsProcessedByAccount(ctx context.Context, accountID uuid.UUID, statementNumber, owner string) (bool, error)
	IsProcessedByLastFour(ctx context.Context, lastFour, statementNumber, owner string) (bool, error)
	FindLinkedAccount(ctx context.Context, statementNumber, lastFour, owner string) (*uuid.UUID, error)
	HasStartingBalance(ctx context.Context, accountID uuid.UUID, owner string) (bool, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx covers the statement insert and the starting-balance update so that
// neither is visible without the other.
type Tx interface {
	InsertRecord(ctx context.Context, r *Record) error
	SetStartingBalance(ctx context.Context, accountID uuid.UUID, balance decimal.Decimal, date time.Time) error
	Commit() error
	Rollback() error
}

type Accounts interface {
	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)
	Resolve(ctx context.Context, identifier string, typeHint account.Type) (*account.Account, error)
}

type Journals interface {
	Create(ctx context.Context, params journal.CreateParams) (*journal.Journal, error)
	Delete(ctx context.Context, id uuid.UUID, actor string) error
}

type Service struct {
	repo     Repository
	accounts Accounts
	journals Journals
	audit    audit.Emitter
}

func NewService(repo Repository, accounts Accounts, journals Journals, emitter audit.Emitter) *Service {
	return &Service{
		repo:     repo,
		accounts: accounts,
		journals: journals,
		audit:    emitter,
	}
}

// IsProcessed reports whether the statement was already ingested for the
// key's account, or for any account under the key's last four digits.
func (s *Service) IsProcessed(ctx context.Context, key Key, statementNumber, owner string) (bool, error) {
	if strings.TrimSpace(statementNumber) == "" {
		return false, fmt.Errorf("%w: statement number is required", ErrInvalid)
	}

	switch {
	case key.AccountID != nil:
		return s.repo.IsProcessedByAccount(ctx, *key.AccountID, statementNumber, owner)
	case key.LastFour != "":
		return s.repo.IsProcessedByLastFour(ctx, key.LastFour, statementNumber, owner)
	default:
		return false, fmt.Errorf("%w: account or last four digits required", ErrInvalid)
	}
}

func (s *Service) HasStartingBalance(ctx context.Context, accountID uuid.UUID, owner string) (bool, error) {
	return s.repo.HasStartingBalance(ctx, accountID, owner)
}

type RecordParams struct {
	AccountID         uuid.UUID
	StatementNumber   string
	LastFour          string
	StatementDate     time.Time
	IsStartingBalance bool
	StartingBalance   *decimal.Decimal
	Owner             string
}

func (p RecordParams) validate() error {
	if strings.TrimSpace(p.StatementNumber) == "" {
		return fmt.Errorf("%w: statement number is required", ErrInvalid)
	}

	if strings.TrimSpace(p.Owner) == "" {
		return fmt.Errorf("%w: owner is required", ErrInvalid)
	}

	if p.IsStartingBalance && p.StartingBalance == nil {
		return fmt.Errorf("%w: starting balance amount is required", ErrInvalid)
	}

	return nil
}

// Record stores a statement. A statement already recorded for the account
// yields ErrAlreadyProcessed and a second starting balance yields
// ErrStartingBalanceExists; both are enforced by the store's unique
// constraints.
func (s *Service) Record(ctx context.Context, params RecordParams) (*Record, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	r, err := s.record(ctx, params)
	if err != nil {
		return nil, err
	}

	s.emitRecorded(ctx, r, params.StartingBalance)

	return r, nil
}

func (s *Service) record(ctx context.Context, params RecordParams) (*Record, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin statement: %w", err)
	}
	defer tx.Rollback()

	r := &Record{
		AccountID:         params.AccountID,
		StatementNumber:   strings.TrimSpace(params.StatementNumber),
		LastFour:          params.LastFour,
		StatementDate:     params.StatementDate,
		IsStartingBalance: params.IsStartingBalance,
		Owner:             params.Owner,
	}

	if err := tx.InsertRecord(ctx, r); err != nil {
		return nil, fmt.Errorf("insert statement: %w", err)
	}

	if params.IsStartingBalance {
		if err := tx.SetStartingBalance(ctx, params.AccountID, *params.StartingBalance, params.StatementDate); err != nil {
			return nil, fmt.Errorf("set starting balance: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit statement: %w", err)
	}

	return r, nil
}

func (s *Service) emitRecorded(ctx context.Context, r *Record, balance *decimal.Decimal) {
	s.audit.Emit(ctx, audit.Event{
		Actor:      r.Owner,
		Action:     audit.ActionStatementRecorded,
		EntityType: "statement",
		EntityID:   r.ID.String(),
		Context: map[string]any{
			"account_id":       r.AccountID.String(),
			"statement_number": r.StatementNumber,
			"last_four":        r.LastFour,
		},
	})

	if !r.IsStartingBalance || balance == nil {
		return
	}

	s.audit.Emit(ctx, audit.Event{
		Actor:      r.Owner,
		Action:     audit.ActionStartingBalanceFixed,
		EntityType: "account",
		EntityID:   r.AccountID.String(),
		Before:     map[string]any{"starting_balance": nil},
		After: map[string]any{
			"starting_balance": balance.StringFixed(2),
			"balance_date":     r.StatementDate.Format(time.DateOnly),
		},
		Context: map[string]any{"statement_id": r.ID.String()},
	})
}

type IngestParams struct {
	// AccountID is set when the caller already knows the target account.
	AccountID *uuid.UUID
	// AccountHint is a code, name or fragment tried against the account
	// directory when no prior statement links the account.
	AccountHint       string
	AccountType       account.Type
	StatementNumber   string
	LastFour          string
	StatementDate     time.Time
	IsStartingBalance bool
	StartingBalance   *decimal.Decimal
	Owner             string
	// Journal, when set, is created alongside the statement record.
	Journal *journal.CreateParams
}

type IngestResult struct {
	Outcome   Outcome
	AccountID *uuid.UUID
	Record    *Record
	Journal   *journal.Journal
}

// Ingest imports a statement at most once. The processed check runs before
// any heuristic account resolution, and again once a heuristic has picked
// the account. Only OutcomeRecorded creates a journal.
func (s *Service) Ingest(ctx context.Context, params IngestParams) (*IngestResult, error) {
	res, err := s.ingest(ctx, params)
	if err != nil {
		return nil, err
	}

	metrics.Statements.WithLabelValues(string(res.Outcome)).Inc()

	return res, nil
}

func (s *Service) ingest(ctx context.Context, params IngestParams) (*IngestResult, error) {
	params.LastFour = strings.TrimSpace(params.LastFour)

	rp := RecordParams{
		StatementNumber:   params.StatementNumber,
		LastFour:          params.LastFour,
		StatementDate:     params.StatementDate,
		IsStartingBalance: params.IsStartingBalance,
		StartingBalance:   params.StartingBalance,
		Owner:             params.Owner,
	}

	if err := rp.validate(); err != nil {
		return nil, err
	}

	if params.AccountID != nil || params.LastFour != "" {
		processed, err := s.IsProcessed(ctx, Key{AccountID: params.AccountID, LastFour: params.LastFour},
			params.StatementNumber, params.Owner)
		if err != nil {
			return nil, fmt.Errorf("checking processed: %w", err)
		}

		if processed {
			return &IngestResult{Outcome: OutcomeAlreadyProcessed, AccountID: params.AccountID}, nil
		}
	}

	accountID, err := s.resolveAccount(ctx, params)
	if err != nil {
		return nil, err
	}

	if accountID == nil {
		return &IngestResult{Outcome: OutcomeNeedsAccount}, nil
	}

	if params.AccountID == nil {
		processed, err := s.repo.IsProcessedByAccount(ctx, *accountID, params.StatementNumber, params.Owner)
		if err != nil {
			return nil, fmt.Errorf("checking processed: %w", err)
		}

		if processed {
			return &IngestResult{Outcome: OutcomeAlreadyProcessed, AccountID: accountID}, nil
		}
	}

	if params.IsStartingBalance {
		exists, err := s.repo.HasStartingBalance(ctx, *accountID, params.Owner)
		if err != nil {
			return nil, fmt.Errorf("checking starting balance: %w", err)
		}

		if exists {
			return &IngestResult{Outcome: OutcomeStartingBalanceExists, AccountID: accountID}, nil
		}
	}

	var j *journal.Journal

	if params.Journal != nil {
		jp := *params.Journal
		jp.CreatedBy = params.Owner

		j, err = s.journals.Create(ctx, jp)
		if err != nil {
			return nil, fmt.Errorf("creating journal: %w", err)
		}
	}

	rp.AccountID = *accountID

	r, err := s.record(ctx, rp)
	if err != nil {
		// The journal must not outlive a statement that was not recorded.
		if j != nil {
			s.compensate(ctx, j.ID, params.Owner)
		}

		switch {
		case errors.Is(err, ErrAlreadyProcessed):
			return &IngestResult{Outcome: OutcomeAlreadyProcessed, AccountID: accountID}, nil
		case errors.Is(err, ErrStartingBalanceExists):
			return &IngestResult{Outcome: OutcomeStartingBalanceExists, AccountID: accountID}, nil
		}

		return nil, err
	}

	s.emitRecorded(ctx, r, params.StartingBalance)

	return &IngestResult{
		Outcome:   OutcomeRecorded,
		AccountID: accountID,
		Record:    r,
		Journal:   j,
	}, nil
}

// resolveAccount returns nil without error when no account can be
// determined.
func (s *Service) resolveAccount(ctx context.Context, params IngestParams) (*uuid.UUID, error) {
	if params.AccountID != nil {
		acc, err := s.accounts.Get(ctx, *params.AccountID)
		if errors.Is(err, account.ErrNotFound) {
			return nil, nil
		}

		if err != nil {
			return nil, fmt.Errorf("getting account: %w", err)
		}

		return &acc.ID, nil
	}

	linked, err := s.repo.FindLinkedAccount(ctx, params.StatementNumber, params.LastFour, params.Owner)
	if err != nil {
		return nil, fmt.Errorf("finding linked account: %w", err)
	}

	if linked != nil {
		return linked, nil
	}

	hint := strings.TrimSpace(params.AccountHint)
	if hint == "" {
		hint = params.LastFour
	}

	if hint == "" {
		return nil, nil
	}

	acc, err := s.accounts.Resolve(ctx, hint, params.AccountType)
	if errors.Is(err, account.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("resolving account: %w", err)
	}

	return &acc.ID, nil
}

func (s *Service) compensate(ctx context.Context, journalID uuid.UUID, actor string) {
	if err := s.journals.Delete(ctx, journalID, actor); err != nil {
		slog.Error("failed to delete journal of unrecorded statement", "journal_id", journalID, "error", err)
	}
}
