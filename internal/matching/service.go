package matching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/audit"
	"github.com/MrJamesThe3rd/tally/internal/database"
	"github.com/MrJamesThe3rd/tally/internal/metrics"
	"github.com/MrJamesThe3rd/tally/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type Repository interface {
	ListSourceLines(ctx context.Context, journalID uuid.UUID, owner string) ([]SourceLine, error)
	InsertBankTransaction(ctx context.Context, bt *BankTransaction) error
	LinkLine(ctx context.Context, lineID, bankTransactionID uuid.UUID) error
	VoidUnmatchedForJournal(ctx context.Context, journalID uuid.UUID) (int, error)
	CountMatchedForJournal(ctx context.Context, journalID uuid.UUID) (int, error)

	CreateSession(ctx context.Context, s *Session) error
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)
	ListUnmatched(ctx context.Context, bankAccountID uuid.UUID, start, end time.Time) ([]*BankTransaction, error)

	BeginSession(ctx context.Context) (SessionTx, error)
}

// SessionTx serializes work on one reconciliation session. LockSession
// must be called first.
type SessionTx interface {
	LockSession(ctx context.Context, id uuid.UUID) (*Session, error)
	ListUnmatched(ctx context.Context, bankAccountID uuid.UUID, start, end time.Time) ([]*BankTransaction, error)
	MarkMatched(ctx context.Context, bankTransactionID, sessionID uuid.UUID, matchType MatchType) (bool, error)
	InsertFeedRow(ctx context.Context, sessionID uuid.UUID, row FeedRow, matchedID *uuid.UUID) error
	CompleteSession(ctx context.Context, id uuid.UUID) error
	Commit() error
	Rollback() error
}

type Accounts interface {
	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)
}

type Service struct {
	repo     Repository
	accounts Accounts
	audit    audit.Emitter
}

func NewService(repo Repository, accounts Accounts, emitter audit.Emitter) *Service {
	return &Service{
		repo:     repo,
		accounts: accounts,
		audit:    emitter,
	}
}

// GenerateFromJournal creates one bank transaction per bank-account line of
// the journal that does not already have one. Rows are inserted one by one;
// a failed insert does not undo earlier ones. A line that a concurrent run
// generated first is skipped. Back-linking the journal line is best-effort.
func (s *Service) GenerateFromJournal(ctx context.Context, journalID uuid.UUID, owner string) (int, error) {
	lines, err := s.repo.ListSourceLines(ctx, journalID, owner)
	if err != nil {
		return 0, fmt.Errorf("listing source lines: %w", err)
	}

	var (
		created int
		errs    []error
	)

	for _, l := range lines {
		bt, ok := FromLine(l)
		if !ok {
			continue
		}

		if err := s.repo.InsertBankTransaction(ctx, bt); err != nil {
			if errors.Is(err, ErrAlreadyGenerated) {
				slog.Debug("bank transaction already generated", "line_id", l.LineID)
				continue
			}

			errs = append(errs, fmt.Errorf("line %s: %w", l.LineID, err))
			continue
		}

		created++

		if err := s.repo.LinkLine(ctx, l.LineID, bt.ID); err != nil {
			slog.Warn("failed to back-link journal line",
				"line_id", l.LineID, "bank_transaction_id", bt.ID, "error", err)
		}
	}

	metrics.BankTransactionsGenerated.Add(float64(created))

	if len(errs) > 0 {
		return created, fmt.Errorf("inserting bank transactions: %w", errors.Join(errs...))
	}

	return created, nil
}

// VoidForJournal voids the journal's unmatched bank transactions and clears
// their back-links. Matched ones are counted and left alone.
func (s *Service) VoidForJournal(ctx context.Context, journalID uuid.UUID) (int, int, error) {
	voided, err := s.repo.VoidUnmatchedForJournal(ctx, journalID)
	if err != nil {
		return 0, 0, fmt.Errorf("voiding bank transactions: %w", err)
	}

	kept, err := s.repo.CountMatchedForJournal(ctx, journalID)
	if err != nil {
		return voided, 0, fmt.Errorf("counting matched bank transactions: %w", err)
	}

	return voided, kept, nil
}

type OpenSessionParams struct {
	BankAccountID        uuid.UUID
	StartDate            time.Time
	EndDate              time.Time
	BankStatementBalance decimal.Decimal
	Owner                string
}

func (s *Service) OpenSession(ctx context.Context, params OpenSessionParams) (*Session, error) {
	if params.EndDate.Before(params.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalid)
	}

	acc, err := s.accounts.Get(ctx, params.BankAccountID)
	if err != nil {
		return nil, fmt.Errorf("getting bank account: %w", err)
	}

	if !acc.BankLinked() {
		return nil, fmt.Errorf("%w: account %s is not a bank account", ErrInvalid, acc.Code)
	}

	session := &Session{
		BankAccountID:        params.BankAccountID,
		StartDate:            params.StartDate,
		EndDate:              params.EndDate,
		BankStatementBalance: params.BankStatementBalance,
		Status:               SessionOpen,
		Owner:                params.Owner,
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	return session, nil
}

type SessionDetail struct {
	Session         *Session
	UnmatchedLedger []*BankTransaction
}

// GetSession returns the owner's session with the bank transactions still
// waiting for a feed row.
func (s *Service) GetSession(ctx context.Context, id uuid.UUID, owner string) (*SessionDetail, error) {
	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.OwnedBy(owner) {
		return nil, ErrSessionNotFound
	}

	ledger, err := s.repo.ListUnmatched(ctx, session.BankAccountID, session.StartDate, session.EndDate)
	if err != nil {
		return nil, fmt.Errorf("listing unmatched: %w", err)
	}

	return &SessionDetail{Session: session, UnmatchedLedger: ledger}, nil
}

type ReconcileResult struct {
	Session *Session
	*MatchResult
}

// Reconcile matches feed rows against the session's bank ledger and stores
// every row, matched or not. Nothing is created to cover unmatched rows.
func (s *Service) Reconcile(ctx context.Context, sessionID uuid.UUID, owner string, rows []FeedRow) (*ReconcileResult, error) {
	for i, r := range rows {
		if !money.Positive(r.Amount) || !r.Type.Valid() {
			return nil, fmt.Errorf("%w: feed row %d needs a positive amount and a credit or debit type", ErrInvalid, i+1)
		}
	}

	tx, err := s.repo.BeginSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin reconcile: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.LockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.OwnedBy(owner) {
		return nil, ErrSessionNotFound
	}

	if session.Status != SessionOpen {
		return nil, ErrSessionClosed
	}

	ledger, err := tx.ListUnmatched(ctx, session.BankAccountID, session.StartDate, session.EndDate)
	if err != nil {
		return nil, fmt.Errorf("listing unmatched: %w", err)
	}

	result := Match(session, rows, ledger)

	for _, p := range result.Pairs {
		ok, err := tx.MarkMatched(ctx, p.Transaction.ID, session.ID, p.MatchType)
		if err != nil {
			return nil, fmt.Errorf("marking matched: %w", err)
		}

		if !ok {
			return nil, database.Persistence("marking matched",
				fmt.Errorf("bank transaction %s changed during reconciliation", p.Transaction.ID))
		}

		p.Transaction.Status = StatusMatched
		p.Transaction.MatchType = p.MatchType
		p.Transaction.SessionID = &session.ID

		if err := tx.InsertFeedRow(ctx, session.ID, p.Feed, &p.Transaction.ID); err != nil {
			return nil, fmt.Errorf("storing feed row: %w", err)
		}
	}

	for _, row := range result.UnmatchedFeed {
		if err := tx.InsertFeedRow(ctx, session.ID, row, nil); err != nil {
			return nil, fmt.Errorf("storing feed row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reconcile: %w", err)
	}

	metrics.ReconciliationRows.WithLabelValues("matched").Add(float64(len(result.Pairs)))
	metrics.ReconciliationRows.WithLabelValues("unmatched").Add(float64(len(result.UnmatchedFeed)))

	return &ReconcileResult{Session: session, MatchResult: result}, nil
}

// CompleteSession closes the session. No further feed rows are accepted.
func (s *Service) CompleteSession(ctx context.Context, id uuid.UUID, actor string) (*Session, error) {
	tx, err := s.repo.BeginSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin complete: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.LockSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.OwnedBy(actor) {
		return nil, ErrSessionNotFound
	}

	if session.Status != SessionOpen {
		return nil, ErrSessionClosed
	}

	if err := tx.CompleteSession(ctx, id); err != nil {
		return nil, fmt.Errorf("completing session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit complete: %w", err)
	}

	session.Status = SessionCompleted

	s.audit.Emit(ctx, audit.Event{
		Actor:      actor,
		Action:     audit.ActionReconciliationComplete,
		EntityType: "reconciliation_session",
		EntityID:   id.String(),
		Before:     map[string]any{"status": SessionOpen},
		After:      map[string]any{"status": SessionCompleted},
	})

	return session, nil
}
