package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/audit"
	"github.com/MrJamesThe3rd/tally/internal/metrics"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=journal
type Repository interface {
	GetJournal(ctx context.Context, id uuid.UUID, owner string) (*Journal, error)
	ListJournals(ctx context.Context, filter ListFilter) ([]*Journal, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx is one all-or-nothing unit of journal writes.
type Tx interface {
	InsertJournal(ctx context.Context, j *Journal) error
	InsertLines(ctx context.Context, journalID uuid.UUID, lines []*Line) error
	LockJournal(ctx context.Context, id uuid.UUID) (*Journal, error)
	SetPosted(ctx context.Context, id uuid.UUID, actor string, at time.Time) error
	ClearPosted(ctx context.Context, id uuid.UUID) error
	MarkDeleted(ctx context.Context, id uuid.UUID) error
	Commit() error
	Rollback() error
}

// Accounts is the slice of the account directory journals post against.
type Accounts interface {
	ResolveMany(ctx context.Context, queries []account.Query) (map[account.Query]*account.Account, []account.Query, error)
	Create(ctx context.Context, params account.CreateParams) (*account.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BankLedger derives bank-ledger rows from posted journals. VoidForJournal
// returns how many rows were voided and how many were kept because they are
// already matched.
type BankLedger interface {
	GenerateFromJournal(ctx context.Context, journalID uuid.UUID, owner string) (int, error)
	VoidForJournal(ctx context.Context, journalID uuid.UUID) (int, int, error)
}

type Service struct {
	repo     Repository
	accounts Accounts
	ledger   BankLedger
	audit    audit.Emitter
	now      func() time.Time
}

func NewService(repo Repository, accounts Accounts, ledger BankLedger, emitter audit.Emitter) *Service {
	return &Service{
		repo:     repo,
		accounts: accounts,
		ledger:   ledger,
		audit:    emitter,
		now:      time.Now,
	}
}

const (
	DefaultSource = "manual"
	DefaultType   = "general"
)

type CreateParams struct {
	Date               time.Time
	Memo               string
	Source             string
	Type               string
	CreatedBy          string
	Lines              []LineParams
	AutoCreateAccounts bool
}

func (s *Service) Get(ctx context.Context, id uuid.UUID, owner string) (*Journal, error) {
	return s.repo.GetJournal(ctx, id, owner)
}

// List returns the owner's live journals matching filter.
func (s *Service) List(ctx context.Context, owner string, filter ListFilter) ([]*Journal, error) {
	filter.Owner = owner

	return s.repo.ListJournals(ctx, filter)
}

// Create validates the candidate journal and persists header and lines in a
// single transaction. Rejections are *ValidationError.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Journal, error) {
	j, err := s.create(ctx, params)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			metrics.JournalsRejected.WithLabelValues(string(verr.Reason)).Inc()
		}

		return nil, err
	}

	metrics.JournalsCreated.Inc()

	return j, nil
}

func (s *Service) create(ctx context.Context, params CreateParams) (*Journal, error) {
	if err := checkLines(params.Lines); err != nil {
		return nil, err
	}

	queries := make([]account.Query, len(params.Lines))
	for i, l := range params.Lines {
		queries[i] = account.Query{Identifier: strings.TrimSpace(l.Account), Type: l.AccountType}
	}

	resolved, unresolved, err := s.accounts.ResolveMany(ctx, queries)
	if err != nil {
		return nil, fmt.Errorf("resolving accounts: %w", err)
	}

	if len(unresolved) > 0 && !params.AutoCreateAccounts {
		ids := make([]string, len(unresolved))
		for i, q := range unresolved {
			ids[i] = q.Identifier
		}

		return nil, &ValidationError{Reason: ReasonUnresolved, Unresolved: ids}
	}

	if err := checkBalance(params.Lines); err != nil {
		return nil, err
	}

	if resolved == nil {
		resolved = make(map[account.Query]*account.Account, len(unresolved))
	}

	// Accounts are only created once the journal is known to be valid.
	created := make([]*account.Account, 0, len(unresolved))
	for _, q := range unresolved {
		acc, err := s.accounts.Create(ctx, newAccountParams(q, params.CreatedBy))
		if err != nil {
			s.discardAccounts(ctx, created)
			return nil, fmt.Errorf("creating account %q: %w", q.Identifier, err)
		}

		slog.Info("created account for journal line", "identifier", q.Identifier, "code", acc.Code)

		created = append(created, acc)
		resolved[q] = acc
	}

	j := &Journal{
		Date:      params.Date,
		Memo:      params.Memo,
		Source:    orDefault(params.Source, DefaultSource),
		Type:      orDefault(params.Type, DefaultType),
		CreatedBy: params.CreatedBy,
		Lines:     make([]*Line, len(params.Lines)),
	}

	for i, l := range params.Lines {
		j.Lines[i] = &Line{
			LineNumber:  i + 1,
			AccountID:   resolved[queries[i]].ID,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Category:    l.Category,
			Location:    l.Location,
			Vendor:      l.Vendor,
			Funder:      l.Funder,
		}
	}

	if err := s.insert(ctx, j); err != nil {
		s.discardAccounts(ctx, created)
		return nil, err
	}

	return j, nil
}

func (s *Service) insert(ctx context.Context, j *Journal) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin journal: %w", err)
	}
	defer tx.Rollback()

	if err := tx.InsertJournal(ctx, j); err != nil {
		return fmt.Errorf("insert journal: %w", err)
	}

	if err := tx.InsertLines(ctx, j.ID, j.Lines); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit journal: %w", err)
	}

	return nil
}

// discardAccounts soft-deletes accounts created for a journal that was never
// written. Their codes stay reserved.
func (s *Service) discardAccounts(ctx context.Context, accounts []*account.Account) {
	for _, acc := range accounts {
		if err := s.accounts.Delete(ctx, acc.ID); err != nil {
			slog.Error("discarding auto-created account", "account_id", acc.ID, "code", acc.Code, "error", err)
		}
	}
}

// newAccountParams derives an account from an identifier such as
// "6150 Utilities". The type comes from the hint, then the code band, and
// falls back to expense.
func newAccountParams(q account.Query, actor string) account.CreateParams {
	code, name := account.SplitCode(q.Identifier)
	if code == "" {
		name = q.Identifier
	}

	t := q.Type
	if t == "" {
		if inferred, ok := account.TypeForCode(code); ok {
			t = inferred
		} else {
			t = account.TypeExpense
		}
	}

	if name == "" {
		name = q.Identifier
	}

	return account.CreateParams{
		Code:     code,
		Name:     name,
		Type:     t,
		IsCustom: true,
		Actor:    actor,
	}
}

type SkipReason string

const (
	SkipNotFound      SkipReason = "not_found"
	SkipDeleted       SkipReason = "deleted"
	SkipAlreadyPosted SkipReason = "already_posted"
	SkipFailed        SkipReason = "failed"
)

type Skip struct {
	ID     uuid.UUID
	Reason SkipReason
}

type PostResult struct {
	Posted  []uuid.UUID
	Skipped []Skip
}

func (r *PostResult) PostedCount() int { return len(r.Posted) }

// Post moves each of actor's journals from draft to posted. The batch is
// best-effort: missing, deleted and already-posted journals are skipped, and
// so is any journal whose own transaction fails. Journals of other owners
// count as missing. Cancelling ctx stops the batch before
// the next item and returns what was done so far.
func (s *Service) Post(ctx context.Context, ids []uuid.UUID, actor string) (*PostResult, error) {
	result := &PostResult{}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		reason, err := s.postOne(ctx, id, actor)
		if err != nil {
			slog.Error("failed to post journal", "journal_id", id, "error", err)

			reason = SkipFailed
		}

		if reason != "" {
			result.Skipped = append(result.Skipped, Skip{ID: id, Reason: reason})
			metrics.JournalsSkipped.WithLabelValues(string(reason)).Inc()

			continue
		}

		result.Posted = append(result.Posted, id)
		metrics.JournalsPosted.Inc()

		s.afterPost(ctx, id, actor)
	}

	return result, nil
}

func (s *Service) postOne(ctx context.Context, id uuid.UUID, actor string) (SkipReason, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin post: %w", err)
	}
	defer tx.Rollback()

	j, err := tx.LockJournal(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return SkipNotFound, nil
	}

	if err != nil {
		return "", fmt.Errorf("lock journal: %w", err)
	}

	if !j.OwnedBy(actor) {
		return SkipNotFound, nil
	}

	switch j.State() {
	case StateDeleted:
		return SkipDeleted, nil
	case StatePosted:
		return SkipAlreadyPosted, nil
	}

	if err := tx.SetPosted(ctx, id, actor, s.now().UTC()); err != nil {
		return "", fmt.Errorf("set posted: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit post: %w", err)
	}

	return "", nil
}

// afterPost runs the side effects of a committed posting. Neither can fail
// the posting itself.
func (s *Service) afterPost(ctx context.Context, id uuid.UUID, actor string) {
	created, err := s.ledger.GenerateFromJournal(ctx, id, actor)
	if err != nil {
		slog.Error("failed to generate bank transactions", "journal_id", id, "error", err)
	}

	s.audit.Emit(ctx, audit.Event{
		Actor:      actor,
		Action:     audit.ActionJournalPosted,
		EntityType: "journal",
		EntityID:   id.String(),
		Before:     map[string]any{"is_posted": false},
		After:      map[string]any{"is_posted": true},
		Context:    map[string]any{"bank_transactions_created": created},
	})
}

// Unpost reverses a posting. Unmatched bank transactions generated from the
// journal are voided; matched ones stay for manual reconciliation.
func (s *Service) Unpost(ctx context.Context, id uuid.UUID, actor string) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin unpost: %w", err)
	}
	defer tx.Rollback()

	j, err := tx.LockJournal(ctx, id)
	if err != nil {
		return fmt.Errorf("lock journal: %w", err)
	}

	if !j.OwnedBy(actor) {
		return ErrNotFound
	}

	switch j.State() {
	case StateDeleted:
		return ErrNotFound
	case StateDraft:
		return &ValidationError{Reason: ReasonInvalidTransition, Detail: "journal is not posted"}
	}

	if err := tx.ClearPosted(ctx, id); err != nil {
		return fmt.Errorf("clear posted: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit unpost: %w", err)
	}

	voided, kept := s.void(ctx, id)

	s.audit.Emit(ctx, audit.Event{
		Actor:      actor,
		Action:     audit.ActionJournalUnposted,
		EntityType: "journal",
		EntityID:   id.String(),
		Before:     map[string]any{"is_posted": true},
		After:      map[string]any{"is_posted": false},
		Context:    map[string]any{"bank_transactions_voided": voided, "bank_transactions_kept": kept},
	})

	return nil
}

// Delete soft-deletes a journal in any state. A posted journal has its
// unmatched bank transactions voided, as with Unpost.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, actor string) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	j, err := tx.LockJournal(ctx, id)
	if err != nil {
		return fmt.Errorf("lock journal: %w", err)
	}

	if j.IsDeleted || !j.OwnedBy(actor) {
		return ErrNotFound
	}

	if err := tx.MarkDeleted(ctx, id); err != nil {
		return fmt.Errorf("mark deleted: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}

	evtCtx := map[string]any{}

	if j.IsPosted {
		voided, kept := s.void(ctx, id)
		evtCtx["bank_transactions_voided"] = voided
		evtCtx["bank_transactions_kept"] = kept
	}

	s.audit.Emit(ctx, audit.Event{
		Actor:      actor,
		Action:     audit.ActionJournalDeleted,
		EntityType: "journal",
		EntityID:   id.String(),
		Before:     map[string]any{"state": j.State()},
		After:      map[string]any{"state": StateDeleted},
		Context:    evtCtx,
	})

	return nil
}

func (s *Service) void(ctx context.Context, id uuid.UUID) (voided, kept int) {
	voided, kept, err := s.ledger.VoidForJournal(ctx, id)
	if err != nil {
		slog.Error("failed to void bank transactions", "journal_id", id, "error", err)
		return 0, 0
	}

	if kept > 0 {
		slog.Warn("matched bank transactions left for manual reconciliation",
			"journal_id", id, "count", kept)
	}

	return voided, kept
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}

	return s
}
