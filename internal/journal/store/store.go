package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/database"
	"github.com/MrJamesThe3rd/tally/internal/journal"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectJournalColumns = `
	id, date, memo, source, journal_type, is_posted, posted_at, posted_by, created_by, is_deleted, created_at
`

const selectLineColumns = `
	id, journal_id, line_number, account_id, description, debit, credit,
	category, location, vendor, funder, bank_transaction_id
`

// scanJournal expects the column order of selectJournalColumns.
func scanJournal(s scanner) (*journal.Journal, error) {
	var j journal.Journal

	var postedBy sql.NullString

	if err := s.Scan(
		&j.ID, &j.Date, &j.Memo, &j.Source, &j.Type, &j.IsPosted, &j.PostedAt, &postedBy,
		&j.CreatedBy, &j.IsDeleted, &j.CreatedAt,
	); err != nil {
		return nil, err
	}

	j.PostedBy = postedBy.String

	return &j, nil
}

// scanLine expects the column order of selectLineColumns.
func scanLine(s scanner) (*journal.Line, error) {
	var l journal.Line

	if err := s.Scan(
		&l.ID, &l.JournalID, &l.LineNumber, &l.AccountID, &l.Description, &l.Debit, &l.Credit,
		&l.Category, &l.Location, &l.Vendor, &l.Funder, &l.BankTransactionID,
	); err != nil {
		return nil, err
	}

	return &l, nil
}

func (s *Store) GetJournal(ctx context.Context, id uuid.UUID, owner string) (*journal.Journal, error) {
	query := `SELECT ` + selectJournalColumns + ` FROM journals WHERE id = $1 AND created_by = $2 AND NOT is_deleted`

	j, err := scanJournal(s.db.QueryRowContext(ctx, query, id, owner))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, journal.ErrNotFound
		}

		return nil, fmt.Errorf("getting journal: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectLineColumns+` FROM journal_lines WHERE journal_id = $1 ORDER BY line_number ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("listing journal lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning journal line: %w", err)
		}

		j.Lines = append(j.Lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal lines: %w", err)
	}

	return j, nil
}

func (s *Store) ListJournals(ctx context.Context, filter journal.ListFilter) ([]*journal.Journal, error) {
	query := `SELECT ` + selectJournalColumns + ` FROM journals WHERE created_by = $1 AND NOT is_deleted`

	args := []any{filter.Owner}

	argIdx := 2

	if filter.Posted != nil {
		query += fmt.Sprintf(" AND is_posted = $%d", argIdx)

		args = append(args, *filter.Posted)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
	}

	query += " ORDER BY date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing journals: %w", err)
	}
	defer rows.Close()

	var journals []*journal.Journal

	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning journal: %w", err)
		}

		journals = append(journals, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journals: %w", err)
	}

	return journals, nil
}

type tx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (journal.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, database.Persistence("beginning journal tx", err)
	}

	return &tx{tx: dbTx}, nil
}

func (t *tx) Commit() error {
	return database.Persistence("committing journal tx", t.tx.Commit())
}

func (t *tx) Rollback() error { return t.tx.Rollback() }

func (t *tx) InsertJournal(ctx context.Context, j *journal.Journal) error {
	query := `
		INSERT INTO journals (date, memo, source, journal_type, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		j.Date,
		j.Memo,
		j.Source,
		j.Type,
		j.CreatedBy,
	).Scan(&j.ID, &j.CreatedAt)
	if err != nil {
		return database.Persistence("inserting journal", err)
	}

	return nil
}

func (t *tx) InsertLines(ctx context.Context, journalID uuid.UUID, lines []*journal.Line) error {
	query := `
		INSERT INTO journal_lines (
			journal_id, line_number, account_id, description, debit, credit,
			category, location, vendor, funder
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	for _, l := range lines {
		l.JournalID = journalID

		err := t.tx.QueryRowContext(ctx, query,
			journalID,
			l.LineNumber,
			l.AccountID,
			l.Description,
			l.Debit,
			l.Credit,
			l.Category,
			l.Location,
			l.Vendor,
			l.Funder,
		).Scan(&l.ID)
		if err != nil {
			return database.Persistence(fmt.Sprintf("inserting line %d", l.LineNumber), err)
		}
	}

	return nil
}

// LockJournal returns deleted journals and journals of any owner too so
// callers can tell them apart from missing ones.
func (t *tx) LockJournal(ctx context.Context, id uuid.UUID) (*journal.Journal, error) {
	query := `SELECT ` + selectJournalColumns + ` FROM journals WHERE id = $1 FOR UPDATE`

	j, err := scanJournal(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, journal.ErrNotFound
		}

		return nil, database.Persistence("locking journal", err)
	}

	return j, nil
}

func (t *tx) SetPosted(ctx context.Context, id uuid.UUID, actor string, at time.Time) error {
	query := `UPDATE journals SET is_posted = TRUE, posted_at = $2, posted_by = $3 WHERE id = $1`

	if _, err := t.tx.ExecContext(ctx, query, id, at, actor); err != nil {
		return database.Persistence("posting journal", err)
	}

	return nil
}

func (t *tx) ClearPosted(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE journals SET is_posted = FALSE, posted_at = NULL, posted_by = NULL WHERE id = $1`

	if _, err := t.tx.ExecContext(ctx, query, id); err != nil {
		return database.Persistence("unposting journal", err)
	}

	return nil
}

func (t *tx) MarkDeleted(ctx context.Context, id uuid.UUID) error {
	if _, err := t.tx.ExecContext(ctx, `UPDATE journals SET is_deleted = TRUE WHERE id = $1`, id); err != nil {
		return database.Persistence("deleting journal", err)
	}

	return nil
}
