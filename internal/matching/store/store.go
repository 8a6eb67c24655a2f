package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/database"
	"github.com/MrJamesThe3rd/tally/internal/matching"
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

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// liveLineKey allows one non-void bank transaction per journal line.
const liveLineKey = "bank_transactions_live_line_key"

const selectBankTransactionColumns = `
	id, bank_account_id, journal_id, journal_line_id, transaction_date, post_date, description,
	amount, transaction_type, status, reference_number, match_type, notes, session_id, created_at
`

const selectSessionColumns = `
	id, bank_account_id, start_date, end_date, bank_statement_balance, status, owner, created_at
`

// scanBankTransaction expects the column order of selectBankTransactionColumns.
func scanBankTransaction(s scanner) (*matching.BankTransaction, error) {
	var bt matching.BankTransaction

	var typeStr, statusStr, matchType string

	if err := s.Scan(
		&bt.ID, &bt.BankAccountID, &bt.JournalID, &bt.JournalLineID, &bt.TransactionDate, &bt.PostDate,
		&bt.Description, &bt.Amount, &typeStr, &statusStr, &bt.ReferenceNumber, &matchType, &bt.Notes,
		&bt.SessionID, &bt.CreatedAt,
	); err != nil {
		return nil, err
	}

	bt.Type = matching.Type(typeStr)
	bt.Status = matching.Status(statusStr)
	bt.MatchType = matching.MatchType(matchType)

	return &bt, nil
}

// scanSession expects the column order of selectSessionColumns.
func scanSession(s scanner) (*matching.Session, error) {
	var sess matching.Session

	var status string

	if err := s.Scan(
		&sess.ID, &sess.BankAccountID, &sess.StartDate, &sess.EndDate, &sess.BankStatementBalance,
		&status, &sess.Owner, &sess.CreatedAt,
	); err != nil {
		return nil, err
	}

	sess.Status = matching.SessionStatus(status)

	return &sess, nil
}

// ListSourceLines returns the bank-account lines of a posted, live journal
// that no live bank transaction was generated from. The back-link on the
// line is not consulted: it is written after the insert and may be missing.
func (s *Store) ListSourceLines(ctx context.Context, journalID uuid.UUID, owner string) ([]matching.SourceLine, error) {
	query := `
		SELECT l.id, l.journal_id, l.account_id, j.date, j.memo, l.description, l.debit, l.credit
		FROM journal_lines l
		JOIN journals j ON j.id = l.journal_id
		JOIN accounts a ON a.id = l.account_id
		WHERE l.journal_id = $1 AND j.created_by = $2
		  AND j.is_posted AND NOT j.is_deleted
		  AND a.is_bank_account
		  AND NOT EXISTS (
			SELECT 1 FROM bank_transactions bt
			WHERE bt.journal_line_id = l.id AND bt.status <> 'void'
		  )
		ORDER BY l.line_number ASC
	`

	rows, err := s.db.QueryContext(ctx, query, journalID, owner)
	if err != nil {
		return nil, fmt.Errorf("listing source lines: %w", err)
	}
	defer rows.Close()

	var lines []matching.SourceLine

	for rows.Next() {
		var l matching.SourceLine
		if err := rows.Scan(
			&l.LineID, &l.JournalID, &l.BankAccountID, &l.Date, &l.Memo, &l.Description, &l.Debit, &l.Credit,
		); err != nil {
			return nil, fmt.Errorf("scanning source line: %w", err)
		}

		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating source lines: %w", err)
	}

	return lines, nil
}

func (s *Store) InsertBankTransaction(ctx context.Context, bt *matching.BankTransaction) error {
	query := `
		INSERT INTO bank_transactions (
			bank_account_id, journal_id, journal_line_id, transaction_date, post_date,
			description, amount, transaction_type, status, reference_number, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		bt.BankAccountID,
		bt.JournalID,
		bt.JournalLineID,
		bt.TransactionDate,
		bt.PostDate,
		bt.Description,
		bt.Amount,
		bt.Type,
		bt.Status,
		bt.ReferenceNumber,
		bt.Notes,
	).Scan(&bt.ID, &bt.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, liveLineKey) {
			return fmt.Errorf("%w: line %s", matching.ErrAlreadyGenerated, bt.JournalLineID)
		}

		return fmt.Errorf("inserting bank transaction: %w", err)
	}

	return nil
}

func (s *Store) LinkLine(ctx context.Context, lineID, bankTransactionID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE journal_lines SET bank_transaction_id = $2 WHERE id = $1`, lineID, bankTransactionID); err != nil {
		return fmt.Errorf("linking journal line: %w", err)
	}

	return nil
}

// VoidUnmatchedForJournal voids the journal's unmatched bank transactions
// and clears the back-links pointing at them, in one transaction.
func (s *Store) VoidUnmatchedForJournal(ctx context.Context, journalID uuid.UUID) (int, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, database.Persistence("beginning void tx", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `
		UPDATE journal_lines SET bank_transaction_id = NULL
		WHERE journal_id = $1
		  AND bank_transaction_id IN (
			SELECT id FROM bank_transactions WHERE journal_id = $1 AND status = 'unmatched'
		  )
	`, journalID); err != nil {
		return 0, database.Persistence("clearing back-links", err)
	}

	res, err := dbTx.ExecContext(ctx,
		`UPDATE bank_transactions SET status = 'void' WHERE journal_id = $1 AND status = 'unmatched'`, journalID)
	if err != nil {
		return 0, database.Persistence("voiding bank transactions", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, database.Persistence("voiding bank transactions", err)
	}

	if err := dbTx.Commit(); err != nil {
		return 0, database.Persistence("committing void tx", err)
	}

	return int(n), nil
}

func (s *Store) CountMatchedForJournal(ctx context.Context, journalID uuid.UUID) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bank_transactions WHERE journal_id = $1 AND status = 'matched'`, journalID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting matched: %w", err)
	}

	return n, nil
}

func (s *Store) CreateSession(ctx context.Context, sess *matching.Session) error {
	query := `
		INSERT INTO reconciliation_sessions (bank_account_id, start_date, end_date, bank_statement_balance, status, owner)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		sess.BankAccountID,
		sess.StartDate,
		sess.EndDate,
		sess.BankStatementBalance,
		sess.Status,
		sess.Owner,
	).Scan(&sess.ID, &sess.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	return nil
}

func (s *Store) GetSession(ctx context.Context, id uuid.UUID) (*matching.Session, error) {
	sess, err := scanSession(s.db.QueryRowContext(ctx,
		`SELECT `+selectSessionColumns+` FROM reconciliation_sessions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, matching.ErrSessionNotFound
		}

		return nil, fmt.Errorf("getting session: %w", err)
	}

	return sess, nil
}

func listUnmatched(ctx context.Context, q querier, lock bool, bankAccountID uuid.UUID, start, end time.Time) ([]*matching.BankTransaction, error) {
	query := `SELECT ` + selectBankTransactionColumns + `
		FROM bank_transactions
		WHERE bank_account_id = $1 AND status = 'unmatched'
		  AND transaction_date >= $2 AND transaction_date <= $3
		ORDER BY transaction_date ASC, id ASC`

	if lock {
		query += ` FOR UPDATE`
	}

	rows, err := q.QueryContext(ctx, query, bankAccountID, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing unmatched bank transactions: %w", err)
	}
	defer rows.Close()

	var txs []*matching.BankTransaction

	for rows.Next() {
		bt, err := scanBankTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bank transaction: %w", err)
		}

		txs = append(txs, bt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bank transactions: %w", err)
	}

	return txs, nil
}

func (s *Store) ListUnmatched(ctx context.Context, bankAccountID uuid.UUID, start, end time.Time) ([]*matching.BankTransaction, error) {
	return listUnmatched(ctx, s.db, false, bankAccountID, start, end)
}

type sessionTx struct {
	tx *sql.Tx
}

func (s *Store) BeginSession(ctx context.Context) (matching.SessionTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, database.Persistence("beginning session tx", err)
	}

	return &sessionTx{tx: dbTx}, nil
}

func (t *sessionTx) Commit() error {
	return database.Persistence("committing session tx", t.tx.Commit())
}

func (t *sessionTx) Rollback() error { return t.tx.Rollback() }

func (t *sessionTx) LockSession(ctx context.Context, id uuid.UUID) (*matching.Session, error) {
	sess, err := scanSession(t.tx.QueryRowContext(ctx,
		`SELECT `+selectSessionColumns+` FROM reconciliation_sessions WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, matching.ErrSessionNotFound
		}

		return nil, database.Persistence("locking session", err)
	}

	return sess, nil
}

func (t *sessionTx) ListUnmatched(ctx context.Context, bankAccountID uuid.UUID, start, end time.Time) ([]*matching.BankTransaction, error) {
	return listUnmatched(ctx, t.tx, true, bankAccountID, start, end)
}

// MarkMatched reports false when the transaction is no longer unmatched.
func (t *sessionTx) MarkMatched(ctx context.Context, bankTransactionID, sessionID uuid.UUID, matchType matching.MatchType) (bool, error) {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE bank_transactions
		SET status = 'matched', match_type = $3, session_id = $2
		WHERE id = $1 AND status = 'unmatched'
	`, bankTransactionID, sessionID, matchType)
	if err != nil {
		return false, database.Persistence("marking matched", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, database.Persistence("marking matched", err)
	}

	return n == 1, nil
}

func (t *sessionTx) InsertFeedRow(ctx context.Context, sessionID uuid.UUID, row matching.FeedRow, matchedID *uuid.UUID) error {
	query := `
		INSERT INTO bank_feed_rows (session_id, date, amount, transaction_type, description, matched_transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if _, err := t.tx.ExecContext(ctx, query,
		sessionID, row.Date, row.Amount, row.Type, row.Description, matchedID,
	); err != nil {
		return database.Persistence("inserting feed row", err)
	}

	return nil
}

func (t *sessionTx) CompleteSession(ctx context.Context, id uuid.UUID) error {
	if _, err := t.tx.ExecContext(ctx,
		`UPDATE reconciliation_sessions SET status = 'completed' WHERE id = $1`, id); err != nil {
		return database.Persistence("completing session", err)
	}

	return nil
}
