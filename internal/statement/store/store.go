package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/database"
	"github.com/MrJamesThe3rd/tally/internal/statement"
)

const (
	constraintAccountStatement = "statement_trackers_account_statement_key"
	constraintStartingBalance  = "statement_trackers_starting_balance_key"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) IsProcessedByAccount(ctx context.Context, accountID uuid.UUID, statementNumber, owner string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM statement_trackers
			WHERE account_id = $1 AND statement_number = $2 AND owner = $3
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, accountID, statementNumber, owner).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking statement by account: %w", err)
	}

	return exists, nil
}

func (s *Store) IsProcessedByLastFour(ctx context.Context, lastFour, statementNumber, owner string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM statement_trackers
			WHERE last_four = $1 AND statement_number = $2 AND owner = $3
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, lastFour, statementNumber, owner).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking statement by last four: %w", err)
	}

	return exists, nil
}

// FindLinkedAccount returns the account of the most recent statement that
// shares the last four digits, else the statement number. Deleted accounts
// are not linked.
func (s *Store) FindLinkedAccount(ctx context.Context, statementNumber, lastFour, owner string) (*uuid.UUID, error) {
	query := `
		SELECT st.account_id
		FROM statement_trackers st
		JOIN accounts a ON a.id = st.account_id
		WHERE st.owner = $1
		  AND NOT a.is_deleted
		  AND ((st.last_four <> '' AND st.last_four = $2) OR st.statement_number = $3)
		ORDER BY (st.last_four <> '' AND st.last_four = $2) DESC, st.processed_date DESC
		LIMIT 1
	`

	var id uuid.UUID

	err := s.db.QueryRowContext(ctx, query, owner, lastFour, statementNumber).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("finding linked account: %w", err)
	}

	return &id, nil
}

func (s *Store) HasStartingBalance(ctx context.Context, accountID uuid.UUID, owner string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM statement_trackers
			WHERE account_id = $1 AND owner = $2 AND is_starting_balance
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, accountID, owner).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking starting balance: %w", err)
	}

	return exists, nil
}

type tx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (statement.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, database.Persistence("beginning statement tx", err)
	}

	return &tx{tx: dbTx}, nil
}

func (t *tx) Commit() error {
	return database.Persistence("committing statement tx", t.tx.Commit())
}

func (t *tx) Rollback() error { return t.tx.Rollback() }

// InsertRecord maps the table's unique constraints to the statement
// conflict errors.
func (t *tx) InsertRecord(ctx context.Context, r *statement.Record) error {
	query := `
		INSERT INTO statement_trackers (account_id, statement_number, last_four, statement_date, is_starting_balance, owner)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, processed_date
	`

	err := t.tx.QueryRowContext(ctx, query,
		r.AccountID,
		r.StatementNumber,
		r.LastFour,
		r.StatementDate,
		r.IsStartingBalance,
		r.Owner,
	).Scan(&r.ID, &r.ProcessedAt)

	switch {
	case err == nil:
		return nil
	case database.IsUniqueViolation(err, constraintAccountStatement):
		return statement.ErrAlreadyProcessed
	case database.IsUniqueViolation(err, constraintStartingBalance):
		return statement.ErrStartingBalanceExists
	default:
		return database.Persistence("inserting statement", err)
	}
}

func (t *tx) SetStartingBalance(ctx context.Context, accountID uuid.UUID, balance decimal.Decimal, date time.Time) error {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE accounts SET starting_balance = $2, balance_date = $3 WHERE id = $1 AND NOT is_deleted`,
		accountID, balance, date)
	if err != nil {
		return database.Persistence("setting starting balance", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return database.Persistence("setting starting balance", err)
	}

	if n == 0 {
		return fmt.Errorf("setting starting balance: account %s not found", accountID)
	}

	return nil
}
