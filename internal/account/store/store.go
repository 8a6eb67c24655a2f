package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/database"
)

// codeLockKey guards code allocation. A single key is used for every band
// because overflowing allocations spill into the neighbouring band.
var codeLockKey = database.LockKey("account-code")

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const selectAccountColumns = `
	id, code, name, parent_id, account_type, is_bank_account, is_custom, is_deleted,
	starting_balance, balance_date, created_at
`

// scanAccount expects the column order of selectAccountColumns.
func scanAccount(s scanner) (*account.Account, error) {
	var a account.Account

	var typeStr string

	var balance decimal.NullDecimal

	var balanceDate sql.NullTime

	if err := s.Scan(
		&a.ID, &a.Code, &a.Name, &a.ParentID, &typeStr, &a.IsBankAccount, &a.IsCustom, &a.IsDeleted,
		&balance, &balanceDate, &a.CreatedAt,
	); err != nil {
		return nil, err
	}

	a.Type = account.Type(typeStr)

	if balance.Valid {
		a.StartingBalance = &balance.Decimal
	}

	if balanceDate.Valid {
		a.BalanceDate = &balanceDate.Time
	}

	return &a, nil
}

func getAccount(ctx context.Context, q queryer, id uuid.UUID) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE id = $1 AND NOT is_deleted`

	a, err := scanAccount(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return a, nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return getAccount(ctx, s.db, id)
}

func (s *Store) ListAccounts(ctx context.Context) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE NOT is_deleted ORDER BY code ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accounts: %w", err)
	}

	return accounts, nil
}

func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `UPDATE accounts SET is_deleted = TRUE WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	if n == 0 {
		return account.ErrNotFound
	}

	return nil
}

type createTx struct {
	tx *sql.Tx
}

func (s *Store) BeginCreate(ctx context.Context) (account.CreateTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, database.Persistence("beginning account tx", err)
	}

	if err := database.AdvisoryLock(ctx, dbTx, codeLockKey); err != nil {
		dbTx.Rollback()
		return nil, database.Persistence("locking account codes", err)
	}

	return &createTx{tx: dbTx}, nil
}

func (c *createTx) Commit() error {
	return database.Persistence("committing account", c.tx.Commit())
}

func (c *createTx) Rollback() error { return c.tx.Rollback() }

func (c *createTx) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return getAccount(ctx, c.tx, id)
}

// ListCodes includes deleted accounts: their codes stay reserved.
func (c *createTx) ListCodes(ctx context.Context) ([]string, error) {
	rows, err := c.tx.QueryContext(ctx, `SELECT code FROM accounts`)
	if err != nil {
		return nil, fmt.Errorf("listing codes: %w", err)
	}
	defer rows.Close()

	var codes []string

	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scanning code: %w", err)
		}

		codes = append(codes, code)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating codes: %w", err)
	}

	return codes, nil
}

func (c *createTx) InsertAccount(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO accounts (code, name, parent_id, account_type, is_bank_account, is_custom)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := c.tx.QueryRowContext(ctx, query,
		a.Code,
		a.Name,
		a.ParentID,
		a.Type,
		a.IsBankAccount,
		a.IsCustom,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "") {
			return fmt.Errorf("%w: %s", account.ErrCodeTaken, a.Code)
		}

		return database.Persistence("inserting account", err)
	}

	return nil
}
