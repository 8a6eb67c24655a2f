package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound       = errors.New("account not found")
	ErrCodeTaken      = errors.New("account code already in use")
	ErrParentNotFound = errors.New("parent account not found")
	ErrInvalid        = errors.New("invalid account")
)

// Type is the accounting classification of an account.
type Type string

const (
	TypeAsset     Type = "asset"
	TypeLiability Type = "liability"
	TypeEquity    Type = "equity"
	TypeRevenue   Type = "revenue"
	TypeExpense   Type = "expense"
)

func (t Type) Valid() bool {
	switch t {
	case TypeAsset, TypeLiability, TypeEquity, TypeRevenue, TypeExpense:
		return true
	}

	return false
}

// Account is a node of the chart of accounts.
type Account struct {
	ID              uuid.UUID
	Code            string
	Name            string
	ParentID        *uuid.UUID
	Type            Type
	IsBankAccount   bool
	IsCustom        bool
	IsDeleted       bool
	StartingBalance *decimal.Decimal
	BalanceDate     *time.Time
	CreatedAt       time.Time
}

// IsCreditCard reports whether the account code sits in the credit-card
// liability band.
func (a *Account) IsCreditCard() bool {
	return BandCreditCard.Contains(a.Code)
}

// BankLinked reports whether statements and bank feeds can target the account.
func (a *Account) BankLinked() bool {
	return a.IsBankAccount || a.IsCreditCard()
}
