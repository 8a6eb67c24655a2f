package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/audit"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	ListAccounts(ctx context.Context) ([]*Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error

	BeginCreate(ctx context.Context) (CreateTx, error)
}

// CreateTx serializes code allocation: the store holds an advisory lock for
// the lifetime of the transaction so two allocations cannot pick the same gap.
type CreateTx interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	ListCodes(ctx context.Context) ([]string, error)
	InsertAccount(ctx context.Context, a *Account) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo      Repository
	audit     audit.Emitter
	resolvers Chain
}

func NewService(repo Repository, emitter audit.Emitter) *Service {
	return &Service{
		repo:      repo,
		audit:     emitter,
		resolvers: DefaultChain(),
	}
}

type CreateParams struct {
	Code          string
	Name          string
	Type          Type
	ParentID      *uuid.UUID
	IsBankAccount bool
	CreditCard    bool
	IsCustom      bool
	Actor         string
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Account, error) {
	return s.repo.ListAccounts(ctx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAccount(ctx, id)
}

// Create inserts a new account. When no code is given the next free code of
// the type's band is allocated inside the same transaction as the insert.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	if !params.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalid, params.Type)
	}

	tx, err := s.repo.BeginCreate(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create: %w", err)
	}
	defer tx.Rollback()

	if params.ParentID != nil {
		parent, err := tx.GetAccount(ctx, *params.ParentID)
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrParentNotFound, params.ParentID)
		}

		if err != nil {
			return nil, fmt.Errorf("get parent: %w", err)
		}

		if parent.Type != params.Type {
			slog.Warn("account type differs from parent",
				"name", name, "type", params.Type, "parent", parent.Code, "parent_type", parent.Type)
		}
	}

	codes, err := tx.ListCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list codes: %w", err)
	}

	code := strings.TrimSpace(params.Code)

	switch {
	case code == "":
		code = NextCode(codes, BandFor(params.Type, params.CreditCard))
	case slices.Contains(codes, code):
		return nil, fmt.Errorf("%w: %s", ErrCodeTaken, code)
	}

	acc := &Account{
		Code:          code,
		Name:          name,
		ParentID:      params.ParentID,
		Type:          params.Type,
		IsBankAccount: params.IsBankAccount,
		IsCustom:      params.IsCustom,
	}

	if err := tx.InsertAccount(ctx, acc); err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit account: %w", err)
	}

	s.audit.Emit(ctx, audit.Event{
		Actor:      params.Actor,
		Action:     audit.ActionAccountCreated,
		EntityType: "account",
		EntityID:   acc.ID.String(),
		After:      map[string]any{"code": acc.Code, "name": acc.Name, "type": acc.Type},
	})

	return acc, nil
}

// Resolve finds the account an identifier refers to, or returns ErrNotFound.
func (s *Service) Resolve(ctx context.Context, identifier string, typeHint Type) (*Account, error) {
	accounts, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if a := s.resolvers.Resolve(Query{Identifier: identifier, Type: typeHint}, accounts); a != nil {
		return a, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, identifier)
}

// ResolveMany resolves every query against a single snapshot of the chart.
// Queries that match nothing are returned in input order.
func (s *Service) ResolveMany(ctx context.Context, queries []Query) (map[Query]*Account, []Query, error) {
	accounts, err := s.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	resolved := make(map[Query]*Account, len(queries))

	var unresolved []Query

	for _, q := range queries {
		if _, done := resolved[q]; done {
			continue
		}

		a := s.resolvers.Resolve(q, accounts)
		if a == nil {
			if !slices.Contains(unresolved, q) {
				unresolved = append(unresolved, q)
			}

			continue
		}

		resolved[q] = a
	}

	return resolved, unresolved, nil
}

// Hierarchy returns the chart of accounts as a forest ordered by code.
func (s *Service) Hierarchy(ctx context.Context) ([]*Node, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	slices.SortFunc(accounts, func(a, b *Account) int {
		return strings.Compare(a.Code, b.Code)
	})

	return BuildHierarchy(accounts), nil
}

func (s *Service) snapshot(ctx context.Context) ([]*Account, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	live := accounts[:0:0]
	for _, a := range accounts {
		if !a.IsDeleted {
			live = append(live, a)
		}
	}

	SortByID(live)

	return live, nil
}
