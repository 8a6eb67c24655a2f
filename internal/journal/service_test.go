package journal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/audit"
	"github.com/MrJamesThe3rd/tally/internal/journal"
)

type mocks struct {
	repo     *journal.MockRepository
	tx       *journal.MockTx
	accounts *journal.MockAccounts
	ledger   *journal.MockBankLedger
	audit    *audit.MockEmitter
}

func newMocks(ctrl *gomock.Controller) *mocks {
	return &mocks{
		repo:     journal.NewMockRepository(ctrl),
		tx:       journal.NewMockTx(ctrl),
		accounts: journal.NewMockAccounts(ctrl),
		ledger:   journal.NewMockBankLedger(ctrl),
		audit:    audit.NewMockEmitter(ctrl),
	}
}

func (m *mocks) service() *journal.Service {
	return journal.NewService(m.repo, m.accounts, m.ledger, m.audit)
}

var (
	rentAccount     = &account.Account{ID: uuid.New(), Code: "6100", Name: "Rent", Type: account.TypeExpense}
	checkingAccount = &account.Account{ID: uuid.New(), Code: "1010", Name: "Checking", Type: account.TypeAsset, IsBankAccount: true}

	rentQuery     = account.Query{Identifier: "6100 Rent"}
	checkingQuery = account.Query{Identifier: "1010 Checking"}
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rentParams() journal.CreateParams {
	return journal.CreateParams{
		Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Memo:      "Rent",
		CreatedBy: "u1",
		Lines: []journal.LineParams{
			{Account: "6100 Rent", Debit: amount("1000")},
			{Account: "1010 Checking", Credit: amount("1000")},
		},
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name       string
		params     func() journal.CreateParams
		setupMock  func(m *mocks)
		wantReason journal.Reason
		wantErr    bool
		check      func(t *testing.T, j *journal.Journal, err error)
	}

	tests := []testCase{
		{
			name:   "Success",
			params: rentParams,
			setupMock: func(m *mocks) {
				m.accounts.EXPECT().
					ResolveMany(gomock.Any(), []account.Query{rentQuery, checkingQuery}).
					Return(map[account.Query]*account.Account{rentQuery: rentAccount, checkingQuery: checkingAccount}, nil, nil)
				m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.tx.EXPECT().InsertJournal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, j *journal.Journal) error {
						j.ID = uuid.New()
						return nil
					})
				m.tx.EXPECT().InsertLines(gomock.Any(), gomock.Any(), gomock.Len(2)).Return(nil)
				m.tx.EXPECT().Commit().Return(nil)
				m.tx.EXPECT().Rollback().Return(nil)
			},
			check: func(t *testing.T, j *journal.Journal, _ error) {
				assert.NotEqual(t, uuid.Nil, j.ID)
				assert.False(t, j.IsPosted)
				assert.Equal(t, journal.DefaultSource, j.Source)
				assert.Equal(t, journal.DefaultType, j.Type)
				require.Len(t, j.Lines, 2)
				assert.Equal(t, 1, j.Lines[0].LineNumber)
				assert.Equal(t, rentAccount.ID, j.Lines[0].AccountID)
				assert.Equal(t, 2, j.Lines[1].LineNumber)
				assert.Equal(t, checkingAccount.ID, j.Lines[1].AccountID)

				debit, credit := j.Totals()
				assert.True(t, debit.Equal(credit))
			},
		},
		{
			name: "EmptyLines",
			params: func() journal.CreateParams {
				return journal.CreateParams{Memo: "nothing"}
			},
			wantReason: journal.ReasonEmpty,
		},
		{
			name: "ImbalancedByOneDollar",
			params: func() journal.CreateParams {
				p := rentParams()
				p.Lines[0].Debit = amount("100")
				p.Lines[1].Credit = amount("99")

				return p
			},
			setupMock: func(m *mocks) {
				m.accounts.EXPECT().ResolveMany(gomock.Any(), gomock.Any()).
					Return(map[account.Query]*account.Account{rentQuery: rentAccount, checkingQuery: checkingAccount}, nil, nil)
			},
			wantReason: journal.ReasonImbalanced,
			check: func(t *testing.T, _ *journal.Journal, err error) {
				var verr *journal.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "1.00", verr.Difference.StringFixed(2))
			},
		},
		{
			name: "UnresolvedAccount",
			params: func() journal.CreateParams {
				p := rentParams()
				p.Lines[0].Account = "Travel"

				return p
			},
			setupMock: func(m *mocks) {
				m.accounts.EXPECT().ResolveMany(gomock.Any(), gomock.Any()).
					Return(map[account.Query]*account.Account{checkingQuery: checkingAccount},
						[]account.Query{{Identifier: "Travel"}}, nil)
			},
			wantReason: journal.ReasonUnresolved,
			check: func(t *testing.T, _ *journal.Journal, err error) {
				var verr *journal.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, []string{"Travel"}, verr.Unresolved)
			},
		},
		{
			name: "AutoCreatesMissingAccount",
			params: func() journal.CreateParams {
				p := rentParams()
				p.Lines[0].Account = "6150 Utilities"
				p.AutoCreateAccounts = true

				return p
			},
			setupMock: func(m *mocks) {
				utilities := account.Query{Identifier: "6150 Utilities"}
				created := &account.Account{ID: uuid.New(), Code: "6150", Name: "Utilities", Type: account.TypeExpense}

				m.accounts.EXPECT().ResolveMany(gomock.Any(), gomock.Any()).
					Return(map[account.Query]*account.Account{checkingQuery: checkingAccount},
						[]account.Query{utilities}, nil)
				m.accounts.EXPECT().Create(gomock.Any(), account.CreateParams{
					Code:     "6150",
					Name:     "Utilities",
					Type:     account.TypeExpense,
					IsCustom: true,
					Actor:    "u1",
				}).Return(created, nil)
				m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.tx.EXPECT().InsertJournal(gomock.Any(), gomock.Any()).Return(nil)
				m.tx.EXPECT().InsertLines(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, lines []*journal.Line) error {
						assert.Equal(t, created.ID, lines[0].AccountID)
						return nil
					})
				m.tx.EXPECT().Commit().Return(nil)
				m.tx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name: "AutoCreateSkippedWhenImbalanced",
			params: func() journal.CreateParams {
				p := rentParams()
				p.Lines[0].Account = "Travel"
				p.Lines[0].Debit = amount("10")
				p.AutoCreateAccounts = true

				return p
			},
			setupMock: func(m *mocks) {
				m.accounts.EXPECT().ResolveMany(gomock.Any(), gomock.Any()).
					Return(map[account.Query]*account.Account{checkingQuery: checkingAccount},
						[]account.Query{{Identifier: "Travel"}}, nil)
			},
			wantReason: journal.ReasonImbalanced,
		},
		{
			name: "FailedInsertDiscardsCreatedAccounts",
			params: func() journal.CreateParams {
				p := rentParams()
				p.Lines[0].Account = "6150 Utilities"
				p.AutoCreateAccounts = true

				return p
			},
			setupMock: func(m *mocks) {
				utilities := account.Query{Identifier: "6150 Utilities"}
				created := &account.Account{ID: uuid.New(), Code: "6150", Name: "Utilities", Type: account.TypeExpense}

				m.accounts.EXPECT().ResolveMany(gomock.Any(), gomock.Any()).
					Return(map[account.Query]*account.Account{checkingQuery: checkingAccount},
						[]account.Query{utilities}, nil)
				m.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)
				m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.tx.EXPECT().InsertJournal(gomock.Any(), gomock.Any()).Return(nil)
				m.tx.EXPECT().InsertLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("constraint"))
				m.tx.EXPECT().Rollback().Return(nil)
				m.accounts.EXPECT().Delete(gomock.Any(), created.ID).Return(nil)
			},
			wantErr: true,
		},
		{
			name: "SecondAccountCreateFailsDiscardsFirst",
			params: func() journal.CreateParams {
				p := rentParams()
				p.Lines[0].Account = "6150 Utilities"
				p.Lines[1].Account = "1020 Savings"
				p.AutoCreateAccounts = true

				return p
			},
			setupMock: func(m *mocks) {
				utilities := account.Query{Identifier: "6150 Utilities"}
				savings := account.Query{Identifier: "1020 Savings"}
				created := &account.Account{ID: uuid.New(), Code: "6150", Name: "Utilities", Type: account.TypeExpense}

				m.accounts.EXPECT().ResolveMany(gomock.Any(), gomock.Any()).
					Return(nil, []account.Query{utilities, savings}, nil)
				gomock.InOrder(
					m.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil),
					m.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, account.ErrCodeTaken),
					m.accounts.EXPECT().Delete(gomock.Any(), created.ID).Return(nil),
				)
			},
			wantErr: true,
		},
		{
			name:   "InsertLinesFailsRollsBack",
			params: rentParams,
			setupMock: func(m *mocks) {
				m.accounts.EXPECT().ResolveMany(gomock.Any(), gomock.Any()).
					Return(map[account.Query]*account.Account{rentQuery: rentAccount, checkingQuery: checkingAccount}, nil, nil)
				m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.tx.EXPECT().InsertJournal(gomock.Any(), gomock.Any()).Return(nil)
				m.tx.EXPECT().InsertLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("constraint"))
				m.tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: true,
		},
		{
			name:   "ResolveFails",
			params: rentParams,
			setupMock: func(m *mocks) {
				m.accounts.EXPECT().ResolveMany(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			got, err := m.service().Create(context.Background(), tt.params())

			switch {
			case tt.wantReason != "":
				var verr *journal.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantReason, verr.Reason)
				assert.Nil(t, got)
			case tt.wantErr:
				assert.Error(t, err)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				require.NotNil(t, got)
			}

			if tt.check != nil {
				tt.check(t, got, err)
			}
		})
	}
}

func TestService_Post_SameIDTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	id := uuid.New()

	m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil).Times(2)
	m.tx.EXPECT().LockJournal(gomock.Any(), id).Return(&journal.Journal{ID: id, CreatedBy: "u1"}, nil)
	m.tx.EXPECT().LockJournal(gomock.Any(), id).Return(&journal.Journal{ID: id, CreatedBy: "u1", IsPosted: true}, nil)
	m.tx.EXPECT().SetPosted(gomock.Any(), id, "u1", gomock.Any()).Return(nil)
	m.tx.EXPECT().Commit().Return(nil)
	m.tx.EXPECT().Rollback().Return(nil).Times(2)
	m.ledger.EXPECT().GenerateFromJournal(gomock.Any(), id, "u1").Return(1, nil).Times(1)
	m.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e audit.Event) {
			assert.Equal(t, audit.ActionJournalPosted, e.Action)
			assert.Equal(t, id.String(), e.EntityID)
			assert.Equal(t, "u1", e.Actor)
		}).Times(1)

	result, err := m.service().Post(context.Background(), []uuid.UUID{id, id}, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.PostedCount())
	assert.Equal(t, []journal.Skip{{ID: id, Reason: journal.SkipAlreadyPosted}}, result.Skipped)
}

func TestService_Post_SkipsWithReasons(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	missing, deleted, foreign, broken, good := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()

	gomock.InOrder(
		m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil),
		m.tx.EXPECT().LockJournal(gomock.Any(), missing).Return(nil, journal.ErrNotFound),
		m.tx.EXPECT().Rollback().Return(nil),

		m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil),
		m.tx.EXPECT().LockJournal(gomock.Any(), deleted).Return(&journal.Journal{ID: deleted, CreatedBy: "u1", IsDeleted: true}, nil),
		m.tx.EXPECT().Rollback().Return(nil),

		m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil),
		m.tx.EXPECT().LockJournal(gomock.Any(), foreign).Return(&journal.Journal{ID: foreign, CreatedBy: "u2"}, nil),
		m.tx.EXPECT().Rollback().Return(nil),

		m.repo.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("too many connections")),

		m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil),
		m.tx.EXPECT().LockJournal(gomock.Any(), good).Return(&journal.Journal{ID: good, CreatedBy: "u1"}, nil),
		m.tx.EXPECT().SetPosted(gomock.Any(), good, "u1", gomock.Any()).Return(nil),
		m.tx.EXPECT().Commit().Return(nil),
		m.tx.EXPECT().Rollback().Return(nil),
		m.ledger.EXPECT().GenerateFromJournal(gomock.Any(), good, "u1").Return(0, errors.New("generation failed")),
		m.audit.EXPECT().Emit(gomock.Any(), gomock.Any()),
	)

	result, err := m.service().Post(context.Background(), []uuid.UUID{missing, deleted, foreign, broken, good}, "u1")
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{good}, result.Posted)
	assert.Equal(t, []journal.Skip{
		{ID: missing, Reason: journal.SkipNotFound},
		{ID: deleted, Reason: journal.SkipDeleted},
		{ID: foreign, Reason: journal.SkipNotFound},
		{ID: broken, Reason: journal.SkipFailed},
	}, result.Skipped)
}

func TestService_Post_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := m.service().Post(ctx, []uuid.UUID{uuid.New()}, "u1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, result.PostedCount())
	assert.Empty(t, result.Skipped)
}

func TestService_Unpost(t *testing.T) {
	id := uuid.New()

	type testCase struct {
		name       string
		setupMock  func(m *mocks)
		wantErrIs  error
		wantReason journal.Reason
	}

	tests := []testCase{
		{
			name: "PostedJournal",
			setupMock: func(m *mocks) {
				m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.tx.EXPECT().LockJournal(gomock.Any(), id).Return(&journal.Journal{ID: id, CreatedBy: "u1", IsPosted: true}, nil)
				m.tx.EXPECT().ClearPosted(gomock.Any(), id).Return(nil)
				m.tx.EXPECT().Commit().Return(nil)
				m.tx.EXPECT().Rollback().Return(nil)
				m.ledger.EXPECT().VoidForJournal(gomock.Any(), id).Return(1, 1, nil)
				m.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, e audit.Event) {
						assert.Equal(t, audit.ActionJournalUnposted, e.Action)
						assert.Equal(t, 1, e.Context["bank_transactions_voided"])
						assert.Equal(t, 1, e.Context["bank_transactions_kept"])
					})
			},
		},
		{
			name: "DraftJournal",
			setupMock: func(m *mocks) {
				m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.tx.EXPECT().LockJournal(gomock.Any(), id).Return(&journal.Journal{ID: id, CreatedBy: "u1"}, nil)
				m.tx.EXPECT().Rollback().Return(nil)
			},
			wantReason: journal.ReasonInvalidTransition,
		},
		{
			name: "DeletedJournal",
			setupMock: func(m *mocks) {
				m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.tx.EXPECT().LockJournal(gomock.Any(), id).Return(&journal.Journal{ID: id, CreatedBy: "u1", IsPosted: true, IsDeleted: true}, nil)
				m.tx.EXPECT().Rollback().Return(nil)
			},
			wantErrIs: journal.ErrNotFound,
		},
		{
			name: "Missing",
			setupMock: func(m *mocks) {
				m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.tx.EXPECT().LockJournal(gomock.Any(), id).Return(nil, journal.ErrNotFound)
				m.tx.EXPECT().Rollback().Return(nil)
			},
			wantErrIs: journal.ErrNotFound,
		},
		{
			name: "OtherOwner",
			setupMock: func(m *mocks) {
				m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.tx.EXPECT().LockJournal(gomock.Any(), id).Return(&journal.Journal{ID: id, CreatedBy: "u2", IsPosted: true}, nil)
				m.tx.EXPECT().Rollback().Return(nil)
			},
			wantErrIs: journal.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			tt.setupMock(m)

			err := m.service().Unpost(context.Background(), id, "u1")

			switch {
			case tt.wantReason != "":
				var verr *journal.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantReason, verr.Reason)
			case tt.wantErrIs != nil:
				assert.ErrorIs(t, err, tt.wantErrIs)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	id := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *mocks)
		wantErrIs error
	}

	tests := []testCase{
		{
			name: "PostedJournalVoidsBankTransactions",
			setupMock: func(m *mocks) {
				m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.tx.EXPECT().LockJournal(gomock.Any(), id).Return(&journal.Journal{ID: id, CreatedBy: "u1", IsPosted: true}, nil)
				m.tx.EXPECT().MarkDeleted(gomock.Any(), id).Return(nil)
				m.tx.EXPECT().Commit().Return(nil)
				m.tx.EXPECT().Rollback().Return(nil)
				m.ledger.EXPECT().VoidForJournal(gomock.Any(), id).Return(2, 0, nil)
				m.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, e audit.Event) {
						assert.Equal(t, audit.ActionJournalDeleted, e.Action)
					})
			},
		},
		{
			name: "DraftJournal",
			setupMock: func(m *mocks) {
				m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.tx.EXPECT().LockJournal(gomock.Any(), id).Return(&journal.Journal{ID: id, CreatedBy: "u1"}, nil)
				m.tx.EXPECT().MarkDeleted(gomock.Any(), id).Return(nil)
				m.tx.EXPECT().Commit().Return(nil)
				m.tx.EXPECT().Rollback().Return(nil)
				m.audit.EXPECT().Emit(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "VoidFailureIsNotFatal",
			setupMock: func(m *mocks) {
				m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.tx.EXPECT().LockJournal(gomock.Any(), id).Return(&journal.Journal{ID: id, CreatedBy: "u1", IsPosted: true}, nil)
				m.tx.EXPECT().MarkDeleted(gomock.Any(), id).Return(nil)
				m.tx.EXPECT().Commit().Return(nil)
				m.tx.EXPECT().Rollback().Return(nil)
				m.ledger.EXPECT().VoidForJournal(gomock.Any(), id).Return(0, 0, errors.New("db down"))
				m.audit.EXPECT().Emit(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "OtherOwner",
			setupMock: func(m *mocks) {
				m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.tx.EXPECT().LockJournal(gomock.Any(), id).Return(&journal.Journal{ID: id, CreatedBy: "u2"}, nil)
				m.tx.EXPECT().Rollback().Return(nil)
			},
			wantErrIs: journal.ErrNotFound,
		},
		{
			name: "AlreadyDeleted",
			setupMock: func(m *mocks) {
				m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.tx.EXPECT().LockJournal(gomock.Any(), id).Return(&journal.Journal{ID: id, CreatedBy: "u1", IsDeleted: true}, nil)
				m.tx.EXPECT().Rollback().Return(nil)
			},
			wantErrIs: journal.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			tt.setupMock(m)

			err := m.service().Delete(context.Background(), id, "u1")

			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_ReadsAreScopedToOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	id := uuid.New()
	posted := true

	m.repo.EXPECT().GetJournal(gomock.Any(), id, "u2").Return(nil, journal.ErrNotFound)
	m.repo.EXPECT().ListJournals(gomock.Any(), journal.ListFilter{Owner: "u1", Posted: &posted}).
		Return([]*journal.Journal{{ID: id, CreatedBy: "u1"}}, nil)

	_, err := m.service().Get(context.Background(), id, "u2")
	assert.ErrorIs(t, err, journal.ErrNotFound)

	// A caller-supplied owner in the filter is overridden.
	got, err := m.service().List(context.Background(), "u1", journal.ListFilter{Owner: "u2", Posted: &posted})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
