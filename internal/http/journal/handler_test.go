package journal_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/audit"
	"github.com/MrJamesThe3rd/tally/internal/http/auth"
	journalapi "github.com/MrJamesThe3rd/tally/internal/http/journal"
	"github.com/MrJamesThe3rd/tally/internal/journal"
)

type mocks struct {
	repo *journal.MockRepository
	tx   *journal.MockTx
}

func newRouter(ctrl *gomock.Controller) (chi.Router, *mocks) {
	m := &mocks{
		repo: journal.NewMockRepository(ctrl),
		tx:   journal.NewMockTx(ctrl),
	}
	svc := journal.NewService(m.repo, journal.NewMockAccounts(ctrl), journal.NewMockBankLedger(ctrl), audit.Nop)

	r := chi.NewRouter()
	journalapi.NewHandler(svc).Routes(r)

	return r, m
}

func TestHandler_Post(t *testing.T) {
	id := uuid.New()

	type testCase struct {
		name           string
		cancel         bool
		setupMock      func(m *mocks)
		wantIncomplete bool
		wantSkipped    int
	}

	tests := []testCase{
		{
			name: "MissingJournalIsSkipped",
			setupMock: func(m *mocks) {
				m.repo.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.tx.EXPECT().LockJournal(gomock.Any(), id).Return(nil, journal.ErrNotFound)
				m.tx.EXPECT().Rollback().Return(nil)
			},
			wantSkipped: 1,
		},
		{
			name:           "CancelledRequestReturnsPartialResult",
			cancel:         true,
			setupMock:      func(*mocks) {},
			wantIncomplete: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, m := newRouter(ctrl)
			tt.setupMock(m)

			ctx, cancel := context.WithCancel(auth.WithOwner(context.Background(), "u1"))
			defer cancel()

			if tt.cancel {
				cancel()
			}

			body := `{"ids": ["` + id.String() + `"]}`
			req := httptest.NewRequest(http.MethodPost, "/post", strings.NewReader(body)).WithContext(ctx)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var resp struct {
				PostedCount int               `json:"posted_count"`
				Skipped     []json.RawMessage `json:"skipped"`
				Incomplete  bool              `json:"incomplete"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.Zero(t, resp.PostedCount)
			assert.Len(t, resp.Skipped, tt.wantSkipped)
			assert.Equal(t, tt.wantIncomplete, resp.Incomplete)
		})
	}
}
