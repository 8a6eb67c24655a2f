package render_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/database"
	"github.com/MrJamesThe3rd/tally/internal/http/render"
	"github.com/MrJamesThe3rd/tally/internal/journal"
	"github.com/MrJamesThe3rd/tally/internal/matching"
	"github.com/MrJamesThe3rd/tally/internal/statement"
)

func TestError(t *testing.T) {
	type testCase struct {
		name       string
		err        error
		wantStatus int
		wantBody   map[string]any
	}

	tests := []testCase{
		{
			name: "Imbalanced",
			err: &journal.ValidationError{
				Reason:      journal.ReasonImbalanced,
				Difference:  decimal.RequireFromString("1"),
				TotalDebit:  decimal.RequireFromString("100"),
				TotalCredit: decimal.RequireFromString("99"),
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody: map[string]any{
				"error":      "journal is out of balance by 1.00 (debits 100.00, credits 99.00)",
				"reason":     "imbalanced",
				"difference": "1.00",
			},
		},
		{
			name:       "WrappedValidation",
			err:        fmt.Errorf("creating: %w", &journal.ValidationError{Reason: journal.ReasonZeroLine, Line: 2}),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   map[string]any{"reason": "zero_line", "line": float64(2)},
		},
		{
			name:       "NotFound",
			err:        fmt.Errorf("getting: %w", journal.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Conflict",
			err:        statement.ErrAlreadyProcessed,
			wantStatus: http.StatusConflict,
			wantBody:   map[string]any{"error": "statement already processed"},
		},
		{
			name:       "SessionClosed",
			err:        matching.ErrSessionClosed,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "InvalidAccount",
			err:        fmt.Errorf("%w: name is required", account.ErrInvalid),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "Persistence",
			err:        fmt.Errorf("post: %w", database.Persistence("committing", errors.New("conn reset"))),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   map[string]any{"retryable": true},
		},
		{
			name:       "Unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"error": "internal error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			render.Error(w, httptest.NewRequest(http.MethodGet, "/api/v1/x", nil), tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

			for k, v := range tt.wantBody {
				assert.Equal(t, v, body[k], k)
			}
		})
	}
}
