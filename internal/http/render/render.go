// Package render writes JSON responses and maps domain errors to status
// codes for the API handlers.
package render

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/database"
	"github.com/MrJamesThe3rd/tally/internal/importer"
	"github.com/MrJamesThe3rd/tally/internal/importer/cgd"
	"github.com/MrJamesThe3rd/tally/internal/journal"
	"github.com/MrJamesThe3rd/tally/internal/matching"
	"github.com/MrJamesThe3rd/tally/internal/statement"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error      string   `json:"error"`
	Reason     string   `json:"reason,omitempty"`
	Line       int      `json:"line,omitempty"`
	Unresolved []string `json:"unresolved,omitempty"`
	Difference string   `json:"difference,omitempty"`
	Retryable  bool     `json:"retryable,omitempty"`
}

func BadRequest(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// Error writes err with the status its kind maps to. Unclassified errors are
// logged and reported as 500 without their message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var verr *journal.ValidationError
	if errors.As(err, &verr) {
		resp := errorResponse{
			Error:      verr.Error(),
			Reason:     string(verr.Reason),
			Line:       verr.Line,
			Unresolved: verr.Unresolved,
		}

		if verr.Reason == journal.ReasonImbalanced {
			resp.Difference = verr.Difference.StringFixed(2)
		}

		JSON(w, http.StatusUnprocessableEntity, resp)

		return
	}

	switch {
	case errors.Is(err, account.ErrInvalid),
		errors.Is(err, account.ErrParentNotFound),
		errors.Is(err, statement.ErrInvalid),
		errors.Is(err, matching.ErrInvalid),
		errors.Is(err, importer.ErrUnknownBank),
		errors.Is(err, cgd.ErrUnknownLayout):
		JSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, account.ErrNotFound),
		errors.Is(err, journal.ErrNotFound),
		errors.Is(err, matching.ErrSessionNotFound):
		JSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, account.ErrCodeTaken),
		errors.Is(err, statement.ErrAlreadyProcessed),
		errors.Is(err, statement.ErrStartingBalanceExists),
		errors.Is(err, matching.ErrSessionClosed):
		JSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case database.IsPersistence(err):
		slog.Warn("request failed on storage", "path", r.URL.Path, "error", err)
		JSON(w, http.StatusServiceUnavailable, errorResponse{Error: "storage unavailable, retry", Retryable: true})
	default:
		slog.Error("request failed", "path", r.URL.Path, "error", err)
		JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
