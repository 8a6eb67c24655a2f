package statement

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/http/auth"
	journalapi "github.com/MrJamesThe3rd/tally/internal/http/journal"
	"github.com/MrJamesThe3rd/tally/internal/http/render"
	"github.com/MrJamesThe3rd/tally/internal/statement"
)

type Handler struct {
	svc *statement.Service
}

func NewHandler(svc *statement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.record)
	r.Post("/ingest", h.ingest)
	r.Get("/processed", h.processed)
	r.Get("/starting-balance", h.startingBalance)
}

type recordRequest struct {
	AccountID         uuid.UUID        `json:"account_id"`
	StatementNumber   string           `json:"statement_number"`
	LastFour          string           `json:"last_four"`
	StatementDate     string           `json:"statement_date"`
	IsStartingBalance bool             `json:"is_starting_balance"`
	StartingBalance   *decimal.Decimal `json:"starting_balance,omitempty"`
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.BadRequest(w, "invalid request body: "+err.Error())
		return
	}

	date, err := time.Parse(time.DateOnly, req.StatementDate)
	if err != nil {
		render.BadRequest(w, "statement_date must be YYYY-MM-DD")
		return
	}

	rec, err := h.svc.Record(r.Context(), statement.RecordParams{
		AccountID:         req.AccountID,
		StatementNumber:   req.StatementNumber,
		LastFour:          req.LastFour,
		StatementDate:     date,
		IsStartingBalance: req.IsStartingBalance,
		StartingBalance:   req.StartingBalance,
		Owner:             auth.Owner(r.Context()),
	})
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toRecordResponse(rec))
}

type ingestRequest struct {
	AccountID         *uuid.UUID                `json:"account_id,omitempty"`
	AccountHint       string                    `json:"account_hint,omitempty"`
	AccountType       account.Type              `json:"account_type,omitempty"`
	StatementNumber   string                    `json:"statement_number"`
	LastFour          string                    `json:"last_four"`
	StatementDate     string                    `json:"statement_date"`
	IsStartingBalance bool                      `json:"is_starting_balance"`
	StartingBalance   *decimal.Decimal          `json:"starting_balance,omitempty"`
	Journal           *journalapi.CreateRequest `json:"journal,omitempty"`
}

// ingest answers 201 when the statement was recorded, 409 for the two
// duplicate outcomes and 200 when an account has to be created first.
func (h *Handler) ingest(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.BadRequest(w, "invalid request body: "+err.Error())
		return
	}

	date, err := time.Parse(time.DateOnly, req.StatementDate)
	if err != nil {
		render.BadRequest(w, "statement_date must be YYYY-MM-DD")
		return
	}

	owner := auth.Owner(r.Context())

	params := statement.IngestParams{
		AccountID:         req.AccountID,
		AccountHint:       req.AccountHint,
		AccountType:       req.AccountType,
		StatementNumber:   req.StatementNumber,
		LastFour:          req.LastFour,
		StatementDate:     date,
		IsStartingBalance: req.IsStartingBalance,
		StartingBalance:   req.StartingBalance,
		Owner:             owner,
	}

	if req.Journal != nil {
		jp, err := req.Journal.Params(owner)
		if err != nil {
			render.BadRequest(w, "journal: "+err.Error())
			return
		}

		params.Journal = &jp
	}

	res, err := h.svc.Ingest(r.Context(), params)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	status := http.StatusOK

	switch res.Outcome {
	case statement.OutcomeRecorded:
		status = http.StatusCreated
	case statement.OutcomeAlreadyProcessed, statement.OutcomeStartingBalanceExists:
		status = http.StatusConflict
	}

	render.JSON(w, status, toIngestResponse(res))
}

func (h *Handler) processed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	key := statement.Key{LastFour: q.Get("last_four")}

	if s := q.Get("account_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			render.BadRequest(w, "invalid account_id")
			return
		}

		key.AccountID = &id
	}

	number := q.Get("statement_number")

	processed, err := h.svc.IsProcessed(r.Context(), key, number, auth.Owner(r.Context()))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]any{
		"statement_number": number,
		"processed":        processed,
	})
}

func (h *Handler) startingBalance(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.URL.Query().Get("account_id"))
	if err != nil {
		render.BadRequest(w, "invalid account_id")
		return
	}

	exists, err := h.svc.HasStartingBalance(r.Context(), id, auth.Owner(r.Context()))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]any{
		"account_id":           id,
		"has_starting_balance": exists,
	})
}
