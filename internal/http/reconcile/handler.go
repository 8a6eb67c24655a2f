package reconcile

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/http/auth"
	"github.com/MrJamesThe3rd/tally/internal/http/render"
	"github.com/MrJamesThe3rd/tally/internal/importer"
	"github.com/MrJamesThe3rd/tally/internal/matching"
)

const maxUploadSize = 10 << 20

type Handler struct {
	svc       *matching.Service
	importSvc *importer.Service
}

func NewHandler(svc *matching.Service, importSvc *importer.Service) *Handler {
	return &Handler{
		svc:       svc,
		importSvc: importSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/journals/{id}/generate", h.generate)

	r.Route("/sessions", func(r chi.Router) {
		r.With(middleware.AllowContentType("application/json")).Post("/", h.openSession)
		r.Get("/{id}", h.getSession)
		r.With(middleware.AllowContentType("application/json")).Post("/{id}/feed", h.feed)
		r.Post("/{id}/import", h.importFeed)
		r.Post("/{id}/complete", h.complete)
	})
}

// generate retriggers bank-ledger generation for a posted journal. Lines
// that already have a live bank transaction are left alone.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.BadRequest(w, "invalid id")
		return
	}

	created, err := h.svc.GenerateFromJournal(r.Context(), id, auth.Owner(r.Context()))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]int{"created": created})
}

type openSessionRequest struct {
	BankAccountID        uuid.UUID       `json:"bank_account_id"`
	StartDate            string          `json:"start_date"`
	EndDate              string          `json:"end_date"`
	BankStatementBalance decimal.Decimal `json:"bank_statement_balance"`
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	var req openSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.BadRequest(w, "invalid request body: "+err.Error())
		return
	}

	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		render.BadRequest(w, "start_date must be YYYY-MM-DD")
		return
	}

	end, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		render.BadRequest(w, "end_date must be YYYY-MM-DD")
		return
	}

	session, err := h.svc.OpenSession(r.Context(), matching.OpenSessionParams{
		BankAccountID:        req.BankAccountID,
		StartDate:            start,
		EndDate:              end,
		BankStatementBalance: req.BankStatementBalance,
		Owner:                auth.Owner(r.Context()),
	})
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toSessionResponse(session))
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.BadRequest(w, "invalid id")
		return
	}

	detail, err := h.svc.GetSession(r.Context(), id, auth.Owner(r.Context()))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, sessionDetailResponse{
		sessionResponse: toSessionResponse(detail.Session),
		UnmatchedLedger: toBankTxList(detail.UnmatchedLedger),
	})
}

type feedRowRequest struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Type        matching.Type   `json:"type"`
	Description string          `json:"description"`
}

type feedRequest struct {
	Rows []feedRowRequest `json:"rows"`
}

func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.BadRequest(w, "invalid id")
		return
	}

	var req feedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.BadRequest(w, "invalid request body: "+err.Error())
		return
	}

	rows := make([]matching.FeedRow, len(req.Rows))
	for i, row := range req.Rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			render.BadRequest(w, "row dates must be YYYY-MM-DD")
			return
		}

		rows[i] = matching.FeedRow{
			Date:        date,
			Amount:      row.Amount,
			Type:        row.Type,
			Description: row.Description,
		}
	}

	h.reconcile(w, r, id, rows)
}

// importFeed takes a multipart upload with the bank name in "bank" and the
// CSV export in "file".
func (h *Handler) importFeed(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.BadRequest(w, "invalid id")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		render.BadRequest(w, "failed to parse form: "+err.Error())
		return
	}

	bank := importer.Bank(r.FormValue("bank"))
	if bank == "" {
		render.BadRequest(w, "bank field is required")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		render.BadRequest(w, "file field is required")
		return
	}
	defer file.Close()

	rows, err := h.importSvc.Import(bank, file)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	h.reconcile(w, r, id, rows)
}

func (h *Handler) reconcile(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, rows []matching.FeedRow) {
	res, err := h.svc.Reconcile(r.Context(), sessionID, auth.Owner(r.Context()), rows)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toReconcileResponse(res))
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.BadRequest(w, "invalid id")
		return
	}

	session, err := h.svc.CompleteSession(r.Context(), id, auth.Owner(r.Context()))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toSessionResponse(session))
}
