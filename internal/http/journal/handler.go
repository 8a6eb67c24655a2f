package journal

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/http/auth"
	"github.com/MrJamesThe3rd/tally/internal/http/render"
	"github.com/MrJamesThe3rd/tally/internal/journal"
)

type Handler struct {
	svc *journal.Service
}

func NewHandler(svc *journal.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Post("/post", h.post)
	r.Get("/{id}", h.get)
	r.Post("/{id}/unpost", h.unpost)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.BadRequest(w, "invalid request body: "+err.Error())
		return
	}

	params, err := req.Params(auth.Owner(r.Context()))
	if err != nil {
		render.BadRequest(w, err.Error())
		return
	}

	j, err := h.svc.Create(r.Context(), params)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, ToResponse(j))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := journal.ListFilter{}
	q := r.URL.Query()

	if s := q.Get("posted"); s != "" {
		posted, err := strconv.ParseBool(s)
		if err != nil {
			render.BadRequest(w, "posted must be true or false")
			return
		}

		filter.Posted = new(posted)
	}

	if s := q.Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := q.Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	journals, err := h.svc.List(r.Context(), auth.Owner(r.Context()), filter)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponseList(journals))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.BadRequest(w, "invalid id")
		return
	}

	j, err := h.svc.Get(r.Context(), id, auth.Owner(r.Context()))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, ToResponse(j))
}

type postRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// post answers 200 with the per-journal result even when some were skipped.
// A batch cut short by the request context still reports what it posted,
// flagged as incomplete.
func (h *Handler) post(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.BadRequest(w, "invalid request body: "+err.Error())
		return
	}

	if len(req.IDs) == 0 {
		render.BadRequest(w, "ids must not be empty")
		return
	}

	res, err := h.svc.Post(r.Context(), req.IDs, auth.Owner(r.Context()))
	if err != nil && res == nil {
		render.Error(w, r, err)
		return
	}

	resp := toPostResponse(res)

	if err != nil {
		slog.Warn("journal posting interrupted", "posted", res.PostedCount(), "requested", len(req.IDs), "error", err)

		resp.Incomplete = true
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) unpost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.BadRequest(w, "invalid id")
		return
	}

	if err := h.svc.Unpost(r.Context(), id, auth.Owner(r.Context())); err != nil {
		render.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.BadRequest(w, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id, auth.Owner(r.Context())); err != nil {
		render.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
