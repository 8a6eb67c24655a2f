package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/http/auth"
	"github.com/MrJamesThe3rd/tally/internal/http/render"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/tree", h.tree)
	r.Get("/resolve", h.resolve)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.List(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponseList(accounts))
}

func (h *Handler) tree(w http.ResponseWriter, r *http.Request) {
	roots, err := h.svc.Hierarchy(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toNodeList(roots))
}

// resolve answers 404 when nothing matches; the caller is expected to offer
// account creation.
func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	identifier := r.URL.Query().Get("identifier")
	if identifier == "" {
		render.BadRequest(w, "identifier query parameter is required")
		return
	}

	acc, err := h.svc.Resolve(r.Context(), identifier, account.Type(r.URL.Query().Get("type")))
	if errors.Is(err, account.ErrNotFound) {
		render.JSON(w, http.StatusNotFound, map[string]any{
			"error":          err.Error(),
			"needs_creation": true,
		})

		return
	}

	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(acc))
}

type createAccountRequest struct {
	Code          string       `json:"code"`
	Name          string       `json:"name"`
	Type          account.Type `json:"type"`
	ParentID      *uuid.UUID   `json:"parent_id,omitempty"`
	IsBankAccount bool         `json:"is_bank_account"`
	CreditCard    bool         `json:"credit_card"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.BadRequest(w, "invalid request body: "+err.Error())
		return
	}

	acc, err := h.svc.Create(r.Context(), account.CreateParams{
		Code:          req.Code,
		Name:          req.Name,
		Type:          req.Type,
		ParentID:      req.ParentID,
		IsBankAccount: req.IsBankAccount,
		CreditCard:    req.CreditCard,
		IsCustom:      true,
		Actor:         auth.Owner(r.Context()),
	})
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(acc))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.BadRequest(w, "invalid id")
		return
	}

	acc, err := h.svc.Get(r.Context(), id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(acc))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.BadRequest(w, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		render.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
