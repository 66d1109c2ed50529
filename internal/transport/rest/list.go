package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/internal/service/list"
)

type listService interface {
	ListLists(ctx context.Context, boardID uuid.UUID, includeArchived bool) ([]domain.List, error)
	CreateList(ctx context.Context, input list.CreateListInput) (*domain.List, error)
	UpdateList(ctx context.Context, input list.UpdateListInput) (*domain.List, error)
	DeleteList(ctx context.Context, listID uuid.UUID) error
	CopyList(ctx context.Context, input list.CopyListInput) (*domain.List, error)
}

// ListHandler serves board column endpoints.
type ListHandler struct {
	svc listService
	log *slog.Logger
}

// NewListHandler creates a ListHandler.
func NewListHandler(svc listService, logger *slog.Logger) *ListHandler {
	return &ListHandler{svc: svc, log: logger.With("handler", "list")}
}

// Register mounts the handler's routes.
func (h *ListHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/boards/{id}/lists", h.List)
	mux.HandleFunc("POST /api/v1/boards/{id}/lists", h.Create)
	mux.HandleFunc("PATCH /api/v1/lists/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/lists/{id}", h.Delete)
	mux.HandleFunc("POST /api/v1/lists/{id}/copy", h.Copy)
}

// List handles GET /api/v1/boards/{id}/lists?include_archived=.
func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	includeArchived, err := queryBool(r, "include_archived")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	lists, err := h.svc.ListLists(r.Context(), boardID, includeArchived)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(lists, toListResponse))
}

type createListRequest struct {
	Title            string           `json:"title"`
	Color            string           `json:"color"`
	Position         *domain.Position `json:"position"`
	AllowDevAddCards *bool            `json:"allow_dev_add_cards"`
}

// Create handles POST /api/v1/boards/{id}/lists.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req createListRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	l, err := h.svc.CreateList(r.Context(), list.CreateListInput{
		BoardID:          boardID,
		Title:            req.Title,
		Color:            req.Color,
		Position:         req.Position,
		AllowDevAddCards: req.AllowDevAddCards,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toListResponse(*l))
}

type updateListRequest struct {
	Title            *string          `json:"title"`
	Color            *string          `json:"color"`
	Position         *domain.Position `json:"position"`
	IsArchived       *bool            `json:"is_archived"`
	AllowDevAddCards *bool            `json:"allow_dev_add_cards"`
}

// Update handles PATCH /api/v1/lists/{id}.
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateListRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	l, err := h.svc.UpdateList(r.Context(), list.UpdateListInput{
		ListID:           listID,
		Title:            req.Title,
		Color:            req.Color,
		Position:         req.Position,
		IsArchived:       req.IsArchived,
		AllowDevAddCards: req.AllowDevAddCards,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(*l))
}

// Delete handles DELETE /api/v1/lists/{id}.
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteList(r.Context(), listID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type copyListRequest struct {
	Title *string `json:"title"`
}

// Copy handles POST /api/v1/lists/{id}/copy.
func (h *ListHandler) Copy(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req copyListRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	l, err := h.svc.CopyList(r.Context(), list.CopyListInput{ListID: listID, Title: req.Title})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toListResponse(*l))
}
