package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/internal/service/checklist"
)

type checklistService interface {
	ListChecklists(ctx context.Context, cardID uuid.UUID) ([]domain.Checklist, error)
	CreateChecklist(ctx context.Context, input checklist.CreateChecklistInput) (*domain.Checklist, error)
	DeleteChecklist(ctx context.Context, checklistID uuid.UUID) error
	AddItem(ctx context.Context, input checklist.AddItemInput) (*domain.ChecklistItem, error)
	UpdateItem(ctx context.Context, input checklist.UpdateItemInput) (*domain.ChecklistItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

// ChecklistHandler serves checklist and checklist item endpoints.
type ChecklistHandler struct {
	svc checklistService
	log *slog.Logger
}

// NewChecklistHandler creates a ChecklistHandler.
func NewChecklistHandler(svc checklistService, logger *slog.Logger) *ChecklistHandler {
	return &ChecklistHandler{svc: svc, log: logger.With("handler", "checklist")}
}

// Register mounts the handler's routes.
func (h *ChecklistHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/cards/{id}/checklists", h.List)
	mux.HandleFunc("POST /api/v1/cards/{id}/checklists", h.Create)
	mux.HandleFunc("DELETE /api/v1/checklists/{id}", h.Delete)
	mux.HandleFunc("POST /api/v1/checklists/{id}/items", h.AddItem)
	mux.HandleFunc("PATCH /api/v1/checklist-items/{id}", h.UpdateItem)
	mux.HandleFunc("DELETE /api/v1/checklist-items/{id}", h.DeleteItem)
}

func (h *ChecklistHandler) List(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	lists, err := h.svc.ListChecklists(r.Context(), cardID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(lists, toChecklistResponse))
}

type createChecklistRequest struct {
	Title string `json:"title"`
}

func (h *ChecklistHandler) Create(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req createChecklistRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	cl, err := h.svc.CreateChecklist(r.Context(), checklist.CreateChecklistInput{CardID: cardID, Title: req.Title})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toChecklistResponse(*cl))
}

func (h *ChecklistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	checklistID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteChecklist(r.Context(), checklistID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addItemRequest struct {
	Text     string           `json:"text"`
	Position *domain.Position `json:"position"`
}

func (h *ChecklistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	checklistID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	item, err := h.svc.AddItem(r.Context(), checklist.AddItemInput{
		ChecklistID: checklistID,
		Text:        req.Text,
		Position:    req.Position,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toChecklistItemResponse(*item))
}

type updateItemRequest struct {
	Text      *string          `json:"text"`
	IsChecked *bool            `json:"is_checked"`
	Position  *domain.Position `json:"position"`
}

func (h *ChecklistHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	item, err := h.svc.UpdateItem(r.Context(), checklist.UpdateItemInput{
		ItemID:    itemID,
		Text:      req.Text,
		IsChecked: req.IsChecked,
		Position:  req.Position,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toChecklistItemResponse(*item))
}

func (h *ChecklistHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteItem(r.Context(), itemID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
