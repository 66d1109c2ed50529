package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/internal/service/label"
)

type labelService interface {
	ListLabels(ctx context.Context, boardID uuid.UUID) ([]domain.Label, error)
	CreateLabel(ctx context.Context, input label.CreateLabelInput) (*domain.Label, error)
	UpdateLabel(ctx context.Context, input label.UpdateLabelInput) (*domain.Label, error)
	DeleteLabel(ctx context.Context, labelID uuid.UUID) error
}

// LabelHandler serves board label endpoints.
type LabelHandler struct {
	svc labelService
	log *slog.Logger
}

// NewLabelHandler creates a LabelHandler.
func NewLabelHandler(svc labelService, logger *slog.Logger) *LabelHandler {
	return &LabelHandler{svc: svc, log: logger.With("handler", "label")}
}

// Register mounts the handler's routes.
func (h *LabelHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/boards/{id}/labels", h.List)
	mux.HandleFunc("POST /api/v1/boards/{id}/labels", h.Create)
	mux.HandleFunc("PATCH /api/v1/labels/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/labels/{id}", h.Delete)
}

func (h *LabelHandler) List(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	labels, err := h.svc.ListLabels(r.Context(), boardID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(labels, toLabelResponse))
}

type labelRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (h *LabelHandler) Create(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req labelRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	input := label.CreateLabelInput{BoardID: boardID}
	if req.Name != nil {
		input.Name = *req.Name
	}
	if req.Color != nil {
		input.Color = *req.Color
	}
	l, err := h.svc.CreateLabel(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLabelResponse(*l))
}

func (h *LabelHandler) Update(w http.ResponseWriter, r *http.Request) {
	labelID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req labelRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	l, err := h.svc.UpdateLabel(r.Context(), label.UpdateLabelInput{
		LabelID: labelID,
		Name:    req.Name,
		Color:   req.Color,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toLabelResponse(*l))
}

func (h *LabelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	labelID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteLabel(r.Context(), labelID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
