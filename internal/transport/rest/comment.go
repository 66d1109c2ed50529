package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/internal/service/comment"
)

type commentService interface {
	ListComments(ctx context.Context, cardID uuid.UUID) ([]domain.Comment, error)
	CreateComment(ctx context.Context, input comment.CreateCommentInput) (*domain.Comment, error)
	UpdateComment(ctx context.Context, input comment.UpdateCommentInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) error
}

// CommentHandler serves card comment endpoints.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

// Register mounts the handler's routes.
func (h *CommentHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/cards/{id}/comments", h.List)
	mux.HandleFunc("POST /api/v1/cards/{id}/comments", h.Create)
	mux.HandleFunc("PATCH /api/v1/comments/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/comments/{id}", h.Delete)
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	comments, err := h.svc.ListComments(r.Context(), cardID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(comments, toCommentResponse))
}

type commentRequest struct {
	Text string `json:"text"`
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.CreateComment(r.Context(), comment.CreateCommentInput{CardID: cardID, Text: req.Text})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(*c))
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.UpdateComment(r.Context(), comment.UpdateCommentInput{CommentID: commentID, Text: req.Text})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentResponse(*c))
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteComment(r.Context(), commentID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
