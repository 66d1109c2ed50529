package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/internal/service/card"
)

type cardService interface {
	CreateCard(ctx context.Context, input card.CreateCardInput) (*domain.Card, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	ListCards(ctx context.Context, input card.ListCardsInput) ([]domain.Card, error)
	UpdateCard(ctx context.Context, input card.UpdateCardInput) (*domain.Card, error)
	ArchiveCard(ctx context.Context, cardID uuid.UUID, archived bool) (*domain.Card, error)
	MoveCard(ctx context.Context, input card.MoveCardInput) (*domain.Card, error)
	CopyCard(ctx context.Context, input card.CopyCardInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
	JoinCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	LeaveCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	AddCardMember(ctx context.Context, cardID, memberID uuid.UUID) (*domain.Card, error)
	RemoveCardMember(ctx context.Context, cardID, memberID uuid.UUID) (*domain.Card, error)
	SetCardLabels(ctx context.Context, cardID uuid.UUID, labelIDs []uuid.UUID) (*domain.Card, error)
}

// CardHandler serves card endpoints.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "card")}
}

// Register mounts the handler's routes.
func (h *CardHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/cards", h.List)
	mux.HandleFunc("POST /api/v1/lists/{id}/cards", h.Create)
	mux.HandleFunc("GET /api/v1/cards/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/cards/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/cards/{id}", h.Delete)
	mux.HandleFunc("POST /api/v1/cards/{id}/move", h.Move)
	mux.HandleFunc("POST /api/v1/cards/{id}/copy", h.Copy)
	mux.HandleFunc("POST /api/v1/cards/{id}/archive", h.Archive)
	mux.HandleFunc("POST /api/v1/cards/{id}/join", h.Join)
	mux.HandleFunc("POST /api/v1/cards/{id}/leave", h.Leave)
	mux.HandleFunc("POST /api/v1/cards/{id}/members", h.AddMember)
	mux.HandleFunc("DELETE /api/v1/cards/{id}/members/{userID}", h.RemoveMember)
	mux.HandleFunc("PUT /api/v1/cards/{id}/labels", h.SetLabels)
}

// List handles GET /api/v1/cards with the filters list_id, board_id,
// assigned_to_me, member_id, label_id, q, due_before, due_after,
// include_archived and limit.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseCardFilter(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	cards, err := h.svc.ListCards(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(cards, toCardResponse))
}

func parseCardFilter(r *http.Request) (card.ListCardsInput, error) {
	var (
		in  card.ListCardsInput
		err error
	)
	if in.ListID, err = queryUUID(r, "list_id"); err != nil {
		return in, err
	}
	if in.BoardID, err = queryUUID(r, "board_id"); err != nil {
		return in, err
	}
	if in.MemberID, err = queryUUID(r, "member_id"); err != nil {
		return in, err
	}
	if in.LabelID, err = queryUUID(r, "label_id"); err != nil {
		return in, err
	}
	if in.AssignedToMe, err = queryBool(r, "assigned_to_me"); err != nil {
		return in, err
	}
	if in.IncludeArchived, err = queryBool(r, "include_archived"); err != nil {
		return in, err
	}
	if in.DueBefore, err = queryTime(r, "due_before"); err != nil {
		return in, err
	}
	if in.DueAfter, err = queryTime(r, "due_after"); err != nil {
		return in, err
	}
	if in.Limit, err = queryInt(r, "limit"); err != nil {
		return in, err
	}
	in.Query = r.URL.Query().Get("q")
	return in, nil
}

type createCardRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Color       string           `json:"color"`
	DueDate     *time.Time       `json:"due_date"`
	Position    *domain.Position `json:"position"`
}

// Create handles POST /api/v1/lists/{id}/cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req createCardRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.CreateCard(r.Context(), card.CreateCardInput{
		ListID:      listID,
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
		DueDate:     req.DueDate,
		Position:    req.Position,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCardResponse(*c))
}

// Get handles GET /api/v1/cards/{id}.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withCard(w, r, http.StatusOK, h.svc.GetCard)
}

type updateCardRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Color        *string    `json:"color"`
	DueDate      *time.Time `json:"due_date"`
	ClearDueDate bool       `json:"clear_due_date"`
	IsCompleted  *bool      `json:"is_completed"`
	IsPublic     *bool      `json:"is_public"`
}

// Update handles PATCH /api/v1/cards/{id}.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateCardRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.UpdateCard(r.Context(), card.UpdateCardInput{
		CardID:       cardID,
		Title:        req.Title,
		Description:  req.Description,
		Color:        req.Color,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
		IsCompleted:  req.IsCompleted,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(*c))
}

// Delete handles DELETE /api/v1/cards/{id}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteCard(r.Context(), cardID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type moveCardRequest struct {
	ListID   uuid.UUID        `json:"list_id"`
	Position *domain.Position `json:"position"`
}

// Move handles POST /api/v1/cards/{id}/move.
func (h *CardHandler) Move(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req moveCardRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.MoveCard(r.Context(), card.MoveCardInput{
		CardID:   cardID,
		ListID:   req.ListID,
		Position: req.Position,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(*c))
}

type copyCardRequest struct {
	ListID *uuid.UUID `json:"list_id"`
	Title  *string    `json:"title"`
}

// Copy handles POST /api/v1/cards/{id}/copy. Without list_id the copy lands
// next to the source.
func (h *CardHandler) Copy(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req copyCardRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.CopyCard(r.Context(), card.CopyCardInput{
		CardID: cardID,
		ListID: req.ListID,
		Title:  req.Title,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCardResponse(*c))
}

type archiveCardRequest struct {
	Archived *bool `json:"archived"`
}

// Archive handles POST /api/v1/cards/{id}/archive. The body may carry
// {"archived": false} to restore the card; an empty body archives it.
func (h *CardHandler) Archive(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req archiveCardRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	archived := true
	if req.Archived != nil {
		archived = *req.Archived
	}
	c, err := h.svc.ArchiveCard(r.Context(), cardID, archived)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(*c))
}

// Join handles POST /api/v1/cards/{id}/join.
func (h *CardHandler) Join(w http.ResponseWriter, r *http.Request) {
	h.withCard(w, r, http.StatusOK, h.svc.JoinCard)
}

// Leave handles POST /api/v1/cards/{id}/leave.
func (h *CardHandler) Leave(w http.ResponseWriter, r *http.Request) {
	h.withCard(w, r, http.StatusOK, h.svc.LeaveCard)
}

type cardMemberRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

// AddMember handles POST /api/v1/cards/{id}/members.
func (h *CardHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req cardMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.AddCardMember(r.Context(), cardID, req.UserID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(*c))
}

// RemoveMember handles DELETE /api/v1/cards/{id}/members/{userID}.
func (h *CardHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	userID, err := pathID(r, "userID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.RemoveCardMember(r.Context(), cardID, userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(*c))
}

type setLabelsRequest struct {
	LabelIDs []uuid.UUID `json:"label_ids"`
}

// SetLabels handles PUT /api/v1/cards/{id}/labels, replacing the card's
// label set.
func (h *CardHandler) SetLabels(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req setLabelsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.SetCardLabels(r.Context(), cardID, req.LabelIDs)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(*c))
}

// withCard runs a card operation that takes only the path id.
func (h *CardHandler) withCard(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	op func(context.Context, uuid.UUID) (*domain.Card, error),
) {
	cardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := op(r.Context(), cardID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, status, toCardResponse(*c))
}
