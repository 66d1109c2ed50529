package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/internal/service/board"
)

type boardService interface {
	CreateBoard(ctx context.Context, input board.CreateBoardInput) (*domain.Board, error)
	GetBoard(ctx context.Context, boardID uuid.UUID) (*domain.BoardSummary, error)
	ListBoards(ctx context.Context, includeArchived bool) ([]domain.BoardSummary, error)
	UpdateBoard(ctx context.Context, input board.UpdateBoardInput) (*domain.Board, error)
	UpdatePermissions(ctx context.Context, input board.UpdatePermissionsInput) (*domain.Board, error)
	DeleteBoard(ctx context.Context, boardID uuid.UUID) error
	ToggleFavorite(ctx context.Context, boardID uuid.UUID) (bool, error)
	RegenerateInvite(ctx context.Context, boardID uuid.UUID) (uuid.UUID, error)
	JoinByInvite(ctx context.Context, token uuid.UUID) (*domain.Board, error)
	ListMembers(ctx context.Context, boardID uuid.UUID) ([]domain.Member, error)
	AddMember(ctx context.Context, input board.AddMemberInput) (*domain.Membership, error)
	ChangeMemberRole(ctx context.Context, input board.ChangeMemberRoleInput) (*domain.Membership, error)
	RemoveMember(ctx context.Context, boardID, targetID uuid.UUID) error
}

// BoardHandler serves board, permission, invite and membership endpoints.
type BoardHandler struct {
	svc boardService
	log *slog.Logger
}

// NewBoardHandler creates a BoardHandler.
func NewBoardHandler(svc boardService, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{svc: svc, log: logger.With("handler", "board")}
}

// Register mounts the handler's routes.
func (h *BoardHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/boards", h.List)
	mux.HandleFunc("POST /api/v1/boards", h.Create)
	mux.HandleFunc("GET /api/v1/boards/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/boards/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/boards/{id}", h.Delete)
	mux.HandleFunc("PATCH /api/v1/boards/{id}/permissions", h.UpdatePermissions)
	mux.HandleFunc("POST /api/v1/boards/{id}/favorite", h.ToggleFavorite)
	mux.HandleFunc("POST /api/v1/boards/{id}/invite", h.RegenerateInvite)
	mux.HandleFunc("POST /api/v1/invites/{token}/join", h.Join)
	mux.HandleFunc("GET /api/v1/boards/{id}/members", h.ListMembers)
	mux.HandleFunc("POST /api/v1/boards/{id}/members", h.AddMember)
	mux.HandleFunc("PATCH /api/v1/boards/{id}/members/{userID}", h.ChangeMemberRole)
	mux.HandleFunc("DELETE /api/v1/boards/{id}/members/{userID}", h.RemoveMember)
}

// List handles GET /api/v1/boards?include_archived=.
func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	includeArchived, err := queryBool(r, "include_archived")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	boards, err := h.svc.ListBoards(r.Context(), includeArchived)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(boards, toBoardSummaryResponse))
}

type createBoardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Background  string `json:"background"`
}

// Create handles POST /api/v1/boards.
func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBoardRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	b, err := h.svc.CreateBoard(r.Context(), board.CreateBoardInput{
		Title:       req.Title,
		Description: req.Description,
		Background:  req.Background,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBoardResponse(*b, true))
}

// Get handles GET /api/v1/boards/{id}.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	summary, err := h.svc.GetBoard(r.Context(), boardID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBoardSummaryResponse(*summary))
}

type updateBoardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Background  *string `json:"background"`
	IsArchived  *bool   `json:"is_archived"`
}

// Update handles PATCH /api/v1/boards/{id}.
func (h *BoardHandler) Update(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateBoardRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	b, err := h.svc.UpdateBoard(r.Context(), board.UpdateBoardInput{
		BoardID:     boardID,
		Title:       req.Title,
		Description: req.Description,
		Background:  req.Background,
		IsArchived:  req.IsArchived,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBoardResponse(*b, true))
}

// Delete handles DELETE /api/v1/boards/{id}.
func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteBoard(r.Context(), boardID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type updatePermissionsRequest struct {
	DevCanCreateCards          *bool `json:"dev_can_create_cards"`
	DevCanEditAssignedCards    *bool `json:"dev_can_edit_assigned_cards"`
	DevCanArchiveAssignedCards *bool `json:"dev_can_archive_assigned_cards"`
	DevCanJoinCard             *bool `json:"dev_can_join_card"`
	DevCanCreateLists          *bool `json:"dev_can_create_lists"`
}

// UpdatePermissions handles PATCH /api/v1/boards/{id}/permissions.
func (h *BoardHandler) UpdatePermissions(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updatePermissionsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	b, err := h.svc.UpdatePermissions(r.Context(), board.UpdatePermissionsInput{
		BoardID:                    boardID,
		DevCanCreateCards:          req.DevCanCreateCards,
		DevCanEditAssignedCards:    req.DevCanEditAssignedCards,
		DevCanArchiveAssignedCards: req.DevCanArchiveAssignedCards,
		DevCanJoinCard:             req.DevCanJoinCard,
		DevCanCreateLists:          req.DevCanCreateLists,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBoardResponse(*b, true))
}

// ToggleFavorite handles POST /api/v1/boards/{id}/favorite.
func (h *BoardHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	fav, err := h.svc.ToggleFavorite(r.Context(), boardID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_favorite": fav})
}

// RegenerateInvite handles POST /api/v1/boards/{id}/invite.
func (h *BoardHandler) RegenerateInvite(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	token, err := h.svc.RegenerateInvite(r.Context(), boardID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uuid.UUID{"invite_token": token})
}

// Join handles POST /api/v1/invites/{token}/join.
func (h *BoardHandler) Join(w http.ResponseWriter, r *http.Request) {
	token, err := pathID(r, "token")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	b, err := h.svc.JoinByInvite(r.Context(), token)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBoardResponse(*b, false))
}

// ListMembers handles GET /api/v1/boards/{id}/members.
func (h *BoardHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	members, err := h.svc.ListMembers(r.Context(), boardID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(members, func(m domain.Member) memberResponse {
		return memberResponse{User: toUserResponse(m.User), Role: m.Role.String(), JoinedAt: m.JoinedAt}
	}))
}

type addMemberRequest struct {
	UserID *uuid.UUID `json:"user_id"`
	Email  string     `json:"email"`
	Role   string     `json:"role"`
}

// AddMember handles POST /api/v1/boards/{id}/members. The new member is
// identified by user_id or email.
func (h *BoardHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req addMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	input := board.AddMemberInput{BoardID: boardID, Email: req.Email, Role: domain.Role(req.Role)}
	if req.UserID != nil {
		input.UserID = *req.UserID
	}
	m, err := h.svc.AddMember(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMembershipResponse(m))
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

// ChangeMemberRole handles PATCH /api/v1/boards/{id}/members/{userID}.
func (h *BoardHandler) ChangeMemberRole(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	userID, err := pathID(r, "userID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req changeRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	m, err := h.svc.ChangeMemberRole(r.Context(), board.ChangeMemberRoleInput{
		BoardID: boardID,
		UserID:  userID,
		Role:    domain.Role(req.Role),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMembershipResponse(m))
}

// RemoveMember handles DELETE /api/v1/boards/{id}/members/{userID}. Members
// may remove themselves to leave the board.
func (h *BoardHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	userID, err := pathID(r, "userID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.RemoveMember(r.Context(), boardID, userID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
