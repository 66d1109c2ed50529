package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/internal/service/user"
)

type userService interface {
	GetMe(ctx context.Context) (*user.Me, error)
	UpdateActivityRetention(ctx context.Context, input user.UpdateProfileInput) (*domain.Profile, error)
	ListActivity(ctx context.Context, input user.ListActivityInput) ([]domain.ActivityLog, error)
	ClearActivity(ctx context.Context) (int64, error)
}

type myCardsLister interface {
	MyCards(ctx context.Context) ([]domain.Card, error)
}

// MeHandler serves the caller's own account endpoints.
type MeHandler struct {
	users userService
	cards myCardsLister
	log   *slog.Logger
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(users userService, cards myCardsLister, logger *slog.Logger) *MeHandler {
	return &MeHandler{users: users, cards: cards, log: logger.With("handler", "me")}
}

// Register mounts the handler's routes.
func (h *MeHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/me", h.Get)
	mux.HandleFunc("PATCH /api/v1/me/profile", h.UpdateProfile)
	mux.HandleFunc("GET /api/v1/me/activity", h.ListActivity)
	mux.HandleFunc("DELETE /api/v1/me/activity", h.ClearActivity)
	mux.HandleFunc("GET /api/v1/me/cards", h.Cards)
}

// Get handles GET /api/v1/me.
func (h *MeHandler) Get(w http.ResponseWriter, r *http.Request) {
	me, err := h.users.GetMe(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMeResponse(me))
}

type updateProfileRequest struct {
	ActivityRetention string `json:"activity_retention"`
}

// UpdateProfile handles PATCH /api/v1/me/profile.
func (h *MeHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	profile, err := h.users.UpdateActivityRetention(r.Context(), user.UpdateProfileInput{
		ActivityRetention: domain.ActivityRetention(req.ActivityRetention),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(*profile))
}

// ListActivity handles GET /api/v1/me/activity?limit=&offset=.
func (h *MeHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	logs, err := h.users.ListActivity(r.Context(), user.ListActivityInput{Limit: limit, Offset: offset})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponses(logs))
}

// ClearActivity handles DELETE /api/v1/me/activity.
func (h *MeHandler) ClearActivity(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.users.ClearActivity(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

// Cards handles GET /api/v1/me/cards.
func (h *MeHandler) Cards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cards.MyCards(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(cards, toCardResponse))
}
