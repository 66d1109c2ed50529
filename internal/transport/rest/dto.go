package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/internal/service/user"
)

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

type profileResponse struct {
	ActivityRetention string    `json:"activity_retention"`
	UpdatedAt         time.Time `json:"updated_at,omitzero"`
}

func toProfileResponse(p domain.Profile) profileResponse {
	return profileResponse{ActivityRetention: p.ActivityRetention.String(), UpdatedAt: p.UpdatedAt}
}

type meResponse struct {
	User    userResponse    `json:"user"`
	Profile profileResponse `json:"profile"`
}

func toMeResponse(me *user.Me) meResponse {
	return meResponse{User: toUserResponse(me.User), Profile: toProfileResponse(me.Profile)}
}

type activityResponse struct {
	ID         uuid.UUID      `json:"id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   *uuid.UUID     `json:"entity_id"`
	Meta       map[string]any `json:"meta"`
	CreatedAt  time.Time      `json:"created_at"`
}

func toActivityResponses(logs []domain.ActivityLog) []activityResponse {
	out := make([]activityResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, activityResponse{
			ID:         l.ID,
			Action:     l.Action.String(),
			EntityType: l.EntityType.String(),
			EntityID:   l.EntityID,
			Meta:       l.Meta,
			CreatedAt:  l.CreatedAt,
		})
	}
	return out
}

type permissionsResponse struct {
	DevCanCreateCards          bool `json:"dev_can_create_cards"`
	DevCanEditAssignedCards    bool `json:"dev_can_edit_assigned_cards"`
	DevCanArchiveAssignedCards bool `json:"dev_can_archive_assigned_cards"`
	DevCanJoinCard             bool `json:"dev_can_join_card"`
	DevCanCreateLists          bool `json:"dev_can_create_lists"`
}

type boardResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Background  string              `json:"background"`
	IsArchived  bool                `json:"is_archived"`
	OwnerID     uuid.UUID           `json:"owner_id"`
	InviteToken *uuid.UUID          `json:"invite_token,omitempty"`
	Permissions permissionsResponse `json:"permissions"`
	Role        string              `json:"role,omitempty"`
	IsFavorite  *bool               `json:"is_favorite,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// toBoardResponse renders a board. The invite token is only included for
// callers who may hand it out.
func toBoardResponse(b domain.Board, withInvite bool) boardResponse {
	resp := boardResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Background:  b.Background,
		IsArchived:  b.IsArchived,
		OwnerID:     b.OwnerID,
		Permissions: permissionsResponse(b.Permissions),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if withInvite {
		token := b.InviteToken
		resp.InviteToken = &token
	}
	return resp
}

func toBoardSummaryResponse(s domain.BoardSummary) boardResponse {
	resp := toBoardResponse(s.Board, s.Role.IsAdmin())
	resp.Role = s.Role.String()
	fav := s.IsFavorite
	resp.IsFavorite = &fav
	return resp
}

type memberResponse struct {
	User     userResponse `json:"user"`
	Role     string       `json:"role"`
	JoinedAt time.Time    `json:"joined_at"`
}

type membershipResponse struct {
	BoardID uuid.UUID `json:"board_id"`
	UserID  uuid.UUID `json:"user_id"`
	Role    string    `json:"role"`
}

func toMembershipResponse(m *domain.Membership) membershipResponse {
	return membershipResponse{BoardID: m.BoardID, UserID: m.UserID, Role: m.Role.String()}
}

type listResponse struct {
	ID               uuid.UUID       `json:"id"`
	BoardID          uuid.UUID       `json:"board_id"`
	Title            string          `json:"title"`
	Position         domain.Position `json:"position"`
	IsArchived       bool            `json:"is_archived"`
	AllowDevAddCards bool            `json:"allow_dev_add_cards"`
	Color            string          `json:"color"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func toListResponse(l domain.List) listResponse {
	return listResponse{
		ID:               l.ID,
		BoardID:          l.BoardID,
		Title:            l.Title,
		Position:         l.Position,
		IsArchived:       l.IsArchived,
		AllowDevAddCards: l.AllowDevAddCards,
		Color:            l.Color,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

type cardResponse struct {
	ID          uuid.UUID       `json:"id"`
	ListID      uuid.UUID       `json:"list_id"`
	BoardID     uuid.UUID       `json:"board_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	Position    domain.Position `json:"position"`
	DueDate     *time.Time      `json:"due_date"`
	IsCompleted bool            `json:"is_completed"`
	IsArchived  bool            `json:"is_archived"`
	IsPublic    bool            `json:"is_public"`
	AssigneeIDs []uuid.UUID     `json:"assignee_ids"`
	LabelIDs    []uuid.UUID     `json:"label_ids"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toCardResponse(c domain.Card) cardResponse {
	resp := cardResponse{
		ID:          c.ID,
		ListID:      c.ListID,
		BoardID:     c.BoardID,
		Title:       c.Title,
		Description: c.Description,
		Color:       c.Color,
		Position:    c.Position,
		DueDate:     c.DueDate,
		IsCompleted: c.IsCompleted,
		IsArchived:  c.IsArchived,
		IsPublic:    c.IsPublic,
		AssigneeIDs: c.AssigneeIDs,
		LabelIDs:    c.LabelIDs,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if resp.AssigneeIDs == nil {
		resp.AssigneeIDs = []uuid.UUID{}
	}
	if resp.LabelIDs == nil {
		resp.LabelIDs = []uuid.UUID{}
	}
	return resp
}

type labelResponse struct {
	ID      uuid.UUID `json:"id"`
	BoardID uuid.UUID `json:"board_id"`
	Name    string    `json:"name"`
	Color   string    `json:"color"`
}

func toLabelResponse(l domain.Label) labelResponse {
	return labelResponse{ID: l.ID, BoardID: l.BoardID, Name: l.Name, Color: l.Color}
}

type checklistItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ChecklistID uuid.UUID       `json:"checklist_id"`
	Text        string          `json:"text"`
	IsChecked   bool            `json:"is_checked"`
	Position    domain.Position `json:"position"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toChecklistItemResponse(it domain.ChecklistItem) checklistItemResponse {
	return checklistItemResponse{
		ID:          it.ID,
		ChecklistID: it.ChecklistID,
		Text:        it.Text,
		IsChecked:   it.IsChecked,
		Position:    it.Position,
		CreatedAt:   it.CreatedAt,
	}
}

type checklistResponse struct {
	ID        uuid.UUID               `json:"id"`
	CardID    uuid.UUID               `json:"card_id"`
	Title     string                  `json:"title"`
	Items     []checklistItemResponse `json:"items"`
	CreatedAt time.Time               `json:"created_at"`
}

func toChecklistResponse(c domain.Checklist) checklistResponse {
	items := make([]checklistItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, toChecklistItemResponse(it))
	}
	return checklistResponse{ID: c.ID, CardID: c.CardID, Title: c.Title, Items: items, CreatedAt: c.CreatedAt}
}

type commentResponse struct {
	ID        uuid.UUID `json:"id"`
	CardID    uuid.UUID `json:"card_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		CardID:    c.CardID,
		AuthorID:  c.AuthorID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type attachmentResponse struct {
	ID          uuid.UUID `json:"id"`
	CardID      uuid.UUID `json:"card_id"`
	UploaderID  uuid.UUID `json:"uploader_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

func toAttachmentResponse(a domain.Attachment) attachmentResponse {
	return attachmentResponse{
		ID:          a.ID,
		CardID:      a.CardID,
		UploaderID:  a.UploaderID,
		Filename:    a.Filename,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
		CreatedAt:   a.CreatedAt,
	}
}

// mapSlice converts a slice with fn, never returning nil so lists encode as [].
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
