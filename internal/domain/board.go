package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultListTitles are created, in order, on every new board.
var DefaultListTitles = []string{"To Do", "In Progress", "Done"}

// BoardPermissions controls what the developer role may do on a board.
type BoardPermissions struct {
	DevCanCreateCards          bool
	DevCanEditAssignedCards    bool
	DevCanArchiveAssignedCards bool
	DevCanJoinCard             bool
	DevCanCreateLists          bool
}

// DefaultBoardPermissions returns the flags a new board starts with.
func DefaultBoardPermissions() BoardPermissions {
	return BoardPermissions{
		DevCanCreateCards:          true,
		DevCanEditAssignedCards:    true,
		DevCanArchiveAssignedCards: true,
		DevCanJoinCard:             false,
		DevCanCreateLists:          false,
	}
}

// Board is a shared workspace. OwnerID never changes after creation.
type Board struct {
	ID          uuid.UUID
	Title       string
	Description string
	Background  string
	IsArchived  bool
	OwnerID     uuid.UUID
	InviteToken uuid.UUID
	Permissions BoardPermissions
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwner reports whether userID owns the board.
func (b *Board) IsOwner(userID uuid.UUID) bool {
	return userID != uuid.Nil && b.OwnerID == userID
}

// Membership assigns a stored role on a board to a user.
// The owner may or may not have a row; the resolver treats them as owner either way.
type Membership struct {
	ID         uuid.UUID
	BoardID    uuid.UUID
	UserID     uuid.UUID
	Role       Role
	IsFavorite bool
	CreatedAt  time.Time
}

// BoardSummary is a board as seen by one user in a listing.
type BoardSummary struct {
	Board
	Role       Role
	IsFavorite bool
}

// Member is a user together with their role on a board.
type Member struct {
	User     User
	Role     Role
	JoinedAt time.Time
}

// List is an ordered column of a board. BoardID is fixed at creation.
type List struct {
	ID               uuid.UUID
	BoardID          uuid.UUID
	Title            string
	Position         Position
	IsArchived       bool
	AllowDevAddCards bool
	Color            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
