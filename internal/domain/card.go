package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Card belongs to exactly one list. BoardID is derived from the parent list
// when the card is loaded and is never stored on the card itself.
type Card struct {
	ID          uuid.UUID
	ListID      uuid.UUID
	BoardID     uuid.UUID
	Title       string
	Description string
	Color       string
	Position    Position
	DueDate     *time.Time
	IsCompleted bool
	IsArchived  bool
	IsPublic    bool
	AssigneeIDs []uuid.UUID
	LabelIDs    []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAssigned reports whether userID is an assigned member of the card.
func (c *Card) IsAssigned(userID uuid.UUID) bool {
	return userID != uuid.Nil && slices.Contains(c.AssigneeIDs, userID)
}

// CardFilter narrows card listings. VisibleTo is always set by the service;
// only cards on boards that user can access are returned.
type CardFilter struct {
	VisibleTo       uuid.UUID
	ListID          *uuid.UUID
	BoardID         *uuid.UUID
	AssignedTo      *uuid.UUID
	LabelID         *uuid.UUID
	Query           string
	DueBefore       *time.Time
	DueAfter        *time.Time
	IncludeArchived bool
	Limit           int
}

// Label is a board-scoped tag, unique by name within the board.
type Label struct {
	ID      uuid.UUID
	BoardID uuid.UUID
	Name    string
	Color   string
}

// Checklist groups checklist items on a card.
type Checklist struct {
	ID        uuid.UUID
	CardID    uuid.UUID
	Title     string
	Items     []ChecklistItem
	CreatedAt time.Time
}

// ChecklistItem is one line of a checklist.
type ChecklistItem struct {
	ID          uuid.UUID
	ChecklistID uuid.UUID
	Text        string
	IsChecked   bool
	Position    Position
	CreatedAt   time.Time
}

// Comment is a note left on a card. AuthorID never changes.
type Comment struct {
	ID        uuid.UUID
	CardID    uuid.UUID
	AuthorID  uuid.UUID
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Attachment is a file stored in the blob store and referenced by a card.
type Attachment struct {
	ID          uuid.UUID
	CardID      uuid.UUID
	UploaderID  uuid.UUID
	ObjectKey   string
	Filename    string
	ContentType string
	SizeBytes   int64
	CreatedAt   time.Time
}
