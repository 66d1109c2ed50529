package card

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 10000
	maxColorLen       = 32
	maxQueryLen       = 200
)

// CreateCardInput holds the parameters for creating a card. A nil Position
// appends the card after the list's last one.
type CreateCardInput struct {
	ListID      uuid.UUID
	Title       string
	Description string
	Color       string
	DueDate     *time.Time
	Position    *domain.Position
}

// Validate checks all fields and collects all errors.
func (i CreateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	errs = validateTitle(errs, i.Title)
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 10000 characters"})
	}
	if len(i.Color) > maxColorLen {
		errs = append(errs, domain.FieldError{Field: "color", Message: "max 32 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCardInput holds the parameters for updating a card. Nil fields are
// left unchanged; ClearDueDate removes the due date.
type UpdateCardInput struct {
	CardID       uuid.UUID
	Title        *string
	Description  *string
	Color        *string
	DueDate      *time.Time
	ClearDueDate bool
	IsCompleted  *bool
	IsPublic     *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.Color == nil && i.DueDate == nil &&
		!i.ClearDueDate && i.IsCompleted == nil && i.IsPublic == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.DueDate != nil && i.ClearDueDate {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "cannot set and clear at once"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 10000 characters"})
	}
	if i.Color != nil && len(*i.Color) > maxColorLen {
		errs = append(errs, domain.FieldError{Field: "color", Message: "max 32 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MoveCardInput moves a card to a list on the same board. A nil Position
// appends the card after the target list's last one.
type MoveCardInput struct {
	CardID   uuid.UUID
	ListID   uuid.UUID
	Position *domain.Position
}

func (i MoveCardInput) Validate() error {
	var errs []domain.FieldError
	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CopyCardInput copies a card. A nil ListID copies into the source list
// right after the source card; a nil Title appends " (Copy)".
type CopyCardInput struct {
	CardID uuid.UUID
	ListID *uuid.UUID
	Title  *string
}

func (i CopyCardInput) Validate() error {
	var errs []domain.FieldError
	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.ListID != nil && *i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "invalid"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListCardsInput narrows a card listing. Only cards on boards the caller
// can access are ever returned.
type ListCardsInput struct {
	ListID          *uuid.UUID
	BoardID         *uuid.UUID
	AssignedToMe    bool
	MemberID        *uuid.UUID
	LabelID         *uuid.UUID
	Query           string
	DueBefore       *time.Time
	DueAfter        *time.Time
	IncludeArchived bool
	Limit           int
}

// Validate checks all fields and collects all errors.
func (i ListCardsInput) Validate() error {
	var errs []domain.FieldError
	if i.AssignedToMe && i.MemberID != nil {
		errs = append(errs, domain.FieldError{Field: "member", Message: "cannot combine with assigned_to_me"})
	}
	if len(i.Query) > maxQueryLen {
		errs = append(errs, domain.FieldError{Field: "q", Message: "max 200 characters"})
	}
	if i.DueBefore != nil && i.DueAfter != nil && !i.DueAfter.Before(*i.DueBefore) {
		errs = append(errs, domain.FieldError{Field: "due_after", Message: "must be before due_before"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	t := strings.TrimSpace(title)
	if t == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(t) > maxTitleLen {
		return append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}
