package checklist

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

const (
	maxTitleLen = 200
	maxTextLen  = 500
)

// CreateChecklistInput holds the parameters for adding a checklist to a card.
type CreateChecklistInput struct {
	CardID uuid.UUID
	Title  string
}

// Validate checks all fields and collects all errors.
func (i CreateChecklistInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	t := strings.TrimSpace(i.Title)
	if t == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(t) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddItemInput holds the parameters for adding a checklist item. A nil
// Position appends the item.
type AddItemInput struct {
	ChecklistID uuid.UUID
	Text        string
	Position    *domain.Position
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ChecklistID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "checklist_id", Message: "required"})
	}
	errs = validateText(errs, i.Text)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput edits, toggles or reorders a checklist item. Nil fields are
// left unchanged.
type UpdateItemInput struct {
	ItemID    uuid.UUID
	Text      *string
	IsChecked *bool
	Position  *domain.Position
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Text == nil && i.IsChecked == nil && i.Position == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Text != nil {
		errs = validateText(errs, *i.Text)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateText(errs []domain.FieldError, text string) []domain.FieldError {
	t := strings.TrimSpace(text)
	if t == "" {
		return append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(t) > maxTextLen {
		return append(errs, domain.FieldError{Field: "text", Message: "max 500 characters"})
	}
	return errs
}
