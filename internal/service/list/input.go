package list

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

const (
	maxTitleLen = 200
	maxColorLen = 32
)

// CreateListInput holds the parameters for creating a list. A nil Position
// appends the list after the board's last one.
type CreateListInput struct {
	BoardID          uuid.UUID
	Title            string
	Color            string
	Position         *domain.Position
	AllowDevAddCards *bool
}

// Validate checks all fields and collects all errors.
func (i CreateListInput) Validate() error {
	var errs []domain.FieldError

	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	errs = validateTitle(errs, i.Title)
	if len(i.Color) > maxColorLen {
		errs = append(errs, domain.FieldError{Field: "color", Message: "max 32 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateListInput holds the parameters for updating a list. Nil fields are
// left unchanged. The board a list belongs to can never change.
type UpdateListInput struct {
	ListID           uuid.UUID
	Title            *string
	Color            *string
	Position         *domain.Position
	IsArchived       *bool
	AllowDevAddCards *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateListInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if i.Title == nil && i.Color == nil && i.Position == nil && i.IsArchived == nil && i.AllowDevAddCards == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if i.Color != nil && len(*i.Color) > maxColorLen {
		errs = append(errs, domain.FieldError{Field: "color", Message: "max 32 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CopyListInput holds the parameters for copying a list. A nil Title uses
// the source title with a " (Copy)" suffix.
type CopyListInput struct {
	ListID uuid.UUID
	Title  *string
}

func (i CopyListInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
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
