package label

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

const (
	maxNameLen  = 50
	maxColorLen = 32
)

// CreateLabelInput holds the parameters for creating a label.
type CreateLabelInput struct {
	BoardID uuid.UUID
	Name    string
	Color   string
}

// Validate checks all fields and collects all errors.
func (i CreateLabelInput) Validate() error {
	var errs []domain.FieldError

	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	errs = validateName(errs, i.Name)
	errs = validateColor(errs, i.Color)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateLabelInput holds the parameters for updating a label. Nil fields are
// left unchanged.
type UpdateLabelInput struct {
	LabelID uuid.UUID
	Name    *string
	Color   *string
}

// Validate checks all fields and collects all errors.
func (i UpdateLabelInput) Validate() error {
	var errs []domain.FieldError

	if i.LabelID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "label_id", Message: "required"})
	}
	if i.Name == nil && i.Color == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Color != nil {
		errs = validateColor(errs, *i.Color)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	n := strings.TrimSpace(name)
	if n == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(n) > maxNameLen {
		return append(errs, domain.FieldError{Field: "name", Message: "max 50 characters"})
	}
	return errs
}

func validateColor(errs []domain.FieldError, color string) []domain.FieldError {
	if len(color) > maxColorLen {
		return append(errs, domain.FieldError{Field: "color", Message: "max 32 characters"})
	}
	return errs
}
