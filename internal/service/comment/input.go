package comment

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

const maxTextLen = 5000

// CreateCommentInput holds the parameters for commenting on a card.
type CreateCommentInput struct {
	CardID uuid.UUID
	Text   string
}

// Validate checks all fields and collects all errors.
func (i CreateCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	errs = validateText(errs, i.Text)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCommentInput replaces a comment's text.
type UpdateCommentInput struct {
	CommentID uuid.UUID
	Text      string
}

// Validate checks all fields and collects all errors.
func (i UpdateCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	errs = validateText(errs, i.Text)

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
		return append(errs, domain.FieldError{Field: "text", Message: "max 5000 characters"})
	}
	return errs
}
