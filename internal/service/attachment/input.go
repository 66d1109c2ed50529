package attachment

import (
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

const maxFilenameLen = 255

// UploadInput carries one file to attach to a card.
type UploadInput struct {
	CardID      uuid.UUID
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Validate checks all fields and collects all errors. maxBytes <= 0 disables
// the size limit.
func (i UploadInput) Validate(maxBytes int64) error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	name := strings.TrimSpace(i.Filename)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "file", Message: "file name is required"})
	} else if len(name) > maxFilenameLen {
		errs = append(errs, domain.FieldError{Field: "file", Message: "file name max 255 characters"})
	}
	if i.Body == nil || i.Size <= 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "file is empty"})
	} else if maxBytes > 0 && i.Size > maxBytes {
		errs = append(errs, domain.FieldError{Field: "file", Message: "file is too large"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
