package auth

import (
	"net/mail"

	"github.com/Timurc390/Boardly/internal/domain"
)

// IssueTokenInput identifies the user a token is minted for.
type IssueTokenInput struct {
	Email    string
	Username string
}

// Validate validates the issue token input.
func (i IssueTokenInput) Validate() error {
	var errs []domain.FieldError

	email := domain.NormalizeIdentity(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
	}

	username := domain.NormalizeIdentity(i.Username)
	if username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(username) > 150 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
