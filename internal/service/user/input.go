package user

import (
	"github.com/Timurc390/Boardly/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
type UpdateProfileInput struct {
	ActivityRetention domain.ActivityRetention
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.ActivityRetention == "" {
		errs = append(errs, domain.FieldError{Field: "activity_retention", Message: "required"})
	} else if !i.ActivityRetention.IsValid() {
		errs = append(errs, domain.FieldError{Field: "activity_retention", Message: "must be one of 7d, 30d, 365d"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListActivityInput holds paging for the activity feed.
type ListActivityInput struct {
	Limit  int
	Offset int
}

// Validate validates the paging values.
func (i ListActivityInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
