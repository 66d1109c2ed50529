package board

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
	maxBackgroundLen  = 500
)

// CreateBoardInput holds the parameters for creating a board.
type CreateBoardInput struct {
	Title       string
	Description string
	Background  string
}

// Validate checks all fields and collects all errors.
func (i CreateBoardInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTitle(errs, i.Title)
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if len(i.Background) > maxBackgroundLen {
		errs = append(errs, domain.FieldError{Field: "background", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateBoardInput holds the parameters for updating a board. Nil fields are
// left unchanged.
type UpdateBoardInput struct {
	BoardID     uuid.UUID
	Title       *string
	Description *string
	Background  *string
	IsArchived  *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateBoardInput) Validate() error {
	var errs []domain.FieldError

	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.Background == nil && i.IsArchived == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if i.Background != nil && len(*i.Background) > maxBackgroundLen {
		errs = append(errs, domain.FieldError{Field: "background", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePermissionsInput holds new developer permission flags. Nil flags are
// left unchanged.
type UpdatePermissionsInput struct {
	BoardID                    uuid.UUID
	DevCanCreateCards          *bool
	DevCanEditAssignedCards    *bool
	DevCanArchiveAssignedCards *bool
	DevCanJoinCard             *bool
	DevCanCreateLists          *bool
}

func (i UpdatePermissionsInput) Validate() error {
	if i.BoardID == uuid.Nil {
		return domain.NewValidationError("board_id", "required")
	}
	return nil
}

func (i UpdatePermissionsInput) apply(p domain.BoardPermissions) domain.BoardPermissions {
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.DevCanCreateCards, i.DevCanCreateCards)
	set(&p.DevCanEditAssignedCards, i.DevCanEditAssignedCards)
	set(&p.DevCanArchiveAssignedCards, i.DevCanArchiveAssignedCards)
	set(&p.DevCanJoinCard, i.DevCanJoinCard)
	set(&p.DevCanCreateLists, i.DevCanCreateLists)
	return p
}

// AddMemberInput identifies a user by id or by email. Role defaults to developer.
type AddMemberInput struct {
	BoardID uuid.UUID
	UserID  uuid.UUID
	Email   string
	Role    domain.Role
}

// Validate checks all fields and collects all errors.
func (i AddMemberInput) Validate() error {
	var errs []domain.FieldError

	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	email := strings.TrimSpace(i.Email)
	switch {
	case i.UserID == uuid.Nil && email == "":
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "user_id or email is required"})
	case i.UserID != uuid.Nil && email != "":
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "give either user_id or email, not both"})
	}
	if i.Role != "" && !i.Role.IsAssignable() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be admin, developer or viewer"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangeMemberRoleInput holds the parameters for changing a member's role.
type ChangeMemberRoleInput struct {
	BoardID uuid.UUID
	UserID  uuid.UUID
	Role    domain.Role
}

// Validate checks all fields and collects all errors.
func (i ChangeMemberRoleInput) Validate() error {
	var errs []domain.FieldError

	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Role.IsAssignable() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be admin, developer or viewer"})
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
