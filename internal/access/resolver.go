package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

type membershipReader interface {
	GetMembership(ctx context.Context, boardID, userID uuid.UUID) (*domain.Membership, error)
}

// Resolver computes a user's effective role on a board.
// It reads storage on every call; results must not be cached across requests.
type Resolver struct {
	memberships membershipReader
}

// NewResolver creates a Resolver backed by the membership store.
func NewResolver(memberships membershipReader) *Resolver {
	return &Resolver{memberships: memberships}
}

// ResolveRole returns owner for the board owner, the stored membership role
// for members, and RoleNone for everyone else, including anonymous callers.
func (r *Resolver) ResolveRole(ctx context.Context, userID uuid.UUID, board *domain.Board) (domain.Role, error) {
	if userID == uuid.Nil || board == nil {
		return domain.RoleNone, nil
	}
	if board.IsOwner(userID) {
		return domain.RoleOwner, nil
	}

	m, err := r.memberships.GetMembership(ctx, board.ID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.RoleNone, nil
		}
		return domain.RoleNone, fmt.Errorf("resolve role: %w", err)
	}

	if !m.Role.IsAssignable() {
		return domain.RoleNone, nil
	}
	return m.Role, nil
}
