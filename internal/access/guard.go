package access

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

type roleResolver interface {
	ResolveRole(ctx context.Context, userID uuid.UUID, board *domain.Board) (domain.Role, error)
}

// Guard is the entry point services use before applying a mutation.
type Guard struct {
	resolver roleResolver
}

// NewGuard creates a Guard.
func NewGuard(resolver roleResolver) *Guard {
	return &Guard{resolver: resolver}
}

// Role resolves the caller's role without enforcing access.
func (g *Guard) Role(ctx context.Context, userID uuid.UUID, board *domain.Board) (domain.Role, error) {
	return g.resolver.ResolveRole(ctx, userID, board)
}

// Access resolves the caller's role and fails with ErrNotFound when the caller
// has none, so private boards look the same as missing ones.
func (g *Guard) Access(ctx context.Context, userID uuid.UUID, board *domain.Board) (domain.Role, error) {
	role, err := g.resolver.ResolveRole(ctx, userID, board)
	if err != nil {
		return domain.RoleNone, err
	}
	if !CanViewBoard(role) {
		return domain.RoleNone, fmt.Errorf("board %s: %w", board.ID, domain.ErrNotFound)
	}
	return role, nil
}
