package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	EnsureUser(ctx context.Context, email, username string) (*domain.User, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, username string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service resolves access tokens to users. Users and tokens are minted by an
// external identity provider; IssueToken exists for operators and local
// development.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
	}
}
