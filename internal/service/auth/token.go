package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

// ValidateToken validates an access token and returns the user ID.
// Returns ErrUnauthorized if the token is invalid, expired or names a user
// that no longer exists.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth.ValidateToken: %w", err)
	}
	if !exists {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// IssuedToken is a freshly minted access token and the user it belongs to.
type IssuedToken struct {
	AccessToken string
	User        *domain.User
}

// IssueToken makes sure the user exists and mints an access token for them.
func (s *Service) IssueToken(ctx context.Context, input IssueTokenInput) (*IssuedToken, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.EnsureUser(ctx, domain.NormalizeIdentity(input.Email), domain.NormalizeIdentity(input.Username))
	if err != nil {
		return nil, fmt.Errorf("auth.IssueToken: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("auth.IssueToken: generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "access token issued",
		slog.String("user_id", user.ID.String()),
	)
	return &IssuedToken{AccessToken: token, User: user}, nil
}
