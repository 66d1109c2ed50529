package user

import (
	"context"
	"fmt"

	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/pkg/ctxutil"
)

// ListActivity returns the authenticated user's activity feed, newest first.
func (s *Service) ListActivity(ctx context.Context, input ListActivityInput) ([]domain.ActivityLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logs, err := s.activity.List(ctx, userID, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("user.ListActivity: %w", err)
	}
	return logs, nil
}

// ClearActivity deletes the authenticated user's whole activity feed and
// returns the number of removed entries.
func (s *Service) ClearActivity(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	deleted, err := s.activity.Clear(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("user.ClearActivity: %w", err)
	}
	return deleted, nil
}
