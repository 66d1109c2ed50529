package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/pkg/ctxutil"
)

// ListInput holds paging for the caller's activity log.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate rejects negative paging values.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListMine returns the caller's activity, newest first, after sweeping
// entries that fell out of the retention window.
func (s *Service) ListMine(ctx context.Context, input ListInput) ([]domain.ActivityLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.List(ctx, userID, input.Limit, input.Offset)
}

// List returns a user's activity, newest first. The retention sweep runs
// first; if it fails the listing is still served.
func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.ActivityLog, error) {
	if userID == uuid.Nil {
		return nil, nil
	}

	if _, err := s.ApplyRetention(ctx, userID); err != nil {
		s.log.WarnContext(ctx, "retention sweep before listing failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}

	switch {
	case limit <= 0:
		limit = s.opts.DefaultPageSize
	case limit > s.opts.MaxPageSize:
		limit = s.opts.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := s.logs.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return logs, nil
}

// ClearMine deletes the caller's whole activity log.
func (s *Service) ClearMine(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	return s.Clear(ctx, userID)
}

// Clear deletes every activity entry of a user. The clear itself is not logged.
func (s *Service) Clear(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, nil
	}

	deleted, err := s.logs.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("clear activity: %w", err)
	}

	s.log.InfoContext(ctx, "activity cleared",
		slog.String("user_id", userID.String()),
		slog.Int64("deleted", deleted),
	)
	return deleted, nil
}
