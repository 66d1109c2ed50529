package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

// Record appends one entry to the user's activity log and then applies the
// retention sweep. Anonymous entries are ignored. A failed sweep is logged
// and does not fail the write.
func (s *Service) Record(ctx context.Context, entry domain.ActivityLog) error {
	if entry.UserID == uuid.Nil {
		return nil
	}
	if entry.Meta == nil {
		entry.Meta = map[string]any{}
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	if _, err := s.logs.Create(ctx, &entry); err != nil {
		recordFailures.Inc()
		return fmt.Errorf("record activity %s: %w", entry.Action, err)
	}

	if _, err := s.ApplyRetention(ctx, entry.UserID); err != nil {
		s.log.WarnContext(ctx, "retention sweep after write failed",
			slog.String("user_id", entry.UserID.String()),
			slog.String("error", err.Error()),
		)
	}

	return nil
}
