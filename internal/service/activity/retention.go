package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

// ApplyRetention deletes the user's entries created before now minus the
// retention window from their profile (30 days when unset or unknown) and
// returns how many rows were removed. Repeated calls are harmless.
func (s *Service) ApplyRetention(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, nil
	}

	retention, err := s.retentionFor(ctx, userID)
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-time.Duration(retention.Days()) * 24 * time.Hour)
	deleted, err := s.logs.DeleteOlderThan(ctx, userID, cutoff)
	if err != nil {
		return 0, fmt.Errorf("apply retention: %w", err)
	}

	if deleted > 0 {
		sweptTotal.Add(float64(deleted))
		s.log.DebugContext(ctx, "activity retention applied",
			slog.String("user_id", userID.String()),
			slog.String("retention", retention.String()),
			slog.Int64("deleted", deleted),
		)
	}

	return deleted, nil
}

func (s *Service) retentionFor(ctx context.Context, userID uuid.UUID) (domain.ActivityRetention, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultActivityRetention, nil
		}
		return "", fmt.Errorf("get profile: %w", err)
	}
	if !profile.ActivityRetention.IsValid() {
		return domain.DefaultActivityRetention, nil
	}
	return profile.ActivityRetention, nil
}
