package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/pkg/ctxutil"
)

// Me is the authenticated user together with their profile.
type Me struct {
	User    domain.User
	Profile domain.Profile
}

// GetMe returns the authenticated user's identity and profile.
// A user without a stored profile gets the default one.
func (s *Service) GetMe(ctx context.Context) (*Me, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetMe: %w", err)
	}

	profile := domain.DefaultProfile(userID)
	stored, err := s.users.GetProfile(ctx, userID)
	switch {
	case err == nil:
		profile = *stored
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("user.GetMe: %w", err)
	}

	return &Me{User: *user, Profile: profile}, nil
}

// UpdateActivityRetention changes how long the user's activity is kept.
// A shorter window takes effect immediately.
func (s *Service) UpdateActivityRetention(ctx context.Context, input UpdateProfileInput) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	old := domain.DefaultActivityRetention
	var updated *domain.Profile

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetProfile(txCtx, userID)
		switch {
		case err == nil:
			old = current.ActivityRetention
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get current profile: %w", err)
		}

		updated, err = s.users.SetActivityRetention(txCtx, userID, input.ActivityRetention)
		if err != nil {
			return fmt.Errorf("set activity retention: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateActivityRetention: %w", err)
	}

	err = s.activity.Record(ctx, domain.ActivityLog{
		UserID:     userID,
		Action:     domain.ActionUpdateProfile,
		EntityType: domain.EntityTypeUser,
		EntityID:   &userID,
		Meta: map[string]any{
			"old_retention": old.String(),
			"retention":     updated.ActivityRetention.String(),
		},
	})
	if err != nil {
		s.log.WarnContext(ctx, "activity not recorded",
			slog.String("action", domain.ActionUpdateProfile.String()),
			slog.String("error", err.Error()),
		)
	}
	if _, err := s.activity.ApplyRetention(ctx, userID); err != nil {
		s.log.WarnContext(ctx, "retention sweep after profile update failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.String("activity_retention", updated.ActivityRetention.String()),
	)
	return updated, nil
}
