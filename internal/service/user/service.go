package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	SetActivityRetention(ctx context.Context, userID uuid.UUID, retention domain.ActivityRetention) (*domain.Profile, error)
}

// activityLog is the activity recorder as seen from the profile endpoints.
type activityLog interface {
	Record(ctx context.Context, entry domain.ActivityLog) error
	ApplyRetention(ctx context.Context, userID uuid.UUID) (int64, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.ActivityLog, error)
	Clear(ctx context.Context, userID uuid.UUID) (int64, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the current user's profile and activity operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	activity activityLog
	tx       txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	activity activityLog,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		activity: activity,
		tx:       tx,
	}
}
