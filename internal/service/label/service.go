package label

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

type boardGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
}

type labelRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Label, error)
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.Label, error)
	Create(ctx context.Context, l *domain.Label) (*domain.Label, error)
	Update(ctx context.Context, l *domain.Label) (*domain.Label, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type accessGuard interface {
	Access(ctx context.Context, userID uuid.UUID, board *domain.Board) (domain.Role, error)
}

type activityRecorder interface {
	Record(ctx context.Context, entry domain.ActivityLog) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides board label operations. Labels are managed by board admins.
type Service struct {
	boards   boardGetter
	labels   labelRepo
	guard    accessGuard
	activity activityRecorder
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new label Service.
func NewService(
	log *slog.Logger,
	boards boardGetter,
	labels labelRepo,
	guard accessGuard,
	activity activityRecorder,
	tx txManager,
) *Service {
	return &Service{
		boards:   boards,
		labels:   labels,
		guard:    guard,
		activity: activity,
		tx:       tx,
		log:      log.With("service", "label"),
	}
}

func (s *Service) loadBoard(ctx context.Context, userID, boardID uuid.UUID) (*domain.Board, domain.Role, error) {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, domain.RoleNone, err
	}
	role, err := s.guard.Access(ctx, userID, board)
	if err != nil {
		return nil, domain.RoleNone, err
	}
	return board, role, nil
}

func (s *Service) logActivity(ctx context.Context, userID uuid.UUID, action domain.Action, l *domain.Label, b *domain.Board, extra map[string]any) {
	meta := map[string]any{
		"board_id":    b.ID.String(),
		"board_title": b.Title,
		"name":        l.Name,
		"color":       l.Color,
	}
	for k, v := range extra {
		meta[k] = v
	}
	err := s.activity.Record(ctx, domain.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: domain.EntityTypeLabel,
		EntityID:   &l.ID,
		Meta:       meta,
	})
	if err != nil {
		s.log.WarnContext(ctx, "activity not recorded",
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}
}
