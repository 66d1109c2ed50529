package list

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

type boardGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
}

type listRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error)
	ListByBoard(ctx context.Context, boardID uuid.UUID, includeArchived bool) ([]domain.List, error)
	LastPosition(ctx context.Context, boardID uuid.UUID) (*domain.Position, error)
	PositionAfter(ctx context.Context, boardID uuid.UUID, pos domain.Position) (*domain.Position, error)
	Create(ctx context.Context, l *domain.List) (*domain.List, error)
	Update(ctx context.Context, l *domain.List) (*domain.List, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type cardRepo interface {
	List(ctx context.Context, f domain.CardFilter) ([]domain.Card, error)
	Create(ctx context.Context, c *domain.Card) (*domain.Card, error)
	SetLabels(ctx context.Context, cardID uuid.UUID, labelIDs []uuid.UUID) error
}

type checklistRepo interface {
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Checklist, error)
	Create(ctx context.Context, c *domain.Checklist) (*domain.Checklist, error)
	CreateItem(ctx context.Context, it *domain.ChecklistItem) (*domain.ChecklistItem, error)
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

// Service provides list operations.
type Service struct {
	boards     boardGetter
	lists      listRepo
	cards      cardRepo
	checklists checklistRepo
	guard      accessGuard
	activity   activityRecorder
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new list Service.
func NewService(
	log *slog.Logger,
	boards boardGetter,
	lists listRepo,
	cards cardRepo,
	checklists checklistRepo,
	guard accessGuard,
	activity activityRecorder,
	tx txManager,
) *Service {
	return &Service{
		boards:     boards,
		lists:      lists,
		cards:      cards,
		checklists: checklists,
		guard:      guard,
		activity:   activity,
		tx:         tx,
		log:        log.With("service", "list"),
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

func (s *Service) loadList(ctx context.Context, userID, listID uuid.UUID) (*domain.List, *domain.Board, domain.Role, error) {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, nil, domain.RoleNone, err
	}
	board, role, err := s.loadBoard(ctx, userID, l.BoardID)
	if err != nil {
		return nil, nil, domain.RoleNone, err
	}
	return l, board, role, nil
}

func (s *Service) logActivity(ctx context.Context, userID uuid.UUID, action domain.Action, l *domain.List, board *domain.Board, extra map[string]any) {
	meta := map[string]any{
		"board_id":    board.ID.String(),
		"board_title": board.Title,
		"title":       l.Title,
	}
	for k, v := range extra {
		meta[k] = v
	}
	err := s.activity.Record(ctx, domain.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: domain.EntityTypeList,
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
