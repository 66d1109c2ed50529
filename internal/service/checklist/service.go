package checklist

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

type boardGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
}

type cardGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)
}

type checklistRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Checklist, error)
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Checklist, error)
	Create(ctx context.Context, c *domain.Checklist) (*domain.Checklist, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetItem(ctx context.Context, id uuid.UUID) (*domain.ChecklistItem, error)
	LastItemPosition(ctx context.Context, checklistID uuid.UUID) (*domain.Position, error)
	CreateItem(ctx context.Context, it *domain.ChecklistItem) (*domain.ChecklistItem, error)
	UpdateItem(ctx context.Context, it *domain.ChecklistItem) (*domain.ChecklistItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type accessGuard interface {
	Role(ctx context.Context, userID uuid.UUID, board *domain.Board) (domain.Role, error)
	Access(ctx context.Context, userID uuid.UUID, board *domain.Board) (domain.Role, error)
}

type activityRecorder interface {
	Record(ctx context.Context, entry domain.ActivityLog) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides checklist and checklist item operations. Every mutation
// requires edit rights on the owning card.
type Service struct {
	boards     boardGetter
	cards      cardGetter
	checklists checklistRepo
	guard      accessGuard
	activity   activityRecorder
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new checklist Service.
func NewService(
	log *slog.Logger,
	boards boardGetter,
	cards cardGetter,
	checklists checklistRepo,
	guard accessGuard,
	activity activityRecorder,
	tx txManager,
) *Service {
	return &Service{
		boards:     boards,
		cards:      cards,
		checklists: checklists,
		guard:      guard,
		activity:   activity,
		tx:         tx,
		log:        log.With("service", "checklist"),
	}
}

// scope is the card a checklist hangs off, its board and the caller's role.
type scope struct {
	card  *domain.Card
	board *domain.Board
	role  domain.Role
}

func (s *Service) loadCard(ctx context.Context, userID, cardID uuid.UUID) (scope, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return scope{}, err
	}
	board, err := s.boards.GetByID(ctx, card.BoardID)
	if err != nil {
		return scope{}, err
	}
	role, err := s.guard.Access(ctx, userID, board)
	if err != nil {
		return scope{}, err
	}
	return scope{card: card, board: board, role: role}, nil
}

func (s *Service) loadChecklist(ctx context.Context, userID, checklistID uuid.UUID) (*domain.Checklist, scope, error) {
	cl, err := s.checklists.GetByID(ctx, checklistID)
	if err != nil {
		return nil, scope{}, err
	}
	sc, err := s.loadCard(ctx, userID, cl.CardID)
	if err != nil {
		return nil, scope{}, err
	}
	return cl, sc, nil
}

func (s *Service) logActivity(ctx context.Context, userID uuid.UUID, action domain.Action, entityType domain.EntityType, entityID uuid.UUID, sc scope, extra map[string]any) {
	meta := map[string]any{
		"board_id":    sc.board.ID.String(),
		"board_title": sc.board.Title,
		"card_id":     sc.card.ID.String(),
		"card_title":  sc.card.Title,
	}
	for k, v := range extra {
		meta[k] = v
	}
	err := s.activity.Record(ctx, domain.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   &entityID,
		Meta:       meta,
	})
	if err != nil {
		s.log.WarnContext(ctx, "activity not recorded",
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}
}
