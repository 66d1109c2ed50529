package card

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

type boardGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
}

type listGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error)
}

type cardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	List(ctx context.Context, f domain.CardFilter) ([]domain.Card, error)
	LastPosition(ctx context.Context, listID uuid.UUID) (*domain.Position, error)
	PositionAfter(ctx context.Context, listID uuid.UUID, pos domain.Position) (*domain.Position, error)
	Create(ctx context.Context, c *domain.Card) (*domain.Card, error)
	Update(ctx context.Context, c *domain.Card) (*domain.Card, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddAssignee(ctx context.Context, cardID, userID uuid.UUID) error
	RemoveAssignee(ctx context.Context, cardID, userID uuid.UUID) error
	SetLabels(ctx context.Context, cardID uuid.UUID, labelIDs []uuid.UUID) error
}

type labelLister interface {
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.Label, error)
}

type checklistRepo interface {
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Checklist, error)
	Create(ctx context.Context, c *domain.Checklist) (*domain.Checklist, error)
	CreateItem(ctx context.Context, it *domain.ChecklistItem) (*domain.ChecklistItem, error)
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

// DefaultChecklistTitle is the checklist every new card starts with.
const DefaultChecklistTitle = "Checklist"

// Service provides card operations.
type Service struct {
	boards     boardGetter
	lists      listGetter
	cards      cardRepo
	labels     labelLister
	checklists checklistRepo
	guard      accessGuard
	activity   activityRecorder
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new card Service.
func NewService(
	log *slog.Logger,
	boards boardGetter,
	lists listGetter,
	cards cardRepo,
	labels labelLister,
	checklists checklistRepo,
	guard accessGuard,
	activity activityRecorder,
	tx txManager,
) *Service {
	return &Service{
		boards:     boards,
		lists:      lists,
		cards:      cards,
		labels:     labels,
		checklists: checklists,
		guard:      guard,
		activity:   activity,
		tx:         tx,
		log:        log.With("service", "card"),
	}
}

// target is a card together with its board and the caller's role there.
type target struct {
	card  *domain.Card
	board *domain.Board
	role  domain.Role
}

// loadCard fetches a card and requires board access. Cards on boards the
// caller cannot see are reported as not found.
func (s *Service) loadCard(ctx context.Context, userID, cardID uuid.UUID) (target, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return target{}, err
	}
	board, err := s.boards.GetByID(ctx, card.BoardID)
	if err != nil {
		return target{}, err
	}
	role, err := s.guard.Access(ctx, userID, board)
	if err != nil {
		return target{}, err
	}
	return target{card: card, board: board, role: role}, nil
}

func (s *Service) loadList(ctx context.Context, userID, listID uuid.UUID) (*domain.List, *domain.Board, domain.Role, error) {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, nil, domain.RoleNone, err
	}
	board, err := s.boards.GetByID(ctx, l.BoardID)
	if err != nil {
		return nil, nil, domain.RoleNone, err
	}
	role, err := s.guard.Access(ctx, userID, board)
	if err != nil {
		return nil, nil, domain.RoleNone, err
	}
	return l, board, role, nil
}

func cardMeta(c *domain.Card, b *domain.Board) map[string]any {
	return map[string]any{
		"board_id":    b.ID.String(),
		"board_title": b.Title,
		"card_id":     c.ID.String(),
		"title":       c.Title,
	}
}

func (s *Service) logActivity(ctx context.Context, userID uuid.UUID, action domain.Action, c *domain.Card, b *domain.Board, extra map[string]any) {
	meta := cardMeta(c, b)
	for k, v := range extra {
		meta[k] = v
	}
	err := s.activity.Record(ctx, domain.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: domain.EntityTypeCard,
		EntityID:   &c.ID,
		Meta:       meta,
	})
	if err != nil {
		s.log.WarnContext(ctx, "activity not recorded",
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}
}
