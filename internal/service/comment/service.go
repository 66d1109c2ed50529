package comment

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

type commentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
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

// Service provides card comment operations.
type Service struct {
	boards   boardGetter
	cards    cardGetter
	comments commentRepo
	guard    accessGuard
	activity activityRecorder
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new comment Service.
func NewService(
	log *slog.Logger,
	boards boardGetter,
	cards cardGetter,
	comments commentRepo,
	guard accessGuard,
	activity activityRecorder,
	tx txManager,
) *Service {
	return &Service{
		boards:   boards,
		cards:    cards,
		comments: comments,
		guard:    guard,
		activity: activity,
		tx:       tx,
		log:      log.With("service", "comment"),
	}
}

func (s *Service) loadCard(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, *domain.Board, domain.Role, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, nil, domain.RoleNone, err
	}
	board, err := s.boards.GetByID(ctx, card.BoardID)
	if err != nil {
		return nil, nil, domain.RoleNone, err
	}
	role, err := s.guard.Access(ctx, userID, board)
	if err != nil {
		return nil, nil, domain.RoleNone, err
	}
	return card, board, role, nil
}

// excerptLen bounds the comment text snapshotted into activity meta.
const excerptLen = 100

func excerpt(text string) string {
	r := []rune(text)
	if len(r) <= excerptLen {
		return text
	}
	return string(r[:excerptLen]) + "…"
}

func (s *Service) logActivity(ctx context.Context, userID uuid.UUID, action domain.Action, c *domain.Comment, card *domain.Card, b *domain.Board) {
	err := s.activity.Record(ctx, domain.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: domain.EntityTypeComment,
		EntityID:   &c.ID,
		Meta: map[string]any{
			"board_id":    b.ID.String(),
			"board_title": b.Title,
			"card_id":     card.ID.String(),
			"card_title":  card.Title,
			"text":        excerpt(c.Text),
		},
	})
	if err != nil {
		s.log.WarnContext(ctx, "activity not recorded",
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}
}
