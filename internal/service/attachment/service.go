package attachment

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

type boardGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
}

type cardGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)
}

type attachmentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Attachment, error)
	Create(ctx context.Context, a *domain.Attachment) (*domain.Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type blobStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key, filename string, ttl time.Duration) (string, error)
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

// Options configures the attachment service. When Enabled is false every
// operation fails with domain.ErrUnavailable.
type Options struct {
	Enabled    bool
	PresignTTL time.Duration
	MaxBytes   int64
}

// Service stores card attachments in the blob store and their metadata in
// the database.
type Service struct {
	boards      boardGetter
	cards       cardGetter
	attachments attachmentRepo
	blobs       blobStore
	guard       accessGuard
	activity    activityRecorder
	tx          txManager
	opts        Options
	log         *slog.Logger
}

// NewService creates a new attachment Service.
func NewService(
	log *slog.Logger,
	boards boardGetter,
	cards cardGetter,
	attachments attachmentRepo,
	blobs blobStore,
	guard accessGuard,
	activity activityRecorder,
	tx txManager,
	opts Options,
) *Service {
	if opts.PresignTTL <= 0 {
		opts.PresignTTL = 15 * time.Minute
	}
	return &Service{
		boards:      boards,
		cards:       cards,
		attachments: attachments,
		blobs:       blobs,
		guard:       guard,
		activity:    activity,
		tx:          tx,
		opts:        opts,
		log:         log.With("service", "attachment"),
	}
}

func (s *Service) available() error {
	if !s.opts.Enabled || s.blobs == nil {
		return domain.ErrUnavailable
	}
	return nil
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

func (s *Service) logActivity(ctx context.Context, userID uuid.UUID, action domain.Action, a *domain.Attachment, card *domain.Card, b *domain.Board) {
	err := s.activity.Record(ctx, domain.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: domain.EntityTypeAttachment,
		EntityID:   &a.ID,
		Meta: map[string]any{
			"board_id":    b.ID.String(),
			"board_title": b.Title,
			"card_id":     card.ID.String(),
			"card_title":  card.Title,
			"filename":    a.Filename,
		},
	})
	if err != nil {
		s.log.WarnContext(ctx, "activity not recorded",
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}
}
