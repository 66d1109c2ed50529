package board

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

type boardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	GetByInviteToken(ctx context.Context, token uuid.UUID) (*domain.Board, error)
	Create(ctx context.Context, b *domain.Board) (*domain.Board, error)
	Update(ctx context.Context, b *domain.Board) (*domain.Board, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]domain.BoardSummary, error)
}

type membershipRepo interface {
	GetMembership(ctx context.Context, boardID, userID uuid.UUID) (*domain.Membership, error)
	CreateMembership(ctx context.Context, m *domain.Membership) (*domain.Membership, error)
	UpdateMembership(ctx context.Context, m *domain.Membership) (*domain.Membership, error)
	DeleteMembership(ctx context.Context, boardID, userID uuid.UUID) error
	ListMembers(ctx context.Context, boardID uuid.UUID) ([]domain.Member, error)
}

type listCreator interface {
	Create(ctx context.Context, l *domain.List) (*domain.List, error)
}

type userFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
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

// Options holds board-level settings taken from configuration.
type Options struct {
	// InviteDefaultRole is the role granted when an invite link is redeemed.
	InviteDefaultRole domain.Role
}

// Service implements board, favorite, invite and member operations.
type Service struct {
	boards      boardRepo
	memberships membershipRepo
	lists       listCreator
	users       userFinder
	guard       accessGuard
	activity    activityRecorder
	tx          txManager
	opts        Options
	log         *slog.Logger
}

// NewService creates a new board Service.
func NewService(
	log *slog.Logger,
	boards boardRepo,
	memberships membershipRepo,
	lists listCreator,
	users userFinder,
	guard accessGuard,
	activity activityRecorder,
	tx txManager,
	opts Options,
) *Service {
	if opts.InviteDefaultRole != domain.RoleViewer {
		opts.InviteDefaultRole = domain.RoleDeveloper
	}
	return &Service{
		boards:      boards,
		memberships: memberships,
		lists:       lists,
		users:       users,
		guard:       guard,
		activity:    activity,
		tx:          tx,
		opts:        opts,
		log:         log.With("service", "board"),
	}
}

// load fetches a board and resolves the caller's role on it. Boards the
// caller cannot see are reported as not found.
func (s *Service) load(ctx context.Context, userID, boardID uuid.UUID) (*domain.Board, domain.Role, error) {
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

// logActivity records an action after the mutation committed. Failures are
// logged and dropped.
func (s *Service) logActivity(ctx context.Context, userID uuid.UUID, action domain.Action, entityType domain.EntityType, entityID uuid.UUID, meta map[string]any) {
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

func boardMeta(b *domain.Board) map[string]any {
	return map[string]any{
		"board_id":    b.ID.String(),
		"board_title": b.Title,
	}
}
