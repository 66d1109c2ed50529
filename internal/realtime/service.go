package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type boardGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
}

type roleResolver interface {
	ResolveRole(ctx context.Context, userID uuid.UUID, board *domain.Board) (domain.Role, error)
}

// Service authorizes websocket connections and relays their messages.
type Service struct {
	log    *slog.Logger
	tokens tokenValidator
	boards boardGetter
	roles  roleResolver
	group  *Group
	broker Broker
}

// NewService creates a realtime Service.
func NewService(
	log *slog.Logger,
	tokens tokenValidator,
	boards boardGetter,
	roles roleResolver,
	group *Group,
	broker Broker,
) *Service {
	return &Service{
		log:    log.With("service", "realtime"),
		tokens: tokens,
		boards: boards,
		roles:  roles,
		group:  group,
		broker: broker,
	}
}

// Connect authenticates the token, checks that its user is the owner or a
// member of the board and subscribes the connection to the board's group.
func (s *Service) Connect(ctx context.Context, token string, boardID uuid.UUID) (*Session, error) {
	if token == "" {
		rejectedConnections.WithLabelValues("token").Inc()
		return nil, domain.ErrUnauthorized
	}

	userID, err := s.tokens.ValidateToken(ctx, token)
	if err != nil {
		rejectedConnections.WithLabelValues("token").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			rejectedConnections.WithLabelValues("board").Inc()
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("get board: %w", err)
	}

	role, err := s.roles.ResolveRole(ctx, userID, board)
	if err != nil {
		return nil, fmt.Errorf("resolve role: %w", err)
	}
	if !role.IsMember() {
		rejectedConnections.WithLabelValues("role").Inc()
		return nil, domain.ErrForbidden
	}

	sess := &Session{
		svc:     s,
		userID:  userID,
		boardID: boardID,
		sub:     s.group.Subscribe(boardID),
	}

	s.log.InfoContext(ctx, "realtime connected",
		slog.String("user_id", userID.String()),
		slog.String("board_id", boardID.String()),
	)

	return sess, nil
}

// Session is one authorized connection bound to one board for its lifetime.
type Session struct {
	svc     *Service
	userID  uuid.UUID
	boardID uuid.UUID
	sub     *Subscription
	once    sync.Once
}

func (s *Session) UserID() uuid.UUID  { return s.userID }
func (s *Session) BoardID() uuid.UUID { return s.boardID }

// Outbound yields messages for this connection. It is closed after Close or
// when the connection is evicted for falling behind.
func (s *Session) Outbound() <-chan []byte { return s.sub.C() }

// Evicted reports whether the session lost its subscription for being slow.
func (s *Session) Evicted() bool { return s.svc.group.Evicted(s.sub) }

// Handle validates one client frame and relays it to every subscriber of the
// board, the sender included. It returns false when the frame was dropped.
func (s *Session) Handle(ctx context.Context, raw []byte) bool {
	in, ok := ParseInbound(raw, s.boardID)
	if !ok {
		messagesTotal.WithLabelValues("dropped").Inc()
		return false
	}

	msg, err := json.Marshal(Outbound{
		Type:       MessageTypeBoardUpdated,
		ActionType: in.ActionType,
		Payload:    in.Payload,
		SenderID:   s.userID,
		BoardID:    s.boardID,
	})
	if err != nil {
		messagesTotal.WithLabelValues("dropped").Inc()
		return false
	}

	if err := s.svc.broker.Publish(ctx, s.boardID, msg); err != nil {
		messagesTotal.WithLabelValues("failed").Inc()
		s.svc.log.WarnContext(ctx, "realtime publish failed",
			slog.String("board_id", s.boardID.String()),
			slog.String("error", err.Error()),
		)
		return false
	}

	messagesTotal.WithLabelValues("relayed").Inc()
	return true
}

// Close leaves the board group. Safe to call more than once.
func (s *Session) Close() {
	s.once.Do(func() {
		s.svc.group.Unsubscribe(s.sub)
		s.svc.log.Info("realtime disconnected",
			slog.String("user_id", s.userID.String()),
			slog.String("board_id", s.boardID.String()),
		)
	})
}
