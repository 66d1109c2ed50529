package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/access"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/pkg/ctxutil"
)

// JoinCard assigns the caller to a card.
func (s *Service) JoinCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	t, err := s.loadCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureJoinCard(t.role, t.board); err != nil {
		return nil, err
	}
	if t.card.IsAssigned(userID) {
		return t.card, nil
	}

	card, err := s.assign(ctx, t.card.ID, userID, true)
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, domain.ActionJoinCard, card, t.board, nil)
	s.log.InfoContext(ctx, "card joined",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
	)
	return card, nil
}

// LeaveCard unassigns the caller from a card. It is gated like JoinCard;
// leaving a card one is not assigned to is a no-op.
func (s *Service) LeaveCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	t, err := s.loadCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureJoinCard(t.role, t.board); err != nil {
		return nil, err
	}
	if !t.card.IsAssigned(userID) {
		return t.card, nil
	}

	card, err := s.assign(ctx, t.card.ID, userID, false)
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, domain.ActionLeaveCard, card, t.board, nil)
	s.log.InfoContext(ctx, "card left",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
	)
	return card, nil
}

// AddCardMember assigns another board member to a card.
func (s *Service) AddCardMember(ctx context.Context, cardID, memberID uuid.UUID) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if memberID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	t, err := s.loadCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureManageCardMembers(t.role); err != nil {
		return nil, err
	}

	memberRole, err := s.guard.Role(ctx, memberID, t.board)
	if err != nil {
		return nil, fmt.Errorf("resolve member role: %w", err)
	}
	if !memberRole.IsMember() {
		return nil, domain.NewValidationError("user_id", "user is not a member of this board")
	}

	card, err := s.assign(ctx, t.card.ID, memberID, true)
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, domain.ActionAddCardMember, card, t.board, map[string]any{
		"member_id": memberID.String(),
	})
	s.log.InfoContext(ctx, "card member added",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
		slog.String("member_id", memberID.String()),
	)
	return card, nil
}

// RemoveCardMember unassigns a user from a card.
func (s *Service) RemoveCardMember(ctx context.Context, cardID, memberID uuid.UUID) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if memberID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	t, err := s.loadCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureManageCardMembers(t.role); err != nil {
		return nil, err
	}

	card, err := s.assign(ctx, t.card.ID, memberID, false)
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, domain.ActionRemoveCardMember, card, t.board, map[string]any{
		"member_id": memberID.String(),
	})
	s.log.InfoContext(ctx, "card member removed",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
		slog.String("member_id", memberID.String()),
	)
	return card, nil
}

func (s *Service) assign(ctx context.Context, cardID, userID uuid.UUID, add bool) (*domain.Card, error) {
	var card *domain.Card
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if add {
			err = s.cards.AddAssignee(txCtx, cardID, userID)
		} else {
			err = s.cards.RemoveAssignee(txCtx, cardID, userID)
		}
		if err != nil {
			return fmt.Errorf("update assignees: %w", err)
		}

		card, err = s.cards.GetByID(txCtx, cardID)
		if err != nil {
			return fmt.Errorf("reload card: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}
