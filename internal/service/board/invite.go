package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/access"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/pkg/ctxutil"
)

// RegenerateInvite replaces the board's invite token, which invalidates
// every link handed out so far.
func (s *Service) RegenerateInvite(ctx context.Context, boardID uuid.UUID) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}

	board, role, err := s.load(ctx, userID, boardID)
	if err != nil {
		return uuid.Nil, err
	}
	if err := access.EnsureManageBoard(role); err != nil {
		return uuid.Nil, err
	}

	next := *board
	next.InviteToken = uuid.New()

	var updated *domain.Board
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.boards.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("regenerate invite: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.logActivity(ctx, userID, domain.ActionRegenerateInvite, domain.EntityTypeBoard, updated.ID, boardMeta(updated))

	s.log.InfoContext(ctx, "board invite regenerated",
		slog.String("user_id", userID.String()),
		slog.String("board_id", updated.ID.String()),
	)
	return updated.InviteToken, nil
}

// JoinByInvite redeems an invite token. The caller becomes a member with the
// configured default role. Owners and existing members get ErrAlreadyExists.
func (s *Service) JoinByInvite(ctx context.Context, token uuid.UUID) (*domain.Board, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if token == uuid.Nil {
		return nil, domain.NewValidationError("invite_token", "required")
	}

	board, err := s.boards.GetByInviteToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if board.IsOwner(userID) {
		return nil, fmt.Errorf("board %s: owner: %w", board.ID, domain.ErrAlreadyExists)
	}

	_, err = s.memberships.GetMembership(ctx, board.ID, userID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("board %s: member: %w", board.ID, domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get membership: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.memberships.CreateMembership(txCtx, &domain.Membership{
			BoardID: board.ID,
			UserID:  userID,
			Role:    s.opts.InviteDefaultRole,
		}); err != nil {
			return fmt.Errorf("join board: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	meta := boardMeta(board)
	meta["role"] = s.opts.InviteDefaultRole.String()
	s.logActivity(ctx, userID, domain.ActionJoinBoard, domain.EntityTypeBoard, board.ID, meta)

	s.log.InfoContext(ctx, "board joined",
		slog.String("user_id", userID.String()),
		slog.String("board_id", board.ID.String()),
	)
	return board, nil
}
