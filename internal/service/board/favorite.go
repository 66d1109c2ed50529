package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/pkg/ctxutil"
)

// ToggleFavorite flips the caller's favorite flag on a board and returns the
// new value. An owner without a membership row gets an admin row.
func (s *Service) ToggleFavorite(ctx context.Context, boardID uuid.UUID) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	board, _, err := s.load(ctx, userID, boardID)
	if err != nil {
		return false, err
	}

	var favorite bool
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		m, err := s.memberships.GetMembership(txCtx, board.ID, userID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// Only the owner can reach this point without a row.
			created, err := s.memberships.CreateMembership(txCtx, &domain.Membership{
				BoardID:    board.ID,
				UserID:     userID,
				Role:       domain.RoleAdmin,
				IsFavorite: true,
			})
			if err != nil {
				return fmt.Errorf("create membership: %w", err)
			}
			favorite = created.IsFavorite
			return nil
		case err != nil:
			return fmt.Errorf("get membership: %w", err)
		}

		m.IsFavorite = !m.IsFavorite
		updated, err := s.memberships.UpdateMembership(txCtx, m)
		if err != nil {
			return fmt.Errorf("update membership: %w", err)
		}
		favorite = updated.IsFavorite
		return nil
	})
	if err != nil {
		return false, err
	}

	action := domain.ActionUnfavoriteBoard
	if favorite {
		action = domain.ActionFavoriteBoard
	}
	s.logActivity(ctx, userID, action, domain.EntityTypeBoard, board.ID, boardMeta(board))

	s.log.InfoContext(ctx, "board favorite toggled",
		slog.String("user_id", userID.String()),
		slog.String("board_id", board.ID.String()),
		slog.Bool("favorite", favorite),
	)
	return favorite, nil
}
