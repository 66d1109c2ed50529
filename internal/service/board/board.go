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

// CreateBoard creates a board owned by the caller together with the owner's
// admin membership and the default lists, all in one transaction.
func (s *Service) CreateBoard(ctx context.Context, input CreateBoardInput) (*domain.Board, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var board *domain.Board
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		board, err = s.boards.Create(txCtx, &domain.Board{
			Title:       domain.NormalizeTitle(input.Title),
			Description: input.Description,
			Background:  input.Background,
			OwnerID:     userID,
			Permissions: domain.DefaultBoardPermissions(),
		})
		if err != nil {
			return fmt.Errorf("create board: %w", err)
		}

		if _, err := s.memberships.CreateMembership(txCtx, &domain.Membership{
			BoardID: board.ID,
			UserID:  userID,
			Role:    domain.RoleAdmin,
		}); err != nil {
			return fmt.Errorf("create owner membership: %w", err)
		}

		for i, title := range domain.DefaultListTitles {
			if _, err := s.lists.Create(txCtx, &domain.List{
				BoardID:          board.ID,
				Title:            title,
				Position:         domain.NewPosition(int64(i + 1)),
				AllowDevAddCards: true,
			}); err != nil {
				return fmt.Errorf("create default list %q: %w", title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	meta := boardMeta(board)
	meta["title"] = board.Title
	s.logActivity(ctx, userID, domain.ActionCreateBoard, domain.EntityTypeBoard, board.ID, meta)

	s.log.InfoContext(ctx, "board created",
		slog.String("user_id", userID.String()),
		slog.String("board_id", board.ID.String()),
	)
	return board, nil
}

// GetBoard returns a board as seen by the caller.
func (s *Service) GetBoard(ctx context.Context, boardID uuid.UUID) (*domain.BoardSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	board, role, err := s.load(ctx, userID, boardID)
	if err != nil {
		return nil, err
	}

	summary := &domain.BoardSummary{Board: *board, Role: role}
	m, err := s.memberships.GetMembership(ctx, boardID, userID)
	switch {
	case err == nil:
		summary.IsFavorite = m.IsFavorite
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return summary, nil
}

// ListBoards returns the boards the caller owns or is a member of.
func (s *Service) ListBoards(ctx context.Context, includeArchived bool) ([]domain.BoardSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	boards, err := s.boards.ListForUser(ctx, userID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return boards, nil
}

// UpdateBoard changes title, description, background or the archived flag.
func (s *Service) UpdateBoard(ctx context.Context, input UpdateBoardInput) (*domain.Board, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	board, role, err := s.load(ctx, userID, input.BoardID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureManageBoard(role); err != nil {
		return nil, err
	}

	prevTitle, prevArchived := board.Title, board.IsArchived
	next := *board
	if input.Title != nil {
		next.Title = domain.NormalizeTitle(*input.Title)
	}
	if input.Description != nil {
		next.Description = *input.Description
	}
	if input.Background != nil {
		next.Background = *input.Background
	}
	if input.IsArchived != nil {
		next.IsArchived = *input.IsArchived
	}

	var updated *domain.Board
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.boards.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update board: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	meta := boardMeta(updated)
	switch {
	case updated.IsArchived != prevArchived:
		meta["title"] = updated.Title
		action := domain.ActionUnarchiveBoard
		if updated.IsArchived {
			action = domain.ActionArchiveBoard
		}
		s.logActivity(ctx, userID, action, domain.EntityTypeBoard, updated.ID, meta)
	case updated.Title != prevTitle:
		meta["title"] = updated.Title
		meta["old_title"] = prevTitle
		s.logActivity(ctx, userID, domain.ActionRenameBoard, domain.EntityTypeBoard, updated.ID, meta)
	default:
		s.logActivity(ctx, userID, domain.ActionUpdateBoard, domain.EntityTypeBoard, updated.ID, meta)
	}

	s.log.InfoContext(ctx, "board updated",
		slog.String("user_id", userID.String()),
		slog.String("board_id", updated.ID.String()),
	)
	return updated, nil
}

// UpdatePermissions changes the developer permission flags of a board.
func (s *Service) UpdatePermissions(ctx context.Context, input UpdatePermissionsInput) (*domain.Board, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	board, role, err := s.load(ctx, userID, input.BoardID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureManageBoard(role); err != nil {
		return nil, err
	}

	next := *board
	next.Permissions = input.apply(board.Permissions)

	var updated *domain.Board
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.boards.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update board permissions: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	meta := boardMeta(updated)
	p := updated.Permissions
	meta["permissions"] = map[string]any{
		"dev_can_create_cards":           p.DevCanCreateCards,
		"dev_can_edit_assigned_cards":    p.DevCanEditAssignedCards,
		"dev_can_archive_assigned_cards": p.DevCanArchiveAssignedCards,
		"dev_can_join_card":              p.DevCanJoinCard,
		"dev_can_create_lists":           p.DevCanCreateLists,
	}
	s.logActivity(ctx, userID, domain.ActionUpdateBoardPermissions, domain.EntityTypeBoard, updated.ID, meta)

	s.log.InfoContext(ctx, "board permissions updated",
		slog.String("user_id", userID.String()),
		slog.String("board_id", updated.ID.String()),
	)
	return updated, nil
}

// DeleteBoard removes a board and everything on it.
func (s *Service) DeleteBoard(ctx context.Context, boardID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	board, role, err := s.load(ctx, userID, boardID)
	if err != nil {
		return err
	}
	if err := access.EnsureManageBoard(role); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.boards.Delete(txCtx, board.ID); err != nil {
			return fmt.Errorf("delete board: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	meta := boardMeta(board)
	meta["title"] = board.Title
	s.logActivity(ctx, userID, domain.ActionDeleteBoard, domain.EntityTypeBoard, board.ID, meta)

	s.log.InfoContext(ctx, "board deleted",
		slog.String("user_id", userID.String()),
		slog.String("board_id", board.ID.String()),
	)
	return nil
}
