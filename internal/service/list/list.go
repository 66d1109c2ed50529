package list

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/access"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/pkg/ctxutil"
)

// ListLists returns the lists of a board in display order.
func (s *Service) ListLists(ctx context.Context, boardID uuid.UUID, includeArchived bool) ([]domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	board, _, err := s.loadBoard(ctx, userID, boardID)
	if err != nil {
		return nil, err
	}

	lists, err := s.lists.ListByBoard(ctx, board.ID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	return lists, nil
}

// CreateList adds a list to a board.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	board, role, err := s.loadBoard(ctx, userID, input.BoardID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureCreateList(role, board); err != nil {
		return nil, err
	}

	allowDev := true
	if input.AllowDevAddCards != nil {
		allowDev = *input.AllowDevAddCards
	}

	var created *domain.List
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		pos := input.Position
		if pos == nil {
			last, err := s.lists.LastPosition(txCtx, board.ID)
			if err != nil {
				return fmt.Errorf("last list position: %w", err)
			}
			p := domain.PositionBetween(last, nil)
			pos = &p
		}

		var err error
		created, err = s.lists.Create(txCtx, &domain.List{
			BoardID:          board.ID,
			Title:            domain.NormalizeTitle(input.Title),
			Color:            input.Color,
			Position:         *pos,
			AllowDevAddCards: allowDev,
		})
		if err != nil {
			return fmt.Errorf("create list: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, domain.ActionCreateList, created, board, nil)

	s.log.InfoContext(ctx, "list created",
		slog.String("user_id", userID.String()),
		slog.String("board_id", board.ID.String()),
		slog.String("list_id", created.ID.String()),
	)
	return created, nil
}

// UpdateList changes a list's title, color, position, archived flag or the
// developer card override.
func (s *Service) UpdateList(ctx context.Context, input UpdateListInput) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, board, role, err := s.loadList(ctx, userID, input.ListID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureManageList(role); err != nil {
		return nil, err
	}

	next := *current
	if input.Title != nil {
		next.Title = domain.NormalizeTitle(*input.Title)
	}
	if input.Color != nil {
		next.Color = *input.Color
	}
	if input.Position != nil {
		next.Position = *input.Position
	}
	if input.IsArchived != nil {
		next.IsArchived = *input.IsArchived
	}
	if input.AllowDevAddCards != nil {
		next.AllowDevAddCards = *input.AllowDevAddCards
	}

	var updated *domain.List
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.lists.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update list: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch {
	case updated.IsArchived != current.IsArchived:
		action := domain.ActionUnarchiveList
		if updated.IsArchived {
			action = domain.ActionArchiveList
		}
		s.logActivity(ctx, userID, action, updated, board, nil)
	case updated.Title != current.Title:
		s.logActivity(ctx, userID, domain.ActionRenameList, updated, board, map[string]any{"old_title": current.Title})
	case updated.Position.Cmp(current.Position) != 0:
		s.logActivity(ctx, userID, domain.ActionMoveList, updated, board, nil)
	default:
		s.logActivity(ctx, userID, domain.ActionUpdateList, updated, board, nil)
	}

	s.log.InfoContext(ctx, "list updated",
		slog.String("user_id", userID.String()),
		slog.String("list_id", updated.ID.String()),
	)
	return updated, nil
}

// DeleteList removes a list and its cards.
func (s *Service) DeleteList(ctx context.Context, listID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	l, board, role, err := s.loadList(ctx, userID, listID)
	if err != nil {
		return err
	}
	if err := access.EnsureManageList(role); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.lists.Delete(txCtx, l.ID); err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logActivity(ctx, userID, domain.ActionDeleteList, l, board, nil)

	s.log.InfoContext(ctx, "list deleted",
		slog.String("user_id", userID.String()),
		slog.String("list_id", l.ID.String()),
	)
	return nil
}
