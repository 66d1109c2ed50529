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

const copySuffix = " (Copy)"

// MoveCard moves a card to another position, possibly in another list of the
// same board.
func (s *Service) MoveCard(ctx context.Context, input MoveCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	t, err := s.loadCard(ctx, userID, input.CardID)
	if err != nil {
		return nil, err
	}
	dest, err := s.lists.GetByID(ctx, input.ListID)
	if err != nil {
		return nil, err
	}
	if dest.BoardID != t.board.ID {
		return nil, domain.NewValidationError("list_id", "must be a list on the same board")
	}
	if err := access.EnsureCardMove(t.role, t.board, t.card, dest, userID); err != nil {
		return nil, err
	}

	from, err := s.lists.GetByID(ctx, t.card.ListID)
	if err != nil {
		return nil, fmt.Errorf("get source list: %w", err)
	}

	var moved *domain.Card
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		next := *t.card
		next.ListID = dest.ID
		if input.Position != nil {
			next.Position = *input.Position
		} else {
			last, err := s.cards.LastPosition(txCtx, dest.ID)
			if err != nil {
				return fmt.Errorf("last card position: %w", err)
			}
			next.Position = domain.PositionBetween(last, nil)
		}

		var err error
		moved, err = s.cards.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("move card: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, domain.ActionMoveCard, moved, t.board, map[string]any{
		"from_list":       from.ID.String(),
		"from_list_title": from.Title,
		"to_list":         dest.ID.String(),
		"to_list_title":   dest.Title,
	})

	s.log.InfoContext(ctx, "card moved",
		slog.String("user_id", userID.String()),
		slog.String("card_id", moved.ID.String()),
		slog.String("list_id", dest.ID.String()),
	)
	return moved, nil
}

// CopyCard duplicates a card with its checklists. Labels are copied only when
// the copy stays on the same board. Copying to another board requires card
// creation rights on the target list.
func (s *Service) CopyCard(ctx context.Context, input CopyCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	src, err := s.loadCard(ctx, userID, input.CardID)
	if err != nil {
		return nil, err
	}

	destListID := src.card.ListID
	if input.ListID != nil {
		destListID = *input.ListID
	}
	dest, destBoard, destRole, err := s.loadList(ctx, userID, destListID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureCreateCard(destRole, destBoard, dest); err != nil {
		return nil, err
	}

	title := src.card.Title + copySuffix
	if input.Title != nil {
		title = domain.NormalizeTitle(*input.Title)
	}

	var copied *domain.Card
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var pos domain.Position
		if dest.ID == src.card.ListID {
			after, err := s.cards.PositionAfter(txCtx, dest.ID, src.card.Position)
			if err != nil {
				return fmt.Errorf("next card position: %w", err)
			}
			pos = domain.PositionBetween(&src.card.Position, after)
		} else {
			last, err := s.cards.LastPosition(txCtx, dest.ID)
			if err != nil {
				return fmt.Errorf("last card position: %w", err)
			}
			pos = domain.PositionBetween(last, nil)
		}

		created, err := s.cards.Create(txCtx, &domain.Card{
			ListID:      dest.ID,
			Title:       title,
			Description: src.card.Description,
			Color:       src.card.Color,
			Position:    pos,
			DueDate:     src.card.DueDate,
			IsPublic:    src.card.IsPublic,
		})
		if err != nil {
			return fmt.Errorf("create card copy: %w", err)
		}

		if destBoard.ID == src.board.ID && len(src.card.LabelIDs) > 0 {
			if err := s.cards.SetLabels(txCtx, created.ID, src.card.LabelIDs); err != nil {
				return fmt.Errorf("copy labels: %w", err)
			}
		}
		if err := s.copyChecklists(txCtx, src.card.ID, created.ID); err != nil {
			return err
		}

		copied, err = s.cards.GetByID(txCtx, created.ID)
		if err != nil {
			return fmt.Errorf("reload card copy: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, domain.ActionCopyCard, copied, destBoard, map[string]any{
		"original_id":    src.card.ID.String(),
		"original_title": src.card.Title,
		"to_list":        dest.ID.String(),
		"to_list_title":  dest.Title,
	})

	s.log.InfoContext(ctx, "card copied",
		slog.String("user_id", userID.String()),
		slog.String("source_card_id", src.card.ID.String()),
		slog.String("card_id", copied.ID.String()),
	)
	return copied, nil
}

func (s *Service) copyChecklists(ctx context.Context, fromCard, toCard uuid.UUID) error {
	checklists, err := s.checklists.ListByCard(ctx, fromCard)
	if err != nil {
		return fmt.Errorf("list checklists: %w", err)
	}
	for _, cl := range checklists {
		created, err := s.checklists.Create(ctx, &domain.Checklist{CardID: toCard, Title: cl.Title})
		if err != nil {
			return fmt.Errorf("copy checklist %s: %w", cl.ID, err)
		}
		for _, it := range cl.Items {
			if _, err := s.checklists.CreateItem(ctx, &domain.ChecklistItem{
				ChecklistID: created.ID,
				Text:        it.Text,
				IsChecked:   it.IsChecked,
				Position:    it.Position,
			}); err != nil {
				return fmt.Errorf("copy checklist item %s: %w", it.ID, err)
			}
		}
	}
	return nil
}
