package list

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Timurc390/Boardly/internal/access"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/pkg/ctxutil"
)

const copySuffix = " (Copy)"

// CopyList duplicates a list right after the source, together with its
// non-archived cards, their labels and their checklists. Assignees are not
// copied.
func (s *Service) CopyList(ctx context.Context, input CopyListInput) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	src, board, role, err := s.loadList(ctx, userID, input.ListID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureManageList(role); err != nil {
		return nil, err
	}

	title := src.Title + copySuffix
	if input.Title != nil {
		title = domain.NormalizeTitle(*input.Title)
	}

	var copied *domain.List
	var cardCount int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		next, err := s.lists.PositionAfter(txCtx, board.ID, src.Position)
		if err != nil {
			return fmt.Errorf("next list position: %w", err)
		}

		copied, err = s.lists.Create(txCtx, &domain.List{
			BoardID:          board.ID,
			Title:            title,
			Color:            src.Color,
			Position:         domain.PositionBetween(&src.Position, next),
			AllowDevAddCards: src.AllowDevAddCards,
		})
		if err != nil {
			return fmt.Errorf("create list copy: %w", err)
		}

		cards, err := s.cards.List(txCtx, domain.CardFilter{
			VisibleTo:       userID,
			ListID:          &src.ID,
			IncludeArchived: true,
		})
		if err != nil {
			return fmt.Errorf("list source cards: %w", err)
		}
		for i := range cards {
			if cards[i].IsArchived {
				continue
			}
			if err := s.copyCard(txCtx, &cards[i], copied); err != nil {
				return err
			}
			cardCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, domain.ActionCopyList, copied, board, map[string]any{
		"original_id": src.ID.String(),
	})

	s.log.InfoContext(ctx, "list copied",
		slog.String("user_id", userID.String()),
		slog.String("source_list_id", src.ID.String()),
		slog.String("list_id", copied.ID.String()),
		slog.Int("cards", cardCount),
	)
	return copied, nil
}

func (s *Service) copyCard(ctx context.Context, src *domain.Card, target *domain.List) error {
	c, err := s.cards.Create(ctx, &domain.Card{
		ListID:      target.ID,
		Title:       src.Title,
		Description: src.Description,
		Color:       src.Color,
		Position:    src.Position,
		DueDate:     src.DueDate,
		IsCompleted: src.IsCompleted,
		IsPublic:    src.IsPublic,
	})
	if err != nil {
		return fmt.Errorf("copy card %s: %w", src.ID, err)
	}

	if len(src.LabelIDs) > 0 {
		if err := s.cards.SetLabels(ctx, c.ID, src.LabelIDs); err != nil {
			return fmt.Errorf("copy card %s labels: %w", src.ID, err)
		}
	}

	checklists, err := s.checklists.ListByCard(ctx, src.ID)
	if err != nil {
		return fmt.Errorf("list checklists of card %s: %w", src.ID, err)
	}
	for _, cl := range checklists {
		newCl, err := s.checklists.Create(ctx, &domain.Checklist{CardID: c.ID, Title: cl.Title})
		if err != nil {
			return fmt.Errorf("copy checklist %s: %w", cl.ID, err)
		}
		for _, it := range cl.Items {
			if _, err := s.checklists.CreateItem(ctx, &domain.ChecklistItem{
				ChecklistID: newCl.ID,
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
