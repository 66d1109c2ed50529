package checklist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/access"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/pkg/ctxutil"
)

// AddItem appends an item to a checklist, or inserts it at Position.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*domain.ChecklistItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cl, sc, err := s.loadChecklist(ctx, userID, input.ChecklistID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureCardEdit(sc.role, sc.board, sc.card, userID); err != nil {
		return nil, err
	}

	var created *domain.ChecklistItem
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		pos := input.Position
		if pos == nil {
			last, err := s.checklists.LastItemPosition(txCtx, cl.ID)
			if err != nil {
				return fmt.Errorf("last item position: %w", err)
			}
			p := domain.PositionBetween(last, nil)
			pos = &p
		}

		var err error
		created, err = s.checklists.CreateItem(txCtx, &domain.ChecklistItem{
			ChecklistID: cl.ID,
			Text:        strings.TrimSpace(input.Text),
			Position:    *pos,
		})
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, domain.ActionAddChecklistItem, domain.EntityTypeChecklistItem, created.ID, sc, map[string]any{
		"checklist_title": cl.Title,
		"text":            created.Text,
	})

	s.log.InfoContext(ctx, "checklist item added",
		slog.String("user_id", userID.String()),
		slog.String("checklist_id", cl.ID.String()),
		slog.String("item_id", created.ID.String()),
	)
	return created, nil
}

// UpdateItem changes an item's text, checked state or position. Checking or
// unchecking is recorded as toggle_checklist_item; other edits as
// update_checklist_item.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.ChecklistItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.checklists.GetItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	cl, sc, err := s.loadChecklist(ctx, userID, item.ChecklistID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureCardEdit(sc.role, sc.board, sc.card, userID); err != nil {
		return nil, err
	}

	next := *item
	if input.Text != nil {
		next.Text = strings.TrimSpace(*input.Text)
	}
	if input.IsChecked != nil {
		next.IsChecked = *input.IsChecked
	}
	if input.Position != nil {
		next.Position = *input.Position
	}

	var updated *domain.ChecklistItem
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.checklists.UpdateItem(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	meta := map[string]any{
		"checklist_title": cl.Title,
		"text":            updated.Text,
	}
	if item.IsChecked != updated.IsChecked {
		toggled := map[string]any{"is_checked": updated.IsChecked}
		for k, v := range meta {
			toggled[k] = v
		}
		s.logActivity(ctx, userID, domain.ActionToggleChecklistItem, domain.EntityTypeChecklistItem, updated.ID, sc, toggled)
	}
	if item.Text != updated.Text || item.Position.Cmp(updated.Position) != 0 {
		if item.Text != updated.Text {
			meta["old_text"] = item.Text
		}
		s.logActivity(ctx, userID, domain.ActionUpdateChecklistItem, domain.EntityTypeChecklistItem, updated.ID, sc, meta)
	}

	s.log.InfoContext(ctx, "checklist item updated",
		slog.String("user_id", userID.String()),
		slog.String("item_id", updated.ID.String()),
	)
	return updated, nil
}

// DeleteItem removes a checklist item.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	item, err := s.checklists.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	cl, sc, err := s.loadChecklist(ctx, userID, item.ChecklistID)
	if err != nil {
		return err
	}
	if err := access.EnsureCardEdit(sc.role, sc.board, sc.card, userID); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checklists.DeleteItem(txCtx, item.ID); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logActivity(ctx, userID, domain.ActionDeleteChecklistItem, domain.EntityTypeChecklistItem, item.ID, sc, map[string]any{
		"checklist_title": cl.Title,
		"text":            item.Text,
	})

	s.log.InfoContext(ctx, "checklist item deleted",
		slog.String("user_id", userID.String()),
		slog.String("item_id", item.ID.String()),
	)
	return nil
}
