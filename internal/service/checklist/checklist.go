package checklist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/access"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/pkg/ctxutil"
)

// ListChecklists returns a card's checklists with their items. Checklists of
// public cards are readable by anyone who can see the card.
func (s *Service) ListChecklists(ctx context.Context, cardID uuid.UUID) ([]domain.Checklist, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	board, err := s.boards.GetByID(ctx, card.BoardID)
	if err != nil {
		return nil, err
	}
	role, err := s.guard.Role(ctx, userID, board)
	if err != nil {
		return nil, fmt.Errorf("resolve role: %w", err)
	}
	if !access.CanViewCard(role, card) {
		return nil, fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}

	checklists, err := s.checklists.ListByCard(ctx, card.ID)
	if err != nil {
		return nil, fmt.Errorf("list checklists: %w", err)
	}
	return checklists, nil
}

// CreateChecklist adds an empty checklist to a card.
func (s *Service) CreateChecklist(ctx context.Context, input CreateChecklistInput) (*domain.Checklist, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sc, err := s.loadCard(ctx, userID, input.CardID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureCardEdit(sc.role, sc.board, sc.card, userID); err != nil {
		return nil, err
	}

	var created *domain.Checklist
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.checklists.Create(txCtx, &domain.Checklist{
			CardID: sc.card.ID,
			Title:  domain.NormalizeTitle(input.Title),
		})
		if err != nil {
			return fmt.Errorf("create checklist: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, domain.ActionCreateChecklist, domain.EntityTypeChecklist, created.ID, sc, map[string]any{
		"checklist_title": created.Title,
	})

	s.log.InfoContext(ctx, "checklist created",
		slog.String("user_id", userID.String()),
		slog.String("card_id", sc.card.ID.String()),
		slog.String("checklist_id", created.ID.String()),
	)
	return created, nil
}

// DeleteChecklist removes a checklist and all of its items.
func (s *Service) DeleteChecklist(ctx context.Context, checklistID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	cl, sc, err := s.loadChecklist(ctx, userID, checklistID)
	if err != nil {
		return err
	}
	if err := access.EnsureCardEdit(sc.role, sc.board, sc.card, userID); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checklists.Delete(txCtx, cl.ID); err != nil {
			return fmt.Errorf("delete checklist: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logActivity(ctx, userID, domain.ActionDeleteChecklist, domain.EntityTypeChecklist, cl.ID, sc, map[string]any{
		"checklist_title": cl.Title,
	})

	s.log.InfoContext(ctx, "checklist deleted",
		slog.String("user_id", userID.String()),
		slog.String("checklist_id", cl.ID.String()),
	)
	return nil
}
