package card

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/access"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/pkg/ctxutil"
)

// CreateCard adds a card to a list. The creator is assigned to the card and a
// default checklist is created with it.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	list, board, role, err := s.loadList(ctx, userID, input.ListID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureCreateCard(role, board, list); err != nil {
		return nil, err
	}

	var card *domain.Card
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		pos := input.Position
		if pos == nil {
			last, err := s.cards.LastPosition(txCtx, list.ID)
			if err != nil {
				return fmt.Errorf("last card position: %w", err)
			}
			p := domain.PositionBetween(last, nil)
			pos = &p
		}

		created, err := s.cards.Create(txCtx, &domain.Card{
			ListID:      list.ID,
			Title:       domain.NormalizeTitle(input.Title),
			Description: input.Description,
			Color:       input.Color,
			Position:    *pos,
			DueDate:     input.DueDate,
		})
		if err != nil {
			return fmt.Errorf("create card: %w", err)
		}
		if err := s.cards.AddAssignee(txCtx, created.ID, userID); err != nil {
			return fmt.Errorf("assign creator: %w", err)
		}
		if _, err := s.checklists.Create(txCtx, &domain.Checklist{CardID: created.ID, Title: DefaultChecklistTitle}); err != nil {
			return fmt.Errorf("create default checklist: %w", err)
		}

		card, err = s.cards.GetByID(txCtx, created.ID)
		if err != nil {
			return fmt.Errorf("reload card: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, domain.ActionCreateCard, card, board, map[string]any{
		"list_id":    list.ID.String(),
		"list_title": list.Title,
	})

	s.log.InfoContext(ctx, "card created",
		slog.String("user_id", userID.String()),
		slog.String("list_id", list.ID.String()),
		slog.String("card_id", card.ID.String()),
	)
	return card, nil
}

// GetCard returns a card. Public cards are visible to any authenticated
// user; other cards only to board members.
func (s *Service) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
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
	return card, nil
}

// ListCards returns cards matching the filters on boards the caller can access.
func (s *Service) ListCards(ctx context.Context, input ListCardsInput) ([]domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.CardFilter{
		VisibleTo:       userID,
		ListID:          input.ListID,
		BoardID:         input.BoardID,
		AssignedTo:      input.MemberID,
		LabelID:         input.LabelID,
		Query:           input.Query,
		DueBefore:       input.DueBefore,
		DueAfter:        input.DueAfter,
		IncludeArchived: input.IncludeArchived,
		Limit:           input.Limit,
	}
	if input.AssignedToMe {
		filter.AssignedTo = &userID
	}

	cards, err := s.cards.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

// MyCards returns the non-archived cards the caller is assigned to.
func (s *Service) MyCards(ctx context.Context) ([]domain.Card, error) {
	return s.ListCards(ctx, ListCardsInput{AssignedToMe: true})
}

// UpdateCard edits a card's fields. Changing IsPublic also requires board
// admin rights.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Card, error) {
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
	if err := access.EnsureCardEdit(t.role, t.board, t.card, userID); err != nil {
		return nil, err
	}
	prev := t.card
	if input.IsPublic != nil && *input.IsPublic != prev.IsPublic {
		if err := access.EnsureManageBoard(t.role); err != nil {
			return nil, err
		}
	}

	next := *prev
	if input.Title != nil {
		next.Title = domain.NormalizeTitle(*input.Title)
	}
	if input.Description != nil {
		next.Description = *input.Description
	}
	if input.Color != nil {
		next.Color = *input.Color
	}
	if input.DueDate != nil {
		d := input.DueDate.UTC()
		next.DueDate = &d
	}
	if input.ClearDueDate {
		next.DueDate = nil
	}
	if input.IsCompleted != nil {
		next.IsCompleted = *input.IsCompleted
	}
	if input.IsPublic != nil {
		next.IsPublic = *input.IsPublic
	}

	var updated *domain.Card
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.cards.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update card: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logUpdate(ctx, userID, prev, updated, t.board)

	s.log.InfoContext(ctx, "card updated",
		slog.String("user_id", userID.String()),
		slog.String("card_id", updated.ID.String()),
	)
	return updated, nil
}

// logUpdate records one entry per kind of change. Title and color edits, or
// an update with no visible change, are recorded as update_card.
func (s *Service) logUpdate(ctx context.Context, userID uuid.UUID, prev, next *domain.Card, board *domain.Board) {
	specific := false
	if prev.IsCompleted != next.IsCompleted {
		action := domain.ActionUncompleteCard
		if next.IsCompleted {
			action = domain.ActionCompleteCard
		}
		s.logActivity(ctx, userID, action, next, board, nil)
		specific = true
	}
	if prev.Description != next.Description {
		s.logActivity(ctx, userID, domain.ActionUpdateCardDescription, next, board, nil)
		specific = true
	}
	if !sameDue(prev.DueDate, next.DueDate) {
		s.logActivity(ctx, userID, domain.ActionUpdateCardDueDate, next, board, map[string]any{
			"due_before": formatDue(prev.DueDate),
			"due_after":  formatDue(next.DueDate),
		})
		specific = true
	}
	if prev.IsPublic != next.IsPublic {
		s.logActivity(ctx, userID, domain.ActionTogglePublic, next, board, map[string]any{"is_public": next.IsPublic})
		specific = true
	}
	if prev.Title != next.Title || prev.Color != next.Color || !specific {
		extra := map[string]any{}
		if prev.Title != next.Title {
			extra["old_title"] = prev.Title
		}
		s.logActivity(ctx, userID, domain.ActionUpdateCard, next, board, extra)
	}
}

func sameDue(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func formatDue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// ArchiveCard sets or clears a card's archived flag.
func (s *Service) ArchiveCard(ctx context.Context, cardID uuid.UUID, archived bool) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	t, err := s.loadCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureCardArchive(t.role, t.board, t.card, userID); err != nil {
		return nil, err
	}
	if t.card.IsArchived == archived {
		return t.card, nil
	}

	next := *t.card
	next.IsArchived = archived

	var updated *domain.Card
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.cards.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("archive card: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := domain.ActionUnarchiveCard
	if archived {
		action = domain.ActionArchiveCard
	}
	s.logActivity(ctx, userID, action, updated, t.board, nil)

	s.log.InfoContext(ctx, "card archive flag changed",
		slog.String("user_id", userID.String()),
		slog.String("card_id", updated.ID.String()),
		slog.Bool("archived", archived),
	)
	return updated, nil
}

// DeleteCard removes a card. Only board admins may delete; developers archive.
func (s *Service) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	t, err := s.loadCard(ctx, userID, cardID)
	if err != nil {
		return err
	}
	if err := access.EnsureCardDelete(t.role); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.cards.Delete(txCtx, t.card.ID); err != nil {
			return fmt.Errorf("delete card: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logActivity(ctx, userID, domain.ActionDeleteCard, t.card, t.board, nil)

	s.log.InfoContext(ctx, "card deleted",
		slog.String("user_id", userID.String()),
		slog.String("card_id", t.card.ID.String()),
	)
	return nil
}
