package card

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/access"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/pkg/ctxutil"
)

// SetCardLabels replaces a card's labels. Every label must belong to the
// card's board.
func (s *Service) SetCardLabels(ctx context.Context, cardID uuid.UUID, labelIDs []uuid.UUID) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	t, err := s.loadCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureCardEdit(t.role, t.board, t.card, userID); err != nil {
		return nil, err
	}

	boardLabels, err := s.labels.ListByBoard(ctx, t.board.ID)
	if err != nil {
		return nil, fmt.Errorf("list board labels: %w", err)
	}
	names := make(map[uuid.UUID]string, len(boardLabels))
	for _, l := range boardLabels {
		names[l.ID] = l.Name
	}

	want := make([]uuid.UUID, 0, len(labelIDs))
	for _, id := range labelIDs {
		if _, ok := names[id]; !ok {
			return nil, domain.NewValidationError("label_ids", "label "+id.String()+" does not belong to this board")
		}
		if !slices.Contains(want, id) {
			want = append(want, id)
		}
	}

	var card *domain.Card
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.cards.SetLabels(txCtx, t.card.ID, want); err != nil {
			return fmt.Errorf("set labels: %w", err)
		}
		var err error
		card, err = s.cards.GetByID(txCtx, t.card.ID)
		if err != nil {
			return fmt.Errorf("reload card: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var added, removed []string
	for _, id := range want {
		if !slices.Contains(t.card.LabelIDs, id) {
			added = append(added, names[id])
		}
	}
	for _, id := range t.card.LabelIDs {
		if !slices.Contains(want, id) {
			removed = append(removed, names[id])
		}
	}
	if len(added) > 0 || len(removed) > 0 {
		s.logActivity(ctx, userID, domain.ActionUpdateCardLabels, card, t.board, map[string]any{
			"added_labels":   added,
			"removed_labels": removed,
		})
	}

	s.log.InfoContext(ctx, "card labels set",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
		slog.Int("labels", len(want)),
	)
	return card, nil
}
