package label

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

// ListLabels returns the labels of a board.
func (s *Service) ListLabels(ctx context.Context, boardID uuid.UUID) ([]domain.Label, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	board, _, err := s.loadBoard(ctx, userID, boardID)
	if err != nil {
		return nil, err
	}

	labels, err := s.labels.ListByBoard(ctx, board.ID)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	return labels, nil
}

// CreateLabel adds a label to a board. Names are unique per board.
func (s *Service) CreateLabel(ctx context.Context, input CreateLabelInput) (*domain.Label, error) {
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
	if err := access.EnsureManageBoard(role); err != nil {
		return nil, err
	}

	var created *domain.Label
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.labels.Create(txCtx, &domain.Label{
			BoardID: board.ID,
			Name:    domain.NormalizeTitle(input.Name),
			Color:   input.Color,
		})
		if err != nil {
			return fmt.Errorf("create label: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nameTaken(err)
	}

	s.logActivity(ctx, userID, domain.ActionCreateLabel, created, board, nil)

	s.log.InfoContext(ctx, "label created",
		slog.String("user_id", userID.String()),
		slog.String("board_id", board.ID.String()),
		slog.String("label_id", created.ID.String()),
	)
	return created, nil
}

// UpdateLabel renames or recolors a label.
func (s *Service) UpdateLabel(ctx context.Context, input UpdateLabelInput) (*domain.Label, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	l, board, role, err := s.loadLabel(ctx, userID, input.LabelID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureManageBoard(role); err != nil {
		return nil, err
	}

	next := *l
	if input.Name != nil {
		next.Name = domain.NormalizeTitle(*input.Name)
	}
	if input.Color != nil {
		next.Color = *input.Color
	}

	var updated *domain.Label
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.labels.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update label: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nameTaken(err)
	}

	var extra map[string]any
	if l.Name != updated.Name {
		extra = map[string]any{"old_name": l.Name}
	}
	s.logActivity(ctx, userID, domain.ActionUpdateLabel, updated, board, extra)

	s.log.InfoContext(ctx, "label updated",
		slog.String("user_id", userID.String()),
		slog.String("label_id", updated.ID.String()),
	)
	return updated, nil
}

// DeleteLabel removes a label and detaches it from every card.
func (s *Service) DeleteLabel(ctx context.Context, labelID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	l, board, role, err := s.loadLabel(ctx, userID, labelID)
	if err != nil {
		return err
	}
	if err := access.EnsureManageBoard(role); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.labels.Delete(txCtx, l.ID); err != nil {
			return fmt.Errorf("delete label: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logActivity(ctx, userID, domain.ActionDeleteLabel, l, board, nil)

	s.log.InfoContext(ctx, "label deleted",
		slog.String("user_id", userID.String()),
		slog.String("label_id", l.ID.String()),
	)
	return nil
}

func (s *Service) loadLabel(ctx context.Context, userID, labelID uuid.UUID) (*domain.Label, *domain.Board, domain.Role, error) {
	l, err := s.labels.GetByID(ctx, labelID)
	if err != nil {
		return nil, nil, domain.RoleNone, err
	}
	board, role, err := s.loadBoard(ctx, userID, l.BoardID)
	if err != nil {
		return nil, nil, domain.RoleNone, err
	}
	return l, board, role, nil
}

// nameTaken turns a unique violation into a field error the client can show.
func nameTaken(err error) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return domain.NewValidationError("name", "a label with this name already exists on the board")
	}
	return err
}
