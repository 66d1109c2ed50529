package comment

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

// ListComments returns a card's comments, oldest first. Comments on public
// cards are readable by anyone who can see the card.
func (s *Service) ListComments(ctx context.Context, cardID uuid.UUID) ([]domain.Comment, error) {
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

	comments, err := s.comments.ListByCard(ctx, card.ID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// CreateComment adds a comment authored by the caller. Any board member,
// viewers included, may comment.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, board, role, err := s.loadCard(ctx, userID, input.CardID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureComment(role); err != nil {
		return nil, err
	}

	var created *domain.Comment
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.comments.Create(txCtx, &domain.Comment{
			CardID:   card.ID,
			AuthorID: userID,
			Text:     strings.TrimSpace(input.Text),
		})
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, domain.ActionAddComment, created, card, board)

	s.log.InfoContext(ctx, "comment created",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
		slog.String("comment_id", created.ID.String()),
	)
	return created, nil
}

// UpdateComment edits a comment. Allowed for its author and board admins.
func (s *Service) UpdateComment(ctx context.Context, input UpdateCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.comments.GetByID(ctx, input.CommentID)
	if err != nil {
		return nil, err
	}
	card, board, role, err := s.loadCard(ctx, userID, c.CardID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureEditComment(role, c, userID); err != nil {
		return nil, err
	}

	var updated *domain.Comment
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.comments.UpdateText(txCtx, c.ID, strings.TrimSpace(input.Text))
		if err != nil {
			return fmt.Errorf("update comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, domain.ActionUpdateComment, updated, card, board)

	s.log.InfoContext(ctx, "comment updated",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", updated.ID.String()),
	)
	return updated, nil
}

// DeleteComment removes a comment. Admin-only; authors can edit but not delete.
func (s *Service) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	card, board, role, err := s.loadCard(ctx, userID, c.CardID)
	if err != nil {
		return err
	}
	if err := access.EnsureDeleteComment(role); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.comments.Delete(txCtx, c.ID); err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logActivity(ctx, userID, domain.ActionDeleteComment, c, card, board)

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", c.ID.String()),
	)
	return nil
}
