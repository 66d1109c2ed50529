package attachment

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/access"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/pkg/ctxutil"
)

const defaultContentType = "application/octet-stream"

// ListAttachments returns a card's attachments, newest first.
func (s *Service) ListAttachments(ctx context.Context, cardID uuid.UUID) ([]domain.Attachment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	card, err := s.visibleCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}

	list, err := s.attachments.ListByCard(ctx, card.ID)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	return list, nil
}

// Upload stores the file and records it on the card. The object is written
// before the row; if the row cannot be written the object is removed again.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*domain.Attachment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := s.available(); err != nil {
		return nil, err
	}
	if err := input.Validate(s.opts.MaxBytes); err != nil {
		return nil, err
	}

	card, board, role, err := s.loadCard(ctx, userID, input.CardID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureCardEdit(role, board, card, userID); err != nil {
		return nil, err
	}

	filename := path.Base(strings.TrimSpace(input.Filename))
	contentType := input.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	key := objectKey(card.ID, filename)

	if err := s.blobs.Put(ctx, key, input.Body, input.Size, contentType); err != nil {
		return nil, fmt.Errorf("store attachment: %w", err)
	}

	var created *domain.Attachment
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.attachments.Create(txCtx, &domain.Attachment{
			CardID:      card.ID,
			UploaderID:  userID,
			ObjectKey:   key,
			Filename:    filename,
			ContentType: contentType,
			SizeBytes:   input.Size,
		})
		if err != nil {
			return fmt.Errorf("create attachment: %w", err)
		}
		return nil
	})
	if err != nil {
		s.removeObject(ctx, key)
		return nil, err
	}

	s.logActivity(ctx, userID, domain.ActionAddAttachment, created, card, board)

	s.log.InfoContext(ctx, "attachment uploaded",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
		slog.String("attachment_id", created.ID.String()),
		slog.Int64("size", created.SizeBytes),
	)
	return created, nil
}

// DeleteAttachment removes the row, then the stored object.
func (s *Service) DeleteAttachment(ctx context.Context, attachmentID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.available(); err != nil {
		return err
	}

	a, err := s.attachments.GetByID(ctx, attachmentID)
	if err != nil {
		return err
	}
	card, board, role, err := s.loadCard(ctx, userID, a.CardID)
	if err != nil {
		return err
	}
	if err := access.EnsureCardEdit(role, board, card, userID); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.attachments.Delete(txCtx, a.ID); err != nil {
			return fmt.Errorf("delete attachment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.removeObject(ctx, a.ObjectKey)

	s.logActivity(ctx, userID, domain.ActionDeleteAttachment, a, card, board)

	s.log.InfoContext(ctx, "attachment deleted",
		slog.String("user_id", userID.String()),
		slog.String("attachment_id", a.ID.String()),
	)
	return nil
}

// DownloadURL returns a presigned URL for an attachment the caller can see.
func (s *Service) DownloadURL(ctx context.Context, attachmentID uuid.UUID) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if err := s.available(); err != nil {
		return "", err
	}

	a, err := s.attachments.GetByID(ctx, attachmentID)
	if err != nil {
		return "", err
	}
	if _, err := s.visibleCard(ctx, userID, a.CardID); err != nil {
		return "", err
	}

	u, err := s.blobs.PresignGet(ctx, a.ObjectKey, a.Filename, s.opts.PresignTTL)
	if err != nil {
		return "", fmt.Errorf("presign attachment: %w", err)
	}
	return u, nil
}

// visibleCard loads a card for reading. Public cards are visible to anyone.
func (s *Service) visibleCard(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
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

func (s *Service) removeObject(ctx context.Context, key string) {
	if err := s.blobs.Remove(ctx, key); err != nil {
		s.log.WarnContext(ctx, "orphaned attachment object",
			slog.String("object_key", key),
			slog.String("error", err.Error()),
		)
	}
}

// objectKey is unique per upload; the file name is kept for readability only.
func objectKey(cardID uuid.UUID, filename string) string {
	return fmt.Sprintf("cards/%s/%s/%s", cardID, uuid.NewString(), filename)
}
