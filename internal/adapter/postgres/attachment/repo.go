// Package attachment implements the attachment metadata store.
// File contents live in the blob store; rows only reference them by key.
package attachment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Timurc390/Boardly/internal/adapter/postgres"
	"github.com/Timurc390/Boardly/internal/domain"
)

var columns = []string{"id", "card_id", "uploader_id", "object_key", "filename", "content_type", "size_bytes", "created_at"}

type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	sql, args, err := postgres.Builder().Select(columns...).From("attachments").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select attachment: %w", err)
	}
	a, err := scanAttachment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "attachment", id)
	}
	return a, nil
}

func (r *Repo) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Attachment, error) {
	sql, args, err := postgres.Builder().Select(columns...).From("attachments").
		Where(squirrel.Eq{"card_id": cardID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list attachments: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Attachment, error) {
		a, err := scanAttachment(row)
		if err != nil {
			return domain.Attachment{}, err
		}
		return *a, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan attachments: %w", err)
	}
	return out, nil
}

func (r *Repo) Create(ctx context.Context, a *domain.Attachment) (*domain.Attachment, error) {
	id := a.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	sql, args, err := postgres.Builder().
		Insert("attachments").
		Columns("id", "card_id", "uploader_id", "object_key", "filename", "content_type", "size_bytes").
		Values(id, a.CardID, a.UploaderID, a.ObjectKey, a.Filename, a.ContentType, a.SizeBytes).
		Suffix("RETURNING id, card_id, uploader_id, object_key, filename, content_type, size_bytes, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert attachment: %w", err)
	}
	created, err := scanAttachment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "attachment", id)
	}
	return created, nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("attachments").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "attachment", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("attachment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanAttachment(row pgx.Row) (*domain.Attachment, error) {
	var a domain.Attachment
	err := row.Scan(&a.ID, &a.CardID, &a.UploaderID, &a.ObjectKey, &a.Filename, &a.ContentType, &a.SizeBytes, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
