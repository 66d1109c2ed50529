// Package comment implements the card comment store.
package comment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Timurc390/Boardly/internal/adapter/postgres"
	"github.com/Timurc390/Boardly/internal/domain"
)

var columns = []string{"id", "card_id", "author_id", "text", "created_at", "updated_at"}

const returning = "RETURNING id, card_id, author_id, text, created_at, updated_at"

type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	sql, args, err := postgres.Builder().Select(columns...).From("comments").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select comment: %w", err)
	}
	c, err := scanComment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return c, nil
}

// ListByCard returns the card's comments oldest first.
func (r *Repo) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Comment, error) {
	sql, args, err := postgres.Builder().Select(columns...).From("comments").
		Where(squirrel.Eq{"card_id": cardID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Comment, error) {
		c, err := scanComment(row)
		if err != nil {
			return domain.Comment{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan comments: %w", err)
	}
	return out, nil
}

func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	sql, args, err := postgres.Builder().
		Insert("comments").
		Columns("id", "card_id", "author_id", "text").
		Values(id, c.CardID, c.AuthorID, c.Text).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert comment: %w", err)
	}
	created, err := scanComment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return created, nil
}

// UpdateText changes the comment body. The author is never rewritten.
func (r *Repo) UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Comment, error) {
	sql, args, err := postgres.Builder().
		Update("comments").
		Set("text", text).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update comment: %w", err)
	}
	updated, err := scanComment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return updated, nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("comments").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(&c.ID, &c.CardID, &c.AuthorID, &c.Text, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
