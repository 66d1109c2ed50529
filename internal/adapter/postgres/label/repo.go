// Package label implements the board label store.
package label

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Timurc390/Boardly/internal/adapter/postgres"
	"github.com/Timurc390/Boardly/internal/domain"
)

const returning = "RETURNING id, board_id, name, color"

type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Label, error) {
	sql, args, err := postgres.Builder().
		Select("id", "board_id", "name", "color").From("labels").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select label: %w", err)
	}
	l, err := scanLabel(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "label", id)
	}
	return l, nil
}

// ListByBoard returns the board's labels ordered by name.
func (r *Repo) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.Label, error) {
	sql, args, err := postgres.Builder().
		Select("id", "board_id", "name", "color").From("labels").
		Where(squirrel.Eq{"board_id": boardID}).
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list labels: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Label, error) {
		l, err := scanLabel(row)
		if err != nil {
			return domain.Label{}, err
		}
		return *l, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan labels: %w", err)
	}
	return out, nil
}

// Create inserts a label; a duplicate name on the board is domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, l *domain.Label) (*domain.Label, error) {
	id := l.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	sql, args, err := postgres.Builder().
		Insert("labels").
		Columns("id", "board_id", "name", "color").
		Values(id, l.BoardID, l.Name, l.Color).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert label: %w", err)
	}
	created, err := scanLabel(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "label", id)
	}
	return created, nil
}

func (r *Repo) Update(ctx context.Context, l *domain.Label) (*domain.Label, error) {
	sql, args, err := postgres.Builder().
		Update("labels").
		Set("name", l.Name).
		Set("color", l.Color).
		Where(squirrel.Eq{"id": l.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update label: %w", err)
	}
	updated, err := scanLabel(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "label", l.ID)
	}
	return updated, nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("labels").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "label", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("label %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanLabel(row pgx.Row) (*domain.Label, error) {
	var l domain.Label
	if err := row.Scan(&l.ID, &l.BoardID, &l.Name, &l.Color); err != nil {
		return nil, err
	}
	return &l, nil
}
