// Package list implements the list store.
package list

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Timurc390/Boardly/internal/adapter/postgres"
	"github.com/Timurc390/Boardly/internal/domain"
)

const table = "lists"

var columns = []string{
	"id", "board_id", "title", "position::text", "is_archived", "allow_dev_add_cards", "color",
	"created_at", "updated_at",
}

// Repo provides list persistence backed by PostgreSQL.
// No method moves a list to another board.
type Repo struct {
	db postgres.Querier
}

// New creates a new list repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select list: %w", err)
	}

	l, err := scanList(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "list", id)
	}
	return l, nil
}

// ListByBoard returns the board's lists in display order.
func (r *Repo) ListByBoard(ctx context.Context, boardID uuid.UUID, includeArchived bool) ([]domain.List, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"board_id": boardID}).
		OrderBy("position", "created_at", "id")
	if !includeArchived {
		q = q.Where(squirrel.Eq{"is_archived": false})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list lists: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.List, error) {
		l, err := scanList(row)
		if err != nil {
			return domain.List{}, err
		}
		return *l, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan lists: %w", err)
	}
	return out, nil
}

// LastPosition returns the position of the board's last list, or nil.
func (r *Repo) LastPosition(ctx context.Context, boardID uuid.UUID) (*domain.Position, error) {
	return postgres.LastPosition(ctx, postgres.QuerierFromCtx(ctx, r.db), table, "board_id", boardID)
}

// PositionAfter returns the position of the list that follows pos, or nil.
func (r *Repo) PositionAfter(ctx context.Context, boardID uuid.UUID, pos domain.Position) (*domain.Position, error) {
	return postgres.PositionAfter(ctx, postgres.QuerierFromCtx(ctx, r.db), table, "board_id", boardID, pos)
}

func (r *Repo) Create(ctx context.Context, l *domain.List) (*domain.List, error) {
	id := l.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "board_id", "title", "position", "is_archived", "allow_dev_add_cards", "color").
		Values(id, l.BoardID, l.Title, l.Position, l.IsArchived, l.AllowDevAddCards, l.Color).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert list: %w", err)
	}

	created, err := scanList(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "list", id)
	}
	return created, nil
}

// Update writes every editable field. BoardID is not one of them.
func (r *Repo) Update(ctx context.Context, l *domain.List) (*domain.List, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("title", l.Title).
		Set("position", l.Position).
		Set("is_archived", l.IsArchived).
		Set("allow_dev_add_cards", l.AllowDevAddCards).
		Set("color", l.Color).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": l.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update list: %w", err)
	}

	updated, err := scanList(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "list", l.ID)
	}
	return updated, nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "list", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("list %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanList(row pgx.Row) (*domain.List, error) {
	var l domain.List
	err := row.Scan(&l.ID, &l.BoardID, &l.Title, &l.Position, &l.IsArchived, &l.AllowDevAddCards, &l.Color,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
