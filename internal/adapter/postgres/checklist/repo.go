// Package checklist implements the checklist and checklist item store.
package checklist

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Timurc390/Boardly/internal/adapter/postgres"
	"github.com/Timurc390/Boardly/internal/domain"
)

const itemReturning = "RETURNING id, checklist_id, text, is_checked, position::text, created_at"

var itemColumns = []string{"id", "checklist_id", "text", "is_checked", "position::text", "created_at"}

type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a checklist without its items.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Checklist, error) {
	sql, args, err := postgres.Builder().
		Select("id", "card_id", "title", "created_at").From("checklists").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select checklist: %w", err)
	}

	var c domain.Checklist
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CardID, &c.Title, &c.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "checklist", id)
	}
	return &c, nil
}

// ListByCard returns the card's checklists, each with its items in order.
func (r *Repo) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.Checklist, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("id", "card_id", "title", "created_at").From("checklists").
		Where(squirrel.Eq{"card_id": cardID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list checklists: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list checklists: %w", err)
	}
	lists, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Checklist, error) {
		var c domain.Checklist
		err := row.Scan(&c.ID, &c.CardID, &c.Title, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan checklists: %w", err)
	}
	if len(lists) == 0 {
		return lists, nil
	}

	ids := make([]uuid.UUID, len(lists))
	index := make(map[uuid.UUID]int, len(lists))
	for i, c := range lists {
		ids[i] = c.ID
		index[c.ID] = i
	}

	sql, args, err = postgres.Builder().
		Select(itemColumns...).From("checklist_items").
		Where(squirrel.Eq{"checklist_id": ids}).
		OrderBy("position", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list checklist items: %w", err)
	}

	rows, err = q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list checklist items: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ChecklistItem, error) {
		it, err := scanItem(row)
		if err != nil {
			return domain.ChecklistItem{}, err
		}
		return *it, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan checklist items: %w", err)
	}

	for _, it := range items {
		i := index[it.ChecklistID]
		lists[i].Items = append(lists[i].Items, it)
	}
	return lists, nil
}

func (r *Repo) Create(ctx context.Context, c *domain.Checklist) (*domain.Checklist, error) {
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	sql, args, err := postgres.Builder().
		Insert("checklists").
		Columns("id", "card_id", "title").
		Values(id, c.CardID, c.Title).
		Suffix("RETURNING id, card_id, title, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert checklist: %w", err)
	}

	var out domain.Checklist
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&out.ID, &out.CardID, &out.Title, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "checklist", id)
	}
	return &out, nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("checklists").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "checklist", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("checklist %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) GetItem(ctx context.Context, id uuid.UUID) (*domain.ChecklistItem, error) {
	sql, args, err := postgres.Builder().Select(itemColumns...).From("checklist_items").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select checklist item: %w", err)
	}
	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "checklist_item", id)
	}
	return it, nil
}

// LastItemPosition returns the position of the checklist's last item, or nil.
func (r *Repo) LastItemPosition(ctx context.Context, checklistID uuid.UUID) (*domain.Position, error) {
	return postgres.LastPosition(ctx, postgres.QuerierFromCtx(ctx, r.db), "checklist_items", "checklist_id", checklistID)
}

func (r *Repo) CreateItem(ctx context.Context, it *domain.ChecklistItem) (*domain.ChecklistItem, error) {
	id := it.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	sql, args, err := postgres.Builder().
		Insert("checklist_items").
		Columns("id", "checklist_id", "text", "is_checked", "position").
		Values(id, it.ChecklistID, it.Text, it.IsChecked, it.Position).
		Suffix(itemReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert checklist item: %w", err)
	}
	created, err := scanItem(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "checklist_item", id)
	}
	return created, nil
}

func (r *Repo) UpdateItem(ctx context.Context, it *domain.ChecklistItem) (*domain.ChecklistItem, error) {
	sql, args, err := postgres.Builder().
		Update("checklist_items").
		Set("text", it.Text).
		Set("is_checked", it.IsChecked).
		Set("position", it.Position).
		Where(squirrel.Eq{"id": it.ID}).
		Suffix(itemReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update checklist item: %w", err)
	}
	updated, err := scanItem(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "checklist_item", it.ID)
	}
	return updated, nil
}

func (r *Repo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("checklist_items").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "checklist_item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("checklist_item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.ChecklistItem, error) {
	var it domain.ChecklistItem
	if err := row.Scan(&it.ID, &it.ChecklistID, &it.Text, &it.IsChecked, &it.Position, &it.CreatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}
