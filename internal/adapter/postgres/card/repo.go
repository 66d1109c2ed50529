// Package card implements the card store, including assignees and labels.
package card

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Timurc390/Boardly/internal/adapter/postgres"
	"github.com/Timurc390/Boardly/internal/domain"
)

const (
	table        = "cards"
	defaultLimit = 200
)

// Board id comes from the parent list; cards never store it.
var selectColumns = []string{
	"c.id", "c.list_id", "l.board_id", "c.title", "c.description", "c.color", "c.position::text",
	"c.due_date", "c.is_completed", "c.is_archived", "c.is_public", "c.created_at", "c.updated_at",
	"COALESCE((SELECT array_agg(a.user_id ORDER BY a.user_id) FROM card_assignees a WHERE a.card_id = c.id), '{}') AS assignee_ids",
	"COALESCE((SELECT array_agg(cl.label_id ORDER BY cl.label_id) FROM card_labels cl WHERE cl.card_id = c.id), '{}') AS label_ids",
}

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func selectCards() squirrel.SelectBuilder {
	return postgres.Builder().Select(selectColumns...).From("cards c").Join("lists l ON l.id = c.list_id")
}

// GetByID returns a card with its derived board id, assignees and labels.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	sql, args, err := selectCards().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select card: %w", err)
	}

	c, err := scanCard(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", id)
	}
	return c, nil
}

// List returns cards matching f, restricted to boards f.VisibleTo can access.
func (r *Repo) List(ctx context.Context, f domain.CardFilter) ([]domain.Card, error) {
	q := selectCards().
		Where(`EXISTS (
			SELECT 1 FROM boards b
			LEFT JOIN memberships m ON m.board_id = b.id AND m.user_id = ?
			WHERE b.id = l.board_id AND (b.owner_id = ? OR m.id IS NOT NULL))`, f.VisibleTo, f.VisibleTo).
		OrderBy("l.board_id", "l.position", "c.position", "c.created_at", "c.id")

	if f.ListID != nil {
		q = q.Where(squirrel.Eq{"c.list_id": *f.ListID})
	}
	if f.BoardID != nil {
		q = q.Where(squirrel.Eq{"l.board_id": *f.BoardID})
	}
	if f.AssignedTo != nil {
		q = q.Where("EXISTS (SELECT 1 FROM card_assignees a WHERE a.card_id = c.id AND a.user_id = ?)", *f.AssignedTo)
	}
	if f.LabelID != nil {
		q = q.Where("EXISTS (SELECT 1 FROM card_labels cl WHERE cl.card_id = c.id AND cl.label_id = ?)", *f.LabelID)
	}
	if f.Query != "" {
		pattern := "%" + f.Query + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"c.title": pattern},
			squirrel.ILike{"c.description": pattern},
		})
	}
	if f.DueBefore != nil {
		q = q.Where("c.due_date < ?", *f.DueBefore)
	}
	if f.DueAfter != nil {
		q = q.Where("c.due_date > ?", *f.DueAfter)
	}
	if !f.IncludeArchived {
		q = q.Where(squirrel.Eq{"c.is_archived": false, "l.is_archived": false})
	}

	limit := f.Limit
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}
	q = q.Limit(uint64(limit))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Card, error) {
		c, err := scanCard(row)
		if err != nil {
			return domain.Card{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan cards: %w", err)
	}
	return out, nil
}

// LastPosition returns the position of the list's last card, or nil.
func (r *Repo) LastPosition(ctx context.Context, listID uuid.UUID) (*domain.Position, error) {
	return postgres.LastPosition(ctx, postgres.QuerierFromCtx(ctx, r.db), table, "list_id", listID)
}

// PositionAfter returns the position of the card that follows pos, or nil.
func (r *Repo) PositionAfter(ctx context.Context, listID uuid.UUID, pos domain.Position) (*domain.Position, error) {
	return postgres.PositionAfter(ctx, postgres.QuerierFromCtx(ctx, r.db), table, "list_id", listID, pos)
}

// Create inserts the card row. Assignees and labels are added separately.
func (r *Repo) Create(ctx context.Context, c *domain.Card) (*domain.Card, error) {
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().
			Insert(table).
			Columns("id", "list_id", "title", "description", "color", "position", "due_date",
				"is_completed", "is_archived", "is_public").
			Values(id, c.ListID, c.Title, c.Description, c.Color, c.Position, c.DueDate,
				c.IsCompleted, c.IsArchived, c.IsPublic))
	if err != nil {
		return nil, postgres.MapError(err, "card", id)
	}
	return r.GetByID(ctx, id)
}

// Update writes every editable field, including the parent list.
// Callers guarantee the new list is on the same board.
func (r *Repo) Update(ctx context.Context, c *domain.Card) (*domain.Card, error) {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().
			Update(table).
			Set("list_id", c.ListID).
			Set("title", c.Title).
			Set("description", c.Description).
			Set("color", c.Color).
			Set("position", c.Position).
			Set("due_date", c.DueDate).
			Set("is_completed", c.IsCompleted).
			Set("is_archived", c.IsArchived).
			Set("is_public", c.IsPublic).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": c.ID}))
	if err != nil {
		return nil, postgres.MapError(err, "card", c.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("card %s: %w", c.ID, domain.ErrNotFound)
	}
	return r.GetByID(ctx, c.ID)
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "card", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddAssignee assigns userID to the card. Assigning twice is a no-op.
func (r *Repo) AddAssignee(ctx context.Context, cardID, userID uuid.UUID) error {
	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().
			Insert("card_assignees").
			Columns("card_id", "user_id").
			Values(cardID, userID).
			Suffix("ON CONFLICT (card_id, user_id) DO NOTHING"))
	if err != nil {
		return postgres.MapError(err, "card_assignee", userID)
	}
	return nil
}

// RemoveAssignee unassigns userID. Removing an absent assignee is a no-op.
func (r *Repo) RemoveAssignee(ctx context.Context, cardID, userID uuid.UUID) error {
	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("card_assignees").Where(squirrel.Eq{"card_id": cardID, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "card_assignee", userID)
	}
	return nil
}

// SetLabels replaces the card's labels with labelIDs.
func (r *Repo) SetLabels(ctx context.Context, cardID uuid.UUID, labelIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := postgres.Exec(ctx, q,
		postgres.Builder().Delete("card_labels").Where(squirrel.Eq{"card_id": cardID})); err != nil {
		return postgres.MapError(err, "card", cardID)
	}
	if len(labelIDs) == 0 {
		return nil
	}

	ins := postgres.Builder().Insert("card_labels").Columns("card_id", "label_id")
	for _, id := range labelIDs {
		ins = ins.Values(cardID, id)
	}
	if _, err := postgres.Exec(ctx, q, ins.Suffix("ON CONFLICT DO NOTHING")); err != nil {
		return postgres.MapError(err, "card", cardID)
	}
	return nil
}

func scanCard(row pgx.Row) (*domain.Card, error) {
	var c domain.Card
	err := row.Scan(&c.ID, &c.ListID, &c.BoardID, &c.Title, &c.Description, &c.Color, &c.Position,
		&c.DueDate, &c.IsCompleted, &c.IsArchived, &c.IsPublic, &c.CreatedAt, &c.UpdatedAt,
		&c.AssigneeIDs, &c.LabelIDs)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
