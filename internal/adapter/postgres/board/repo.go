// Package board implements the board and membership store.
package board

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

var boardColumns = []string{
	"id", "title", "description", "background", "is_archived", "owner_id", "invite_token",
	"dev_can_create_cards", "dev_can_edit_assigned_cards", "dev_can_archive_assigned_cards",
	"dev_can_join_card", "dev_can_create_lists", "created_at", "updated_at",
}

// Repo provides board and membership persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new board repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a board by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	b, err := r.getOne(ctx, squirrel.Eq{"id": id})
	if err != nil {
		return nil, postgres.MapError(err, "board", id)
	}
	return b, nil
}

// GetByInviteToken returns the board whose invite link carries token.
func (r *Repo) GetByInviteToken(ctx context.Context, token uuid.UUID) (*domain.Board, error) {
	b, err := r.getOne(ctx, squirrel.Eq{"invite_token": token})
	if err != nil {
		return nil, postgres.MapError(err, "board", uuid.Nil)
	}
	return b, nil
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer) (*domain.Board, error) {
	sql, args, err := postgres.Builder().Select(boardColumns...).From("boards").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select board: %w", err)
	}
	return scanBoard(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
}

// Create inserts a board. Owner and invite token are taken from b.
func (r *Repo) Create(ctx context.Context, b *domain.Board) (*domain.Board, error) {
	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	token := b.InviteToken
	if token == uuid.Nil {
		token = uuid.New()
	}
	p := b.Permissions

	sql, args, err := postgres.Builder().
		Insert("boards").
		Columns("id", "title", "description", "background", "owner_id", "invite_token",
			"dev_can_create_cards", "dev_can_edit_assigned_cards", "dev_can_archive_assigned_cards",
			"dev_can_join_card", "dev_can_create_lists").
		Values(id, b.Title, b.Description, b.Background, b.OwnerID, token,
			p.DevCanCreateCards, p.DevCanEditAssignedCards, p.DevCanArchiveAssignedCards,
			p.DevCanJoinCard, p.DevCanCreateLists).
		Suffix("RETURNING " + strings.Join(boardColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert board: %w", err)
	}

	created, err := scanBoard(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "board", id)
	}
	return created, nil
}

// Update writes the editable fields of b. OwnerID is never written.
func (r *Repo) Update(ctx context.Context, b *domain.Board) (*domain.Board, error) {
	p := b.Permissions

	sql, args, err := postgres.Builder().
		Update("boards").
		Set("title", b.Title).
		Set("description", b.Description).
		Set("background", b.Background).
		Set("is_archived", b.IsArchived).
		Set("invite_token", b.InviteToken).
		Set("dev_can_create_cards", p.DevCanCreateCards).
		Set("dev_can_edit_assigned_cards", p.DevCanEditAssignedCards).
		Set("dev_can_archive_assigned_cards", p.DevCanArchiveAssignedCards).
		Set("dev_can_join_card", p.DevCanJoinCard).
		Set("dev_can_create_lists", p.DevCanCreateLists).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		Suffix("RETURNING " + strings.Join(boardColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update board: %w", err)
	}

	updated, err := scanBoard(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "board", b.ID)
	}
	return updated, nil
}

// Delete removes a board with all of its lists, cards and memberships.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("boards").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "board", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

const listForUserSQL = `
SELECT b.id, b.title, b.description, b.background, b.is_archived, b.owner_id, b.invite_token,
       b.dev_can_create_cards, b.dev_can_edit_assigned_cards, b.dev_can_archive_assigned_cards,
       b.dev_can_join_card, b.dev_can_create_lists, b.created_at, b.updated_at,
       CASE WHEN b.owner_id = $1 THEN 'owner' ELSE m.role END AS role,
       COALESCE(m.is_favorite, false) AS is_favorite
FROM boards b
LEFT JOIN memberships m ON m.board_id = b.id AND m.user_id = $1
WHERE (b.owner_id = $1 OR m.id IS NOT NULL)
  AND ($2 OR NOT b.is_archived)
ORDER BY COALESCE(m.is_favorite, false) DESC, b.updated_at DESC, b.id`

// ListForUser returns boards the user owns or is a member of, favorites first.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]domain.BoardSummary, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listForUserSQL, userID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BoardSummary, error) {
		var (
			s    domain.BoardSummary
			role string
		)
		dest := append(boardDest(&s.Board), &role, &s.IsFavorite)
		if err := row.Scan(dest...); err != nil {
			return s, err
		}
		s.Role = domain.Role(role)
		return s, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan boards: %w", err)
	}
	return out, nil
}

func boardDest(b *domain.Board) []any {
	p := &b.Permissions
	return []any{
		&b.ID, &b.Title, &b.Description, &b.Background, &b.IsArchived, &b.OwnerID, &b.InviteToken,
		&p.DevCanCreateCards, &p.DevCanEditAssignedCards, &p.DevCanArchiveAssignedCards,
		&p.DevCanJoinCard, &p.DevCanCreateLists, &b.CreatedAt, &b.UpdatedAt,
	}
}

func scanBoard(row pgx.Row) (*domain.Board, error) {
	var b domain.Board
	if err := row.Scan(boardDest(&b)...); err != nil {
		return nil, err
	}
	return &b, nil
}
