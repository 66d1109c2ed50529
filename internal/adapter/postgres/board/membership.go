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

var membershipColumns = []string{"id", "board_id", "user_id", "role", "is_favorite", "created_at"}

// GetMembership returns the stored membership of userID on boardID.
func (r *Repo) GetMembership(ctx context.Context, boardID, userID uuid.UUID) (*domain.Membership, error) {
	sql, args, err := postgres.Builder().
		Select(membershipColumns...).
		From("memberships").
		Where(squirrel.Eq{"board_id": boardID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select membership: %w", err)
	}

	m, err := scanMembership(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "membership", userID)
	}
	return m, nil
}

// CreateMembership inserts a membership. A second row for the same
// (board, user) fails with domain.ErrAlreadyExists.
func (r *Repo) CreateMembership(ctx context.Context, m *domain.Membership) (*domain.Membership, error) {
	id := m.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert("memberships").
		Columns("id", "board_id", "user_id", "role", "is_favorite").
		Values(id, m.BoardID, m.UserID, string(m.Role), m.IsFavorite).
		Suffix("RETURNING " + strings.Join(membershipColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert membership: %w", err)
	}

	created, err := scanMembership(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "membership", m.UserID)
	}
	return created, nil
}

// UpdateMembership writes role and favorite flag of an existing membership.
func (r *Repo) UpdateMembership(ctx context.Context, m *domain.Membership) (*domain.Membership, error) {
	sql, args, err := postgres.Builder().
		Update("memberships").
		Set("role", string(m.Role)).
		Set("is_favorite", m.IsFavorite).
		Where(squirrel.Eq{"board_id": m.BoardID, "user_id": m.UserID}).
		Suffix("RETURNING " + strings.Join(membershipColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update membership: %w", err)
	}

	updated, err := scanMembership(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "membership", m.UserID)
	}
	return updated, nil
}

// DeleteMembership removes userID from boardID.
func (r *Repo) DeleteMembership(ctx context.Context, boardID, userID uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("memberships").Where(squirrel.Eq{"board_id": boardID, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "membership", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("membership %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

const listMembersSQL = `
SELECT u.id, u.username, u.email, u.created_at, 'owner' AS role, b.created_at AS joined_at
FROM boards b
JOIN users u ON u.id = b.owner_id
WHERE b.id = $1
UNION ALL
SELECT u.id, u.username, u.email, u.created_at, m.role, m.created_at
FROM memberships m
JOIN boards b ON b.id = m.board_id
JOIN users u ON u.id = m.user_id
WHERE m.board_id = $1 AND m.user_id <> b.owner_id
ORDER BY joined_at, id`

// ListMembers returns the owner followed by every other member, oldest first.
func (r *Repo) ListMembers(ctx context.Context, boardID uuid.UUID) ([]domain.Member, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listMembersSQL, boardID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Member, error) {
		var (
			m    domain.Member
			role string
		)
		err := row.Scan(&m.User.ID, &m.User.Username, &m.User.Email, &m.User.CreatedAt, &role, &m.JoinedAt)
		m.Role = domain.Role(role)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan members: %w", err)
	}
	return out, nil
}

func scanMembership(row pgx.Row) (*domain.Membership, error) {
	var (
		m    domain.Membership
		role string
	)
	if err := row.Scan(&m.ID, &m.BoardID, &m.UserID, &role, &m.IsFavorite, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.Role = domain.Role(role)
	return &m, nil
}
