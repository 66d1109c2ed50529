package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Timurc390/Boardly/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique username and email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	u := domain.User{
		ID:       uuid.New(),
		Username: "user-" + suffix,
		Email:    "user-" + suffix + "@example.com",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (id, username, email) VALUES ($1, $2, $3) RETURNING created_at`,
		u.ID, u.Username, u.Email,
	).Scan(&u.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}
	return u
}

// SeedBoard inserts a board owned by ownerID with default permissions.
func SeedBoard(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Board {
	t.Helper()

	b := domain.Board{
		ID:          uuid.New(),
		Title:       "Board " + uniqueSuffix(),
		OwnerID:     ownerID,
		Permissions: domain.DefaultBoardPermissions(),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO boards (id, title, owner_id) VALUES ($1, $2, $3)
		 RETURNING invite_token, created_at, updated_at`,
		b.ID, b.Title, b.OwnerID,
	).Scan(&b.InviteToken, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed board: %v", err)
	}
	return b
}

// SeedMembership gives userID a role on boardID.
func SeedMembership(t *testing.T, pool *pgxpool.Pool, boardID, userID uuid.UUID, role domain.Role) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO memberships (board_id, user_id, role) VALUES ($1, $2, $3)`,
		boardID, userID, string(role),
	)
	if err != nil {
		t.Fatalf("testhelper: seed membership: %v", err)
	}
}

// SeedList appends a list to boardID at position pos.
func SeedList(t *testing.T, pool *pgxpool.Pool, boardID uuid.UUID, title string, pos int64) domain.List {
	t.Helper()

	l := domain.List{
		ID:               uuid.New(),
		BoardID:          boardID,
		Title:            title,
		Position:         domain.NewPosition(pos),
		AllowDevAddCards: true,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO lists (id, board_id, title, position) VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		l.ID, l.BoardID, l.Title, l.Position,
	).Scan(&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed list: %v", err)
	}
	return l
}

// SeedCard appends a card to listID at position pos.
func SeedCard(t *testing.T, pool *pgxpool.Pool, list domain.List, title string, pos int64) domain.Card {
	t.Helper()

	c := domain.Card{
		ID:       uuid.New(),
		ListID:   list.ID,
		BoardID:  list.BoardID,
		Title:    title,
		Position: domain.NewPosition(pos),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO cards (id, list_id, title, position) VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		c.ID, c.ListID, c.Title, c.Position,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed card: %v", err)
	}
	return c
}
