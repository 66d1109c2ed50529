// Package user implements the user and profile store.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/Timurc390/Boardly/internal/adapter/postgres"
	"github.com/Timurc390/Boardly/internal/domain"
)

var userColumns = []string{"id", "username", "email", "created_at"}

// Repo provides user and profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := r.getOne(ctx, squirrel.Eq{"id": id})
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := r.getOne(ctx, squirrel.Expr("lower(email) = lower(?)", email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer) (*domain.User, error) {
	sql, args, err := postgres.Builder().Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var u domain.User
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).
		Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

const ensureUserSQL = `
INSERT INTO users (username, email) VALUES ($1, $2)
ON CONFLICT (lower(email)) DO UPDATE SET email = users.email
RETURNING id, username, email, created_at`

// EnsureUser returns the user with the given email, creating it when absent.
// The username of an existing user is left unchanged.
func (r *Repo) EnsureUser(ctx context.Context, email, username string) (*domain.User, error) {
	var u domain.User
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, ensureUserSQL, username, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return &u, nil
}

// GetProfile returns the stored profile or domain.ErrNotFound.
func (r *Repo) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	sql, args, err := postgres.Builder().
		Select("user_id", "activity_retention", "updated_at").
		From("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select profile: %w", err)
	}

	var (
		p         domain.Profile
		retention string
	)
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&p.UserID, &retention, &p.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}
	p.ActivityRetention = domain.ActivityRetention(retention)
	return &p, nil
}

const upsertRetentionSQL = `
INSERT INTO profiles (user_id, activity_retention, updated_at) VALUES ($1, $2, now())
ON CONFLICT (user_id) DO UPDATE SET activity_retention = EXCLUDED.activity_retention, updated_at = now()
RETURNING user_id, activity_retention, updated_at`

// SetActivityRetention stores the retention choice, creating the profile if needed.
func (r *Repo) SetActivityRetention(ctx context.Context, userID uuid.UUID, retention domain.ActivityRetention) (*domain.Profile, error) {
	var (
		p      domain.Profile
		stored string
	)
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, upsertRetentionSQL, userID, string(retention)).
		Scan(&p.UserID, &stored, &p.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}
	p.ActivityRetention = domain.ActivityRetention(stored)
	return &p, nil
}

// Exists reports whether a user row exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).
		Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return ok, nil
}
