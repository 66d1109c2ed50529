// Package activity implements the append-only activity log store.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Timurc390/Boardly/internal/adapter/postgres"
	"github.com/Timurc390/Boardly/internal/domain"
)

const table = "activity_logs"

var columns = []string{"id", "user_id", "action", "entity_type", "entity_id", "meta", "created_at"}

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a log row and returns it as stored.
func (r *Repo) Create(ctx context.Context, entry *domain.ActivityLog) (*domain.ActivityLog, error) {
	meta, err := json.Marshal(entry.Meta)
	if err != nil {
		return nil, fmt.Errorf("activity_log marshal meta: %w", err)
	}

	id := entry.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(id, entry.UserID, string(entry.Action), string(entry.EntityType), entry.EntityID, meta, entry.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert activity_log: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	created, err := scanLog(row)
	if err != nil {
		return nil, postgres.MapError(err, "activity_log", id)
	}
	return created, nil
}

// DeleteOlderThan removes the user's rows created strictly before cutoff.
func (r *Repo) DeleteOlderThan(ctx context.Context, userID uuid.UUID, cutoff time.Time) (int64, error) {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().
			Delete(table).
			Where("user_id = ?", userID).
			Where("created_at < ?", cutoff),
	)
	if err != nil {
		return 0, fmt.Errorf("delete old activity_logs: %w", err)
	}
	return tag.RowsAffected(), nil
}

// expiredCondition matches rows older than their owner's retention window.
// Users without a profile row get the default 30 days.
const expiredCondition = `created_at < ?::timestamptz - make_interval(days => COALESCE((
	SELECT CASE p.activity_retention WHEN '7d' THEN 7 WHEN '365d' THEN 365 ELSE 30 END
	FROM profiles p WHERE p.user_id = activity_logs.user_id), 30))`

// DeleteExpired applies every user's retention window in one statement.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(table).Where(expiredCondition, now),
	)
	if err != nil {
		return 0, fmt.Errorf("delete expired activity_logs: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByUser removes every row of the user.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(table).Where("user_id = ?", userID),
	)
	if err != nil {
		return 0, fmt.Errorf("delete activity_logs: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListByUser returns the user's rows newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.ActivityLog, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where("user_id = ?", userID).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activity_logs: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity_logs: %w", err)
	}

	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ActivityLog, error) {
		l, err := scanLog(row)
		if err != nil {
			return domain.ActivityLog{}, err
		}
		return *l, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan activity_logs: %w", err)
	}
	return logs, nil
}

func scanLog(row pgx.Row) (*domain.ActivityLog, error) {
	var (
		l          domain.ActivityLog
		action     string
		entityType string
		meta       []byte
	)
	if err := row.Scan(&l.ID, &l.UserID, &action, &entityType, &l.EntityID, &meta, &l.CreatedAt); err != nil {
		return nil, err
	}
	l.Action = domain.Action(action)
	l.EntityType = domain.EntityType(entityType)

	l.Meta = map[string]any{}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &l.Meta); err != nil {
			return nil, fmt.Errorf("activity_log %s unmarshal meta: %w", l.ID, err)
		}
	}
	return &l, nil
}
