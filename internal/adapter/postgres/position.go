package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

// LastPosition returns the greatest position among rows of table whose
// scopeColumn equals scopeID, or nil when there are none.
func LastPosition(ctx context.Context, q Querier, table, scopeColumn string, scopeID uuid.UUID) (*domain.Position, error) {
	return scalarPosition(ctx, q,
		Builder().Select("max(position)::text").From(table).Where(squirrel.Eq{scopeColumn: scopeID}))
}

// PositionAfter returns the smallest position strictly greater than after
// within the scope, or nil when after is already the last one.
func PositionAfter(ctx context.Context, q Querier, table, scopeColumn string, scopeID uuid.UUID, after domain.Position) (*domain.Position, error) {
	return scalarPosition(ctx, q,
		Builder().Select("min(position)::text").From(table).
			Where(squirrel.Eq{scopeColumn: scopeID}).
			Where("position > ?", after))
}

func scalarPosition(ctx context.Context, q Querier, stmt squirrel.SelectBuilder) (*domain.Position, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build position query: %w", err)
	}

	var raw *string
	if err := q.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return nil, fmt.Errorf("query position: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	p, err := domain.ParsePosition(*raw)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
