package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is an immutable record of one user action.
// Meta snapshots display strings (titles, names) at the time of the action.
type ActivityLog struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Action     Action
	EntityType EntityType
	EntityID   *uuid.UUID
	Meta       map[string]any
	CreatedAt  time.Time
}
