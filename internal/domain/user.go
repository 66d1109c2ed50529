package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity supplied by the identity provider.
// Username and email are unique case-insensitively.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
}

// Profile holds per-user preferences owned by this service.
type Profile struct {
	UserID            uuid.UUID
	ActivityRetention ActivityRetention
	UpdatedAt         time.Time
}

// DefaultProfile returns the profile used when none has been stored yet.
func DefaultProfile(userID uuid.UUID) Profile {
	return Profile{
		UserID:            userID,
		ActivityRetention: DefaultActivityRetention,
	}
}
