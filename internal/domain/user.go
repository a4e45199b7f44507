package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the public, user-editable part of an account.
type Profile struct {
	UserID    uuid.UUID
	Nickname  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
