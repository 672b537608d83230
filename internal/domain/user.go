package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Every post is authored by exactly one user.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the acting party of a request. The zero value is an anonymous visitor.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// IsAuthenticated reports whether the identity belongs to a logged-in user.
func (i Identity) IsAuthenticated() bool {
	return i.UserID != uuid.Nil
}

// Is reports whether the identity is the given user.
func (i Identity) Is(userID uuid.UUID) bool {
	return i.IsAuthenticated() && i.UserID == userID
}
