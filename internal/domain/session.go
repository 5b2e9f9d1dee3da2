package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session binds the logged-in user's Account to a login.
// It is created at login and discarded at logout.
type Session struct {
	ID        uuid.UUID
	Account   *Account
	StartedAt time.Time
}

// NewSession creates a session owning account
func NewSession(account *Account) *Session {
	return &Session{
		ID:        uuid.New(),
		Account:   account,
		StartedAt: time.Now(),
	}
}
