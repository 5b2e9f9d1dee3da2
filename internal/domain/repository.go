package domain

import (
	"context"

	"github.com/google/uuid"
)

// SessionRepository defines the interface for session storage operations
type SessionRepository interface {
	// Create stores a new session
	Create(ctx context.Context, session *Session) error

	// WithSession runs fn with exclusive access to the session identified by id.
	// Returns ErrSessionNotFound if no such session exists, otherwise the error from fn.
	WithSession(ctx context.Context, id uuid.UUID, fn func(*Session) error) error

	// Delete removes a session
	// Returns ErrSessionNotFound if no such session exists
	Delete(ctx context.Context, id uuid.UUID) error
}
