package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/passbook-backend/internal/domain"
)

// sessionRepository implements domain.SessionRepository in process memory.
// A single mutex serializes every access so one session is never touched by two callers at once.
type sessionRepository struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*domain.Session
}

// NewSessionRepository creates an empty session repository
func NewSessionRepository() domain.SessionRepository {
	return &sessionRepository{sessions: make(map[uuid.UUID]*domain.Session)}
}

// Create stores a new session
func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if session == nil || session.Account == nil {
		return fmt.Errorf("failed to create session: session has no account")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("failed to create session: id %s already in use", session.ID)
	}
	r.sessions[session.ID] = session
	return nil
}

// WithSession runs fn while holding the repository lock
func (r *sessionRepository) WithSession(ctx context.Context, id uuid.UUID, fn func(*domain.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	return fn(session)
}

// Delete removes a session
func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}
