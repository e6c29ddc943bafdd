package repository

import (
	"context"

	"github.com/threaded-comments-api/internal/models"
)

// sessionRepo is the in-memory implementation of SessionRepository
type sessionRepo struct {
	store *Store
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(store *Store) SessionRepository {
	return &sessionRepo{store: store}
}

// Create registers a session under its token
func (r *sessionRepo) Create(ctx context.Context, session *models.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.sessions[session.Token] = cloneSession(session)
	return nil
}

// GetByToken retrieves a session by token, or nil if absent
func (r *sessionRepo) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	session, ok := r.store.sessions[token]
	if !ok {
		return nil, nil
	}
	return cloneSession(session), nil
}

// Delete removes a session. Deleting an unknown token is a no-op.
func (r *sessionRepo) Delete(ctx context.Context, token string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.sessions, token)
	return nil
}
