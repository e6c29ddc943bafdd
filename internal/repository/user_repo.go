package repository

import (
	"context"
	"strings"

	"github.com/threaded-comments-api/internal/models"
)

// userRepo is the in-memory implementation of UserRepository
type userRepo struct {
	store *Store
}

// NewUserRepo creates a new user repository
func NewUserRepo(store *Store) UserRepository {
	return &userRepo{store: store}
}

// Create inserts a new user, enforcing email and username uniqueness. The
// uniqueness check and the insert form one critical section.
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	email := strings.ToLower(user.Email)
	username := strings.ToLower(user.Username)

	if _, taken := r.store.userIDByEmail[email]; taken {
		return ErrDuplicateEmail
	}
	if _, taken := r.store.userIDByUsername[username]; taken {
		return ErrDuplicateUsername
	}

	r.store.users[user.ID] = cloneUser(user)
	r.store.userIDByEmail[email] = user.ID
	r.store.userIDByUsername[username] = user.ID
	return nil
}

// GetByID retrieves a user by ID, or nil if absent
func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

// GetByEmail retrieves a user by email (case-insensitive), or nil if absent
func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.userIDByEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return cloneUser(r.store.users[id]), nil
}

// Count returns the total number of users
func (r *userRepo) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.users), nil
}
