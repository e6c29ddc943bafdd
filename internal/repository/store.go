package repository

import (
	"sync"

	"github.com/threaded-comments-api/internal/models"
)

// Store is the in-memory backing for all repositories. One mutex guards
// every map: all mutations across entities share a single mutual-exclusion
// boundary, so no interleaving of writes can corrupt cross-entity state.
type Store struct {
	mu sync.RWMutex

	users            map[string]*models.User
	userIDByEmail    map[string]string
	userIDByUsername map[string]string

	comments map[string]*models.Comment
	// childIDsByParent indexes comment IDs by parent ID ("" = top level),
	// in insertion order
	childIDsByParent map[string][]string

	// notifications are appended per recipient, oldest first
	notifications map[string][]*models.Notification

	sessions map[string]*models.Session
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:            make(map[string]*models.User),
		userIDByEmail:    make(map[string]string),
		userIDByUsername: make(map[string]string),
		comments:         make(map[string]*models.Comment),
		childIDsByParent: make(map[string][]string),
		notifications:    make(map[string][]*models.Notification),
		sessions:         make(map[string]*models.Session),
	}
}

// Repositories hand out copies so callers never alias state guarded by the
// store lock.

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}

func cloneComment(c *models.Comment) *models.Comment {
	out := *c
	out.Likes = append([]string(nil), c.Likes...)
	if c.DeletedAt != nil {
		t := *c.DeletedAt
		out.DeletedAt = &t
	}
	return &out
}

func cloneNotification(n *models.Notification) *models.Notification {
	c := *n
	return &c
}

func cloneSession(s *models.Session) *models.Session {
	c := *s
	return &c
}
