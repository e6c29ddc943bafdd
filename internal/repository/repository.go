package repository

import (
	"context"
	"errors"

	"github.com/threaded-comments-api/internal/models"
)

// Duplicate-key errors surfaced by UserRepository.Create. The check and the
// insert happen under one lock, so a caller retrying a taken email can never
// grow the user set.
var (
	ErrDuplicateEmail    = errors.New("email already taken")
	ErrDuplicateUsername = errors.New("username already taken")
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	// ListByParent returns all direct children of parentID ("" = top
	// level), newest-first, including soft-deleted ones
	ListByParent(ctx context.Context, parentID string) ([]*models.Comment, error)
	// CountActiveByParent counts non-deleted direct children of parentID
	CountActiveByParent(ctx context.Context, parentID string) (int, error)
	// ToggleLike atomically flips userID's membership in the like set and
	// reports the resulting state
	ToggleLike(ctx context.Context, id, userID string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// NotificationRepository defines the interface for notification data operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	// ListByUser returns all notifications addressed to userID, newest-first
	ListByUser(ctx context.Context, userID string) ([]*models.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkAllRead(ctx context.Context, userID string) error
	Count(ctx context.Context) (int, error)
}

// SessionRepository defines the interface for session data operations
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	User         UserRepository
	Comment      CommentRepository
	Notification NotificationRepository
	Session      SessionRepository
}

// New creates all repositories backed by the given store
func New(store *Store) *Repositories {
	return &Repositories{
		User:         NewUserRepo(store),
		Comment:      NewCommentRepo(store),
		Notification: NewNotificationRepo(store),
		Session:      NewSessionRepo(store),
	}
}
