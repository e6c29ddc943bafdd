package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/threaded-comments-api/internal/config"
	"github.com/threaded-comments-api/internal/models"
	"github.com/threaded-comments-api/internal/repository"
)

// AuthService defines the interface for identity and session operations
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// CommentService defines the interface for comment tree operations. Every
// operation requires an authenticated actor.
type CommentService interface {
	List(ctx context.Context, actor *models.User, parentID string) (*models.CommentList, error)
	Create(ctx context.Context, actor *models.User, content, parentID string) (*models.Comment, error)
	Update(ctx context.Context, actor *models.User, id, content string) (*models.Comment, error)
	Delete(ctx context.Context, actor *models.User, id string) error
	Restore(ctx context.Context, actor *models.User, id string) (*models.Comment, error)
	ToggleLike(ctx context.Context, actor *models.User, id string) (bool, error)
}

// NotificationService defines the interface for the notification feed
type NotificationService interface {
	List(ctx context.Context, actor *models.User) (*models.NotificationFeed, error)
	MarkAllRead(ctx context.Context, actor *models.User) error
}

// Services holds all service interfaces
type Services struct {
	Auth         AuthService
	Comment      CommentService
	Notification NotificationService
	Stats        StatsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Auth:         NewAuthService(repos.User, repos.Session, cfg.Auth, log),
		Comment:      NewCommentService(repos.Comment, repos.Notification, cfg.Comments, log, nil),
		Notification: NewNotificationService(repos.Notification, log),
		Stats:        NewStatsService(repos),
	}
}
