package service

import (
	"context"
	"fmt"

	"github.com/threaded-comments-api/internal/repository"
)

// StatsService exposes entity counts for the metrics endpoint
type StatsService interface {
	Count(ctx context.Context, entity string) (int, error)
}

// statsService is the concrete implementation of StatsService
type statsService struct {
	repos *repository.Repositories
}

// NewStatsService creates a new StatsService
func NewStatsService(repos *repository.Repositories) StatsService {
	return &statsService{repos: repos}
}

// Count returns the stored record count for one of: users, comments,
// notifications. Comment counts include soft-deleted records.
func (s *statsService) Count(ctx context.Context, entity string) (int, error) {
	switch entity {
	case "users":
		return s.repos.User.Count(ctx)
	case "comments":
		return s.repos.Comment.Count(ctx)
	case "notifications":
		return s.repos.Notification.Count(ctx)
	default:
		return 0, fmt.Errorf("unknown entity %q", entity)
	}
}
