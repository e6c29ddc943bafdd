package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/threaded-comments-api/internal/models"
	"github.com/threaded-comments-api/internal/repository"
)

// notificationService is the concrete implementation of NotificationService
type notificationService struct {
	notifications repository.NotificationRepository
	log           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifications repository.NotificationRepository, log zerolog.Logger) NotificationService {
	return &notificationService{
		notifications: notifications,
		log:           log.With().Str("service", "notification").Logger(),
	}
}

// List returns the actor's notifications newest-first with an unread count
func (s *notificationService) List(ctx context.Context, actor *models.User) (*models.NotificationFeed, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	notifications, err := s.notifications.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	unread, err := s.notifications.CountUnread(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	return &models.NotificationFeed{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// MarkAllRead flips every notification addressed to the actor to read
func (s *notificationService) MarkAllRead(ctx context.Context, actor *models.User) error {
	if actor == nil {
		return ErrUnauthorized
	}
	return s.notifications.MarkAllRead(ctx, actor.ID)
}
