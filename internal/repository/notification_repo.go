package repository

import (
	"context"

	"github.com/threaded-comments-api/internal/models"
)

// notificationRepo is the in-memory implementation of NotificationRepository
type notificationRepo struct {
	store *Store
}

// NewNotificationRepo creates a new notification repository
func NewNotificationRepo(store *Store) NotificationRepository {
	return &notificationRepo{store: store}
}

// Create appends a notification to the recipient's feed
func (r *notificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.notifications[notification.UserID] = append(
		r.store.notifications[notification.UserID], cloneNotification(notification))
	return nil
}

// ListByUser returns the recipient's notifications newest-first
func (r *notificationRepo) ListByUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored := r.store.notifications[userID]
	notifications := make([]*models.Notification, 0, len(stored))
	// Feed is stored oldest-first; reverse for newest-first
	for i := len(stored) - 1; i >= 0; i-- {
		notifications = append(notifications, cloneNotification(stored[i]))
	}
	return notifications, nil
}

// CountUnread counts the recipient's unread notifications
func (r *notificationRepo) CountUnread(ctx context.Context, userID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, n := range r.store.notifications[userID] {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkAllRead flips every notification addressed to userID to read.
// Idempotent: already-read notifications stay read.
func (r *notificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, n := range r.store.notifications[userID] {
		n.IsRead = true
	}
	return nil
}

// Count returns the total number of notifications across all recipients
func (r *notificationRepo) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	total := 0
	for _, feed := range r.store.notifications {
		total += len(feed)
	}
	return total, nil
}
