package models

import (
	"time"
)

// NotificationType classifies what triggered a notification
type NotificationType string

const (
	NotificationTypeReply NotificationType = "REPLY"
	NotificationTypeLike  NotificationType = "LIKE"
	// NotificationTypeMention is reserved; nothing emits it yet
	NotificationTypeMention NotificationType = "MENTION"
)

// CommentSnapshot freezes the subject comment's content and author at the
// time the notification was created. It is never updated afterwards.
type CommentSnapshot struct {
	ID             string `json:"id"`
	Content        string `json:"content"`
	AuthorUsername string `json:"author_username"`
}

// Notification is an event addressed to a single user
type Notification struct {
	ID        string           `json:"id" db:"id"`
	UserID    string           `json:"user_id" db:"user_id"`
	CommentID string           `json:"comment_id" db:"comment_id"`
	Type      NotificationType `json:"type" db:"type"`
	Message   string           `json:"message" db:"message"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	Comment   CommentSnapshot  `json:"comment"`
}

// NotificationFeed is the response body for GET /v1/notifications
type NotificationFeed struct {
	Notifications []*Notification `json:"notifications"`
	UnreadCount   int             `json:"unread_count"`
}
