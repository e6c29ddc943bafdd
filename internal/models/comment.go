package models

import (
	"time"
)

// Comment represents a single node in the reply tree. ParentID is empty for
// top-level comments. Likes holds user IDs, at most one entry per user.
type Comment struct {
	ID             string     `json:"id" db:"id"`
	Content        string     `json:"content" db:"content"`
	AuthorID       string     `json:"author_id" db:"author_id"`
	AuthorUsername string     `json:"author_username" db:"author_username"`
	ParentID       string     `json:"parent_id,omitempty" db:"parent_id"`
	IsDeleted      bool       `json:"is_deleted" db:"is_deleted"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
	Likes          []string   `json:"likes"`

	// ReplyCount is derived at list time: the number of non-deleted direct
	// children. It is never stored.
	ReplyCount int `json:"reply_count"`
}

// LikedBy reports whether the given user is in the like set
func (c *Comment) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// CreateCommentRequest is the payload for POST /v1/comments
type CreateCommentRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID string `json:"parent_id"`
}

// UpdateCommentRequest is the payload for PUT /v1/comments/:id
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Pagination describes the single-page envelope on comment listings
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// CommentList is the response body for GET /v1/comments
type CommentList struct {
	Comments   []*Comment `json:"comments"`
	Pagination Pagination `json:"pagination"`
}
