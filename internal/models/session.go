package models

import (
	"time"
)

// Session maps an opaque bearer token to a user identity. Sessions replace
// the process-wide current-user pointer: every request carries its own.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
