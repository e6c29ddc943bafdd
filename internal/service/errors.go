package service

import (
	"errors"
)

// Service-level error taxonomy. Handlers map these to HTTP statuses and
// surface the messages verbatim; every failure is terminal for its call.
var (
	// ErrUnauthorized means no valid session accompanied the call
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials covers unknown email and wrong password alike
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateUser means the email or username is already taken
	ErrDuplicateUser = errors.New("user with this email or username already exists")

	// ErrCommentNotFound covers both absent and soft-deleted comments
	// wherever deletion makes them invisible
	ErrCommentNotFound = errors.New("comment not found")

	// ErrForbidden means the actor is authenticated but not the author
	ErrForbidden = errors.New("forbidden")

	// ErrEditWindowExpired means too much time passed since creation
	ErrEditWindowExpired = errors.New("comment edit window has expired")

	// ErrRestoreWindowExpired means too much time passed since deletion
	ErrRestoreWindowExpired = errors.New("comment restore window has expired")

	// ErrNotRestorable means restore was called on a comment that is not
	// currently deleted
	ErrNotRestorable = errors.New("comment is not deleted")
)
