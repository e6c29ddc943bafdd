// Package policy holds the pure time-window rules for comment mutation.
package policy

import (
	"time"
)

// WithinWindow reports whether now is still inside the window that opened at
// start. The boundary is inclusive: an elapsed time of exactly the window
// length still passes.
func WithinWindow(start, now time.Time, window time.Duration) bool {
	return now.Sub(start) <= window
}

// CanEdit reports whether a comment created at createdAt may still be edited
func CanEdit(createdAt, now time.Time, window time.Duration) bool {
	return WithinWindow(createdAt, now, window)
}

// CanRestore reports whether a comment deleted at deletedAt may still be
// restored
func CanRestore(deletedAt, now time.Time, window time.Duration) bool {
	return WithinWindow(deletedAt, now, window)
}
