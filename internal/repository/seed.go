package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/threaded-comments-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoEmail    = "demo@example.com"
	demoUsername = "demo_user"
	demoPassword = "password"
)

// SeedDemoData inserts the demo account and a sample top-level comment so a
// fresh instance has something to show. Safe to call on every boot: it is a
// no-op once the demo user exists.
func SeedDemoData(ctx context.Context, repos *Repositories, bcryptCost int) error {
	existing, err := repos.User.GetByEmail(ctx, demoEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcryptCost)
	if err != nil {
		return err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        demoEmail,
		Username:     demoUsername,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := repos.User.Create(ctx, user); err != nil {
		return err
	}

	posted := time.Now().Add(-time.Hour)
	comment := &models.Comment{
		ID:             uuid.New().String(),
		Content:        "This is a sample comment to demonstrate the nested comment system. You can reply to this comment and create multiple levels of discussion.",
		AuthorID:       user.ID,
		AuthorUsername: user.Username,
		Likes:          []string{},
		CreatedAt:      posted,
		UpdatedAt:      posted,
	}
	return repos.Comment.Create(ctx, comment)
}
