package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/threaded-comments-api/internal/config"
	"github.com/threaded-comments-api/internal/models"
	"github.com/threaded-comments-api/internal/policy"
	"github.com/threaded-comments-api/internal/repository"
	"github.com/threaded-comments-api/internal/validation"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments      repository.CommentRepository
	notifications repository.NotificationRepository
	cfg           config.CommentConfig
	log           zerolog.Logger
	now           func() time.Time
}

// NewCommentService creates a new CommentService. A nil clock defaults to
// time.Now; tests inject a fake to drive the edit/restore windows.
func NewCommentService(comments repository.CommentRepository, notifications repository.NotificationRepository, cfg config.CommentConfig, log zerolog.Logger, clock func() time.Time) CommentService {
	if clock == nil {
		clock = time.Now
	}
	return &commentService{
		comments:      comments,
		notifications: notifications,
		cfg:           cfg,
		log:           log.With().Str("service", "comment").Logger(),
		now:           clock,
	}
}

// List returns the non-deleted direct children of parentID ("" = top
// level), newest-first, each annotated with its live reply count.
func (s *commentService) List(ctx context.Context, actor *models.User, parentID string) (*models.CommentList, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	children, err := s.comments.ListByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}

	visible := make([]*models.Comment, 0, len(children))
	for _, c := range children {
		if c.IsDeleted {
			continue
		}
		count, err := s.comments.CountActiveByParent(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		c.ReplyCount = count
		visible = append(visible, c)
	}

	return &models.CommentList{
		Comments: visible,
		Pagination: models.Pagination{
			Page:  1,
			Limit: s.cfg.PageSize,
			Total: len(visible),
			Pages: 1,
		},
	}, nil
}

// Create validates and appends a new comment owned by the actor. Replying
// to someone else's comment notifies its author.
func (s *commentService) Create(ctx context.Context, actor *models.User, content, parentID string) (*models.Comment, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	if errs := validation.ValidateContent(content, s.cfg.MaxContentLength); len(errs) > 0 {
		return nil, errs
	}

	var parent *models.Comment
	if parentID != "" {
		var err error
		parent, err = s.comments.GetByID(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.IsDeleted {
			return nil, ErrCommentNotFound
		}
	}

	now := s.now()
	comment := &models.Comment{
		ID:             uuid.New().String(),
		Content:        strings.TrimSpace(content),
		AuthorID:       actor.ID,
		AuthorUsername: actor.Username,
		ParentID:       parentID,
		Likes:          []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	if parent != nil && parent.AuthorID != actor.ID {
		s.notify(ctx, &models.Notification{
			ID:        uuid.New().String(),
			UserID:    parent.AuthorID,
			CommentID: parent.ID,
			Type:      models.NotificationTypeReply,
			Message:   fmt.Sprintf("%s replied to your comment", actor.Username),
			CreatedAt: now,
			Comment: models.CommentSnapshot{
				ID:             parent.ID,
				Content:        parent.Content,
				AuthorUsername: parent.AuthorUsername,
			},
		})
	}

	s.log.Info().Str("comment_id", comment.ID).Str("author_id", actor.ID).Str("parent_id", parentID).Msg("Comment created")

	return comment, nil
}

// Update replaces a comment's content within the edit window. Only the
// author may edit, and either the whole update applies or none of it does.
func (s *commentService) Update(ctx context.Context, actor *models.User, id, content string) (*models.Comment, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.AuthorID != actor.ID {
		return nil, ErrForbidden
	}

	now := s.now()
	if !policy.CanEdit(comment.CreatedAt, now, s.cfg.EditWindow) {
		return nil, ErrEditWindowExpired
	}

	if errs := validation.ValidateContent(content, s.cfg.MaxContentLength); len(errs) > 0 {
		return nil, errs
	}

	comment.Content = strings.TrimSpace(content)
	comment.UpdatedAt = now
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info().Str("comment_id", id).Msg("Comment updated")

	return comment, nil
}

// Delete soft-deletes a comment: the record stays, flagged with a deletion
// timestamp the restore window is measured from.
func (s *commentService) Delete(ctx context.Context, actor *models.User, id string) error {
	if actor == nil {
		return ErrUnauthorized
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil || comment.IsDeleted {
		return ErrCommentNotFound
	}
	if comment.AuthorID != actor.ID {
		return ErrForbidden
	}

	deletedAt := s.now()
	comment.IsDeleted = true
	comment.DeletedAt = &deletedAt
	if err := s.comments.Update(ctx, comment); err != nil {
		return err
	}

	s.log.Info().Str("comment_id", id).Msg("Comment soft-deleted")

	return nil
}

// Restore clears the deletion flag within the restore window
func (s *commentService) Restore(ctx context.Context, actor *models.User, id string) (*models.Comment, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.AuthorID != actor.ID {
		return nil, ErrForbidden
	}
	if !comment.IsDeleted || comment.DeletedAt == nil {
		return nil, ErrNotRestorable
	}
	if !policy.CanRestore(*comment.DeletedAt, s.now(), s.cfg.RestoreWindow) {
		return nil, ErrRestoreWindowExpired
	}

	comment.IsDeleted = false
	comment.DeletedAt = nil
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info().Str("comment_id", id).Msg("Comment restored")

	return comment, nil
}

// ToggleLike flips the actor's like on a comment and reports the resulting
// state. The unliked-to-liked transition on someone else's comment
// notifies its author; the reverse transition never does.
func (s *commentService) ToggleLike(ctx context.Context, actor *models.User, id string) (bool, error) {
	if actor == nil {
		return false, ErrUnauthorized
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if comment == nil || comment.IsDeleted {
		return false, ErrCommentNotFound
	}

	liked, err := s.comments.ToggleLike(ctx, id, actor.ID)
	if err != nil {
		return false, err
	}

	if liked && comment.AuthorID != actor.ID {
		s.notify(ctx, &models.Notification{
			ID:        uuid.New().String(),
			UserID:    comment.AuthorID,
			CommentID: comment.ID,
			Type:      models.NotificationTypeLike,
			Message:   fmt.Sprintf("%s liked your comment", actor.Username),
			CreatedAt: s.now(),
			Comment: models.CommentSnapshot{
				ID:             comment.ID,
				Content:        comment.Content,
				AuthorUsername: comment.AuthorUsername,
			},
		})
	}

	return liked, nil
}

// notify records a notification; delivery failures are logged, not
// surfaced, since the triggering mutation already succeeded
func (s *commentService) notify(ctx context.Context, n *models.Notification) {
	if err := s.notifications.Create(ctx, n); err != nil {
		s.log.Error().Err(err).Str("recipient", n.UserID).Str("type", string(n.Type)).Msg("Failed to record notification")
	}
}
