package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/threaded-comments-api/internal/models"
)

// commentRepo is the in-memory implementation of CommentRepository
type commentRepo struct {
	store *Store
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(store *Store) CommentRepository {
	return &commentRepo{store: store}
}

// Create inserts a new comment and indexes it under its parent
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.comments[comment.ID]; exists {
		return fmt.Errorf("comment %s already exists", comment.ID)
	}

	r.store.comments[comment.ID] = cloneComment(comment)
	r.store.childIDsByParent[comment.ParentID] = append(r.store.childIDsByParent[comment.ParentID], comment.ID)
	return nil
}

// GetByID retrieves a comment by ID, or nil if absent. Soft-deleted comments
// are still returned; visibility is the caller's policy.
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	comment, ok := r.store.comments[id]
	if !ok {
		return nil, nil
	}
	return cloneComment(comment), nil
}

// Update replaces the stored record wholesale. The parent link is
// creation-only, so the parent index never needs rewriting here.
func (r *commentRepo) Update(ctx context.Context, comment *models.Comment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.comments[comment.ID]
	if !ok {
		return fmt.Errorf("comment %s does not exist", comment.ID)
	}
	if existing.ParentID != comment.ParentID {
		return fmt.Errorf("comment %s cannot be re-parented", comment.ID)
	}

	r.store.comments[comment.ID] = cloneComment(comment)
	return nil
}

// ListByParent returns all direct children of parentID, newest-first by
// creation time. Soft-deleted children are included.
func (r *commentRepo) ListByParent(ctx context.Context, parentID string) ([]*models.Comment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := r.store.childIDsByParent[parentID]
	comments := make([]*models.Comment, 0, len(ids))
	// Walk the index newest-insertion-first so the sort below keeps
	// later-created comments ahead on equal timestamps
	for i := len(ids) - 1; i >= 0; i-- {
		comments = append(comments, cloneComment(r.store.comments[ids[i]]))
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

// CountActiveByParent counts non-deleted direct children of parentID
func (r *commentRepo) CountActiveByParent(ctx context.Context, parentID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, id := range r.store.childIDsByParent[parentID] {
		if !r.store.comments[id].IsDeleted {
			count++
		}
	}
	return count, nil
}

// ToggleLike flips userID's membership in the comment's like set inside one
// critical section, so the set can never hold duplicate entries. Returns
// the resulting liked state.
func (r *commentRepo) ToggleLike(ctx context.Context, id, userID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	comment, ok := r.store.comments[id]
	if !ok {
		return false, fmt.Errorf("comment %s does not exist", id)
	}

	for i, likerID := range comment.Likes {
		if likerID == userID {
			comment.Likes = append(comment.Likes[:i], comment.Likes[i+1:]...)
			return false, nil
		}
	}
	comment.Likes = append(comment.Likes, userID)
	return true, nil
}

// Count returns the total number of comments, including soft-deleted ones
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.comments), nil
}
