package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/threaded-comments-api/internal/models"
	"github.com/threaded-comments-api/internal/service"
)

// CommentHandler handles the comment tree endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// List handles GET /v1/comments?parent_id=X. Without parent_id it returns
// the top-level comments.
func (h *CommentHandler) List(c *gin.Context) {
	list, err := h.services.Comment.List(c.Request.Context(), currentUser(c), c.Query("parent_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Create handles POST /v1/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), currentUser(c), req.Content, req.ParentID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// Update handles PUT /v1/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	comment, err := h.services.Comment.Update(c.Request.Context(), currentUser(c), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// Delete handles DELETE /v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.services.Comment.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

// Restore handles POST /v1/comments/:id/restore
func (h *CommentHandler) Restore(c *gin.Context) {
	comment, err := h.services.Comment.Restore(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// ToggleLike handles POST /v1/comments/:id/like
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	liked, err := h.services.Comment.ToggleLike(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
