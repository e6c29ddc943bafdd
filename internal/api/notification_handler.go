package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/threaded-comments-api/internal/service"
)

// NotificationHandler handles the notification feed endpoints
type NotificationHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(services *service.Services, log zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		services: services,
		log:      log.With().Str("handler", "notification").Logger(),
	}
}

// List handles GET /v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	feed, err := h.services.Notification.List(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

// MarkAllRead handles POST /v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.services.Notification.MarkAllRead(c.Request.Context(), currentUser(c)); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "all notifications marked as read"})
}
