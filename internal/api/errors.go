package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/threaded-comments-api/internal/service"
	"github.com/threaded-comments-api/internal/validation"
)

// respondError maps a service error to its HTTP status and surfaces the
// message verbatim. Unknown errors become opaque 500s.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verrs.Error(), "fields": verrs})
		return
	}

	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled service error")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrEditWindowExpired),
		errors.Is(err, service.ErrRestoreWindowExpired):
		return http.StatusForbidden
	case errors.Is(err, service.ErrCommentNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateUser),
		errors.Is(err, service.ErrNotRestorable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
