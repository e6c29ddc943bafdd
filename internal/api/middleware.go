package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/threaded-comments-api/internal/models"
	"github.com/threaded-comments-api/internal/service"
)

// currentUserKey is the context key the auth middleware stores the
// resolved user under
const currentUserKey = "currentUser"

// authMiddleware resolves the bearer token to a user and aborts with 401
// when no valid session accompanies the request
func authMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Authenticate(c.Request.Context(), bearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrUnauthorized.Error()})
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// bearerToken extracts the token from the Authorization header
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// currentUser returns the user the auth middleware resolved, or nil on
// unprotected routes
func currentUser(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}
