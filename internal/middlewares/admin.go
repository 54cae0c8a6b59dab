package middlewares

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
)

// SessionReader restores the current user record.
type SessionReader interface {
	Restore(ctx context.Context) (models.User, bool, error)
}

// RequireAdmin rejects requests whose restored session is not an
// administrator. It sits behind the auth middleware on the CMS routes.
func RequireAdmin(sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, found, err := sessions.Restore(c.Request.Context())
		if err != nil || !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  http.StatusUnauthorized,
				"message": "no active session",
			})
			return
		}

		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  http.StatusForbidden,
				"message": "admin access required",
			})
			return
		}

		c.Next()
	}
}
