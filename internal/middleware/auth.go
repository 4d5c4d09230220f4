package middleware

import (
	"github.com/Callymags/task-manager-api/internal/constants"
	apierrors "github.com/Callymags/task-manager-api/internal/errors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth checks that a session with a logged-in username exists. Every
// mutating route goes through this guard; there is no role or ownership
// distinction beyond it.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		username := session.Get(constants.SessionKeyUsername)

		if username == nil {
			apierrors.Unauthenticated(c, "")
			c.Abort()
			return
		}

		// Store the username in context for easy access in handlers
		c.Set(constants.SessionKeyUsername, username)
		c.Next()
	}
}

// CurrentUsername retrieves the logged-in username from context. The second
// return value is false for anonymous requests.
func CurrentUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.SessionKeyUsername)
	if !exists {
		return "", false
	}

	username, ok := value.(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
