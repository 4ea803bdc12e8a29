package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"back2me/internal/model"
	"back2me/internal/session"
)

const sessionContextKey = "session"

// SessionFromContext returns the caller's session as set by RequireSession.
func SessionFromContext(c *gin.Context) (model.Session, bool) {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return model.Session{}, false
	}
	sess, ok := value.(model.Session)
	return sess, ok
}

// RequireSession guards a route with bearer-token auth. The token is opaque:
// it is only valid if the registry issued it during this process lifetime.
func RequireSession(registry *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			c.Abort()
			return
		}

		sess, ok := registry.Resolve(parts[1])
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}
