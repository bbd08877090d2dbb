package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"clinic-portal/internal/audit"

	"github.com/gin-gonic/gin"
)

// GinRequireAuth adapts the net/http AuthMiddleware to Gin. Auth
// decisions stay session-based; handlers read the session from the
// request context.
func GinRequireAuth(auth *AuthMiddleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		// Wrap Gin request with net/http auth middleware
		handler := auth.RequireAuth(next)

		// Execute middleware chain
		handler.ServeHTTP(c.Writer, c.Request)

		// If auth middleware already handled the response, stop Gin chain
		if c.Writer.Written() {
			c.Abort()
			return
		}
	}
}

// GinRequireRole restricts a route group to the given roles. It must
// run after GinRequireAuth. A role outside the allowed list gets 403
// and exactly one ACCESS_DENIED audit event naming the attempted role
// and the allowed list; the handler never runs.
func GinRequireRole(recorder audit.Recorder, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFromContext(c.Request.Context())
		if !ok || sess == nil {
			// RequireAuth did not run or was bypassed: fail closed.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		for _, role := range allowedRoles {
			if sess.Role == role {
				c.Next()
				return
			}
		}

		recorder.Record(c.Request.Context(), audit.Event{
			UserID: audit.UserID(sess.UserID),
			Type:   audit.EventAccessDenied,
			Details: fmt.Sprintf(
				"role '%s' tried to access %s restricted to: %s",
				sess.Role,
				c.Request.URL.Path,
				strings.Join(allowedRoles, ", "),
			),
		})

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "access denied",
		})
	}
}
