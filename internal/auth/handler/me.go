package handler

import (
	"net/http"

	"clinic-portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Me returns the identity of the current session.
func (h *Handler) Me(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id := h.sessions.Identity(sess)
	c.JSON(http.StatusOK, gin.H{
		"user_id": id.ID,
		"name":    id.Name,
		"role":    id.Role,
	})
}

// Permissions returns the full grant table for the current role, for
// UIs that show or hide controls per permission.
func (h *Handler) Permissions(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":        sess.Role,
		"permissions": h.matrix.RolePermissions(sess.Role),
	})
}
