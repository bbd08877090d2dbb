package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type auditEntry struct {
	UserID  *string `json:"user_id"`
	Type    string  `json:"event_type"`
	Details string  `json:"details"`
	At      string  `json:"at"`
}

// AuditLog lists recent security events, newest first. Administrator
// only (enforced by the route group).
func (h *Handler) AuditLog(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	events, err := h.auditReader.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read audit log"})
		return
	}

	out := make([]auditEntry, 0, len(events))
	for _, e := range events {
		out = append(out, auditEntry{
			UserID:  e.UserID,
			Type:    e.Type,
			Details: e.Details,
			At:      e.At.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"events": out})
}
