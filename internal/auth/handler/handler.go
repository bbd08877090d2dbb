package handler

import (
	"context"

	"clinic-portal/internal/audit"
	"clinic-portal/internal/auth"
	"clinic-portal/internal/auth/credentials"
	"clinic-portal/internal/rbac"
	"clinic-portal/internal/session"

	"github.com/gin-gonic/gin"
)

// AuditReader is the read side of the audit log, for the admin-only
// listing endpoint. The write side stays behind audit.Recorder.
type AuditReader interface {
	Recent(ctx context.Context, limit int) ([]audit.Event, error)
}

type Handler struct {
	authenticator *auth.Authenticator
	sessions      *session.Manager
	creds         credentials.Store
	matrix        rbac.Matrix
	auditReader   AuditReader
	cookieOpts    session.CookieOptions
}

func NewHandler(
	authenticator *auth.Authenticator,
	sessions *session.Manager,
	creds credentials.Store,
	matrix rbac.Matrix,
	auditReader AuditReader,
	cookieOpts session.CookieOptions,
) *Handler {
	return &Handler{
		authenticator: authenticator,
		sessions:      sessions,
		creds:         creds,
		matrix:        matrix,
		auditReader:   auditReader,
		cookieOpts:    cookieOpts,
	}
}

// RegisterPublicRoutes mounts the endpoints that must work without a
// session. Everything else is wired behind the auth middleware in
// internal/app.
func (h *Handler) RegisterPublicRoutes(r *gin.Engine) {
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
}
