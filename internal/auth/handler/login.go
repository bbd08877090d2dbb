package handler

import (
	"net/http"

	"clinic-portal/internal/session"
	"clinic-portal/internal/validation"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if errs := validation.ValidateLogin(validation.LoginInput{
		Username: req.Username,
		Password: req.Password,
	}); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	// Carry any pre-login session into Establish so its ID is rotated
	// away rather than promoted.
	var old *session.Session
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		old = &session.Session{SessionID: cookie.Value}
	}

	sess, err := h.authenticator.Login(
		c.Request.Context(),
		old,
		req.Username,
		req.Password,
	)

	if err != nil {
		// One generic answer for every failure cause.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	session.SetCookie(c.Writer, sess.SessionID, sess.ExpiresAt, h.cookieOpts)

	c.JSON(http.StatusOK, gin.H{"status": "logged_in"})
}

func (h *Handler) Logout(c *gin.Context) {

	// 1. End the session behind the cookie, if any (best-effort)
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		h.sessions.TerminateByID(c.Request.Context(), cookie.Value)
	}

	// 2. Clear cookie
	session.ClearCookie(c.Writer, h.cookieOpts)

	// 3. Idempotent response
	c.Status(http.StatusNoContent)
}
