package auth

import (
	"context"
	"errors"
	"fmt"

	"clinic-portal/internal/audit"
	"clinic-portal/internal/auth/credentials"
	"clinic-portal/internal/logger"
	"clinic-portal/internal/session"
)

// ErrInvalidCredentials is the single failure every unsuccessful login
// maps to. Unknown username, wrong password, and credential-store
// outages are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Authenticator validates credentials and drives the session and
// audit layers on the outcome.
type Authenticator struct {
	creds    credentials.Store
	sessions *session.Manager
	audit    audit.Recorder
}

func NewAuthenticator(
	creds credentials.Store,
	sessions *session.Manager,
	recorder audit.Recorder,
) *Authenticator {
	return &Authenticator{
		creds:    creds,
		sessions: sessions,
		audit:    recorder,
	}
}

// Login verifies username/password and establishes a session on
// success. The password is used as submitted; whitespace is
// significant. Exactly one audit event is recorded per attempt. The
// old session, if any, is rotated away inside Establish.
func (a *Authenticator) Login(
	ctx context.Context,
	old *session.Session,
	username, password string,
) (*session.Session, error) {

	cred, err := a.creds.FindByUsername(ctx, username)

	if err != nil {
		if !errors.Is(err, credentials.ErrNotFound) {
			// Store outage: same caller-visible failure, internal log only.
			logger.Error("credential lookup failed", map[string]any{
				"error": err.Error(),
			})
		}
		credentials.BurnVerification(password)
		a.recordFail(ctx, username)
		return nil, ErrInvalidCredentials
	}

	if err := credentials.VerifyPassword(cred.PasswordHash, password); err != nil {
		a.recordFail(ctx, username)
		return nil, ErrInvalidCredentials
	}

	s, err := a.sessions.Establish(ctx, old, cred.UserID, cred.Username, cred.RoleName)
	if err != nil {
		// Session store outage: the attempt still failed from the
		// caller's perspective, and still gets its one audit event.
		logger.Error("session establish failed", map[string]any{
			"error": err.Error(),
		})
		a.recordFail(ctx, username)
		return nil, ErrInvalidCredentials
	}

	a.audit.Record(ctx, audit.Event{
		UserID:  audit.UserID(cred.UserID),
		Type:    audit.EventLoginSuccess,
		Details: fmt.Sprintf("user logged in: %s", username),
	})

	return s, nil
}

// recordFail logs every failed attempt with an identical shape so the
// audit trail cannot be used to distinguish unknown usernames from
// wrong passwords.
func (a *Authenticator) recordFail(ctx context.Context, username string) {
	a.audit.Record(ctx, audit.Event{
		UserID:  nil,
		Type:    audit.EventLoginFail,
		Details: fmt.Sprintf("failed login attempt for username: %s", username),
	})
}
