package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-portal/internal/audit"
)

// ErrUnauthenticated is returned when no valid session exists: never
// established, already terminated, idle-expired, or past the absolute
// lifetime. Callers at the request boundary translate it into a
// redirect to the login entry point or a 401.
var ErrUnauthenticated = errors.New("session: unauthenticated")

// Identity is the subset of session state safe to hand to resource
// handlers. The zero value means "no authenticated user".
type Identity struct {
	ID   string
	Name string
	Role string
}

// Manager owns the session lifecycle: establish on login, touch on
// every authorized request, terminate on logout or expiry. Expiry is
// evaluated lazily on the next request; there is no background sweep.
type Manager struct {
	store       Store
	audit       audit.Recorder
	idleTimeout time.Duration
	maxLifetime time.Duration

	now func() time.Time // injectable for tests
}

func NewManager(
	store Store,
	recorder audit.Recorder,
	idleTimeout time.Duration,
	maxLifetime time.Duration,
) *Manager {
	return &Manager{
		store:       store,
		audit:       recorder,
		idleTimeout: idleTimeout,
		maxLifetime: maxLifetime,
		now:         time.Now,
	}
}

// Establish creates a fresh session after successful authentication.
// A new session ID is always generated; if the caller held a prior
// session it is deleted first, so a pre-login identifier can never be
// promoted to an authenticated one (session fixation).
func (m *Manager) Establish(
	ctx context.Context,
	old *Session,
	userID, username, role string,
) (*Session, error) {

	if old != nil && old.SessionID != "" {
		_ = m.store.Delete(ctx, old.SessionID)
	}

	sessionID, err := GenerateID()
	if err != nil {
		return nil, err
	}

	now := m.now()
	s := Session{
		SessionID:    sessionID,
		UserID:       userID,
		Username:     username,
		Role:         role,
		CreatedAt:    now,
		LastActiveAt: now,
		ExpiresAt:    now.Add(m.maxLifetime),
	}

	if err := m.store.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("session: failed to persist: %w", err)
	}

	return &s, nil
}

// Resume loads the session and applies the touch rules: an idle gap
// beyond idleTimeout terminates it, age beyond maxLifetime terminates
// it even if it was active a second ago, otherwise LastActiveAt is
// refreshed and persisted. Every termination path returns
// ErrUnauthenticated and records the reason.
func (m *Manager) Resume(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, ErrUnauthenticated
	}

	s, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session: store read failed: %w", err)
	}
	if s == nil {
		return nil, ErrUnauthenticated
	}

	now := m.now()

	if now.Sub(s.LastActiveAt) > m.idleTimeout {
		m.expire(ctx, s, audit.EventSessionTimeout, "session expired after inactivity")
		return nil, ErrUnauthenticated
	}

	if now.Sub(s.CreatedAt) > m.maxLifetime {
		m.expire(ctx, s, audit.EventSessionMaxExceeded, "max session time reached")
		return nil, ErrUnauthenticated
	}

	s.LastActiveAt = now
	if err := m.store.Update(ctx, *s); err != nil {
		return nil, fmt.Errorf("session: store update failed: %w", err)
	}

	return s, nil
}

// Terminate ends a session on explicit logout. Idempotent: a nil or
// already-deleted session is a no-op apart from the audit record.
func (m *Manager) Terminate(ctx context.Context, s *Session) {
	if s == nil {
		return
	}
	if s.SessionID != "" {
		_ = m.store.Delete(ctx, s.SessionID)
	}
	m.audit.Record(ctx, audit.Event{
		UserID:  audit.UserID(s.UserID),
		Type:    audit.EventLogout,
		Details: fmt.Sprintf("user logged out: %s", s.Username),
	})
}

// TerminateByID resolves the session behind a cookie value and ends
// it. Unknown IDs are a no-op, which keeps logout idempotent.
func (m *Manager) TerminateByID(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	s, err := m.store.Get(ctx, sessionID)
	if err != nil || s == nil {
		return
	}
	m.Terminate(ctx, s)
}

func (m *Manager) expire(ctx context.Context, s *Session, eventType, details string) {
	_ = m.store.Delete(ctx, s.SessionID)
	m.audit.Record(ctx, audit.Event{
		UserID:  audit.UserID(s.UserID),
		Type:    eventType,
		Details: details,
	})
}

// Identity returns the caller-facing identity for a session. Safe on
// nil: the zero Identity means no authenticated user.
func (m *Manager) Identity(s *Session) Identity {
	if s == nil {
		return Identity{}
	}
	return Identity{
		ID:   s.UserID,
		Name: s.Username,
		Role: s.Role,
	}
}

// MaxLifetime exposes the absolute cap so the HTTP layer can bind the
// cookie lifetime to it.
func (m *Manager) MaxLifetime() time.Duration {
	return m.maxLifetime
}
