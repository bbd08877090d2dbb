package session

import (
	"context"
	"time"
)

// Session is the server-side state for one authenticated browser
// session. It carries identity facts only; authorization decisions
// stay in the rbac package.
type Session struct {
	SessionID    string    // unique session identifier
	UserID       string    // references users.id
	Username     string    // login name, for display and audit detail
	Role         string    // role name, consulted by the rbac layer
	CreatedAt    time.Time // when the session was established
	LastActiveAt time.Time // refreshed on every authorized request
	ExpiresAt    time.Time // absolute expiry time
}

// Store defines how sessions are stored and retrieved.
// Implementations (e.g., Redis) must remain stateless and opaque.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, sessionID string) error
}
