package audit

import (
	"context"
	"time"
)

// Event types recorded by the security layer.
const (
	EventLoginSuccess       = "LOGIN_SUCCESS"
	EventLoginFail          = "LOGIN_FAIL"
	EventLogout             = "LOGOUT"
	EventSessionTimeout     = "SESSION_TIMEOUT"
	EventSessionMaxExceeded = "SESSION_MAX_EXCEEDED"
	EventAccessDenied       = "ACCESS_DENIED"
)

// Event is one append-only audit record. UserID is nil for events with
// no resolved identity (failed logins).
type Event struct {
	UserID  *string
	Type    string
	Details string
	At      time.Time
}

// Recorder persists audit events. Record must never fail the caller:
// implementations recover write errors internally so that the
// triggering operation (login, logout, access check) is unaffected.
type Recorder interface {
	Record(ctx context.Context, e Event)
}

// UserID adapts a user ID string to the nullable Event field.
func UserID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
