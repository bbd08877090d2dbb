package session

import (
	"context"
	"testing"
	"time"

	"clinic-portal/internal/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingRecorder collects events so tests can assert exact counts.
type capturingRecorder struct {
	events []audit.Event
}

func (r *capturingRecorder) Record(_ context.Context, e audit.Event) {
	r.events = append(r.events, e)
}

func (r *capturingRecorder) ofType(eventType string) []audit.Event {
	var out []audit.Event
	for _, e := range r.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

func newTestManager(t *testing.T) (*Manager, *MemoryStore, *capturingRecorder, *time.Time) {
	t.Helper()

	store := NewMemoryStore()
	recorder := &capturingRecorder{}
	m := NewManager(store, recorder, 15*time.Minute, 4*time.Hour)

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	return m, store, recorder, &now
}

func TestEstablish_SetsTimestampsAndRotatesID(t *testing.T) {
	m, store, _, now := newTestManager(t)
	ctx := context.Background()

	old, err := m.Establish(ctx, nil, "u-1", "nurse_01", "Nurse")
	require.NoError(t, err)
	assert.Equal(t, *now, old.CreatedAt)
	assert.Equal(t, *now, old.LastActiveAt)
	assert.Equal(t, now.Add(4*time.Hour), old.ExpiresAt)

	fresh, err := m.Establish(ctx, old, "u-1", "nurse_01", "Nurse")
	require.NoError(t, err)
	assert.NotEqual(t, old.SessionID, fresh.SessionID, "session ID must rotate")

	gone, err := store.Get(ctx, old.SessionID)
	require.NoError(t, err)
	assert.Nil(t, gone, "pre-login session must be deleted")
}

func TestEstablish_IndependentOfWallClock(t *testing.T) {
	m, store, _, now := newTestManager(t)
	ctx := context.Background()

	// Pin the manager's clock far in the past. The store must accept
	// what the manager persists: expiry is manager policy, evaluated
	// against the manager's own clock, never the store's.
	*now = time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)

	s, err := m.Establish(ctx, nil, "u-1", "nurse_01", "Nurse")
	require.NoError(t, err)

	kept, err := store.Get(ctx, s.SessionID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, *now, kept.CreatedAt)

	// The same frozen clock resumes it fine.
	resumed, err := m.Resume(ctx, s.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "u-1", resumed.UserID)
}

func TestResume_RefreshesLastActive(t *testing.T) {
	m, _, recorder, now := newTestManager(t)
	ctx := context.Background()

	s, err := m.Establish(ctx, nil, "u-1", "nurse_01", "Nurse")
	require.NoError(t, err)

	// Immediately after establish: no termination.
	resumed, err := m.Resume(ctx, s.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Nurse", resumed.Role)

	*now = now.Add(10 * time.Minute)
	resumed, err = m.Resume(ctx, s.SessionID)
	require.NoError(t, err)
	assert.Equal(t, *now, resumed.LastActiveAt)
	assert.Empty(t, recorder.ofType(audit.EventSessionTimeout))
}

func TestResume_IdleTimeout(t *testing.T) {
	m, store, recorder, now := newTestManager(t)
	ctx := context.Background()

	s, err := m.Establish(ctx, nil, "u-1", "nurse_01", "Nurse")
	require.NoError(t, err)

	*now = now.Add(15*time.Minute + time.Second)

	_, err = m.Resume(ctx, s.SessionID)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	timeouts := recorder.ofType(audit.EventSessionTimeout)
	require.Len(t, timeouts, 1, "exactly one timeout event")
	require.NotNil(t, timeouts[0].UserID)
	assert.Equal(t, "u-1", *timeouts[0].UserID)

	gone, err := store.Get(ctx, s.SessionID)
	require.NoError(t, err)
	assert.Nil(t, gone, "no state survives termination")

	// A second resume of the dead session logs nothing further.
	_, err = m.Resume(ctx, s.SessionID)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Len(t, recorder.ofType(audit.EventSessionTimeout), 1)
}

func TestResume_AbsoluteLifetimeOverridesActivity(t *testing.T) {
	m, _, recorder, now := newTestManager(t)
	ctx := context.Background()

	s, err := m.Establish(ctx, nil, "u-1", "nurse_01", "Nurse")
	require.NoError(t, err)

	// Stay continuously active: touch every 10 minutes for 4 hours.
	for i := 0; i < 24; i++ {
		*now = now.Add(10 * time.Minute)
		_, err = m.Resume(ctx, s.SessionID)
		require.NoError(t, err)
	}

	// One second past the absolute cap, still recently active.
	*now = now.Add(time.Second)
	_, err = m.Resume(ctx, s.SessionID)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.Len(t, recorder.ofType(audit.EventSessionMaxExceeded), 1)
	assert.Empty(t, recorder.ofType(audit.EventSessionTimeout))
}

func TestResume_UnknownSession(t *testing.T) {
	m, _, recorder, _ := newTestManager(t)

	_, err := m.Resume(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = m.Resume(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.Empty(t, recorder.events, "missing sessions are not audit events")
}

func TestTerminate_LogsLogout(t *testing.T) {
	m, store, recorder, _ := newTestManager(t)
	ctx := context.Background()

	s, err := m.Establish(ctx, nil, "u-1", "nurse_01", "Nurse")
	require.NoError(t, err)

	m.Terminate(ctx, s)

	logouts := recorder.ofType(audit.EventLogout)
	require.Len(t, logouts, 1)
	assert.Equal(t, "u-1", *logouts[0].UserID)
	assert.Contains(t, logouts[0].Details, "nurse_01")

	gone, err := store.Get(ctx, s.SessionID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestTerminateByID_UnknownIsNoOp(t *testing.T) {
	m, _, recorder, _ := newTestManager(t)

	m.TerminateByID(context.Background(), "missing")
	m.TerminateByID(context.Background(), "")

	assert.Empty(t, recorder.events)
}

func TestIdentity_NilSafe(t *testing.T) {
	m, _, _, _ := newTestManager(t)

	assert.Equal(t, Identity{}, m.Identity(nil))

	id := m.Identity(&Session{UserID: "u-1", Username: "nurse_01", Role: "Nurse"})
	assert.Equal(t, Identity{ID: "u-1", Name: "nurse_01", Role: "Nurse"}, id)
}
