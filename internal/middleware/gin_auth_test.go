package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-portal/internal/audit"
	"clinic-portal/internal/rbac"
	"clinic-portal/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

type testPortal struct {
	router   *gin.Engine
	store    *session.MemoryStore
	manager  *session.Manager
	recorder *capturingRecorder
}

// newTestPortal wires the same middleware chain the app uses: auth
// first, then the role gate on the admin group.
func newTestPortal(t *testing.T, redirectURL string) *testPortal {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore()
	recorder := &capturingRecorder{}
	manager := session.NewManager(store, recorder, 15*time.Minute, 4*time.Hour)

	authMW := NewAuthMiddleware(manager)
	authMW.RedirectURL = redirectURL

	router := gin.New()

	api := router.Group("/api")
	api.Use(GinRequireAuth(authMW))

	api.GET("/me", func(c *gin.Context) {
		sess, ok := SessionFromContext(c.Request.Context())
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"role": sess.Role})
	})

	admin := api.Group("")
	admin.Use(GinRequireRole(recorder, rbac.RoleAdministrator))
	admin.GET("/audit-log", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return &testPortal{
		router:   router,
		store:    store,
		manager:  manager,
		recorder: recorder,
	}
}

func (p *testPortal) loginAs(t *testing.T, role string) *session.Session {
	t.Helper()
	s, err := p.manager.Establish(context.Background(), nil, "u-"+role, "user_"+role, role)
	require.NoError(t, err)
	return s
}

func get(router *gin.Engine, path string, sess *session.Session) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sess != nil {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.SessionID})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth_NoCookie(t *testing.T) {
	p := newTestPortal(t, "")

	rec := get(p.router, "/api/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ValidSession(t *testing.T) {
	p := newTestPortal(t, "")
	sess := p.loginAs(t, rbac.RoleNurse)

	rec := get(p.router, "/api/me", sess)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), rbac.RoleNurse)
}

func TestRequireAuth_IdleExpiredSession(t *testing.T) {
	p := newTestPortal(t, "")
	sess := p.loginAs(t, rbac.RoleNurse)

	// Backdate activity past the idle timeout; absolute expiry is
	// still in the future so the store keeps the record.
	sess.LastActiveAt = time.Now().Add(-16 * time.Minute)
	require.NoError(t, p.store.Update(context.Background(), *sess))

	rec := get(p.router, "/api/me", sess)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Len(t, p.recorder.ofType(audit.EventSessionTimeout), 1)
}

func TestRequireAuth_RedirectsBrowsers(t *testing.T) {
	p := newTestPortal(t, "/login")

	rec := get(p.router, "/api/me", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireRole_Forbidden(t *testing.T) {
	p := newTestPortal(t, "")
	sess := p.loginAs(t, rbac.RoleNurse)

	rec := get(p.router, "/api/audit-log", sess)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	denied := p.recorder.ofType(audit.EventAccessDenied)
	require.Len(t, denied, 1, "exactly one ACCESS_DENIED event")
	assert.Contains(t, denied[0].Details, "role 'Nurse'")
	assert.Contains(t, denied[0].Details, rbac.RoleAdministrator)
	assert.Contains(t, denied[0].Details, "/api/audit-log")
	require.NotNil(t, denied[0].UserID)
	assert.Equal(t, "u-Nurse", *denied[0].UserID)
}

func TestRequireRole_Allowed(t *testing.T) {
	p := newTestPortal(t, "")
	sess := p.loginAs(t, rbac.RoleAdministrator)

	rec := get(p.router, "/api/audit-log", sess)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, p.recorder.ofType(audit.EventAccessDenied))
}
