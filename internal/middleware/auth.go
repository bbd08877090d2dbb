package middleware

import (
	"context"
	"net/http"

	"clinic-portal/internal/session"
)

// unexported, collision-proof context key
type sessionContextKeyType struct{}

var sessionKey = sessionContextKeyType{}

// SessionFromContext extracts the authenticated session from context.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok
}

type AuthMiddleware struct {
	Manager *session.Manager

	// RedirectURL, when set, sends unauthenticated browsers to the
	// login entry point instead of returning 401. API groups leave it
	// empty.
	RedirectURL string
}

func NewAuthMiddleware(manager *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{Manager: manager}
}

// RequireAuth gates a handler on a live session. The session manager
// applies the idle and absolute timeout rules on every pass; expired
// sessions are terminated and logged before the caller is turned away.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read session cookie
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			a.deny(w, r)
			return
		}

		// 2. Load + touch: timeouts enforced here
		sess, err := a.Manager.Resume(r.Context(), cookie.Value)
		if err != nil || sess == nil {
			a.deny(w, r)
			return
		}

		// 3. Attach session to context
		ctx := context.WithValue(r.Context(), sessionKey, sess)

		// 4. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *AuthMiddleware) deny(w http.ResponseWriter, r *http.Request) {
	if a.RedirectURL != "" {
		http.Redirect(w, r, a.RedirectURL, http.StatusSeeOther)
		return
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}
