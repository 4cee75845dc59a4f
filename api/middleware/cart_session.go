package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/amendezc/audiophile-backend/api/responses"
	"github.com/amendezc/audiophile-backend/internal/cart"
	pkgerrors "github.com/amendezc/audiophile-backend/pkg/errors"
	"github.com/amendezc/audiophile-backend/pkg/logger"
)

const (
	// SessionHeader carries the signed cart session token. The cookie is the
	// fallback for browser clients that do not manage the header themselves.
	SessionHeader = "X-Cart-Session"
	SessionCookie = "audiophile_session"
)

type contextKey string

const ctxCartSession contextKey = "cart_session"

// CartSessionFromContext returns the resolved cart session id.
func CartSessionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxCartSession).(string); ok {
		return v
	}
	return ""
}

// WithCartSession injects a session id, used by handler tests.
func WithCartSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxCartSession, sessionID)
}

// CartSession resolves the caller's cart session token from header or cookie.
// A missing, expired or tampered token mints a fresh session instead of
// failing: an anonymous shopper always gets a cart. The active token is
// echoed back on every response so clients can persist it.
func CartSession(sessions *cart.Sessions, ttl time.Duration, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := tokenFromRequest(r)
			sessionID := ""
			if token != "" {
				id, err := sessions.Verify(token)
				if err == nil {
					sessionID = id
				} else if logg != nil {
					logg.Warn(ctx, "cart session token rejected, minting a new session")
				}
			}

			if sessionID == "" {
				id, fresh, err := sessions.Mint(time.Now())
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint cart session"))
					return
				}
				sessionID = id
				token = fresh
			}

			w.Header().Set(SessionHeader, token)
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    token,
				Path:     "/",
				MaxAge:   int(ttl / time.Second),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			if logg != nil {
				ctx = logg.WithCartSession(ctx, sessionID)
			}
			ctx = WithCartSession(ctx, sessionID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(SessionHeader)); token != "" {
		return token
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return strings.TrimSpace(cookie.Value)
	}
	return ""
}
