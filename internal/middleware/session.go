package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"context"      // context bounds the store and database lookups
	"database/sql" // sql.ErrNoRows signals a deleted user row
	"errors"       // errors.Is for sentinel comparisons
	"net/http"     // HTTP status codes for responses
	"time"         // lookup timeout

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
	"github.com/HektorTM/wos-dashboard-sub001/internal/session"
)

// SessionCookie is the name of the HTTP-only cookie carrying the opaque
// session token.
const SessionCookie = "wos_session"

// principalKey is the context key under which the authenticated principal
// is stored for downstream handlers.
const principalKey = "principal"

// UserSource resolves a session's uuid to the live user row.  The gate
// re-checks the row on every request so that deleting or deactivating an
// account revokes access immediately, regardless of session TTL.
// Implementations must return sql.ErrNoRows when no row exists.
type UserSource interface {
	GetByUUID(ctx context.Context, uuid string) (model.User, error)
}

// SessionAuth returns the authorization gate applied to every protected
// route group.  It validates the presented session token against the
// session store and the user table, attaches a normalized principal to the
// request context on success, and otherwise writes the JSON error body
// itself and prevents the downstream handler from running.
//
// Failure modes:
//   - no cookie or unknown token        -> 401 "Unauthorized"
//   - session points at a deleted user  -> session destroyed, 401 "Invalid Session"
//   - session points at a disabled user -> session destroyed, 403 "Account Disabled"
//   - store or database failure         -> 500 "Authentication Error" (fail closed)
func SessionAuth(store session.Store, users UserSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}
			token := cookie.Value

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			sess, err := store.Get(ctx, token)
			if err != nil {
				if errors.Is(err, session.ErrNotFound) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
				}
				// A broken session store must never let requests through.
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Authentication Error"})
			}

			u, err := users.GetByUUID(ctx, sess.UUID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					// Account was deleted while the session was still live.
					_ = store.Destroy(ctx, token)
					clearSessionCookie(c)
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid Session"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Authentication Error"})
			}
			if !u.IsActive {
				_ = store.Destroy(ctx, token)
				clearSessionCookie(c)
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Account Disabled"})
			}

			// Normalize the principal from the live row, not the session
			// snapshot: the username may have been renamed since login.
			c.Set(principalKey, model.Principal{UUID: u.UUID, Username: u.Username})
			return next(c)
		}
	}
}

// clearSessionCookie expires the session cookie on the client.
func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
