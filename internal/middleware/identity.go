package middleware

// identity.go defines helpers for reading the authenticated principal that
// SessionAuth stored in the request context.  Handlers running outside the
// gate (register, login) receive the zero Principal.

import (
	"github.com/labstack/echo/v4"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

// PrincipalFrom returns the authenticated principal for the request and
// whether one is present.
func PrincipalFrom(c echo.Context) (model.Principal, bool) {
	p, ok := c.Get(principalKey).(model.Principal)
	return p, ok && p.UUID != ""
}

// SetPrincipal is used by tests and by handlers that establish identity
// themselves (login) to inject a principal into the context.
func SetPrincipal(c echo.Context, p model.Principal) {
	c.Set(principalKey, p)
}
