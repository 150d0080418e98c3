package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/HektorTM/wos-dashboard-sub001/internal/handler"    // handlers implementing the endpoint logic
	"github.com/HektorTM/wos-dashboard-sub001/internal/middleware" // session gate and rate limiting
	"github.com/HektorTM/wos-dashboard-sub001/internal/repository"
	"github.com/HektorTM/wos-dashboard-sub001/internal/session"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance: the health check and the Mojang name lookup used
// by the login page.
func RegisterRoutes(e *echo.Echo, m *handler.MojangHandler) {
	// Load balancers and uptime monitors probe this endpoint.
	e.GET("/healthz", handler.Health)
	// The login page resolves player heads before any session exists.
	e.GET("/api/mojang/:name", m.Lookup)
}

// RegisterAuth registers the authentication endpoints.  Register, login and
// logout are reachable without a session; the identity probe sits behind
// the gate like every other protected route.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, gated *echo.Group) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Logout works with or without a valid session so a stale cookie can
	// always be cleared.
	g.POST("/logout", a.Logout)

	gated.GET("/auth/me", a.Me)
}

// Gated builds the protected /api group.  Every route registered on the
// returned group passes the session gate first and the rate limiter second,
// so unauthenticated requests never consume rate-limit quota.
func Gated(e *echo.Echo, store session.Store, users *repository.UserRepo, limit echo.MiddlewareFunc) *echo.Group {
	g := e.Group("/api")
	g.Use(middleware.SessionAuth(store, users))
	if limit != nil {
		g.Use(limit)
	}
	return g
}
