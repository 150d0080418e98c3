package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HektorTM/wos-dashboard-sub001/internal/activity"
	"github.com/HektorTM/wos-dashboard-sub001/internal/middleware"
	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
	"github.com/HektorTM/wos-dashboard-sub001/internal/repository"
	"github.com/HektorTM/wos-dashboard-sub001/internal/session"
	"github.com/HektorTM/wos-dashboard-sub001/internal/utils"
)

// AuthHandler serves registration, login, logout and the identity probe.
type AuthHandler struct {
	Users      *repository.UserRepo // user rows in the metadata store
	Sessions   session.Store        // opaque token -> session data
	Log        activity.Recorder    // dashboard activity feed
	TTL        time.Duration        // session lifetime
	BcryptCost int                  // hashing cost for new passwords
}

func NewAuthHandler(users *repository.UserRepo, sessions session.Store, log activity.Recorder, ttl time.Duration, cost int) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions, Log: log, TTL: ttl, BcryptCost: cost}
}

type credentials struct {
	Username string `json:"username"` // login name, unique
	Password string `json:"password"` // plaintext, hashed before storage
}

// Register creates a new account.  New accounts start active with no
// permissions; an admin grants them afterwards.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return badRequest(c, "username and password are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Users.Create(ctx, req.Username, req.Password, "", h.BcryptCost)
	if errors.Is(err, repository.ErrDuplicate) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "username already taken"})
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "User", TargetID: id, User: id, Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, echo.Map{"uuid": id, "username": req.Username})
}

// Login verifies credentials and opens a session.  A deactivated account is
// rejected before any session is created.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return badRequest(c, "username and password are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if err != nil {
		return storeErr(c, err)
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if !u.IsActive {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Account is deactivated. Please contact admin."})
	}

	token, err := utils.NewSessionToken()
	if err != nil {
		return storeErr(c, err)
	}
	if err := h.Sessions.Create(ctx, token, session.Data{UUID: u.UUID, Username: u.Username}, h.TTL); err != nil {
		return storeErr(c, err)
	}
	if err := h.Users.UpdateLastLogin(ctx, u.UUID); err != nil {
		c.Logger().Warnf("last_login update failed for %s: %v", u.UUID, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{
		"uuid":        u.UUID,
		"username":    u.Username,
		"permissions": u.Permissions,
	})
}

// Logout destroys the session if one is presented.  Always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := h.Sessions.Destroy(ctx, cookie.Value); err != nil {
			c.Logger().Warnf("session destroy failed: %v", err)
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated principal.  Registered behind the gate.
func (h *AuthHandler) Me(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}
	return c.JSON(http.StatusOK, p)
}
