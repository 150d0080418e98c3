package handler // handler defines http handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HektorTM/wos-dashboard-sub001/internal/middleware"
)

// reqCtx bounds a handler's database work to five seconds, derived from the
// request context so client disconnects cancel the statement.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// actor returns the authenticated uuid, or "" outside the gate.
func actor(c echo.Context) string {
	p, _ := middleware.PrincipalFrom(c)
	return p.UUID
}

// notFound writes the conventional 404 body, e.g. {"error":"Currency not found"}.
func notFound(c echo.Context, entity string) error {
	return c.JSON(http.StatusNotFound, echo.Map{"error": entity + " not found"})
}

// exists writes the conventional 409 body for duplicate natural keys.
func exists(c echo.Context, entity string) error {
	return c.JSON(http.StatusConflict, echo.Map{"error": entity + " already exists"})
}

// storeErr surfaces an infrastructure failure.  The underlying message is
// passed through; operators read these off the dashboard directly.
func storeErr(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

// badRequest writes a 400 with the given message.
func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}
