package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports liveness. It carries no dependency checks so the probe
// cannot flap while a backing store restarts.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
