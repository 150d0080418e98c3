package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HektorTM/wos-dashboard-sub001/internal/mojang"
)

// MojangHandler resolves Minecraft usernames to profile uuids.  Public:
// the login page uses it to render player heads before authentication.
type MojangHandler struct {
	Client *mojang.Client
}

func NewMojangHandler(client *mojang.Client) *MojangHandler {
	return &MojangHandler{Client: client}
}

func (h *MojangHandler) Lookup(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return badRequest(c, "name is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Client.LookupName(ctx, name)
	if errors.Is(err, mojang.ErrProfileNotFound) {
		return notFound(c, "Profile")
	}
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}
