package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/HektorTM/wos-dashboard-sub001/internal/repository"
)

// ActivityHandler serves read access to the activity log.  The log itself
// is append-only; nothing here mutates it.
type ActivityHandler struct {
	Repo *repository.ActivityRepo
}

func NewActivityHandler(repo *repository.ActivityRepo) *ActivityHandler {
	return &ActivityHandler{Repo: repo}
}

// Recent lists the newest entries, default 50, capped at 500.
func (h *ActivityHandler) Recent(c echo.Context) error {
	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return badRequest(c, "invalid limit")
		}
		limit = n
	}
	if limit > 500 {
		limit = 500
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.Recent(ctx, limit)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ByTarget lists the full history of one resource, oldest first.
func (h *ActivityHandler) ByTarget(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.ListByTarget(ctx, c.Param("type"), c.Param("targetId"))
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
