package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HektorTM/wos-dashboard-sub001/internal/activity"
	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
	"github.com/HektorTM/wos-dashboard-sub001/internal/repository"
)

// PageDataHandler serves per-page edit metadata and the page edit lock.
type PageDataHandler struct {
	Repo *repository.PageDataRepo
	Log  activity.Recorder
}

func NewPageDataHandler(repo *repository.PageDataRepo, log activity.Recorder) *PageDataHandler {
	return &PageDataHandler{Repo: repo, Log: log}
}

func (h *PageDataHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PageDataHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	pd, err := h.Repo.Get(ctx, c.Param("page"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Page")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, pd)
}

// Touch records the caller as last editor of a page, inserting the row on
// first contact.
func (h *PageDataHandler) Touch(c echo.Context) error {
	page := c.Param("page")

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Repo.Touch(ctx, page, actor(c)); err != nil {
		return storeErr(c, err)
	}

	pd, err := h.Repo.Get(ctx, page)
	if err != nil {
		return storeErr(c, err)
	}
	h.Log.Record(ctx, activity.Entry{Type: "Page", TargetID: page, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, pd)
}

// Lock claims the page edit lock for the caller.  Re-locking a page the
// caller already holds succeeds; a lock held by someone else is a 409.
func (h *PageDataHandler) Lock(c echo.Context) error {
	page := c.Param("page")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Lock(ctx, page, actor(c))
	if errors.Is(err, repository.ErrConflict) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "Page is locked by another user"})
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Page", TargetID: page, User: actor(c), Action: model.ActionLocked})
	return c.JSON(http.StatusOK, echo.Map{"page": page, "locked": true})
}

// Unlock releases the page edit lock.  Unlocking an unlocked page is a
// no-op success.
func (h *PageDataHandler) Unlock(c echo.Context) error {
	page := c.Param("page")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Unlock(ctx, page)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Page")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Page", TargetID: page, User: actor(c), Action: model.ActionUnlocked})
	return c.JSON(http.StatusOK, echo.Map{"page": page, "locked": false})
}
