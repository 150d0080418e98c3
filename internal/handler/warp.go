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

// WarpHandler serves CRUD over teleport destinations.
type WarpHandler struct {
	Repo *repository.WarpRepo
	Log  activity.Recorder
}

func NewWarpHandler(repo *repository.WarpRepo, log activity.Recorder) *WarpHandler {
	return &WarpHandler{Repo: repo, Log: log}
}

func (h *WarpHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *WarpHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	w, err := h.Repo.Get(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Warp")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, w)
}

func (h *WarpHandler) Create(c echo.Context) error {
	var w model.Warp
	if err := c.Bind(&w); err != nil {
		return badRequest(c, "invalid request body")
	}
	if w.ID == "" || w.World == "" {
		return badRequest(c, "id and world are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Create(ctx, &w)
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Warp")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Warp", TargetID: w.ID, User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, w)
}

func (h *WarpHandler) Update(c echo.Context) error {
	var w model.Warp
	if err := c.Bind(&w); err != nil {
		return badRequest(c, "invalid request body")
	}
	w.ID = c.Param("id")
	if w.World == "" {
		return badRequest(c, "world is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Update(ctx, &w)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Warp")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Warp", TargetID: w.ID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, w)
}

// Delete removes a warp together with its condition list.
func (h *WarpHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Warp")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Warp", TargetID: id, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}
