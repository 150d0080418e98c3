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

// UnlockableHandler serves CRUD over unlockable flags.
type UnlockableHandler struct {
	Repo *repository.UnlockableRepo
	Log  activity.Recorder
}

func NewUnlockableHandler(repo *repository.UnlockableRepo, log activity.Recorder) *UnlockableHandler {
	return &UnlockableHandler{Repo: repo, Log: log}
}

func (h *UnlockableHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UnlockableHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Repo.Get(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Unlockable")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UnlockableHandler) Create(c echo.Context) error {
	var u model.Unlockable
	if err := c.Bind(&u); err != nil {
		return badRequest(c, "invalid request body")
	}
	if u.ID == "" {
		return badRequest(c, "id is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Create(ctx, &u)
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Unlockable")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Unlockable", TargetID: u.ID, User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, u)
}

func (h *UnlockableHandler) Update(c echo.Context) error {
	var u model.Unlockable
	if err := c.Bind(&u); err != nil {
		return badRequest(c, "invalid request body")
	}
	u.ID = c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Update(ctx, &u)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Unlockable")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Unlockable", TargetID: u.ID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, u)
}

func (h *UnlockableHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Unlockable")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Unlockable", TargetID: id, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}
