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

// CooldownHandler serves CRUD over interaction cooldowns.
type CooldownHandler struct {
	Repo *repository.CooldownRepo
	Log  activity.Recorder
}

func NewCooldownHandler(repo *repository.CooldownRepo, log activity.Recorder) *CooldownHandler {
	return &CooldownHandler{Repo: repo, Log: log}
}

func (h *CooldownHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CooldownHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	cd, err := h.Repo.Get(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Cooldown")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, cd)
}

func (h *CooldownHandler) Create(c echo.Context) error {
	var cd model.Cooldown
	if err := c.Bind(&cd); err != nil {
		return badRequest(c, "invalid request body")
	}
	if cd.ID == "" || cd.Duration <= 0 {
		return badRequest(c, "id and a positive duration are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Create(ctx, &cd)
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Cooldown")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Cooldown", TargetID: cd.ID, User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, cd)
}

func (h *CooldownHandler) Update(c echo.Context) error {
	var cd model.Cooldown
	if err := c.Bind(&cd); err != nil {
		return badRequest(c, "invalid request body")
	}
	cd.ID = c.Param("id")
	if cd.Duration <= 0 {
		return badRequest(c, "a positive duration is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Update(ctx, &cd)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Cooldown")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Cooldown", TargetID: cd.ID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, cd)
}

func (h *CooldownHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Cooldown")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Cooldown", TargetID: id, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}
