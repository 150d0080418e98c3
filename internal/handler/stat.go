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

// StatHandler serves CRUD over tracked statistics.
type StatHandler struct {
	Repo *repository.StatRepo
	Log  activity.Recorder
}

func NewStatHandler(repo *repository.StatRepo, log activity.Recorder) *StatHandler {
	return &StatHandler{Repo: repo, Log: log}
}

func (h *StatHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Repo.Get(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Stat")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *StatHandler) Create(c echo.Context) error {
	var s model.Stat
	if err := c.Bind(&s); err != nil {
		return badRequest(c, "invalid request body")
	}
	if s.ID == "" || s.Type == "" {
		return badRequest(c, "id and type are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Create(ctx, &s)
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Stat")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Stat", TargetID: s.ID, User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, s)
}

func (h *StatHandler) Update(c echo.Context) error {
	var s model.Stat
	if err := c.Bind(&s); err != nil {
		return badRequest(c, "invalid request body")
	}
	s.ID = c.Param("id")
	if s.Type == "" {
		return badRequest(c, "type is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Update(ctx, &s)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Stat")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Stat", TargetID: s.ID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, s)
}

func (h *StatHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Stat")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Stat", TargetID: id, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}
