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

// ChannelHandler serves CRUD over chat channels, keyed by name.
type ChannelHandler struct {
	Repo *repository.ChannelRepo
	Log  activity.Recorder
}

func NewChannelHandler(repo *repository.ChannelRepo, log activity.Recorder) *ChannelHandler {
	return &ChannelHandler{Repo: repo, Log: log}
}

func (h *ChannelHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ChannelHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	ch, err := h.Repo.Get(ctx, c.Param("name"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Channel")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, ch)
}

func (h *ChannelHandler) Create(c echo.Context) error {
	var ch model.Channel
	if err := c.Bind(&ch); err != nil {
		return badRequest(c, "invalid request body")
	}
	if ch.Name == "" || ch.Prefix == "" {
		return badRequest(c, "name and prefix are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Create(ctx, &ch)
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Channel")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Channel", TargetID: ch.Name, User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, ch)
}

func (h *ChannelHandler) Update(c echo.Context) error {
	var ch model.Channel
	if err := c.Bind(&ch); err != nil {
		return badRequest(c, "invalid request body")
	}
	ch.Name = c.Param("name")
	if ch.Prefix == "" {
		return badRequest(c, "prefix is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Update(ctx, &ch)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Channel")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Channel", TargetID: ch.Name, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, ch)
}

func (h *ChannelHandler) Delete(c echo.Context) error {
	name := c.Param("name")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Channel")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Channel", TargetID: name, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}
