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

// FishingHandler serves CRUD over catchable fish definitions.
type FishingHandler struct {
	Repo *repository.FishingRepo
	Log  activity.Recorder
}

func NewFishingHandler(repo *repository.FishingRepo, log activity.Recorder) *FishingHandler {
	return &FishingHandler{Repo: repo, Log: log}
}

func (h *FishingHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FishingHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	f, err := h.Repo.Get(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Fishing entry")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FishingHandler) Create(c echo.Context) error {
	var f model.Fishing
	if err := c.Bind(&f); err != nil {
		return badRequest(c, "invalid request body")
	}
	if f.ID == "" || f.Rarity == "" {
		return badRequest(c, "id and rarity are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Create(ctx, &f)
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Fishing entry")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Fishing", TargetID: f.ID, User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, f)
}

func (h *FishingHandler) Update(c echo.Context) error {
	var f model.Fishing
	if err := c.Bind(&f); err != nil {
		return badRequest(c, "invalid request body")
	}
	f.ID = c.Param("id")
	if f.Rarity == "" {
		return badRequest(c, "rarity is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Update(ctx, &f)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Fishing entry")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Fishing", TargetID: f.ID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, f)
}

func (h *FishingHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Fishing entry")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Fishing", TargetID: id, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}
