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

// CitemHandler serves CRUD over custom item definitions.
type CitemHandler struct {
	Repo *repository.CitemRepo
	Log  activity.Recorder
}

func NewCitemHandler(repo *repository.CitemRepo, log activity.Recorder) *CitemHandler {
	return &CitemHandler{Repo: repo, Log: log}
}

func (h *CitemHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CitemHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	ci, err := h.Repo.Get(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Citem")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, ci)
}

func (h *CitemHandler) Create(c echo.Context) error {
	var ci model.Citem
	if err := c.Bind(&ci); err != nil {
		return badRequest(c, "invalid request body")
	}
	if ci.ID == "" || ci.Material == "" {
		return badRequest(c, "id and material are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Create(ctx, &ci)
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Citem")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Citem", TargetID: ci.ID, User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, ci)
}

func (h *CitemHandler) Update(c echo.Context) error {
	var ci model.Citem
	if err := c.Bind(&ci); err != nil {
		return badRequest(c, "invalid request body")
	}
	ci.ID = c.Param("id")
	if ci.Material == "" {
		return badRequest(c, "material is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Update(ctx, &ci)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Citem")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Citem", TargetID: ci.ID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, ci)
}

func (h *CitemHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Citem")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Citem", TargetID: id, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}
