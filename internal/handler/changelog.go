package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/HektorTM/wos-dashboard-sub001/internal/activity"
	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
	"github.com/HektorTM/wos-dashboard-sub001/internal/repository"
)

// ChangelogHandler serves published release notes.
type ChangelogHandler struct {
	Repo *repository.ChangelogRepo
	Log  activity.Recorder
}

func NewChangelogHandler(repo *repository.ChangelogRepo, log activity.Recorder) *ChangelogHandler {
	return &ChangelogHandler{Repo: repo, Log: log}
}

func changelogID(c echo.Context) (int64, error) {
	n, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || n < 1 {
		return 0, errors.New("invalid id")
	}
	return n, nil
}

func (h *ChangelogHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ChangelogHandler) Get(c echo.Context) error {
	id, err := changelogID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cl, err := h.Repo.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Changelog")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, cl)
}

func (h *ChangelogHandler) Create(c echo.Context) error {
	var cl model.Changelog
	if err := c.Bind(&cl); err != nil {
		return badRequest(c, "invalid request body")
	}
	if cl.Version == "" || cl.Title == "" {
		return badRequest(c, "version and title are required")
	}
	cl.Author = actor(c)

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Repo.Create(ctx, &cl)
	if err != nil {
		return storeErr(c, err)
	}
	cl.ID = id

	h.Log.Record(ctx, activity.Entry{Type: "Changelog", TargetID: strconv.FormatInt(id, 10), User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, cl)
}

func (h *ChangelogHandler) Update(c echo.Context) error {
	var cl model.Changelog
	if err := c.Bind(&cl); err != nil {
		return badRequest(c, "invalid request body")
	}
	id, err := changelogID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	cl.ID = id
	if cl.Version == "" || cl.Title == "" {
		return badRequest(c, "version and title are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.Update(ctx, &cl)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Changelog")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Changelog", TargetID: strconv.FormatInt(id, 10), User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, cl)
}

func (h *ChangelogHandler) Delete(c echo.Context) error {
	id, err := changelogID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Changelog")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Changelog", TargetID: strconv.FormatInt(id, 10), User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}
