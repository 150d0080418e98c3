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

// CosmeticHandler serves CRUD over cosmetics.  Badges and titles share the
// same shape and live in their own handlers below.
type CosmeticHandler struct {
	Repo *repository.CosmeticRepo
	Log  activity.Recorder
}

func NewCosmeticHandler(repo *repository.CosmeticRepo, log activity.Recorder) *CosmeticHandler {
	return &CosmeticHandler{Repo: repo, Log: log}
}

func (h *CosmeticHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CosmeticHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	cos, err := h.Repo.Get(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Cosmetic")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, cos)
}

func (h *CosmeticHandler) Create(c echo.Context) error {
	var cos model.Cosmetic
	if err := c.Bind(&cos); err != nil {
		return badRequest(c, "invalid request body")
	}
	if cos.ID == "" || cos.Type == "" {
		return badRequest(c, "id and type are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Create(ctx, &cos)
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Cosmetic")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Cosmetic", TargetID: cos.ID, User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, cos)
}

func (h *CosmeticHandler) Update(c echo.Context) error {
	var cos model.Cosmetic
	if err := c.Bind(&cos); err != nil {
		return badRequest(c, "invalid request body")
	}
	cos.ID = c.Param("id")
	if cos.Type == "" {
		return badRequest(c, "type is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Update(ctx, &cos)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Cosmetic")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Cosmetic", TargetID: cos.ID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, cos)
}

func (h *CosmeticHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Cosmetic")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Cosmetic", TargetID: id, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}

// BadgeHandler serves CRUD over profile badges.
type BadgeHandler struct {
	Repo *repository.BadgeRepo
	Log  activity.Recorder
}

func NewBadgeHandler(repo *repository.BadgeRepo, log activity.Recorder) *BadgeHandler {
	return &BadgeHandler{Repo: repo, Log: log}
}

func (h *BadgeHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BadgeHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	b, err := h.Repo.Get(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Badge")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BadgeHandler) Create(c echo.Context) error {
	var b model.Badge
	if err := c.Bind(&b); err != nil {
		return badRequest(c, "invalid request body")
	}
	if b.ID == "" || b.Display == "" {
		return badRequest(c, "id and display are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Create(ctx, &b)
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Badge")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Badge", TargetID: b.ID, User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, b)
}

func (h *BadgeHandler) Update(c echo.Context) error {
	var b model.Badge
	if err := c.Bind(&b); err != nil {
		return badRequest(c, "invalid request body")
	}
	b.ID = c.Param("id")
	if b.Display == "" {
		return badRequest(c, "display is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Update(ctx, &b)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Badge")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Badge", TargetID: b.ID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, b)
}

func (h *BadgeHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Badge")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Badge", TargetID: id, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}

// TitleHandler serves CRUD over chat titles.
type TitleHandler struct {
	Repo *repository.TitleRepo
	Log  activity.Recorder
}

func NewTitleHandler(repo *repository.TitleRepo, log activity.Recorder) *TitleHandler {
	return &TitleHandler{Repo: repo, Log: log}
}

func (h *TitleHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TitleHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Repo.Get(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Title")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TitleHandler) Create(c echo.Context) error {
	var t model.Title
	if err := c.Bind(&t); err != nil {
		return badRequest(c, "invalid request body")
	}
	if t.ID == "" || t.Display == "" {
		return badRequest(c, "id and display are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Create(ctx, &t)
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Title")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Title", TargetID: t.ID, User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, t)
}

func (h *TitleHandler) Update(c echo.Context) error {
	var t model.Title
	if err := c.Bind(&t); err != nil {
		return badRequest(c, "invalid request body")
	}
	t.ID = c.Param("id")
	if t.Display == "" {
		return badRequest(c, "display is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Update(ctx, &t)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Title")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Title", TargetID: t.ID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, t)
}

func (h *TitleHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Title")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Title", TargetID: id, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}
