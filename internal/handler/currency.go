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

// CurrencyHandler serves CRUD over server currency definitions.
type CurrencyHandler struct {
	Repo *repository.CurrencyRepo
	Log  activity.Recorder
}

func NewCurrencyHandler(repo *repository.CurrencyRepo, log activity.Recorder) *CurrencyHandler {
	return &CurrencyHandler{Repo: repo, Log: log}
}

func (h *CurrencyHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CurrencyHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	cur, err := h.Repo.Get(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Currency")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, cur)
}

// Create inserts a currency.  The caller supplies the natural key; a taken
// id is a 409, and the activity entry is written only after the insert
// committed.
func (h *CurrencyHandler) Create(c echo.Context) error {
	var cur model.Currency
	if err := c.Bind(&cur); err != nil {
		return badRequest(c, "invalid request body")
	}
	if cur.ID == "" || cur.Name == "" || cur.ShortName == "" || cur.Color == "" {
		return badRequest(c, "id, name, short_name and color are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Create(ctx, &cur)
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Currency")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Currency", TargetID: cur.ID, User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, cur)
}

func (h *CurrencyHandler) Update(c echo.Context) error {
	var cur model.Currency
	if err := c.Bind(&cur); err != nil {
		return badRequest(c, "invalid request body")
	}
	cur.ID = c.Param("id")
	if cur.Name == "" || cur.ShortName == "" || cur.Color == "" {
		return badRequest(c, "name, short_name and color are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Update(ctx, &cur)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Currency")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Currency", TargetID: cur.ID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, cur)
}

// Delete removes a currency and its player balances.  Deleting an id that
// is already gone is a 404 and leaves no activity trace.
func (h *CurrencyHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Currency")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Currency", TargetID: id, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}
