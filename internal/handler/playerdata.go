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

// PlayerDataHandler serves per-player rows plus the unlockable and currency
// sub-collections.  Sub-collection mutations are logged as edits of the
// player record.
type PlayerDataHandler struct {
	Repo *repository.PlayerDataRepo
	Log  activity.Recorder
}

func NewPlayerDataHandler(repo *repository.PlayerDataRepo, log activity.Recorder) *PlayerDataHandler {
	return &PlayerDataHandler{Repo: repo, Log: log}
}

func (h *PlayerDataHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlayerDataHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Repo.Get(ctx, c.Param("uuid"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Player")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlayerDataHandler) Create(c echo.Context) error {
	var p model.PlayerData
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid request body")
	}
	if p.UUID == "" {
		return badRequest(c, "uuid is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Create(ctx, &p)
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Player")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Player", TargetID: p.UUID, User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, p)
}

func (h *PlayerDataHandler) Update(c echo.Context) error {
	var p model.PlayerData
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid request body")
	}
	p.UUID = c.Param("uuid")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Update(ctx, &p)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Player")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Player", TargetID: p.UUID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, p)
}

// Delete removes a player row and both sub-collections in one transaction.
func (h *PlayerDataHandler) Delete(c echo.Context) error {
	uuid := c.Param("uuid")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, uuid)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Player")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Player", TargetID: uuid, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}

func (h *PlayerDataHandler) ListUnlockables(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.ListUnlockables(ctx, c.Param("uuid"))
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlayerDataHandler) GrantUnlockable(c echo.Context) error {
	var u model.PlayerUnlockable
	if err := c.Bind(&u); err != nil {
		return badRequest(c, "invalid request body")
	}
	u.UUID = c.Param("uuid")
	if u.UnlockableID == "" {
		return badRequest(c, "unlockable_id is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.GrantUnlockable(ctx, u.UUID, u.UnlockableID)
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Unlockable grant")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Player", TargetID: u.UUID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusCreated, u)
}

func (h *PlayerDataHandler) RevokeUnlockable(c echo.Context) error {
	uuid := c.Param("uuid")
	unlockableID := c.Param("unlockableId")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.RevokeUnlockable(ctx, uuid, unlockableID)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Unlockable grant")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Player", TargetID: uuid, User: actor(c), Action: model.ActionEdited})
	return c.NoContent(http.StatusNoContent)
}

func (h *PlayerDataHandler) ListCurrencies(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.ListCurrencies(ctx, c.Param("uuid"))
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// SetCurrency upserts a balance.  Negative balances are rejected here so
// the game server stays the only writer allowed to push a player into debt.
func (h *PlayerDataHandler) SetCurrency(c echo.Context) error {
	var pc model.PlayerCurrency
	if err := c.Bind(&pc); err != nil {
		return badRequest(c, "invalid request body")
	}
	pc.UUID = c.Param("uuid")
	if pc.CurrencyID == "" {
		return badRequest(c, "currency_id is required")
	}
	if pc.Amount < 0 {
		return badRequest(c, "amount must not be negative")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Repo.SetCurrency(ctx, &pc); err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Player", TargetID: pc.UUID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, pc)
}
