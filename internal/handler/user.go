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

// UserHandler serves dashboard account management.  Deactivation and
// deletion take effect on the target's next gated request; no session is
// revoked eagerly.
type UserHandler struct {
	Repo       *repository.UserRepo
	Log        activity.Recorder
	BcryptCost int
}

func NewUserHandler(repo *repository.UserRepo, log activity.Recorder, cost int) *UserHandler {
	return &UserHandler{Repo: repo, Log: log, BcryptCost: cost}
}

func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Repo.GetByUUID(ctx, c.Param("uuid"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "User")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Update(c echo.Context) error {
	var req struct {
		Username    string `json:"username"`
		Permissions string `json:"permissions"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Username == "" {
		return badRequest(c, "username is required")
	}
	uuid := c.Param("uuid")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Update(ctx, uuid, req.Username, req.Permissions)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "User")
	}
	if errors.Is(err, repository.ErrDuplicate) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "username already taken"})
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "User", TargetID: uuid, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, echo.Map{"uuid": uuid, "username": req.Username, "permissions": req.Permissions})
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Password == "" {
		return badRequest(c, "password is required")
	}
	uuid := c.Param("uuid")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.UpdatePassword(ctx, uuid, req.Password, h.BcryptCost)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "User")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "User", TargetID: uuid, User: actor(c), Action: model.ActionEdited})
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) Deactivate(c echo.Context) error {
	return h.setActive(c, false, model.ActionDeactivated)
}

func (h *UserHandler) Reactivate(c echo.Context) error {
	return h.setActive(c, true, model.ActionReactivated)
}

func (h *UserHandler) setActive(c echo.Context, active bool, action string) error {
	uuid := c.Param("uuid")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.SetActive(ctx, uuid, active)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "User")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "User", TargetID: uuid, User: actor(c), Action: action})
	return c.JSON(http.StatusOK, echo.Map{"uuid": uuid, "is_active": active})
}

func (h *UserHandler) Delete(c echo.Context) error {
	uuid := c.Param("uuid")
	if actor(c) == uuid {
		return badRequest(c, "cannot delete your own account")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, uuid)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "User")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "User", TargetID: uuid, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}
