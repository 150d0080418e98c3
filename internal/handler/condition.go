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

// ConditionHandler serves the condition lists attached to gameplay parents.
// The parent is addressed by (parentType, parentId) in the path, so one
// handler covers interactions, warps and every other condition owner.
type ConditionHandler struct {
	Repo *repository.ConditionRepo
	Log  activity.Recorder
}

func NewConditionHandler(repo *repository.ConditionRepo, log activity.Recorder) *ConditionHandler {
	return &ConditionHandler{Repo: repo, Log: log}
}

// edited reports a condition change against the owning parent resource.
func (h *ConditionHandler) edited(c echo.Context, parentType, parentID string) {
	h.Log.Record(c.Request().Context(), activity.Entry{Type: parentType, TargetID: parentID, User: actor(c), Action: model.ActionEdited})
}

func (h *ConditionHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.ListByParent(ctx, c.Param("parentType"), c.Param("parentId"))
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ConditionHandler) Add(c echo.Context) error {
	var cond model.Condition
	if err := c.Bind(&cond); err != nil {
		return badRequest(c, "invalid request body")
	}
	cond.ParentType = c.Param("parentType")
	cond.ParentID = c.Param("parentId")
	if cond.Type == "" || cond.Key == "" {
		return badRequest(c, "type and key are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Repo.Add(ctx, &cond); err != nil {
		return storeErr(c, err)
	}

	h.edited(c, cond.ParentType, cond.ParentID)
	return c.JSON(http.StatusCreated, cond)
}

func (h *ConditionHandler) Update(c echo.Context) error {
	var cond model.Condition
	if err := c.Bind(&cond); err != nil {
		return badRequest(c, "invalid request body")
	}
	cond.ParentType = c.Param("parentType")
	cond.ParentID = c.Param("parentId")
	n, err := strconv.Atoi(c.Param("conditionId"))
	if err != nil || n < 1 {
		return badRequest(c, "invalid conditionId")
	}
	cond.ConditionID = n
	if cond.Type == "" || cond.Key == "" {
		return badRequest(c, "type and key are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.Update(ctx, &cond)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Condition")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.edited(c, cond.ParentType, cond.ParentID)
	return c.JSON(http.StatusOK, cond)
}

func (h *ConditionHandler) Delete(c echo.Context) error {
	parentType := c.Param("parentType")
	parentID := c.Param("parentId")
	n, err := strconv.Atoi(c.Param("conditionId"))
	if err != nil || n < 1 {
		return badRequest(c, "invalid conditionId")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.Delete(ctx, parentType, parentID, n)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Condition")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.edited(c, parentType, parentID)
	return c.NoContent(http.StatusNoContent)
}
