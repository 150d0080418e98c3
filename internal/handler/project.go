package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/HektorTM/wos-dashboard-sub001/internal/activity"
	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
	"github.com/HektorTM/wos-dashboard-sub001/internal/repository"
)

// ProjectHandler serves projects with their member and item collections.
type ProjectHandler struct {
	Repo *repository.ProjectRepo
	Log  activity.Recorder
}

func NewProjectHandler(repo *repository.ProjectRepo, log activity.Recorder) *ProjectHandler {
	return &ProjectHandler{Repo: repo, Log: log}
}

func (h *ProjectHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProjectHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Repo.Get(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Project")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// Create generates the project id server-side and registers the caller as
// owner.
func (h *ProjectHandler) Create(c echo.Context) error {
	var p model.Project
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid request body")
	}
	if p.Name == "" {
		return badRequest(c, "name is required")
	}
	p.ID = uuid.NewString()
	p.CreatedBy = actor(c)
	if p.Status == "" {
		p.Status = "open"
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Repo.Create(ctx, &p); err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Project", TargetID: p.ID, User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) Update(c echo.Context) error {
	var p model.Project
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid request body")
	}
	p.ID = c.Param("id")
	if p.Name == "" {
		return badRequest(c, "name is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Update(ctx, &p)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Project")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Project", TargetID: p.ID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Project")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Project", TargetID: id, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}

// --- members ---

func (h *ProjectHandler) ListMembers(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.ListMembers(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Project")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProjectHandler) AddMember(c echo.Context) error {
	var m model.ProjectMember
	if err := c.Bind(&m); err != nil {
		return badRequest(c, "invalid request body")
	}
	m.ProjectID = c.Param("id")
	if m.UUID == "" {
		return badRequest(c, "uuid is required")
	}
	if m.Role == "" {
		m.Role = "member"
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.AddMember(ctx, &m)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Project")
	}
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Member")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Project", TargetID: m.ProjectID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusCreated, m)
}

func (h *ProjectHandler) RemoveMember(c echo.Context) error {
	id := c.Param("id")
	member := c.Param("memberUuid")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.RemoveMember(ctx, id, member)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Member")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Project", TargetID: id, User: actor(c), Action: model.ActionEdited})
	return c.NoContent(http.StatusNoContent)
}

// --- items ---

func (h *ProjectHandler) ListItems(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.ListItems(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Project")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProjectHandler) AddItem(c echo.Context) error {
	var it model.ProjectItem
	if err := c.Bind(&it); err != nil {
		return badRequest(c, "invalid request body")
	}
	it.ProjectID = c.Param("id")
	if it.Type == "" || it.Target == "" {
		return badRequest(c, "type and target are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.AddItem(ctx, &it)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Project")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Project", TargetID: it.ProjectID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusCreated, it)
}

func (h *ProjectHandler) UpdateItem(c echo.Context) error {
	var it model.ProjectItem
	if err := c.Bind(&it); err != nil {
		return badRequest(c, "invalid request body")
	}
	it.ProjectID = c.Param("id")
	n, err := strconv.Atoi(c.Param("itemId"))
	if err != nil || n < 1 {
		return badRequest(c, "invalid itemId")
	}
	it.ItemID = n

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.UpdateItem(ctx, &it)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Item")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Project", TargetID: it.ProjectID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, it)
}

func (h *ProjectHandler) DeleteItem(c echo.Context) error {
	id := c.Param("id")
	n, err := strconv.Atoi(c.Param("itemId"))
	if err != nil || n < 1 {
		return badRequest(c, "invalid itemId")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.DeleteItem(ctx, id, n)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Item")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Project", TargetID: id, User: actor(c), Action: model.ActionEdited})
	return c.NoContent(http.StatusNoContent)
}
