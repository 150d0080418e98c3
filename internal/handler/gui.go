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

// GUIHandler serves GUI definitions and their slot entries.
type GUIHandler struct {
	Repo *repository.GUIRepo
	Log  activity.Recorder
}

func NewGUIHandler(repo *repository.GUIRepo, log activity.Recorder) *GUIHandler {
	return &GUIHandler{Repo: repo, Log: log}
}

func (h *GUIHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GUIHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	g, err := h.Repo.Get(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "GUI")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GUIHandler) Create(c echo.Context) error {
	var g model.GUI
	if err := c.Bind(&g); err != nil {
		return badRequest(c, "invalid request body")
	}
	if g.ID == "" || g.Title == "" {
		return badRequest(c, "id and title are required")
	}
	// Inventory rows hold 9 slots each.
	if g.Size <= 0 || g.Size%9 != 0 || g.Size > 54 {
		return badRequest(c, "size must be a multiple of 9 between 9 and 54")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Create(ctx, &g)
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "GUI")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "GUI", TargetID: g.ID, User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, g)
}

func (h *GUIHandler) Update(c echo.Context) error {
	var g model.GUI
	if err := c.Bind(&g); err != nil {
		return badRequest(c, "invalid request body")
	}
	g.ID = c.Param("id")
	if g.Title == "" {
		return badRequest(c, "title is required")
	}
	if g.Size <= 0 || g.Size%9 != 0 || g.Size > 54 {
		return badRequest(c, "size must be a multiple of 9 between 9 and 54")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Update(ctx, &g)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "GUI")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "GUI", TargetID: g.ID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, g)
}

func (h *GUIHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "GUI")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "GUI", TargetID: id, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}

// --- slots ---

func slotParam(c echo.Context) (int, error) {
	n, err := strconv.Atoi(c.Param("slot"))
	if err != nil || n < 0 {
		return 0, errors.New("invalid slot")
	}
	return n, nil
}

func (h *GUIHandler) ListSlots(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.ListSlots(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "GUI")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GUIHandler) GetSlot(c echo.Context) error {
	n, err := slotParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Repo.GetSlot(ctx, c.Param("id"), n)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Slot")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

// CreateSlot fills a slot.  The slot index comes from the body so the
// client can post several slots against the same collection URL.
func (h *GUIHandler) CreateSlot(c echo.Context) error {
	var s model.GUISlot
	if err := c.Bind(&s); err != nil {
		return badRequest(c, "invalid request body")
	}
	s.GUIID = c.Param("id")
	if s.Slot < 0 || s.Material == "" {
		return badRequest(c, "a non-negative slot and material are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.CreateSlot(ctx, &s)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "GUI")
	}
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Slot")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "GUI", TargetID: s.GUIID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusCreated, s)
}

func (h *GUIHandler) UpdateSlot(c echo.Context) error {
	var s model.GUISlot
	if err := c.Bind(&s); err != nil {
		return badRequest(c, "invalid request body")
	}
	s.GUIID = c.Param("id")
	n, err := slotParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	s.Slot = n
	if s.Material == "" {
		return badRequest(c, "material is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.UpdateSlot(ctx, &s)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Slot")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "GUI", TargetID: s.GUIID, User: actor(c), Action: model.ActionEdited})
	return c.JSON(http.StatusOK, s)
}

func (h *GUIHandler) DeleteSlot(c echo.Context) error {
	id := c.Param("id")
	n, err := slotParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.DeleteSlot(ctx, id, n)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Slot")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "GUI", TargetID: id, User: actor(c), Action: model.ActionEdited})
	return c.NoContent(http.StatusNoContent)
}
