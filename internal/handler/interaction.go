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

// InteractionHandler serves the interaction parent rows and their three
// child collections (actions, particles, holograms).  Child mutations are
// logged as edits of the owning interaction, matching how the dashboard
// presents them.
type InteractionHandler struct {
	Repo *repository.InteractionRepo
	Log  activity.Recorder
}

func NewInteractionHandler(repo *repository.InteractionRepo, log activity.Recorder) *InteractionHandler {
	return &InteractionHandler{Repo: repo, Log: log}
}

func (h *InteractionHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InteractionHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	in, err := h.Repo.Get(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Interaction")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, in)
}

func (h *InteractionHandler) Create(c echo.Context) error {
	var in model.Interaction
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	if in.ID == "" {
		return badRequest(c, "id is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Create(ctx, in.ID)
	if errors.Is(err, repository.ErrDuplicate) {
		return exists(c, "Interaction")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Interaction", TargetID: in.ID, User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, in)
}

// Delete removes an interaction with its actions, particles, holograms and
// condition list in one transaction.
func (h *InteractionHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Interaction")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Interaction", TargetID: id, User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}

// edited reports a child-collection mutation against the parent interaction.
func (h *InteractionHandler) edited(c echo.Context, id string) {
	h.Log.Record(c.Request().Context(), activity.Entry{Type: "Interaction", TargetID: id, User: actor(c), Action: model.ActionEdited})
}

func childID(c echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n < 1 {
		return 0, errors.New("invalid " + name)
	}
	return n, nil
}

// --- actions ---

func (h *InteractionHandler) ListActions(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.ListActions(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Interaction")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InteractionHandler) AddAction(c echo.Context) error {
	var a model.InteractionAction
	if err := c.Bind(&a); err != nil {
		return badRequest(c, "invalid request body")
	}
	a.InteractionID = c.Param("id")
	if a.MatchType == "" {
		return badRequest(c, "match_type is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.AddAction(ctx, &a)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Interaction")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.edited(c, a.InteractionID)
	return c.JSON(http.StatusCreated, a)
}

func (h *InteractionHandler) UpdateAction(c echo.Context) error {
	var a model.InteractionAction
	if err := c.Bind(&a); err != nil {
		return badRequest(c, "invalid request body")
	}
	a.InteractionID = c.Param("id")
	n, err := childID(c, "actionId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	a.ActionID = n

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.UpdateAction(ctx, &a)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Action")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.edited(c, a.InteractionID)
	return c.JSON(http.StatusOK, a)
}

func (h *InteractionHandler) DeleteAction(c echo.Context) error {
	id := c.Param("id")
	n, err := childID(c, "actionId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.DeleteAction(ctx, id, n)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Action")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.edited(c, id)
	return c.NoContent(http.StatusNoContent)
}

// --- particles ---

func (h *InteractionHandler) ListParticles(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.ListParticles(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Interaction")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InteractionHandler) AddParticle(c echo.Context) error {
	var p model.InteractionParticle
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid request body")
	}
	p.InteractionID = c.Param("id")
	if p.Particle == "" {
		return badRequest(c, "particle is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.AddParticle(ctx, &p)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Interaction")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.edited(c, p.InteractionID)
	return c.JSON(http.StatusCreated, p)
}

func (h *InteractionHandler) UpdateParticle(c echo.Context) error {
	var p model.InteractionParticle
	if err := c.Bind(&p); err != nil {
		return badRequest(c, "invalid request body")
	}
	p.InteractionID = c.Param("id")
	n, err := childID(c, "particleId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	p.ParticleID = n

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.UpdateParticle(ctx, &p)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Particle")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.edited(c, p.InteractionID)
	return c.JSON(http.StatusOK, p)
}

func (h *InteractionHandler) DeleteParticle(c echo.Context) error {
	id := c.Param("id")
	n, err := childID(c, "particleId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.DeleteParticle(ctx, id, n)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Particle")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.edited(c, id)
	return c.NoContent(http.StatusNoContent)
}

// --- holograms ---

func (h *InteractionHandler) ListHolograms(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.ListHolograms(ctx, c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Interaction")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InteractionHandler) AddHologram(c echo.Context) error {
	var hg model.InteractionHologram
	if err := c.Bind(&hg); err != nil {
		return badRequest(c, "invalid request body")
	}
	hg.InteractionID = c.Param("id")
	if hg.Lines == "" {
		return badRequest(c, "lines is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Repo.AddHologram(ctx, &hg)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Interaction")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.edited(c, hg.InteractionID)
	return c.JSON(http.StatusCreated, hg)
}

func (h *InteractionHandler) UpdateHologram(c echo.Context) error {
	var hg model.InteractionHologram
	if err := c.Bind(&hg); err != nil {
		return badRequest(c, "invalid request body")
	}
	hg.InteractionID = c.Param("id")
	n, err := childID(c, "hologramId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	hg.HologramID = n

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.UpdateHologram(ctx, &hg)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Hologram")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.edited(c, hg.InteractionID)
	return c.JSON(http.StatusOK, hg)
}

func (h *InteractionHandler) DeleteHologram(c echo.Context) error {
	id := c.Param("id")
	n, err := childID(c, "hologramId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.DeleteHologram(ctx, id, n)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Hologram")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.edited(c, id)
	return c.NoContent(http.StatusNoContent)
}
