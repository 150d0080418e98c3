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

// RequestHandler serves the sign-off workflow.  A request leaves "open"
// exactly once, through approve or deny; racing resolvers get a 409.
type RequestHandler struct {
	Repo *repository.RequestRepo
	Log  activity.Recorder
}

func NewRequestHandler(repo *repository.RequestRepo, log activity.Recorder) *RequestHandler {
	return &RequestHandler{Repo: repo, Log: log}
}

func requestID(c echo.Context) (int64, error) {
	n, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || n < 1 {
		return 0, errors.New("invalid id")
	}
	return n, nil
}

func (h *RequestHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Repo.List(ctx, c.QueryParam("status"))
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RequestHandler) Get(c echo.Context) error {
	id, err := requestID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	req, err := h.Repo.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Request")
	}
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, req)
}

func (h *RequestHandler) Create(c echo.Context) error {
	var req model.Request
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Type == "" || req.TargetID == "" {
		return badRequest(c, "type and target_id are required")
	}
	req.Requester = actor(c)
	req.Status = model.RequestOpen

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Repo.Create(ctx, &req)
	if err != nil {
		return storeErr(c, err)
	}
	req.ID = id

	h.Log.Record(ctx, activity.Entry{Type: "Request", TargetID: strconv.FormatInt(id, 10), User: actor(c), Action: model.ActionCreated})
	return c.JSON(http.StatusCreated, req)
}

func (h *RequestHandler) Approve(c echo.Context) error {
	return h.resolve(c, model.RequestApproved, model.ActionApproved)
}

func (h *RequestHandler) Deny(c echo.Context) error {
	return h.resolve(c, model.RequestDenied, model.ActionDenied)
}

func (h *RequestHandler) resolve(c echo.Context, status, action string) error {
	id, err := requestID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.Resolve(ctx, id, actor(c), status)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Request")
	}
	if errors.Is(err, repository.ErrConflict) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "Request already resolved"})
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Request", TargetID: strconv.FormatInt(id, 10), User: actor(c), Action: action})
	return c.JSON(http.StatusOK, echo.Map{"id": id, "status": status})
}

func (h *RequestHandler) Delete(c echo.Context) error {
	id, err := requestID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	err = h.Repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Request")
	}
	if err != nil {
		return storeErr(c, err)
	}

	h.Log.Record(ctx, activity.Entry{Type: "Request", TargetID: strconv.FormatInt(id, 10), User: actor(c), Action: model.ActionDeleted})
	return c.NoContent(http.StatusNoContent)
}
