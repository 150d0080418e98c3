package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HektorTM/wos-dashboard-sub001/internal/tracker"
)

// GitHandler proxies the configured issue tracker so dashboard users can
// file and browse bug reports without their own GitHub credentials.
type GitHandler struct {
	Client *tracker.Client
}

func NewGitHandler(client *tracker.Client) *GitHandler {
	return &GitHandler{Client: client}
}

func (h *GitHandler) ListIssues(c echo.Context) error {
	if !h.Client.Configured() {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "issue tracker is not configured"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	issues, err := h.Client.ListIssues(ctx, c.QueryParam("state"))
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, issues)
}

func (h *GitHandler) CreateIssue(c echo.Context) error {
	if !h.Client.Configured() {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "issue tracker is not configured"})
	}

	var req struct {
		Title  string   `json:"title"`
		Body   string   `json:"body"`
		Labels []string `json:"labels"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Title == "" {
		return badRequest(c, "title is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	issue, err := h.Client.CreateIssue(ctx, req.Title, req.Body, req.Labels)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, issue)
}
