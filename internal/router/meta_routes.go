package router

import (
	"github.com/labstack/echo/v4"

	"github.com/HektorTM/wos-dashboard-sub001/internal/handler"
)

// MetaHandlers bundles the handlers backed by the metadata store plus the
// external proxies.
type MetaHandlers struct {
	Users      *handler.UserHandler
	Activity   *handler.ActivityHandler
	Projects   *handler.ProjectHandler
	Requests   *handler.RequestHandler
	Changelogs *handler.ChangelogHandler
	Pages      *handler.PageDataHandler
	Git        *handler.GitHandler
}

// RegisterMeta wires the dashboard metadata resources onto the gated group.
func RegisterMeta(g *echo.Group, h MetaHandlers) {
	u := h.Users
	g.GET("/users", u.List)
	g.GET("/users/:uuid", u.Get)
	g.PUT("/users/:uuid", u.Update)
	g.DELETE("/users/:uuid", u.Delete)
	g.PUT("/users/:uuid/password", u.ChangePassword)
	g.POST("/users/:uuid/deactivate", u.Deactivate)
	g.POST("/users/:uuid/reactivate", u.Reactivate)

	a := h.Activity
	g.GET("/activity/recent", a.Recent)
	g.GET("/activity/:type/:targetId", a.ByTarget)

	p := h.Projects
	g.GET("/projects", p.List)
	g.POST("/projects", p.Create)
	g.GET("/projects/:id", p.Get)
	g.PUT("/projects/:id", p.Update)
	g.DELETE("/projects/:id", p.Delete)
	g.GET("/projects/:id/members", p.ListMembers)
	g.POST("/projects/:id/members", p.AddMember)
	g.DELETE("/projects/:id/members/:memberUuid", p.RemoveMember)
	g.GET("/projects/:id/items", p.ListItems)
	g.POST("/projects/:id/items", p.AddItem)
	g.PUT("/projects/:id/items/:itemId", p.UpdateItem)
	g.DELETE("/projects/:id/items/:itemId", p.DeleteItem)

	r := h.Requests
	g.GET("/requests", r.List)
	g.POST("/requests", r.Create)
	g.GET("/requests/:id", r.Get)
	g.POST("/requests/:id/approve", r.Approve)
	g.POST("/requests/:id/deny", r.Deny)
	g.DELETE("/requests/:id", r.Delete)

	cl := h.Changelogs
	g.GET("/changelogs", cl.List)
	g.POST("/changelogs", cl.Create)
	g.GET("/changelogs/:id", cl.Get)
	g.PUT("/changelogs/:id", cl.Update)
	g.DELETE("/changelogs/:id", cl.Delete)

	pg := h.Pages
	g.GET("/pagedata", pg.List)
	g.GET("/pagedata/:page", pg.Get)
	g.PUT("/pagedata/:page", pg.Touch)
	g.POST("/pagedata/:page/lock", pg.Lock)
	g.POST("/pagedata/:page/unlock", pg.Unlock)

	gi := h.Git
	g.GET("/git/issues", gi.ListIssues)
	g.POST("/git/issues", gi.CreateIssue)
}
