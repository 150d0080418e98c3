package router

import (
	"github.com/labstack/echo/v4"

	"github.com/HektorTM/wos-dashboard-sub001/internal/handler"
)

// GameplayHandlers bundles every handler backed by the gameplay store so
// registration stays a single call from main.
type GameplayHandlers struct {
	Currencies   *handler.CurrencyHandler
	Unlockables  *handler.UnlockableHandler
	Citems       *handler.CitemHandler
	Cosmetics    *handler.CosmeticHandler
	Badges       *handler.BadgeHandler
	Titles       *handler.TitleHandler
	Channels     *handler.ChannelHandler
	Interactions *handler.InteractionHandler
	GUIs         *handler.GUIHandler
	Conditions   *handler.ConditionHandler
	Cooldowns    *handler.CooldownHandler
	Stats        *handler.StatHandler
	Fishing      *handler.FishingHandler
	Warps        *handler.WarpHandler
	Players      *handler.PlayerDataHandler
}

// RegisterGameplay wires the gameplay resources onto the gated group.
func RegisterGameplay(g *echo.Group, h GameplayHandlers) {
	cur := h.Currencies
	g.GET("/currencies", cur.List)
	g.POST("/currencies", cur.Create)
	g.GET("/currencies/:id", cur.Get)
	g.PUT("/currencies/:id", cur.Update)
	g.DELETE("/currencies/:id", cur.Delete)

	un := h.Unlockables
	g.GET("/unlockables", un.List)
	g.POST("/unlockables", un.Create)
	g.GET("/unlockables/:id", un.Get)
	g.PUT("/unlockables/:id", un.Update)
	g.DELETE("/unlockables/:id", un.Delete)

	ci := h.Citems
	g.GET("/citems", ci.List)
	g.POST("/citems", ci.Create)
	g.GET("/citems/:id", ci.Get)
	g.PUT("/citems/:id", ci.Update)
	g.DELETE("/citems/:id", ci.Delete)

	cos := h.Cosmetics
	g.GET("/cosmetics", cos.List)
	g.POST("/cosmetics", cos.Create)
	g.GET("/cosmetics/:id", cos.Get)
	g.PUT("/cosmetics/:id", cos.Update)
	g.DELETE("/cosmetics/:id", cos.Delete)

	b := h.Badges
	g.GET("/badges", b.List)
	g.POST("/badges", b.Create)
	g.GET("/badges/:id", b.Get)
	g.PUT("/badges/:id", b.Update)
	g.DELETE("/badges/:id", b.Delete)

	t := h.Titles
	g.GET("/titles", t.List)
	g.POST("/titles", t.Create)
	g.GET("/titles/:id", t.Get)
	g.PUT("/titles/:id", t.Update)
	g.DELETE("/titles/:id", t.Delete)

	ch := h.Channels
	g.GET("/channels", ch.List)
	g.POST("/channels", ch.Create)
	g.GET("/channels/:name", ch.Get)
	g.PUT("/channels/:name", ch.Update)
	g.DELETE("/channels/:name", ch.Delete)

	in := h.Interactions
	g.GET("/interactions", in.List)
	g.POST("/interactions", in.Create)
	g.GET("/interactions/:id", in.Get)
	g.DELETE("/interactions/:id", in.Delete)
	g.GET("/interactions/:id/actions", in.ListActions)
	g.POST("/interactions/:id/actions", in.AddAction)
	g.PUT("/interactions/:id/actions/:actionId", in.UpdateAction)
	g.DELETE("/interactions/:id/actions/:actionId", in.DeleteAction)
	g.GET("/interactions/:id/particles", in.ListParticles)
	g.POST("/interactions/:id/particles", in.AddParticle)
	g.PUT("/interactions/:id/particles/:particleId", in.UpdateParticle)
	g.DELETE("/interactions/:id/particles/:particleId", in.DeleteParticle)
	g.GET("/interactions/:id/holograms", in.ListHolograms)
	g.POST("/interactions/:id/holograms", in.AddHologram)
	g.PUT("/interactions/:id/holograms/:hologramId", in.UpdateHologram)
	g.DELETE("/interactions/:id/holograms/:hologramId", in.DeleteHologram)

	gu := h.GUIs
	g.GET("/guis", gu.List)
	g.POST("/guis", gu.Create)
	g.GET("/guis/:id", gu.Get)
	g.PUT("/guis/:id", gu.Update)
	g.DELETE("/guis/:id", gu.Delete)
	g.GET("/guis/:id/slots", gu.ListSlots)
	g.POST("/guis/:id/slots", gu.CreateSlot)
	g.GET("/guis/:id/slots/:slot", gu.GetSlot)
	g.PUT("/guis/:id/slots/:slot", gu.UpdateSlot)
	g.DELETE("/guis/:id/slots/:slot", gu.DeleteSlot)

	co := h.Conditions
	g.GET("/conditions/:parentType/:parentId", co.List)
	g.POST("/conditions/:parentType/:parentId", co.Add)
	g.PUT("/conditions/:parentType/:parentId/:conditionId", co.Update)
	g.DELETE("/conditions/:parentType/:parentId/:conditionId", co.Delete)

	cd := h.Cooldowns
	g.GET("/cooldowns", cd.List)
	g.POST("/cooldowns", cd.Create)
	g.GET("/cooldowns/:id", cd.Get)
	g.PUT("/cooldowns/:id", cd.Update)
	g.DELETE("/cooldowns/:id", cd.Delete)

	st := h.Stats
	g.GET("/stats", st.List)
	g.POST("/stats", st.Create)
	g.GET("/stats/:id", st.Get)
	g.PUT("/stats/:id", st.Update)
	g.DELETE("/stats/:id", st.Delete)

	f := h.Fishing
	g.GET("/fishing", f.List)
	g.POST("/fishing", f.Create)
	g.GET("/fishing/:id", f.Get)
	g.PUT("/fishing/:id", f.Update)
	g.DELETE("/fishing/:id", f.Delete)

	w := h.Warps
	g.GET("/warps", w.List)
	g.POST("/warps", w.Create)
	g.GET("/warps/:id", w.Get)
	g.PUT("/warps/:id", w.Update)
	g.DELETE("/warps/:id", w.Delete)

	p := h.Players
	g.GET("/playerdata", p.List)
	g.POST("/playerdata", p.Create)
	g.GET("/playerdata/:uuid", p.Get)
	g.PUT("/playerdata/:uuid", p.Update)
	g.DELETE("/playerdata/:uuid", p.Delete)
	g.GET("/playerdata/:uuid/unlockables", p.ListUnlockables)
	g.POST("/playerdata/:uuid/unlockables", p.GrantUnlockable)
	g.DELETE("/playerdata/:uuid/unlockables/:unlockableId", p.RevokeUnlockable)
	g.GET("/playerdata/:uuid/currencies", p.ListCurrencies)
	g.PUT("/playerdata/:uuid/currencies", p.SetCurrency)
}
