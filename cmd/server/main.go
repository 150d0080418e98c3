package main // Entry point package

import (
	"log" // Logging library
	"os"

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/HektorTM/wos-dashboard-sub001/internal/activity"
	"github.com/HektorTM/wos-dashboard-sub001/internal/config"
	"github.com/HektorTM/wos-dashboard-sub001/internal/database"
	"github.com/HektorTM/wos-dashboard-sub001/internal/handler"
	"github.com/HektorTM/wos-dashboard-sub001/internal/middleware"
	"github.com/HektorTM/wos-dashboard-sub001/internal/mojang"
	"github.com/HektorTM/wos-dashboard-sub001/internal/queue"
	"github.com/HektorTM/wos-dashboard-sub001/internal/repository"
	"github.com/HektorTM/wos-dashboard-sub001/internal/router"
	"github.com/HektorTM/wos-dashboard-sub001/internal/session"
	"github.com/HektorTM/wos-dashboard-sub001/internal/tracker"
)

func main() {
	cfg := config.Load() // Load environment config

	// Metadata store: users, activity, projects, requests, pagedata.
	metaDB, err := database.OpenMeta(cfg.MetaUser, cfg.MetaPass, cfg.MetaHost, cfg.MetaPort, cfg.MetaName)
	if err != nil {
		log.Fatalf("metadata db: %v", err)
	}
	defer metaDB.Close()
	if err := database.MigrateMeta(metaDB); err != nil {
		log.Fatalf("metadata migrate: %v", err)
	}
	if err := database.SeedAdmin(metaDB, cfg.BcryptCost); err != nil {
		log.Fatalf("admin seed: %v", err)
	}

	// Gameplay store: the SQLite file the game server plugin also reads.
	gameDB, err := database.OpenGame(cfg.GameDBPath)
	if err != nil {
		log.Fatalf("gameplay db: %v", err)
	}
	defer gameDB.Close()

	// Sessions live in Redis when one is reachable; otherwise an in-memory
	// store keeps a single instance functional (sessions drop on restart).
	var sessions session.Store
	rdb := config.NewRedisClient()
	if rdb != nil {
		sessions = session.NewRedisStore(rdb)
	} else {
		log.Println("redis unavailable, using in-memory sessions")
		sessions = session.NewMemoryStore()
	}

	// The broker mirror of the activity log is optional.
	mirror := os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != ""
	if mirror {
		go queue.StartActivityConsumer()
	}

	users := repository.NewUserRepo(metaDB)
	activityRepo := repository.NewActivityRepo(metaDB)
	audit := activity.NewLogger(activityRepo, mirror)

	var limit echo.MiddlewareFunc
	rlCfg := config.LoadRateLimitConfig()
	if rlCfg.Enabled && rdb != nil {
		limit = middleware.RateLimit(rlCfg, rdb)
	}

	e := echo.New()
	router.RegisterRoutes(e, handler.NewMojangHandler(mojang.NewClient("")))

	gated := router.Gated(e, sessions, users, limit)
	router.RegisterAuth(e, handler.NewAuthHandler(users, sessions, audit, cfg.SessionTTL, cfg.BcryptCost), gated)

	router.RegisterGameplay(gated, router.GameplayHandlers{
		Currencies:   handler.NewCurrencyHandler(repository.NewCurrencyRepo(gameDB), audit),
		Unlockables:  handler.NewUnlockableHandler(repository.NewUnlockableRepo(gameDB), audit),
		Citems:       handler.NewCitemHandler(repository.NewCitemRepo(gameDB), audit),
		Cosmetics:    handler.NewCosmeticHandler(repository.NewCosmeticRepo(gameDB), audit),
		Badges:       handler.NewBadgeHandler(repository.NewBadgeRepo(gameDB), audit),
		Titles:       handler.NewTitleHandler(repository.NewTitleRepo(gameDB), audit),
		Channels:     handler.NewChannelHandler(repository.NewChannelRepo(gameDB), audit),
		Interactions: handler.NewInteractionHandler(repository.NewInteractionRepo(gameDB), audit),
		GUIs:         handler.NewGUIHandler(repository.NewGUIRepo(gameDB), audit),
		Conditions:   handler.NewConditionHandler(repository.NewConditionRepo(gameDB), audit),
		Cooldowns:    handler.NewCooldownHandler(repository.NewCooldownRepo(gameDB), audit),
		Stats:        handler.NewStatHandler(repository.NewStatRepo(gameDB), audit),
		Fishing:      handler.NewFishingHandler(repository.NewFishingRepo(gameDB), audit),
		Warps:        handler.NewWarpHandler(repository.NewWarpRepo(gameDB), audit),
		Players:      handler.NewPlayerDataHandler(repository.NewPlayerDataRepo(gameDB), audit),
	})

	router.RegisterMeta(gated, router.MetaHandlers{
		Users:      handler.NewUserHandler(users, audit, cfg.BcryptCost),
		Activity:   handler.NewActivityHandler(activityRepo),
		Projects:   handler.NewProjectHandler(repository.NewProjectRepo(metaDB), audit),
		Requests:   handler.NewRequestHandler(repository.NewRequestRepo(metaDB), audit),
		Changelogs: handler.NewChangelogHandler(repository.NewChangelogRepo(metaDB), audit),
		Pages:      handler.NewPageDataHandler(repository.NewPageDataRepo(metaDB), audit),
		Git:        handler.NewGitHandler(tracker.NewClient("", cfg.GitRepo, cfg.GitToken)),
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
