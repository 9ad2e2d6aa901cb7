package routes

import (
	"log"

	"med-ready/internal/config"
	"med-ready/internal/database"
	"med-ready/internal/delivery/http/handler"
	v1 "med-ready/internal/delivery/http/routes/v1"
	"med-ready/internal/infrastructure/cache"
	"med-ready/internal/infrastructure/github"
	"med-ready/internal/usecase"
	"med-ready/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg      config.Config
	db       database.DB
	cache    *cache.Redis
	search   github.SearchClient
	notifier usecase.AnalysisNotifier
	wsH      *ws.Handler
	logger   *log.Logger
}

func NewRegistry(
	cfg config.Config,
	db database.DB,
	redisCache *cache.Redis,
	search github.SearchClient,
	notifier usecase.AnalysisNotifier,
	wsHandler *ws.Handler,
	logger *log.Logger,
) *Registry {
	return &Registry{
		cfg:      cfg,
		db:       db,
		cache:    redisCache,
		search:   search,
		notifier: notifier,
		wsH:      wsHandler,
		logger:   logger,
	}
}

func (r *Registry) Register(app *fiber.App) error {
	if app == nil {
		return nil
	}

	handler.NewHealthHandler(r.db, r.cache).RegisterRoutes(app)

	if r.wsH != nil {
		app.Get("/ws/analysis", r.wsH.HandleAnalysisWS)
	}

	api := app.Group("/api")
	return RegisterV1(api.Group("/v1"), v1.Dependencies{
		Config:   r.cfg,
		DB:       r.db,
		Cache:    r.cache,
		Search:   r.search,
		Notifier: r.notifier,
		Logger:   r.logger,
	})
}
