package app

import (
	"context"
	"log"
	"time"

	"med-ready/internal/config"
	"med-ready/internal/database"
	dbpostgres "med-ready/internal/database/postgres"
	"med-ready/internal/infrastructure/cache"
	"med-ready/internal/infrastructure/github"
	"med-ready/internal/ws"
)

// Container owns the process-wide infrastructure: the database pool,
// the best-effort Redis cache, the external search client, and the
// websocket hub.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB     database.DB
	Cache  *cache.Redis
	Search github.SearchClient

	Hub      *ws.Hub
	Notifier *ws.Notifier
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		TTL:      cfg.Redis.TTL,
	}, logger)

	search := github.NewSearchClient(cfg.GitHub.BaseURL, cfg.GitHub.Token, logger)

	hub := ws.NewHub(logger)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    redisCache,
		Search:   search,
		Hub:      hub,
		Notifier: ws.NewNotifier(hub),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
