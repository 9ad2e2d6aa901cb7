package handler

import (
	"context"
	"time"

	"med-ready/internal/database"
	"med-ready/internal/infrastructure/cache"
	"med-ready/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	redis *cache.Redis
}

func NewHealthHandler(db database.DB, redis *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "down"
	} else if err := h.db.Ping(ctx); err != nil {
		dbStatus = "down"
	}

	// Cache is best-effort; a down Redis degrades, never fails, health.
	cacheStatus := "ok"
	if h.redis == nil || h.redis.Ping(ctx) != nil {
		cacheStatus = "degraded"
	}

	status := fiber.StatusOK
	if dbStatus != "ok" {
		status = fiber.StatusServiceUnavailable
	}
	return response.Success(c, status, response.MessageOK, map[string]string{
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
