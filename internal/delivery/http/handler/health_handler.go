package handler

import (
	"career-compass/internal/database"
	"career-compass/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, rc *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: rc}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	dbStatus := "ok"
	status := fiber.StatusOK
	if h.db == nil || h.db.Ping(c.Context()) != nil {
		dbStatus = "down"
		status = fiber.StatusServiceUnavailable
	}

	cacheStatus := "ok"
	if h.cache == nil || h.cache.Ping(c.Context()) != nil {
		cacheStatus = "bypassed"
	}

	overall := "ok"
	if status != fiber.StatusOK {
		overall = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":   overall,
		"service":  "career-compass",
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
