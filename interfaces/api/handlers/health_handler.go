package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/VSP7988/maranatha-api/domain/ports"
	"github.com/VSP7988/maranatha-api/infrastructure/redis"
	"github.com/VSP7988/maranatha-api/pkg/utils"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db      *gorm.DB          // nil in no-database mode
	cache   *redis.Client     // nil when caching is disabled
	storage ports.StoragePort
}

func NewHealthHandler(db *gorm.DB, cache *redis.Client, storage ports.StoragePort) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, storage: storage}
}

// Check reports component status. The service stays "ok" without a
// database or cache since public content degrades to fallbacks.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	components := fiber.Map{
		"database": h.databaseStatus(ctx),
		"cache":    h.cacheStatus(ctx),
		"storage":  h.storage.ProviderName(),
	}

	return utils.SuccessResponse(c, fiber.Map{
		"status":     "ok",
		"components": components,
		"time":       time.Now().UTC(),
	})
}

func (h *HealthHandler) databaseStatus(ctx context.Context) string {
	if h.db == nil {
		return "disabled"
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return "error"
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return "unreachable"
	}
	return "ok"
}

func (h *HealthHandler) cacheStatus(ctx context.Context) string {
	if h.cache == nil {
		return "disabled"
	}
	if err := h.cache.Ping(ctx); err != nil {
		return "unreachable"
	}
	return "ok"
}
