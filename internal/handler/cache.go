package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/himanshupdev123/YouFocus/internal/middleware"
	"github.com/himanshupdev123/YouFocus/internal/service"
)

type CacheHandler struct {
	cache service.ResultCache
}

func NewCacheHandler(cache service.ResultCache) *CacheHandler {
	return &CacheHandler{cache: cache}
}

// Clear handles POST /api/cache/clear
func (h *CacheHandler) Clear(c fiber.Ctx) error {
	count, err := h.cache.Clear(c.Context())
	if err != nil {
		return middleware.InternalErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Cache cleared. Removed %d entries.", count),
	})
}

// Stats handles GET /api/cache/stats
func (h *CacheHandler) Stats(c fiber.Ctx) error {
	stats, err := h.cache.Stats(c.Context())
	if err != nil {
		return middleware.InternalErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"cacheSize":     stats.Size,
		"cacheDuration": int(stats.TTL.Seconds()),
		"entries":       stats.Keys,
	})
}
