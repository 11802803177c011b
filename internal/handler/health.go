package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
)

const (
	ServiceName    = "youtube-search-service"
	ServiceVersion = "1.0.0"
)

type HealthHandler struct {
	rdb     *redis.Client
	startAt time.Time
}

// NewHealthHandler takes the Redis client backing the result cache, or nil
// when the in-memory cache is in use.
func NewHealthHandler(rdb *redis.Client) *HealthHandler {
	return &HealthHandler{
		rdb:     rdb,
		startAt: time.Now(),
	}
}

// Live handles GET /health — the plain health check the search API contract
// defines.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": ServiceName,
		"version": ServiceVersion,
	})
}

// Ready handles GET /health/ready — readiness probe with a cache-backend
// check. The in-memory cache has no external dependency and reports
// "disabled" for redis.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	overallStatus := "healthy"
	redisCheck := checkRedis(ctx, h.rdb)
	if redisCheck["status"] == "down" {
		overallStatus = "degraded"
	}

	resp := fiber.Map{
		"status":         overallStatus,
		"checks":         fiber.Map{"redis": redisCheck},
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
		"version":        ServiceVersion,
	}

	status := fiber.StatusOK
	if overallStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}

func checkRedis(ctx context.Context, rdb *redis.Client) fiber.Map {
	if rdb == nil {
		return fiber.Map{"status": "disabled"}
	}

	start := time.Now()
	err := rdb.Ping(ctx).Err()
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return fiber.Map{
			"status":     "down",
			"latency_ms": latency,
			"error":      "connection failed",
		}
	}
	return fiber.Map{
		"status":     "up",
		"latency_ms": latency,
	}
}
