package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/himanshupdev123/YouFocus/internal/handler"
	"github.com/himanshupdev123/YouFocus/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Search *handler.SearchHandler
	Cache  *handler.CacheHandler
	Health *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health and metrics (outside the API group, no rate limit)
	app.Get("/health", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")

	// Search routes
	search := api.Group("/search", middleware.NewSearchRateLimiter().Handler())
	search.Get("/videos", h.Search.Videos)
	search.Get("/channels", h.Search.Channels)

	// Cache admin routes
	cache := api.Group("/cache", middleware.NewCacheAdminRateLimiter().Handler())
	cache.Post("/clear", h.Cache.Clear)
	cache.Get("/stats", h.Cache.Stats)
}
