package main

import (
	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	"github.com/himanshupdev123/YouFocus/internal/config"
	"github.com/himanshupdev123/YouFocus/internal/handler"
	"github.com/himanshupdev123/YouFocus/internal/middleware"
	"github.com/himanshupdev123/YouFocus/internal/provider"
	"github.com/himanshupdev123/YouFocus/internal/router"
	"github.com/himanshupdev123/YouFocus/internal/service"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, handler.ServiceName)
	log := middleware.Logger

	var cache service.ResultCache
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rc, err := service.NewRedisCache(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, using in-memory cache")
			cache = service.NewMemoryCache(cfg.CacheTTL)
		} else {
			log.Info().Msg("redis connected, using redis cache")
			cache = rc
			rdb = rc.Client()
		}
	} else {
		cache = service.NewMemoryCache(cfg.CacheTTL)
	}

	gate := service.NewRateGate(cfg.RequestDelay)
	prov := provider.NewYTSearch(log)
	svc := service.NewSearchService(prov, cache, gate, log, cfg.DirectChannelSearch)

	handler.InitMetrics()

	app := fiber.New(fiber.Config{
		AppName:      "YouFocus Search API",
		ServerHeader: "YouFocus",
	})

	router.Setup(app, &router.Handlers{
		Search: handler.NewSearchHandler(svc),
		Cache:  handler.NewCacheHandler(cache),
		Health: handler.NewHealthHandler(rdb),
	}, cfg.CORSOrigins)

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Environment).
		Msg("search service starting")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
