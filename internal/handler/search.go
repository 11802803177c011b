package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/himanshupdev123/YouFocus/internal/middleware"
	"github.com/himanshupdev123/YouFocus/internal/model"
	"github.com/himanshupdev123/YouFocus/internal/service"
)

type SearchHandler struct {
	svc *service.SearchService
}

func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Videos handles GET /api/search/videos?q=X&maxResults=N
func (h *SearchHandler) Videos(c fiber.Ctx) error {
	query, errMsg := middleware.ValidateSearchQuery(fiber.Query[string](c, "q"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}
	maxResults, errMsg := middleware.ParseMaxResults(fiber.Query[string](c, "maxResults"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	videos, cached, err := h.svc.SearchVideos(c.Context(), query, maxResults)
	if err != nil {
		return middleware.InternalErrorResponse(c, err)
	}

	observeSearch("videos", cached)

	if videos == nil {
		videos = []model.Video{}
	}
	return c.JSON(model.VideoSearchResponse{
		Query:        query,
		MaxResults:   maxResults,
		TotalResults: len(videos),
		Videos:       videos,
	})
}

// Channels handles GET /api/search/channels?q=X&maxResults=N
func (h *SearchHandler) Channels(c fiber.Ctx) error {
	query, errMsg := middleware.ValidateSearchQuery(fiber.Query[string](c, "q"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}
	maxResults, errMsg := middleware.ParseMaxResults(fiber.Query[string](c, "maxResults"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	channels, cached, err := h.svc.SearchChannels(c.Context(), query, maxResults)
	if err != nil {
		return middleware.InternalErrorResponse(c, err)
	}

	observeSearch("channels", cached)

	if channels == nil {
		channels = []model.Channel{}
	}
	return c.JSON(model.ChannelSearchResponse{
		Query:        query,
		MaxResults:   maxResults,
		TotalResults: len(channels),
		Channels:     channels,
		Cached:       cached,
	})
}

func observeSearch(kind string, cached bool) {
	if Metrics.SearchesTotal == nil {
		return
	}
	Metrics.SearchesTotal.WithLabelValues(kind).Inc()
	if cached {
		Metrics.CacheHits.Inc()
	} else {
		Metrics.CacheMisses.Inc()
	}
}
