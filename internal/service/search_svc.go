package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/himanshupdev123/YouFocus/internal/config"
	"github.com/himanshupdev123/YouFocus/internal/model"
	"github.com/himanshupdev123/YouFocus/internal/provider"
)

// Over-fetch factor for channel inference: searching limit*3 videos yields
// a more diverse set of unique channels after deduplication.
const channelOverFetch = 3

// SearchService orchestrates the cache, the outbound rate gate, and the
// channel aggregation heuristic around a pluggable search backend.
type SearchService struct {
	provider provider.VideoSearcher
	cache    ResultCache
	gate     *RateGate
	log      zerolog.Logger
	direct   bool
}

// NewSearchService wires a search backend to the shared cache and rate
// gate. When direct is false, channel searches always go through video
// inference even if the backend supports channel search.
func NewSearchService(p provider.VideoSearcher, cache ResultCache, gate *RateGate, log zerolog.Logger, direct bool) *SearchService {
	return &SearchService{
		provider: p,
		cache:    cache,
		gate:     gate,
		log:      log,
		direct:   direct,
	}
}

// SearchVideos returns at most limit video results for the query. The
// second return reports whether the response was served from cache.
// Provider failures surface as *provider.Error; nothing is cached on
// failure.
func (s *SearchService) SearchVideos(ctx context.Context, query string, limit int) ([]model.Video, bool, error) {
	key := CacheKey("videos", query, limit)

	var cached []model.Video
	if hit, err := s.cacheGet(ctx, key, &cached); err == nil && hit {
		s.log.Info().Str("query", query).Msg("returning cached video results")
		return cached, true, nil
	}

	if err := s.gate.Acquire(ctx); err != nil {
		return nil, false, err
	}

	s.log.Info().Str("query", query).Int("limit", limit).Msg("searching videos")
	videos, err := s.provider.SearchVideos(ctx, query, limit)
	if err != nil {
		return nil, false, err
	}

	s.cachePut(ctx, key, videos)
	return videos, false, nil
}

// SearchChannels returns at most limit channel results for the query.
// Backends with direct channel search are queried as-is; otherwise
// channels are inferred from an over-fetched video search.
func (s *SearchService) SearchChannels(ctx context.Context, query string, limit int) ([]model.Channel, bool, error) {
	key := CacheKey("channels", query, limit)

	var cached []model.Channel
	if hit, err := s.cacheGet(ctx, key, &cached); err == nil && hit {
		s.log.Info().Str("query", query).Msg("returning cached channel results")
		return cached, true, nil
	}

	if cs, ok := s.provider.(provider.ChannelSearcher); ok && s.direct {
		if err := s.gate.Acquire(ctx); err != nil {
			return nil, false, err
		}

		s.log.Info().Str("query", query).Int("limit", limit).Msg("searching channels")
		channels, err := cs.SearchChannels(ctx, query, limit)
		if err != nil {
			return nil, false, err
		}

		s.cachePut(ctx, key, channels)
		return channels, false, nil
	}

	fetch := min(limit*channelOverFetch, config.MaxResultsLimit)
	videos, _, err := s.SearchVideos(ctx, query, fetch)
	if err != nil {
		return nil, false, err
	}

	channels := AggregateChannels(videos, limit)
	s.log.Info().Str("query", query).Int("channels", len(channels)).Msg("aggregated channels from videos")

	s.cachePut(ctx, key, channels)
	return channels, false, nil
}

// cacheGet reports whether key was present and fresh, decoding into dst on
// a hit. Cache failures are logged and treated as misses.
func (s *SearchService) cacheGet(ctx context.Context, key string, dst any) (bool, error) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache payload corrupt")
		return false, err
	}
	return true, nil
}

func (s *SearchService) cachePut(ctx context.Context, key string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}
	if err := s.cache.Put(ctx, key, data); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache put failed")
	}
}
