package provider

import (
	"context"
	"fmt"
	"strconv"

	"github.com/raitonoberu/ytsearch"
	"github.com/rs/zerolog"

	"github.com/himanshupdev123/YouFocus/internal/model"
	"github.com/himanshupdev123/YouFocus/pkg/countparse"
)

// YTSearch queries YouTube through the unofficial InnerTube search client,
// consuming no official API quota. It supports direct channel search, so
// callers only fall back to channel inference when configured to.
type YTSearch struct {
	log zerolog.Logger
}

func NewYTSearch(log zerolog.Logger) *YTSearch {
	return &YTSearch{log: log}
}

func (p *YTSearch) SearchVideos(ctx context.Context, query string, limit int) ([]model.Video, error) {
	result, err := ytsearch.VideoSearch(query).Next()
	if err != nil {
		return nil, &Error{Op: "video search", Err: err}
	}

	videos := make([]model.Video, 0, limit)
	for _, v := range result.Videos {
		if len(videos) >= limit {
			break
		}
		if v.ID == "" {
			p.log.Warn().Str("title", v.Title).Msg("skipping video result without id")
			continue
		}
		videos = append(videos, model.Video{
			ID:            v.ID,
			Title:         v.Title,
			ChannelID:     v.Channel.ID,
			ChannelName:   v.Channel.Title,
			ThumbnailURL:  bestThumbnail(v.Thumbnails),
			Duration:      formatDuration(v.Duration),
			PublishedTime: v.PublishedTime,
			ViewCount:     strconv.Itoa(v.ViewCount),
			URL:           v.URL,
		})
	}
	return videos, nil
}

func (p *YTSearch) SearchChannels(ctx context.Context, query string, limit int) ([]model.Channel, error) {
	result, err := ytsearch.ChannelSearch(query).Next()
	if err != nil {
		return nil, &Error{Op: "channel search", Err: err}
	}

	channels := make([]model.Channel, 0, limit)
	for _, ch := range result.Channels {
		if len(channels) >= limit {
			break
		}
		if ch.ID == "" {
			p.log.Warn().Str("title", ch.Title).Msg("skipping channel result without id")
			continue
		}
		mapped := model.Channel{
			ID:           ch.ID,
			Title:        ch.Title,
			ThumbnailURL: bestThumbnail(ch.Thumbnails),
			Description:  ch.Description,
			// Direct channel search is trusted.
			Confidence: 0.9,
		}
		if n, ok := countparse.Subscribers(ch.Subscribers); ok {
			mapped.SubscriberCount = &n
		}
		if ch.VideoCount > 0 {
			n := int64(ch.VideoCount)
			mapped.VideoCount = &n
		}
		channels = append(channels, mapped)
	}
	return channels, nil
}

// bestThumbnail prefers the highest-resolution thumbnail available.
func bestThumbnail(thumbnails []ytsearch.Thumbnail) string {
	best := ""
	bestArea := -1
	for _, t := range thumbnails {
		if t.URL == "" {
			continue
		}
		area := t.Width * t.Height
		if area > bestArea {
			best = t.URL
			bestArea = area
		}
	}
	return best
}

// formatDuration renders seconds as "M:SS" or "H:MM:SS". Live streams
// report zero duration and render empty.
func formatDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
