package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/himanshupdev123/YouFocus/internal/model"
)

// AggregateChannels derives unique channel records from video search
// results. Videos are scanned in input order; each contributes at most one
// channel, deduplicated by exact name. Scanning stops once limit channels
// are collected, then the result is stable-sorted by confidence descending
// so equal-confidence channels keep their input order.
func AggregateChannels(videos []model.Video, limit int) []model.Channel {
	channels := make([]model.Channel, 0, limit)
	seen := make(map[string]struct{}, limit)

	for _, v := range videos {
		if len(channels) >= limit {
			break
		}

		name := strings.TrimSpace(v.ChannelName)
		var id string
		var confidence float64
		if name != "" {
			// The provider labeled the video with its channel.
			id = fmt.Sprintf("channel_%d", len(channels))
			confidence = ConfidenceFromLabel(name, v.Title)
		} else {
			name = GuessChannelName(v.Title)
			id = "channel_from_" + v.ID
			confidence = ConfidenceFromTitle(v.Title, name)
		}

		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}

		channels = append(channels, model.Channel{
			ID:               id,
			Title:            name,
			ThumbnailURL:     v.ThumbnailURL,
			SourceVideoID:    v.ID,
			SourceVideoTitle: v.Title,
			SourceVideoURL:   v.URL,
			Confidence:       confidence,
		})
		seen[name] = struct{}{}
	}

	sort.SliceStable(channels, func(i, j int) bool {
		return channels[i].Confidence > channels[j].Confidence
	})

	return channels
}
