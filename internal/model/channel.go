package model

// Channel is a channel search result. When derived from a video via the
// name heuristic, ID is a synthetic placeholder ("channel_<n>" or
// "channel_from_<videoId>"), never a platform-assigned identifier.
type Channel struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	ThumbnailURL     string  `json:"thumbnailUrl"`
	SourceVideoID    string  `json:"videoId,omitempty"`
	SourceVideoTitle string  `json:"videoTitle,omitempty"`
	SourceVideoURL   string  `json:"videoUrl,omitempty"`
	Confidence       float64 `json:"confidence"`
	SubscriberCount  *int64  `json:"subscriberCount,omitempty"`
	VideoCount       *int64  `json:"videoCount,omitempty"`
	Description      string  `json:"description,omitempty"`
}

// ChannelSearchResponse is the API response for GET /api/search/channels.
type ChannelSearchResponse struct {
	Query        string    `json:"query"`
	MaxResults   int       `json:"maxResults"`
	TotalResults int       `json:"totalResults"`
	Channels     []Channel `json:"channels"`
	Cached       bool      `json:"cached"`
}
