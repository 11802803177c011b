package model

// Video is the canonical shape for a single video search result.
// Provider-native fields are mapped into it by the provider adapter;
// missing fields default to empty strings.
type Video struct {
	ID            string `json:"id"`
	Title         string `json:"name"`
	ChannelID     string `json:"channelId,omitempty"`
	ChannelName   string `json:"channelName,omitempty"`
	ThumbnailURL  string `json:"img"`
	Duration      string `json:"duration"`
	PublishedTime string `json:"publishedTime"`
	ViewCount     string `json:"viewCount"`
	URL           string `json:"url"`
}

// VideoSearchResponse is the API response for GET /api/search/videos.
type VideoSearchResponse struct {
	Query        string  `json:"query"`
	MaxResults   int     `json:"maxResults"`
	TotalResults int     `json:"totalResults"`
	Videos       []Video `json:"videos"`
}
