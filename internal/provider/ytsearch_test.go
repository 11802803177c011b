package provider

import (
	"testing"

	"github.com/raitonoberu/ytsearch"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"live stream", 0, ""},
		{"under a minute", 42, "0:42"},
		{"minutes", 253, "4:13"},
		{"exact hour", 3600, "1:00:00"},
		{"hours", 3725, "1:02:05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDuration(tt.seconds); got != tt.want {
				t.Errorf("formatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestBestThumbnail(t *testing.T) {
	thumbs := []ytsearch.Thumbnail{
		{URL: "small", Width: 120, Height: 90},
		{URL: "large", Width: 480, Height: 360},
		{URL: "medium", Width: 320, Height: 180},
		{URL: "", Width: 640, Height: 480},
	}

	if got := bestThumbnail(thumbs); got != "large" {
		t.Errorf("got %q, want highest-resolution thumbnail", got)
	}
	if got := bestThumbnail(nil); got != "" {
		t.Errorf("got %q for empty list, want empty string", got)
	}
}
