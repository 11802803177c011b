package provider

import (
	"context"
	"fmt"

	"github.com/himanshupdev123/YouFocus/internal/model"
)

// VideoSearcher is the minimum capability every search backend must expose.
type VideoSearcher interface {
	SearchVideos(ctx context.Context, query string, limit int) ([]model.Video, error)
}

// ChannelSearcher is an optional capability for backends that support
// searching channels directly. Backends without it fall back to channel
// inference from video results.
type ChannelSearcher interface {
	SearchChannels(ctx context.Context, query string, limit int) ([]model.Channel, error)
}

// Error wraps a failed outbound search call. Callers branch on it with
// errors.As; the underlying cause is preserved via Unwrap.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
