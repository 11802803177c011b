package service

import (
	"context"
	"testing"
	"time"
)

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name  string
		kind  string
		query string
		limit int
		want  string
	}{
		{"videos", "videos", "lo-fi beats", 25, "videos:lo-fi beats:25"},
		{"channels", "channels", "mkbhd", 10, "channels:mkbhd:10"},
		// Query is used verbatim: case and whitespace are significant.
		{"case sensitive", "videos", "MKBHD", 25, "videos:MKBHD:25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CacheKey(tt.kind, tt.query, tt.limit); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMemoryCache_MissOnUnknownKey(t *testing.T) {
	c := NewMemoryCache(time.Hour)

	data, err := c.Get(context.Background(), "videos:nope:25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data != nil {
		t.Errorf("expected miss, got %q", data)
	}
}

func TestMemoryCache_PutGetRoundtrip(t *testing.T) {
	c := NewMemoryCache(time.Hour)
	ctx := context.Background()

	if err := c.Put(ctx, "k", []byte(`["a"]`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	data, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != `["a"]` {
		t.Errorf("got %q, want %q", data, `["a"]`)
	}
}

func TestMemoryCache_ExpiredEntryIsAbsent(t *testing.T) {
	c := NewMemoryCache(30 * time.Millisecond)
	ctx := context.Background()

	c.Put(ctx, "k", []byte("v"))
	time.Sleep(50 * time.Millisecond)

	data, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if data != nil {
		t.Errorf("expected expired entry to be absent, got %q", data)
	}

	// Expiry is logical only: the entry stays until overwritten or cleared.
	stats, _ := c.Stats(ctx)
	if stats.Size != 1 {
		t.Errorf("stats size = %d, want 1 (no implicit purge)", stats.Size)
	}
}

func TestMemoryCache_PutRefreshesTimestamp(t *testing.T) {
	c := NewMemoryCache(50 * time.Millisecond)
	ctx := context.Background()

	c.Put(ctx, "k", []byte("old"))
	time.Sleep(30 * time.Millisecond)
	c.Put(ctx, "k", []byte("new"))
	time.Sleep(30 * time.Millisecond)

	// 60ms after the first put but only 30ms after the second: still fresh.
	data, _ := c.Get(ctx, "k")
	if string(data) != "new" {
		t.Errorf("got %q, want refreshed entry %q", data, "new")
	}
}

func TestMemoryCache_ClearReturnsCount(t *testing.T) {
	c := NewMemoryCache(time.Hour)
	ctx := context.Background()

	c.Put(ctx, "a", []byte("1"))
	c.Put(ctx, "b", []byte("2"))
	c.Put(ctx, "c", []byte("3"))

	count, err := c.Clear(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	stats, _ := c.Stats(ctx)
	if stats.Size != 0 {
		t.Errorf("size after clear = %d, want 0", stats.Size)
	}
}

func TestMemoryCache_StatsSnapshot(t *testing.T) {
	ttl := time.Hour
	c := NewMemoryCache(ttl)
	ctx := context.Background()

	c.Put(ctx, "videos:q:25", []byte("1"))
	c.Put(ctx, "channels:q:25", []byte("2"))

	stats, err := c.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Size != 2 {
		t.Errorf("size = %d, want 2", stats.Size)
	}
	if stats.TTL != ttl {
		t.Errorf("ttl = %v, want %v", stats.TTL, ttl)
	}
	if len(stats.Keys) != 2 {
		t.Errorf("keys = %v, want 2 entries", stats.Keys)
	}
}
