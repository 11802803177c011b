package service

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// ResultCache maps a (kind, query, limit) key to a serialized result
// payload with TTL-based expiry. Get returns (nil, nil) on a miss,
// matching the Redis client convention.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
	Clear(ctx context.Context) (int, error)
	Stats(ctx context.Context) (CacheStats, error)
}

// CacheStats is a read-only snapshot of cache contents.
type CacheStats struct {
	Size int
	TTL  time.Duration
	Keys []string
}

// CacheKey builds the canonical cache key. The query is used verbatim:
// queries differing only in case or whitespace are distinct entries.
func CacheKey(kind, query string, limit int) string {
	return fmt.Sprintf("%s:%s:%d", kind, query, limit)
}

type memoryEntry struct {
	payload    []byte
	insertedAt time.Time
}

// MemoryCache is the default process-local ResultCache. Expiry is checked
// lazily on read; expired entries are treated as absent but stay in the
// map until overwritten or cleared, so Stats may count stale keys.
type MemoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || time.Since(e.insertedAt) >= c.ttl {
		return nil, nil
	}
	return e.payload, nil
}

func (c *MemoryCache) Put(_ context.Context, key string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{payload: payload, insertedAt: time.Now()}
	return nil
}

func (c *MemoryCache) Clear(_ context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := len(c.entries)
	c.entries = make(map[string]memoryEntry)
	return count, nil
}

func (c *MemoryCache) Stats(_ context.Context) (CacheStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return CacheStats{Size: len(c.entries), TTL: c.ttl, Keys: keys}, nil
}
