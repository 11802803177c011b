package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Search result keys are namespaced so Clear and Stats never touch
// unrelated data in a shared Redis.
const redisKeyPrefix = "search:"

// RedisCache is an optional Redis-backed ResultCache for multi-instance
// deployments. Expiry is delegated to Redis TTLs.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCache connects to Redis and verifies the connection with a short
// ping. Callers fall back to the in-memory cache on error.
func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{rdb: rdb, ttl: ttl}, nil
}

// Client returns the underlying Redis client for health checks.
func (c *RedisCache) Client() *redis.Client {
	return c.rdb
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

func (c *RedisCache) Put(ctx context.Context, key string, payload []byte) error {
	return c.rdb.Set(ctx, redisKeyPrefix+key, payload, c.ttl).Err()
}

func (c *RedisCache) Clear(ctx context.Context) (int, error) {
	keys, err := c.scanKeys(ctx)
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return 0, err
	}
	return len(keys), nil
}

func (c *RedisCache) Stats(ctx context.Context) (CacheStats, error) {
	keys, err := c.scanKeys(ctx)
	if err != nil {
		return CacheStats{}, err
	}

	trimmed := make([]string, len(keys))
	for i, k := range keys {
		trimmed[i] = strings.TrimPrefix(k, redisKeyPrefix)
	}
	return CacheStats{Size: len(trimmed), TTL: c.ttl, Keys: trimmed}, nil
}

func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

func (c *RedisCache) scanKeys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := c.rdb.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}
