// Package cache provides a distributed ephemeris.Cache implementation backed
// by Redis, for deployments that share one ephemeris cache across multiple
// processes. It implements the same ephemeris.Cache interface the
// in-process LRU cache implements, so a Handle can be pointed at either
// without any change to its own code.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/parashari-jyotish/jyotish/ephemeris"
	"github.com/parashari-jyotish/jyotish/log"
	"github.com/redis/go-redis/v9"
)

var logger = log.Logger()

var _ ephemeris.Cache = (*RedisCache)(nil)

const keyPrefix = "jyotish:ephemeris:"

// RedisCache is a Redis-backed ephemeris.Cache. Entries are stored as JSON
// under a jyotish:ephemeris: prefix so Clear can scope its sweep without
// touching unrelated keys in a shared Redis instance.
type RedisCache struct {
	client     *redis.Client
	defaultTTL time.Duration

	hits   int64
	misses int64
}

// NewRedisCache dials addr and verifies connectivity before returning.
func NewRedisCache(addr, password string, db int, defaultTTL time.Duration) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}

	logger.Info("redis ephemeris cache connected", "addr", addr, "db", db, "default_ttl", defaultTTL)

	return &RedisCache{client: rdb, defaultTTL: defaultTTL}, nil
}

func cacheKey(key string) string {
	return keyPrefix + key
}

// Get implements ephemeris.Cache. A decode failure is treated as a miss and
// the corrupted entry is removed, matching the teacher's cache-poisoning
// recovery behavior.
func (r *RedisCache) Get(ctx context.Context, key string) (interface{}, bool) {
	val, err := r.client.Get(ctx, cacheKey(key)).Result()
	if err != nil {
		r.misses++
		return nil, false
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(val), &decoded); err != nil {
		logger.Error("redis cache entry corrupted, evicting", "key", key, "error", err)
		r.client.Del(ctx, cacheKey(key))
		r.misses++
		return nil, false
	}

	r.hits++
	return decoded, true
}

// Set implements ephemeris.Cache. ttl of zero falls back to the cache's
// configured default.
func (r *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if ttl == 0 {
		ttl = r.defaultTTL
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		logger.Error("failed to marshal ephemeris cache value", "key", key, "error", err)
		return
	}

	if err := r.client.Set(ctx, cacheKey(key), encoded, ttl).Err(); err != nil {
		logger.Error("failed to set ephemeris cache key", "key", key, "error", err)
	}
}

// Delete implements ephemeris.Cache.
func (r *RedisCache) Delete(ctx context.Context, key string) bool {
	n, err := r.client.Del(ctx, cacheKey(key)).Result()
	return err == nil && n > 0
}

// Clear implements ephemeris.Cache, scanning only keys under the ephemeris
// prefix so it cannot stomp on other data sharing the Redis instance.
func (r *RedisCache) Clear(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return fmt.Errorf("listing ephemeris cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("clearing ephemeris cache: %w", err)
	}
	logger.Info("ephemeris cache cleared", "keys_deleted", len(keys))
	return nil
}

// GetStats implements ephemeris.Cache. Eviction count and memory usage are
// left at zero since Redis manages both outside this process.
func (r *RedisCache) GetStats(ctx context.Context) *ephemeris.CacheStats {
	keys, _ := r.client.Keys(ctx, keyPrefix+"*").Result()
	total := r.hits + r.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(r.hits) / float64(total)
	}
	return &ephemeris.CacheStats{
		Entries: int64(len(keys)),
		Hits:    r.hits,
		Misses:  r.misses,
		HitRate: hitRate,
	}
}

// Close releases the underlying Redis connection pool.
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// HealthCheck pings Redis.
func (r *RedisCache) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
