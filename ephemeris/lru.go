package ephemeris

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/parashari-jyotish/jyotish/observability"
	"go.opentelemetry.io/otel/attribute"
)

// LRUCache is the default Handle cache: a size-bounded, TTL-aware cache
// backed by hashicorp/golang-lru/v2. It never grows past its configured
// capacity and never runs a background sweep; eviction is purely on
// insert, which is the tradeoff that library makes.
type LRUCache struct {
	inner    *lru.Cache[string, lruEntry]
	mu       sync.Mutex
	stats    CacheStats
	observer observability.ObserverInterface
}

type lruEntry struct {
	value     interface{}
	expiresAt time.Time
}

// NewLRUCache creates an LRUCache holding at most size entries.
func NewLRUCache(size int) (*LRUCache, error) {
	inner, err := lru.New[string, lruEntry](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache{inner: inner, observer: observability.Observer()}, nil
}

func (c *LRUCache) Get(ctx context.Context, key string) (interface{}, bool) {
	_, span := c.observer.CreateSpan(ctx, "ephemeris.lru.Get")
	defer span.End()

	entry, ok := c.inner.Get(key)
	if !ok || time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		c.stats.Misses++
		c.mu.Unlock()
		span.SetAttributes(attribute.Bool("cache_hit", false))
		if ok {
			c.inner.Remove(key)
		}
		return nil, false
	}

	c.mu.Lock()
	c.stats.Hits++
	c.stats.LastAccess = time.Now()
	c.mu.Unlock()
	span.SetAttributes(attribute.Bool("cache_hit", true))
	return entry.value, true
}

func (c *LRUCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	_, span := c.observer.CreateSpan(ctx, "ephemeris.lru.Set")
	defer span.End()

	evicted := c.inner.Add(key, lruEntry{value: value, expiresAt: time.Now().Add(ttl)})
	if evicted {
		c.mu.Lock()
		c.stats.Evictions++
		c.mu.Unlock()
	}
	span.SetAttributes(attribute.Bool("evicted", evicted))
}

func (c *LRUCache) Delete(ctx context.Context, key string) bool {
	return c.inner.Remove(key)
}

func (c *LRUCache) Clear(ctx context.Context) error {
	c.inner.Purge()
	return nil
}

func (c *LRUCache) GetStats(ctx context.Context) *CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	stats := c.stats
	stats.Entries = int64(c.inner.Len())
	total := stats.Hits + stats.Misses
	if total > 0 {
		stats.HitRate = float64(stats.Hits) / float64(total)
	}
	return &stats
}

func (c *LRUCache) Close() error {
	c.inner.Purge()
	return nil
}

var _ Cache = (*LRUCache)(nil)
