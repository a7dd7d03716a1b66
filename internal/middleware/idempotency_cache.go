package middleware

import (
	"sync"
	"time"

	"github.com/guttosm/packlist-service/internal/metrics"
)

const idempotencyCacheName = "idempotency"

// idempotencyCache stores cached HTTP responses for idempotency.
type idempotencyCache struct {
	mu    sync.RWMutex
	items map[string]*cachedResponse
	ttl   time.Duration
	now   func() time.Time
}

// newIdempotencyCache creates a cache and starts its cleanup loop.
func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	c := &idempotencyCache{
		items: make(map[string]*cachedResponse),
		ttl:   ttl,
		now:   time.Now,
	}
	go c.startCleanup()
	return c
}

// Get retrieves a cached response that has not expired.
func (c *idempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok {
		metrics.RecordCacheOperation(idempotencyCacheName, "get", "miss")
		return nil, false
	}
	if c.now().Sub(resp.Timestamp) > c.ttl {
		metrics.RecordCacheOperation(idempotencyCacheName, "get", "expired")
		return nil, false
	}

	metrics.RecordCacheOperation(idempotencyCacheName, "get", "hit")
	return resp, true
}

// Set stores a cached response.
func (c *idempotencyCache) Set(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.Timestamp = c.now()
	c.items[key] = resp
	metrics.UpdateCacheSize(idempotencyCacheName, len(c.items))
}

// Len returns the number of stored responses, expired ones included.
func (c *idempotencyCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *idempotencyCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

// cleanup removes expired entries.
func (c *idempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
	metrics.UpdateCacheSize(idempotencyCacheName, len(c.items))
}
