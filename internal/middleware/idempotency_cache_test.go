//go:build !integration

package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdempotencyCache(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	c := &idempotencyCache{items: make(map[string]*cachedResponse), ttl: time.Minute, now: func() time.Time { return now }}

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", &cachedResponse{StatusCode: 201, Body: []byte("{}")})
	resp, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 201, resp.StatusCode)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	c.cleanup()
	assert.Equal(t, 0, c.Len())
}
