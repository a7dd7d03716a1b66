//go:build !integration

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idempotentRouter(calls *int32, status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), Idempotency(IdempotencyConfig{
		Cache:   &idempotencyCache{items: make(map[string]*cachedResponse), ttl: time.Minute, now: time.Now},
		TTL:     time.Minute,
		Enabled: true,
	}))
	handler := func(c *gin.Context) {
		n := atomic.AddInt32(calls, 1)
		c.JSON(status, gin.H{"call": n})
	}
	router.POST("/api/proformas", handler)
	router.GET("/api/proformas", handler)
	return router
}

func send(router *gin.Engine, method, body, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/proformas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	t.Run("replays a repeated request", func(t *testing.T) {
		var calls int32
		router := idempotentRouter(&calls, http.StatusCreated)

		first := send(router, http.MethodPost, `{"number":"PF-1"}`, "key-1")
		second := send(router, http.MethodPost, `{"number":"PF-1"}`, "key-1")

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		assert.Equal(t, http.StatusCreated, second.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Equal(t, "true", second.Header().Get(IdempotencyReplayedHeader))
		assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
		assert.NotEqual(t, first.Header().Get(RequestIDHeader), second.Header().Get(RequestIDHeader))
	})

	t.Run("a different body is a different request", func(t *testing.T) {
		var calls int32
		router := idempotentRouter(&calls, http.StatusCreated)

		send(router, http.MethodPost, `{"number":"PF-1"}`, "key-1")
		send(router, http.MethodPost, `{"number":"PF-2"}`, "key-1")

		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("requests without a key are not cached", func(t *testing.T) {
		var calls int32
		router := idempotentRouter(&calls, http.StatusCreated)

		send(router, http.MethodPost, `{}`, "")
		send(router, http.MethodPost, `{}`, "")

		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("GET is never cached", func(t *testing.T) {
		var calls int32
		router := idempotentRouter(&calls, http.StatusOK)

		send(router, http.MethodGet, "", "key-1")
		send(router, http.MethodGet, "", "key-1")

		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("failed responses are not cached", func(t *testing.T) {
		var calls int32
		router := idempotentRouter(&calls, http.StatusUnprocessableEntity)

		send(router, http.MethodPost, `{}`, "key-1")
		send(router, http.MethodPost, `{}`, "key-1")

		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})
}

func TestIdempotency_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Idempotency(IdempotencyConfig{Enabled: false}))
	router.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateCacheKey_RestoresBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"id":"A"}`))

	key, err := generateCacheKey("k", req)
	require.NoError(t, err)
	assert.Len(t, key, 64)

	body := new(bytes.Buffer)
	_, err = body.ReadFrom(req.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"A"}`, body.String())
}
