//go:build !integration

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/packlist-service/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_Console(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger.InitWithWriter("debug", false, &buf)
	t.Cleanup(func() { logger.Init("info", false) })

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success logs at info", http.StatusOK, `"level":"info"`},
		{"client errors log at warn", http.StatusUnprocessableEntity, `"level":"warn"`},
		{"server errors log at error", http.StatusServiceUnavailable, `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			router := gin.New()
			router.Use(RequestID(), RequestLogger(nil))
			router.GET("/test", func(c *gin.Context) { c.Status(tt.status) })

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), `"path":"/test"`)
			assert.Contains(t, buf.String(), `"request_id"`)
		})
	}
}

func TestRequestLogger_PersistsThroughAsyncLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, batches := capturingLogs(nil)
	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, BatchSize: 10, FlushInterval: time.Hour})

	router := gin.New()
	router.Use(RequestID(), RequestLogger(al))
	router.GET("/api/products", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products", nil))
	al.Stop()

	got := batches()
	require.Len(t, got, 1)
	entry := got[0][0]
	assert.Equal(t, "warn", entry.Level)
	assert.Equal(t, http.StatusNotFound, entry.StatusCode)
	assert.Equal(t, http.MethodGet, entry.Method)
	assert.NotEmpty(t, entry.RequestID)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, "info", logLevel(201))
	assert.Equal(t, "warn", logLevel(404))
	assert.Equal(t, "error", logLevel(502))
}
