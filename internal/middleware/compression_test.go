//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCompression(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Compression())
	router.GET("/api/products", func(c *gin.Context) {
		c.String(http.StatusOK, strings.Repeat("soap ", 500))
	})
	router.GET("/api/products/export", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/octet-stream", []byte(strings.Repeat("x", 2000)))
	})

	tests := []struct {
		name         string
		path         string
		acceptGzip   bool
		wantEncoding string
	}{
		{"compresses JSON for gzip clients", "/api/products", true, "gzip"},
		{"leaves responses alone without Accept-Encoding", "/api/products", false, ""},
		{"skips workbook downloads", "/api/products/export", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.acceptGzip {
				req.Header.Set("Accept-Encoding", "gzip")
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantEncoding, w.Header().Get("Content-Encoding"))
		})
	}
}
