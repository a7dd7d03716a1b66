//go:build !integration

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/middleware"
	"github.com/guttosm/packlist-service/internal/mocks"
	"github.com/guttosm/packlist-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewRouter_InfrastructureRoutes(t *testing.T) {
	router := testRouter(Handlers{})

	tests := []struct {
		path           string
		expectedStatus int
	}{
		{"/healthz", http.StatusOK},
		{"/readyz", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/api/packing/calculate", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tt.path, "", nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestNewRouter_ProformaRoutesOnlyWhenConfigured(t *testing.T) {
	catalog := new(mocks.MockCatalogService)
	catalog.On("List", mock.Anything).Return([]model.Product{}, nil)
	router := testRouter(Handlers{
		Packing:  NewPackingHandler(service.NewPackingCalculatorService(), catalog),
		Products: NewProductHandler(catalog),
	})

	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/api/products", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodGet, "/api/proformas", "", nil).Code)
}

func TestNewRouter_SwaggerBasicAuth(t *testing.T) {
	router := NewRouter(Handlers{}, NewHealthHandler(), RouterConfig{SwaggerUser: "docs", SwaggerPass: "secret"})

	w := doRequest(router, http.MethodGet, "/swagger/index.html", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.SetBasicAuth("docs", "secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_CORS(t *testing.T) {
	router := NewRouter(Handlers{}, NewHealthHandler(), RouterConfig{CORSOrigins: []string{"https://packing.example.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/packing/calculate", nil)
	req.Header.Set("Origin", "https://packing.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://packing.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRouter_RateLimit(t *testing.T) {
	router := NewRouter(Handlers{}, NewHealthHandler(), RouterConfig{RateLimit: 1, RateWindow: time.Hour})

	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/healthz", "", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(router, http.MethodGet, "/healthz", "", nil).Code)
}

func TestNewRouter_Idempotency(t *testing.T) {
	catalog := new(mocks.MockCatalogService)
	catalog.On("Snapshot", mock.Anything).Return(soapCatalog(), nil).Once()
	router := NewRouter(Handlers{
		Packing: NewPackingHandler(service.NewPackingCalculatorService(), catalog),
	}, NewHealthHandler(), DefaultRouterConfig())

	headers := map[string]string{middleware.IdempotencyKeyHeader: "order-42"}
	first := doRequest(router, http.MethodPost, "/api/packing/calculate", soapOrder, headers)
	second := doRequest(router, http.MethodPost, "/api/packing/calculate", soapOrder, headers)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "true", second.Header().Get(middleware.IdempotencyReplayedHeader))
	catalog.AssertExpectations(t)
}
