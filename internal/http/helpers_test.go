package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/packlist-service/internal/domain/dto"
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testRouter builds a router without rate limiting, timeouts or idempotency.
func testRouter(handlers Handlers) *gin.Engine {
	return NewRouter(handlers, NewHealthHandler(), RouterConfig{})
}

func doRequest(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into T.
func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data      T      `json:"data"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	require.NotEmpty(t, envelope.RequestID)
	return envelope.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func soapCatalog() model.Catalog {
	return model.NewCatalog([]model.Product{
		{ID: "A", Name: "Olive Soap", Series: "S1", PricePerCase: decimal.RequireFromString("39.24"), PricePerPiece: decimal.RequireFromString("3.27"), NetWeightKg: 0.5, PiecesPerCase: 12, PackagingWeightKg: 1.66},
		{ID: "B", Name: "Travel Soap", Series: "PROMO", NetWeightKg: 0.025, PiecesPerCase: 100},
	})
}

const soapOrder = `{
	"unit": "case",
	"lines": [{"product_id": "A", "quantity": 5}, {"product_id": "B", "quantity": 8}],
	"shipment": {"pallets": [{"width_cm": 80, "length_cm": 120, "height_cm": 150}], "weight_per_pallet_kg": 20}
}`
