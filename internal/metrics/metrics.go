// Package metrics provides Prometheus metrics collection for the packing-list service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// PackingCalculationsTotal counts packing calculations by outcome and catalog source.
	PackingCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packing_calculations_total",
			Help: "Total number of packing calculations",
		},
		[]string{"status", "source"},
	)

	// PackingCalculationDuration tracks packing calculation duration.
	PackingCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "packing_calculation_duration_seconds",
			Help:    "Packing calculation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	// UnresolvedLinesTotal counts order lines dropped because their product is not in the catalog.
	UnresolvedLinesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "packing_unresolved_lines_total",
			Help: "Total number of order lines referencing unknown products",
		},
	)

	// WorkbookExportsTotal counts rendered workbooks by outcome.
	WorkbookExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workbook_exports_total",
			Help: "Total number of workbook exports",
		},
		[]string{"kind", "status"},
	)

	// WorkbookExportBytes tracks the size of rendered workbooks.
	WorkbookExportBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "workbook_export_bytes",
			Help:    "Size of rendered workbooks in bytes",
			Buckets: prometheus.ExponentialBuckets(4096, 2, 10),
		},
	)

	// CatalogImportRowsTotal counts spreadsheet rows seen by catalog imports.
	CatalogImportRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_import_rows_total",
			Help: "Total number of catalog spreadsheet rows by result",
		},
		[]string{"result"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
		[]string{"cache"},
	)

	// CircuitBreakerState exposes breaker state: 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)

	// AuditLogDroppedTotal counts audit entries dropped because the buffer was full.
	AuditLogDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_log_dropped_total",
			Help: "Total number of audit log entries dropped",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordPackingCalculation records a packing calculation and its unresolved lines.
func RecordPackingCalculation(duration time.Duration, status, source string, unresolved int) {
	PackingCalculationDuration.Observe(duration.Seconds())
	PackingCalculationsTotal.WithLabelValues(status, source).Inc()
	if unresolved > 0 {
		UnresolvedLinesTotal.Add(float64(unresolved))
	}
}

// RecordWorkbookExport records a workbook render of the given kind.
func RecordWorkbookExport(kind, status string, size int) {
	WorkbookExportsTotal.WithLabelValues(kind, status).Inc()
	if size > 0 {
		WorkbookExportBytes.Observe(float64(size))
	}
}

// RecordCatalogImport records the rows imported and skipped by one upload.
func RecordCatalogImport(imported, skipped int) {
	CatalogImportRowsTotal.WithLabelValues("imported").Add(float64(imported))
	CatalogImportRowsTotal.WithLabelValues("skipped").Add(float64(skipped))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// UpdateCacheSize updates the size gauge of a cache.
func UpdateCacheSize(cache string, size int) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
}

// SetCircuitBreakerState records the numeric state of a breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordAuditLogDropped counts an audit entry that could not be queued.
func RecordAuditLogDropped() {
	AuditLogDroppedTotal.Inc()
}
