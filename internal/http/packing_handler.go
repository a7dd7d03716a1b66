package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/packlist-service/internal/domain/dto"
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/export"
	"github.com/guttosm/packlist-service/internal/i18n"
	"github.com/guttosm/packlist-service/internal/logger"
	"github.com/guttosm/packlist-service/internal/metrics"
	"github.com/guttosm/packlist-service/internal/middleware"
	"github.com/guttosm/packlist-service/internal/service"
)

const (
	sourceInline  = "inline"
	sourceCatalog = "catalog"
)

// PackingHandler serves the packing preview and the workbook export.
type PackingHandler struct {
	calculator service.PackingCalculator
	catalog    service.CatalogService
	company    export.Company
	currency   string
}

// PackingHandlerOption configures a PackingHandler.
type PackingHandlerOption func(*PackingHandler)

// WithCompany sets the seller printed on exported workbooks.
func WithCompany(company export.Company) PackingHandlerOption {
	return func(h *PackingHandler) {
		h.company = company
	}
}

// WithDefaultCurrency sets the currency used when an export header has none.
func WithDefaultCurrency(currency string) PackingHandlerOption {
	return func(h *PackingHandler) {
		h.currency = currency
	}
}

// NewPackingHandler creates a new PackingHandler instance.
func NewPackingHandler(calculator service.PackingCalculator, catalog service.CatalogService, opts ...PackingHandlerOption) *PackingHandler {
	h := &PackingHandler{
		calculator: calculator,
		catalog:    catalog,
		currency:   "USD",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the packing routes.
func (h *PackingHandler) Register(rg *gin.RouterGroup) {
	packing := rg.Group("/packing")
	packing.POST("/calculate", h.Calculate)
	packing.POST("/export", h.Export)
}

// Calculate handles POST /api/packing/calculate requests.
//
// @Summary      Calculate a packing list
// @Description  Normalizes the order lines in the selected counting unit, groups them by series, spreads the pallet weight over every unit and returns the shipment totals. Lines whose product is unknown are reported under `unresolved` and counted nowhere.
// @Tags         Packing
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.PackingRequest true "Order lines and shipment info"
// @Success      200 {object} dto.SuccessResponse{data=model.PackingList} "Packing list"
// @Failure      400 {object} dto.ErrorResponse "Malformed JSON"
// @Failure      422 {object} dto.ErrorResponse "Validation failed"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/packing/calculate [post]
func (h *PackingHandler) Calculate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.PackingRequest](c)
	if err != nil {
		metrics.RecordPackingCalculation(0, "validation_error", "", 0)
		builder.BindError(err)
		return
	}

	packing, source, ok := h.calculate(c, req)
	if !ok {
		return
	}

	middleware.AuditLog(c, model.ActionCalculatePacking, "Packing list calculated", map[string]interface{}{
		"lines":      len(req.Lines),
		"unit":       string(packing.Unit),
		"source":     source,
		"unresolved": len(packing.Unresolved),
	})

	builder.SuccessOK(packing)
}

// Export handles POST /api/packing/export requests.
//
// @Summary      Export a proforma workbook
// @Description  Runs the same calculation as the preview and renders it as an xlsx workbook with Invoice, Packing Calculation and Packing Summary sheets. The invoice total is formatted for the Accept-Language locale (en, tr).
// @Tags         Packing
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        Accept-Language header string false "Locale used for number formatting" Enums(en, tr)
// @Param        request body dto.ExportRequest true "Order lines, shipment info and invoice header"
// @Success      200 {file} file "Workbook"
// @Failure      400 {object} dto.ErrorResponse "Malformed JSON"
// @Failure      422 {object} dto.ErrorResponse "Validation failed"
// @Failure      500 {object} dto.ErrorResponse "Workbook could not be rendered"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/packing/export [post]
func (h *PackingHandler) Export(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ExportRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	packing, source, ok := h.calculate(c, &req.PackingRequest)
	if !ok {
		return
	}

	header := req.Header.ToModel()
	if header.Currency == "" {
		header.Currency = h.currency
	}
	if header.Date.IsZero() {
		header.Date = time.Now().UTC()
	}

	doc := export.Document{
		Company:  h.company,
		Header:   header,
		Packing:  packing,
		Language: i18n.Tag(i18n.GetLocale(c)),
	}
	writeWorkbook(c, doc, map[string]interface{}{
		"number": header.Number,
		"source": source,
	})
}

// calculate resolves the catalog for req and runs the calculator. It writes the
// error response itself and reports false when the catalog cannot be read.
func (h *PackingHandler) calculate(c *gin.Context, req *dto.PackingRequest) (model.PackingList, string, bool) {
	catalog, source := req.InlineCatalog(), sourceInline
	if !req.HasInlineCatalog() {
		snapshot, err := h.catalog.Snapshot(c.Request.Context())
		if err != nil {
			metrics.RecordPackingCalculation(0, "catalog_error", sourceCatalog, 0)
			NewResponseBuilder(c).Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable, err)
			return model.PackingList{}, "", false
		}
		catalog, source = snapshot, sourceCatalog
	}

	start := time.Now()
	packing := h.calculator.Calculate(req.ToInput(catalog))
	metrics.RecordPackingCalculation(time.Since(start), "success", source, len(packing.Unresolved))

	if len(packing.Unresolved) > 0 {
		logger.FromContext(c.Request.Context()).Warn().
			Str("source", source).
			Strs("product_ids", service.UnresolvedProductIDs(packing.Unresolved)).
			Msg("order lines reference products missing from the catalog")
	}

	return packing, source, true
}

// writeWorkbook renders doc and sends it as a download.
func writeWorkbook(c *gin.Context, doc export.Document, fields map[string]interface{}) {
	builder := NewResponseBuilder(c)

	data, err := export.Workbook(doc)
	if err != nil {
		metrics.RecordWorkbookExport("proforma", "error", 0)
		middleware.AuditLogError(c, model.ActionExportWorkbook, "Workbook export failed", err, fields)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyExportFailed, err)
		return
	}

	metrics.RecordWorkbookExport("proforma", "success", len(data))
	middleware.AuditLog(c, model.ActionExportWorkbook, "Workbook exported", fields)
	builder.Attachment(doc.Filename(), export.ContentType, data)
}
