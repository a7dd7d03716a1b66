package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/packlist-service/internal/domain/dto"
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/export"
	"github.com/guttosm/packlist-service/internal/i18n"
	"github.com/guttosm/packlist-service/internal/importer"
	"github.com/guttosm/packlist-service/internal/metrics"
	"github.com/guttosm/packlist-service/internal/middleware"
	"github.com/guttosm/packlist-service/internal/repository"
	"github.com/guttosm/packlist-service/internal/service"
)

// DefaultMaxImportSize caps catalog spreadsheet uploads.
const DefaultMaxImportSize int64 = 10 << 20

const catalogFilename = "catalog.xlsx"

// ProductHandler provides HTTP handlers for catalog routes.
type ProductHandler struct {
	catalog       service.CatalogService
	maxImportSize int64
}

// NewProductHandler creates a new ProductHandler instance.
func NewProductHandler(catalog service.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalog:       catalog,
		maxImportSize: DefaultMaxImportSize,
	}
}

// Register mounts the catalog routes.
func (h *ProductHandler) Register(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.GET("", h.List)
	products.POST("", h.Create)
	products.POST("/import", h.Import)
	products.GET("/export", h.Export)
	products.GET("/:id", h.Get)
	products.PUT("/:id", h.Update)
	products.DELETE("/:id", h.Delete)
}

// List handles GET /api/products requests.
//
// @Summary      List catalog products
// @Tags         Products
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Product} "Products sorted by series and name"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	products, err := h.catalog.List(c.Request.Context())
	if err != nil {
		builder.ServiceError(err, i18n.ErrKeyProductNotFound)
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	builder.SuccessOK(products)
}

// Get handles GET /api/products/:id requests.
//
// @Summary      Get a catalog product
// @Tags         Products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Product} "Product"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	product, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.ServiceError(err, i18n.ErrKeyProductNotFound)
		return
	}
	builder.SuccessOK(product)
}

// Create handles POST /api/products requests.
//
// @Summary      Create a catalog product
// @Description  An empty ID is replaced by a generated one.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        request body dto.ProductRequest true "Product"
// @Success      201 {object} dto.SuccessResponse{data=model.Product} "Created product"
// @Failure      409 {object} dto.ErrorResponse "Product ID already exists"
// @Failure      422 {object} dto.ErrorResponse "Validation failed"
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ProductRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	product, err := h.catalog.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			builder.Error(http.StatusConflict, i18n.ErrKeyDuplicateProduct, err)
			return
		}
		builder.ServiceError(err, i18n.ErrKeyProductNotFound)
		return
	}

	middleware.AuditLog(c, model.ActionProductChange, "Product created", map[string]interface{}{
		"product_id": product.ID,
	})
	builder.SuccessCreated(product)
}

// Update handles PUT /api/products/:id requests.
//
// @Summary      Replace a catalog product
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body dto.ProductRequest true "Product"
// @Success      200 {object} dto.SuccessResponse{data=model.Product} "Updated product"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      422 {object} dto.ErrorResponse "Validation failed"
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ProductRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	product := req.ToModel()
	product.ID = c.Param("id")

	updated, err := h.catalog.Update(c.Request.Context(), product)
	if err != nil {
		builder.ServiceError(err, i18n.ErrKeyProductNotFound)
		return
	}

	middleware.AuditLog(c, model.ActionProductChange, "Product updated", map[string]interface{}{
		"product_id": updated.ID,
	})
	builder.SuccessOK(updated)
}

// Delete handles DELETE /api/products/:id requests.
//
// @Summary      Delete a catalog product
// @Tags         Products
// @Param        id path string true "Product ID"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id := c.Param("id")
	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		builder.ServiceError(err, i18n.ErrKeyProductNotFound)
		return
	}

	middleware.AuditLog(c, model.ActionProductChange, "Product deleted", map[string]interface{}{
		"product_id": id,
	})
	builder.NoContent()
}

// Import handles POST /api/products/import requests.
//
// @Summary      Import a catalog spreadsheet
// @Description  Reads the first sheet of an xlsx upload. Rows that fail validation are skipped and reported; the others are upserted by ID. With dry_run=true nothing is written.
// @Tags         Products
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Catalog workbook (.xlsx)"
// @Param        dry_run query bool false "Parse only"
// @Success      200 {object} dto.SuccessResponse{data=dto.ImportResponse} "Import outcome"
// @Failure      400 {object} dto.ErrorResponse "No file uploaded"
// @Failure      413 {object} dto.ErrorResponse "File too large"
// @Failure      422 {object} dto.ErrorResponse "Unreadable spreadsheet"
// @Router       /api/products/import [post]
func (h *ProductHandler) Import(c *gin.Context) {
	builder := NewResponseBuilder(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyFileRequired, err)
		return
	}
	if fileHeader.Size > h.maxImportSize {
		builder.Error(http.StatusRequestEntityTooLarge, i18n.ErrKeyFileTooLarge, nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyFileRequired, err)
		return
	}
	defer file.Close()

	result, err := importer.ParseCatalog(file)
	if err != nil {
		builder.ErrorWithDetails(http.StatusUnprocessableEntity, i18n.ErrKeyInvalidSpreadsheet,
			map[string]string{"file": err.Error()}, err)
		return
	}

	resp := dto.ImportResponse{
		Skipped:   result.Skipped(),
		RowErrors: make([]dto.ImportRowError, len(result.RowErrors)),
	}
	for i, re := range result.RowErrors {
		resp.RowErrors[i] = dto.ImportRowError{Row: re.Row, Column: re.Column, Message: re.Message}
	}

	if dryRun, _ := strconv.ParseBool(c.Query("dry_run")); dryRun {
		resp.Imported = len(result.Products)
		resp.Products = result.Products
		builder.SuccessOK(resp)
		return
	}

	imported, err := h.catalog.Import(c.Request.Context(), result.Products)
	if err != nil {
		middleware.AuditLogError(c, model.ActionImportCatalog, "Catalog import failed", err, map[string]interface{}{
			"file": fileHeader.Filename,
		})
		builder.ServiceError(err, i18n.ErrKeyProductNotFound)
		return
	}
	resp.Imported = imported

	metrics.RecordCatalogImport(imported, resp.Skipped)
	middleware.AuditLog(c, model.ActionImportCatalog, "Catalog imported", map[string]interface{}{
		"file":     fileHeader.Filename,
		"imported": imported,
		"skipped":  resp.Skipped,
	})
	builder.SuccessOK(resp)
}

// Export handles GET /api/products/export requests.
//
// @Summary      Download the catalog as a spreadsheet
// @Description  The workbook uses the layout accepted by the import endpoint.
// @Tags         Products
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200 {file} file "Catalog workbook"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products/export [get]
func (h *ProductHandler) Export(c *gin.Context) {
	builder := NewResponseBuilder(c)

	products, err := h.catalog.List(c.Request.Context())
	if err != nil {
		builder.ServiceError(err, i18n.ErrKeyProductNotFound)
		return
	}

	data, err := importer.WriteCatalog(products)
	if err != nil {
		metrics.RecordWorkbookExport("catalog", "error", 0)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyExportFailed, err)
		return
	}

	metrics.RecordWorkbookExport("catalog", "success", len(data))
	builder.Attachment(catalogFilename, export.ContentType, data)
}
