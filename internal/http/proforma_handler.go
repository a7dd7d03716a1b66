package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/packlist-service/internal/domain/dto"
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/export"
	"github.com/guttosm/packlist-service/internal/i18n"
	"github.com/guttosm/packlist-service/internal/middleware"
	"github.com/guttosm/packlist-service/internal/service"
)

// ProformaHandler provides HTTP handlers for stored proformas.
type ProformaHandler struct {
	proformas service.ProformaService
	company   export.Company
}

// NewProformaHandler creates a new ProformaHandler instance.
func NewProformaHandler(proformas service.ProformaService, company export.Company) *ProformaHandler {
	return &ProformaHandler{proformas: proformas, company: company}
}

// Register mounts the proforma routes.
func (h *ProformaHandler) Register(rg *gin.RouterGroup) {
	proformas := rg.Group("/proformas")
	proformas.GET("", h.List)
	proformas.POST("", h.Create)
	proformas.GET("/:id", h.Get)
	proformas.PUT("/:id", h.Update)
	proformas.DELETE("/:id", h.Delete)
	proformas.GET("/:id/packing-list", h.PackingList)
	proformas.GET("/:id/export", h.Export)
}

// List handles GET /api/proformas requests.
//
// @Summary      List proformas
// @Description  Most recent first.
// @Tags         Proformas
// @Produce      json
// @Param        limit query int false "Maximum number of proformas" default(50)
// @Success      200 {object} dto.SuccessResponse{data=[]model.Proforma} "Proformas"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Router       /api/proformas [get]
func (h *ProformaHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}

	proformas, err := h.proformas.List(c.Request.Context(), limit)
	if err != nil {
		builder.ServiceError(err, i18n.ErrKeyProformaNotFound)
		return
	}
	if proformas == nil {
		proformas = []model.Proforma{}
	}
	builder.SuccessOK(proformas)
}

// Get handles GET /api/proformas/:id requests.
//
// @Summary      Get a proforma
// @Tags         Proformas
// @Produce      json
// @Param        id path string true "Proforma ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Proforma} "Proforma"
// @Failure      404 {object} dto.ErrorResponse "Proforma not found"
// @Router       /api/proformas/{id} [get]
func (h *ProformaHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	proforma, err := h.proformas.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.ServiceError(err, i18n.ErrKeyProformaNotFound)
		return
	}
	builder.SuccessOK(proforma)
}

// Create handles POST /api/proformas requests.
//
// @Summary      Store a proforma
// @Description  Line prices are struck from the current catalog in the proforma's counting unit.
// @Tags         Proformas
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.ProformaRequest true "Proforma"
// @Success      201 {object} dto.SuccessResponse{data=model.Proforma} "Stored proforma"
// @Failure      400 {object} dto.ErrorResponse "Malformed JSON"
// @Failure      422 {object} dto.ErrorResponse "Validation failed"
// @Router       /api/proformas [post]
func (h *ProformaHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ProformaRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	created, err := h.proformas.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		builder.ServiceError(err, i18n.ErrKeyProformaNotFound)
		return
	}

	middleware.AuditLog(c, model.ActionProformaChange, "Proforma created", map[string]interface{}{
		"proforma_id": created.ID,
		"number":      created.Number,
	})
	builder.SuccessCreated(created)
}

// Update handles PUT /api/proformas/:id requests.
//
// @Summary      Replace a proforma
// @Tags         Proformas
// @Accept       json
// @Produce      json
// @Param        id path string true "Proforma ID"
// @Param        request body dto.ProformaRequest true "Proforma"
// @Success      200 {object} dto.SuccessResponse{data=model.Proforma} "Updated proforma"
// @Failure      404 {object} dto.ErrorResponse "Proforma not found"
// @Failure      422 {object} dto.ErrorResponse "Validation failed"
// @Router       /api/proformas/{id} [put]
func (h *ProformaHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ProformaRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	proforma := req.ToModel()
	proforma.ID = c.Param("id")

	updated, err := h.proformas.Update(c.Request.Context(), proforma)
	if err != nil {
		builder.ServiceError(err, i18n.ErrKeyProformaNotFound)
		return
	}

	middleware.AuditLog(c, model.ActionProformaChange, "Proforma updated", map[string]interface{}{
		"proforma_id": updated.ID,
	})
	builder.SuccessOK(updated)
}

// Delete handles DELETE /api/proformas/:id requests.
//
// @Summary      Delete a proforma
// @Tags         Proformas
// @Param        id path string true "Proforma ID"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Proforma not found"
// @Router       /api/proformas/{id} [delete]
func (h *ProformaHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id := c.Param("id")
	if err := h.proformas.Delete(c.Request.Context(), id); err != nil {
		builder.ServiceError(err, i18n.ErrKeyProformaNotFound)
		return
	}

	middleware.AuditLog(c, model.ActionProformaChange, "Proforma deleted", map[string]interface{}{
		"proforma_id": id,
	})
	builder.NoContent()
}

// PackingList handles GET /api/proformas/:id/packing-list requests.
//
// @Summary      Derive the packing list of a stored proforma
// @Description  Recomputed against the current catalog on every call.
// @Tags         Proformas
// @Produce      json
// @Param        id path string true "Proforma ID"
// @Success      200 {object} dto.SuccessResponse{data=service.ProformaPacking} "Proforma and packing list"
// @Failure      404 {object} dto.ErrorResponse "Proforma not found"
// @Router       /api/proformas/{id}/packing-list [get]
func (h *ProformaHandler) PackingList(c *gin.Context) {
	builder := NewResponseBuilder(c)

	result, err := h.proformas.PackingList(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.ServiceError(err, i18n.ErrKeyProformaNotFound)
		return
	}
	builder.SuccessOK(result)
}

// Export handles GET /api/proformas/:id/export requests.
//
// @Summary      Export a stored proforma as a workbook
// @Tags         Proformas
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id path string true "Proforma ID"
// @Param        Accept-Language header string false "Locale used for number formatting" Enums(en, tr)
// @Success      200 {file} file "Workbook"
// @Failure      404 {object} dto.ErrorResponse "Proforma not found"
// @Failure      500 {object} dto.ErrorResponse "Workbook could not be rendered"
// @Router       /api/proformas/{id}/export [get]
func (h *ProformaHandler) Export(c *gin.Context) {
	result, err := h.proformas.PackingList(c.Request.Context(), c.Param("id"))
	if err != nil {
		NewResponseBuilder(c).ServiceError(err, i18n.ErrKeyProformaNotFound)
		return
	}

	doc := export.Document{
		Company:  h.company,
		Header:   result.Proforma.ProformaHeader,
		Packing:  result.Packing,
		Language: i18n.Tag(i18n.GetLocale(c)),
	}
	writeWorkbook(c, doc, map[string]interface{}{
		"proforma_id": result.Proforma.ID,
		"number":      result.Proforma.Number,
	})
}
