package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/domain"
	"taller/internal/domain/catalogs/client"
	"taller/internal/domain/documents"
	"taller/internal/domain/documents/quotation"
	"taller/internal/export/csvexport"
	"taller/internal/export/pdf"
	"taller/internal/infrastructure/http/v1/dto"
)

// QuotationHandler handles HTTP requests for quotations.
type QuotationHandler struct {
	*BaseHandler
	service  *quotation.Service
	resolver *documents.LineResolver
	clients  *client.Service
	pdf      *pdf.Generator
}

// NewQuotationHandler creates a new quotation handler.
func NewQuotationHandler(
	base *BaseHandler,
	service *quotation.Service,
	resolver *documents.LineResolver,
	clients *client.Service,
	pdfGen *pdf.Generator,
) *QuotationHandler {
	return &QuotationHandler{
		BaseHandler: base,
		service:     service,
		resolver:    resolver,
		clients:     clients,
		pdf:         pdfGen,
	}
}

// Create handles POST /cotizaciones.
func (h *QuotationHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateQuotationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid reference").WithDetail("error", err.Error()))
		return
	}

	lineReqs, err := dto.ToLineRequests(req.Lines)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid line reference").WithDetail("error", err.Error()))
		return
	}
	lines, err := h.resolver.ResolveLines(ctx, lineReqs)
	if err != nil {
		h.Error(c, err)
		return
	}
	doc.Lines = lines
	doc.RecalculateTotals()

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// Get handles GET /cotizaciones/:id.
func (h *QuotationHandler) Get(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Update handles PUT /cotizaciones/:id.
func (h *QuotationHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateQuotationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.ApplyTo(doc); err != nil {
		h.Error(c, apperror.NewValidation("invalid reference").WithDetail("error", err.Error()))
		return
	}

	if req.Lines != nil {
		lineReqs, err := dto.ToLineRequests(req.Lines)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid line reference").WithDetail("error", err.Error()))
			return
		}
		lines, err := h.resolver.ResolveLines(ctx, lineReqs)
		if err != nil {
			h.Error(c, err)
			return
		}
		doc.Lines = lines
	}
	doc.RecalculateTotals()

	if err := h.service.Update(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ChangeStatus handles PUT /cotizaciones/:id/estado.
func (h *QuotationHandler) ChangeStatus(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.ChangeQuotationStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.ChangeStatus(c.Request.Context(), docID, quotation.Status(req.Status))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Delete handles DELETE /cotizaciones/:id.
func (h *QuotationHandler) Delete(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List handles GET /cotizaciones.
func (h *QuotationHandler) List(c *gin.Context) {
	filter, err := h.parseFilter(c)
	if err != nil {
		h.Error(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.respondList(c, result)
}

// ExportCSV handles GET /cotizaciones/export.
func (h *QuotationHandler) ExportCSV(c *gin.Context) {
	filter, err := h.parseFilter(c)
	if err != nil {
		h.Error(c, err)
		return
	}
	filter.Limit = 10000
	filter.Offset = 0

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	doc := csvexport.Document{
		Headers: []string{"numero", "fecha", "id_cliente", "estado", "subtotal", "monto_impuestos", "monto_descuentos", "total"},
	}
	for _, q := range result.Items {
		doc.Rows = append(doc.Rows, []string{
			q.Number,
			q.Date.Format(time.RFC3339),
			q.ClientID.String(),
			string(q.Status),
			q.Subtotal.StringFixed(2),
			q.TaxAmount.StringFixed(2),
			q.DiscountAmount.StringFixed(2),
			q.Total.StringFixed(2),
		})
	}

	if err := csvexport.WriteHTTP(c.Writer, "cotizaciones.csv", doc); err != nil {
		h.Error(c, apperror.NewInternal(err))
	}
}

func (h *QuotationHandler) parseFilter(c *gin.Context) (quotation.ListFilter, error) {
	base, err := h.ParseListFilter(c, "date DESC")
	if err != nil {
		return quotation.ListFilter{}, err
	}
	filter := quotation.ListFilter{ListFilter: base}

	if clientID := c.Query("clientId"); clientID != "" {
		if parsed, err := id.Parse(clientID); err == nil {
			filter.ClientID = &parsed
		}
	}
	if status := c.Query("estado"); status != "" {
		parsed := quotation.Status(status)
		filter.Status = &parsed
	}
	if dateFrom := c.Query("dateFrom"); dateFrom != "" {
		if parsed, err := time.Parse(time.RFC3339, dateFrom); err == nil {
			filter.DateFrom = &parsed
		}
	}
	if dateTo := c.Query("dateTo"); dateTo != "" {
		if parsed, err := time.Parse(time.RFC3339, dateTo); err == nil {
			filter.DateTo = &parsed
		}
	}

	return filter, nil
}

// ExportPDF handles GET /cotizaciones/:id/pdf.
func (h *QuotationHandler) ExportPDF(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	clientName := ""
	if cli, err := h.clients.GetByID(ctx, doc.ClientID); err == nil {
		clientName = cli.Name
	}

	data, err := h.pdf.Quotation(doc, clientName)
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Number+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *QuotationHandler) respondList(c *gin.Context, result domain.ListResult[*quotation.Quotation]) {
	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      result.Items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// RegisterRoutes registers quotation routes.
func (h *QuotationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/export", h.ExportCSV)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.PUT("/:id/estado", h.ChangeStatus)
	rg.GET("/:id/pdf", h.ExportPDF)
}
