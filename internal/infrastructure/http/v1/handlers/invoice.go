package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/domain/catalogs/client"
	"taller/internal/domain/documents"
	"taller/internal/domain/documents/invoice"
	"taller/internal/export/csvexport"
	"taller/internal/export/pdf"
	"taller/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler handles HTTP requests for invoices.
type InvoiceHandler struct {
	*BaseHandler
	service  *invoice.Service
	resolver *documents.LineResolver
	clients  *client.Service
	pdf      *pdf.Generator
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(
	base *BaseHandler,
	service *invoice.Service,
	resolver *documents.LineResolver,
	clients *client.Service,
	pdfGen *pdf.Generator,
) *InvoiceHandler {
	return &InvoiceHandler{
		BaseHandler: base,
		service:     service,
		resolver:    resolver,
		clients:     clients,
		pdf:         pdfGen,
	}
}

// Create handles POST /facturas.
func (h *InvoiceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateInvoiceRequest
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

// Get handles GET /facturas/:id.
func (h *InvoiceHandler) Get(c *gin.Context) {
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

// Update handles PUT /facturas/:id.
func (h *InvoiceHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateInvoiceRequest
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

// ChangeStatus handles PUT /facturas/:id/estado.
func (h *InvoiceHandler) ChangeStatus(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.ChangeInvoiceStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.ChangeStatus(c.Request.Context(), docID, invoice.PaymentStatus(req.Status))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// MarkPaid handles PUT /facturas/:id/marcar-pagada.
// The body is optional; when present it may carry forma_pago.
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.MarkInvoicePaidRequest
	if c.Request.ContentLength > 0 {
		if !h.BindJSON(c, &req) {
			return
		}
	}

	doc, err := h.service.MarkPaid(c.Request.Context(), docID, req.PaymentMethod)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Delete handles DELETE /facturas/:id.
func (h *InvoiceHandler) Delete(c *gin.Context) {
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

// List handles GET /facturas.
func (h *InvoiceHandler) List(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      result.Items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// ExportCSV handles GET /facturas/export.
func (h *InvoiceHandler) ExportCSV(c *gin.Context) {
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
		Headers: []string{"numero", "fecha", "id_cliente", "estado_pago", "forma_pago", "subtotal", "monto_impuestos", "monto_descuentos", "total"},
	}
	for _, inv := range result.Items {
		doc.Rows = append(doc.Rows, []string{
			inv.Number,
			inv.Date.Format(time.RFC3339),
			inv.ClientID.String(),
			string(inv.PaymentStatus),
			inv.PaymentMethod,
			inv.Subtotal.StringFixed(2),
			inv.TaxAmount.StringFixed(2),
			inv.DiscountAmount.StringFixed(2),
			inv.Total.StringFixed(2),
		})
	}

	if err := csvexport.WriteHTTP(c.Writer, "facturas.csv", doc); err != nil {
		h.Error(c, apperror.NewInternal(err))
	}
}

func (h *InvoiceHandler) parseFilter(c *gin.Context) (invoice.ListFilter, error) {
	base, err := h.ParseListFilter(c, "date DESC")
	if err != nil {
		return invoice.ListFilter{}, err
	}
	filter := invoice.ListFilter{ListFilter: base}

	if clientID := c.Query("clientId"); clientID != "" {
		if parsed, err := id.Parse(clientID); err == nil {
			filter.ClientID = &parsed
		}
	}
	if status := c.Query("estado"); status != "" {
		parsed := invoice.PaymentStatus(status)
		filter.PaymentStatus = &parsed
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

// ExportPDF handles GET /facturas/:id/pdf.
func (h *InvoiceHandler) ExportPDF(c *gin.Context) {
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

	data, err := h.pdf.Invoice(doc, clientName)
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Number+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// RegisterRoutes registers invoice routes.
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/export", h.ExportCSV)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.PUT("/:id/estado", h.ChangeStatus)
	rg.PUT("/:id/marcar-pagada", h.MarkPaid)
	rg.GET("/:id/pdf", h.ExportPDF)
}
