package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/domain/documents"
	"taller/internal/domain/documents/invoice"
	"taller/internal/domain/documents/ticket"
	"taller/internal/infrastructure/http/v1/dto"
)

// TicketHandler handles HTTP requests for work tickets.
type TicketHandler struct {
	*BaseHandler
	service  *ticket.Service
	invoices *invoice.Service
	resolver *documents.LineResolver
}

// NewTicketHandler creates a new work ticket handler.
func NewTicketHandler(
	base *BaseHandler,
	service *ticket.Service,
	invoices *invoice.Service,
	resolver *documents.LineResolver,
) *TicketHandler {
	return &TicketHandler{
		BaseHandler: base,
		service:     service,
		invoices:    invoices,
		resolver:    resolver,
	}
}

// Create handles POST /tickets.
// Lines are optional: a ticket may open with nothing but the reported problem.
func (h *TicketHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateTicketRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid reference").WithDetail("error", err.Error()))
		return
	}

	if len(req.Lines) > 0 {
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

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// Get handles GET /tickets/:id.
func (h *TicketHandler) Get(c *gin.Context) {
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

// Update handles PUT /tickets/:id.
func (h *TicketHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateTicketRequest
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

// ChangeStatus handles PUT /tickets/:id/estado.
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.ChangeTicketStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.ChangeStatus(c.Request.Context(), docID, ticket.Status(req.Status))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Bill handles POST /tickets/:id/facturar.
// It generates a pending invoice from the ticket's current lines.
func (h *TicketHandler) Bill(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.BillTicketRequest
	if !h.BindJSON(c, &req) {
		return
	}

	t, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	lines := t.BillableLines()
	if len(lines) == 0 {
		h.Error(c, apperror.NewBusinessRule(
			apperror.CodeBusinessRule,
			"cannot bill a ticket without lines",
		).WithDetail("ticket_id", t.ID.String()))
		return
	}

	vehicleID := t.VehicleID
	inv := invoice.NewFromTicketLines(t.ClientID, &vehicleID, &t.ID, lines)
	inv.TaxRate = req.TaxRate
	inv.DiscountRate = req.DiscountRate
	inv.PaymentMethod = req.PaymentMethod
	if req.PaymentMethodID != nil {
		pmID, err := id.Parse(*req.PaymentMethodID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid reference").WithDetail("error", err.Error()))
			return
		}
		inv.PaymentMethodID = &pmID
	}
	inv.RecalculateTotals()

	if err := h.invoices.Create(ctx, inv); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, inv)
}

// Delete handles DELETE /tickets/:id.
func (h *TicketHandler) Delete(c *gin.Context) {
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

// List handles GET /tickets.
func (h *TicketHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	base, err := h.ParseListFilter(c, "date DESC")
	if err != nil {
		h.Error(c, err)
		return
	}
	filter := ticket.ListFilter{ListFilter: base}

	if clientID := c.Query("clientId"); clientID != "" {
		if parsed, err := id.Parse(clientID); err == nil {
			filter.ClientID = &parsed
		}
	}
	if vehicleID := c.Query("vehicleId"); vehicleID != "" {
		if parsed, err := id.Parse(vehicleID); err == nil {
			filter.VehicleID = &parsed
		}
	}
	if employeeID := c.Query("employeeId"); employeeID != "" {
		if parsed, err := id.Parse(employeeID); err == nil {
			filter.EmployeeID = &parsed
		}
	}
	if status := c.Query("estado"); status != "" {
		parsed := ticket.Status(status)
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

	result, err := h.service.List(ctx, filter)
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

// RegisterRoutes registers work ticket routes.
func (h *TicketHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.PUT("/:id/estado", h.ChangeStatus)
	rg.POST("/:id/facturar", h.Bill)
}
