package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/domain/documents/appointment"
	"taller/internal/infrastructure/http/v1/dto"
)

// AppointmentHandler handles HTTP requests for appointments.
type AppointmentHandler struct {
	*BaseHandler
	service *appointment.Service
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(base *BaseHandler, service *appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{BaseHandler: base, service: service}
}

// Create handles POST /citas.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid reference").WithDetail("error", err.Error()))
		return
	}

	if err := h.service.Create(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// Get handles GET /citas/:id.
func (h *AppointmentHandler) Get(c *gin.Context) {
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

// Update handles PUT /citas/:id.
func (h *AppointmentHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateAppointmentRequest
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

	if err := h.service.Update(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ChangeStatus handles PUT /citas/:id/estado.
func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.ChangeAppointmentStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.ChangeStatus(c.Request.Context(), docID, appointment.Status(req.Status))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Delete handles DELETE /citas/:id.
func (h *AppointmentHandler) Delete(c *gin.Context) {
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

// List handles GET /citas.
func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	base, err := h.ParseListFilter(c, "scheduled_at ASC")
	if err != nil {
		h.Error(c, err)
		return
	}
	filter := appointment.ListFilter{ListFilter: base}

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
	if status := c.Query("estado"); status != "" {
		parsed := appointment.Status(status)
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

// Agenda handles GET /citas/agenda: appointments within a day window.
// Defaults to today when no range is given.
func (h *AppointmentHandler) Agenda(c *gin.Context) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.Add(24 * time.Hour)

	if dateFrom := c.Query("dateFrom"); dateFrom != "" {
		if parsed, err := time.Parse(time.RFC3339, dateFrom); err == nil {
			from = parsed
		}
	}
	if dateTo := c.Query("dateTo"); dateTo != "" {
		if parsed, err := time.Parse(time.RFC3339, dateTo); err == nil {
			to = parsed
		}
	}

	items, err := h.service.FindOverlapping(c.Request.Context(), from, to)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: int64(len(items)),
		Limit:      len(items),
		Offset:     0,
	})
}

// RegisterRoutes registers appointment routes.
func (h *AppointmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/agenda", h.Agenda)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.PUT("/:id/estado", h.ChangeStatus)
}
