package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/domain/inventory"
	"taller/internal/export/csvexport"
	"taller/internal/infrastructure/http/v1/dto"
)

// MovementHandler handles HTTP requests for stock movements.
// Movements are append-only: they are registered, listed and exported,
// never edited.
type MovementHandler struct {
	*BaseHandler
	service *inventory.Service
}

// NewMovementHandler creates a new movement handler.
func NewMovementHandler(base *BaseHandler, service *inventory.Service) *MovementHandler {
	return &MovementHandler{BaseHandler: base, service: service}
}

// Create handles POST /inventario/movimientos.
func (h *MovementHandler) Create(c *gin.Context) {
	var req dto.CreateMovementRequest
	if !h.BindJSON(c, &req) {
		return
	}

	m, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid reference").WithDetail("error", err.Error()))
		return
	}

	if err := h.service.Register(c.Request.Context(), m); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// Get handles GET /inventario/movimientos/:id.
func (h *MovementHandler) Get(c *gin.Context) {
	movID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	m, err := h.service.GetByID(c.Request.Context(), movID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// List handles GET /inventario/movimientos.
func (h *MovementHandler) List(c *gin.Context) {
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

// ExportCSV handles GET /inventario/movimientos/export.
func (h *MovementHandler) ExportCSV(c *gin.Context) {
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
		Headers: []string{"numero", "fecha", "id_repuesto", "tipo", "cantidad", "stock_anterior", "stock_nuevo", "referencia"},
	}
	for _, m := range result.Items {
		ref := ""
		if m.Reference != nil {
			ref = *m.Reference
		}
		doc.Rows = append(doc.Rows, []string{
			m.Number,
			m.Date.Format(time.RFC3339),
			m.PartID.String(),
			string(m.Type),
			m.Quantity.StringFixed(2),
			m.StockBefore.StringFixed(2),
			m.StockAfter.StringFixed(2),
			ref,
		})
	}

	if err := csvexport.WriteHTTP(c.Writer, "movimientos.csv", doc); err != nil {
		h.Error(c, apperror.NewInternal(err))
	}
}

func (h *MovementHandler) parseFilter(c *gin.Context) (inventory.ListFilter, error) {
	base, err := h.ParseListFilter(c, "date DESC")
	if err != nil {
		return inventory.ListFilter{}, err
	}
	filter := inventory.ListFilter{ListFilter: base}

	if partID := c.Query("partId"); partID != "" {
		if parsed, err := id.Parse(partID); err == nil {
			filter.PartID = &parsed
		}
	}
	if movType := c.Query("tipo"); movType != "" {
		parsed := inventory.MovementType(movType)
		filter.Type = &parsed
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

// RegisterRoutes registers movement routes.
func (h *MovementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/export", h.ExportCSV)
	rg.GET("/:id", h.Get)
}
