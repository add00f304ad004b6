package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taller/internal/core/apperror"
	"taller/internal/domain/reports"
)

// ReportsHandler handles report endpoints.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, service: service}
}

// Revenue handles GET /reportes/ingresos.
func (h *ReportsHandler) Revenue(c *gin.Context) {
	filter := reports.RevenueReportFilter{
		GroupBy: c.DefaultQuery("agrupar", "dia"),
	}

	from, to, err := parsePeriod(c)
	if err != nil {
		h.Error(c, err)
		return
	}
	filter.FromDate = from
	filter.ToDate = to

	if v := c.Query("incluirAnuladas"); v != "" {
		filter.IncludeVoided, _ = strconv.ParseBool(v)
	}

	report, err := h.service.GetRevenue(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, apperror.NewValidation(err.Error()))
		return
	}

	c.JSON(http.StatusOK, report)
}

// TopItems handles GET /reportes/top-items.
func (h *ReportsHandler) TopItems(c *gin.Context) {
	filter := reports.TopItemsReportFilter{
		ItemType: c.Query("tipo"),
	}

	from, to, err := parsePeriod(c)
	if err != nil {
		h.Error(c, err)
		return
	}
	filter.FromDate = from
	filter.ToDate = to

	if limit := c.Query("limit"); limit != "" {
		filter.Limit, _ = strconv.Atoi(limit)
	}

	report, err := h.service.GetTopItems(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, apperror.NewValidation(err.Error()))
		return
	}

	c.JSON(http.StatusOK, report)
}

// LowStock handles GET /reportes/bajo-stock.
func (h *ReportsHandler) LowStock(c *gin.Context) {
	report, err := h.service.GetLowStock(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// parsePeriod reads the required dateFrom/dateTo query pair.
func parsePeriod(c *gin.Context) (time.Time, time.Time, error) {
	from, err := time.Parse(time.RFC3339, c.Query("dateFrom"))
	if err != nil {
		return time.Time{}, time.Time{}, apperror.NewValidation("dateFrom is required in RFC3339 format")
	}
	to, err := time.Parse(time.RFC3339, c.Query("dateTo"))
	if err != nil {
		return time.Time{}, time.Time{}, apperror.NewValidation("dateTo is required in RFC3339 format")
	}
	return from, to, nil
}

// RegisterRoutes registers report routes.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ingresos", h.Revenue)
	rg.GET("/top-items", h.TopItems)
	rg.GET("/bajo-stock", h.LowStock)
}
