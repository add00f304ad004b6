package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taller/internal/domain/catalogs/spare_part"
	"taller/internal/export/csvexport"
	"taller/internal/infrastructure/http/v1/dto"
)

// SparePartHandler handles HTTP requests for the spare part catalog.
type SparePartHandler struct {
	*CatalogHandler[*spare_part.SparePart, dto.CreateSparePartRequest, dto.UpdateSparePartRequest]
	service *spare_part.Service
}

// NewSparePartHandler creates a new spare part handler.
func NewSparePartHandler(base *BaseHandler, service *spare_part.Service) *SparePartHandler {
	cfg := CatalogHandlerConfig[*spare_part.SparePart, dto.CreateSparePartRequest, dto.UpdateSparePartRequest]{
		Service:    service.CatalogService,
		EntityName: "spare_part",
		MapCreateDTO: func(req dto.CreateSparePartRequest) (*spare_part.SparePart, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateSparePartRequest, existing *spare_part.SparePart) (*spare_part.SparePart, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
	}

	return &SparePartHandler{
		CatalogHandler: NewCatalogHandler(base, cfg),
		service:        service,
	}
}

// ListLowStock handles GET /repuestos/bajo-stock - parts at or below minimum.
func (h *SparePartHandler) ListLowStock(c *gin.Context) {
	filter, err := h.ParseListFilter(c, "stock")
	if err != nil {
		h.Error(c, err)
		return
	}

	result, err := h.service.FindLowStock(c.Request.Context(), filter)
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

// ExportCSV handles GET /repuestos/export - inventory snapshot as CSV.
func (h *SparePartHandler) ExportCSV(c *gin.Context) {
	filter, err := h.ParseListFilter(c, "code")
	if err != nil {
		h.Error(c, err)
		return
	}
	// Export everything that matches the filter, not one page.
	filter.Limit = 10000
	filter.Offset = 0

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	doc := csvexport.Document{
		Headers: []string{"codigo", "nombre", "precio_unitario", "stock_actual", "stock_minimo", "activo"},
	}
	for _, p := range result.Items {
		active := "si"
		if !p.IsActive {
			active = "no"
		}
		doc.Rows = append(doc.Rows, []string{
			p.Code,
			p.Name,
			p.UnitPrice.StringFixed(2),
			p.Stock.String(),
			p.StockMin.String(),
			active,
		})
	}

	if err := csvexport.WriteHTTP(c.Writer, "repuestos.csv", doc); err != nil {
		h.Error(c, err)
	}
}

// RegisterRoutes registers spare part routes.
func (h *SparePartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	h.CatalogHandler.RegisterRoutes(rg)
	rg.GET("/bajo-stock", h.ListLowStock)
	rg.GET("/export", h.ExportCSV)
}
