package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taller/internal/domain/catalogs/workshop_service"
	"taller/internal/infrastructure/http/v1/dto"
)

// ServiceHandler handles HTTP requests for the workshop service catalog.
type ServiceHandler struct {
	*CatalogHandler[*workshop_service.WorkshopService, dto.CreateServiceRequest, dto.UpdateServiceRequest]
	service *workshop_service.Service
}

// NewServiceHandler creates a new workshop service handler.
func NewServiceHandler(base *BaseHandler, service *workshop_service.Service) *ServiceHandler {
	cfg := CatalogHandlerConfig[*workshop_service.WorkshopService, dto.CreateServiceRequest, dto.UpdateServiceRequest]{
		Service:    service.CatalogService,
		EntityName: "workshop_service",
		MapCreateDTO: func(req dto.CreateServiceRequest) (*workshop_service.WorkshopService, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateServiceRequest, existing *workshop_service.WorkshopService) (*workshop_service.WorkshopService, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
	}

	return &ServiceHandler{
		CatalogHandler: NewCatalogHandler(base, cfg),
		service:        service,
	}
}

// ListActive handles GET /servicios/activos - selection list for documents.
func (h *ServiceHandler) ListActive(c *gin.Context) {
	filter, err := h.ParseListFilter(c, "name")
	if err != nil {
		h.Error(c, err)
		return
	}

	result, err := h.service.FindActive(c.Request.Context(), filter)
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

// RegisterRoutes registers workshop service routes.
func (h *ServiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	h.CatalogHandler.RegisterRoutes(rg)
	rg.GET("/activos", h.ListActive)
}
