package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/domain/catalogs/client"
	"taller/internal/domain/catalogs/vehicle"
	"taller/internal/infrastructure/http/v1/dto"
)

// ClientHandler handles HTTP requests for the client catalog.
type ClientHandler struct {
	*CatalogHandler[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]
	service  *client.Service
	vehicles *vehicle.Service
}

// NewClientHandler creates a new client handler.
func NewClientHandler(base *BaseHandler, service *client.Service, vehicles *vehicle.Service) *ClientHandler {
	cfg := CatalogHandlerConfig[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]{
		Service:    service.CatalogService,
		EntityName: "client",
		MapCreateDTO: func(req dto.CreateClientRequest) (*client.Client, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateClientRequest, existing *client.Client) (*client.Client, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
	}

	return &ClientHandler{
		CatalogHandler: NewCatalogHandler(base, cfg),
		service:        service,
		vehicles:       vehicles,
	}
}

// FindByNIT handles GET /clientes/nit/:nit - lookup by tax number.
func (h *ClientHandler) FindByNIT(c *gin.Context) {
	nit := c.Param("nit")
	if nit == "" {
		h.Error(c, apperror.NewValidation("missing nit"))
		return
	}

	found, err := h.service.FindByNIT(c.Request.Context(), nit)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

// ListVehicles handles GET /clientes/:id/vehiculos - the client's fleet.
func (h *ClientHandler) ListVehicles(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	filter, err := h.ParseListFilter(c, "plate")
	if err != nil {
		h.Error(c, err)
		return
	}

	result, err := h.vehicles.FindByClient(ctx, clientID, filter)
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

// RegisterRoutes registers client routes.
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	h.CatalogHandler.RegisterRoutes(rg)
	rg.GET("/nit/:nit", h.FindByNIT)
	rg.GET("/:id/vehiculos", h.ListVehicles)
}
