package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taller/internal/core/apperror"
	"taller/internal/domain/catalogs/vehicle"
	"taller/internal/infrastructure/http/v1/dto"
)

// VehicleHandler handles HTTP requests for the vehicle catalog.
type VehicleHandler struct {
	*CatalogHandler[*vehicle.Vehicle, dto.CreateVehicleRequest, dto.UpdateVehicleRequest]
	service *vehicle.Service
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(base *BaseHandler, service *vehicle.Service) *VehicleHandler {
	cfg := CatalogHandlerConfig[*vehicle.Vehicle, dto.CreateVehicleRequest, dto.UpdateVehicleRequest]{
		Service:    service.CatalogService,
		EntityName: "vehicle",
		MapCreateDTO: func(req dto.CreateVehicleRequest) (*vehicle.Vehicle, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateVehicleRequest, existing *vehicle.Vehicle) (*vehicle.Vehicle, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
	}

	return &VehicleHandler{
		CatalogHandler: NewCatalogHandler(base, cfg),
		service:        service,
	}
}

// FindByPlate handles GET /vehiculos/placa/:placa - lookup by license plate.
func (h *VehicleHandler) FindByPlate(c *gin.Context) {
	plate := c.Param("placa")
	if plate == "" {
		h.Error(c, apperror.NewValidation("missing placa"))
		return
	}

	found, err := h.service.FindByPlate(c.Request.Context(), plate)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

// RegisterRoutes registers vehicle routes.
func (h *VehicleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	h.CatalogHandler.RegisterRoutes(rg)
	rg.GET("/placa/:placa", h.FindByPlate)
}
