package dto

import (
	"taller/internal/core/types"
	"taller/internal/domain/catalogs/workshop_service"
)

// CreateServiceRequest for registering a catalog service.
type CreateServiceRequest struct {
	Code             string      `json:"code,omitempty"`
	Name             string      `json:"nombre" binding:"required"`
	Description      *string     `json:"descripcion,omitempty"`
	BasePrice        types.Money `json:"precio_base"`
	EstimatedMinutes int         `json:"tiempo_estimado,omitempty"`
	Category         *string     `json:"categoria,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateServiceRequest) ToEntity() *workshop_service.WorkshopService {
	w := workshop_service.NewWorkshopService(r.Code, r.Name, r.BasePrice)
	w.Description = r.Description
	w.EstimatedMinutes = r.EstimatedMinutes
	w.Category = r.Category
	return w
}

// UpdateServiceRequest for updating a catalog service.
type UpdateServiceRequest struct {
	Code             *string      `json:"code,omitempty"`
	Name             *string      `json:"nombre,omitempty"`
	Description      *string      `json:"descripcion,omitempty"`
	BasePrice        *types.Money `json:"precio_base,omitempty"`
	EstimatedMinutes *int         `json:"tiempo_estimado,omitempty"`
	Category         *string      `json:"categoria,omitempty"`
	IsActive         *bool        `json:"activo,omitempty"`
	Version          int          `json:"version" binding:"required,min=1"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateServiceRequest) ApplyTo(w *workshop_service.WorkshopService) {
	if r.Code != nil {
		w.Code = *r.Code
	}
	if r.Name != nil {
		w.Name = *r.Name
	}
	if r.Description != nil {
		w.Description = r.Description
	}
	if r.BasePrice != nil {
		w.BasePrice = *r.BasePrice
	}
	if r.EstimatedMinutes != nil {
		w.EstimatedMinutes = *r.EstimatedMinutes
	}
	if r.Category != nil {
		w.Category = r.Category
	}
	if r.IsActive != nil {
		w.IsActive = *r.IsActive
	}
	w.Version = r.Version
}
