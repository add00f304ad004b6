// Package workshop_service provides the catalog of labor services the
// workshop offers (oil change, brake service, diagnostics, ...).
package workshop_service

import (
	"context"

	"taller/internal/core/apperror"
	"taller/internal/core/entity"
	"taller/internal/core/types"
	"taller/internal/domain/billing"
)

// WorkshopService represents a billable labor service.
type WorkshopService struct {
	entity.Catalog

	// Description is a detailed description
	Description *string `db:"description" json:"descripcion,omitempty"`

	// BasePrice is the default unit price
	BasePrice types.Money `db:"base_price" json:"precio_base"`

	// EstimatedMinutes is the expected labor time
	EstimatedMinutes int `db:"estimated_minutes" json:"tiempo_estimado"`

	// Category groups services for selection (e.g. "motor", "frenos")
	Category *string `db:"category" json:"categoria,omitempty"`

	// IsActive controls visibility in selection lists
	IsActive bool `db:"is_active" json:"activo"`
}

// NewWorkshopService creates a new service with required fields.
func NewWorkshopService(code, name string, basePrice types.Money) *WorkshopService {
	return &WorkshopService{
		Catalog:   entity.NewCatalog(code, name),
		BasePrice: basePrice,
		IsActive:  true,
	}
}

// Validate implements entity.Validatable interface.
func (w *WorkshopService) Validate(ctx context.Context) error {
	if err := w.Catalog.Validate(ctx); err != nil {
		return err
	}

	if w.BasePrice.IsNegative() {
		return apperror.NewValidation("base price cannot be negative").
			WithDetail("field", "precio_base")
	}
	if w.EstimatedMinutes < 0 {
		return apperror.NewValidation("estimated time cannot be negative").
			WithDetail("field", "tiempo_estimado")
	}

	return nil
}

// CatalogEntry projects the service for line item selection.
func (w *WorkshopService) CatalogEntry() billing.CatalogEntry {
	return billing.CatalogEntry{
		ID:          w.ID,
		Description: w.Name,
		UnitPrice:   w.BasePrice,
	}
}
