// Package spare_part provides the spare parts catalog with stock levels.
// Stock is mutated only through inventory movements.
package spare_part

import (
	"context"

	"taller/internal/core/apperror"
	"taller/internal/core/entity"
	"taller/internal/core/types"
	"taller/internal/domain/billing"
)

// SparePart represents a stocked part sold on invoices and tickets.
type SparePart struct {
	entity.Catalog

	// Description is a detailed description
	Description *string `db:"description" json:"descripcion,omitempty"`

	// UnitPrice is the default sale price
	UnitPrice types.Money `db:"unit_price" json:"precio_unitario"`

	// Stock is the current quantity on hand
	Stock types.Money `db:"stock" json:"stock_actual"`

	// StockMin is the reorder threshold
	StockMin types.Money `db:"stock_min" json:"stock_minimo"`

	// Category groups parts for selection (e.g. "filtros", "frenos")
	Category *string `db:"category" json:"categoria,omitempty"`

	// IsActive controls visibility in selection lists
	IsActive bool `db:"is_active" json:"activo"`
}

// NewSparePart creates a new SparePart with required fields.
func NewSparePart(code, name string, unitPrice types.Money) *SparePart {
	return &SparePart{
		Catalog:   entity.NewCatalog(code, name),
		UnitPrice: unitPrice,
		Stock:     types.Zero(),
		StockMin:  types.Zero(),
		IsActive:  true,
	}
}

// Validate implements entity.Validatable interface.
func (p *SparePart) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "precio_unitario")
	}
	if p.Stock.IsNegative() {
		return apperror.NewValidation("stock cannot be negative").
			WithDetail("field", "stock_actual")
	}
	if p.StockMin.IsNegative() {
		return apperror.NewValidation("minimum stock cannot be negative").
			WithDetail("field", "stock_minimo")
	}

	return nil
}

// IsLowStock reports whether stock has fallen to or below the minimum.
func (p *SparePart) IsLowStock() bool {
	return p.Stock.LessThanOrEqual(p.StockMin)
}

// CatalogEntry projects the part for line item selection.
func (p *SparePart) CatalogEntry() billing.CatalogEntry {
	return billing.CatalogEntry{
		ID:          p.ID,
		Description: p.Name,
		UnitPrice:   p.UnitPrice,
	}
}
