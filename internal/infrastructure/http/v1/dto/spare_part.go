package dto

import (
	"taller/internal/core/types"
	"taller/internal/domain/catalogs/spare_part"
)

// CreateSparePartRequest for registering a spare part.
// Stock is set through inventory movements, not through catalog writes;
// the initial quantity here is recorded as the opening stock.
type CreateSparePartRequest struct {
	Code        string      `json:"code,omitempty"`
	Name        string      `json:"nombre" binding:"required"`
	Description *string     `json:"descripcion,omitempty"`
	UnitPrice   types.Money `json:"precio_unitario"`
	Stock       types.Money `json:"stock_actual"`
	StockMin    types.Money `json:"stock_minimo"`
	Category    *string     `json:"categoria,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateSparePartRequest) ToEntity() *spare_part.SparePart {
	p := spare_part.NewSparePart(r.Code, r.Name, r.UnitPrice)
	p.Description = r.Description
	p.Stock = r.Stock
	p.StockMin = r.StockMin
	p.Category = r.Category
	return p
}

// UpdateSparePartRequest for updating a spare part.
type UpdateSparePartRequest struct {
	Code        *string      `json:"code,omitempty"`
	Name        *string      `json:"nombre,omitempty"`
	Description *string      `json:"descripcion,omitempty"`
	UnitPrice   *types.Money `json:"precio_unitario,omitempty"`
	StockMin    *types.Money `json:"stock_minimo,omitempty"`
	Category    *string      `json:"categoria,omitempty"`
	IsActive    *bool        `json:"activo,omitempty"`
	Version     int          `json:"version" binding:"required,min=1"`
}

// ApplyTo applies updates to an existing entity.
// Stock is deliberately absent: it only changes through movements.
func (r *UpdateSparePartRequest) ApplyTo(p *spare_part.SparePart) {
	if r.Code != nil {
		p.Code = *r.Code
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = r.Description
	}
	if r.UnitPrice != nil {
		p.UnitPrice = *r.UnitPrice
	}
	if r.StockMin != nil {
		p.StockMin = *r.StockMin
	}
	if r.Category != nil {
		p.Category = r.Category
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	p.Version = r.Version
}
