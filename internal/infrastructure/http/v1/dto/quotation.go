package dto

import (
	"time"

	"taller/internal/core/id"
	"taller/internal/core/types"
	"taller/internal/domain/documents/quotation"
)

// CreateQuotationRequest for creating a quotation.
// Totals are never accepted from the client; they are recalculated from
// resolved lines and the tax/discount rates.
type CreateQuotationRequest struct {
	ClientID     string            `json:"id_cliente" binding:"required,uuid"`
	VehicleID    *string           `json:"id_vehiculo,omitempty" binding:"omitempty,uuid"`
	Date         *time.Time        `json:"fecha,omitempty"`
	ValidUntil   *time.Time        `json:"valida_hasta,omitempty"`
	TaxRate      types.Money       `json:"impuestos"`
	DiscountRate types.Money       `json:"descuentos"`
	Comment      string            `json:"observaciones,omitempty"`
	Lines        []LineItemRequest `json:"detalles" binding:"required,min=1,dive"`
}

// ToEntity converts request to domain entity without lines.
// Lines are resolved against the catalogs by the handler.
func (r *CreateQuotationRequest) ToEntity() (*quotation.Quotation, error) {
	clientID, err := id.Parse(r.ClientID)
	if err != nil {
		return nil, err
	}

	doc := quotation.NewQuotation(clientID)
	if r.VehicleID != nil {
		vehicleID, err := id.Parse(*r.VehicleID)
		if err != nil {
			return nil, err
		}
		doc.VehicleID = &vehicleID
	}
	if r.Date != nil {
		doc.Date = *r.Date
	}
	doc.ValidUntil = r.ValidUntil
	doc.TaxRate = r.TaxRate
	doc.DiscountRate = r.DiscountRate
	doc.Comment = r.Comment
	return doc, nil
}

// UpdateQuotationRequest for updating a quotation.
type UpdateQuotationRequest struct {
	VehicleID    *string           `json:"id_vehiculo,omitempty" binding:"omitempty,uuid"`
	Date         *time.Time        `json:"fecha,omitempty"`
	ValidUntil   *time.Time        `json:"valida_hasta,omitempty"`
	TaxRate      *types.Money      `json:"impuestos,omitempty"`
	DiscountRate *types.Money      `json:"descuentos,omitempty"`
	Comment      *string           `json:"observaciones,omitempty"`
	Lines        []LineItemRequest `json:"detalles,omitempty" binding:"omitempty,min=1,dive"`
	Version      int               `json:"version" binding:"required,min=1"`
}

// ApplyTo applies scalar updates to an existing entity.
// Line replacement is handled by the handler via the resolver.
func (r *UpdateQuotationRequest) ApplyTo(doc *quotation.Quotation) error {
	if r.VehicleID != nil {
		vehicleID, err := id.Parse(*r.VehicleID)
		if err != nil {
			return err
		}
		doc.VehicleID = &vehicleID
	}
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.ValidUntil != nil {
		doc.ValidUntil = r.ValidUntil
	}
	if r.TaxRate != nil {
		doc.TaxRate = *r.TaxRate
	}
	if r.DiscountRate != nil {
		doc.DiscountRate = *r.DiscountRate
	}
	if r.Comment != nil {
		doc.Comment = *r.Comment
	}
	doc.Version = r.Version
	return nil
}

// ChangeQuotationStatusRequest moves a quotation through its lifecycle.
type ChangeQuotationStatusRequest struct {
	Status string `json:"estado" binding:"required"`
}
