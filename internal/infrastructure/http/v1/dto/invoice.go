package dto

import (
	"time"

	"taller/internal/core/id"
	"taller/internal/core/types"
	"taller/internal/domain/documents/invoice"
)

// CreateInvoiceRequest for creating an invoice from scratch.
// Invoices generated from a work ticket use the ticket endpoint instead.
type CreateInvoiceRequest struct {
	ClientID        string            `json:"id_cliente" binding:"required,uuid"`
	VehicleID       *string           `json:"id_vehiculo,omitempty" binding:"omitempty,uuid"`
	PaymentMethodID *string           `json:"id_forma_pago,omitempty" binding:"omitempty,uuid"`
	PaymentMethod   string            `json:"forma_pago,omitempty"`
	Date            *time.Time        `json:"fecha,omitempty"`
	TaxRate         types.Money       `json:"impuestos"`
	DiscountRate    types.Money       `json:"descuentos"`
	Comment         string            `json:"observaciones,omitempty"`
	Lines           []LineItemRequest `json:"detalles" binding:"required,min=1,dive"`
}

// ToEntity converts request to domain entity without lines.
func (r *CreateInvoiceRequest) ToEntity() (*invoice.Invoice, error) {
	clientID, err := id.Parse(r.ClientID)
	if err != nil {
		return nil, err
	}

	doc := invoice.NewInvoice(clientID)
	if r.VehicleID != nil {
		vehicleID, err := id.Parse(*r.VehicleID)
		if err != nil {
			return nil, err
		}
		doc.VehicleID = &vehicleID
	}
	if r.PaymentMethodID != nil {
		pmID, err := id.Parse(*r.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		doc.PaymentMethodID = &pmID
	}
	if r.Date != nil {
		doc.Date = *r.Date
	}
	doc.PaymentMethod = r.PaymentMethod
	doc.TaxRate = r.TaxRate
	doc.DiscountRate = r.DiscountRate
	doc.Comment = r.Comment
	return doc, nil
}

// UpdateInvoiceRequest for updating an invoice.
type UpdateInvoiceRequest struct {
	VehicleID       *string           `json:"id_vehiculo,omitempty" binding:"omitempty,uuid"`
	PaymentMethodID *string           `json:"id_forma_pago,omitempty" binding:"omitempty,uuid"`
	PaymentMethod   *string           `json:"forma_pago,omitempty"`
	Date            *time.Time        `json:"fecha,omitempty"`
	TaxRate         *types.Money      `json:"impuestos,omitempty"`
	DiscountRate    *types.Money      `json:"descuentos,omitempty"`
	Comment         *string           `json:"observaciones,omitempty"`
	Lines           []LineItemRequest `json:"detalles,omitempty" binding:"omitempty,min=1,dive"`
	Version         int               `json:"version" binding:"required,min=1"`
}

// ApplyTo applies scalar updates to an existing entity.
func (r *UpdateInvoiceRequest) ApplyTo(doc *invoice.Invoice) error {
	if r.VehicleID != nil {
		vehicleID, err := id.Parse(*r.VehicleID)
		if err != nil {
			return err
		}
		doc.VehicleID = &vehicleID
	}
	if r.PaymentMethodID != nil {
		pmID, err := id.Parse(*r.PaymentMethodID)
		if err != nil {
			return err
		}
		doc.PaymentMethodID = &pmID
	}
	if r.PaymentMethod != nil {
		doc.PaymentMethod = *r.PaymentMethod
	}
	if r.Date != nil {
		doc.Date = *r.Date
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

// ChangeInvoiceStatusRequest moves an invoice through its payment lifecycle.
type ChangeInvoiceStatusRequest struct {
	Status string `json:"estado_pago" binding:"required"`
}

// MarkInvoicePaidRequest optionally stamps the payment method when
// marking an invoice as paid.
type MarkInvoicePaidRequest struct {
	PaymentMethod string `json:"forma_pago,omitempty"`
}

// BillTicketRequest creates an invoice from a work ticket.
type BillTicketRequest struct {
	PaymentMethodID *string     `json:"id_forma_pago,omitempty" binding:"omitempty,uuid"`
	PaymentMethod   string      `json:"forma_pago,omitempty"`
	TaxRate         types.Money `json:"impuestos"`
	DiscountRate    types.Money `json:"descuentos"`
}
