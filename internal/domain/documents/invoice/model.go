// Package invoice provides the Invoice document (factura): the billable
// outcome of a work ticket or a direct sale of services and parts.
package invoice

import (
	"context"

	"taller/internal/core/apperror"
	"taller/internal/core/entity"
	"taller/internal/core/id"
	"taller/internal/core/types"
	"taller/internal/domain/billing"
)

// PaymentStatus is the invoice payment state.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pendiente"
	PaymentPaid    PaymentStatus = "pagada"
	PaymentPartial PaymentStatus = "parcial"
	PaymentVoid    PaymentStatus = "anulada"
)

// IsValid reports whether the status is a known value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentPartial, PaymentVoid:
		return true
	}
	return false
}

// Invoice represents a billable document.
// Totals are derived fields, recalculated before every persistence.
type Invoice struct {
	entity.Document

	// ClientID is the billed client (required)
	ClientID id.ID `db:"client_id" json:"id_cliente"`

	// VehicleID is the optional subject vehicle
	VehicleID *id.ID `db:"vehicle_id" json:"id_vehiculo,omitempty"`

	// TicketID references the source work ticket, when generated from one
	TicketID *id.ID `db:"ticket_id" json:"id_ticket,omitempty"`

	// PaymentMethodID references the payment method catalog
	PaymentMethodID *id.ID `db:"payment_method_id" json:"id_forma_pago,omitempty"`

	// PaymentMethod is the display snapshot of the payment method name
	PaymentMethod string `db:"payment_method" json:"forma_pago,omitempty"`

	// TaxRate is the tax percentage applied to the subtotal
	TaxRate types.Money `db:"tax_rate" json:"impuestos"`

	// DiscountRate is the discount percentage applied to the subtotal
	DiscountRate types.Money `db:"discount_rate" json:"descuentos"`

	// Derived totals
	Subtotal       types.Money `db:"subtotal" json:"subtotal"`
	TaxAmount      types.Money `db:"tax_amount" json:"monto_impuestos"`
	DiscountAmount types.Money `db:"discount_amount" json:"monto_descuentos"`
	Total          types.Money `db:"total" json:"total"`

	// PaymentStatus is the payment lifecycle state
	PaymentStatus PaymentStatus `db:"payment_status" json:"estado_pago"`

	// Table part: billed items
	Lines []billing.LineItem `db:"-" json:"detalles"`
}

// NewInvoice creates a new pending invoice for a client.
func NewInvoice(clientID id.ID) *Invoice {
	inv := &Invoice{
		Document:      entity.NewDocument(),
		ClientID:      clientID,
		PaymentStatus: PaymentPending,
		TaxRate:       types.Zero(),
		Lines:         make([]billing.LineItem, 0),
	}
	inv.RecalculateTotals()
	return inv
}

// NewFromTicketLines creates a pending invoice from a work ticket's
// billable lines. Line snapshots are copied as-is; totals derive from them.
func NewFromTicketLines(clientID id.ID, vehicleID, ticketID *id.ID, lines []billing.LineItem) *Invoice {
	inv := NewInvoice(clientID)
	inv.VehicleID = vehicleID
	inv.TicketID = ticketID
	for _, line := range lines {
		inv.AddLine(line)
	}
	return inv
}

// AddLine appends a line and recalculates totals.
func (inv *Invoice) AddLine(line billing.LineItem) {
	line.LineNo = len(inv.Lines) + 1
	inv.Lines = append(inv.Lines, line)
	inv.RecalculateTotals()
}

// RecalculateTotals rebuilds the derived totals from lines and rates.
func (inv *Invoice) RecalculateTotals() {
	t := billing.ComputeTotals(inv.Lines, inv.TaxRate, inv.DiscountRate)
	inv.Subtotal = t.Subtotal
	inv.TaxAmount = t.TaxAmount
	inv.DiscountAmount = t.DiscountAmount
	inv.Total = t.Total
}

// Totals returns the derived aggregate figures.
func (inv *Invoice) Totals() billing.Totals {
	return billing.Totals{
		Subtotal:       inv.Subtotal,
		TaxAmount:      inv.TaxAmount,
		DiscountAmount: inv.DiscountAmount,
		Total:          inv.Total,
	}
}

// Items returns a copy of the line items.
func (inv *Invoice) Items() []billing.LineItem {
	items := make([]billing.LineItem, len(inv.Lines))
	copy(items, inv.Lines)
	return items
}

// CanModify checks whether the invoice content may still change.
// Voided invoices are frozen.
func (inv *Invoice) CanModify() error {
	if inv.PaymentStatus == PaymentVoid {
		return apperror.NewBusinessRule(
			apperror.CodeInvalidStatus,
			"cannot modify a voided invoice",
		).WithDetail("invoice_id", inv.ID.String())
	}
	return nil
}

// Validate implements entity.Validatable.
func (inv *Invoice) Validate(ctx context.Context) error {
	if err := inv.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(inv.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "id_cliente")
	}
	if !inv.PaymentStatus.IsValid() {
		return apperror.NewInvalidStatus("invoice", string(inv.PaymentStatus))
	}
	if inv.TaxRate.IsNegative() {
		return apperror.NewValidation("tax rate cannot be negative").
			WithDetail("field", "impuestos")
	}
	if inv.DiscountRate.IsNegative() {
		return apperror.NewValidation("discount rate cannot be negative").
			WithDetail("field", "descuentos")
	}
	if len(inv.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "detalles")
	}
	for _, line := range inv.Lines {
		if err := line.Validate(ctx); err != nil {
			return err
		}
	}

	return nil
}
