// Package quotation provides the Quotation document (cotización):
// a priced proposal for services and parts, later approved or rejected.
package quotation

import (
	"context"
	"time"

	"taller/internal/core/apperror"
	"taller/internal/core/entity"
	"taller/internal/core/id"
	"taller/internal/core/types"
	"taller/internal/domain/billing"
)

// Status is the quotation lifecycle state.
type Status string

const (
	StatusPending  Status = "pendiente"
	StatusApproved Status = "aprobada"
	StatusRejected Status = "rechazada"
)

// IsValid reports whether the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Quotation represents a priced proposal document.
// Totals are derived fields: they are recalculated from lines and rates
// before every persistence, never trusted from input.
type Quotation struct {
	entity.Document

	// ClientID is the addressed client (required)
	ClientID id.ID `db:"client_id" json:"id_cliente"`

	// VehicleID is the optional subject vehicle
	VehicleID *id.ID `db:"vehicle_id" json:"id_vehiculo,omitempty"`

	// ValidUntil is the offer expiry date
	ValidUntil *time.Time `db:"valid_until" json:"valida_hasta,omitempty"`

	// TaxRate is the tax percentage applied to the subtotal
	TaxRate types.Money `db:"tax_rate" json:"impuestos"`

	// DiscountRate is the discount percentage applied to the subtotal
	DiscountRate types.Money `db:"discount_rate" json:"descuentos"`

	// Derived totals
	Subtotal       types.Money `db:"subtotal" json:"subtotal"`
	TaxAmount      types.Money `db:"tax_amount" json:"monto_impuestos"`
	DiscountAmount types.Money `db:"discount_amount" json:"monto_descuentos"`
	Total          types.Money `db:"total" json:"total"`

	// Status is the lifecycle state
	Status Status `db:"status" json:"estado"`

	// Table part: quoted items
	Lines []billing.LineItem `db:"-" json:"detalles"`
}

// NewQuotation creates a new pending quotation for a client.
func NewQuotation(clientID id.ID) *Quotation {
	q := &Quotation{
		Document: entity.NewDocument(),
		ClientID: clientID,
		Status:   StatusPending,
		TaxRate:  types.Zero(),
		Lines:    make([]billing.LineItem, 0),
	}
	q.RecalculateTotals()
	return q
}

// AddLine appends a line and recalculates totals.
func (q *Quotation) AddLine(line billing.LineItem) {
	line.LineNo = len(q.Lines) + 1
	q.Lines = append(q.Lines, line)
	q.RecalculateTotals()
}

// RecalculateTotals rebuilds the derived totals from lines and rates.
func (q *Quotation) RecalculateTotals() {
	t := billing.ComputeTotals(q.Lines, q.TaxRate, q.DiscountRate)
	q.Subtotal = t.Subtotal
	q.TaxAmount = t.TaxAmount
	q.DiscountAmount = t.DiscountAmount
	q.Total = t.Total
}

// Totals returns the derived aggregate figures.
func (q *Quotation) Totals() billing.Totals {
	return billing.Totals{
		Subtotal:       q.Subtotal,
		TaxAmount:      q.TaxAmount,
		DiscountAmount: q.DiscountAmount,
		Total:          q.Total,
	}
}

// Items returns a copy of the line items.
func (q *Quotation) Items() []billing.LineItem {
	items := make([]billing.LineItem, len(q.Lines))
	copy(items, q.Lines)
	return items
}

// Validate implements entity.Validatable.
func (q *Quotation) Validate(ctx context.Context) error {
	if err := q.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(q.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "id_cliente")
	}
	if !q.Status.IsValid() {
		return apperror.NewInvalidStatus("quotation", string(q.Status))
	}
	if q.TaxRate.IsNegative() {
		return apperror.NewValidation("tax rate cannot be negative").
			WithDetail("field", "impuestos")
	}
	if q.DiscountRate.IsNegative() {
		return apperror.NewValidation("discount rate cannot be negative").
			WithDetail("field", "descuentos")
	}
	if len(q.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "detalles")
	}
	for _, line := range q.Lines {
		if err := line.Validate(ctx); err != nil {
			return err
		}
	}

	return nil
}
