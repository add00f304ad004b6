// Package ticket provides the WorkTicket document: the shop-floor record of
// a vehicle's repair, carrying service and part lines that can later be
// billed as an invoice.
package ticket

import (
	"context"

	"taller/internal/core/apperror"
	"taller/internal/core/entity"
	"taller/internal/core/id"
	"taller/internal/core/types"
	"taller/internal/domain/billing"
)

// Status is the work ticket lifecycle state.
type Status string

const (
	StatusOpen       Status = "abierto"
	StatusInProgress Status = "en_proceso"
	StatusCompleted  Status = "completado"
	StatusDelivered  Status = "entregado"
)

// IsValid reports whether the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusDelivered:
		return true
	}
	return false
}

// WorkTicket represents a repair order for a vehicle.
// Service and part totals are derived from lines; no tax or discount is
// applied at the ticket stage, that happens on the invoice.
type WorkTicket struct {
	entity.Document

	// ClientID is the owning client (required)
	ClientID id.ID `db:"client_id" json:"id_cliente"`

	// VehicleID is the vehicle under repair (required)
	VehicleID id.ID `db:"vehicle_id" json:"id_vehiculo"`

	// EmployeeID is the assigned mechanic
	EmployeeID *id.ID `db:"employee_id" json:"id_empleado,omitempty"`

	// Problem is the client-reported problem
	Problem string `db:"problem" json:"problema"`

	// Diagnosis is the mechanic's finding
	Diagnosis *string `db:"diagnosis" json:"diagnostico,omitempty"`

	// Status is the lifecycle state
	Status Status `db:"status" json:"estado"`

	// Derived totals
	TotalServices types.Money `db:"total_services" json:"total_servicios"`
	TotalParts    types.Money `db:"total_parts" json:"total_repuestos"`
	TotalGeneral  types.Money `db:"total_general" json:"total_general"`

	// Table part: performed services and consumed parts
	Lines []billing.LineItem `db:"-" json:"detalles"`
}

// NewWorkTicket creates a new open ticket for a client's vehicle.
func NewWorkTicket(clientID, vehicleID id.ID, problem string) *WorkTicket {
	t := &WorkTicket{
		Document:  entity.NewDocument(),
		ClientID:  clientID,
		VehicleID: vehicleID,
		Problem:   problem,
		Status:    StatusOpen,
		Lines:     make([]billing.LineItem, 0),
	}
	t.RecalculateTotals()
	return t
}

// AddLine appends a line and recalculates totals.
func (t *WorkTicket) AddLine(line billing.LineItem) {
	line.LineNo = len(t.Lines) + 1
	t.Lines = append(t.Lines, line)
	t.RecalculateTotals()
}

// RecalculateTotals rebuilds the per-type and general totals.
// Like document totals elsewhere, line amounts accumulate unrounded and
// only the aggregates are rounded.
func (t *WorkTicket) RecalculateTotals() {
	services := types.Zero()
	parts := types.Zero()
	for _, line := range t.Lines {
		switch line.ItemType {
		case billing.ItemTypeService:
			services = services.Add(line.Subtotal())
		case billing.ItemTypePart:
			parts = parts.Add(line.Subtotal())
		}
	}

	t.TotalServices = types.Round2(services)
	t.TotalParts = types.Round2(parts)
	t.TotalGeneral = types.Round2(services.Add(parts))
}

// BillableLines returns a copy of the lines for invoice generation.
func (t *WorkTicket) BillableLines() []billing.LineItem {
	lines := make([]billing.LineItem, len(t.Lines))
	copy(lines, t.Lines)
	return lines
}

// Validate implements entity.Validatable.
// A ticket may exist without lines while the vehicle is being diagnosed.
func (t *WorkTicket) Validate(ctx context.Context) error {
	if err := t.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(t.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "id_cliente")
	}
	if id.IsNil(t.VehicleID) {
		return apperror.NewValidation("vehicle is required").
			WithDetail("field", "id_vehiculo")
	}
	if t.Problem == "" {
		return apperror.NewValidation("reported problem is required").
			WithDetail("field", "problema")
	}
	if !t.Status.IsValid() {
		return apperror.NewInvalidStatus("ticket", string(t.Status))
	}
	for _, line := range t.Lines {
		if err := line.Validate(ctx); err != nil {
			return err
		}
	}

	return nil
}
