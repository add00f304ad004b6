// Package inventory provides stock movements for spare parts. Every stock
// change flows through a movement, which snapshots the quantity before and
// after it was applied.
package inventory

import (
	"context"

	"taller/internal/core/apperror"
	"taller/internal/core/entity"
	"taller/internal/core/id"
	"taller/internal/core/types"
)

// MovementType is the direction of a stock movement.
type MovementType string

const (
	MovementIn  MovementType = "entrada"
	MovementOut MovementType = "salida"
)

// IsValid reports whether the movement type is a known value.
func (t MovementType) IsValid() bool {
	return t == MovementIn || t == MovementOut
}

// Movement represents one stock change of a spare part.
// StockBefore and StockAfter are filled by the service when the movement
// is applied; they are never taken from input.
type Movement struct {
	entity.Document

	// PartID is the affected spare part (required)
	PartID id.ID `db:"part_id" json:"id_repuesto"`

	// Type is the movement direction
	Type MovementType `db:"type" json:"tipo"`

	// Quantity is the moved amount (always positive)
	Quantity types.Money `db:"quantity" json:"cantidad"`

	// Reference is a free-form pointer to the cause (ticket number,
	// supplier document, adjustment note)
	Reference *string `db:"reference" json:"referencia,omitempty"`

	// Stock snapshots around the movement
	StockBefore types.Money `db:"stock_before" json:"stock_anterior"`
	StockAfter  types.Money `db:"stock_after" json:"stock_nuevo"`
}

// NewMovement creates a movement ready to be applied.
func NewMovement(partID id.ID, movType MovementType, quantity types.Money) *Movement {
	return &Movement{
		Document: entity.NewDocument(),
		PartID:   partID,
		Type:     movType,
		Quantity: quantity,
	}
}

// Validate implements entity.Validatable.
func (m *Movement) Validate(ctx context.Context) error {
	if err := m.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(m.PartID) {
		return apperror.NewValidation("part is required").
			WithDetail("field", "id_repuesto")
	}
	if !m.Type.IsValid() {
		return apperror.NewValidation("unknown movement type").
			WithDetail("field", "tipo").
			WithDetail("value", string(m.Type))
	}
	if !m.Quantity.IsPositive() {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "cantidad")
	}

	return nil
}

// Apply computes the stock snapshots for the given starting stock and
// returns the resulting stock level.
func (m *Movement) Apply(stock types.Money) types.Money {
	m.StockBefore = stock
	if m.Type == MovementIn {
		m.StockAfter = stock.Add(m.Quantity)
	} else {
		m.StockAfter = stock.Sub(m.Quantity)
	}
	return m.StockAfter
}
