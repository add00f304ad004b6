// Package billing contains the line item model and totals arithmetic shared
// by quotations, invoices and work tickets.
package billing

import (
	"context"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/core/types"
)

// ItemType discriminates catalog origin of a line item.
type ItemType string

const (
	ItemTypeService ItemType = "servicio"
	ItemTypePart    ItemType = "repuesto"
)

// IsValid reports whether the item type is a known value.
func (t ItemType) IsValid() bool {
	return t == ItemTypeService || t == ItemTypePart
}

// LineItem is one row of a billable document.
// Description and UnitPrice are snapshots taken at selection time; later
// catalog price changes do not affect persisted documents.
type LineItem struct {
	LineNo      int         `db:"line_no" json:"linea"`
	ItemType    ItemType    `db:"item_type" json:"tipo_item"`
	ItemID      *id.ID      `db:"item_id" json:"id_item,omitempty"`
	Description string      `db:"description" json:"descripcion"`
	Quantity    types.Money `db:"quantity" json:"cantidad"`
	UnitPrice   types.Money `db:"unit_price" json:"precio_unitario"`
}

// Subtotal returns Quantity * UnitPrice without rounding.
// Rounding happens once, on document aggregates.
func (l LineItem) Subtotal() types.Money {
	return l.Quantity.Mul(l.UnitPrice)
}

// Validate checks line invariants.
func (l LineItem) Validate(ctx context.Context) error {
	if !l.ItemType.IsValid() {
		return apperror.NewValidation("unknown item type").
			WithDetail("field", "tipo_item").
			WithDetail("value", string(l.ItemType))
	}
	if !l.Quantity.IsPositive() {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "cantidad").
			WithDetail("line", l.LineNo)
	}
	if l.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "precio_unitario").
			WithDetail("line", l.LineNo)
	}
	return nil
}
