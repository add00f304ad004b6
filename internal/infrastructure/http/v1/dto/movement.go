package dto

import (
	"taller/internal/core/id"
	"taller/internal/core/types"
	"taller/internal/domain/inventory"
)

// CreateMovementRequest registers a stock movement for a spare part.
type CreateMovementRequest struct {
	PartID    string      `json:"id_repuesto" binding:"required,uuid"`
	Type      string      `json:"tipo" binding:"required"`
	Quantity  types.Money `json:"cantidad" binding:"required"`
	Reference *string     `json:"referencia,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateMovementRequest) ToEntity() (*inventory.Movement, error) {
	partID, err := id.Parse(r.PartID)
	if err != nil {
		return nil, err
	}

	m := inventory.NewMovement(partID, inventory.MovementType(r.Type), r.Quantity)
	m.Reference = r.Reference
	return m, nil
}
