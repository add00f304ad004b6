package dto

import (
	"taller/internal/core/id"
	"taller/internal/core/types"
	"taller/internal/domain/billing"
	"taller/internal/domain/documents"
)

// LineItemRequest is a catalog reference in a document request.
// Description and unit price are never accepted from the client: they are
// snapshotted from the catalog when the line is resolved.
type LineItemRequest struct {
	ItemType string      `json:"tipo_item" binding:"required"`
	ItemID   string      `json:"id_item" binding:"required,uuid"`
	Quantity types.Money `json:"cantidad" binding:"required"`
}

// ToLineRequests converts request lines to resolver input.
func ToLineRequests(lines []LineItemRequest) ([]documents.LineRequest, error) {
	reqs := make([]documents.LineRequest, 0, len(lines))
	for _, l := range lines {
		itemID, err := id.Parse(l.ItemID)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, documents.LineRequest{
			ItemType: billing.ItemType(l.ItemType),
			ItemID:   itemID,
			Quantity: l.Quantity,
		})
	}
	return reqs, nil
}
