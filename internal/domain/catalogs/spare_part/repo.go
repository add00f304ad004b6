package spare_part

import (
	"context"

	"taller/internal/core/id"
	"taller/internal/core/types"
	"taller/internal/domain"
)

// Repository defines the interface for SparePart persistence.
type Repository interface {
	domain.CatalogRepository[*SparePart]

	// GetForUpdate retrieves a part with a row lock for stock mutation.
	GetForUpdate(ctx context.Context, id id.ID) (*SparePart, error)

	// UpdateStock writes a new stock quantity for a part.
	UpdateStock(ctx context.Context, id id.ID, stock types.Money) error

	// FindLowStock retrieves parts with stock at or below minimum.
	FindLowStock(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*SparePart], error)
}
