package workshop_service

import (
	"context"

	"taller/internal/domain"
)

// Repository defines the interface for WorkshopService persistence.
type Repository interface {
	domain.CatalogRepository[*WorkshopService]

	// FindActive retrieves active services for selection lists.
	FindActive(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*WorkshopService], error)
}
