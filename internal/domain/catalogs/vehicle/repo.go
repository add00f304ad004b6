package vehicle

import (
	"context"

	"taller/internal/core/id"
	"taller/internal/domain"
)

// Repository defines the interface for Vehicle persistence.
type Repository interface {
	domain.CatalogRepository[*Vehicle]

	// FindByPlate retrieves a vehicle by license plate.
	FindByPlate(ctx context.Context, plate string) (*Vehicle, error)

	// FindByClient retrieves all vehicles of a client.
	FindByClient(ctx context.Context, clientID id.ID, filter domain.ListFilter) (domain.ListResult[*Vehicle], error)
}
