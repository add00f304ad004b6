package client

import (
	"context"

	"taller/internal/domain"
)

// Repository defines the interface for Client persistence.
type Repository interface {
	domain.CatalogRepository[*Client]

	// FindByNIT retrieves a client by tax identification number.
	FindByNIT(ctx context.Context, nit string) (*Client, error)
}
