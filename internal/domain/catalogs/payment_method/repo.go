package payment_method

import (
	"taller/internal/domain"
)

// Repository defines the interface for PaymentMethod persistence.
type Repository interface {
	domain.CatalogRepository[*PaymentMethod]
}
