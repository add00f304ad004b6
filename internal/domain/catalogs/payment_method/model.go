// Package payment_method provides the payment methods catalog
// (efectivo, tarjeta, transferencia, ...).
package payment_method

import (
	"context"

	"taller/internal/core/entity"
)

// PaymentMethod represents an accepted form of payment.
type PaymentMethod struct {
	entity.Catalog

	// IsActive controls availability on new invoices
	IsActive bool `db:"is_active" json:"activo"`
}

// NewPaymentMethod creates a new PaymentMethod.
func NewPaymentMethod(code, name string) *PaymentMethod {
	return &PaymentMethod{
		Catalog:  entity.NewCatalog(code, name),
		IsActive: true,
	}
}

// Validate implements entity.Validatable interface.
func (m *PaymentMethod) Validate(ctx context.Context) error {
	return m.Catalog.Validate(ctx)
}
