// Package employee provides the workshop staff catalog.
package employee

import (
	"context"

	"taller/internal/core/entity"
)

// Employee represents a workshop staff member (mechanic, receptionist).
type Employee struct {
	entity.Catalog

	// Position is the job title
	Position *string `db:"position" json:"puesto,omitempty"`

	// Phone is the contact phone number
	Phone *string `db:"phone" json:"telefono,omitempty"`

	// IsActive controls assignability to tickets and appointments
	IsActive bool `db:"is_active" json:"activo"`
}

// NewEmployee creates a new Employee.
func NewEmployee(code, name string) *Employee {
	return &Employee{
		Catalog:  entity.NewCatalog(code, name),
		IsActive: true,
	}
}

// Validate implements entity.Validatable interface.
func (e *Employee) Validate(ctx context.Context) error {
	return e.Catalog.Validate(ctx)
}
