// Package appointment provides the Appointment document repository.
package appointment

import (
	"context"
	"time"

	"taller/internal/core/id"
	"taller/internal/domain"
)

// Repository defines operations for appointment documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Appointment) error
	GetByID(ctx context.Context, docID id.ID) (*Appointment, error)
	GetByNumber(ctx context.Context, number string) (*Appointment, error)
	Update(ctx context.Context, doc *Appointment) error
	Delete(ctx context.Context, docID id.ID) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Appointment], error)

	// FindOverlapping returns non-cancelled appointments scheduled inside
	// the given window.
	FindOverlapping(ctx context.Context, from, to time.Time) ([]*Appointment, error)
}

// ListFilter for filtering appointments.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	ClientID  *id.ID
	VehicleID *id.ID
	Status    *Status
	DateFrom  *time.Time
	DateTo    *time.Time
}
