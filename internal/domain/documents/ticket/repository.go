// Package ticket provides the WorkTicket document repository.
package ticket

import (
	"context"
	"time"

	"taller/internal/core/id"
	"taller/internal/domain"
	"taller/internal/domain/billing"
)

// Repository defines operations for work ticket documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *WorkTicket) error
	GetByID(ctx context.Context, docID id.ID) (*WorkTicket, error)
	GetByNumber(ctx context.Context, number string) (*WorkTicket, error)
	Update(ctx context.Context, doc *WorkTicket) error
	Delete(ctx context.Context, docID id.ID) error

	// Line operations
	GetLines(ctx context.Context, docID id.ID) ([]billing.LineItem, error)
	SaveLines(ctx context.Context, docID id.ID, lines []billing.LineItem) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*WorkTicket], error)

	// Locking
	GetForUpdate(ctx context.Context, docID id.ID) (*WorkTicket, error)
}

// ListFilter for filtering work tickets.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	ClientID   *id.ID
	VehicleID  *id.ID
	EmployeeID *id.ID
	Status     *Status
	DateFrom   *time.Time
	DateTo     *time.Time
}
