// Package invoice provides the Invoice document repository.
package invoice

import (
	"context"
	"time"

	"taller/internal/core/id"
	"taller/internal/domain"
	"taller/internal/domain/billing"
)

// Repository defines operations for invoice documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Invoice) error
	GetByID(ctx context.Context, docID id.ID) (*Invoice, error)
	GetByNumber(ctx context.Context, number string) (*Invoice, error)
	Update(ctx context.Context, doc *Invoice) error
	Delete(ctx context.Context, docID id.ID) error

	// Line operations
	GetLines(ctx context.Context, docID id.ID) ([]billing.LineItem, error)
	SaveLines(ctx context.Context, docID id.ID, lines []billing.LineItem) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Invoice], error)

	// Locking
	GetForUpdate(ctx context.Context, docID id.ID) (*Invoice, error)
}

// ListFilter for filtering invoices.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	ClientID      *id.ID
	TicketID      *id.ID
	PaymentStatus *PaymentStatus
	DateFrom      *time.Time
	DateTo        *time.Time
}
