// Package quotation provides the Quotation document repository.
package quotation

import (
	"context"
	"time"

	"taller/internal/core/id"
	"taller/internal/domain"
	"taller/internal/domain/billing"
)

// Repository defines operations for quotation documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Quotation) error
	GetByID(ctx context.Context, docID id.ID) (*Quotation, error)
	GetByNumber(ctx context.Context, number string) (*Quotation, error)
	Update(ctx context.Context, doc *Quotation) error
	Delete(ctx context.Context, docID id.ID) error

	// Line operations
	GetLines(ctx context.Context, docID id.ID) ([]billing.LineItem, error)
	SaveLines(ctx context.Context, docID id.ID, lines []billing.LineItem) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Quotation], error)

	// Locking
	GetForUpdate(ctx context.Context, docID id.ID) (*Quotation, error)
}

// ListFilter for filtering quotations.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	ClientID *id.ID
	Status   *Status
	DateFrom *time.Time
	DateTo   *time.Time
}
