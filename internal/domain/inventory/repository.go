package inventory

import (
	"context"
	"time"

	"taller/internal/core/id"
	"taller/internal/domain"
)

// Repository defines operations for stock movements.
// Movements are immutable: they are inserted and listed, never updated.
type Repository interface {
	Create(ctx context.Context, m *Movement) error
	GetByID(ctx context.Context, movID id.ID) (*Movement, error)
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Movement], error)
}

// ListFilter for filtering movements.
type ListFilter struct {
	domain.ListFilter

	PartID   *id.ID
	Type     *MovementType
	DateFrom *time.Time
	DateTo   *time.Time
}
