package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"taller/internal/domain"
	"taller/internal/domain/inventory"
	"taller/internal/infrastructure/storage/postgres"
)

const movementsTable = "doc_stock_movements"

// MovementRepo implements inventory.Repository.
// Movements are immutable: only Create, GetByID and List are exposed.
type MovementRepo struct {
	*BaseDocumentRepo[*inventory.Movement]
}

// NewMovementRepo creates a new stock movement repository.
func NewMovementRepo() *MovementRepo {
	return &MovementRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*inventory.Movement](
			movementsTable,
			postgres.ExtractDBColumns[inventory.Movement](),
			func() *inventory.Movement { return &inventory.Movement{} },
		),
	}
}

// List retrieves movements with filtering.
func (r *MovementRepo) List(ctx context.Context, filter inventory.ListFilter) (domain.ListResult[*inventory.Movement], error) {
	q := r.BaseSelect()

	if filter.PartID != nil {
		q = q.Where(squirrel.Eq{"part_id": *filter.PartID})
	}

	if filter.Type != nil {
		q = q.Where(squirrel.Eq{"type": *filter.Type})
	}

	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}

	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}

	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"number": "%" + filter.Search + "%"})
	}

	return r.ListQuery(ctx, q, filter.OrderBy, filter.Limit, filter.Offset)
}
