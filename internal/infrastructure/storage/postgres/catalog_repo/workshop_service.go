package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"taller/internal/domain"
	"taller/internal/domain/catalogs/workshop_service"
	"taller/internal/infrastructure/storage/postgres"
)

const workshopServiceTable = "cat_services"

// WorkshopServiceRepo implements workshop_service.Repository.
type WorkshopServiceRepo struct {
	*BaseCatalogRepo[*workshop_service.WorkshopService]
}

// NewWorkshopServiceRepo creates a new workshop service repository.
func NewWorkshopServiceRepo() *WorkshopServiceRepo {
	return &WorkshopServiceRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*workshop_service.WorkshopService](
			workshopServiceTable,
			postgres.ExtractDBColumns[workshop_service.WorkshopService](),
			func() *workshop_service.WorkshopService { return &workshop_service.WorkshopService{} },
		),
	}
}

// FindActive retrieves active services for selection lists.
func (r *WorkshopServiceRepo) FindActive(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*workshop_service.WorkshopService], error) {
	result := domain.ListResult[*workshop_service.WorkshopService]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.BaseSelect().
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Eq{"deletion_mark": false})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"code": pattern},
		})
	}

	q = q.OrderBy("name ASC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	items, err := r.FindMany(ctx, q)
	if err != nil {
		return result, err
	}

	result.Items = items
	result.TotalCount = int64(len(items))
	return result, nil
}
