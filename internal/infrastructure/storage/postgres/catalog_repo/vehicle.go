package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/domain"
	"taller/internal/domain/catalogs/vehicle"
	"taller/internal/infrastructure/storage/postgres"
)

const vehicleTable = "cat_vehicles"

// VehicleRepo implements vehicle.Repository.
type VehicleRepo struct {
	*BaseCatalogRepo[*vehicle.Vehicle]
}

// NewVehicleRepo creates a new vehicle repository.
func NewVehicleRepo() *VehicleRepo {
	return &VehicleRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*vehicle.Vehicle](
			vehicleTable,
			postgres.ExtractDBColumns[vehicle.Vehicle](),
			func() *vehicle.Vehicle { return &vehicle.Vehicle{} },
		),
	}
}

// FindByPlate retrieves a vehicle by license plate.
func (r *VehicleRepo) FindByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"plate": plate}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	v, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("vehicle", plate)
		}
		return nil, err
	}
	return v, nil
}

// FindByClient retrieves all vehicles of a client.
func (r *VehicleRepo) FindByClient(ctx context.Context, clientID id.ID, filter domain.ListFilter) (domain.ListResult[*vehicle.Vehicle], error) {
	result := domain.ListResult[*vehicle.Vehicle]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.BaseSelect().
		Where(squirrel.Eq{"client_id": clientID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("plate ASC")

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
