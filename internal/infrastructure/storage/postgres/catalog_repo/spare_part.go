package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"taller/internal/core/id"
	"taller/internal/core/types"
	"taller/internal/domain"
	"taller/internal/domain/catalogs/spare_part"
	"taller/internal/infrastructure/storage/postgres"
)

const sparePartTable = "cat_spare_parts"

// SparePartRepo implements spare_part.Repository.
type SparePartRepo struct {
	*BaseCatalogRepo[*spare_part.SparePart]
}

// NewSparePartRepo creates a new spare part repository.
func NewSparePartRepo() *SparePartRepo {
	return &SparePartRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*spare_part.SparePart](
			sparePartTable,
			postgres.ExtractDBColumns[spare_part.SparePart](),
			func() *spare_part.SparePart { return &spare_part.SparePart{} },
		),
	}
}

// UpdateStock writes a new stock quantity for a part.
// Stock mutations bypass optimistic locking: callers hold a row lock
// from GetForUpdate inside a transaction.
func (r *SparePartRepo) UpdateStock(ctx context.Context, partID id.ID, stock types.Money) error {
	q := r.Builder().
		Update(sparePartTable).
		Set("stock", stock).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": partID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update stock: %w", err)
	}

	querier := r.getTxManager(ctx).GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update stock: part %s not found", partID)
	}

	return nil
}

// FindLowStock retrieves parts with stock at or below minimum.
func (r *SparePartRepo) FindLowStock(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*spare_part.SparePart], error) {
	result := domain.ListResult[*spare_part.SparePart]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.BaseSelect().
		Where(squirrel.Expr("stock <= stock_min")).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("stock ASC")

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
