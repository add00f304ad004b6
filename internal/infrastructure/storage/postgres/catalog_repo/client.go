package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"taller/internal/core/apperror"
	"taller/internal/domain/catalogs/client"
	"taller/internal/infrastructure/storage/postgres"
)

const clientTable = "cat_clients"

// ClientRepo implements client.Repository.
type ClientRepo struct {
	*BaseCatalogRepo[*client.Client]
}

// NewClientRepo creates a new client repository.
func NewClientRepo() *ClientRepo {
	return &ClientRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*client.Client](
			clientTable,
			postgres.ExtractDBColumns[client.Client](),
			func() *client.Client { return &client.Client{} },
		),
	}
}

// FindByNIT retrieves a client by tax identification number.
func (r *ClientRepo) FindByNIT(ctx context.Context, nit string) (*client.Client, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"nit": nit}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	c, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("client", nit)
		}
		return nil, err
	}
	return c, nil
}
