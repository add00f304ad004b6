package documents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/core/types"
	"taller/internal/domain/billing"
	"taller/internal/domain/catalogs/spare_part"
	"taller/internal/domain/catalogs/workshop_service"
)

type fakeServiceRepo struct {
	workshop_service.Repository
	items map[id.ID]*workshop_service.WorkshopService
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, entityID id.ID) (*workshop_service.WorkshopService, error) {
	if svc, ok := f.items[entityID]; ok {
		return svc, nil
	}
	return nil, apperror.NewNotFound("workshop_service", entityID.String())
}

type fakePartRepo struct {
	spare_part.Repository
	items map[id.ID]*spare_part.SparePart
}

func (f *fakePartRepo) GetByID(ctx context.Context, entityID id.ID) (*spare_part.SparePart, error) {
	if p, ok := f.items[entityID]; ok {
		return p, nil
	}
	return nil, apperror.NewNotFound("spare_part", entityID.String())
}

func TestResolveLinesSnapshotsCatalogData(t *testing.T) {
	svc := workshop_service.NewWorkshopService("SRV-001", "Cambio de aceite", types.MustMoney("150"))
	part := spare_part.NewSparePart("REP-001", "Filtro de aceite", types.MustMoney("75.50"))

	resolver := NewLineResolver(
		&fakeServiceRepo{items: map[id.ID]*workshop_service.WorkshopService{svc.ID: svc}},
		&fakePartRepo{items: map[id.ID]*spare_part.SparePart{part.ID: part}},
	)

	lines, err := resolver.ResolveLines(context.Background(), []LineRequest{
		{ItemType: billing.ItemTypeService, ItemID: svc.ID, Quantity: types.MustMoney("1")},
		{ItemType: billing.ItemTypePart, ItemID: part.ID, Quantity: types.MustMoney("2")},
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, 1, lines[0].LineNo)
	assert.Equal(t, "Cambio de aceite", lines[0].Description)
	assert.True(t, lines[0].UnitPrice.Equal(types.MustMoney("150")))

	assert.Equal(t, 2, lines[1].LineNo)
	assert.Equal(t, "Filtro de aceite", lines[1].Description)
	assert.True(t, lines[1].UnitPrice.Equal(types.MustMoney("75.50")))
	assert.True(t, lines[1].Quantity.Equal(types.MustMoney("2")))
}

func TestResolveLinesMissingCatalogFallback(t *testing.T) {
	resolver := NewLineResolver(
		&fakeServiceRepo{items: map[id.ID]*workshop_service.WorkshopService{}},
		&fakePartRepo{items: map[id.ID]*spare_part.SparePart{}},
	)

	ghost := id.New()
	lines, err := resolver.ResolveLines(context.Background(), []LineRequest{
		{ItemType: billing.ItemTypePart, ItemID: ghost, Quantity: types.MustMoney("3")},
	})
	require.NoError(t, err)
	require.Len(t, lines, 1)

	// Stale references never block entry: empty snapshot, zero price.
	assert.Equal(t, "", lines[0].Description)
	assert.True(t, lines[0].UnitPrice.IsZero())
	assert.True(t, lines[0].Quantity.Equal(types.MustMoney("3")))
	require.NotNil(t, lines[0].ItemID)
	assert.Equal(t, ghost, *lines[0].ItemID)
}

func TestResolveLinesRejectsUnknownItemType(t *testing.T) {
	resolver := NewLineResolver(
		&fakeServiceRepo{items: map[id.ID]*workshop_service.WorkshopService{}},
		&fakePartRepo{items: map[id.ID]*spare_part.SparePart{}},
	)

	_, err := resolver.ResolveLines(context.Background(), []LineRequest{
		{ItemType: "ajuste", ItemID: id.New(), Quantity: types.MustMoney("1")},
	})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
