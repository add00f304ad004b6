package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/core/numerator"
	"taller/internal/core/types"
	"taller/internal/domain"
	"taller/internal/domain/catalogs/spare_part"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMovementRepo struct {
	created []*Movement
}

func (r *fakeMovementRepo) Create(ctx context.Context, m *Movement) error {
	r.created = append(r.created, m)
	return nil
}

func (r *fakeMovementRepo) GetByID(ctx context.Context, movID id.ID) (*Movement, error) {
	for _, m := range r.created {
		if m.ID == movID {
			return m, nil
		}
	}
	return nil, assert.AnError
}

func (r *fakeMovementRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Movement], error) {
	return domain.ListResult[*Movement]{}, nil
}

type fakePartRepo struct {
	part  *spare_part.SparePart
	stock types.Money
}

func (r *fakePartRepo) Create(ctx context.Context, p *spare_part.SparePart) error { return nil }
func (r *fakePartRepo) GetByID(ctx context.Context, partID id.ID) (*spare_part.SparePart, error) {
	return r.part, nil
}
func (r *fakePartRepo) GetByCode(ctx context.Context, code string) (*spare_part.SparePart, error) {
	return r.part, nil
}
func (r *fakePartRepo) Update(ctx context.Context, p *spare_part.SparePart) error { return nil }
func (r *fakePartRepo) Delete(ctx context.Context, partID id.ID) error            { return nil }
func (r *fakePartRepo) SetDeletionMark(ctx context.Context, partID id.ID, marked bool) error {
	return nil
}
func (r *fakePartRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*spare_part.SparePart], error) {
	return domain.ListResult[*spare_part.SparePart]{}, nil
}
func (r *fakePartRepo) Exists(ctx context.Context, partID id.ID) (bool, error)      { return true, nil }
func (r *fakePartRepo) ExistsByCode(ctx context.Context, code string) (bool, error) { return true, nil }
func (r *fakePartRepo) GetForUpdate(ctx context.Context, partID id.ID) (*spare_part.SparePart, error) {
	cp := *r.part
	cp.Stock = r.stock
	return &cp, nil
}
func (r *fakePartRepo) UpdateStock(ctx context.Context, partID id.ID, stock types.Money) error {
	r.stock = stock
	return nil
}
func (r *fakePartRepo) FindLowStock(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*spare_part.SparePart], error) {
	return domain.ListResult[*spare_part.SparePart]{}, nil
}

func newTestService(t *testing.T, initialStock string) (*Service, *fakeMovementRepo, *fakePartRepo) {
	t.Helper()
	part := spare_part.NewSparePart("REP-001", "Filtro de aceite", types.MustMoney("75.50"))
	parts := &fakePartRepo{part: part, stock: types.MustMoney(initialStock)}
	movements := &fakeMovementRepo{}
	svc := NewService(movements, parts, &numerator.MockGenerator{}, fakeTxManager{})
	return svc, movements, parts
}

func TestRegisterIncomingMovement(t *testing.T) {
	svc, movements, parts := newTestService(t, "10")

	m := NewMovement(parts.part.ID, MovementIn, types.MustMoney("5"))
	require.NoError(t, svc.Register(t.Context(), m))

	assert.True(t, m.StockBefore.Equal(types.MustMoney("10")))
	assert.True(t, m.StockAfter.Equal(types.MustMoney("15")))
	assert.True(t, parts.stock.Equal(types.MustMoney("15")))
	assert.Len(t, movements.created, 1)
	assert.Equal(t, "MOCK-2026-00001", m.Number)
}

func TestRegisterOutgoingMovement(t *testing.T) {
	svc, _, parts := newTestService(t, "10")

	m := NewMovement(parts.part.ID, MovementOut, types.MustMoney("4"))
	require.NoError(t, svc.Register(t.Context(), m))

	assert.True(t, parts.stock.Equal(types.MustMoney("6")))
}

func TestRegisterRejectsInsufficientStock(t *testing.T) {
	svc, movements, parts := newTestService(t, "3")

	m := NewMovement(parts.part.ID, MovementOut, types.MustMoney("4"))
	err := svc.Register(t.Context(), m)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
	assert.Empty(t, movements.created)
	assert.True(t, parts.stock.Equal(types.MustMoney("3")), "stock must stay untouched")
}

func TestRegisterValidatesMovement(t *testing.T) {
	svc, _, parts := newTestService(t, "10")

	zeroQty := NewMovement(parts.part.ID, MovementIn, types.Zero())
	assert.Error(t, svc.Register(t.Context(), zeroQty))

	badType := NewMovement(parts.part.ID, "ajuste", types.MustMoney("1"))
	assert.Error(t, svc.Register(t.Context(), badType))

	noPart := NewMovement(id.Nil(), MovementIn, types.MustMoney("1"))
	assert.Error(t, svc.Register(t.Context(), noPart))
}
