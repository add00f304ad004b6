package invoice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taller/internal/core/id"
	"taller/internal/core/numerator"
	"taller/internal/core/types"
	"taller/internal/domain"
	"taller/internal/domain/billing"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	docs        map[id.ID]*Invoice
	lines       map[id.ID][]billing.LineItem
	updateCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		docs:  make(map[id.ID]*Invoice),
		lines: make(map[id.ID][]billing.LineItem),
	}
}

func (r *fakeRepo) Create(ctx context.Context, doc *Invoice) error {
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, docID id.ID) (*Invoice, error) {
	doc, ok := r.docs[docID]
	if !ok {
		return nil, assert.AnError
	}
	cp := *doc
	return &cp, nil
}

func (r *fakeRepo) GetByNumber(ctx context.Context, number string) (*Invoice, error) {
	for _, doc := range r.docs {
		if doc.Number == number {
			cp := *doc
			return &cp, nil
		}
	}
	return nil, assert.AnError
}

func (r *fakeRepo) Update(ctx context.Context, doc *Invoice) error {
	r.updateCalls++
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, docID id.ID) error {
	delete(r.docs, docID)
	return nil
}

func (r *fakeRepo) GetLines(ctx context.Context, docID id.ID) ([]billing.LineItem, error) {
	return r.lines[docID], nil
}

func (r *fakeRepo) SaveLines(ctx context.Context, docID id.ID, lines []billing.LineItem) error {
	r.lines[docID] = lines
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Invoice], error) {
	return domain.ListResult[*Invoice]{}, nil
}

func (r *fakeRepo) GetForUpdate(ctx context.Context, docID id.ID) (*Invoice, error) {
	return r.GetByID(ctx, docID)
}

func partLine(qty, price string) billing.LineItem {
	return billing.LineItem{
		ItemType:  billing.ItemTypePart,
		Quantity:  types.MustMoney(qty),
		UnitPrice: types.MustMoney(price),
	}
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, &numerator.MockGenerator{}, fakeTxManager{})
}

func validInvoice() *Invoice {
	inv := NewInvoice(id.New())
	inv.TaxRate = types.MustMoney("12")
	inv.DiscountRate = types.MustMoney("5")
	inv.AddLine(partLine("1", "10.00"))
	return inv
}

func TestServiceCreateComputesTotals(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	inv := validInvoice()
	require.NoError(t, svc.Create(t.Context(), inv))

	assert.True(t, inv.TaxAmount.Equal(types.MustMoney("1.20")), "tax %s", inv.TaxAmount)
	assert.True(t, inv.DiscountAmount.Equal(types.MustMoney("0.50")), "discount %s", inv.DiscountAmount)
	assert.True(t, inv.Total.Equal(types.MustMoney("10.70")), "total %s", inv.Total)
	assert.Equal(t, PaymentPending, inv.PaymentStatus)
}

func TestServiceMarkPaid(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	inv := validInvoice()
	require.NoError(t, svc.Create(t.Context(), inv))

	paid, err := svc.MarkPaid(t.Context(), inv.ID, "")
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, paid.PaymentStatus)
}

func TestServiceMarkPaidStampsPaymentMethod(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	inv := validInvoice()
	require.NoError(t, svc.Create(t.Context(), inv))

	paid, err := svc.MarkPaid(t.Context(), inv.ID, "Efectivo")
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, paid.PaymentStatus)
	assert.Equal(t, "Efectivo", paid.PaymentMethod)

	stored, err := repo.GetByID(t.Context(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "Efectivo", stored.PaymentMethod)
}

func TestServiceMarkPaidIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	inv := validInvoice()
	require.NoError(t, svc.Create(t.Context(), inv))

	_, err := svc.MarkPaid(t.Context(), inv.ID, "Efectivo")
	require.NoError(t, err)
	updatesAfterFirst := repo.updateCalls

	paid, err := svc.MarkPaid(t.Context(), inv.ID, "Efectivo")
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, paid.PaymentStatus)
	assert.Equal(t, updatesAfterFirst, repo.updateCalls, "second mark-paid must not persist")
}

func TestServiceMarkPaidRejectsVoided(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	inv := validInvoice()
	require.NoError(t, svc.Create(t.Context(), inv))

	_, err := svc.ChangeStatus(t.Context(), inv.ID, PaymentVoid)
	require.NoError(t, err)

	_, err = svc.MarkPaid(t.Context(), inv.ID, "")
	assert.Error(t, err)
}

func TestServiceUpdateRejectsVoided(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	inv := validInvoice()
	require.NoError(t, svc.Create(t.Context(), inv))

	_, err := svc.ChangeStatus(t.Context(), inv.ID, PaymentVoid)
	require.NoError(t, err)

	inv.Comment = "late edit"
	inv.PaymentStatus = PaymentVoid
	assert.Error(t, svc.Update(t.Context(), inv))
}

func TestNewFromTicketLines(t *testing.T) {
	clientID := id.New()
	ticketID := id.New()

	lines := []billing.LineItem{
		{ItemType: billing.ItemTypeService, Description: "Diagnóstico", Quantity: types.MustMoney("1"), UnitPrice: types.MustMoney("150.00")},
		{ItemType: billing.ItemTypePart, Description: "Filtro de aceite", Quantity: types.MustMoney("2"), UnitPrice: types.MustMoney("75.50")},
	}

	inv := NewFromTicketLines(clientID, nil, &ticketID, lines)

	require.Len(t, inv.Lines, 2)
	assert.Equal(t, 1, inv.Lines[0].LineNo)
	assert.Equal(t, 2, inv.Lines[1].LineNo)
	require.NotNil(t, inv.TicketID)
	assert.Equal(t, ticketID, *inv.TicketID)
	assert.True(t, inv.Subtotal.Equal(types.MustMoney("301.00")), "subtotal %s", inv.Subtotal)
}
