package quotation

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

// fakeTxManager executes the function directly, no database involved.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepo is an in-memory Repository that records calls.
type fakeRepo struct {
	docs        map[id.ID]*Quotation
	lines       map[id.ID][]billing.LineItem
	updateCalls int
	createCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		docs:  make(map[id.ID]*Quotation),
		lines: make(map[id.ID][]billing.LineItem),
	}
}

func (r *fakeRepo) Create(ctx context.Context, doc *Quotation) error {
	r.createCalls++
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, docID id.ID) (*Quotation, error) {
	doc, ok := r.docs[docID]
	if !ok {
		return nil, errNotFound(docID)
	}
	cp := *doc
	return &cp, nil
}

func (r *fakeRepo) GetByNumber(ctx context.Context, number string) (*Quotation, error) {
	for _, doc := range r.docs {
		if doc.Number == number {
			cp := *doc
			return &cp, nil
		}
	}
	return nil, errNotFound(number)
}

func (r *fakeRepo) Update(ctx context.Context, doc *Quotation) error {
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

func (r *fakeRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Quotation], error) {
	out := domain.ListResult[*Quotation]{}
	for _, doc := range r.docs {
		out.Items = append(out.Items, doc)
	}
	out.TotalCount = int64(len(out.Items))
	return out, nil
}

func (r *fakeRepo) GetForUpdate(ctx context.Context, docID id.ID) (*Quotation, error) {
	return r.GetByID(ctx, docID)
}

func errNotFound(key any) error {
	return assert.AnError
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, &numerator.MockGenerator{}, fakeTxManager{})
}

func validQuotation() *Quotation {
	q := NewQuotation(id.New())
	q.TaxRate = types.MustMoney("12")
	q.AddLine(serviceLine("1", "100.00"))
	return q
}

func TestServiceCreateGeneratesNumberAndRecalculates(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	q := validQuotation()
	// Client tampers with the totals; the service must discard them.
	q.Total = types.MustMoney("1.00")

	require.NoError(t, svc.Create(t.Context(), q))

	assert.Equal(t, "MOCK-2026-00001", q.Number)
	assert.True(t, q.Total.Equal(types.MustMoney("112.00")), "total %s", q.Total)
	assert.Equal(t, 1, repo.createCalls)
	assert.Len(t, repo.lines[q.ID], 1)
}

func TestServiceCreateRejectsEmptyLines(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	q := NewQuotation(id.New())
	err := svc.Create(t.Context(), q)

	require.Error(t, err)
	assert.Equal(t, 0, repo.createCalls)
}

func TestServiceChangeStatusPersistsWholeDocument(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	q := validQuotation()
	require.NoError(t, svc.Create(t.Context(), q))

	updated, err := svc.ChangeStatus(t.Context(), q.ID, StatusApproved)
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, updated.Status)
	assert.Equal(t, 1, repo.updateCalls)

	stored, err := svc.GetByID(t.Context(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, stored.Status)
}

func TestServiceChangeStatusNoOpForSameStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	q := validQuotation()
	require.NoError(t, svc.Create(t.Context(), q))

	updated, err := svc.ChangeStatus(t.Context(), q.ID, StatusPending)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, updated.Status)
	assert.Equal(t, 0, repo.updateCalls, "same-status change must not persist")
}

func TestServiceChangeStatusRejectsUnknown(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	q := validQuotation()
	require.NoError(t, svc.Create(t.Context(), q))

	_, err := svc.ChangeStatus(t.Context(), q.ID, Status("archivada"))
	assert.Error(t, err)
}

func TestServiceDeleteToleratesFailingAfterHook(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	svc.Hooks().OnAfterDelete(func(ctx context.Context, doc *Quotation) error {
		return assert.AnError
	})

	q := validQuotation()
	require.NoError(t, svc.Create(t.Context(), q))

	require.NoError(t, svc.Delete(t.Context(), q.ID))
	_, err := repo.GetByID(t.Context(), q.ID)
	assert.Error(t, err, "document must be gone despite the hook failure")
}
