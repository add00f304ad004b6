package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taller/internal/core/id"
	"taller/internal/core/numerator"
	"taller/internal/domain"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	docs        map[id.ID]*Appointment
	updateCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{docs: make(map[id.ID]*Appointment)}
}

func (r *fakeRepo) Create(ctx context.Context, doc *Appointment) error {
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, docID id.ID) (*Appointment, error) {
	doc, ok := r.docs[docID]
	if !ok {
		return nil, assert.AnError
	}
	cp := *doc
	return &cp, nil
}

func (r *fakeRepo) GetByNumber(ctx context.Context, number string) (*Appointment, error) {
	for _, doc := range r.docs {
		if doc.Number == number {
			cp := *doc
			return &cp, nil
		}
	}
	return nil, assert.AnError
}

func (r *fakeRepo) Update(ctx context.Context, doc *Appointment) error {
	r.updateCalls++
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, docID id.ID) error {
	delete(r.docs, docID)
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Appointment], error) {
	out := domain.ListResult[*Appointment]{}
	for _, doc := range r.docs {
		out.Items = append(out.Items, doc)
	}
	out.TotalCount = int64(len(out.Items))
	return out, nil
}

func (r *fakeRepo) FindOverlapping(ctx context.Context, from, to time.Time) ([]*Appointment, error) {
	var out []*Appointment
	for _, doc := range r.docs {
		if doc.Status == StatusCancelled {
			continue
		}
		if !doc.ScheduledAt.Before(from) && doc.ScheduledAt.Before(to) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, &numerator.MockGenerator{}, fakeTxManager{})
}

func validAppointment() *Appointment {
	return NewAppointment(id.New(), time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), "cambio de aceite")
}

func TestServiceCreateGeneratesNumber(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	a := validAppointment()
	require.NoError(t, svc.Create(t.Context(), a))

	assert.Equal(t, "MOCK-2026-00001", a.Number)
	assert.Equal(t, StatusScheduled, a.Status)
}

func TestServiceCreateRequiresReason(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	a := NewAppointment(id.New(), time.Now(), "")
	err := svc.Create(t.Context(), a)

	assert.Error(t, err)
	assert.Empty(t, repo.docs)
}

func TestServiceChangeStatusNoOpForSameStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	a := validAppointment()
	require.NoError(t, svc.Create(t.Context(), a))

	updated, err := svc.ChangeStatus(t.Context(), a.ID, StatusScheduled)
	require.NoError(t, err)

	assert.Equal(t, StatusScheduled, updated.Status)
	assert.Equal(t, 0, repo.updateCalls, "same-status change must not persist")
}

func TestServiceChangeStatusPersists(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	a := validAppointment()
	require.NoError(t, svc.Create(t.Context(), a))

	updated, err := svc.ChangeStatus(t.Context(), a.ID, StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, updated.Status)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestFindOverlappingSkipsCancelled(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	inWindow := validAppointment()
	require.NoError(t, svc.Create(t.Context(), inWindow))

	cancelled := validAppointment()
	cancelled.Status = StatusCancelled
	require.NoError(t, svc.Create(t.Context(), cancelled))

	outside := NewAppointment(id.New(), day.AddDate(0, 0, 3), "frenos")
	require.NoError(t, svc.Create(t.Context(), outside))

	found, err := svc.FindOverlapping(t.Context(), day, day.AddDate(0, 0, 1))
	require.NoError(t, err)

	require.Len(t, found, 1)
	assert.Equal(t, inWindow.ID, found[0].ID)
}
