package document_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"taller/internal/domain"
	"taller/internal/domain/documents/appointment"
	"taller/internal/infrastructure/storage/postgres"
)

const appointmentsTable = "doc_appointments"

// AppointmentRepo implements appointment.Repository.
type AppointmentRepo struct {
	*BaseDocumentRepo[*appointment.Appointment]
}

// NewAppointmentRepo creates a new appointment repository.
func NewAppointmentRepo() *AppointmentRepo {
	return &AppointmentRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*appointment.Appointment](
			appointmentsTable,
			postgres.ExtractDBColumns[appointment.Appointment](),
			func() *appointment.Appointment { return &appointment.Appointment{} },
		),
	}
}

// List retrieves appointments with filtering.
func (r *AppointmentRepo) List(ctx context.Context, filter appointment.ListFilter) (domain.ListResult[*appointment.Appointment], error) {
	q := r.BaseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if filter.ClientID != nil {
		q = q.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}

	if filter.VehicleID != nil {
		q = q.Where(squirrel.Eq{"vehicle_id": *filter.VehicleID})
	}

	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}

	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"scheduled_at": *filter.DateFrom})
	}

	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"scheduled_at": *filter.DateTo})
	}

	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"number": "%" + filter.Search + "%"})
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "scheduled_at"
	}

	return r.ListQuery(ctx, q, orderBy, filter.Limit, filter.Offset)
}

// FindOverlapping returns non-cancelled appointments scheduled inside the window.
func (r *AppointmentRepo) FindOverlapping(ctx context.Context, from, to time.Time) ([]*appointment.Appointment, error) {
	q := r.BaseSelect().
		Where(squirrel.GtOrEq{"scheduled_at": from}).
		Where(squirrel.Lt{"scheduled_at": to}).
		Where(squirrel.NotEq{"status": appointment.StatusCancelled}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("scheduled_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*appointment.Appointment
	querier := postgres.MustGetTxManager(ctx).GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("find overlapping: %w", err)
	}

	return items, nil
}
