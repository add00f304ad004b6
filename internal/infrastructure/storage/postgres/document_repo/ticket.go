package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"taller/internal/core/id"
	"taller/internal/domain"
	"taller/internal/domain/billing"
	"taller/internal/domain/documents/ticket"
	"taller/internal/infrastructure/storage/postgres"
)

const (
	ticketsTable     = "doc_tickets"
	ticketLinesTable = "doc_ticket_lines"
)

// TicketRepo implements ticket.Repository.
type TicketRepo struct {
	*BaseDocumentRepo[*ticket.WorkTicket]
	lines lineStore
}

// NewTicketRepo creates a new work ticket repository.
func NewTicketRepo() *TicketRepo {
	return &TicketRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*ticket.WorkTicket](
			ticketsTable,
			postgres.ExtractDBColumns[ticket.WorkTicket](),
			func() *ticket.WorkTicket { return &ticket.WorkTicket{} },
		),
		lines: newLineStore(ticketLinesTable),
	}
}

// GetLines retrieves lines for a work ticket.
func (r *TicketRepo) GetLines(ctx context.Context, docID id.ID) ([]billing.LineItem, error) {
	return r.lines.GetLines(ctx, docID)
}

// SaveLines saves lines for a work ticket.
func (r *TicketRepo) SaveLines(ctx context.Context, docID id.ID, lines []billing.LineItem) error {
	return r.lines.SaveLines(ctx, docID, lines)
}

// List retrieves work tickets with filtering.
func (r *TicketRepo) List(ctx context.Context, filter ticket.ListFilter) (domain.ListResult[*ticket.WorkTicket], error) {
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

	if filter.EmployeeID != nil {
		q = q.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}

	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}

	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}

	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}

	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"number": "%" + filter.Search + "%"})
	}

	return r.ListQuery(ctx, q, filter.OrderBy, filter.Limit, filter.Offset)
}
