package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"taller/internal/core/id"
	"taller/internal/domain"
	"taller/internal/domain/billing"
	"taller/internal/domain/documents/invoice"
	"taller/internal/infrastructure/storage/postgres"
)

const (
	invoicesTable     = "doc_invoices"
	invoiceLinesTable = "doc_invoice_lines"
)

// InvoiceRepo implements invoice.Repository.
type InvoiceRepo struct {
	*BaseDocumentRepo[*invoice.Invoice]
	lines lineStore
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo() *InvoiceRepo {
	return &InvoiceRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*invoice.Invoice](
			invoicesTable,
			postgres.ExtractDBColumns[invoice.Invoice](),
			func() *invoice.Invoice { return &invoice.Invoice{} },
		),
		lines: newLineStore(invoiceLinesTable),
	}
}

// GetLines retrieves lines for an invoice.
func (r *InvoiceRepo) GetLines(ctx context.Context, docID id.ID) ([]billing.LineItem, error) {
	return r.lines.GetLines(ctx, docID)
}

// SaveLines saves lines for an invoice.
func (r *InvoiceRepo) SaveLines(ctx context.Context, docID id.ID, lines []billing.LineItem) error {
	return r.lines.SaveLines(ctx, docID, lines)
}

// List retrieves invoices with filtering.
func (r *InvoiceRepo) List(ctx context.Context, filter invoice.ListFilter) (domain.ListResult[*invoice.Invoice], error) {
	q := r.BaseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if filter.ClientID != nil {
		q = q.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}

	if filter.TicketID != nil {
		q = q.Where(squirrel.Eq{"ticket_id": *filter.TicketID})
	}

	if filter.PaymentStatus != nil {
		q = q.Where(squirrel.Eq{"payment_status": *filter.PaymentStatus})
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
