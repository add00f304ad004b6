package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"taller/internal/core/id"
	"taller/internal/domain"
	"taller/internal/domain/billing"
	"taller/internal/domain/documents/quotation"
	"taller/internal/infrastructure/storage/postgres"
)

const (
	quotationsTable     = "doc_quotations"
	quotationLinesTable = "doc_quotation_lines"
)

// QuotationRepo implements quotation.Repository.
type QuotationRepo struct {
	*BaseDocumentRepo[*quotation.Quotation]
	lines lineStore
}

// NewQuotationRepo creates a new quotation repository.
func NewQuotationRepo() *QuotationRepo {
	return &QuotationRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*quotation.Quotation](
			quotationsTable,
			postgres.ExtractDBColumns[quotation.Quotation](),
			func() *quotation.Quotation { return &quotation.Quotation{} },
		),
		lines: newLineStore(quotationLinesTable),
	}
}

// GetLines retrieves lines for a quotation.
func (r *QuotationRepo) GetLines(ctx context.Context, docID id.ID) ([]billing.LineItem, error) {
	return r.lines.GetLines(ctx, docID)
}

// SaveLines saves lines for a quotation.
func (r *QuotationRepo) SaveLines(ctx context.Context, docID id.ID, lines []billing.LineItem) error {
	return r.lines.SaveLines(ctx, docID, lines)
}

// List retrieves quotations with filtering.
func (r *QuotationRepo) List(ctx context.Context, filter quotation.ListFilter) (domain.ListResult[*quotation.Quotation], error) {
	q := r.BaseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if filter.ClientID != nil {
		q = q.Where(squirrel.Eq{"client_id": *filter.ClientID})
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
