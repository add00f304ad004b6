// Package report_repo provides PostgreSQL implementations for report
// repositories. TxManager is obtained from context.
package report_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"taller/internal/core/types"
	"taller/internal/domain/reports"
	"taller/internal/infrastructure/storage/postgres"
)

// ReportRepo implements reports.Repository.
type ReportRepo struct{}

// NewReportRepo creates a new report repository.
func NewReportRepo() *ReportRepo {
	return &ReportRepo{}
}

func (r *ReportRepo) getTxManager(ctx context.Context) *postgres.TxManager {
	return postgres.MustGetTxManager(ctx)
}

// GetRevenueReport aggregates invoiced amounts by period.
func (r *ReportRepo) GetRevenueReport(ctx context.Context, filter reports.RevenueReportFilter) (*reports.RevenueReport, error) {
	trunc := "day"
	periodFormat := "YYYY-MM-DD"
	if filter.GroupBy == "mes" {
		trunc = "month"
		periodFormat = "YYYY-MM"
	}

	query := fmt.Sprintf(`
		SELECT
			to_char(date_trunc('%s', date), '%s') as period,
			COUNT(*) as invoice_count,
			COALESCE(SUM(subtotal), 0) as subtotal,
			COALESCE(SUM(tax_amount), 0) as tax_amount,
			COALESCE(SUM(discount_amount), 0) as discount_amount,
			COALESCE(SUM(total), 0) as total
		FROM doc_invoices
		WHERE deletion_mark = false
		  AND date >= $1 AND date < $2
	`, trunc, periodFormat)

	args := []any{filter.FromDate, filter.ToDate}
	if !filter.IncludeVoided {
		query += " AND payment_status <> $3"
		args = append(args, "anulada")
	}

	query += " GROUP BY 1 ORDER BY 1"

	var items []reports.RevenueReportItem
	querier := r.getTxManager(ctx).GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, query, args...); err != nil {
		return nil, fmt.Errorf("revenue report: %w", err)
	}

	totalInvoices := 0
	totalRevenue := types.Zero()
	for _, item := range items {
		totalInvoices += item.InvoiceCount
		totalRevenue = totalRevenue.Add(item.Total)
	}

	return &reports.RevenueReport{
		FromDate:      filter.FromDate,
		ToDate:        filter.ToDate,
		GroupBy:       filter.GroupBy,
		Items:         items,
		TotalInvoices: totalInvoices,
		TotalRevenue:  totalRevenue,
	}, nil
}

// GetTopItemsReport ranks billed catalog items by revenue within a period.
// Lines keep their selection-time description, so renamed or deleted
// catalog entries still report under the name they were billed with.
func (r *ReportRepo) GetTopItemsReport(ctx context.Context, filter reports.TopItemsReportFilter) (*reports.TopItemsReport, error) {
	query := `
		SELECT
			l.item_type,
			l.item_id,
			l.description,
			COUNT(DISTINCT l.document_id) as times_sold,
			COALESCE(SUM(l.quantity), 0) as quantity_sold,
			COALESCE(SUM(l.quantity * l.unit_price), 0) as revenue
		FROM doc_invoice_lines l
		JOIN doc_invoices d ON l.document_id = d.id
		WHERE d.deletion_mark = false
		  AND d.payment_status <> 'anulada'
		  AND d.date >= $1 AND d.date < $2
	`
	args := []any{filter.FromDate, filter.ToDate}
	argIndex := 3

	if filter.ItemType != "" {
		query += fmt.Sprintf(" AND l.item_type = $%d", argIndex)
		args = append(args, filter.ItemType)
		argIndex++
	}

	query += fmt.Sprintf(`
		GROUP BY l.item_type, l.item_id, l.description
		ORDER BY revenue DESC
		LIMIT $%d
	`, argIndex)
	args = append(args, filter.Limit)

	var items []reports.TopItemsReportItem
	querier := r.getTxManager(ctx).GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, query, args...); err != nil {
		return nil, fmt.Errorf("top items report: %w", err)
	}

	return &reports.TopItemsReport{
		FromDate: filter.FromDate,
		ToDate:   filter.ToDate,
		Items:    items,
	}, nil
}

// GetLowStockReport lists active parts with stock at or below minimum.
func (r *ReportRepo) GetLowStockReport(ctx context.Context) (*reports.LowStockReport, error) {
	query := `
		SELECT
			id,
			code,
			name,
			stock,
			stock_min,
			stock_min - stock as deficit
		FROM cat_spare_parts
		WHERE deletion_mark = false
		  AND is_active = true
		  AND stock <= stock_min
		ORDER BY stock_min - stock DESC, name
	`

	var items []reports.LowStockReportItem
	querier := r.getTxManager(ctx).GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, query); err != nil {
		return nil, fmt.Errorf("low stock report: %w", err)
	}

	return &reports.LowStockReport{
		AsOf:       time.Now(),
		Items:      items,
		TotalItems: len(items),
	}, nil
}

// Ensure interface compliance
var _ reports.Repository = (*ReportRepo)(nil)
