package reports

import "context"

// Repository defines report data access.
type Repository interface {
	GetRevenueReport(ctx context.Context, filter RevenueReportFilter) (*RevenueReport, error)
	GetTopItemsReport(ctx context.Context, filter TopItemsReportFilter) (*TopItemsReport, error)
	GetLowStockReport(ctx context.Context) (*LowStockReport, error)
}
