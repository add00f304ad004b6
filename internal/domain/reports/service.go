package reports

import (
	"context"
	"fmt"

	"taller/internal/domain/billing"
)

// Service provides report generation operations.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetRevenue generates the invoiced revenue report for a period.
func (s *Service) GetRevenue(ctx context.Context, filter RevenueReportFilter) (*RevenueReport, error) {
	if filter.FromDate.IsZero() || filter.ToDate.IsZero() {
		return nil, fmt.Errorf("fromDate and toDate are required")
	}
	if filter.FromDate.After(filter.ToDate) {
		return nil, fmt.Errorf("fromDate must be before toDate")
	}

	switch filter.GroupBy {
	case "":
		filter.GroupBy = "dia"
	case "dia", "mes":
	default:
		return nil, fmt.Errorf("unknown grouping %q", filter.GroupBy)
	}

	report, err := s.repo.GetRevenueReport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get revenue report: %w", err)
	}

	return report, nil
}

// GetTopItems generates the most billed items report for a period.
func (s *Service) GetTopItems(ctx context.Context, filter TopItemsReportFilter) (*TopItemsReport, error) {
	if filter.FromDate.IsZero() || filter.ToDate.IsZero() {
		return nil, fmt.Errorf("fromDate and toDate are required")
	}
	if filter.FromDate.After(filter.ToDate) {
		return nil, fmt.Errorf("fromDate must be before toDate")
	}

	if filter.ItemType != "" && !billing.ItemType(filter.ItemType).IsValid() {
		return nil, fmt.Errorf("unknown item type %q", filter.ItemType)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 200 {
		filter.Limit = 200
	}

	report, err := s.repo.GetTopItemsReport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get top items report: %w", err)
	}

	return report, nil
}

// GetLowStock lists spare parts at or below their minimum stock.
func (s *Service) GetLowStock(ctx context.Context) (*LowStockReport, error) {
	report, err := s.repo.GetLowStockReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("get low stock report: %w", err)
	}

	return report, nil
}
