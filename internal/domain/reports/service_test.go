package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	revenueFilter  RevenueReportFilter
	topItemsFilter TopItemsReportFilter
}

func (r *fakeRepo) GetRevenueReport(ctx context.Context, filter RevenueReportFilter) (*RevenueReport, error) {
	r.revenueFilter = filter
	return &RevenueReport{GroupBy: filter.GroupBy}, nil
}

func (r *fakeRepo) GetTopItemsReport(ctx context.Context, filter TopItemsReportFilter) (*TopItemsReport, error) {
	r.topItemsFilter = filter
	return &TopItemsReport{}, nil
}

func (r *fakeRepo) GetLowStockReport(ctx context.Context) (*LowStockReport, error) {
	return &LowStockReport{AsOf: time.Now()}, nil
}

func period() (time.Time, time.Time) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func TestGetRevenueDefaultsToDailyGrouping(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	from, to := period()
	report, err := svc.GetRevenue(t.Context(), RevenueReportFilter{FromDate: from, ToDate: to})
	require.NoError(t, err)

	assert.Equal(t, "dia", report.GroupBy)
	assert.Equal(t, "dia", repo.revenueFilter.GroupBy)
}

func TestGetRevenueRejectsUnknownGrouping(t *testing.T) {
	svc := NewService(&fakeRepo{})

	from, to := period()
	_, err := svc.GetRevenue(t.Context(), RevenueReportFilter{
		FromDate: from,
		ToDate:   to,
		GroupBy:  "semana",
	})
	assert.Error(t, err)
}

func TestGetRevenueRequiresPeriod(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.GetRevenue(t.Context(), RevenueReportFilter{})
	assert.Error(t, err)
}

func TestGetRevenueRejectsInvertedPeriod(t *testing.T) {
	svc := NewService(&fakeRepo{})

	from, to := period()
	_, err := svc.GetRevenue(t.Context(), RevenueReportFilter{FromDate: to, ToDate: from})
	assert.Error(t, err)
}

func TestGetTopItemsClampsLimit(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	from, to := period()

	_, err := svc.GetTopItems(t.Context(), TopItemsReportFilter{FromDate: from, ToDate: to})
	require.NoError(t, err)
	assert.Equal(t, 20, repo.topItemsFilter.Limit)

	_, err = svc.GetTopItems(t.Context(), TopItemsReportFilter{FromDate: from, ToDate: to, Limit: 999})
	require.NoError(t, err)
	assert.Equal(t, 200, repo.topItemsFilter.Limit)
}

func TestGetTopItemsRejectsUnknownItemType(t *testing.T) {
	svc := NewService(&fakeRepo{})

	from, to := period()
	_, err := svc.GetTopItems(t.Context(), TopItemsReportFilter{
		FromDate: from,
		ToDate:   to,
		ItemType: "herramienta",
	})
	assert.Error(t, err)
}
