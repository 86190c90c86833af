package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/omondig/pulseboard-api/internal/application/service"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
)

func TestGetOverview(t *testing.T) {
	repo := &fakeAnalyticsRepo{orders: []entity.Order{
		orderOn(t, "2025-11-01", lineItem("A", 2, 5000)),
		orderOn(t, "2025-11-01", lineItem("B", 1, 3000)),
		orderOn(t, "2025-11-02", lineItem("A", 3, 1000)),
	}}
	svc := service.NewAnalyticsService(repo)

	start := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)

	summary, err := svc.GetOverview(context.Background(), &service.OverviewInput{
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)

	assert.Equal(t, 160.0, summary.TotalSales)
	assert.Equal(t, 3, summary.OrdersCount)

	// The window is pushed down to the repository untouched
	require.NotNil(t, repo.gotStart)
	require.NotNil(t, repo.gotEnd)
	assert.Equal(t, start, *repo.gotStart)
	assert.Equal(t, end, *repo.gotEnd)
}

func TestGetOverviewPassesCategoryToAggregation(t *testing.T) {
	repo := &fakeAnalyticsRepo{orders: []entity.Order{
		orderOn(t, "2025-11-01", lineItem("hardware", 1, 12000)),
		orderOn(t, "2025-11-01", lineItem("services", 1, 5000)),
	}}
	svc := service.NewAnalyticsService(repo)

	summary, err := svc.GetOverview(context.Background(), &service.OverviewInput{Category: "hardware"})
	require.NoError(t, err)

	assert.Equal(t, 120.0, summary.TotalSales)
	assert.Equal(t, 1, summary.OrdersCount)
}

func TestGetOverviewServesPlaceholderOnStorageFailure(t *testing.T) {
	repo := &fakeAnalyticsRepo{err: errors.New("connection refused")}
	svc := service.NewAnalyticsService(repo)

	summary, err := svc.GetOverview(context.Background(), &service.OverviewInput{})
	require.NoError(t, err)

	assert.Equal(t, 7500.0, summary.TotalSales)
	assert.Equal(t, 42, summary.OrdersCount)
	assert.Equal(t, 178.57, summary.AvgOrderValue)
	assert.Equal(t, []service.CategorySales{
		{Category: "subscriptions", Sales: 3200},
		{Category: "hardware", Sales: 2300},
	}, summary.TopCategories)
	require.Len(t, summary.Trend, 5)
	assert.Equal(t, service.TrendPoint{Date: "2025-11-01", Sales: 1200}, summary.Trend[0])
	assert.Equal(t, service.TrendPoint{Date: "2025-11-05", Sales: 2100}, summary.Trend[4])
}

func TestExportOverview(t *testing.T) {
	repo := &fakeAnalyticsRepo{orders: []entity.Order{
		orderOn(t, "2025-11-01", lineItem("A", 2, 5000)),
		orderOn(t, "2025-11-02", lineItem("B", 1, 3000)),
	}}
	svc := service.NewAnalyticsService(repo)

	data, filename, err := svc.ExportOverview(context.Background(), &service.OverviewInput{})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Regexp(t, `^sales-summary-\d{4}-\d{2}-\d{2}\.xlsx$`, filename)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	assert.Equal(t, []string{"Summary", "Trend"}, workbook.GetSheetList())

	title, err := workbook.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Sales Summary", title)

	totalLabel, err := workbook.GetCellValue("Summary", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Total sales", totalLabel)

	total, err := workbook.GetCellValue("Summary", "B5")
	require.NoError(t, err)
	assert.Equal(t, "130", total)

	firstDate, err := workbook.GetCellValue("Trend", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2025-11-01", firstDate)
}
