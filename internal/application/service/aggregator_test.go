package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omondig/pulseboard-api/internal/application/service"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
)

func orderOn(t *testing.T, day string, items ...entity.OrderItem) entity.Order {
	t.Helper()
	date, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	return entity.Order{
		ID:        uuid.New(),
		OrderDate: date,
		Items:     items,
	}
}

func lineItem(category string, quantity int, priceCents int64) entity.OrderItem {
	return entity.OrderItem{
		ID:       uuid.New(),
		Category: category,
		Quantity: quantity,
		Price:    priceCents,
	}
}

func TestBuildSalesSummary(t *testing.T) {
	orders := []entity.Order{
		orderOn(t, "2025-11-01", lineItem("A", 2, 5000)),
		orderOn(t, "2025-11-01", lineItem("B", 1, 3000)),
		orderOn(t, "2025-11-02", lineItem("A", 3, 1000)),
	}

	summary := service.BuildSalesSummary(orders, "")

	assert.Equal(t, 160.0, summary.TotalSales)
	assert.Equal(t, 3, summary.OrdersCount)
	assert.Equal(t, 53.33, summary.AvgOrderValue)
	assert.Equal(t, []service.CategorySales{
		{Category: "A", Sales: 130.0},
		{Category: "B", Sales: 30.0},
	}, summary.TopCategories)
	assert.Equal(t, []service.TrendPoint{
		{Date: "2025-11-01", Sales: 130.0},
		{Date: "2025-11-02", Sales: 30.0},
	}, summary.Trend)
}

func TestBuildSalesSummaryEmpty(t *testing.T) {
	summary := service.BuildSalesSummary(nil, "")

	assert.Equal(t, 0.0, summary.TotalSales)
	assert.Equal(t, 0, summary.OrdersCount)
	assert.Equal(t, 0.0, summary.AvgOrderValue)
	assert.NotNil(t, summary.TopCategories)
	assert.Empty(t, summary.TopCategories)
	assert.NotNil(t, summary.Trend)
	assert.Empty(t, summary.Trend)
}

func TestBuildSalesSummaryCategoryFilter(t *testing.T) {
	orders := []entity.Order{
		orderOn(t, "2025-11-01", lineItem("hardware", 1, 12000), lineItem("services", 1, 5000)),
		orderOn(t, "2025-11-02", lineItem("services", 2, 5000)),
	}

	summary := service.BuildSalesSummary(orders, "hardware")

	// The second order has no hardware lines, so it contributes nothing,
	// not even to the order count.
	assert.Equal(t, 120.0, summary.TotalSales)
	assert.Equal(t, 1, summary.OrdersCount)
	assert.Equal(t, 120.0, summary.AvgOrderValue)
	assert.Equal(t, []service.CategorySales{{Category: "hardware", Sales: 120.0}}, summary.TopCategories)
	assert.Equal(t, []service.TrendPoint{{Date: "2025-11-01", Sales: 120.0}}, summary.Trend)
}

func TestBuildSalesSummaryFilterMatchesNothing(t *testing.T) {
	orders := []entity.Order{
		orderOn(t, "2025-11-01", lineItem("hardware", 1, 12000)),
	}

	summary := service.BuildSalesSummary(orders, "subscriptions")

	assert.Equal(t, 0.0, summary.TotalSales)
	assert.Equal(t, 0, summary.OrdersCount)
	assert.Equal(t, 0.0, summary.AvgOrderValue)
	assert.Empty(t, summary.TopCategories)
	assert.Empty(t, summary.Trend)
}

func TestBuildSalesSummaryFilterIsCaseSensitive(t *testing.T) {
	orders := []entity.Order{
		orderOn(t, "2025-11-01", lineItem("Hardware", 1, 1000)),
	}

	summary := service.BuildSalesSummary(orders, "hardware")

	assert.Equal(t, 0, summary.OrdersCount)
}

func TestBuildSalesSummaryBlankCategory(t *testing.T) {
	orders := []entity.Order{
		orderOn(t, "2025-11-01", lineItem("", 1, 2500)),
		orderOn(t, "2025-11-01", lineItem("services", 1, 1000)),
	}

	summary := service.BuildSalesSummary(orders, "")

	assert.Equal(t, []service.CategorySales{
		{Category: "Unknown", Sales: 25.0},
		{Category: "services", Sales: 10.0},
	}, summary.TopCategories)

	// Blank categories are relabeled before filtering, so filtering by
	// "Unknown" picks them up.
	filtered := service.BuildSalesSummary(orders, "Unknown")
	assert.Equal(t, 25.0, filtered.TotalSales)
	assert.Equal(t, 1, filtered.OrdersCount)
}

func TestBuildSalesSummaryTopFiveTruncation(t *testing.T) {
	order := orderOn(t, "2025-11-01",
		lineItem("c1", 1, 100),
		lineItem("c2", 1, 200),
		lineItem("c3", 1, 300),
		lineItem("c4", 1, 400),
		lineItem("c5", 1, 500),
		lineItem("c6", 1, 600),
		lineItem("c7", 1, 700),
	)

	summary := service.BuildSalesSummary([]entity.Order{order}, "")

	require.Len(t, summary.TopCategories, 5)
	assert.Equal(t, "c7", summary.TopCategories[0].Category)
	assert.Equal(t, "c3", summary.TopCategories[4].Category)

	// The total still covers the categories that fell off the list
	assert.Equal(t, 28.0, summary.TotalSales)
}

func TestBuildSalesSummaryTieBreakByFirstSeen(t *testing.T) {
	orders := []entity.Order{
		orderOn(t, "2025-11-01", lineItem("beta", 1, 1000)),
		orderOn(t, "2025-11-02", lineItem("alpha", 1, 1000)),
	}

	summary := service.BuildSalesSummary(orders, "")

	require.Len(t, summary.TopCategories, 2)
	assert.Equal(t, "beta", summary.TopCategories[0].Category)
	assert.Equal(t, "alpha", summary.TopCategories[1].Category)
}

func TestBuildSalesSummaryCountsOrdersOnce(t *testing.T) {
	// Two lines of the same order in the same category and day
	order := orderOn(t, "2025-11-01",
		lineItem("services", 1, 1000),
		lineItem("services", 2, 1000),
	)

	summary := service.BuildSalesSummary([]entity.Order{order}, "")

	assert.Equal(t, 1, summary.OrdersCount)
	assert.Equal(t, 30.0, summary.TotalSales)
	assert.Equal(t, 30.0, summary.AvgOrderValue)
}

func TestBuildSalesSummaryTrendSortedAscending(t *testing.T) {
	orders := []entity.Order{
		orderOn(t, "2025-11-05", lineItem("a", 1, 100)),
		orderOn(t, "2025-11-01", lineItem("a", 1, 100)),
		orderOn(t, "2025-11-03", lineItem("a", 1, 100)),
	}

	summary := service.BuildSalesSummary(orders, "")

	require.Len(t, summary.Trend, 3)
	assert.Equal(t, "2025-11-01", summary.Trend[0].Date)
	assert.Equal(t, "2025-11-03", summary.Trend[1].Date)
	assert.Equal(t, "2025-11-05", summary.Trend[2].Date)
}

func TestBuildSalesSummaryCentsStayExact(t *testing.T) {
	// 19.99 * 3 would drift under float accumulation
	orders := []entity.Order{
		orderOn(t, "2025-11-01", lineItem("a", 3, 1999)),
		orderOn(t, "2025-11-01", lineItem("a", 1, 1)),
	}

	summary := service.BuildSalesSummary(orders, "")

	assert.Equal(t, 59.98, summary.TotalSales)
	assert.Equal(t, 59.98, summary.Trend[0].Sales)
	assert.Equal(t, 59.98, summary.TopCategories[0].Sales)
	assert.Equal(t, 29.99, summary.AvgOrderValue)
}

func TestBuildSalesSummaryGroupsByUTCDay(t *testing.T) {
	late := time.Date(2025, 11, 1, 23, 45, 0, 0, time.UTC)
	order := entity.Order{
		ID:        uuid.New(),
		OrderDate: late,
		Items:     []entity.OrderItem{lineItem("a", 1, 100)},
	}

	summary := service.BuildSalesSummary([]entity.Order{order}, "")

	require.Len(t, summary.Trend, 1)
	assert.Equal(t, "2025-11-01", summary.Trend[0].Date)
}
