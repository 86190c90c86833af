package service

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
)

// maxTopCategories caps the top_categories list in the sales summary
const maxTopCategories = 5

// unknownCategory labels line items whose category was never recorded
const unknownCategory = "Unknown"

// SalesSummary is the aggregate the overview endpoint returns. Money values
// are decimals with two fractional digits.
type SalesSummary struct {
	TotalSales    float64         `json:"total_sales"`
	OrdersCount   int             `json:"orders_count"`
	AvgOrderValue float64         `json:"avg_order_value"`
	TopCategories []CategorySales `json:"top_categories"`
	Trend         []TrendPoint    `json:"trend"`
}

// CategorySales is one row of the top-categories ranking
type CategorySales struct {
	Category string  `json:"category"`
	Sales    float64 `json:"sales"`
}

// TrendPoint is one day of the sales trend
type TrendPoint struct {
	Date  string  `json:"date"`
	Sales float64 `json:"sales"`
}

// BuildSalesSummary folds pre-filtered orders into a SalesSummary. It is a
// pure function: date filtering happens in the repository, everything else
// happens here, in cents, so partial sums always reconcile with the total.
//
// Each line item becomes a (day, category) row worth quantity times unit
// price. Blank categories count under "Unknown". When category is non-empty
// only matching rows survive, and an order whose rows are all dropped
// contributes to neither the totals nor the order count. Ranking ties are
// broken by the order categories first appeared in the input.
func BuildSalesSummary(orders []entity.Order, category string) *SalesSummary {
	salesByCategory := make(map[string]int64)
	salesByDay := make(map[string]int64)
	categorySeen := make([]string, 0)
	orderIDs := make(map[uuid.UUID]struct{})
	var totalCents int64

	for _, order := range orders {
		day := order.OrderDate.UTC().Format("2006-01-02")
		for _, item := range order.Items {
			cat := item.Category
			if cat == "" {
				cat = unknownCategory
			}
			if category != "" && cat != category {
				continue
			}

			line := item.LineTotalCents()
			if _, ok := salesByCategory[cat]; !ok {
				categorySeen = append(categorySeen, cat)
			}
			salesByCategory[cat] += line
			salesByDay[day] += line
			totalCents += line
			orderIDs[order.ID] = struct{}{}
		}
	}

	summary := &SalesSummary{
		TotalSales:    centsToDecimal(totalCents),
		OrdersCount:   len(orderIDs),
		TopCategories: make([]CategorySales, 0, len(categorySeen)),
		Trend:         make([]TrendPoint, 0, len(salesByDay)),
	}

	if summary.OrdersCount > 0 {
		summary.AvgOrderValue = round2(summary.TotalSales / float64(summary.OrdersCount))
	}

	// Stable sort over first-seen ordering keeps ties deterministic
	for _, cat := range categorySeen {
		summary.TopCategories = append(summary.TopCategories, CategorySales{
			Category: cat,
			Sales:    centsToDecimal(salesByCategory[cat]),
		})
	}
	sort.SliceStable(summary.TopCategories, func(i, j int) bool {
		return summary.TopCategories[i].Sales > summary.TopCategories[j].Sales
	})
	if len(summary.TopCategories) > maxTopCategories {
		summary.TopCategories = summary.TopCategories[:maxTopCategories]
	}

	days := make([]string, 0, len(salesByDay))
	for day := range salesByDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		summary.Trend = append(summary.Trend, TrendPoint{
			Date:  day,
			Sales: centsToDecimal(salesByDay[day]),
		})
	}

	return summary
}

func centsToDecimal(cents int64) float64 {
	return float64(cents) / 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
