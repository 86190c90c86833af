// Package report renders sales summaries as xlsx workbooks for download
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// SalesSummaryData holds everything the workbook shows. The caller maps its
// own summary type into this struct, the package has no other dependencies.
type SalesSummaryData struct {
	GeneratedAt   time.Time
	StartDate     string
	EndDate       string
	Category      string
	TotalSales    float64
	OrdersCount   int
	AvgOrderValue float64
	TopCategories []CategoryRow
	Trend         []TrendRow
}

// CategoryRow is one line of the top-categories ranking
type CategoryRow struct {
	Category string
	Sales    float64
}

// TrendRow is one day of the sales trend
type TrendRow struct {
	Date  string
	Sales float64
}

const (
	summarySheet = "Summary"
	trendSheet   = "Trend"
)

// BuildSalesWorkbook renders the summary into a two-sheet workbook and
// returns the encoded file.
func BuildSalesWorkbook(data *SalesSummaryData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to set up summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, data); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(trendSheet); err != nil {
		return nil, fmt.Errorf("failed to set up trend sheet: %w", err)
	}
	if err := writeTrendSheet(f, data); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, data *SalesSummaryData) error {
	window := "all time"
	if data.StartDate != "" || data.EndDate != "" {
		window = fmt.Sprintf("%s to %s", orDash(data.StartDate), orDash(data.EndDate))
	}

	rows := [][]interface{}{
		{"Sales Summary"},
		{"Generated", data.GeneratedAt.Format("2006-01-02 15:04 UTC")},
		{"Window", window},
	}
	if data.Category != "" {
		rows = append(rows, []interface{}{"Category filter", data.Category})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Total sales", data.TotalSales},
		[]interface{}{"Orders", data.OrdersCount},
		[]interface{}{"Average order value", data.AvgOrderValue},
		[]interface{}{},
		[]interface{}{"Top categories", "Sales"},
	)
	for _, c := range data.TopCategories {
		rows = append(rows, []interface{}{c.Category, c.Sales})
	}

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("failed to address summary cell: %w", err)
			}
			if err := f.SetCellValue(summarySheet, cell, value); err != nil {
				return fmt.Errorf("failed to write summary cell %s: %w", cell, err)
			}
		}
	}

	return f.SetColWidth(summarySheet, "A", "A", 24)
}

func writeTrendSheet(f *excelize.File, data *SalesSummaryData) error {
	if err := f.SetCellValue(trendSheet, "A1", "Date"); err != nil {
		return fmt.Errorf("failed to write trend header: %w", err)
	}
	if err := f.SetCellValue(trendSheet, "B1", "Sales"); err != nil {
		return fmt.Errorf("failed to write trend header: %w", err)
	}

	for i, p := range data.Trend {
		dateCell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address trend cell: %w", err)
		}
		salesCell, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return fmt.Errorf("failed to address trend cell: %w", err)
		}
		if err := f.SetCellValue(trendSheet, dateCell, p.Date); err != nil {
			return fmt.Errorf("failed to write trend row %d: %w", i+1, err)
		}
		if err := f.SetCellValue(trendSheet, salesCell, p.Sales); err != nil {
			return fmt.Errorf("failed to write trend row %d: %w", i+1, err)
		}
	}

	return f.SetColWidth(trendSheet, "A", "B", 14)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
