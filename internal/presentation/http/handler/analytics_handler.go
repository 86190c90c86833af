package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omondig/pulseboard-api/internal/application/service"
	"github.com/omondig/pulseboard-api/internal/presentation/http/dto/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AnalyticsHandler handles analytics-related HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetSalesSummary handles the sales summary query. start_date and end_date
// are optional YYYY-MM-DD bounds, category filters line items exactly.
func (h *AnalyticsHandler) GetSalesSummary(c *gin.Context) {
	input, ok := h.bindOverviewInput(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.GetOverview(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales summary retrieved successfully", summary)
}

// ExportSalesSummary streams the sales summary as an Excel workbook
func (h *AnalyticsHandler) ExportSalesSummary(c *gin.Context) {
	input, ok := h.bindOverviewInput(c)
	if !ok {
		return
	}

	data, filename, err := h.analyticsService.ExportOverview(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *AnalyticsHandler) bindOverviewInput(c *gin.Context) (*service.OverviewInput, bool) {
	startDate, bad := parseDateQuery(c, "start_date")
	if bad {
		response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
		return nil, false
	}

	endDate, bad := parseDateQuery(c, "end_date")
	if bad {
		response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
		return nil, false
	}

	return &service.OverviewInput{
		StartDate: startDate,
		EndDate:   endDate,
		Category:  c.Query("category"),
	}, true
}
