package repository

import (
	"context"
	"time"

	"github.com/omondig/pulseboard-api/internal/domain/entity"
)

// AnalyticsRepository defines read-only access to order data for reporting.
// Date filtering happens here; everything else is computed in the service
// layer so the aggregation stays storage-independent.
type AnalyticsRepository interface {
	// ListOrdersBetween returns orders with their line items, restricted to
	// the given window. A nil bound leaves that side open. Both bounds are
	// calendar days and inclusive: an order dated exactly on the start or
	// end day is returned.
	ListOrdersBetween(ctx context.Context, startDate, endDate *time.Time) ([]entity.Order, error)
}
