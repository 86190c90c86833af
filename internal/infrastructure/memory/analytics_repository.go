package memory

import (
	"context"
	"sort"
	"time"

	"github.com/omondig/pulseboard-api/internal/domain/entity"
	domainRepo "github.com/omondig/pulseboard-api/internal/domain/repository"
)

type analyticsRepository struct {
	store *Store
}

// NewAnalyticsRepository creates an analytics repository backed by the store
func NewAnalyticsRepository(store *Store) domainRepo.AnalyticsRepository {
	return &analyticsRepository{store: store}
}

// ListOrdersBetween applies the same window as the PostgreSQL implementation:
// inclusive start of day, end bound widened by a day.
func (r *analyticsRepository) ListOrdersBetween(ctx context.Context, startDate, endDate *time.Time) ([]entity.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]entity.Order, 0, len(r.store.orders))
	for _, order := range r.store.orders {
		if startDate != nil && order.OrderDate.Before(*startDate) {
			continue
		}
		if endDate != nil && !order.OrderDate.Before(endDate.AddDate(0, 0, 1)) {
			continue
		}
		orders = append(orders, cloneOrder(order))
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].OrderDate.Before(orders[j].OrderDate)
	})
	return orders, nil
}
