package repository

import (
	"context"
	"time"

	"github.com/omondig/pulseboard-api/internal/domain/entity"
	domainRepo "github.com/omondig/pulseboard-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// ListOrdersBetween fetches orders with line items inside the window. Bounds
// are midnight UTC of a calendar day; the end bound is widened by a day so
// orders placed any time on the end date are included.
func (r *analyticsRepository) ListOrdersBetween(ctx context.Context, startDate, endDate *time.Time) ([]entity.Order, error) {
	var orders []entity.Order

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if startDate != nil {
		query = query.Where("order_date >= ?", *startDate)
	}

	if endDate != nil {
		query = query.Where("order_date < ?", endDate.AddDate(0, 0, 1))
	}

	err := query.
		Preload("Items").
		Order("order_date ASC").
		Find(&orders).Error

	return orders, err
}
