package repository

import (
	"context"

	"github.com/omondig/pulseboard-api/internal/domain/entity"
	domainRepo "github.com/omondig/pulseboard-api/internal/domain/repository"
	"gorm.io/gorm"
)

type systemRepository struct {
	db *gorm.DB
}

// NewSystemRepository creates a new system repository
func NewSystemRepository(db *gorm.DB) domainRepo.SystemRepository {
	return &systemRepository{db: db}
}

func (r *systemRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *systemRepository) CollectionCounts(ctx context.Context) (map[string]int64, error) {
	models := map[string]interface{}{
		"users":       &entity.User{},
		"customers":   &entity.Customer{},
		"products":    &entity.Product{},
		"orders":      &entity.Order{},
		"order_items": &entity.OrderItem{},
	}

	counts := make(map[string]int64, len(models))
	for name, model := range models {
		var count int64
		if err := r.db.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
			return nil, err
		}
		counts[name] = count
	}
	return counts, nil
}
