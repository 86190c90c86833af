package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
	domainRepo "github.com/omondig/pulseboard-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

// Update saves the order's base fields. A non-nil Items slice replaces the
// stored line items wholesale, matching how the API treats an order as one
// document.
func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if order.Items != nil {
			if err := tx.Delete(&entity.OrderItem{}, "order_id = ?", order.ID).Error; err != nil {
				return err
			}
		}
		return tx.Save(order).Error
	})
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, "id = ?", id).Error
	})
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, error) {
	var orders []entity.Order

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.StartDate != nil {
		query = query.Where("order_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("order_date <= ?", *params.EndDate)
	}

	err := query.
		Preload("Items").
		Order("order_date DESC").
		Find(&orders).Error

	return orders, err
}
