package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
	"github.com/omondig/pulseboard-api/internal/domain/enum"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// Update persists the order's base fields. When order.Items is non-nil
	// the stored line items are replaced wholesale.
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Status     *enum.OrderStatus
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
