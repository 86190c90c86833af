package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
	domainRepo "github.com/omondig/pulseboard-api/internal/domain/repository"
)

type orderRepository struct {
	store *Store
}

// NewOrderRepository creates an order repository backed by the store
func NewOrderRepository(store *Store) domainRepo.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
		order.Items[i].OrderID = order.ID
		order.Items[i].CreatedAt = now
		order.Items[i].UpdatedAt = now
	}
	r.store.orders[order.ID] = cloneOrder(*order)
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	order, ok := r.store.orders[id]
	if !ok {
		return nil, nil
	}
	order = cloneOrder(order)
	return &order, nil
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now().UTC()
	order.UpdatedAt = now

	if order.Items == nil {
		// Base-field update keeps the stored line items
		if existing, ok := r.store.orders[order.ID]; ok {
			order.Items = existing.Items
		}
	} else {
		for i := range order.Items {
			if order.Items[i].ID == uuid.Nil {
				order.Items[i].ID = uuid.New()
			}
			order.Items[i].OrderID = order.ID
			if order.Items[i].CreatedAt.IsZero() {
				order.Items[i].CreatedAt = now
			}
			order.Items[i].UpdatedAt = now
		}
	}

	r.store.orders[order.ID] = cloneOrder(*order)
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.orders, id)
	return nil
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]entity.Order, 0, len(r.store.orders))
	for _, order := range r.store.orders {
		if params.Status != nil && order.Status != *params.Status {
			continue
		}
		if params.CustomerID != nil && order.CustomerID != *params.CustomerID {
			continue
		}
		if params.StartDate != nil && order.OrderDate.Before(*params.StartDate) {
			continue
		}
		if params.EndDate != nil && order.OrderDate.After(*params.EndDate) {
			continue
		}
		orders = append(orders, cloneOrder(order))
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return orders, nil
}
