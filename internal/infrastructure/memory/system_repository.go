package memory

import (
	"context"

	domainRepo "github.com/omondig/pulseboard-api/internal/domain/repository"
)

type systemRepository struct {
	store *Store
}

// NewSystemRepository creates a system repository backed by the store
func NewSystemRepository(store *Store) domainRepo.SystemRepository {
	return &systemRepository{store: store}
}

// Ping always succeeds, the store lives in process memory
func (r *systemRepository) Ping(ctx context.Context) error {
	return nil
}

func (r *systemRepository) CollectionCounts(ctx context.Context) (map[string]int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var itemCount int64
	for _, order := range r.store.orders {
		itemCount += int64(len(order.Items))
	}

	return map[string]int64{
		"users":       int64(len(r.store.users)),
		"customers":   int64(len(r.store.customers)),
		"products":    int64(len(r.store.products)),
		"orders":      int64(len(r.store.orders)),
		"order_items": itemCount,
	}, nil
}
