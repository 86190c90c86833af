// Package memory backs the repository interfaces with in-process maps. It is
// the degraded mode used when PostgreSQL is unreachable at startup, seeded
// with the demo dataset so the dashboard stays usable.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
	"github.com/omondig/pulseboard-api/internal/infrastructure/seed"
)

// Store holds all collections behind one lock. Entities are stored by value
// and copied on the way in and out, so callers never share memory with the
// store.
type Store struct {
	mu        sync.RWMutex
	users     map[uuid.UUID]entity.User
	customers map[uuid.UUID]entity.Customer
	products  map[uuid.UUID]entity.Product
	orders    map[uuid.UUID]entity.Order
}

// NewStore creates a store preloaded with the demo dataset
func NewStore() *Store {
	s := &Store{
		users:     make(map[uuid.UUID]entity.User),
		customers: make(map[uuid.UUID]entity.Customer),
		products:  make(map[uuid.UUID]entity.Product),
		orders:    make(map[uuid.UUID]entity.Order),
	}

	now := time.Now().UTC()
	for _, u := range seed.Users() {
		u.CreatedAt = now
		u.UpdatedAt = now
		s.users[u.ID] = u
	}
	for _, c := range seed.Customers() {
		c.CreatedAt = now
		c.UpdatedAt = now
		s.customers[c.ID] = c
	}
	for _, p := range seed.Products() {
		p.CreatedAt = now
		p.UpdatedAt = now
		s.products[p.ID] = p
	}
	for _, o := range seed.Orders() {
		o.CreatedAt = now
		o.UpdatedAt = now
		s.orders[o.ID] = o
	}

	return s
}

func cloneOrder(o entity.Order) entity.Order {
	items := make([]entity.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
