package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
	"github.com/omondig/pulseboard-api/internal/domain/enum"
	domainRepo "github.com/omondig/pulseboard-api/internal/domain/repository"
)

type customerRepository struct {
	store *Store
}

// NewCustomerRepository creates a customer repository backed by the store
func NewCustomerRepository(store *Store) domainRepo.CustomerRepository {
	return &customerRepository{store: store}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	r.store.customers[customer.ID] = *customer
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	customer, ok := r.store.customers[id]
	if !ok {
		return nil, nil
	}
	return &customer, nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, customer := range r.store.customers {
		if strings.EqualFold(customer.Email, email) {
			return &customer, nil
		}
	}
	return nil, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	customer.UpdatedAt = time.Now().UTC()
	r.store.customers[customer.ID] = *customer
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.customers, id)
	return nil
}

func (r *customerRepository) List(ctx context.Context, search string, status *enum.CustomerStatus) ([]entity.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	customers := make([]entity.Customer, 0, len(r.store.customers))
	needle := strings.ToLower(search)
	for _, customer := range r.store.customers {
		if status != nil && customer.Status != *status {
			continue
		}
		if needle != "" && !customerMatches(customer, needle) {
			continue
		}
		customers = append(customers, customer)
	}

	sort.Slice(customers, func(i, j int) bool {
		return customers[i].Name < customers[j].Name
	})
	return customers, nil
}

func customerMatches(c entity.Customer, needle string) bool {
	if strings.Contains(strings.ToLower(c.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Email), needle) {
		return true
	}
	if c.Company != nil && strings.Contains(strings.ToLower(*c.Company), needle) {
		return true
	}
	return false
}
