package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
	domainRepo "github.com/omondig/pulseboard-api/internal/domain/repository"
)

type productRepository struct {
	store *Store
}

// NewProductRepository creates a product repository backed by the store
func NewProductRepository(store *Store) domainRepo.ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.store.products[product.ID] = *product
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	product, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	products := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := r.store.products[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	product.UpdatedAt = time.Now().UTC()
	r.store.products[product.ID] = *product
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.products, id)
	return nil
}

func (r *productRepository) List(ctx context.Context, search string, category string) ([]entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	products := make([]entity.Product, 0, len(r.store.products))
	needle := strings.ToLower(search)
	for _, product := range r.store.products {
		if category != "" && product.Category != category {
			continue
		}
		if needle != "" && !productMatches(product, needle) {
			continue
		}
		products = append(products, product)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})
	return products, nil
}

func productMatches(p entity.Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), needle) {
		return true
	}
	return false
}
