package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products in a single query (prevents N+1
	// during order creation)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, category string) ([]entity.Product, error)
}
