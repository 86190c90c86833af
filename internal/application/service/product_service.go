package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
	"github.com/omondig/pulseboard-api/internal/domain/repository"
	"github.com/omondig/pulseboard-api/pkg/apperror"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name        string
	Description *string
	Price       float64
	Category    string
	InStock     *bool
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		InStock:     inStock,
	}
	product.SetPriceFromDecimal(input.Price)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products, optionally filtered by a name/description
// search and by exact category
func (s *ProductService) ListProducts(ctx context.Context, search string, category string) ([]entity.Product, error) {
	return s.productRepo.List(ctx, search, category)
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	InStock     *bool
}

// UpdateProduct applies a partial update to a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		product.SetPriceFromDecimal(*input.Price)
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	return s.productRepo.Delete(ctx, id)
}
