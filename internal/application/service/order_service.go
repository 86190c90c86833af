package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
	"github.com/omondig/pulseboard-api/internal/domain/enum"
	"github.com/omondig/pulseboard-api/internal/domain/repository"
	"github.com/omondig/pulseboard-api/pkg/apperror"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// OrderItemInput represents an item in an order. Price and Category default
// to the product's catalog values when omitted.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Price     *float64
	Category  *string
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerID uuid.UUID
	Status     *string
	OrderDate  *time.Time
	Items      []OrderItemInput
}

// CreateOrder creates a new order. The customer name and each item's product
// name and category are copied onto the order here, so later reads and
// reporting never depend on the referenced rows.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	status := enum.OrderStatusPaid
	if input.Status != nil {
		status = enum.OrderStatus(*input.Status)
		if !status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid order status")
		}
	}

	items, total, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	orderDate := time.Now().UTC()
	if input.OrderDate != nil {
		orderDate = input.OrderDate.UTC()
	}

	order := &entity.Order{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Status:       status,
		OrderDate:    orderDate,
		Total:        total,
		Items:        items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// buildItems resolves the referenced products in one batch query and returns
// the denormalized line items together with the order total in cents.
func (s *OrderService) buildItems(ctx context.Context, inputs []OrderItemInput) ([]entity.OrderItem, int64, error) {
	productIDs := make([]uuid.UUID, len(inputs))
	for i, item := range inputs {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, 0, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var total int64
	items := make([]entity.OrderItem, 0, len(inputs))
	for _, item := range inputs {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, 0, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if item.Quantity < 1 {
			return nil, 0, apperror.NewBadRequestError("Item quantity must be at least 1")
		}

		price := product.Price
		if item.Price != nil {
			if *item.Price < 0 {
				return nil, 0, apperror.NewBadRequestError("Item price cannot be negative")
			}
			price = int64(math.Round(*item.Price * 100))
		}

		category := product.Category
		if item.Category != nil {
			category = *item.Category
		}

		items = append(items, entity.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Category:    category,
			Quantity:    item.Quantity,
			Price:       price,
		})
		total += int64(item.Quantity) * price
	}

	return items, total, nil
}

// GetOrder retrieves an order with its line items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders, optionally filtered by status
func (s *OrderService) ListOrders(ctx context.Context, status string, customerID *uuid.UUID) ([]entity.Order, error) {
	params := &repository.OrderFilterParams{CustomerID: customerID}

	if status != "" {
		parsed := enum.OrderStatus(status)
		if !parsed.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid order status")
		}
		params.Status = &parsed
	}

	orders, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	// Rows written before names were copied onto orders render as an em dash
	for i := range orders {
		if orders[i].CustomerName == "" {
			orders[i].CustomerName = "—"
		}
	}

	return orders, nil
}

// UpdateOrderInput represents the update order input. A non-nil Items slice
// replaces the order's line items wholesale.
type UpdateOrderInput struct {
	ID         uuid.UUID
	CustomerID *uuid.UUID
	Status     *string
	OrderDate  *time.Time
	Items      []OrderItemInput
}

// UpdateOrder applies a partial update to an order, recomputing the total
// when line items are replaced
func (s *OrderService) UpdateOrder(ctx context.Context, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if input.CustomerID != nil && *input.CustomerID != order.CustomerID {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		order.CustomerID = customer.ID
		order.CustomerName = customer.Name
	}

	if input.Status != nil {
		status := enum.OrderStatus(*input.Status)
		if !status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid order status")
		}
		order.Status = status
	}

	if input.OrderDate != nil {
		order.OrderDate = input.OrderDate.UTC()
	}

	if input.Items != nil {
		items, total, err := s.buildItems(ctx, input.Items)
		if err != nil {
			return nil, err
		}
		order.Items = items
		order.Total = total
	} else {
		// Leave stored line items untouched
		order.Items = nil
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(ctx, order.ID)
}

// DeleteOrder deletes an order and its line items
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	return s.orderRepo.Delete(ctx, id)
}
