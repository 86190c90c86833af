package request

import (
	"time"

	"github.com/google/uuid"
)

// OrderItemRequest represents one line item in an order payload. Price and
// Category override the product's catalog values when present.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Price     *float64  `json:"price" binding:"omitempty,min=0"`
	Category  *string   `json:"category" binding:"omitempty,max=100"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	CustomerID uuid.UUID          `json:"customer_id" binding:"required"`
	Status     *string            `json:"status"`
	OrderDate  *time.Time         `json:"order_date"`
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderRequest represents an order update request. A non-nil Items
// slice replaces the order's line items wholesale.
type UpdateOrderRequest struct {
	CustomerID *uuid.UUID         `json:"customer_id"`
	Status     *string            `json:"status"`
	OrderDate  *time.Time         `json:"order_date"`
	Items      []OrderItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
}
