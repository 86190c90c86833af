package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/omondig/pulseboard-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a sales order
type Order struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerName string           `gorm:"size:255" json:"customer_name"`
	Status       enum.OrderStatus `gorm:"size:20;default:'paid'" json:"status"`
	OrderDate    time.Time        `gorm:"not null;index" json:"order_date"`
	Total        int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"-"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(o),
		Total: o.GetTotalDecimal(),
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// GetTotalDecimal returns the total as a decimal
func (o *Order) GetTotalDecimal() float64 {
	return float64(o.Total) / 100
}

// OrderItem represents a line item in an order. Category is copied from the
// product when the order is created so reporting never joins back to the
// catalog.
type OrderItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string         `gorm:"size:255" json:"product_name"`
	Category    string         `gorm:"size:255" json:"category"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	Price       int64          `gorm:"not null" json:"-"` // Unit price in cents, excluded from JSON
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		Price     float64 `json:"price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(i),
		Price:     float64(i.Price) / 100,
		LineTotal: float64(i.LineTotalCents()) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotalCents returns quantity times unit price in cents
func (i *OrderItem) LineTotalCents() int64 {
	return int64(i.Quantity) * i.Price
}
