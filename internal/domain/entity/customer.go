package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/omondig/pulseboard-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Customer represents a customer in the dashboard
type Customer struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Name      string              `gorm:"size:255;not null" json:"name"`
	Email     string              `gorm:"size:255;unique;not null" json:"email"`
	Phone     *string             `gorm:"size:50" json:"phone,omitempty"`
	Company   *string             `gorm:"size:255" json:"company,omitempty"`
	Status    enum.CustomerStatus `gorm:"size:20;default:'active'" json:"status"`
	Notes     *string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	DeletedAt gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Orders []Order `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
