package database

import (
	"fmt"
	"log"

	"github.com/omondig/pulseboard-api/internal/config"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
	"github.com/omondig/pulseboard-api/internal/infrastructure/seed"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.LogQueries {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Customer{},
		&entity.Product{},
		&entity.Order{},
		&entity.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDemoData loads the demo dataset on an empty database so a fresh
// install has data to chart. Existing rows are left alone.
func SeedDemoData(db *gorm.DB) error {
	var customerCount int64
	if err := db.Model(&entity.Customer{}).Count(&customerCount).Error; err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if customerCount > 0 {
		return nil
	}

	log.Println("Empty database, seeding demo data...")

	for _, user := range seed.Users() {
		u := user
		if err := db.Create(&u).Error; err != nil {
			log.Printf("Warning: failed to seed user %s: %v", u.Email, err)
		}
	}
	for _, customer := range seed.Customers() {
		c := customer
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Warning: failed to seed customer %s: %v", c.Name, err)
		}
	}
	for _, product := range seed.Products() {
		p := product
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Warning: failed to seed product %s: %v", p.Name, err)
		}
	}
	for _, order := range seed.Orders() {
		o := order
		if err := db.Create(&o).Error; err != nil {
			log.Printf("Warning: failed to seed order %s: %v", o.ID, err)
		}
	}

	log.Println("Demo data seeding completed")
	return nil
}
