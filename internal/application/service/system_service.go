package service

import (
	"context"
	"log"

	"github.com/omondig/pulseboard-api/internal/domain/repository"
)

// Storage modes reported by the status endpoint
const (
	StorageModePostgres = "postgres"
	StorageModeMemory   = "memory"
)

// SystemService reports runtime diagnostics about the API and its storage
type SystemService struct {
	systemRepo  repository.SystemRepository
	storageMode string
}

// NewSystemService creates a new system service
func NewSystemService(systemRepo repository.SystemRepository, storageMode string) *SystemService {
	return &SystemService{
		systemRepo:  systemRepo,
		storageMode: storageMode,
	}
}

// SystemStatus describes the running API and its storage backend
type SystemStatus struct {
	Status      string           `json:"status"`
	StorageMode string           `json:"storage_mode"`
	StorageOK   bool             `json:"storage_ok"`
	StorageErr  string           `json:"storage_error,omitempty"`
	Collections map[string]int64 `json:"collections,omitempty"`
}

// Status pings the storage backend and reports per collection row counts.
// Diagnostics degrade rather than fail, so the endpoint always answers.
func (s *SystemService) Status(ctx context.Context) *SystemStatus {
	status := &SystemStatus{
		Status:      "ok",
		StorageMode: s.storageMode,
		StorageOK:   true,
	}

	if err := s.systemRepo.Ping(ctx); err != nil {
		status.Status = "degraded"
		status.StorageOK = false
		status.StorageErr = err.Error()
		return status
	}

	counts, err := s.systemRepo.CollectionCounts(ctx)
	if err != nil {
		log.Printf("Warning: collection counts unavailable: %v", err)
		return status
	}
	status.Collections = counts

	return status
}

// CollectionSchema describes one stored collection
type CollectionSchema struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// Schema returns a static description of the stored collections
func (s *SystemService) Schema() []CollectionSchema {
	return []CollectionSchema{
		{
			Name:   "users",
			Fields: []string{"id", "name", "email", "role", "is_active", "created_at", "updated_at"},
		},
		{
			Name:   "customers",
			Fields: []string{"id", "name", "email", "phone", "company", "status", "notes", "created_at", "updated_at"},
		},
		{
			Name:   "products",
			Fields: []string{"id", "name", "description", "price", "category", "in_stock", "created_at", "updated_at"},
		},
		{
			Name:   "orders",
			Fields: []string{"id", "customer_id", "customer_name", "status", "order_date", "total", "items", "created_at", "updated_at"},
		},
		{
			Name:   "order_items",
			Fields: []string{"id", "order_id", "product_id", "product_name", "category", "quantity", "price"},
		},
	}
}
