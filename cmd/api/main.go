package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/omondig/pulseboard-api/internal/application/service"
	"github.com/omondig/pulseboard-api/internal/config"
	domainRepo "github.com/omondig/pulseboard-api/internal/domain/repository"
	"github.com/omondig/pulseboard-api/internal/infrastructure/database"
	"github.com/omondig/pulseboard-api/internal/infrastructure/memory"
	"github.com/omondig/pulseboard-api/internal/infrastructure/repository"
	"github.com/omondig/pulseboard-api/internal/presentation/http/handler"
	"github.com/omondig/pulseboard-api/internal/presentation/http/routes"
	"github.com/omondig/pulseboard-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Repositories are interfaces so the API can keep serving the seeded
	// in-memory dataset when Postgres is unreachable.
	var (
		userRepo      domainRepo.UserRepository
		customerRepo  domainRepo.CustomerRepository
		productRepo   domainRepo.ProductRepository
		orderRepo     domainRepo.OrderRepository
		analyticsRepo domainRepo.AnalyticsRepository
		systemRepo    domainRepo.SystemRepository
	)

	storageMode := service.StorageModePostgres

	db, err := database.NewPostgresDB(&cfg.Database)
	if err == nil {
		if migErr := database.AutoMigrate(db); migErr != nil {
			log.Printf("Warning: Failed to run migrations: %v", migErr)
			err = migErr
		} else if seedErr := database.SeedDemoData(db); seedErr != nil {
			log.Printf("Warning: Failed to seed demo data: %v", seedErr)
		}
	}

	if err == nil {
		userRepo = repository.NewUserRepository(db)
		customerRepo = repository.NewCustomerRepository(db)
		productRepo = repository.NewProductRepository(db)
		orderRepo = repository.NewOrderRepository(db)
		analyticsRepo = repository.NewAnalyticsRepository(db)
		systemRepo = repository.NewSystemRepository(db)
	} else {
		log.Printf("Warning: Postgres unavailable, serving the in-memory demo dataset: %v", err)
		storageMode = service.StorageModeMemory

		store := memory.NewStore()
		userRepo = memory.NewUserRepository(store)
		customerRepo = memory.NewCustomerRepository(store)
		productRepo = memory.NewProductRepository(store)
		orderRepo = memory.NewOrderRepository(store)
		analyticsRepo = memory.NewAnalyticsRepository(store)
		systemRepo = memory.NewSystemRepository(store)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo, customerRepo, productRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	systemService := service.NewSystemService(systemRepo, storageMode)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Customer:  handler.NewCustomerHandler(customerService),
		Product:   handler.NewProductHandler(productService),
		Order:     handler.NewOrderHandler(orderService),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		System:    handler.NewSystemHandler(systemService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s, storage: %s", cfg.App.Env, storageMode)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
