package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omondig/pulseboard-api/internal/config"
	"github.com/omondig/pulseboard-api/internal/presentation/http/handler"
	"github.com/omondig/pulseboard-api/internal/presentation/http/middleware"
	"github.com/omondig/pulseboard-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Customer  *handler.CustomerHandler
	Product   *handler.ProductHandler
	Order     *handler.OrderHandler
	Analytics *handler.AnalyticsHandler
	System    *handler.SystemHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Root endpoint, kept stable for frontend liveness checks
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Business Dashboard API running",
		})
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h)

		// Identity is attached when a token is present but never required
		api := v1.Group("")
		api.Use(middleware.OptionalAuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		api.Use(rateLimiter.Middleware())

		registerCustomerRoutes(api, h)
		registerProductRoutes(api, h)
		registerOrderRoutes(api, h)
		registerAnalyticsRoutes(api, h)
		registerSystemRoutes(api, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/signup", h.Auth.Signup)
	}
}

func registerCustomerRoutes(api *gin.RouterGroup, h *Handlers) {
	customers := api.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerProductRoutes(api *gin.RouterGroup, h *Handlers) {
	products := api.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerOrderRoutes(api *gin.RouterGroup, h *Handlers) {
	orders := api.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Update)
		orders.DELETE("/:id", h.Order.Delete)
	}
}

func registerAnalyticsRoutes(api *gin.RouterGroup, h *Handlers) {
	analytics := api.Group("/analytics")
	{
		analytics.GET("/overview", h.Analytics.GetSalesSummary)
		analytics.GET("/export", h.Analytics.ExportSalesSummary)
	}
}

func registerSystemRoutes(api *gin.RouterGroup, h *Handlers) {
	api.GET("/schema", h.System.Schema)

	system := api.Group("/system")
	{
		system.GET("/status", h.System.Status)
	}
}
