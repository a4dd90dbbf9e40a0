package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shreya-jain12/JainTriad/internal/config"
	"github.com/shreya-jain12/JainTriad/internal/presentation/http/handler"
	"github.com/shreya-jain12/JainTriad/internal/presentation/http/middleware"
	"github.com/shreya-jain12/JainTriad/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Customer *handler.CustomerHandler
	Item     *handler.ItemHandler
	Bill     *handler.BillHandler
	Ledger   *handler.LedgerHandler
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
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/auth/me", h.Auth.Me)

	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:index", h.Customer.Get)
		customers.GET("/:index/export", h.Customer.Export)
		customers.DELETE("/:index", h.Customer.Delete)
	}

	items := protected.Group("/items")
	{
		items.GET("", h.Item.List)
		items.POST("", h.Item.Create)
		items.PUT("/:index/price", h.Item.UpdatePrice)
		items.DELETE("/:index", h.Item.Delete)
	}

	bills := protected.Group("/bills")
	{
		bills.GET("", h.Bill.List)
		bills.POST("", h.Bill.Create)
		// Registered before /:index so "export" is not parsed as a position
		bills.GET("/export/all", h.Bill.ExportAll)
		bills.GET("/:index", h.Bill.Get)
		bills.GET("/:index/export", h.Bill.Export)
	}

	khaata := protected.Group("/khaata")
	{
		khaata.GET("/:name", h.Ledger.Get)
	}
}
