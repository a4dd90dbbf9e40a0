package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/shreya-jain12/JainTriad/internal/application/service"
	"github.com/shreya-jain12/JainTriad/internal/config"
	"github.com/shreya-jain12/JainTriad/internal/infrastructure/repository"
	"github.com/shreya-jain12/JainTriad/internal/infrastructure/store"
	"github.com/shreya-jain12/JainTriad/internal/presentation/http/handler"
	"github.com/shreya-jain12/JainTriad/internal/presentation/http/routes"
	"github.com/shreya-jain12/JainTriad/pkg/logging"
	"github.com/shreya-jain12/JainTriad/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logging.Setup(cfg.App.LogLevel)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := os.MkdirAll(cfg.Storage.Path, 0o755); err != nil {
		slog.Error("Failed to create storage directory", "path", cfg.Storage.Path, "error", err)
		os.Exit(1)
	}

	// Open the flat-file stores
	st := store.New(store.Options{
		DataPath:          cfg.Storage.DataPath(),
		ItemPath:          cfg.Storage.ItemPath(),
		ResetOnCorruption: cfg.Storage.ResetOnCorruption,
	})
	if err := st.Load(); err != nil {
		slog.Error("Failed to load stores", "error", err)
		os.Exit(1)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(st)
	itemRepo := repository.NewItemRepository(st)
	billRepo := repository.NewBillRepository(st)

	// Initialize services
	authService := service.NewAuthService(cfg.Storage.UserPath(), jwtManager)
	customerService := service.NewCustomerService(customerRepo, billRepo)
	itemService := service.NewItemService(itemRepo)
	billService := service.NewBillService(billRepo, itemRepo, customerRepo)
	ledgerService := service.NewLedgerService(billRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Customer: handler.NewCustomerHandler(customerService),
		Item:     handler.NewItemHandler(itemService),
		Bill:     handler.NewBillHandler(billService),
		Ledger:   handler.NewLedgerHandler(ledgerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("Starting server", "service", cfg.App.Name, "port", port, "env", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
