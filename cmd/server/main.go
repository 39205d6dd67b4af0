package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yasminebk/beautyuniverse-backend/config"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/controller"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/repository"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/service"
	"github.com/yasminebk/beautyuniverse-backend/internal/cart"
	"github.com/yasminebk/beautyuniverse-backend/internal/db"
	"github.com/yasminebk/beautyuniverse-backend/internal/middleware"
	"github.com/yasminebk/beautyuniverse-backend/internal/router"
	"github.com/yasminebk/beautyuniverse-backend/internal/scheduler"
	"github.com/yasminebk/beautyuniverse-backend/internal/storage"
	"github.com/yasminebk/beautyuniverse-backend/internal/websocket"
	"github.com/yasminebk/beautyuniverse-backend/pkg/logger"
	"github.com/yasminebk/beautyuniverse-backend/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Beauty Universe Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Cart snapshots go through Redis when available; without it carts
	// live only as long as the process.
	var snapshots cart.SnapshotStore
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, cart snapshots are in-memory only", map[string]interface{}{
			"error": err.Error(),
		})
		snapshots = cart.NewMemorySnapshotStore()
	} else {
		defer redis.Close()
		snapshots = cart.NewRedisSnapshotStore(redis.GetClient(), cfg.Cart.SnapshotTTL)
	}
	cartManager := cart.NewManager(snapshots)

	// Repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())

	// Live order feed for admin dashboards
	hub := websocket.NewHub()
	go hub.Run()

	// Services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	catalogService := service.NewCatalogService(productRepo, orderRepo, redis.GetClient())
	orderService := service.NewOrderService(orderRepo, hub)

	if err := authService.EnsureAdmin(os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		logger.Warn("Failed to ensure admin account", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Controllers
	authController := controller.NewAuthController(authService)
	catalogController := controller.NewCatalogController(catalogService)
	cartController := controller.NewCartController(cartManager, catalogService)
	orderController := controller.NewOrderController(orderService, cartManager)
	uploadController := controller.NewUploadController(s3Storage)
	wsController := controller.NewWSController(hub, cfg.CORS.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Recurring jobs: best-seller ranking and idle cart eviction
	catalogScheduler := scheduler.NewCatalogScheduler(catalogService, cartManager)
	if err := catalogScheduler.Start(); err != nil {
		logger.Error("Failed to start scheduler", err)
	}
	defer catalogScheduler.Stop()

	r := router.NewRouter(
		authController,
		catalogController,
		cartController,
		orderController,
		uploadController,
		wsController,
		authMiddleware,
		cartManager,
		cfg,
	)
	engine := r.Setup()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
