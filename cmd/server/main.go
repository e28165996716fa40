package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ikkim/udonggeum-storefront/config"
	"github.com/ikkim/udonggeum-storefront/internal/app/controller"
	"github.com/ikkim/udonggeum-storefront/internal/app/repository"
	"github.com/ikkim/udonggeum-storefront/internal/app/service"
	"github.com/ikkim/udonggeum-storefront/internal/app/view"
	"github.com/ikkim/udonggeum-storefront/internal/catalog"
	"github.com/ikkim/udonggeum-storefront/internal/db"
	"github.com/ikkim/udonggeum-storefront/internal/middleware"
	"github.com/ikkim/udonggeum-storefront/internal/router"
	"github.com/ikkim/udonggeum-storefront/internal/scheduler"
	"github.com/ikkim/udonggeum-storefront/internal/storage"
	"github.com/ikkim/udonggeum-storefront/pkg/logger"
	"github.com/ikkim/udonggeum-storefront/pkg/redis"
	"github.com/ikkim/udonggeum-storefront/pkg/sigctx"
	"github.com/spf13/pflag"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envFile := pflag.StringP("env-file", "e", "", "dotenv file to load before reading the environment")
	pflag.Parse()

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}

	// Load configuration
	cfg, err := config.Load(envFiles...)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      cfg.Server.LogFormat,
		EnableColor: cfg.Server.LogFormat == "console",
	})

	logger.Info("Starting storefront server", logger.Fields{
		"environment":  cfg.Server.Environment,
		"port":         cfg.Server.Port,
		"log_level":    logLevel,
		"cart_backend": cfg.Cart.Backend,
	})

	ctx, stop := sigctx.NotifyContext()
	defer stop()

	// Cart storage
	cartStore, closeStore := initCartStore(cfg)
	defer closeStore()

	// Catalog
	var objects repository.ObjectGetter
	if strings.HasPrefix(cfg.Catalog.Source, "s3://") {
		objects = storage.NewS3Storage(ctx, cfg.S3)
	}
	loader, err := repository.NewCatalogLoader(cfg.Catalog.Source, cfg.Catalog.Timeout, objects)
	if err != nil {
		logger.Fatal("Failed to configure catalog loader", err, logger.Fields{
			"source": cfg.Catalog.Source,
		})
	}

	catalogService := service.NewCatalogService(loader, catalog.NewCollator(cfg.Server.Locale))
	loadCtx, cancel := context.WithTimeout(ctx, cfg.Catalog.Timeout)
	err = catalogService.Reload(loadCtx)
	cancel()
	if err != nil {
		logger.Fatal("Failed to load catalog", err, logger.Fields{
			"source": cfg.Catalog.Source,
		})
	}

	cartService := service.NewCartService(cartStore, catalogService, cfg.Cart.Slot)

	// Initialize controllers
	pageController := controller.NewPageController(catalogService, cartService, view.NewPriceFormatter(cfg.Server.Locale))
	productController := controller.NewProductController(catalogService)
	cartController := controller.NewCartController(cartService)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	// Background jobs
	jobs := scheduler.NewStorefrontScheduler(catalogService, cfg.Catalog.RefreshCron, cfg.Catalog.Timeout, rateLimiter)
	if err := jobs.Start(); err != nil {
		logger.Fatal("Failed to start scheduler", err)
	}
	defer jobs.Stop()

	// Setup router
	r := router.NewRouter(
		pageController,
		productController,
		cartController,
		rateLimiter,
		cfg,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           r.Setup(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server started successfully", logger.Fields{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	<-ctx.Done()

	logger.Info("Shutting down server gracefully...", nil)
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", err)
		return
	}
	logger.Info("Server stopped successfully", nil)
}

// initCartStore opens the configured cart backend and returns it with its
// closer.
func initCartStore(cfg *config.Config) (repository.CartStore, func()) {
	switch cfg.Cart.Backend {
	case "redis":
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Fatal("Failed to initialize redis", err)
		}
		return repository.NewRedisCartStore(redis.GetClient(), cfg.Cart.TTL), func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close redis connection", err)
			}
		}
	default:
		if err := db.Initialize(cfg.Cart.Backend, &cfg.Database); err != nil {
			logger.Fatal("Failed to initialize database", err)
		}
		if err := db.Migrate(); err != nil {
			logger.Fatal("Failed to run migrations", err)
		}
		return repository.NewGormCartStore(db.GetDB()), func() {
			if err := db.Close(); err != nil {
				logger.Error("Failed to close database connection", err)
			}
		}
	}
}
