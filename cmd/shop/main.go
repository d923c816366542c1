package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/Golgrax/pupshop/internal/cart"
	carthttp "github.com/Golgrax/pupshop/internal/cart/delivery/http"
	cataloghttp "github.com/Golgrax/pupshop/internal/catalog/delivery/http"
	catalogrepository "github.com/Golgrax/pupshop/internal/catalog/repository"
	"github.com/Golgrax/pupshop/internal/config"
	contacthttp "github.com/Golgrax/pupshop/internal/contact/delivery/http"
	contactrepository "github.com/Golgrax/pupshop/internal/contact/repository"
	contactcommand "github.com/Golgrax/pupshop/internal/contact/usecase/command"
	orderhttp "github.com/Golgrax/pupshop/internal/order/delivery/http"
	orderrepository "github.com/Golgrax/pupshop/internal/order/repository"
	ordercommand "github.com/Golgrax/pupshop/internal/order/usecase/command"
	orderquery "github.com/Golgrax/pupshop/internal/order/usecase/query"
	userhttp "github.com/Golgrax/pupshop/internal/user/delivery/http"
	userrepository "github.com/Golgrax/pupshop/internal/user/repository"
	"github.com/Golgrax/pupshop/pkg/database"
	"github.com/Golgrax/pupshop/pkg/logger"
	"github.com/Golgrax/pupshop/pkg/tracing"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting PUP e-shop")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database
	db, err := database.NewSQLiteConnection(database.Config{Path: cfg.DBPath})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := config.Migrate(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Seed the catalog and the default admin account
	if err := config.SeedProducts(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed products")
	}
	if err := config.SeedAdmin(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed admin account")
	}

	logger.Logger.Info().Str("path", cfg.DBPath).Msg("Database initialized successfully")

	// Per-user carts live in memory for the lifetime of the process
	carts := cart.NewStore()

	// Repositories
	userRepo := userrepository.NewGormUserRepository(db)
	addressRepo := userrepository.NewGormAddressRepository(db)
	productRepo := catalogrepository.NewGormProductRepositoryWithTracing(db)
	orderRepo := orderrepository.NewGormOrderRepositoryWithTracing(db)
	contactRepo := contactrepository.NewGormContactRepository(db)

	// Handlers
	userHandler := userhttp.NewUserHandler(userRepo, addressRepo, carts)
	catalogHandler := cataloghttp.NewCatalogHandler(productRepo)

	cartHandler := carthttp.NewCartHandler(carts, productRepo)

	orderHandler := orderhttp.NewOrderHandler(
		ordercommand.NewPlaceOrderHandler(orderRepo, productRepo),
		orderquery.NewPreviewCheckoutHandler(productRepo),
		orderquery.NewListOrdersHandler(orderRepo),
		orderquery.NewGetOrderHandler(orderRepo),
		carts,
	)

	contactHandler := contacthttp.NewContactHandler(
		contactcommand.NewSubmitMessageHandler(contactRepo),
	)

	// Setup router
	router := mux.NewRouter()
	userHandler.RegisterRoutes(router)
	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	contactHandler.RegisterRoutes(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		status := "healthy"
		code := http.StatusOK
		if err := sqlDB.Ping(); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]string{"status": status})
	}).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to shut down HTTP server cleanly")
	}
}
