package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/quickbite/quickbite-api/internal/config"
	"github.com/quickbite/quickbite-api/internal/estimator"
	"github.com/quickbite/quickbite-api/internal/handlers"
	"github.com/quickbite/quickbite-api/internal/middleware"
	"github.com/quickbite/quickbite-api/internal/repository"
	"github.com/quickbite/quickbite-api/internal/service"
	"github.com/quickbite/quickbite-api/pkg/logger"
	"github.com/quickbite/quickbite-api/pkg/metrics"
)

func main() {
	// Load .env if present, then configuration from environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting quickbite api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize repositories; REDIS_ADDR selects the Redis-backed
	// order store, otherwise orders live in process memory.
	foodRepo := repository.NewInMemoryFoodRepository()

	var orderRepo repository.OrderRepository
	storeBackend := "memory"
	if cfg.Store.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisRepo, err := repository.NewRedisOrderRepository(ctx, cfg.Store.RedisAddr)
		cancel()
		if err != nil {
			log.Error("failed to connect to redis order store", "addr", cfg.Store.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer redisRepo.Close()
		orderRepo = redisRepo
		storeBackend = "redis"
	} else {
		orderRepo = repository.NewInMemoryOrderRepository()
	}
	log.Info("order store initialized", "backend", storeBackend)

	// Initialize services and the estimator
	foodService := service.NewFoodService(foodRepo)
	orderService := service.NewOrderService(foodRepo, orderRepo)
	est := estimator.New(
		time.Now().UnixNano(),
		time.Duration(cfg.Estimator.InferenceDelayMS)*time.Millisecond,
	)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log, storeBackend)
	foodHandler := handlers.NewFoodHandler(foodService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	predictHandler := handlers.NewPredictHandler(est, log)

	serverMetrics := metrics.New()

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics(serverMetrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Operational endpoints
	r.Get("/health", healthHandler.ServeHTTP)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints
		r.Get("/food", foodHandler.ListFood)
		r.Get("/food/category/{category}", foodHandler.ListByCategory)
		r.Get("/food/{id}", foodHandler.GetFood)

		// Order endpoints
		r.Post("/orders", orderHandler.CreateOrder)
		r.Get("/orders", orderHandler.ListOrders)
		r.Get("/orders/{id}", orderHandler.GetOrder)
		r.Put("/orders/{id}/status", orderHandler.UpdateStatus)

		// Prediction endpoints
		r.Post("/predict/delivery-time", predictHandler.PredictDeliveryTime)
		r.Post("/predict/batch", predictHandler.PredictBatch)
		r.Get("/predict/model-info", predictHandler.ModelInfo)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
