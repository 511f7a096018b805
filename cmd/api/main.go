package main

import (
	"context"
	"log"
	"time"

	"order-tracker/internal/core/cache"
	"order-tracker/internal/core/config"
	"order-tracker/internal/core/logger"
	"order-tracker/internal/core/server"
	orderadapters "order-tracker/internal/features/orders/adapters"
	orderhandler "order-tracker/internal/features/orders/handler"
	orderports "order-tracker/internal/features/orders/ports"
	orderservice "order-tracker/internal/features/orders/service"
	trackingadapters "order-tracker/internal/features/tracking/adapters"
	trackinghandler "order-tracker/internal/features/tracking/handler"
	trackingservice "order-tracker/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title Order Tracker API
// @version 1.0
// @description Normalized order tracking and timeline API for the storefront.
// @contact.name API Support
// @contact.email support@ordertracker.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx := context.Background()

	// Backend order provider, optionally behind a Redis cache.
	storefront := orderadapters.NewStorefrontAdapter(cfg.Backend)

	var orderProvider orderports.OrderProvider = storefront
	if cfg.Cache.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL)
		if err != nil {
			l.Fatal("Failed to create Redis cache", zap.Error(err))
		}
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			l.Fatal("Redis unreachable", zap.Error(err))
		}

		ttl := time.Duration(cfg.Cache.OrderTTLSeconds) * time.Second
		orderProvider = orderadapters.NewCachedOrderProvider(storefront, redisCache, ttl)
		l.Info("Order cache enabled", zap.Duration("ttl", ttl))
	} else {
		l.Info("Order cache disabled, serving straight from the backend")
	}

	if err := storefront.HealthCheck(ctx); err != nil {
		l.Fatal("Backend health check failed", zap.Error(err))
	}
	l.Info("Backend connection verified")

	orderSvc := orderservice.NewOrderService(orderProvider)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	trackingSource := trackingadapters.NewBackendAdapter(cfg.Backend, cfg.Tracking)
	trackingSvc := trackingservice.NewTrackingService(trackingSource)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	srv := server.New(cfg)

	srv.App.Get("/orders/:id", orderHdl.GetOrder)
	srv.App.Get("/tracking/:orderID?", trackingHdl.GetTracking)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
