package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Pesokrava/beverage_stock/internal/config"
	"github.com/Pesokrava/beverage_stock/internal/delivery/events"
	httpDelivery "github.com/Pesokrava/beverage_stock/internal/delivery/http"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
	"github.com/Pesokrava/beverage_stock/internal/usecase/inventory"

	_ "github.com/Pesokrava/beverage_stock/docs"
)

// @title Beverage Stock API
// @version 1.0
// @description Inventory tracking for a soft-drink distributor: products and variants, sales, incoming stock, stock alerts and spreadsheet export.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/Pesokrava/beverage_stock
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @tag.name Products
// @tag.description Product and variant management endpoints

// @tag.name Sales
// @tag.description Sales recording endpoints

// @tag.name Incoming
// @tag.description Incoming stock endpoints

// @tag.name Dashboard
// @tag.description Overview and stock alert endpoints

// @tag.name Activity
// @tag.description Activity log and spreadsheet export endpoints

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env, logger.WithLevel(cfg.LogLevel))
	logger.SetGlobalLogger(appLogger)
	appLogger.Info("Starting Beverage Stock API...")

	ctx := context.Background()

	st, err := openStorage(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open storage", err)
	}
	defer st.Close()

	var publisher inventory.EventPublisher
	if cfg.NATS.Enabled {
		appLogger.Info("Connecting to NATS...")
		natsPublisher, err := events.NewPublisher(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to create NATS publisher", err)
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
	}

	store := inventory.NewStore(st.snapshots, publisher, appLogger, inventory.WithSnapshotKey(cfg.Storage.Key))
	if err := store.Load(ctx); err != nil {
		appLogger.Fatal("Failed to load inventory", err)
	}
	if _, err := store.InitializeProducts(ctx); err != nil {
		appLogger.Fatal("Failed to initialize products", err)
	}

	router := httpDelivery.NewRouter(store, st.alerts, cfg, appLogger)
	httpHandler := router.Setup()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Infof("HTTP server listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("HTTP server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
		return
	}

	appLogger.Info("Server stopped gracefully")
}
