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
	"time"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/internal/api"
	"hotel-reservation-backend/internal/db"
	"hotel-reservation-backend/internal/hotel"
	"hotel-reservation-backend/internal/inventory"
	"hotel-reservation-backend/internal/notification"
	"hotel-reservation-backend/internal/store"

	"github.com/SherClockHolmes/webpush-go"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "hotel-backend ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Push is optional; without keys the ledger is still written.
	if cfg.Push.PublicKey == "" || cfg.Push.PrivateKey == "" {
		logger.Println("VAPID keys are not configured; reservation push notifications are disabled")
	}

	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.NewGormStore(gormDB)
	logger.Println("data store initialized")

	// The worker pool is the chain's event sink: ledger rows and push messages.
	workerPool := notification.NewWorkerPool(cfg.WorkerPool.Size, appStore, &webpushOptions)
	workerPool.Start(ctx)

	chain, err := hotel.NewChain(cfg.Chain.Name, hotel.WithEventSink(workerPool))
	if err != nil {
		logger.Fatalf("failed to create hotel chain: %v", err)
	}
	if err := inventory.Seed(chain, cfg.Chain); err != nil {
		logger.Fatalf("failed to seed hotel chain: %v", err)
	}
	logger.Printf("hotel chain %q ready with %d hotels", chain.Name(), len(chain.Hotels()))

	// Feed updates flush the same cache the API serves listings from.
	responseCache := api.NewResponseCache(cfg.Server)
	inventorySvc := inventory.NewService(cfg.Inventory, chain, inventory.WithChangeHook(responseCache.Flush))
	go inventorySvc.Run(ctx)

	// Initialize router
	router := api.NewRouter(chain, appStore, &webpushOptions, cfg.Server, responseCache)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}
	cancel()

	logger.Println("Server gracefully stopped")
}
