// The homebox-mock binary serves a self-contained mock of the Homebox
// inventory API for local development and resilience testing. It speaks
// the same wire format the real API does, optionally enforces the
// Cloudflare Access header pair, and exposes admin endpoints for error
// injection.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"homebox-inventory-tool/internal/logging"
	"homebox-inventory-tool/internal/mockbox"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	environment := os.Getenv("APP_ENV")
	if environment == "" {
		environment = "development"
	}

	logger := logging.New(environment)
	defer logger.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8094"
	}

	opts := mockbox.Options{
		CFClientID:     os.Getenv("MOCK_CF_CLIENT_ID"),
		CFClientSecret: os.Getenv("MOCK_CF_CLIENT_SECRET"),
	}

	// An alternate seed file replaces the embedded inventory wholesale.
	if seedPath := os.Getenv("MOCK_SEED_FILE"); seedPath != "" {
		data, err := os.ReadFile(seedPath)
		if err != nil {
			logger.Fatal("Failed to read seed file",
				zap.String("path", seedPath),
				zap.Error(err),
			)
		}
		opts.SeedData = data
		logger.Info("Using seed file", zap.String("path", seedPath))
	}

	server, err := mockbox.NewServer(logger, opts)
	if err != nil {
		logger.Fatal("Failed to create mock server", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: server,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting mock Homebox API",
			zap.String("port", port),
			zap.String("environment", environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
