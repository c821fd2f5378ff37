// The homebox-tool service registers the four Homebox inventory
// operations as GoMind capabilities and serves them over HTTP with
// Redis-backed discovery and OpenTelemetry tracing.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/itsneelabh/gomind/core"
	"github.com/itsneelabh/gomind/telemetry"

	"homebox-inventory-tool/internal/config"
	"homebox-inventory-tool/internal/inventory"
	"homebox-inventory-tool/internal/tool"
)

const serviceName = "homebox-inventory-tool"

func main() {
	// Valve settings for the Homebox connection. Load() also pulls in
	// .env, so it must run before validation reads the environment.
	cfg := config.Load()

	// Validate configuration first
	if err := validateConfig(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// A missing Homebox URL is not fatal: the tool stays registered and
	// answers every operation with the configuration-error message
	// until the URL is set.
	if cfg.HomeboxURL == "" {
		log.Println("Warning: HOMEBOX_URL is not set; operations will report the missing configuration")
	}

	// Create the tool FIRST so the component type is set for telemetry
	// auto-inference, then initialize telemetry.
	service := inventory.NewService(cfg.HomeboxURL, cfg.CFAccessClientID, cfg.CFAccessClientSecret)
	inventoryTool := tool.NewInventoryTool(service)

	initTelemetry(serviceName)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(ctx); err != nil {
			log.Printf("Warning: Telemetry shutdown error: %v", err)
		}
	}()

	// Get port configuration from environment
	port := 8093 // default for homebox-tool
	if portStr := os.Getenv("PORT"); portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil {
			port = p
		}
	}

	// Framework handles all the complexity
	framework, err := core.NewFramework(inventoryTool,
		core.WithName(serviceName),
		core.WithPort(port),
		core.WithNamespace(os.Getenv("NAMESPACE")),

		// Discovery configuration
		core.WithRedisURL(os.Getenv("REDIS_URL")),
		core.WithDiscovery(true, "redis"),

		// CORS for web access
		core.WithCORS([]string{"*"}, true),

		// Development mode from environment
		core.WithDevelopmentMode(os.Getenv("DEV_MODE") == "true"),

		// Distributed tracing middleware for context propagation
		core.WithMiddleware(telemetry.TracingMiddleware(serviceName)),
	)
	if err != nil {
		log.Fatalf("Failed to create framework: %v", err)
	}

	// Display startup information
	log.Println("Homebox Inventory Tool Starting...")
	log.Printf("Server Port: %d\n", port)
	if cfg.HomeboxURL != "" {
		log.Printf("Homebox API: %s (Cloudflare Access: %v)\n",
			cfg.HomeboxURL, cfg.CFAccessClientID != "" && cfg.CFAccessClientSecret != "")
	}
	log.Println()

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("\nShutting down gracefully...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		cancel()

		select {
		case <-shutdownCtx.Done():
			log.Println("Shutdown timeout exceeded")
			os.Exit(1)
		case <-time.After(1 * time.Second):
		}

		log.Println("Shutdown completed")
		os.Exit(0)
	}()

	// Run the framework (blocking)
	if err := framework.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Framework error: %v", err)
	}
}

// validateConfig validates all required configuration at startup
func validateConfig() error {
	// REDIS_URL is required for discovery
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return fmt.Errorf("REDIS_URL environment variable required")
	}

	// Validate Redis URL format
	if !strings.HasPrefix(redisURL, "redis://") && !strings.HasPrefix(redisURL, "rediss://") {
		return fmt.Errorf("invalid REDIS_URL format (must start with redis:// or rediss://)")
	}

	// Validate port if set
	if portStr := os.Getenv("PORT"); portStr != "" {
		if _, err := strconv.Atoi(portStr); err != nil {
			return fmt.Errorf("invalid PORT value: %v", err)
		}
	}

	return nil
}

// initTelemetry sets up telemetry based on environment
func initTelemetry(name string) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	var profile telemetry.Profile
	switch env {
	case "production", "prod":
		profile = telemetry.ProfileProduction
	case "staging", "stage", "qa":
		profile = telemetry.ProfileStaging
	default:
		profile = telemetry.ProfileDevelopment
	}

	telemetryConfig := telemetry.UseProfile(profile)
	telemetryConfig.ServiceName = name

	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		telemetryConfig.Endpoint = endpoint
	}

	if err := telemetry.Initialize(telemetryConfig); err != nil {
		log.Printf("Warning: Telemetry initialization failed: %v", err)
		log.Printf("   Tool will continue without telemetry")
		return
	}

	// Enable framework integration so core components (redis_registry,
	// discovery) emit their metrics too.
	telemetry.EnableFrameworkIntegration(nil)

	log.Printf("Telemetry initialized for %s", name)
}
