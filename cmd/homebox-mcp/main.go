// The homebox-mcp binary exposes the Homebox inventory operations as an
// MCP (Model Context Protocol) server over stdio, so MCP-capable chat
// clients can call them directly without the HTTP capability layer.
//
// Logs go to stderr; stdout carries the protocol stream.
package main

import (
	"os"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"homebox-inventory-tool/internal/config"
	"homebox-inventory-tool/internal/inventory"
	"homebox-inventory-tool/internal/logging"
)

const serverVersion = "1.0.0"

func main() {
	environment := os.Getenv("APP_ENV")
	if environment == "" {
		environment = "development"
	}

	logger := logging.New(environment)
	defer logger.Sync()

	cfg := config.Load()
	if cfg.HomeboxURL == "" {
		logger.Warn("HOMEBOX_URL is not set; tool calls will report the missing configuration")
	}

	service := inventory.NewService(cfg.HomeboxURL, cfg.CFAccessClientID, cfg.CFAccessClientSecret)

	s := server.NewMCPServer(
		"homebox-inventory",
		serverVersion,
		server.WithToolCapabilities(false),
	)
	registerTools(s, service)

	logger.Info("Starting MCP server on stdio",
		zap.String("homebox_url", cfg.HomeboxURL),
	)

	if err := server.ServeStdio(s); err != nil {
		logger.Fatal("MCP server error", zap.Error(err))
	}
}
