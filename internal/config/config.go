// Package config loads the Homebox connection settings from the
// environment. These are the "valves" a hosting assistant exposes to
// the end user: the API base URL and an optional pair of Cloudflare
// Access credentials for deployments sitting behind an access proxy.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// HomeboxURL is the base URL of the Homebox API, with or without
	// a trailing slash or /api suffix. Empty means unconfigured.
	HomeboxURL string
	// CFAccessClientID and CFAccessClientSecret are forwarded as
	// CF-Access-Client-Id/-Secret headers when both are set.
	CFAccessClientID     string
	CFAccessClientSecret string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		HomeboxURL:           getEnv("HOMEBOX_URL", ""),
		CFAccessClientID:     getEnv("CF_ACCESS_CLIENT_ID", ""),
		CFAccessClientSecret: getEnv("CF_ACCESS_CLIENT_SECRET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
