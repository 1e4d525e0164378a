package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything needed to call the routes service.
type Config struct {
	APIKey         string
	BaseURL        string
	TimeoutSeconds int
	Environment    string
}

// Load reads configuration from the environment, honouring a local .env
// file when present. The API key is required; everything else has a
// sensible default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:         os.Getenv("GOOGLE_MAPS_API_KEY"),
		BaseURL:        getEnv("ROUTES_BASE_URL", ""),
		TimeoutSeconds: getEnvAsInt("HTTP_TIMEOUT_SECONDS", 30),
		Environment:    getEnv("ENVIRONMENT", "development"),
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
