package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string
	Domain      string // cookie domain; empty means host-only cookies
}

// Load loads configuration from environment variables with sensible defaults.
// JWT_SECRET is required; sessions cannot be signed without it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		DatabaseDSN: getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=staymarket port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		Domain:      getEnv("DOMAIN", ""),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
