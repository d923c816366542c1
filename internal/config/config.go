package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	HTTPPort    string
	DBPath      string
	Environment string
	LogLevel    string
	ServiceName string
}

// Load reads configuration from the environment, with a best-effort .env
// load first. Every key has a default; the shop runs with no configuration
// at all.
func Load() *Config {
	// A missing .env file is fine.
	_ = godotenv.Load()

	return &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DBPath:      getEnv("DB_PATH", "db/pup_shop.db"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		ServiceName: getEnv("OTEL_SERVICE_NAME", "pupshop"),
	}
}

// IsDevelopment reports whether the shop runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
