package config

import (
	"os"
)

type Config struct {
	// Database. When empty the server falls back to the file-backed store
	// under DataDir (no identity directory, so sharing resolves nobody).
	DatabaseURL string
	DataDir     string

	// Auth
	GoogleClientID string
	JWTSecret      string

	// Server
	Port        string
	Environment string
}

func Load() *Config {
	return &Config{
		// Database
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DataDir:     getEnv("DATA_DIR", "data"),

		// Auth
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),

		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}
