package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Storage locations
	DataDir    string
	UploadsDir string
	StaticDir  string

	// CORS configuration
	AllowedOrigins []string
}

// LoadConfig creates a new Config instance from environment variables,
// falling back to development defaults
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost:     getEnv("SERVER_HOST", ""),
		ServerPort:     getEnv("SERVER_PORT", "8000"),
		DataDir:        getEnv("DATA_DIR", "db"),
		UploadsDir:     getEnv("UPLOADS_DIR", "uploads"),
		StaticDir:      getEnv("STATIC_DIR", "static"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "*")),
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// splitOrigins parses a comma-separated origin list, dropping empty
// entries.
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}
