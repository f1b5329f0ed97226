package config

import (
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable
func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return ValidationError{Field: "ServerPort", Message: "server port is required"}
	}
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return ValidationError{Field: "ServerPort", Message: "server port must be numeric"}
	}
	if cfg.DataDir == "" {
		return ValidationError{Field: "DataDir", Message: "data directory is required"}
	}
	if cfg.UploadsDir == "" {
		return ValidationError{Field: "UploadsDir", Message: "uploads directory is required"}
	}
	if cfg.StaticDir == "" {
		return ValidationError{Field: "StaticDir", Message: "static directory is required"}
	}
	return nil
}
