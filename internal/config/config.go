package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Comment policy configuration
	Comments CommentConfig

	// Auth configuration
	Auth AuthConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// CommentConfig holds comment policy settings
type CommentConfig struct {
	EditWindow       time.Duration
	RestoreWindow    time.Duration
	MaxContentLength int
	PageSize         int
}

// AuthConfig holds authentication settings
type AuthConfig struct {
	MinPasswordLength int
	BcryptCost        int
	SeedDemoData      bool
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Comments: CommentConfig{
			EditWindow:       getDurationEnv("COMMENT_EDIT_WINDOW", 15*time.Minute),
			RestoreWindow:    getDurationEnv("COMMENT_RESTORE_WINDOW", 15*time.Minute),
			MaxContentLength: getIntEnv("COMMENT_MAX_LENGTH", 1000),
			PageSize:         getIntEnv("COMMENT_PAGE_SIZE", 20),
		},
		Auth: AuthConfig{
			MinPasswordLength: getIntEnv("AUTH_MIN_PASSWORD_LENGTH", 8),
			BcryptCost:        getIntEnv("AUTH_BCRYPT_COST", 10),
			SeedDemoData:      getBoolEnv("SEED_DEMO_DATA", true),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Comments.EditWindow <= 0 {
		return fmt.Errorf("COMMENT_EDIT_WINDOW must be positive")
	}
	if c.Comments.RestoreWindow <= 0 {
		return fmt.Errorf("COMMENT_RESTORE_WINDOW must be positive")
	}
	if c.Comments.MaxContentLength <= 0 {
		return fmt.Errorf("COMMENT_MAX_LENGTH must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
