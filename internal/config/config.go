package config

import (
	"fmt"
	"os"
	"strconv"
)

// Storage drivers selectable through STORAGE_DRIVER
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Storage StorageConfig
	Redis   RedisConfig
	SQLite  SQLiteConfig
}

// StorageConfig selects the character store backend
type StorageConfig struct {
	Driver string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Storage: StorageConfig{
			Driver: getEnvOrDefault("STORAGE_DRIVER", DriverMemory),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		SQLite: SQLiteConfig{
			Path: getEnvOrDefault("SQLITE_PATH", "gamemaster.db"),
		},
	}

	switch cfg.Storage.Driver {
	case DriverMemory, DriverRedis, DriverSQLite:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (want %s, %s or %s)",
			cfg.Storage.Driver, DriverMemory, DriverRedis, DriverSQLite)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
