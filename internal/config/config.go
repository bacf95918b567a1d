package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DatabaseURL         string
	ServerPort          string
	BaseURL             string
	FrontendURL         string
	JWTSecret           string
	JWTExpiry           time.Duration
	RedisURL            string
	GameTimeOffsetHours int
	EnableHSTS          bool
	ServerDebugMode     bool
	OTELEnabled         bool
	OTELEndpoint        string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is applied first when present; real environment variables
// win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		BaseURL:             getEnv("BASE_URL", "http://localhost:8080"),
		FrontendURL:         getEnv("FRONTEND_URL", "http://localhost:3000"),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		JWTExpiry:           getEnvDuration("JWT_EXPIRY", 7*24*time.Hour),
		RedisURL:            getEnv("REDIS_URL", "redis://localhost:6379/0"),
		GameTimeOffsetHours: getEnvInt("GAME_TIME_OFFSET_HOURS", -2),
		EnableHSTS:          getEnvBool("ENABLE_HSTS", false),
		ServerDebugMode:     getEnvBool("SERVER_DEBUG_MODE", false),
		OTELEnabled:         getEnvBool("OTEL_ENABLED", false),
		OTELEndpoint:        getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
