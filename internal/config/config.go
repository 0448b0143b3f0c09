// ABOUTME: Configuration loader for the analyzer
// ABOUTME: Reads environment variables with defaults, optionally from a .env file

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port               string
	CORSAllowedOrigins []string // allowed CORS origins (empty = block all cross-origin)
	MaxRequestBodyKB   int      // request body size limit for POST endpoints

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json

	// Defaults for the compare sweep
	CompareTokens int // token count used by preset scenarios
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over file entries.
func Load() (*Config, error) {
	// Ignore a missing .env; it is a development convenience.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),
		MaxRequestBodyKB:   getEnvInt("MAX_REQUEST_BODY_KB", 64),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		CompareTokens:      getEnvInt("COMPARE_TOKENS", 1000),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}
	if cfg.MaxRequestBodyKB < 1 || cfg.MaxRequestBodyKB > 1024 {
		return nil, fmt.Errorf("MAX_REQUEST_BODY_KB must be between 1 and 1024, got %d", cfg.MaxRequestBodyKB)
	}
	if cfg.CompareTokens < 1 {
		return nil, fmt.Errorf("COMPARE_TOKENS must be positive, got %d", cfg.CompareTokens)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
