// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads .env files via godotenv and validates required settings

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// GitHub contains upstream API access configuration
	GitHub GitHubConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// CORSOrigins lists the allowed CORS origins
	CORSOrigins []string

	// RateLimit is the allowed request rate per client in requests/second
	RateLimit float64

	// RateBurst is the burst size of the per-client limiter
	RateBurst int
}

// GitHubConfig holds upstream GitHub API configuration
type GitHubConfig struct {
	// Token is the GitHub API bearer token
	Token string

	// Timeout is the per-request transport timeout
	Timeout time.Duration

	// MaxRetries is the retry budget beyond the first attempt
	MaxRetries int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/gocache)
	Type string

	// ReposTTL is the cache lifetime for aggregated repository lists
	ReposTTL time.Duration

	// LanguagesTTL is the cache lifetime for per-repository language lists
	LanguagesTTL time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum level emitted (debug/info/warn/error)
	Level string
}

// LoadFromEnv loads configuration from environment variables, reading a
// local .env file first when present.
func LoadFromEnv() (*Config, error) {
	// A missing .env file is not an error; real env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("PORT", "8000"),
			CORSOrigins: splitAndTrim(getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),
			RateLimit:   getEnvAsFloatOrDefault("RATE_LIMIT", 10),
			RateBurst:   getEnvAsIntOrDefault("RATE_BURST", 20),
		},
		GitHub: GitHubConfig{
			Token:      os.Getenv("GITHUB_TOKEN"),
			Timeout:    time.Duration(getEnvAsIntOrDefault("API_TIMEOUT", 30)) * time.Second,
			MaxRetries: getEnvAsIntOrDefault("MAX_RETRIES", 3),
		},
		Cache: CacheConfig{
			Type:         getEnvOrDefault("CACHE_TYPE", "memory"),
			ReposTTL:     time.Duration(getEnvAsIntOrDefault("CACHE_TTL_REPOS", 300)) * time.Second,
			LanguagesTTL: time.Duration(getEnvAsIntOrDefault("CACHE_TTL_LANGUAGES", 600)) * time.Second,
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.GitHub.Token == "" {
		return errors.New("github token cannot be empty")
	}

	if c.GitHub.Timeout < time.Second {
		return errors.New("api timeout must be at least 1 second")
	}

	if c.GitHub.MaxRetries < 0 || c.GitHub.MaxRetries > 10 {
		return errors.New("max retries must be between 0 and 10")
	}

	if c.Cache.Type != "memory" && c.Cache.Type != "gocache" {
		return fmt.Errorf("cache type must be 'memory' or 'gocache', got %q", c.Cache.Type)
	}

	if c.Cache.ReposTTL < time.Minute || c.Cache.ReposTTL > time.Hour {
		return errors.New("repos cache TTL must be between 60 and 3600 seconds")
	}

	if c.Cache.LanguagesTTL < time.Minute || c.Cache.LanguagesTTL > time.Hour {
		return errors.New("languages cache TTL must be between 60 and 3600 seconds")
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// splitAndTrim splits a comma-separated list, dropping empty elements
func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
