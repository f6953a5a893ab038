// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Port     string
	Env      string // "development", "staging", "production"
	LogLevel string

	// Link analysis
	FetchTimeout     time.Duration // hard limit on the outbound page fetch
	FetchMaxBytes    int64         // response body cap
	DomainAgeDays    int           // fixed value returned by the stub lookup
	MinDomainAgeDays int           // below this the new-domain rule fires
	AllowPrivateHosts bool         // disables the SSRF guard (dev/test only)

	// Security
	RateLimitRPM int

	// Observability
	OTLPEndpoint string // OTLP gRPC endpoint; empty disables tracing
}

const (
	DefaultPort             = "8080"
	DefaultEnv              = "development"
	DefaultLogLevel         = "info"
	DefaultFetchTimeoutMS   = 5000
	DefaultFetchMaxBytes    = 2 << 20 // 2MB
	DefaultDomainAgeDays    = 365
	DefaultMinDomainAgeDays = 90 // 3 months
	DefaultRateLimit        = 60
)

// Load reads configuration from environment variables
// It loads .env file if present (for local development)
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not present)
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", DefaultPort),
		Env:               getEnv("ENV", DefaultEnv),
		LogLevel:          getEnv("LOG_LEVEL", DefaultLogLevel),
		FetchTimeout:      time.Duration(getEnvInt64("FETCH_TIMEOUT_MS", DefaultFetchTimeoutMS)) * time.Millisecond,
		FetchMaxBytes:     getEnvInt64("FETCH_MAX_BYTES", DefaultFetchMaxBytes),
		DomainAgeDays:     int(getEnvInt64("DOMAIN_AGE_DAYS", DefaultDomainAgeDays)),
		MinDomainAgeDays:  int(getEnvInt64("MIN_DOMAIN_AGE_DAYS", DefaultMinDomainAgeDays)),
		AllowPrivateHosts: getEnvBool("ALLOW_PRIVATE_HOSTS", false),
		RateLimitRPM:      int(getEnvInt64("RATE_LIMIT_RPM", DefaultRateLimit)),
		OTLPEndpoint:      os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is coherent
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT_MS must be positive (an unbounded fetch is a defect)")
	}
	if c.FetchMaxBytes <= 0 {
		return fmt.Errorf("FETCH_MAX_BYTES must be positive")
	}
	if c.MinDomainAgeDays < 0 {
		return fmt.Errorf("MIN_DOMAIN_AGE_DAYS must not be negative")
	}
	if c.AllowPrivateHosts && c.Env == "production" {
		return fmt.Errorf("ALLOW_PRIVATE_HOSTS must not be set in production")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv returns the environment variable or a default
func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// getEnvInt64 returns the environment variable as int64 or a default
func getEnvInt64(key string, defaultValue int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvBool returns the environment variable as bool or a default
func getEnvBool(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}
