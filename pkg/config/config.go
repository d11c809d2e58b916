// Package config loads application settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL string
	Port        string
	Environment string

	// Pool sizing and the bound on waiting for a free connection.
	PoolMinConns   int32
	PoolMaxConns   int32
	AcquireTimeout time.Duration

	// Bounded drain window on shutdown.
	ShutdownGrace time.Duration

	// Per-IP request budget for the rate limiter.
	RateLimitRequests int64
	RateLimitWindow   time.Duration

	AllowedOrigins []string
}

// IsProduction reports whether the app runs with the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadConfig reads settings from the environment. A .env file is merged in
// first when present; real environment variables always win.
func LoadConfig() (*Config, error) {
	// Ignore the error; a missing .env file is the normal deployed case.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_POOL_MIN_CONNS", 2)
	v.SetDefault("DB_POOL_MAX_CONNS", 10)
	v.SetDefault("DB_ACQUIRE_TIMEOUT", "30s")
	v.SetDefault("SHUTDOWN_GRACE", "10s")
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", "15m")
	v.SetDefault("ALLOWED_ORIGINS", []string{"*"})

	dbURL := v.GetString("PGSQL_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable is not set")
	}

	cfg := &Config{
		DatabaseURL:       dbURL,
		Port:              v.GetString("PORT"),
		Environment:       v.GetString("APP_ENV"),
		PoolMinConns:      v.GetInt32("DB_POOL_MIN_CONNS"),
		PoolMaxConns:      v.GetInt32("DB_POOL_MAX_CONNS"),
		AcquireTimeout:    v.GetDuration("DB_ACQUIRE_TIMEOUT"),
		ShutdownGrace:     v.GetDuration("SHUTDOWN_GRACE"),
		RateLimitRequests: v.GetInt64("RATE_LIMIT_REQUESTS"),
		RateLimitWindow:   v.GetDuration("RATE_LIMIT_WINDOW"),
		AllowedOrigins:    v.GetStringSlice("ALLOWED_ORIGINS"),
	}

	if cfg.PoolMinConns > cfg.PoolMaxConns {
		return nil, fmt.Errorf("DB_POOL_MIN_CONNS (%d) exceeds DB_POOL_MAX_CONNS (%d)",
			cfg.PoolMinConns, cfg.PoolMaxConns)
	}

	return cfg, nil
}
