// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Supported record store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// # Configuration Schema

// Config holds all runtime configuration for the feedback API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// StoreDriver selects the record store backing the feedback service.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`

	// Relational Database (PostgreSQL). Required when StoreDriver is postgres.
	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns  int32  `env:"DB_MIN_CONNS" envDefault:"2"`

	// MigrationPath overrides the embedded SQL migrations with a directory on disk.
	MigrationPath string `env:"MIGRATION_PATH"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"true"`

	// Key-Value Cache (Redis). Leaving it empty disables the list cache.
	RedisURL      string        `env:"REDIS_URL"`
	RedisPoolSize int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"60s"`

	// JWTPubKeyPath enables the authenticated /api/user route when set.
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH"`

	// Cross-Origin Resource Sharing
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks cross-field constraints that struct tags cannot express.
func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("config: unsupported STORE_DRIVER %q", c.StoreDriver)
	}

	if c.DBMinConns > c.DBMaxConns {
		return errors.New("config: DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}

	if c.CacheTTL <= 0 {
		return errors.New("config: CACHE_TTL must be positive")
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsOriginAllowed reports whether a browser origin may call the API.
func (c *Config) IsOriginAllowed(origin string) bool {
	if c.IsDevelopment() {
		return true
	}
	for _, allowed := range c.AllowedOrigins {
		if strings.EqualFold(strings.TrimSpace(allowed), origin) {
			return true
		}
	}
	return false
}
