// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the FUNTECO_* environment configuration.
package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains example secrets that must never be used.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Storage backends for the admin documents.
const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Env           string `env:"FUNTECO_ENV" envDefault:"development"`
	LogLevel      string `env:"FUNTECO_LOG_LEVEL" envDefault:"info"`
	ServerHost    string `env:"FUNTECO_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"FUNTECO_SERVER_PORT" envDefault:"8080"`
	SessionSecret string `env:"FUNTECO_SESSION_SECRET,required"`

	DBPath      string `env:"FUNTECO_DB_PATH" envDefault:"./data/funteco.db"`
	Storage     string `env:"FUNTECO_STORAGE" envDefault:"sqlite"`
	RedisURL    string `env:"FUNTECO_REDIS_URL"`
	RedisPrefix string `env:"FUNTECO_REDIS_PREFIX" envDefault:"funteco:"`

	// Collaborator sessions
	SessionTTL         time.Duration `env:"FUNTECO_SESSION_TTL" envDefault:"4h"`
	SessionTTLExtended time.Duration `env:"FUNTECO_SESSION_TTL_EXTENDED" envDefault:"720h"`
	AdminEmail         string        `env:"FUNTECO_ADMIN_EMAIL" envDefault:"admin@funteco.org"`
	AdminPassword      string        `env:"FUNTECO_ADMIN_PASSWORD" envDefault:"funteco123"`

	// Remote CMS
	StrapiURL     string        `env:"FUNTECO_STRAPI_URL"`
	StrapiToken   string        `env:"FUNTECO_STRAPI_TOKEN"`
	StrapiTimeout time.Duration `env:"FUNTECO_STRAPI_TIMEOUT" envDefault:"10s"`
	Locale        string        `env:"FUNTECO_LOCALE" envDefault:"es-EC"`

	DemoMode           bool `env:"FUNTECO_DEMO_MODE" envDefault:"false"`
	EventRetentionDays int  `env:"FUNTECO_EVENT_RETENTION_DAYS" envDefault:"90"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if the application is running in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// RemoteEnabled reports whether a remote CMS is configured.
func (c Config) RemoteEnabled() bool {
	return c.StrapiURL != ""
}

// SlogLevel maps LogLevel to a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("FUNTECO_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}
	if slices.Contains(knownWeakSecrets, cfg.SessionSecret) {
		return nil, fmt.Errorf("FUNTECO_SESSION_SECRET is a known default value and must not be used")
	}
	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("FUNTECO_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	switch cfg.Storage {
	case StorageSQLite, StorageMemory:
	case StorageRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("FUNTECO_STORAGE=redis requires FUNTECO_REDIS_URL")
		}
	default:
		return nil, fmt.Errorf("FUNTECO_STORAGE must be one of sqlite, redis, memory; got %q", cfg.Storage)
	}

	if cfg.SessionTTL <= 0 || cfg.SessionTTLExtended <= 0 {
		return nil, fmt.Errorf("session TTLs must be positive")
	}
	if cfg.EventRetentionDays < 1 {
		return nil, fmt.Errorf("FUNTECO_EVENT_RETENTION_DAYS must be at least 1, got %d", cfg.EventRetentionDays)
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
