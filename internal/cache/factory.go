// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"
)

// Config holds configuration for cache creation.
type Config struct {
	// RedisURL selects the Redis backend when set. Example: redis://localhost:6379/0
	RedisURL string

	// Prefix is the key prefix for Redis.
	Prefix string

	DefaultTTL      time.Duration
	CleanupInterval time.Duration

	// FallbackToMemory returns a memory cache when Redis is unreachable.
	FallbackToMemory bool
}

// Info describes the backend NewCache ended up with.
type Info struct {
	Backend  string `json:"backend"` // "memory" or "redis"
	Address  string `json:"address,omitempty"`
	Fallback bool   `json:"fallback"`
}

// NewCache creates a Redis cache when RedisURL is set, otherwise a memory cache.
func NewCache(cfg Config, logger *slog.Logger) (Cache, Info, error) {
	if logger == nil {
		logger = slog.Default()
	}

	memory := func() *MemoryCache {
		interval := cfg.CleanupInterval
		if interval == 0 {
			interval = time.Minute
		}
		return NewMemoryCache(MemoryCacheOptions{DefaultTTL: cfg.DefaultTTL, CleanupInterval: interval})
	}

	if cfg.RedisURL == "" {
		return memory(), Info{Backend: "memory"}, nil
	}

	rc, err := NewRedisCacheFromURL(cfg.RedisURL, cfg.Prefix, cfg.DefaultTTL)
	if err != nil {
		if !cfg.FallbackToMemory {
			return nil, Info{}, fmt.Errorf("connecting to redis: %w", err)
		}
		logger.Warn("redis unavailable, falling back to memory cache",
			"category", "session", "redis", MaskRedisURL(cfg.RedisURL), "error", err)
		return memory(), Info{Backend: "memory", Fallback: true}, nil
	}

	return rc, Info{Backend: "redis", Address: MaskRedisURL(cfg.RedisURL)}, nil
}

// MaskRedisURL hides the password of a Redis URL for logging.
func MaskRedisURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "invalid-url"
	}
	if u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
		}
	}
	return u.String()
}
