// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package demo periodically restores the seeded admin and module documents
// on public demo instances.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/olegiv/funteco-cms/internal/admin"
	"github.com/olegiv/funteco-cms/internal/content"
	"github.com/olegiv/funteco-cms/internal/storage"
)

const (
	// TimestampKey is the storage key holding the last reset time.
	TimestampKey = "funteco-demo-last-reset"

	// resetInterval is how often the demo data should be refreshed.
	resetInterval = 24 * time.Hour
)

// now is replaced in tests.
var now = time.Now

// Reloader re-reads a document from storage. Both admin.Store and
// content.Store satisfy it.
type Reloader interface {
	Reload(ctx context.Context) error
}

// ResetIfNeeded resets the demo documents when the last reset is older
// than 24 hours or unknown. It reports whether a reset happened.
func ResetIfNeeded(ctx context.Context, st storage.Storage, reloaders ...Reloader) (bool, error) {
	raw, ok, err := st.GetItem(ctx, TimestampKey)
	if err != nil {
		return false, fmt.Errorf("reading reset timestamp: %w", err)
	}

	if ok {
		unixSec, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr == nil {
			lastReset := time.Unix(unixSec, 0)
			if now().Sub(lastReset) < resetInterval {
				slog.Debug("demo reset not needed",
					"last_reset", lastReset.UTC().Format(time.RFC3339),
					"next_reset", lastReset.Add(resetInterval).UTC().Format(time.RFC3339),
				)
				return false, nil
			}
		}
	}

	slog.Info("demo reset overdue, restoring seeded documents")
	if err := Reset(ctx, st, reloaders...); err != nil {
		return false, err
	}
	return true, nil
}

// Reset removes both documents, stamps the reset time and reloads the
// stores so their defaults are seeded again. Reloaders run in order, so
// the admin store must come before the content store.
func Reset(ctx context.Context, st storage.Storage, reloaders ...Reloader) error {
	for _, key := range []string{admin.StorageKey, content.StorageKey} {
		if err := st.RemoveItem(ctx, key); err != nil {
			return fmt.Errorf("removing %s: %w", key, err)
		}
	}

	stamp := strconv.FormatInt(now().UTC().Unix(), 10)
	if err := st.SetItem(ctx, TimestampKey, stamp); err != nil {
		return fmt.Errorf("writing reset timestamp: %w", err)
	}

	for _, r := range reloaders {
		if err := r.Reload(ctx); err != nil {
			return fmt.Errorf("reloading after reset: %w", err)
		}
	}

	slog.Info("demo reset complete")
	return nil
}
