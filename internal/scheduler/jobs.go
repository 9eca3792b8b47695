// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/funteco-cms/internal/demo"
	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/storage"
)

// Job names.
const (
	JobEventRetention = "event-retention"
	JobDemoReset      = "demo-reset"
)

// EventPruner deletes event log rows older than a cutoff.
type EventPruner interface {
	DeleteOldEvents(ctx context.Context, olderThan time.Duration) (int64, error)
}

// RetentionJob removes event log entries older than days, once a day.
func RetentionJob(events EventPruner, days int, logger *slog.Logger) Job {
	return Job{
		Name:        JobEventRetention,
		Description: fmt.Sprintf("Delete event log entries older than %d days", days),
		Schedule:    "@daily",
		Run: func(ctx context.Context) error {
			n, err := events.DeleteOldEvents(ctx, time.Duration(days)*24*time.Hour)
			if err != nil {
				return err
			}
			if n > 0 {
				logger.Info("pruned event log", "category", model.EventCategorySystem, "deleted", n)
			}
			return nil
		},
	}
}

// DemoResetJob restores the seeded documents every hour when the last
// reset is older than a day.
func DemoResetJob(st storage.Storage, reloaders ...demo.Reloader) Job {
	return Job{
		Name:        JobDemoReset,
		Description: "Restore seeded demo content every 24 hours",
		Schedule:    "@hourly",
		Run: func(ctx context.Context) error {
			_, err := demo.ResetIfNeeded(ctx, st, reloaders...)
			return err
		},
	}
}
