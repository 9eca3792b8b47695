// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the periodic maintenance jobs: event log
// retention and the demo reset check.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/funteco-cms/internal/model"
)

// jobTimeout bounds a single job run.
const jobTimeout = time.Minute

// Job is one periodic task.
type Job struct {
	Name        string
	Description string
	Schedule    string
	Run         func(ctx context.Context) error
}

// Scheduler owns a cron instance and the registry of its jobs.
type Scheduler struct {
	cron     *cron.Cron
	registry *Registry
	logger   *slog.Logger
}

// New creates a new scheduler instance.
func New(logger *slog.Logger) *Scheduler {
	c := cron.New(cron.WithParser(parser))
	return &Scheduler{
		cron:     c,
		registry: newRegistry(c, logger),
		logger:   logger,
	}
}

// Add registers job. Failures of a run are logged, never propagated.
func (s *Scheduler) Add(job Job) error {
	trigger := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		return job.Run(ctx)
	}
	run := func() {
		if err := trigger(); err != nil {
			s.logger.Error("scheduled job failed", "category", model.EventCategorySystem, "job", job.Name, "error", err)
		}
	}
	return s.registry.add(job.Name, job.Description, job.Schedule, run, trigger)
}

// Registry exposes the registered jobs.
func (s *Scheduler) Registry() *Registry {
	return s.registry
}

// Start begins running the registered jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}
