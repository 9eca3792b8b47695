// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/funteco-cms/internal/demo"
	"github.com/olegiv/funteco-cms/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func noop(context.Context) error { return nil }

func TestAddAndList(t *testing.T) {
	s := New(testLogger())
	require.NoError(t, s.Add(Job{Name: "b", Description: "second", Schedule: "@hourly", Run: noop}))
	require.NoError(t, s.Add(Job{Name: "a", Description: "first", Schedule: "*/5 * * * *", Run: noop}))

	jobs := s.Registry().List()
	require.Len(t, jobs, 2)
	assert.Equal(t, "a", jobs[0].Name)
	assert.Equal(t, "*/5 * * * *", jobs[0].Schedule)
	assert.False(t, jobs[0].IsOverridden)
	assert.Equal(t, "b", jobs[1].Name)
}

func TestAddRejects(t *testing.T) {
	s := New(testLogger())
	require.NoError(t, s.Add(Job{Name: "a", Schedule: "@daily", Run: noop}))

	assert.Error(t, s.Add(Job{Name: "a", Schedule: "@daily", Run: noop}), "duplicate name")
	assert.Error(t, s.Add(Job{Name: "c", Schedule: "every day", Run: noop}), "bad expression")
	assert.Len(t, s.Registry().List(), 1)
}

func TestTriggerNow(t *testing.T) {
	s := New(testLogger())
	calls := 0
	require.NoError(t, s.Add(Job{Name: "count", Schedule: "@daily", Run: func(ctx context.Context) error {
		calls++
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	}}))
	errBoom := errors.New("boom")
	require.NoError(t, s.Add(Job{Name: "fail", Schedule: "@daily", Run: func(context.Context) error { return errBoom }}))

	require.NoError(t, s.Registry().TriggerNow("count"))
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, s.Registry().TriggerNow("fail"), errBoom)
	assert.ErrorIs(t, s.Registry().TriggerNow("missing"), ErrJobNotFound)
}

func TestUpdateAndResetSchedule(t *testing.T) {
	s := New(testLogger())
	require.NoError(t, s.Add(Job{Name: "a", Schedule: "@daily", Run: noop}))
	r := s.Registry()

	require.NoError(t, r.UpdateSchedule("a", "0 3 * * *"))
	info := r.List()[0]
	assert.Equal(t, "0 3 * * *", info.Schedule)
	assert.Equal(t, "@daily", info.DefaultSchedule)
	assert.True(t, info.IsOverridden)

	assert.Error(t, r.UpdateSchedule("a", "not cron"))
	assert.Error(t, r.UpdateSchedule("missing", "@hourly"))
	assert.Equal(t, "0 3 * * *", r.List()[0].Schedule)

	require.NoError(t, r.ResetSchedule("a"))
	assert.False(t, r.List()[0].IsOverridden)
	require.NoError(t, r.ResetSchedule("a"))
}

func TestUnregister(t *testing.T) {
	s := New(testLogger())
	require.NoError(t, s.Add(Job{Name: "a", Schedule: "@daily", Run: noop}))
	s.Registry().Unregister("a")
	s.Registry().Unregister("a")
	assert.Empty(t, s.Registry().List())
}

func TestStartStop(t *testing.T) {
	s := New(testLogger())
	require.NoError(t, s.Add(Job{Name: "a", Schedule: "@daily", Run: noop}))
	s.Start()
	assert.False(t, s.Registry().List()[0].NextRun.IsZero())
	s.Stop()
}

type fakePruner struct {
	olderThan time.Duration
	deleted   int64
}

func (f *fakePruner) DeleteOldEvents(_ context.Context, olderThan time.Duration) (int64, error) {
	f.olderThan = olderThan
	return f.deleted, nil
}

func TestRetentionJob(t *testing.T) {
	p := &fakePruner{deleted: 3}
	job := RetentionJob(p, 90, testLogger())

	assert.Equal(t, JobEventRetention, job.Name)
	assert.Equal(t, "@daily", job.Schedule)
	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 90*24*time.Hour, p.olderThan)
}

type reloader struct{ calls int }

func (r *reloader) Reload(context.Context) error {
	r.calls++
	return nil
}

func TestDemoResetJob(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	r := &reloader{}
	job := DemoResetJob(st, r)
	assert.Equal(t, "@hourly", job.Schedule)

	require.NoError(t, job.Run(ctx))
	assert.Equal(t, 1, r.calls)
	_, ok, err := st.GetItem(ctx, demo.TimestampKey)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, job.Run(ctx))
	assert.Equal(t, 1, r.calls, "second run within 24h is a no-op")
}
