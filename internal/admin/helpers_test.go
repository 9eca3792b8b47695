// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/olegiv/funteco-cms/internal/hooks"
	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/storage"
)

var testNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

type fixture struct {
	store   *Store
	storage storage.Storage
	hooks   *hooks.Registry
	logs    *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{storage: storage.NewMemory(), logs: &bytes.Buffer{}}
	logger := slog.New(slog.NewTextHandler(f.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f.hooks = hooks.NewRegistry(logger)
	f.store = f.open(t, logger)
	return f
}

func (f *fixture) open(t *testing.T, logger *slog.Logger) *Store {
	t.Helper()
	s, err := Open(context.Background(), f.storage,
		WithLogger(logger),
		WithClock(func() time.Time { return testNow }),
		WithHooks(f.hooks),
	)
	require.NoError(t, err)
	return s
}

func (f *fixture) login(t *testing.T, username, password string) model.User {
	t.Helper()
	u, err := f.store.Login(context.Background(), username, password)
	require.NoError(t, err)
	return u
}

// withUser creates an account as admin and logs in as it.
func (f *fixture) withUser(t *testing.T, username string, role model.Role) model.User {
	t.Helper()
	ctx := context.Background()
	f.login(t, "admin", "admin123")
	_, err := f.store.CreateUser(ctx, NewUser{Username: username, Password: "secret", Role: role})
	require.NoError(t, err)
	require.NoError(t, f.store.Logout(ctx))
	return f.login(t, username, "secret")
}

func ptr[T any](v T) *T { return &v }
