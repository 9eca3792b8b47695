// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/funteco-cms/internal/store"
)

func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.GetItem(ctx, "funteco-admin-state")
	require.NoError(t, err)
	assert.False(t, ok, "missing key should report ok=false")

	require.NoError(t, s.SetItem(ctx, "funteco-admin-state", `{"users":[]}`))
	v, ok, err := s.GetItem(ctx, "funteco-admin-state")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"users":[]}`, v)

	require.NoError(t, s.SetItem(ctx, "funteco-admin-state", `{"users":[1]}`))
	v, _, err = s.GetItem(ctx, "funteco-admin-state")
	require.NoError(t, err)
	assert.Equal(t, `{"users":[1]}`, v, "SetItem should overwrite")

	require.NoError(t, s.RemoveItem(ctx, "funteco-admin-state"))
	require.NoError(t, s.RemoveItem(ctx, "funteco-admin-state"), "removing a missing key is not an error")
	_, ok, err = s.GetItem(ctx, "funteco-admin-state")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory(t *testing.T) {
	exerciseStorage(t, NewMemory())
}

func TestSQL(t *testing.T) {
	db, err := store.NewDB(filepath.Join(t.TempDir(), "storage.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db))

	exerciseStorage(t, NewSQL(db))
}

func TestSQLSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.db")
	ctx := context.Background()

	db, err := store.NewDB(path)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))
	require.NoError(t, NewSQL(db).SetItem(ctx, "k", "v"))
	require.NoError(t, db.Close())

	db, err = store.NewDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db))

	v, ok, err := NewSQL(db).GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestRedis(t *testing.T) {
	url := os.Getenv("FUNTECO_TEST_REDIS_URL")
	if url == "" {
		t.Skip("Skipping Redis tests: FUNTECO_TEST_REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	r := NewRedis(redis.NewClient(opts), "funteco-storage-test:")
	t.Cleanup(func() { _ = r.Close() })

	exerciseStorage(t, r)
}
