// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package storage defines the key-value contract the admin stores persist
// their documents through, with memory, SQLite and Redis backends.
package storage

import "context"

// Storage is a string key-value store. GetItem reports a missing key with
// ok == false and a nil error.
type Storage interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}
