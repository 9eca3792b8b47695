// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/olegiv/funteco-cms/internal/store"
)

// SQL keeps documents in the SQLite documents table.
type SQL struct {
	queries *store.Queries
}

// NewSQL returns a Storage over a migrated database.
func NewSQL(db *sql.DB) *SQL {
	return &SQL{queries: store.New(db)}
}

// GetItem implements Storage.
func (s *SQL) GetItem(ctx context.Context, key string) (string, bool, error) {
	doc, err := s.queries.GetDocument(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading document %q: %w", key, err)
	}
	return doc.Value, true, nil
}

// SetItem implements Storage.
func (s *SQL) SetItem(ctx context.Context, key, value string) error {
	err := s.queries.UpsertDocument(ctx, store.UpsertDocumentParams{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("writing document %q: %w", key, err)
	}
	return nil
}

// RemoveItem implements Storage.
func (s *SQL) RemoveItem(ctx context.Context, key string) error {
	if err := s.queries.DeleteDocument(ctx, key); err != nil {
		return fmt.Errorf("removing document %q: %w", key, err)
	}
	return nil
}

var _ Storage = (*SQL)(nil)
