// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

// Document is a stored JSON document addressed by key.
type Document struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

const getDocument = `SELECT key, value, updated_at FROM documents WHERE key = ?`

// GetDocument returns the document stored under key, or sql.ErrNoRows.
func (q *Queries) GetDocument(ctx context.Context, key string) (Document, error) {
	row := q.db.QueryRowContext(ctx, getDocument, key)
	var d Document
	err := row.Scan(&d.Key, &d.Value, &d.UpdatedAt)
	return d, err
}

const upsertDocument = `
INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// UpsertDocumentParams are the arguments of UpsertDocument.
type UpsertDocumentParams struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// UpsertDocument inserts or replaces a document.
func (q *Queries) UpsertDocument(ctx context.Context, arg UpsertDocumentParams) error {
	_, err := q.db.ExecContext(ctx, upsertDocument, arg.Key, arg.Value, arg.UpdatedAt)
	return err
}

const deleteDocument = `DELETE FROM documents WHERE key = ?`

// DeleteDocument removes a document. Removing a missing key is not an error.
func (q *Queries) DeleteDocument(ctx context.Context, key string) error {
	_, err := q.db.ExecContext(ctx, deleteDocument, key)
	return err
}
