// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// ContentEntry is the generic shape of an entry in any collection.
type ContentEntry struct {
	ID          string         `json:"id"`
	ContentType string         `json:"contentType"`
	Status      Status         `json:"status"`
	OwnerID     string         `json:"ownerId"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Attributes  map[string]any `json:"attributes"`
}

// Clone returns a deep copy of e.
func (e ContentEntry) Clone() ContentEntry {
	e.Attributes = CloneAttributes(e.Attributes)
	return e
}

// CloneEntries deep-copies a slice of entries.
func CloneEntries(entries []ContentEntry) []ContentEntry {
	if entries == nil {
		return nil
	}
	out := make([]ContentEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}
