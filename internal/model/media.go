// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// MediaType classifies a media asset.
type MediaType string

// Supported media types.
const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaDocument MediaType = "document"
)

// IsValid reports whether t is a supported media type.
func (t MediaType) IsValid() bool {
	switch t {
	case MediaImage, MediaVideo, MediaDocument:
		return true
	default:
		return false
	}
}

// MediaAsset is a catalogued file referenced by URL. The URL is the
// identity used for deduplication.
type MediaAsset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Type      MediaType `json:"type"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy"`
	AltText   string    `json:"altText,omitempty"`
}

// CloneMedia returns a copy of assets.
func CloneMedia(assets []MediaAsset) []MediaAsset {
	if assets == nil {
		return nil
	}
	out := make([]MediaAsset, len(assets))
	copy(out, assets)
	return out
}
