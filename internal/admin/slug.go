// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/util"
)

// uniqueSlug derives a slug from value and checks that no other item
// (other than selfID) already uses it.
func uniqueSlug[T any](items []T, value, field, selfID string, n Noun, key func(T) (id, slug string)) (string, error) {
	slug := util.Slugify(value)
	if slug == "" {
		return "", model.Invalid("el campo " + field + " es obligatorio")
	}
	for _, item := range items {
		id, other := key(item)
		if id != selfID && other == slug {
			return "", model.Invalid(n.Duplicate)
		}
	}
	return slug, nil
}

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}
