// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

// ReorderByID returns a new slice where the items whose ids appear in ids
// come first, in that order, followed by the remaining items in their
// previous relative order. Unknown and repeated ids are ignored; no item
// is ever dropped.
func ReorderByID[T any](items []T, ids []string, idOf func(T) string) []T {
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[idOf(item)] = i
	}

	placed := make([]bool, len(items))
	out := make([]T, 0, len(items))
	for _, id := range ids {
		i, ok := index[id]
		if !ok || placed[i] {
			continue
		}
		placed[i] = true
		out = append(out, items[i])
	}
	for i, item := range items {
		if !placed[i] {
			out = append(out, item)
		}
	}
	return out
}
