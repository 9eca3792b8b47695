// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides slug normalization, identifier generation and
// ordering helpers shared by the admin stores.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nonAlnum matches every run of characters outside [a-z0-9].
var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a slug, uid or field id from a display name.
// It lowercases, strips diacritics, collapses every non-alphanumeric run
// into one hyphen and trims hyphens from both ends. Names that
// normalize the same way produce the same slug.
func Slugify(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))

	// Decompose accents and drop the combining marks
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	result = nonAlnum.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// IsValidSlug checks if a string is a valid slug format.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}

	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}

	return !strings.Contains(s, "--")
}
