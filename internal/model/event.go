// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"fmt"
	"slices"
	"time"
)

// Event is a public event listing.
type Event struct {
	Slug             string   `json:"slug"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	Description      []string `json:"description"`
	Date             string   `json:"date"`
	FormattedDate    string   `json:"formattedDate"`
	Image            string   `json:"image"`
	Location         string   `json:"location"`
	Tags             []string `json:"tags"`
}

// Clone returns a deep copy of e.
func (e Event) Clone() Event {
	e.Description = slices.Clone(e.Description)
	e.Tags = slices.Clone(e.Tags)
	return e
}

// ManagedEvent is an event governed by the admin store.
type ManagedEvent struct {
	Event
	Governance
}

// Clone returns a deep copy of e.
func (e ManagedEvent) Clone() ManagedEvent {
	e.Event = e.Event.Clone()
	return e
}

// CloneEvents deep-copies a slice of public events.
func CloneEvents(events []Event) []Event {
	if events == nil {
		return nil
	}
	out := make([]Event, len(events))
	for i, e := range events {
		out[i] = e.Clone()
	}
	return out
}

// CloneManagedEvents deep-copies a slice of managed events.
func CloneManagedEvents(events []ManagedEvent) []ManagedEvent {
	if events == nil {
		return nil
	}
	out := make([]ManagedEvent, len(events))
	for i, e := range events {
		out[i] = e.Clone()
	}
	return out
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatEventDate renders a date as "18 de mayo de 2025". It accepts
// YYYY-MM-DD or RFC 3339 input and returns the input unchanged when it
// cannot be parsed.
func FormatEventDate(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return value
		}
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
