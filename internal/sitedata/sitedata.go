// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sitedata holds the bundled events and team profiles the public
// site falls back to when no remote CMS is reachable. Every getter returns
// copies; the bundled values are never exposed.
package sitedata

import "github.com/olegiv/funteco-cms/internal/model"

// Events returns all bundled events.
func Events() []model.Event {
	return model.CloneEvents(events)
}

// EventBySlug returns the bundled event with the given slug.
func EventBySlug(slug string) (model.Event, bool) {
	for _, e := range events {
		if e.Slug == slug {
			return e.Clone(), true
		}
	}
	return model.Event{}, false
}

// TeamMembers returns all bundled team profiles.
func TeamMembers() []model.TeamMember {
	return model.CloneTeamMembers(teamMembers)
}

// TeamMemberBySlug returns the bundled team profile with the given slug.
func TeamMemberBySlug(slug string) (model.TeamMember, bool) {
	for _, m := range teamMembers {
		if m.Slug == slug {
			return m.Clone(), true
		}
	}
	return model.TeamMember{}, false
}
