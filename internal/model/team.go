// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"slices"
	"time"
)

// SocialPlatform identifies a social network link.
type SocialPlatform string

// Known social platforms.
const (
	SocialInstagram SocialPlatform = "instagram"
	SocialFacebook  SocialPlatform = "facebook"
	SocialLinkedIn  SocialPlatform = "linkedin"
	SocialTwitter   SocialPlatform = "twitter"
	SocialWeb       SocialPlatform = "web"
)

// SocialLink is a profile link shown on a team member page.
type SocialLink struct {
	Platform SocialPlatform `json:"platform"`
	Label    string         `json:"label"`
	URL      string         `json:"url"`
}

// TeamMember is the public profile of a team member.
type TeamMember struct {
	Slug       string       `json:"slug"`
	Name       string       `json:"name"`
	Role       string       `json:"role"`
	Image      string       `json:"image"`
	ShortBio   string       `json:"shortBio"`
	Bio        []string     `json:"bio"`
	Focus      string       `json:"focus"`
	Expertise  []string     `json:"expertise"`
	Highlights []string     `json:"highlights"`
	Socials    []SocialLink `json:"socials"`
}

// Clone returns a deep copy of m.
func (m TeamMember) Clone() TeamMember {
	m.Bio = slices.Clone(m.Bio)
	m.Expertise = slices.Clone(m.Expertise)
	m.Highlights = slices.Clone(m.Highlights)
	m.Socials = slices.Clone(m.Socials)
	return m
}

// Governance is the ownership and lifecycle envelope shared by admin-managed
// team members and events.
type Governance struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ManagedTeamMember is a team profile governed by the admin store.
type ManagedTeamMember struct {
	TeamMember
	Governance
}

// Clone returns a deep copy of m.
func (m ManagedTeamMember) Clone() ManagedTeamMember {
	m.TeamMember = m.TeamMember.Clone()
	return m
}

// CloneTeamMembers deep-copies a slice of public profiles.
func CloneTeamMembers(members []TeamMember) []TeamMember {
	if members == nil {
		return nil
	}
	out := make([]TeamMember, len(members))
	for i, m := range members {
		out[i] = m.Clone()
	}
	return out
}

// CloneManagedTeamMembers deep-copies a slice of managed profiles.
func CloneManagedTeamMembers(members []ManagedTeamMember) []ManagedTeamMember {
	if members == nil {
		return nil
	}
	out := make([]ManagedTeamMember, len(members))
	for i, m := range members {
		out[i] = m.Clone()
	}
	return out
}
