// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"slices"

	"github.com/olegiv/funteco-cms/internal/model"
)

// StorageKey is the storage key of the admin document.
const StorageKey = "funteco-admin-state"

// State is the persisted admin document: accounts, the session pointer
// and the governed site content.
type State struct {
	Users         []model.User              `json:"users"`
	Sections      []model.Section           `json:"sections"`
	TeamMembers   []model.ManagedTeamMember `json:"teamMembers"`
	Events        []model.ManagedEvent      `json:"events"`
	CurrentUserID string                    `json:"currentUserId,omitempty"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Users = model.CloneUsers(s.Users)
	s.Sections = model.CloneSections(s.Sections)
	s.TeamMembers = model.CloneManagedTeamMembers(s.TeamMembers)
	s.Events = model.CloneManagedEvents(s.Events)
	return s
}

// Repair restores collections a stored payload set to null, coerces
// unknown statuses to draft and hands orphaned content to the first
// administrator.
func (s *State) Repair() {
	if s.Users == nil {
		s.Users = seedUsers()
	}
	if s.Sections == nil {
		s.Sections = seedSections()
	}
	if s.TeamMembers == nil {
		s.TeamMembers = seedTeamMembers()
	}
	if s.Events == nil {
		s.Events = seedEvents()
	}
	if _, ok := s.user(s.CurrentUserID); !ok {
		s.CurrentUserID = ""
	}

	heir := s.FallbackOwner()
	fix := func(status *model.Status, owner *string) {
		if !status.IsValid() {
			*status = model.StatusDraft
		}
		if _, ok := s.user(*owner); !ok && heir != "" {
			*owner = heir
		}
	}
	for i := range s.Sections {
		fix(&s.Sections[i].Status, &s.Sections[i].OwnerID)
	}
	for i := range s.TeamMembers {
		fix(&s.TeamMembers[i].Status, &s.TeamMembers[i].OwnerID)
	}
	for i := range s.Events {
		fix(&s.Events[i].Status, &s.Events[i].OwnerID)
	}
}

func (s State) user(id string) (model.User, bool) {
	if id == "" {
		return model.User{}, false
	}
	i := slices.IndexFunc(s.Users, func(u model.User) bool { return u.ID == id })
	if i < 0 {
		return model.User{}, false
	}
	return s.Users[i], true
}

func (s State) currentUser() (model.User, bool) {
	return s.user(s.CurrentUserID)
}

// HasUser reports whether a user with id exists.
func (s State) HasUser(id string) bool {
	_, ok := s.user(id)
	return ok
}

// FallbackOwner is the first administrator, or the first user when no
// administrator exists.
func (s State) FallbackOwner() string {
	for _, u := range s.Users {
		if u.Role == model.RoleAdministrator {
			return u.ID
		}
	}
	if len(s.Users) > 0 {
		return s.Users[0].ID
	}
	return ""
}

func defaultState() State {
	return State{
		Users:       seedUsers(),
		Sections:    seedSections(),
		TeamMembers: seedTeamMembers(),
		Events:      seedEvents(),
	}
}
