// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Role is one of the closed set of admin roles.
type Role string

// Admin roles.
const (
	RoleAdministrator Role = "Administrator"
	RoleEditor        Role = "Editor"
	RoleAuthor        Role = "Author"
	RoleCollaborator  Role = "Collaborator"
	RoleModerator     Role = "Moderator"
)

// Roles lists every role in display order.
var Roles = []Role{
	RoleAdministrator,
	RoleEditor,
	RoleAuthor,
	RoleCollaborator,
	RoleModerator,
}

// Capabilities is the set of permissions granted wholesale to a role.
type Capabilities struct {
	ManageUsers      bool `json:"manageUsers"`
	CreateSections   bool `json:"createSections"`
	EditAnySection   bool `json:"editAnySection"`
	DeleteAnySection bool `json:"deleteAnySection"`
	Publish          bool `json:"publish"`
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	_, ok := r.capabilities()
	return ok
}

// Capabilities returns the capability set for r.
// Unknown roles get no capabilities.
func (r Role) Capabilities() Capabilities {
	caps, _ := r.capabilities()
	return caps
}

func (r Role) capabilities() (Capabilities, bool) {
	switch r {
	case RoleAdministrator:
		return Capabilities{
			ManageUsers:      true,
			CreateSections:   true,
			EditAnySection:   true,
			DeleteAnySection: true,
			Publish:          true,
		}, true
	case RoleEditor:
		return Capabilities{
			ManageUsers:      false,
			CreateSections:   true,
			EditAnySection:   true,
			DeleteAnySection: true,
			Publish:          true,
		}, true
	case RoleAuthor:
		return Capabilities{
			ManageUsers:      false,
			CreateSections:   true,
			EditAnySection:   false,
			DeleteAnySection: false,
			Publish:          true,
		}, true
	case RoleCollaborator:
		return Capabilities{
			ManageUsers:      false,
			CreateSections:   true,
			EditAnySection:   false,
			DeleteAnySection: false,
			Publish:          false,
		}, true
	case RoleModerator:
		return Capabilities{
			ManageUsers:      true,
			CreateSections:   false,
			EditAnySection:   true,
			DeleteAnySection: false,
			Publish:          true,
		}, true
	default:
		return Capabilities{}, false
	}
}
