// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain types shared by the admin stores:
// users and roles, governed content (sections, team members, events),
// dynamic content types and entries, and media assets.
package model

import "time"

// User is an admin account. Passwords are stored and compared in plain
// text; the admin layer is a demo and offers no real security.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Capabilities returns the capabilities granted by the user's role.
func (u User) Capabilities() Capabilities {
	return u.Role.Capabilities()
}

// CloneUsers returns a copy of users.
func CloneUsers(users []User) []User {
	if users == nil {
		return nil
	}
	out := make([]User, len(users))
	copy(out, users)
	return out
}
