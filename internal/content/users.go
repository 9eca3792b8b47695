// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"slices"

	"github.com/olegiv/funteco-cms/internal/admin"
	"github.com/olegiv/funteco-cms/internal/model"
)

// Users exposes accounts and roles through the module API. Mutations are
// delegated to the admin store.
type Users struct{ c *core }

// Roles returns every role in display order.
func (u *Users) Roles() []model.Role {
	return slices.Clone(model.Roles)
}

// RoleCapabilities returns the capabilities of role.
func (u *Users) RoleCapabilities(role model.Role) (model.Capabilities, error) {
	if !role.IsValid() {
		return model.Capabilities{}, model.Invalid("el rol especificado no es válido")
	}
	return role.Capabilities(), nil
}

// List returns every account.
func (u *Users) List() []model.User {
	return u.c.admin.Users()
}

// Current returns the logged-in user.
func (u *Users) Current() (model.User, bool) {
	return u.c.admin.CurrentUser()
}

// CanManage reports whether the current user may manage accounts.
func (u *Users) CanManage() bool {
	return u.c.admin.CanManageUsers()
}

// Create adds an account.
func (u *Users) Create(ctx context.Context, in admin.NewUser) (model.User, error) {
	return u.c.admin.CreateUser(ctx, in)
}

// Update changes the password and/or role of an account.
func (u *Users) Update(ctx context.Context, id string, in admin.UserUpdate) (model.User, error) {
	return u.c.admin.UpdateUser(ctx, id, in)
}

// AssignRole changes the role of an account.
func (u *Users) AssignRole(ctx context.Context, id string, role model.Role) (model.User, error) {
	return u.c.admin.AssignRole(ctx, id, role)
}

// Delete removes an account. Its custom entries move to the caller
// through the user-deleted hook.
func (u *Users) Delete(ctx context.Context, id string) error {
	return u.c.admin.DeleteUser(ctx, id)
}
