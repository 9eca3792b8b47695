// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"context"
	"slices"
	"strings"

	"github.com/olegiv/funteco-cms/internal/hooks"
	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/util"
)

// NewUser is the input of CreateUser.
type NewUser struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

// UserUpdate changes the password and/or role of an account.
type UserUpdate struct {
	Password *string     `json:"password,omitempty"`
	Role     *model.Role `json:"role,omitempty"`
}

// Users returns every account.
func (s *Store) Users() []model.User {
	var out []model.User
	s.doc.View(func(st State) { out = model.CloneUsers(st.Users) })
	return out
}

// User returns the account with the given id.
func (s *Store) User(id string) (model.User, error) {
	var (
		user model.User
		ok   bool
	)
	s.doc.View(func(st State) { user, ok = st.user(id) })
	if !ok {
		return model.User{}, model.NotFound("usuario no encontrado")
	}
	return user, nil
}

func requireManageUsers(user *model.User, action string) error {
	if user == nil || !user.Capabilities().ManageUsers {
		return model.Forbidden("sin permisos para " + action + " usuarios")
	}
	return nil
}

// CreateUser adds an account. The caller needs the manage-users
// capability; the role must be known and the username free.
func (s *Store) CreateUser(ctx context.Context, in NewUser) (model.User, error) {
	var created model.User
	err := s.mutate(ctx, func(st *State, current *model.User) error {
		if err := requireManageUsers(current, "crear"); err != nil {
			return err
		}
		if !in.Role.IsValid() {
			return model.Invalid("el rol especificado no es válido")
		}
		username := strings.TrimSpace(in.Username)
		if username == "" || in.Password == "" {
			return model.Invalid("usuario y contraseña son obligatorios")
		}
		if slices.ContainsFunc(st.Users, func(u model.User) bool { return u.Username == username }) {
			return model.Invalid("el nombre de usuario ya existe")
		}

		created = model.User{
			ID:        util.NewID("user"),
			Username:  username,
			Password:  in.Password,
			Role:      in.Role,
			CreatedAt: s.timestamp(),
		}
		st.Users = append(st.Users, created)
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	s.logger.Info("user created", "category", model.EventCategoryUser, "user_id", created.ID, "role", created.Role)
	return created, nil
}

// UpdateUser changes the password and/or role of the account with id.
func (s *Store) UpdateUser(ctx context.Context, id string, in UserUpdate) (model.User, error) {
	var updated model.User
	err := s.mutate(ctx, func(st *State, current *model.User) error {
		if err := requireManageUsers(current, "editar"); err != nil {
			return err
		}
		i := slices.IndexFunc(st.Users, func(u model.User) bool { return u.ID == id })
		if i < 0 {
			return model.NotFound("usuario no encontrado")
		}
		if in.Role != nil && !in.Role.IsValid() {
			return model.Invalid("el rol especificado no es válido")
		}
		if in.Password != nil && *in.Password == "" {
			return model.Invalid("la contraseña no puede quedar vacía")
		}

		u := st.Users[i]
		if in.Password != nil {
			u.Password = *in.Password
		}
		if in.Role != nil {
			u.Role = *in.Role
		}
		st.Users[i] = u
		updated = u
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	return updated, nil
}

// AssignRole is UpdateUser restricted to the role.
func (s *Store) AssignRole(ctx context.Context, id string, role model.Role) (model.User, error) {
	return s.UpdateUser(ctx, id, UserUpdate{Role: &role})
}

// DeleteUser removes the account with id and hands everything it owned
// to the caller. Deleting the logged-in account is refused.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	var heir string
	err := s.mutate(ctx, func(st *State, current *model.User) error {
		if err := requireManageUsers(current, "eliminar"); err != nil {
			return err
		}
		if current.ID == id {
			return model.Forbidden("no puedes eliminar tu propio usuario")
		}
		before := len(st.Users)
		st.Users = slices.DeleteFunc(st.Users, func(u model.User) bool { return u.ID == id })
		if len(st.Users) == before {
			return model.NotFound("usuario no encontrado")
		}

		heir = current.ID
		for i := range st.Sections {
			if st.Sections[i].OwnerID == id {
				st.Sections[i].OwnerID = heir
			}
		}
		for i := range st.TeamMembers {
			if st.TeamMembers[i].OwnerID == id {
				st.TeamMembers[i].OwnerID = heir
			}
		}
		for i := range st.Events {
			if st.Events[i].OwnerID == id {
				st.Events[i].OwnerID = heir
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("user deleted", "category", model.EventCategoryUser, "user_id", id, "heir_id", heir)
	s.emit(ctx, hooks.HookUserDeleted, hooks.UserDeleted{UserID: id, HeirID: heir})
	return nil
}
