// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/funteco-cms/internal/hooks"
	"github.com/olegiv/funteco-cms/internal/model"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantID   string
	}{
		{name: "admin", username: "admin", password: "admin123", wantID: SeedAdminID},
		{name: "moderator", username: "moderador", password: "mod123", wantID: SeedModeratorID},
		{name: "collaborator", username: "colab", password: "colab123", wantID: SeedCollaboratorID},
		{name: "wrong password", username: "admin", password: "wrong"},
		{name: "unknown user", username: "nadie", password: "admin123"},
		{name: "case differs", username: "Admin", password: "admin123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			user, err := f.store.Login(context.Background(), tt.username, tt.password)
			if tt.wantID == "" {
				require.Error(t, err)
				assert.True(t, model.IsCredentials(err))
				assert.True(t, errors.Is(err, model.ErrInvalidCredentials))
				assert.Empty(t, f.store.State().CurrentUserID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
			assert.Equal(t, tt.wantID, f.store.State().CurrentUserID)
		})
	}
}

func TestLogoutAndCapabilities(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.False(t, f.store.CanManageUsers())
	assert.False(t, f.store.CanPublish())

	f.login(t, "colab", "colab123")
	assert.False(t, f.store.CanManageUsers())
	assert.False(t, f.store.CanPublish())

	f.login(t, "moderador", "mod123")
	assert.True(t, f.store.CanManageUsers())
	assert.True(t, f.store.CanPublish())

	require.NoError(t, f.store.Logout(ctx))
	_, ok := f.store.CurrentUser()
	assert.False(t, ok)
}

func TestCreateUserAsAdmin(t *testing.T) {
	f := newFixture(t)
	f.login(t, "admin", "admin123")

	created, err := f.store.CreateUser(context.Background(), NewUser{Username: "editor1", Password: "secret", Role: model.RoleEditor})
	require.NoError(t, err)
	assert.Equal(t, testNow, created.CreatedAt)

	var found *model.User
	for _, u := range f.store.State().Users {
		if u.Username == "editor1" {
			found = &u
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, model.RoleEditor, found.Role)
	assert.Equal(t, created.ID, found.ID)
}

func TestCreateUserRejections(t *testing.T) {
	tests := []struct {
		name  string
		login [2]string
		in    NewUser
		check func(error) bool
	}{
		{
			name:  "anonymous",
			in:    NewUser{Username: "x", Password: "y", Role: model.RoleAuthor},
			check: model.IsForbidden,
		},
		{
			name:  "collaborator cannot manage users",
			login: [2]string{"colab", "colab123"},
			in:    NewUser{Username: "x", Password: "y", Role: model.RoleAuthor},
			check: model.IsForbidden,
		},
		{
			name:  "unknown role",
			login: [2]string{"admin", "admin123"},
			in:    NewUser{Username: "x", Password: "y", Role: "Superuser"},
			check: model.IsValidation,
		},
		{
			name:  "duplicate username",
			login: [2]string{"admin", "admin123"},
			in:    NewUser{Username: "moderador", Password: "y", Role: model.RoleAuthor},
			check: model.IsValidation,
		},
		{
			name:  "empty password",
			login: [2]string{"moderador", "mod123"},
			in:    NewUser{Username: "nuevo", Role: model.RoleAuthor},
			check: model.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.login[0] != "" {
				f.login(t, tt.login[0], tt.login[1])
			}
			before := f.store.Users()

			_, err := f.store.CreateUser(context.Background(), tt.in)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
			assert.Equal(t, before, f.store.Users())
		})
	}
}

func TestEditorCannotManageUsers(t *testing.T) {
	f := newFixture(t)
	f.withUser(t, "solo-editor", model.RoleEditor)

	assert.False(t, f.store.CanManageUsers())
	_, err := f.store.CreateUser(context.Background(), NewUser{Username: "otro", Password: "123", Role: model.RoleAuthor})
	require.Error(t, err)
	assert.True(t, model.IsForbidden(err))
	assert.Contains(t, err.Error(), "sin permisos")
}

func TestUpdateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")

	updated, err := f.store.UpdateUser(ctx, SeedCollaboratorID, UserUpdate{Password: ptr("nueva")})
	require.NoError(t, err)
	assert.Equal(t, "nueva", updated.Password)
	assert.Equal(t, model.RoleCollaborator, updated.Role)

	updated, err = f.store.AssignRole(ctx, SeedCollaboratorID, model.RoleAuthor)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAuthor, updated.Role)

	_, err = f.store.AssignRole(ctx, SeedCollaboratorID, model.Role("Root"))
	assert.True(t, model.IsValidation(err))

	_, err = f.store.UpdateUser(ctx, "user-missing", UserUpdate{Password: ptr("x")})
	assert.True(t, model.IsNotFound(err))

	u, err := f.store.User(SeedCollaboratorID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAuthor, u.Role)
}

func TestDeleteUserRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")

	err := f.store.DeleteUser(ctx, SeedAdminID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no puedes eliminar tu propio usuario")

	err = f.store.DeleteUser(ctx, "user-missing")
	assert.True(t, model.IsNotFound(err))

	require.NoError(t, f.store.Logout(ctx))
	f.login(t, "colab", "colab123")
	assert.True(t, model.IsForbidden(f.store.DeleteUser(ctx, SeedModeratorID)))
}

func TestDeleteUserReassignsOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var got []hooks.UserDeleted
	f.hooks.RegisterFunc(hooks.HookUserDeleted, "record", "test", func(_ context.Context, data any) error {
		got = append(got, data.(hooks.UserDeleted))
		return nil
	})

	author := f.withUser(t, "autora", model.RoleAuthor)
	sec, err := f.store.CreateSection(ctx, SectionInput{Title: "Nota de la autora", Content: "x", Status: model.StatusPublished})
	require.NoError(t, err)
	member, err := f.store.CreateTeamMember(ctx, TeamMemberInput{Name: "Nueva Integrante", Role: "Voluntaria"})
	require.NoError(t, err)
	event, err := f.store.CreateEvent(ctx, EventInput{Title: "Encuentro de autoras", Date: "2025-09-01"})
	require.NoError(t, err)

	require.NoError(t, f.store.Logout(ctx))
	f.login(t, "moderador", "mod123")
	require.NoError(t, f.store.DeleteUser(ctx, author.ID))

	st := f.store.State()
	ids := make(map[string]bool, len(st.Users))
	for _, u := range st.Users {
		ids[u.ID] = true
	}
	assert.False(t, ids[author.ID])

	for _, s := range st.Sections {
		assert.True(t, ids[s.OwnerID], "section %s has dangling owner", s.ID)
	}
	for _, m := range st.TeamMembers {
		assert.True(t, ids[m.OwnerID], "team member %s has dangling owner", m.ID)
	}
	for _, e := range st.Events {
		assert.True(t, ids[e.OwnerID], "event %s has dangling owner", e.ID)
	}

	s, err := f.store.Section(sec.ID)
	require.NoError(t, err)
	assert.Equal(t, SeedModeratorID, s.OwnerID)
	m, err := f.store.TeamMember(member.ID)
	require.NoError(t, err)
	assert.Equal(t, SeedModeratorID, m.OwnerID)
	e, err := f.store.Event(event.ID)
	require.NoError(t, err)
	assert.Equal(t, SeedModeratorID, e.OwnerID)

	require.Len(t, got, 1)
	assert.Equal(t, hooks.UserDeleted{UserID: author.ID, HeirID: SeedModeratorID}, got[0])
}
