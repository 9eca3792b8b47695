// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/funteco-cms/internal/model"
)

func TestOpenSeedsDefaults(t *testing.T) {
	f := newFixture(t)
	st := f.store.State()

	require.Len(t, st.Users, 3)
	assert.Equal(t, "admin", st.Users[0].Username)
	assert.Len(t, st.Sections, 2)
	assert.Equal(t, "proximos-eventos", st.Sections[1].Slug)
	assert.Len(t, st.TeamMembers, 4)
	assert.Len(t, st.Events, 8)
	assert.Empty(t, st.CurrentUserID)

	for _, e := range st.Events {
		assert.Equal(t, SeedAdminID, e.OwnerID)
		assert.Equal(t, model.StatusPublished, e.Status)
		assert.Equal(t, "event-"+e.Slug, e.ID)
	}
}

func TestStateRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")

	_, err := f.store.CreateUser(ctx, NewUser{Username: "persistente", Password: "secret", Role: model.RoleAuthor})
	require.NoError(t, err)
	_, err = f.store.CreateSection(ctx, SectionInput{Title: "Sección persistente", Content: "Contenido"})
	require.NoError(t, err)
	_, err = f.store.CreateEvent(ctx, EventInput{Title: "Feria", Date: "2025-07-01", Tags: []string{"feria"}})
	require.NoError(t, err)

	reopened := f.open(t, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Equal(t, f.store.State(), reopened.State())
}

func TestStateSnapshotIsolation(t *testing.T) {
	f := newFixture(t)

	st := f.store.State()
	st.Users[0].Username = "mutated"
	st.Events[0].Tags[0] = "mutated"
	st.TeamMembers[0].Bio[0] = "mutated"

	fresh := f.store.State()
	assert.Equal(t, "admin", fresh.Users[0].Username)
	assert.NotEqual(t, "mutated", fresh.Events[0].Tags[0])
	assert.NotEqual(t, "mutated", fresh.TeamMembers[0].Bio[0])

	events := f.store.Events()
	events[0].Description[0] = "mutated"
	assert.NotEqual(t, "mutated", f.store.Events()[0].Description[0])
}

func TestOpenMalformedDocument(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.storage.SetItem(ctx, StorageKey, "{not json"))

	s := f.open(t, slog.New(slog.NewTextHandler(f.logs, nil)))
	assert.Len(t, s.State().Users, 3)
	assert.Contains(t, f.logs.String(), "stored document is malformed")
}

func TestOpenRepairsStoredDocument(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	raw := `{
		"users": [{"id": "u1", "username": "solo", "password": "x", "role": "Editor"}],
		"sections": [{"id": "s1", "title": "A", "slug": "a", "status": "archived", "ownerId": "ghost"}],
		"teamMembers": null,
		"currentUserId": "ghost"
	}`
	require.NoError(t, f.storage.SetItem(ctx, StorageKey, raw))

	st := f.open(t, slog.New(slog.NewTextHandler(io.Discard, nil))).State()
	require.Len(t, st.Users, 1)
	require.Len(t, st.Sections, 1)
	assert.Equal(t, model.StatusDraft, st.Sections[0].Status)
	assert.Equal(t, "u1", st.Sections[0].OwnerID)
	assert.Len(t, st.TeamMembers, 4)
	assert.Empty(t, st.CurrentUserID)
	for _, e := range st.Events {
		assert.Equal(t, "u1", e.OwnerID)
	}
}

func TestSubscribeNotifiesAfterMutation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	calls := 0
	unsubscribe := f.store.Subscribe(func() { calls++ })

	f.login(t, "admin", "admin123")
	assert.Equal(t, 1, calls)

	_, err := f.store.Login(ctx, "admin", "wrong")
	require.Error(t, err)
	assert.Equal(t, 1, calls, "failed operations must not notify")

	unsubscribe()
	require.NoError(t, f.store.Logout(ctx))
	assert.Equal(t, 1, calls)
}
