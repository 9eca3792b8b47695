// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/funteco-cms/internal/admin"
	"github.com/olegiv/funteco-cms/internal/hooks"
	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/storage"
)

var testNow = time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

type fixture struct {
	storage storage.Storage
	admin   *admin.Store
	store   *Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{storage: storage.NewMemory()}
	f.reopen(t)
	return f
}

// reopen builds fresh stores over the same storage.
func (f *fixture) reopen(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time { return testNow }

	adm, err := admin.Open(ctx, f.storage, admin.WithLogger(logger), admin.WithClock(clock))
	require.NoError(t, err)
	s, err := Open(ctx, f.storage, adm, WithLogger(logger), WithClock(clock))
	require.NoError(t, err)
	f.admin, f.store = adm, s
}

func (f *fixture) login(t *testing.T, username, password string) model.User {
	t.Helper()
	u, err := f.admin.Login(context.Background(), username, password)
	require.NoError(t, err)
	return u
}

func (f *fixture) createProgramas(t *testing.T, draftAndPublish bool) model.ContentType {
	t.Helper()
	ct, err := f.store.Builder.Create(context.Background(), TypeInput{
		DisplayName:     "Programas",
		Description:     "Líneas de trabajo",
		DraftAndPublish: &draftAndPublish,
		Fields: []FieldInput{
			{Name: "titulo", Type: model.FieldString, Required: true},
			{Name: "Portada", Type: model.FieldMedia},
		},
	})
	require.NoError(t, err)
	return ct
}

func ptr[T any](v T) *T { return &v }

func entryIDs(entries []model.ContentEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func TestOpenDefaults(t *testing.T) {
	f := newFixture(t)
	st := f.store.State()

	require.Len(t, st.ContentTypes, 3)
	for _, ct := range st.ContentTypes {
		assert.False(t, ct.Configurable, ct.UID)
		assert.Equal(t, SystemCategory, ct.Category)
	}
	assert.Empty(t, st.CustomCollections)

	// 4 team portraits and 6 distinct event images.
	require.Len(t, st.MediaLibrary, 10)
	assert.Equal(t, "asset-1", st.MediaLibrary[0].ID)
	assert.Equal(t, "admin", st.MediaLibrary[0].CreatedBy)
	assert.Equal(t, time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), st.MediaLibrary[1].CreatedAt)
}

func TestModuleStateRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")
	f.createProgramas(t, true)

	_, err := f.store.Manager.CreateEntry(ctx, "programas", map[string]any{
		"titulo":  "Escuela de liderazgo",
		"portada": "https://example.org/portada.jpg",
		"tags":    []any{"a", "b"},
	})
	require.NoError(t, err)

	before := f.store.State()
	f.reopen(t)
	assert.Equal(t, before, f.store.State())
}

func TestRepairRestoresBuiltins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	raw := `{
		"contentTypes": [
			{"uid": "programas", "displayName": "Programas", "configurable": true, "fields": []},
			{"uid": "events", "displayName": "Agenda", "configurable": true, "fields": null}
		],
		"customCollections": {"programas": [{"id": "e1", "contentType": "programas", "status": "weird", "ownerId": "user-admin"}]},
		"mediaLibrary": null
	}`
	require.NoError(t, f.storage.SetItem(ctx, StorageKey, raw))
	f.reopen(t)

	st := f.store.State()
	require.Len(t, st.ContentTypes, 4)
	assert.Equal(t, []string{"sections", "team-members", "events", "programas"},
		[]string{st.ContentTypes[0].UID, st.ContentTypes[1].UID, st.ContentTypes[2].UID, st.ContentTypes[3].UID})
	events := st.ContentTypes[2]
	assert.Equal(t, "Agenda", events.DisplayName)
	assert.False(t, events.Configurable)
	assert.NotEmpty(t, events.Fields)
	assert.Equal(t, model.StatusDraft, st.CustomCollections["programas"][0].Status)
	assert.NotNil(t, st.MediaLibrary)
}

func TestCreateTypeDefaults(t *testing.T) {
	f := newFixture(t)
	f.login(t, "admin", "admin123")

	ct, err := f.store.Builder.Create(context.Background(), TypeInput{DisplayName: "Aliados Estratégicos"})
	require.NoError(t, err)
	assert.Equal(t, "aliados-estrategicos", ct.UID)
	assert.Equal(t, CustomCategory, ct.Category)
	assert.Equal(t, "database", ct.Icon)
	assert.True(t, ct.DraftAndPublish)
	assert.True(t, ct.Configurable)
	assert.Equal(t, model.CollectionTypeKind, ct.Kind)

	entries, err := f.store.Manager.Entries(ct.UID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateTypeUniqueness(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")

	_, err := f.store.Builder.Create(ctx, TypeInput{DisplayName: "Über Título É"})
	require.NoError(t, err)

	_, err = f.store.Builder.Create(ctx, TypeInput{DisplayName: "uber titulo e"})
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))

	_, err = f.store.Builder.Create(ctx, TypeInput{DisplayName: "Events"})
	assert.True(t, model.IsValidation(err), "built-in uids are taken")

	_, err = f.store.Builder.Create(ctx, TypeInput{DisplayName: "!!!"})
	assert.True(t, model.IsValidation(err))
}

func TestCreateTypeWithExplicitUID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")

	ct, err := f.store.Builder.Create(ctx, TypeInput{UID: "convocatorias-2025", DisplayName: "Convocatorias abiertas"})
	require.NoError(t, err)
	assert.Equal(t, "convocatorias-2025", ct.UID)

	for _, uid := range []string{"Convocatorias", "con espacio", "-inicio", "doble--guion", "ñandú"} {
		_, err := f.store.Builder.Create(ctx, TypeInput{UID: uid, DisplayName: "Otra"})
		assert.True(t, model.IsValidation(err), "uid %q: %v", uid, err)
	}
	_, err = f.store.Builder.Get("otra")
	assert.True(t, model.IsNotFound(err), "rejected uids are not replaced by the slug of the name")
}

func TestBuilderPermissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.store.Builder.Create(ctx, TypeInput{DisplayName: "Anon"})
	assert.True(t, model.IsForbidden(err))

	f.login(t, "colab", "colab123")
	_, err = f.store.Builder.Create(ctx, TypeInput{DisplayName: "Colab"})
	assert.True(t, model.IsForbidden(err))

	f.login(t, "moderador", "mod123")
	_, err = f.store.Builder.Create(ctx, TypeInput{DisplayName: "Moderados"})
	assert.NoError(t, err, "moderators manage users and therefore schemas")
}

func TestDeleteBuiltinTypeAlwaysFails(t *testing.T) {
	logins := [][2]string{{}, {"admin", "admin123"}, {"moderador", "mod123"}, {"colab", "colab123"}}
	for _, uid := range []string{model.UIDSections, model.UIDTeamMembers, model.UIDEvents} {
		for _, l := range logins {
			t.Run(uid+"/"+l[0], func(t *testing.T) {
				f := newFixture(t)
				if l[0] != "" {
					f.login(t, l[0], l[1])
				}
				err := f.store.Builder.Delete(context.Background(), uid)
				require.Error(t, err)
				_, getErr := f.store.Builder.Get(uid)
				assert.NoError(t, getErr)
			})
		}
	}
}

func TestBuiltinTypesAreReadOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")

	_, err := f.store.Builder.Update(ctx, model.UIDEvents, TypeUpdate{DisplayName: ptr("Agenda")})
	assert.True(t, model.IsForbidden(err))
	_, err = f.store.Builder.AddField(ctx, model.UIDSections, FieldInput{Name: "Extra", Type: model.FieldString})
	assert.True(t, model.IsForbidden(err))
	assert.True(t, model.IsForbidden(f.store.Builder.RemoveField(ctx, model.UIDSections, "slug")))

	ct, err := f.store.Builder.Get(model.UIDSections)
	require.NoError(t, err)
	_, ok := ct.Field("slug")
	assert.True(t, ok)
}

func TestDeleteCustomType(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")
	f.createProgramas(t, true)
	_, err := f.store.Manager.CreateEntry(ctx, "programas", map[string]any{"titulo": "x"})
	require.NoError(t, err)

	require.NoError(t, f.store.Builder.Delete(ctx, "programas"))
	_, err = f.store.Builder.Get("programas")
	assert.True(t, model.IsNotFound(err))
	_, exists := f.store.State().CustomCollections["programas"]
	assert.False(t, exists)
	assert.True(t, model.IsNotFound(f.store.Builder.Delete(ctx, "programas")))
}

func TestFieldManagement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")
	f.createProgramas(t, true)

	added, err := f.store.Builder.AddField(ctx, "programas", FieldInput{Name: "Fecha de inicio", Type: model.FieldDate})
	require.NoError(t, err)
	assert.Equal(t, "fecha-de-inicio", added.ID)
	assert.True(t, added.Configurable)

	_, err = f.store.Builder.AddField(ctx, "programas", FieldInput{Name: "Fecha de Inicio", Type: model.FieldDate})
	assert.True(t, model.IsValidation(err), "same derived id")

	_, err = f.store.Builder.AddField(ctx, "programas", FieldInput{Name: "Color", Type: "colour"})
	assert.True(t, model.IsValidation(err))

	updated, err := f.store.Builder.UpdateField(ctx, "programas", added.ID, FieldUpdate{Name: ptr("Inicio"), Required: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, "Inicio", updated.Name)
	assert.Equal(t, added.ID, updated.ID)
	assert.True(t, updated.Required)

	_, err = f.store.Builder.UpdateField(ctx, "programas", added.ID, FieldUpdate{Type: ptr(model.FieldType("colour"))})
	assert.True(t, model.IsValidation(err))

	require.NoError(t, f.store.Builder.RemoveField(ctx, "programas", added.ID))
	assert.True(t, model.IsNotFound(f.store.Builder.RemoveField(ctx, "programas", added.ID)))

	ct, err := f.store.Builder.Update(ctx, "programas", TypeUpdate{Icon: ptr("book"), DraftAndPublish: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "book", ct.Icon)
	assert.False(t, ct.DraftAndPublish)
	assert.Len(t, ct.Fields, 2, "type updates never touch fields")
}

func TestRequiredFieldIsNamed(t *testing.T) {
	f := newFixture(t)
	f.login(t, "admin", "admin123")
	f.createProgramas(t, true)

	_, err := f.store.Manager.CreateEntry(context.Background(), "programas", map[string]any{})
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
	assert.Contains(t, err.Error(), "titulo")

	entries, err := f.store.Manager.Entries("programas")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCustomEntryLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.login(t, "admin", "admin123")
	f.createProgramas(t, true)

	first, err := f.store.Manager.CreateEntry(ctx, "programas", map[string]any{
		"titulo":  "Primero",
		"portada": "https://example.org/primero.jpg",
		"status":  "published",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPublished, first.Status)
	assert.Equal(t, owner.ID, first.OwnerID)
	assert.NotContains(t, first.Attributes, "status")

	second, err := f.store.Manager.CreateEntry(ctx, "programas", map[string]any{"titulo": "Segundo", "status": "bogus"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, second.Status)

	entries, err := f.store.Manager.Entries("programas")
	require.NoError(t, err)
	assert.Equal(t, []string{second.ID, first.ID}, entryIDs(entries), "new entries go first")

	assets := f.store.Media.List()
	var portada *model.MediaAsset
	for _, a := range assets {
		if a.URL == "https://example.org/primero.jpg" {
			portada = &a
		}
	}
	require.NotNil(t, portada)
	assert.Equal(t, "Programas: Portada", portada.Name)
	assert.Equal(t, "admin", portada.CreatedBy)

	updated, err := f.store.Manager.UpdateEntry(ctx, "programas", second.ID, map[string]any{"resumen": "nuevo"})
	require.NoError(t, err)
	assert.Equal(t, "Segundo", updated.Attributes["titulo"])
	assert.Equal(t, "nuevo", updated.Attributes["resumen"])
	assert.Equal(t, model.StatusDraft, updated.Status)

	published, err := f.store.Manager.SetStatus(ctx, "programas", second.ID, model.StatusPublished)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPublished, published.Status)

	_, err = f.store.Manager.SetStatus(ctx, "programas", second.ID, "archived")
	assert.True(t, model.IsValidation(err))

	got, err := f.store.Manager.Entry("programas", first.ID)
	require.NoError(t, err)
	got.Attributes["titulo"] = "mutated"
	again, _ := f.store.Manager.Entry("programas", first.ID)
	assert.Equal(t, "Primero", again.Attributes["titulo"])

	require.NoError(t, f.store.Manager.DeleteEntry(ctx, "programas", first.ID))
	assert.True(t, model.IsNotFound(f.store.Manager.DeleteEntry(ctx, "programas", first.ID)))
	_, err = f.store.Manager.Entry("programas", first.ID)
	assert.True(t, model.IsNotFound(err))
}

func TestEntryAttributesDoNotAlias(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")
	f.createProgramas(t, true)

	links := []map[string]any{{"label": "web"}}
	created, err := f.store.Manager.CreateEntry(ctx, "programas", map[string]any{"titulo": "x", "links": links})
	require.NoError(t, err)

	links[0]["label"] = "CALLER"
	created.Attributes["links"].([]any)[0].(map[string]any)["label"] = "MUTATED"

	stored, err := f.store.Manager.Entry("programas", created.ID)
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"label": "web"}}, stored.Attributes["links"])

	tags := []string{"uno"}
	updated, err := f.store.Manager.UpdateEntry(ctx, "programas", created.ID, map[string]any{"tags": tags})
	require.NoError(t, err)
	tags[0] = "CALLER"
	assert.Equal(t, []any{"uno"}, updated.Attributes["tags"])

	stored, err = f.store.Manager.Entry("programas", created.ID)
	require.NoError(t, err)
	assert.Equal(t, []any{"uno"}, stored.Attributes["tags"])
}

func TestEntryAttributesSurviveReopen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")
	f.createProgramas(t, true)

	created, err := f.store.Manager.CreateEntry(ctx, "programas", map[string]any{
		"titulo": "x",
		"cupos":  12,
		"sedes":  []string{"Quito", "Cuenca"},
	})
	require.NoError(t, err)

	f.reopen(t)
	reloaded, err := f.store.Manager.Entry("programas", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Attributes, reloaded.Attributes)
	assert.Equal(t, 12.0, reloaded.Attributes["cupos"])
}

func TestEntryAttributesRejectUnencodable(t *testing.T) {
	f := newFixture(t)
	f.login(t, "admin", "admin123")
	f.createProgramas(t, true)

	_, err := f.store.Manager.CreateEntry(context.Background(), "programas", map[string]any{"titulo": "x", "fn": func() {}})
	assert.True(t, model.IsValidation(err), "got %v", err)
}

func TestFieldValuesAreNormalized(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")
	f.createProgramas(t, true)

	values := []string{"a", "b"}
	field, err := f.store.Builder.AddField(ctx, "programas", FieldInput{
		Name:         "Nivel",
		Type:         model.FieldEnumeration,
		DefaultValue: 1,
		Options:      map[string]any{"values": values},
	})
	require.NoError(t, err)
	values[0] = "CALLER"

	f.reopen(t)
	ct, err := f.store.Builder.Get("programas")
	require.NoError(t, err)
	var stored model.ContentTypeField
	for _, fl := range ct.Fields {
		if fl.ID == field.ID {
			stored = fl
		}
	}
	assert.Equal(t, field, stored)
	assert.Equal(t, 1.0, stored.DefaultValue)
	assert.Equal(t, []any{"a", "b"}, stored.Options["values"])
}

func TestTypeWithoutDraftAndPublish(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")
	f.createProgramas(t, false)

	require.NoError(t, f.admin.Logout(ctx))
	f.login(t, "colab", "colab123")

	e, err := f.store.Manager.CreateEntry(ctx, "programas", map[string]any{"titulo": "x", "status": "draft"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPublished, e.Status)

	e, err = f.store.Manager.UpdateEntry(ctx, "programas", e.ID, map[string]any{"status": "draft"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPublished, e.Status)
}

func TestCollaboratorCustomEntryPolicy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")
	f.createProgramas(t, true)
	foreign, err := f.store.Manager.CreateEntry(ctx, "programas", map[string]any{"titulo": "Del admin"})
	require.NoError(t, err)

	f.login(t, "colab", "colab123")
	own, err := f.store.Manager.CreateEntry(ctx, "programas", map[string]any{"titulo": "Mío", "status": "published"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, own.Status, "create-time downgrade")

	_, err = f.store.Manager.SetStatus(ctx, "programas", own.ID, model.StatusPublished)
	assert.True(t, model.IsForbidden(err), "update-time reject")

	_, err = f.store.Manager.UpdateEntry(ctx, "programas", foreign.ID, map[string]any{"titulo": "Hack"})
	assert.True(t, model.IsForbidden(err))
	assert.True(t, model.IsForbidden(f.store.Manager.DeleteEntry(ctx, "programas", foreign.ID)))
	assert.True(t, model.IsForbidden(f.store.Manager.ReorderEntries(ctx, "programas", []string{own.ID})))
}

func TestReorderEntries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")

	t.Run("events", func(t *testing.T) {
		entries, err := f.store.Manager.Entries(model.UIDEvents)
		require.NoError(t, err)
		id1, id2, id3 := entries[0].ID, entries[1].ID, entries[2].ID

		require.NoError(t, f.store.Manager.ReorderEntries(ctx, model.UIDEvents, []string{id3, "ghost", id1}))
		after, err := f.store.Manager.Entries(model.UIDEvents)
		require.NoError(t, err)
		require.Len(t, after, len(entries))
		assert.Equal(t, []string{id3, id1, id2}, entryIDs(after)[:3])
	})

	t.Run("custom", func(t *testing.T) {
		f.createProgramas(t, true)
		var ids []string
		for _, title := range []string{"c", "b", "a"} {
			e, err := f.store.Manager.CreateEntry(ctx, "programas", map[string]any{"titulo": title})
			require.NoError(t, err)
			ids = append([]string{e.ID}, ids...)
		}
		// stored order is a, b, c
		require.NoError(t, f.store.Manager.ReorderEntries(ctx, "programas", []string{ids[2], ids[0], ids[2]}))
		after, err := f.store.Manager.Entries("programas")
		require.NoError(t, err)
		assert.Equal(t, []string{ids[2], ids[0], ids[1]}, entryIDs(after))
	})
}

func TestBuiltinEntriesDelegate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "colab", "colab123")

	e, err := f.store.Manager.CreateEntry(ctx, model.UIDSections, map[string]any{
		"title":   "Sección colaborativa",
		"content": "Texto",
		"status":  "published",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, e.Status)
	assert.Equal(t, "seccion-colaborativa", e.Attributes["slug"])

	sec, err := f.admin.Section(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Texto", sec.Content)

	_, err = f.store.Manager.SetStatus(ctx, model.UIDSections, e.ID, model.StatusPublished)
	assert.True(t, model.IsForbidden(err))

	f.login(t, "admin", "admin123")
	member, err := f.store.Manager.CreateEntry(ctx, model.UIDTeamMembers, map[string]any{
		"name":       "Rosa Caicedo",
		"role":       "Tesorera",
		"image":      "https://example.org/rosa.png",
		"bio":        "Primera línea\nSegunda línea",
		"expertise":  "finanzas, gestión",
		"highlights": []any{"Logro"},
		"socials":    []any{map[string]any{"platform": "web", "label": "Sitio", "url": "https://rosa.example"}},
		"status":     "published",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Primera línea", "Segunda línea"}, member.Attributes["bio"])
	assert.Equal(t, []string{"finanzas", "gestión"}, member.Attributes["expertise"])
	assert.Equal(t, []model.SocialLink{{Platform: model.SocialWeb, Label: "Sitio", URL: "https://rosa.example"}}, member.Attributes["socials"])

	assetCount := 0
	for _, a := range f.store.Media.List() {
		if a.URL == "https://example.org/rosa.png" {
			assetCount++
			assert.Equal(t, "Rosa Caicedo", a.Name)
		}
	}
	assert.Equal(t, 1, assetCount, "team images are catalogued through the media hook")

	ev, err := f.store.Manager.CreateEntry(ctx, model.UIDEvents, map[string]any{
		"title": "Taller abierto",
		"date":  "2025-06-07",
		"tags":  "taller; abierto",
	})
	require.NoError(t, err)
	assert.Equal(t, "7 de junio de 2025", ev.Attributes["formattedDate"])

	ev, err = f.store.Manager.UpdateEntry(ctx, model.UIDEvents, ev.ID, map[string]any{"location": "Quito"})
	require.NoError(t, err)
	assert.Equal(t, "Quito", ev.Attributes["location"])

	require.NoError(t, f.store.Manager.DeleteEntry(ctx, model.UIDEvents, ev.ID))
	_, err = f.store.Manager.Entry(model.UIDEvents, ev.ID)
	assert.True(t, model.IsNotFound(err))
}

func TestUnknownCollection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")

	_, err := f.store.Manager.Entries("nope")
	assert.True(t, model.IsNotFound(err))
	_, err = f.store.Manager.CreateEntry(ctx, "nope", map[string]any{})
	assert.True(t, model.IsNotFound(err))
	assert.True(t, model.IsNotFound(f.store.Manager.ReorderEntries(ctx, "nope", nil)))
}

func TestDeletedUserEntriesMoveToCaller(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "admin", "admin123")
	f.createProgramas(t, true)

	author, err := f.store.Users.Create(ctx, admin.NewUser{Username: "autora", Password: "secret", Role: model.RoleAuthor})
	require.NoError(t, err)
	f.login(t, "autora", "secret")
	e, err := f.store.Manager.CreateEntry(ctx, "programas", map[string]any{"titulo": "De la autora"})
	require.NoError(t, err)
	assert.Equal(t, author.ID, e.OwnerID)

	moderator := f.login(t, "moderador", "mod123")
	require.NoError(t, f.store.Users.Delete(ctx, author.ID))

	got, err := f.store.Manager.Entry("programas", e.ID)
	require.NoError(t, err)
	assert.Equal(t, moderator.ID, got.OwnerID)

	f.reopen(t)
	got, err = f.store.Manager.Entry("programas", e.ID)
	require.NoError(t, err)
	assert.Equal(t, moderator.ID, got.OwnerID, "reassignment is persisted")
}

func TestOrphanedEntriesAreAdoptedOnLoad(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	adm := f.login(t, "admin", "admin123")
	f.createProgramas(t, true)

	author, err := f.store.Users.Create(ctx, admin.NewUser{Username: "autora", Password: "secret", Role: model.RoleAuthor})
	require.NoError(t, err)
	f.login(t, "autora", "secret")
	e, err := f.store.Manager.CreateEntry(ctx, "programas", map[string]any{"titulo": "De la autora"})
	require.NoError(t, err)

	// Lose the reassignment, as when the module write fails after the
	// admin document was committed.
	f.admin.Hooks().Unregister(hooks.HookUserDeleted, hookOwner)
	f.login(t, "admin", "admin123")
	require.NoError(t, f.store.Users.Delete(ctx, author.ID))

	got, err := f.store.Manager.Entry("programas", e.ID)
	require.NoError(t, err)
	require.Equal(t, author.ID, got.OwnerID)

	require.NoError(t, f.store.Reload(ctx))
	got, err = f.store.Manager.Entry("programas", e.ID)
	require.NoError(t, err)
	assert.Equal(t, adm.ID, got.OwnerID)

	f.reopen(t)
	got, err = f.store.Manager.Entry("programas", e.ID)
	require.NoError(t, err)
	assert.Equal(t, adm.ID, got.OwnerID)
}

func TestUsersModule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Equal(t, model.Roles, f.store.Users.Roles())
	caps, err := f.store.Users.RoleCapabilities(model.RoleModerator)
	require.NoError(t, err)
	assert.False(t, caps.DeleteAnySection)
	_, err = f.store.Users.RoleCapabilities("Root")
	assert.True(t, model.IsValidation(err))

	assert.False(t, f.store.Users.CanManage())
	f.login(t, "admin", "admin123")
	assert.True(t, f.store.Users.CanManage())
	cur, ok := f.store.Users.Current()
	require.True(t, ok)
	assert.Equal(t, "admin", cur.Username)

	u, err := f.store.Users.Create(ctx, admin.NewUser{Username: "editor1", Password: "secret", Role: model.RoleEditor})
	require.NoError(t, err)
	u, err = f.store.Users.AssignRole(ctx, u.ID, model.RoleAuthor)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAuthor, u.Role)
	_, err = f.store.Users.Update(ctx, u.ID, admin.UserUpdate{Password: ptr("otra")})
	require.NoError(t, err)
	assert.Len(t, f.store.Users.List(), 4)
}
