// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"slices"

	"github.com/olegiv/funteco-cms/internal/admin"
	"github.com/olegiv/funteco-cms/internal/hooks"
	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/util"
)

// EntryNoun names custom collection entries in error messages.
var EntryNoun = admin.Noun{
	Plural:   "registros",
	This:     "este registro",
	NotFound: "entrada no encontrada",
}

// Manager is the generic entry API. Built-in uids are served by the
// admin store; every other uid by the custom collections.
type Manager struct{ c *core }

func (m *Manager) builtin(uid string) (builtin, bool) {
	return builtinFor(model.KindOfUID(uid), m.c.admin)
}

// Collections returns every content type.
func (m *Manager) Collections() []model.ContentType {
	return (&Builder{m.c}).List()
}

// Entries returns the entries of the collection uid in stored order.
func (m *Manager) Entries(uid string) ([]model.ContentEntry, error) {
	if b, ok := m.builtin(uid); ok {
		return b.list(), nil
	}
	var (
		out   []model.ContentEntry
		found bool
	)
	m.c.doc.View(func(st State) {
		if _, found = st.contentType(uid); found {
			out = model.CloneEntries(st.CustomCollections[uid])
		}
	})
	if !found {
		return nil, model.NotFound("tipo de contenido no encontrado")
	}
	if out == nil {
		out = []model.ContentEntry{}
	}
	return out, nil
}

// Entry returns one entry of the collection uid.
func (m *Manager) Entry(uid, id string) (model.ContentEntry, error) {
	entries, err := m.Entries(uid)
	if err != nil {
		return model.ContentEntry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return model.ContentEntry{}, model.NotFound(EntryNoun.NotFound)
}

// CreateEntry adds an entry to the collection uid. For custom types every
// required field must be present; types without draft and publish store
// entries as published. Media fields are catalogued.
func (m *Manager) CreateEntry(ctx context.Context, uid string, attrs map[string]any) (model.ContentEntry, error) {
	if b, ok := m.builtin(uid); ok {
		return b.create(ctx, attrs)
	}

	user := m.c.currentUser()
	var (
		created    model.ContentEntry
		downgraded bool
	)
	err := m.c.doc.Update(ctx, func(st *State) error {
		i, ok := st.contentType(uid)
		if !ok {
			return model.NotFound("tipo de contenido no encontrado")
		}
		if err := admin.AuthorizeCreate(user, EntryNoun); err != nil {
			return err
		}
		ct := st.ContentTypes[i]
		for _, f := range ct.Fields {
			if f.Required && attrs[f.ID] == nil {
				return model.Invalid("el campo " + f.Name + " es obligatorio")
			}
		}

		status := model.StatusPublished
		if ct.DraftAndPublish {
			status, downgraded = admin.CreateStatus(*user, toStatus(attrs["status"]))
		}
		values, err := entryAttributes(attrs)
		if err != nil {
			return err
		}
		now := m.c.timestamp()
		created = model.ContentEntry{
			ID:          util.NewID("entry"),
			ContentType: uid,
			Status:      status,
			OwnerID:     user.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
			Attributes:  values,
		}
		st.CustomCollections[uid] = slices.Insert(st.CustomCollections[uid], 0, created)

		for _, f := range ct.Fields {
			if f.Type != model.FieldMedia {
				continue
			}
			if url, ok := attrs[f.ID].(string); ok {
				m.c.registerAsset(st, hooks.MediaReference{
					URL:    url,
					Name:   ct.DisplayName + ": " + f.Name,
					Author: user.Username,
				})
			}
		}
		return nil
	})
	if err != nil {
		return model.ContentEntry{}, err
	}
	if downgraded {
		m.c.logger.Warn("role cannot publish, saving as draft",
			"category", model.EventCategoryContent, "role", user.Role, "user_id", user.ID, "collection", uid)
	}
	return created.Clone(), nil
}

// UpdateEntry merges attrs into an entry. A "status" attribute moves the
// entry; publishing needs the publish capability.
func (m *Manager) UpdateEntry(ctx context.Context, uid, id string, attrs map[string]any) (model.ContentEntry, error) {
	if b, ok := m.builtin(uid); ok {
		return b.update(ctx, id, attrs)
	}

	user := m.c.currentUser()
	var updated model.ContentEntry
	err := m.c.doc.Update(ctx, func(st *State) error {
		i, ok := st.contentType(uid)
		if !ok {
			return model.NotFound("tipo de contenido no encontrado")
		}
		ct := st.ContentTypes[i]
		entries := st.CustomCollections[uid]
		j := slices.IndexFunc(entries, func(e model.ContentEntry) bool { return e.ID == id })
		if user == nil {
			return admin.AuthorizeUpdate(nil, "", nil, EntryNoun)
		}
		if j < 0 {
			return model.NotFound(EntryNoun.NotFound)
		}

		e := entries[j]
		next := statusPtr(attrs)
		if !ct.DraftAndPublish {
			next = nil
		}
		if err := admin.AuthorizeUpdate(user, e.OwnerID, next, EntryNoun); err != nil {
			return err
		}

		values, err := entryAttributes(attrs)
		if err != nil {
			return err
		}
		if e.Attributes == nil {
			e.Attributes = make(map[string]any)
		}
		for k, v := range values {
			e.Attributes[k] = v
		}
		switch {
		case !ct.DraftAndPublish:
			e.Status = model.StatusPublished
		case next != nil:
			e.Status = *next
		}
		e.UpdatedAt = m.c.timestamp()
		entries[j] = e
		updated = e.Clone()
		return nil
	})
	if err != nil {
		return model.ContentEntry{}, err
	}
	return updated, nil
}

// SetStatus moves an entry to status.
func (m *Manager) SetStatus(ctx context.Context, uid, id string, status model.Status) (model.ContentEntry, error) {
	return m.UpdateEntry(ctx, uid, id, map[string]any{"status": string(status)})
}

// DeleteEntry removes an entry.
func (m *Manager) DeleteEntry(ctx context.Context, uid, id string) error {
	if b, ok := m.builtin(uid); ok {
		return b.remove(ctx, id)
	}

	user := m.c.currentUser()
	return m.c.doc.Update(ctx, func(st *State) error {
		if _, ok := st.contentType(uid); !ok {
			return model.NotFound("tipo de contenido no encontrado")
		}
		if user == nil {
			return admin.AuthorizeDelete(nil, "", EntryNoun)
		}
		entries := st.CustomCollections[uid]
		j := slices.IndexFunc(entries, func(e model.ContentEntry) bool { return e.ID == id })
		if j < 0 {
			return model.NotFound(EntryNoun.NotFound)
		}
		if err := admin.AuthorizeDelete(user, entries[j].OwnerID, EntryNoun); err != nil {
			return err
		}
		st.CustomCollections[uid] = slices.Delete(entries, j, j+1)
		return nil
	})
}

// ReorderEntries moves the entries listed in ids to the front of the
// collection, in that order, keeping the rest in their previous order.
// Unknown ids are ignored.
func (m *Manager) ReorderEntries(ctx context.Context, uid string, ids []string) error {
	if b, ok := m.builtin(uid); ok {
		return b.reorder(ctx, ids)
	}

	user := m.c.currentUser()
	return m.c.doc.Update(ctx, func(st *State) error {
		if _, ok := st.contentType(uid); !ok {
			return model.NotFound("tipo de contenido no encontrado")
		}
		if err := admin.AuthorizeReorder(user, EntryNoun); err != nil {
			return err
		}
		st.CustomCollections[uid] = util.ReorderByID(st.CustomCollections[uid], ids, func(e model.ContentEntry) string { return e.ID })
		return nil
	})
}
