// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"

	"github.com/olegiv/funteco-cms/internal/admin"
	"github.com/olegiv/funteco-cms/internal/model"
)

// builtin maps a built-in collection of the admin store onto the generic
// entry shape.
type builtin interface {
	list() []model.ContentEntry
	create(ctx context.Context, attrs map[string]any) (model.ContentEntry, error)
	update(ctx context.Context, id string, attrs map[string]any) (model.ContentEntry, error)
	remove(ctx context.Context, id string) error
	reorder(ctx context.Context, ids []string) error
}

func builtinFor(kind model.ContentTypeKind, a *admin.Store) (builtin, bool) {
	switch kind {
	case model.KindSections:
		return sections{a}, true
	case model.KindTeamMembers:
		return team{a}, true
	case model.KindEvents:
		return events{a}, true
	default:
		return nil, false
	}
}

type sections struct{ store *admin.Store }

func (sections) toEntry(s model.Section) model.ContentEntry {
	return model.ContentEntry{
		ID:          s.ID,
		ContentType: model.UIDSections,
		Status:      s.Status,
		OwnerID:     s.OwnerID,
		CreatedAt:   s.UpdatedAt,
		UpdatedAt:   s.UpdatedAt,
		Attributes: map[string]any{
			"title":   s.Title,
			"slug":    s.Slug,
			"content": s.Content,
		},
	}
}

func (a sections) list() []model.ContentEntry {
	items := a.store.Sections()
	out := make([]model.ContentEntry, len(items))
	for i, s := range items {
		out[i] = a.toEntry(s)
	}
	return out
}

func (a sections) create(ctx context.Context, attrs map[string]any) (model.ContentEntry, error) {
	title, _ := stringAttr(attrs, "title")
	body, _ := stringAttr(attrs, "content")
	s, err := a.store.CreateSection(ctx, admin.SectionInput{Title: title, Content: body, Status: toStatus(attrs["status"])})
	if err != nil {
		return model.ContentEntry{}, err
	}
	return a.toEntry(s), nil
}

func (a sections) update(ctx context.Context, id string, attrs map[string]any) (model.ContentEntry, error) {
	s, err := a.store.UpdateSection(ctx, id, admin.SectionUpdate{
		Title:   stringPtr(attrs, "title"),
		Content: stringPtr(attrs, "content"),
		Status:  statusPtr(attrs),
	})
	if err != nil {
		return model.ContentEntry{}, err
	}
	return a.toEntry(s), nil
}

func (a sections) remove(ctx context.Context, id string) error {
	return a.store.DeleteSection(ctx, id)
}

func (a sections) reorder(ctx context.Context, ids []string) error {
	return a.store.ReorderSections(ctx, ids)
}

type team struct{ store *admin.Store }

func (team) toEntry(m model.ManagedTeamMember) model.ContentEntry {
	return model.ContentEntry{
		ID:          m.ID,
		ContentType: model.UIDTeamMembers,
		Status:      m.Status,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Attributes: map[string]any{
			"slug":       m.Slug,
			"name":       m.Name,
			"role":       m.Role,
			"image":      m.Image,
			"shortBio":   m.ShortBio,
			"bio":        m.Bio,
			"focus":      m.Focus,
			"expertise":  m.Expertise,
			"highlights": m.Highlights,
			"socials":    m.Socials,
		},
	}
}

func (a team) list() []model.ContentEntry {
	items := a.store.TeamMembers()
	out := make([]model.ContentEntry, len(items))
	for i, m := range items {
		out[i] = a.toEntry(m)
	}
	return out
}

func (a team) create(ctx context.Context, attrs map[string]any) (model.ContentEntry, error) {
	in := admin.TeamMemberInput{Status: toStatus(attrs["status"])}
	in.Name, _ = stringAttr(attrs, "name")
	in.Role, _ = stringAttr(attrs, "role")
	in.Image, _ = stringAttr(attrs, "image")
	in.ShortBio, _ = stringAttr(attrs, "shortBio")
	in.Focus, _ = stringAttr(attrs, "focus")
	in.Bio, _ = listAttr(attrs, "bio", splitLines)
	in.Expertise, _ = listAttr(attrs, "expertise", splitComma)
	in.Highlights, _ = listAttr(attrs, "highlights", splitLines)
	in.Socials, _ = socialsAttr(attrs)

	m, err := a.store.CreateTeamMember(ctx, in)
	if err != nil {
		return model.ContentEntry{}, err
	}
	return a.toEntry(m), nil
}

func (a team) update(ctx context.Context, id string, attrs map[string]any) (model.ContentEntry, error) {
	in := admin.TeamMemberUpdate{
		Name:       stringPtr(attrs, "name"),
		Role:       stringPtr(attrs, "role"),
		Image:      stringPtr(attrs, "image"),
		ShortBio:   stringPtr(attrs, "shortBio"),
		Focus:      stringPtr(attrs, "focus"),
		Bio:        listPtr(attrs, "bio", splitLines),
		Expertise:  listPtr(attrs, "expertise", splitComma),
		Highlights: listPtr(attrs, "highlights", splitLines),
		Status:     statusPtr(attrs),
	}
	if socials, ok := socialsAttr(attrs); ok {
		in.Socials = &socials
	}

	m, err := a.store.UpdateTeamMember(ctx, id, in)
	if err != nil {
		return model.ContentEntry{}, err
	}
	return a.toEntry(m), nil
}

func (a team) remove(ctx context.Context, id string) error {
	return a.store.DeleteTeamMember(ctx, id)
}

func (a team) reorder(ctx context.Context, ids []string) error {
	return a.store.ReorderTeamMembers(ctx, ids)
}

type events struct{ store *admin.Store }

func (events) toEntry(e model.ManagedEvent) model.ContentEntry {
	return model.ContentEntry{
		ID:          e.ID,
		ContentType: model.UIDEvents,
		Status:      e.Status,
		OwnerID:     e.OwnerID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		Attributes: map[string]any{
			"slug":             e.Slug,
			"title":            e.Title,
			"shortDescription": e.ShortDescription,
			"description":      e.Description,
			"date":             e.Date,
			"formattedDate":    e.FormattedDate,
			"image":            e.Image,
			"location":         e.Location,
			"tags":             e.Tags,
		},
	}
}

func (a events) list() []model.ContentEntry {
	items := a.store.Events()
	out := make([]model.ContentEntry, len(items))
	for i, e := range items {
		out[i] = a.toEntry(e)
	}
	return out
}

func (a events) create(ctx context.Context, attrs map[string]any) (model.ContentEntry, error) {
	in := admin.EventInput{Status: toStatus(attrs["status"])}
	in.Title, _ = stringAttr(attrs, "title")
	in.ShortDescription, _ = stringAttr(attrs, "shortDescription")
	in.Date, _ = stringAttr(attrs, "date")
	in.Image, _ = stringAttr(attrs, "image")
	in.Location, _ = stringAttr(attrs, "location")
	in.Description, _ = listAttr(attrs, "description", splitLines)
	in.Tags, _ = listAttr(attrs, "tags", splitComma)

	e, err := a.store.CreateEvent(ctx, in)
	if err != nil {
		return model.ContentEntry{}, err
	}
	return a.toEntry(e), nil
}

func (a events) update(ctx context.Context, id string, attrs map[string]any) (model.ContentEntry, error) {
	e, err := a.store.UpdateEvent(ctx, id, admin.EventUpdate{
		Title:            stringPtr(attrs, "title"),
		ShortDescription: stringPtr(attrs, "shortDescription"),
		Date:             stringPtr(attrs, "date"),
		Image:            stringPtr(attrs, "image"),
		Location:         stringPtr(attrs, "location"),
		Description:      listPtr(attrs, "description", splitLines),
		Tags:             listPtr(attrs, "tags", splitComma),
		Status:           statusPtr(attrs),
	})
	if err != nil {
		return model.ContentEntry{}, err
	}
	return a.toEntry(e), nil
}

func (a events) remove(ctx context.Context, id string) error {
	return a.store.DeleteEvent(ctx, id)
}

func (a events) reorder(ctx context.Context, ids []string) error {
	return a.store.ReorderEvents(ctx, ids)
}
