// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"context"
	"slices"

	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/util"
)

// SectionInput is the input of CreateSection.
type SectionInput struct {
	Title   string       `json:"title"`
	Content string       `json:"content"`
	Status  model.Status `json:"status"`
}

// SectionUpdate is a partial section update; nil fields are unchanged.
type SectionUpdate struct {
	Title   *string       `json:"title,omitempty"`
	Content *string       `json:"content,omitempty"`
	Status  *model.Status `json:"status,omitempty"`
}

func sectionID(s model.Section) string { return s.ID }

func sectionKey(s model.Section) (string, string) { return s.ID, s.Slug }

// Sections returns every section, newest first.
func (s *Store) Sections() []model.Section {
	var out []model.Section
	s.doc.View(func(st State) { out = model.CloneSections(st.Sections) })
	return out
}

// Section returns the section with id.
func (s *Store) Section(id string) (model.Section, error) {
	var (
		sec model.Section
		ok  bool
	)
	s.doc.View(func(st State) {
		if i := indexByID(st.Sections, id, sectionID); i >= 0 {
			sec, ok = st.Sections[i], true
		}
	})
	if !ok {
		return model.Section{}, model.NotFound(SectionNoun.NotFound)
	}
	return sec, nil
}

// CreateSection adds a section owned by the current user. A publish
// request from a role that cannot publish is saved as draft.
func (s *Store) CreateSection(ctx context.Context, in SectionInput) (model.Section, error) {
	var (
		created    model.Section
		downgraded bool
		author     model.User
	)
	err := s.mutate(ctx, func(st *State, user *model.User) error {
		if err := AuthorizeCreate(user, SectionNoun); err != nil {
			return err
		}
		slug, err := uniqueSlug(st.Sections, in.Title, "título", "", SectionNoun, sectionKey)
		if err != nil {
			return err
		}

		var status model.Status
		status, downgraded = CreateStatus(*user, in.Status)
		author = *user
		created = model.Section{
			ID:        util.NewID("section"),
			Title:     in.Title,
			Slug:      slug,
			Content:   in.Content,
			Status:    status,
			OwnerID:   user.ID,
			UpdatedAt: s.timestamp(),
		}
		st.Sections = slices.Insert(st.Sections, 0, created)
		return nil
	})
	if err != nil {
		return model.Section{}, err
	}
	if downgraded {
		s.warnDowngrade(author, SectionNoun)
	}
	return created, nil
}

// UpdateSection applies in to the section with id. Requesting published
// without the publish capability fails and changes nothing.
func (s *Store) UpdateSection(ctx context.Context, id string, in SectionUpdate) (model.Section, error) {
	var updated model.Section
	err := s.mutate(ctx, func(st *State, user *model.User) error {
		if user == nil {
			return AuthorizeUpdate(nil, "", nil, SectionNoun)
		}
		i := indexByID(st.Sections, id, sectionID)
		if i < 0 {
			return model.NotFound(SectionNoun.NotFound)
		}
		sec := st.Sections[i]
		if err := AuthorizeUpdate(user, sec.OwnerID, in.Status, SectionNoun); err != nil {
			return err
		}

		if in.Title != nil {
			slug, err := uniqueSlug(st.Sections, *in.Title, "título", sec.ID, SectionNoun, sectionKey)
			if err != nil {
				return err
			}
			sec.Title, sec.Slug = *in.Title, slug
		}
		if in.Content != nil {
			sec.Content = *in.Content
		}
		if in.Status != nil {
			sec.Status = *in.Status
		}
		sec.UpdatedAt = s.timestamp()
		st.Sections[i] = sec
		updated = sec
		return nil
	})
	if err != nil {
		return model.Section{}, err
	}
	return updated, nil
}

// DeleteSection removes the section with id.
func (s *Store) DeleteSection(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *State, user *model.User) error {
		if user == nil {
			return AuthorizeDelete(nil, "", SectionNoun)
		}
		i := indexByID(st.Sections, id, sectionID)
		if i < 0 {
			return model.NotFound(SectionNoun.NotFound)
		}
		if err := AuthorizeDelete(user, st.Sections[i].OwnerID, SectionNoun); err != nil {
			return err
		}
		st.Sections = slices.Delete(st.Sections, i, i+1)
		return nil
	})
}

// ReorderSections moves the sections listed in ids to the front, in that
// order. Unknown ids are ignored.
func (s *Store) ReorderSections(ctx context.Context, ids []string) error {
	return s.mutate(ctx, func(st *State, user *model.User) error {
		if err := AuthorizeReorder(user, SectionNoun); err != nil {
			return err
		}
		st.Sections = util.ReorderByID(st.Sections, ids, sectionID)
		return nil
	})
}
