// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"slices"
	"strconv"
	"time"

	"github.com/olegiv/funteco-cms/internal/admin"
	"github.com/olegiv/funteco-cms/internal/model"
)

// StorageKey is the storage key of the module document.
const StorageKey = "funteco-strapi-modules"

// State is the persisted module document: the schema registry, the
// entries of custom collections keyed by uid, and the media catalogue.
type State struct {
	ContentTypes      []model.ContentType             `json:"contentTypes"`
	CustomCollections map[string][]model.ContentEntry `json:"customCollections"`
	MediaLibrary      []model.MediaAsset              `json:"mediaLibrary"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.ContentTypes = model.CloneContentTypes(s.ContentTypes)
	if s.CustomCollections != nil {
		collections := make(map[string][]model.ContentEntry, len(s.CustomCollections))
		for uid, entries := range s.CustomCollections {
			collections[uid] = model.CloneEntries(entries)
		}
		s.CustomCollections = collections
	}
	s.MediaLibrary = model.CloneMedia(s.MediaLibrary)
	return s
}

// Repair puts back missing built-in types, keeps them non-configurable,
// gives every custom type a collection and coerces unknown entry
// statuses to draft.
func (s *State) Repair() {
	stored := make(map[string]model.ContentType, len(s.ContentTypes))
	var custom []model.ContentType
	for _, ct := range s.ContentTypes {
		if model.KindOfUID(ct.UID) == model.KindCustom {
			custom = append(custom, ct)
			continue
		}
		stored[ct.UID] = ct
	}

	types := make([]model.ContentType, 0, len(s.ContentTypes)+3)
	for _, base := range builtinTypes() {
		ct, ok := stored[base.UID]
		if !ok {
			types = append(types, base)
			continue
		}
		ct.Configurable = false
		ct.Kind = model.CollectionTypeKind
		if ct.Fields == nil {
			ct.Fields = base.Fields
		}
		types = append(types, ct)
	}
	s.ContentTypes = append(types, custom...)

	if s.CustomCollections == nil {
		s.CustomCollections = make(map[string][]model.ContentEntry)
	}
	for _, ct := range custom {
		if s.CustomCollections[ct.UID] == nil {
			s.CustomCollections[ct.UID] = []model.ContentEntry{}
		}
	}
	for _, entries := range s.CustomCollections {
		for i := range entries {
			if !entries[i].Status.IsValid() {
				entries[i].Status = model.StatusDraft
			}
		}
	}

	if s.MediaLibrary == nil {
		s.MediaLibrary = []model.MediaAsset{}
	}
}

func (s State) contentType(uid string) (int, bool) {
	i := slices.IndexFunc(s.ContentTypes, func(ct model.ContentType) bool { return ct.UID == uid })
	return i, i >= 0
}

// defaultState seeds the registry with the built-in types and catalogues
// every image the admin document already references.
func defaultState(adm admin.State) State {
	return State{
		ContentTypes:      builtinTypes(),
		CustomCollections: make(map[string][]model.ContentEntry),
		MediaLibrary:      defaultMedia(adm),
	}
}

func defaultMedia(adm admin.State) []model.MediaAsset {
	author := "admin"
	if len(adm.Users) > 0 {
		author = adm.Users[0].Username
	}

	assets := []model.MediaAsset{}
	register := func(url, name string) {
		if url == "" || slices.ContainsFunc(assets, func(a model.MediaAsset) bool { return a.URL == url }) {
			return
		}
		day := time.Date(2023, time.January, len(assets)+1, 0, 0, 0, 0, time.UTC)
		assets = append(assets, model.MediaAsset{
			ID:        "asset-" + strconv.Itoa(len(assets)+1),
			Name:      name,
			URL:       url,
			Type:      model.MediaImage,
			CreatedAt: day,
			UpdatedAt: day,
			CreatedBy: author,
		})
	}
	for _, m := range adm.TeamMembers {
		register(m.Image, m.Name)
	}
	for _, e := range adm.Events {
		register(e.Image, e.Title)
	}
	return assets
}
