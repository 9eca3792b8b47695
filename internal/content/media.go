// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"path"
	"slices"
	"strings"

	"github.com/olegiv/funteco-cms/internal/hooks"
	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/util"
)

// MediaLibrary is the flat catalogue of media assets. The URL identifies
// an asset: at most one asset exists per URL.
type MediaLibrary struct{ c *core }

// UploadInput is the input of Upload. Name defaults to the last path
// segment of URL and Type to image.
type UploadInput struct {
	Name    string          `json:"name"`
	URL     string          `json:"url"`
	Type    model.MediaType `json:"type,omitempty"`
	Size    int64           `json:"size,omitempty"`
	AltText string          `json:"altText,omitempty"`
}

// MediaUpdate is a partial asset update.
type MediaUpdate struct {
	Name    *string          `json:"name,omitempty"`
	URL     *string          `json:"url,omitempty"`
	Type    *model.MediaType `json:"type,omitempty"`
	Size    *int64           `json:"size,omitempty"`
	AltText *string          `json:"altText,omitempty"`
}

// List returns every asset, newest uploads first.
func (l *MediaLibrary) List() []model.MediaAsset {
	var out []model.MediaAsset
	l.c.doc.View(func(st State) { out = model.CloneMedia(st.MediaLibrary) })
	return out
}

// Get returns the asset with id.
func (l *MediaLibrary) Get(id string) (model.MediaAsset, error) {
	for _, a := range l.List() {
		if a.ID == id {
			return a, nil
		}
	}
	return model.MediaAsset{}, model.NotFound("archivo multimedia no encontrado")
}

func defaultAssetName(rawURL string) string {
	trimmed := strings.TrimRight(rawURL, "/")
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	name := path.Base(trimmed)
	if name == "." || name == "/" || name == "" || strings.HasSuffix(name, ":") {
		return "Archivo"
	}
	return name
}

// Upload catalogues an asset. An existing asset with the same URL is
// replaced.
func (l *MediaLibrary) Upload(ctx context.Context, in UploadInput) (model.MediaAsset, error) {
	user := l.c.currentUser()
	var created model.MediaAsset
	err := l.c.doc.Update(ctx, func(st *State) error {
		if user == nil {
			return model.Forbidden("debes iniciar sesión para subir archivos")
		}
		url := strings.TrimSpace(in.URL)
		if url == "" {
			return model.Invalid("la url del archivo es obligatoria")
		}
		mediaType := in.Type
		if mediaType == "" {
			mediaType = model.MediaImage
		}
		if !mediaType.IsValid() {
			return model.Invalid("tipo de archivo no admitido")
		}
		name := in.Name
		if name == "" {
			name = defaultAssetName(url)
		}

		now := l.c.timestamp()
		created = model.MediaAsset{
			ID:        util.NewID("asset"),
			Name:      name,
			URL:       url,
			Type:      mediaType,
			Size:      in.Size,
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: user.Username,
			AltText:   in.AltText,
		}
		rest := slices.DeleteFunc(st.MediaLibrary, func(a model.MediaAsset) bool { return a.URL == url })
		st.MediaLibrary = slices.Insert(rest, 0, created)
		return nil
	})
	if err != nil {
		return model.MediaAsset{}, err
	}
	l.c.logger.Info("media uploaded", "category", model.EventCategoryMedia, "asset_id", created.ID, "url", created.URL)
	return created, nil
}

// Update patches the asset with id.
func (l *MediaLibrary) Update(ctx context.Context, id string, in MediaUpdate) (model.MediaAsset, error) {
	user := l.c.currentUser()
	var updated model.MediaAsset
	err := l.c.doc.Update(ctx, func(st *State) error {
		if user == nil {
			return model.Forbidden("debes iniciar sesión para editar archivos")
		}
		i := slices.IndexFunc(st.MediaLibrary, func(a model.MediaAsset) bool { return a.ID == id })
		if i < 0 {
			return model.NotFound("archivo multimedia no encontrado")
		}
		a := st.MediaLibrary[i]
		if in.URL != nil {
			url := strings.TrimSpace(*in.URL)
			if url == "" {
				return model.Invalid("la url del archivo es obligatoria")
			}
			if slices.ContainsFunc(st.MediaLibrary, func(o model.MediaAsset) bool { return o.ID != id && o.URL == url }) {
				return model.Invalid("ya existe un archivo con esa url")
			}
			a.URL = url
		}
		if in.Type != nil {
			if !in.Type.IsValid() {
				return model.Invalid("tipo de archivo no admitido")
			}
			a.Type = *in.Type
		}
		if in.Name != nil {
			a.Name = *in.Name
		}
		if in.Size != nil {
			a.Size = *in.Size
		}
		if in.AltText != nil {
			a.AltText = *in.AltText
		}
		a.UpdatedAt = l.c.timestamp()
		st.MediaLibrary[i] = a
		updated = a
		return nil
	})
	if err != nil {
		return model.MediaAsset{}, err
	}
	return updated, nil
}

// Remove deletes the asset with id.
func (l *MediaLibrary) Remove(ctx context.Context, id string) error {
	user := l.c.currentUser()
	return l.c.doc.Update(ctx, func(st *State) error {
		if user == nil {
			return model.Forbidden("debes iniciar sesión para eliminar archivos")
		}
		before := len(st.MediaLibrary)
		st.MediaLibrary = slices.DeleteFunc(st.MediaLibrary, func(a model.MediaAsset) bool { return a.ID == id })
		if len(st.MediaLibrary) == before {
			return model.NotFound("archivo multimedia no encontrado")
		}
		return nil
	})
}

// registerAsset appends an image asset for ref.URL unless one is already
// catalogued.
func (c *core) registerAsset(st *State, ref hooks.MediaReference) {
	if ref.URL == "" || slices.ContainsFunc(st.MediaLibrary, func(a model.MediaAsset) bool { return a.URL == ref.URL }) {
		return
	}
	author := ref.Author
	if author == "" {
		author = "admin"
	}
	now := c.timestamp()
	st.MediaLibrary = append(st.MediaLibrary, model.MediaAsset{
		ID:        util.NewID("asset"),
		Name:      ref.Name,
		URL:       ref.URL,
		Type:      model.MediaImage,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: author,
	})
}
