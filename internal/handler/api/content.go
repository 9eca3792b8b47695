// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/funteco-cms/internal/content"
	"github.com/olegiv/funteco-cms/internal/model"
)

type entryRequest struct {
	Attributes map[string]any `json:"attributes" validate:"required"`
}

type statusRequest struct {
	Status model.Status `json:"status" validate:"required,status"`
}

type reorderRequest struct {
	IDs []string `json:"ids" validate:"required,dive,required"`
}

// ListContentTypes handles GET /api/v1/admin/content-types.
func (h *Handler) ListContentTypes(w http.ResponseWriter, _ *http.Request) {
	types := h.content.Builder.List()
	WriteSuccess(w, types, &Meta{Total: int64(len(types))})
}

// GetContentType handles GET /api/v1/admin/content-types/{uid}.
func (h *Handler) GetContentType(w http.ResponseWriter, r *http.Request) {
	ct, err := h.content.Builder.Get(chi.URLParam(r, "uid"))
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	WriteSuccess(w, ct, nil)
}

// CreateContentType handles POST /api/v1/admin/content-types.
func (h *Handler) CreateContentType(w http.ResponseWriter, r *http.Request) {
	var req content.TypeInput
	if !decodeJSON(w, r, &req) {
		return
	}
	ct, err := h.content.Builder.Create(r.Context(), req)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategorySchema, "Content type created", map[string]any{"uid": ct.UID})
	WriteCreated(w, ct)
}

// UpdateContentType handles PATCH /api/v1/admin/content-types/{uid}.
func (h *Handler) UpdateContentType(w http.ResponseWriter, r *http.Request) {
	var req content.TypeUpdate
	if !decodeJSON(w, r, &req) {
		return
	}
	uid := chi.URLParam(r, "uid")
	ct, err := h.content.Builder.Update(r.Context(), uid, req)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategorySchema, "Content type updated", map[string]any{"uid": uid})
	WriteSuccess(w, ct, nil)
}

// DeleteContentType handles DELETE /api/v1/admin/content-types/{uid}.
func (h *Handler) DeleteContentType(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")
	if err := h.content.Builder.Delete(r.Context(), uid); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategorySchema, "Content type deleted", map[string]any{"uid": uid})
	WriteNoContent(w)
}

// AddField handles POST /api/v1/admin/content-types/{uid}/fields.
func (h *Handler) AddField(w http.ResponseWriter, r *http.Request) {
	var req content.FieldInput
	if !decodeJSON(w, r, &req) {
		return
	}
	uid := chi.URLParam(r, "uid")
	f, err := h.content.Builder.AddField(r.Context(), uid, req)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategorySchema, "Content type field added", map[string]any{"uid": uid, "field": f.ID})
	WriteCreated(w, f)
}

// UpdateField handles PATCH /api/v1/admin/content-types/{uid}/fields/{fieldID}.
func (h *Handler) UpdateField(w http.ResponseWriter, r *http.Request) {
	var req content.FieldUpdate
	if !decodeJSON(w, r, &req) {
		return
	}
	uid, fieldID := chi.URLParam(r, "uid"), chi.URLParam(r, "fieldID")
	f, err := h.content.Builder.UpdateField(r.Context(), uid, fieldID, req)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategorySchema, "Content type field updated", map[string]any{"uid": uid, "field": fieldID})
	WriteSuccess(w, f, nil)
}

// RemoveField handles DELETE /api/v1/admin/content-types/{uid}/fields/{fieldID}.
func (h *Handler) RemoveField(w http.ResponseWriter, r *http.Request) {
	uid, fieldID := chi.URLParam(r, "uid"), chi.URLParam(r, "fieldID")
	if err := h.content.Builder.RemoveField(r.Context(), uid, fieldID); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategorySchema, "Content type field removed", map[string]any{"uid": uid, "field": fieldID})
	WriteNoContent(w)
}

// ListCollections handles GET /api/v1/admin/collections.
func (h *Handler) ListCollections(w http.ResponseWriter, _ *http.Request) {
	types := h.content.Manager.Collections()
	WriteSuccess(w, types, &Meta{Total: int64(len(types))})
}

// ListEntries handles GET /api/v1/admin/collections/{uid}/entries.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.content.Manager.Entries(chi.URLParam(r, "uid"))
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	WriteSuccess(w, entries, &Meta{Total: int64(len(entries))})
}

// GetEntry handles GET /api/v1/admin/collections/{uid}/entries/{id}.
func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.content.Manager.Entry(chi.URLParam(r, "uid"), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	WriteSuccess(w, entry, nil)
}

// CreateEntry handles POST /api/v1/admin/collections/{uid}/entries.
func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	uid := chi.URLParam(r, "uid")
	entry, err := h.content.Manager.CreateEntry(r.Context(), uid, req.Attributes)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategoryContent, "Entry created", map[string]any{"uid": uid, "id": entry.ID, "status": entry.Status})
	WriteCreated(w, entry)
}

// UpdateEntry handles PATCH /api/v1/admin/collections/{uid}/entries/{id}.
func (h *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	uid, id := chi.URLParam(r, "uid"), chi.URLParam(r, "id")
	entry, err := h.content.Manager.UpdateEntry(r.Context(), uid, id, req.Attributes)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategoryContent, "Entry updated", map[string]any{"uid": uid, "id": id})
	WriteSuccess(w, entry, nil)
}

// SetEntryStatus handles PUT /api/v1/admin/collections/{uid}/entries/{id}/status.
func (h *Handler) SetEntryStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	uid, id := chi.URLParam(r, "uid"), chi.URLParam(r, "id")
	entry, err := h.content.Manager.SetStatus(r.Context(), uid, id, req.Status)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategoryContent, "Entry status changed", map[string]any{"uid": uid, "id": id, "status": req.Status})
	WriteSuccess(w, entry, nil)
}

// DeleteEntry handles DELETE /api/v1/admin/collections/{uid}/entries/{id}.
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	uid, id := chi.URLParam(r, "uid"), chi.URLParam(r, "id")
	if err := h.content.Manager.DeleteEntry(r.Context(), uid, id); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategoryContent, "Entry deleted", map[string]any{"uid": uid, "id": id})
	WriteNoContent(w)
}

// ReorderEntries handles PUT /api/v1/admin/collections/{uid}/order.
func (h *Handler) ReorderEntries(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	uid := chi.URLParam(r, "uid")
	if err := h.content.Manager.ReorderEntries(r.Context(), uid, req.IDs); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	entries, err := h.content.Manager.Entries(uid)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategoryContent, "Entries reordered", map[string]any{"uid": uid})
	WriteSuccess(w, entries, &Meta{Total: int64(len(entries))})
}

// ListMedia handles GET /api/v1/admin/media.
func (h *Handler) ListMedia(w http.ResponseWriter, r *http.Request) {
	assets := h.content.Media.List()
	page, perPage := pageParams(r)
	total := int64(len(assets))
	start := min((page-1)*perPage, len(assets))
	end := min(start+perPage, len(assets))
	WriteSuccess(w, assets[start:end], pageMeta(total, page, perPage))
}

// GetMedia handles GET /api/v1/admin/media/{id}.
func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	asset, err := h.content.Media.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	WriteSuccess(w, asset, nil)
}

// UploadMedia handles POST /api/v1/admin/media. Assets are catalogued by
// URL; no file bytes are received.
func (h *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	var req content.UploadInput
	if !decodeJSON(w, r, &req) {
		return
	}
	asset, err := h.content.Media.Upload(r.Context(), req)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategoryMedia, "Media uploaded", map[string]any{"id": asset.ID, "url": asset.URL})
	WriteCreated(w, asset)
}

// UpdateMedia handles PATCH /api/v1/admin/media/{id}.
func (h *Handler) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	var req content.MediaUpdate
	if !decodeJSON(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "id")
	asset, err := h.content.Media.Update(r.Context(), id, req)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategoryMedia, "Media updated", map[string]any{"id": id})
	WriteSuccess(w, asset, nil)
}

// RemoveMedia handles DELETE /api/v1/admin/media/{id}.
func (h *Handler) RemoveMedia(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.content.Media.Remove(r.Context(), id); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategoryMedia, "Media removed", map[string]any{"id": id})
	WriteNoContent(w)
}
