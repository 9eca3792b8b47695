// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/render"
)

// SectionResponse is a published section as served to the site.
type SectionResponse struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	HTML      string    `json:"html"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListSections handles GET /api/v1/sections. Drafts are never listed.
func (h *Handler) ListSections(w http.ResponseWriter, _ *http.Request) {
	out := make([]SectionResponse, 0)
	for _, s := range h.admin.Sections() {
		if s.Status != model.StatusPublished {
			continue
		}
		out = append(out, SectionResponse{
			Slug:      s.Slug,
			Title:     s.Title,
			Content:   s.Content,
			HTML:      render.RichText(s.Content),
			UpdatedAt: s.UpdatedAt,
		})
	}
	WriteSuccess(w, out, &Meta{Total: int64(len(out))})
}

// ListEvents handles GET /api/v1/events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events := h.site.GetEvents(r.Context())
	WriteSuccess(w, events, &Meta{Total: int64(len(events))})
}

// GetEvent handles GET /api/v1/events/{slug}.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, ok := h.site.GetEventBySlug(r.Context(), chi.URLParam(r, "slug"))
	if !ok {
		WriteNotFound(w, "evento no encontrado")
		return
	}
	WriteSuccess(w, event, nil)
}

// ListTeamMembers handles GET /api/v1/team-members.
func (h *Handler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	members := h.site.GetTeamMembers(r.Context())
	WriteSuccess(w, members, &Meta{Total: int64(len(members))})
}

// GetTeamMember handles GET /api/v1/team-members/{slug}.
func (h *Handler) GetTeamMember(w http.ResponseWriter, r *http.Request) {
	member, ok := h.site.GetTeamMemberBySlug(r.Context(), chi.URLParam(r, "slug"))
	if !ok {
		WriteNotFound(w, "integrante no encontrado")
		return
	}
	WriteSuccess(w, member, nil)
}
