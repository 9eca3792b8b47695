// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/olegiv/funteco-cms/internal/middleware"
	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/render"
	"github.com/olegiv/funteco-cms/internal/session"
)

// CollectionLister lists the content collections shown on the dashboard.
// content.Manager implements it.
type CollectionLister interface {
	Collections() []model.ContentType
}

// DashboardHandler renders the panel home page.
type DashboardHandler struct {
	renderer    *render.Renderer
	collections CollectionLister
	logger      *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(renderer *render.Renderer, collections CollectionLister, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{renderer: renderer, collections: collections, logger: logger}
}

// DashboardData is the template data of admin/dashboard.
type DashboardData struct {
	session.Record
	Collections []model.ContentType
}

// Dashboard renders the panel home for the session of the request.
// GET /admin
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	rec := middleware.GetSession(r)
	if rec == nil {
		http.Redirect(w, r, redirectLogin, http.StatusSeeOther)
		return
	}
	data := render.TemplateData{
		Title: "Panel",
		Data: DashboardData{
			Record:      *rec,
			Collections: h.collections.Collections(),
		},
	}
	if err := h.renderer.Render(w, http.StatusOK, "admin/dashboard", data); err != nil {
		h.logger.Error("render error", "template", "admin/dashboard", "error", err)
		http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
	}
}
