// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/scheduler"
)

var eventCategories = map[string]bool{
	model.EventCategoryAuth:    true,
	model.EventCategoryUser:    true,
	model.EventCategoryContent: true,
	model.EventCategorySchema:  true,
	model.EventCategoryMedia:   true,
	model.EventCategorySession: true,
	model.EventCategorySystem:  true,
}

// ListEventLog handles GET /api/v1/admin/event-log. It accepts an optional
// category filter plus page and per_page.
func (h *Handler) ListEventLog(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		WriteSuccess(w, []model.LogEntry{}, &Meta{})
		return
	}
	category := r.URL.Query().Get("category")
	if category != "" && !eventCategories[category] {
		WriteBadRequest(w, "categoría desconocida", map[string]string{"category": category})
		return
	}

	page, perPage := pageParams(r)
	entries, err := h.events.ListRecent(r.Context(), category, perPage, (page-1)*perPage)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	var meta *Meta
	if category == "" {
		total, err := h.events.Count(r.Context())
		if err != nil {
			h.writeStoreError(w, r, err)
			return
		}
		meta = pageMeta(total, page, perPage)
	} else {
		meta = &Meta{Total: int64(len(entries)), Page: page, PerPage: perPage}
	}
	WriteSuccess(w, entries, meta)
}

type scheduleRequest struct {
	Schedule string `json:"schedule" validate:"required"`
}

// ListJobs handles GET /api/v1/admin/jobs.
func (h *Handler) ListJobs(w http.ResponseWriter, _ *http.Request) {
	if h.jobs == nil {
		WriteSuccess(w, []scheduler.JobInfo{}, &Meta{})
		return
	}
	jobs := h.jobs.List()
	WriteSuccess(w, jobs, &Meta{Total: int64(len(jobs))})
}

// TriggerJob handles POST /api/v1/admin/jobs/{name}/run. The job runs
// in the request goroutine.
func (h *Handler) TriggerJob(w http.ResponseWriter, r *http.Request) {
	if !h.requireJobAccess(w) {
		return
	}
	name := chi.URLParam(r, "name")
	if err := h.jobs.TriggerNow(name); err != nil {
		h.writeJobError(w, r, name, err)
		return
	}
	h.record(r.Context(), model.EventCategorySystem, "Scheduled job triggered", map[string]any{"job": name})
	WriteSuccess(w, map[string]string{"job": name, "status": "completed"}, nil)
}

// UpdateJobSchedule handles PUT /api/v1/admin/jobs/{name}/schedule.
func (h *Handler) UpdateJobSchedule(w http.ResponseWriter, r *http.Request) {
	if !h.requireJobAccess(w) {
		return
	}
	var req scheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	name := chi.URLParam(r, "name")
	if err := h.jobs.UpdateSchedule(name, req.Schedule); err != nil {
		h.writeJobError(w, r, name, err)
		return
	}
	h.record(r.Context(), model.EventCategorySystem, "Scheduled job rescheduled", map[string]any{"job": name, "schedule": req.Schedule})
	h.ListJobs(w, r)
}

// ResetJobSchedule handles DELETE /api/v1/admin/jobs/{name}/schedule.
func (h *Handler) ResetJobSchedule(w http.ResponseWriter, r *http.Request) {
	if !h.requireJobAccess(w) {
		return
	}
	name := chi.URLParam(r, "name")
	if err := h.jobs.ResetSchedule(name); err != nil {
		h.writeJobError(w, r, name, err)
		return
	}
	h.record(r.Context(), model.EventCategorySystem, "Scheduled job schedule reset", map[string]any{"job": name})
	h.ListJobs(w, r)
}

// requireJobAccess allows job control to accounts that may manage users.
func (h *Handler) requireJobAccess(w http.ResponseWriter) bool {
	if !h.admin.CanManageUsers() {
		WriteForbidden(w, "sin permisos para gestionar tareas programadas")
		return false
	}
	if h.jobs == nil {
		WriteNotFound(w, "tarea no encontrada")
		return false
	}
	return true
}

func (h *Handler) writeJobError(w http.ResponseWriter, r *http.Request, name string, err error) {
	if errors.Is(err, scheduler.ErrJobNotFound) {
		WriteNotFound(w, "tarea no encontrada")
		return
	}
	h.logger.Warn("scheduled job request failed", "category", model.EventCategorySystem, "job", name, "error", err)
	if r.Method == http.MethodPut {
		WriteValidationError(w, "expresión cron inválida", map[string]string{"schedule": err.Error()})
		return
	}
	WriteInternalError(w, "la tarea falló")
}
