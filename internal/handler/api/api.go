// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the JSON handlers of the public site and the admin
// panel.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/funteco-cms/internal/admin"
	"github.com/olegiv/funteco-cms/internal/content"
	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/scheduler"
	"github.com/olegiv/funteco-cms/internal/service"
)

// SiteContent serves the public events and team listings. remote.Source
// implements it.
type SiteContent interface {
	GetEvents(ctx context.Context) []model.Event
	GetEventBySlug(ctx context.Context, slug string) (model.Event, bool)
	GetTeamMembers(ctx context.Context) []model.TeamMember
	GetTeamMemberBySlug(ctx context.Context, slug string) (model.TeamMember, bool)
}

// Config holds the dependencies of a Handler. Events and Jobs are optional.
type Config struct {
	Admin   *admin.Store
	Content *content.Store
	Site    SiteContent
	Events  *service.EventService
	Jobs    *scheduler.Registry
	Logger  *slog.Logger
	Version string
}

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	admin   *admin.Store
	content *content.Store
	site    SiteContent
	events  *service.EventService
	jobs    *scheduler.Registry
	logger  *slog.Logger
	version string
}

// NewHandler creates a new API handler.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	return &Handler{
		admin:   cfg.Admin,
		content: cfg.Content,
		site:    cfg.Site,
		events:  cfg.Events,
		jobs:    cfg.Jobs,
		logger:  logger,
		version: version,
	}
}

// RegisterPublic mounts the unauthenticated routes on r.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/status", h.Status)
	r.Get("/sections", h.ListSections)
	r.Get("/events", h.ListEvents)
	r.Get("/events/{slug}", h.GetEvent)
	r.Get("/team-members", h.ListTeamMembers)
	r.Get("/team-members/{slug}", h.GetTeamMember)
}

// RegisterAdmin mounts the admin panel routes on r. Callers wrap r with
// session and CSRF middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/me", h.Me)

	r.Get("/roles", h.ListRoles)
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Patch("/{id}", h.UpdateUser)
		r.Put("/{id}/role", h.AssignRole)
		r.Delete("/{id}", h.DeleteUser)
	})

	r.Route("/content-types", func(r chi.Router) {
		r.Get("/", h.ListContentTypes)
		r.Post("/", h.CreateContentType)
		r.Get("/{uid}", h.GetContentType)
		r.Patch("/{uid}", h.UpdateContentType)
		r.Delete("/{uid}", h.DeleteContentType)
		r.Post("/{uid}/fields", h.AddField)
		r.Patch("/{uid}/fields/{fieldID}", h.UpdateField)
		r.Delete("/{uid}/fields/{fieldID}", h.RemoveField)
	})

	r.Route("/collections", func(r chi.Router) {
		r.Get("/", h.ListCollections)
		r.Get("/{uid}/entries", h.ListEntries)
		r.Post("/{uid}/entries", h.CreateEntry)
		r.Put("/{uid}/order", h.ReorderEntries)
		r.Get("/{uid}/entries/{id}", h.GetEntry)
		r.Patch("/{uid}/entries/{id}", h.UpdateEntry)
		r.Put("/{uid}/entries/{id}/status", h.SetEntryStatus)
		r.Delete("/{uid}/entries/{id}", h.DeleteEntry)
	})

	r.Route("/media", func(r chi.Router) {
		r.Get("/", h.ListMedia)
		r.Post("/", h.UploadMedia)
		r.Get("/{id}", h.GetMedia)
		r.Patch("/{id}", h.UpdateMedia)
		r.Delete("/{id}", h.RemoveMedia)
	})

	r.Get("/event-log", h.ListEventLog)

	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.ListJobs)
		r.Post("/{name}/run", h.TriggerJob)
		r.Put("/{name}/schedule", h.UpdateJobSchedule)
		r.Delete("/{name}/schedule", h.ResetJobSchedule)
	})
}

// Response is the standard API response wrapper.
type Response struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta contains pagination and other metadata.
type Meta struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page,omitempty"`
	PerPage int   `json:"per_page,omitempty"`
	Pages   int   `json:"pages,omitempty"`
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any, meta *Meta) {
	WriteJSON(w, http.StatusOK, Response{Data: data, Meta: meta})
}

// WriteCreated writes a 201 Created JSON response.
func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Response{Data: data})
}

// WriteNoContent writes a 204 response.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message, details)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, model.KindNotFound.String(), message, nil)
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, "unauthorized", message, nil)
}

// WriteForbidden writes a 403 Forbidden response.
func WriteForbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, model.KindForbidden.String(), message, nil)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message, nil)
}

// WriteValidationError writes a 422 Unprocessable Entity response with field errors.
func WriteValidationError(w http.ResponseWriter, message string, fieldErrors map[string]string) {
	WriteError(w, http.StatusUnprocessableEntity, model.KindValidation.String(), message, fieldErrors)
}

// writeStoreError maps a store error to its HTTP status. Errors that are
// not a *model.Error are logged and reported as 500.
func (h *Handler) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var e *model.Error
	if !errors.As(err, &e) {
		h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		WriteInternalError(w, "error interno del servidor")
		return
	}
	switch e.Kind {
	case model.KindForbidden:
		WriteForbidden(w, e.Message)
	case model.KindNotFound:
		WriteNotFound(w, e.Message)
	case model.KindValidation:
		WriteValidationError(w, e.Message, nil)
	case model.KindCredentials:
		WriteError(w, http.StatusUnauthorized, e.Kind.String(), e.Message, nil)
	default:
		WriteInternalError(w, e.Message)
	}
}

// record writes a successful mutation to the event log, attributed to the
// current admin user.
func (h *Handler) record(ctx context.Context, category, message string, metadata map[string]any) {
	if h.events == nil {
		return
	}
	var userID string
	if u, ok := h.admin.CurrentUser(); ok {
		userID = u.ID
	}
	if err := h.events.LogInfo(ctx, category, message, userID, metadata); err != nil {
		h.logger.Error("failed to record event", "message", message, "error", err)
	}
}

// StatusResponse contains API status information.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Status returns the API status.
func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, StatusResponse{
		Status:  "ok",
		Version: h.version,
	}, nil)
}
