// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/funteco-cms/internal/admin"
	"github.com/olegiv/funteco-cms/internal/model"
)

// UserResponse is an account without its password.
type UserResponse struct {
	ID           string             `json:"id"`
	Username     string             `json:"username"`
	Role         model.Role         `json:"role"`
	Capabilities model.Capabilities `json:"capabilities"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func toUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Role:         u.Role,
		Capabilities: u.Capabilities(),
		CreatedAt:    u.CreatedAt,
	}
}

// RoleResponse describes a role and what it may do.
type RoleResponse struct {
	Role         model.Role         `json:"role"`
	Capabilities model.Capabilities `json:"capabilities"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Role and account rules are checked by the store, after the
// permission check.
type roleRequest struct {
	Role model.Role `json:"role"`
}

// Login handles POST /api/v1/admin/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.admin.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategoryAuth, "Admin user logged in", map[string]any{"username": user.Username})
	WriteSuccess(w, toUserResponse(user), nil)
}

// Logout handles POST /api/v1/admin/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := h.admin.CurrentUser()
	if err := h.admin.Logout(r.Context()); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	if ok && h.events != nil {
		_ = h.events.LogAuthEvent(r.Context(), model.EventLevelInfo, "Admin user logged out", user.ID, nil)
	}
	WriteNoContent(w)
}

// Me handles GET /api/v1/admin/me.
func (h *Handler) Me(w http.ResponseWriter, _ *http.Request) {
	user, ok := h.admin.CurrentUser()
	if !ok {
		WriteUnauthorized(w, "ninguna cuenta ha iniciado sesión")
		return
	}
	WriteSuccess(w, toUserResponse(user), nil)
}

// ListRoles handles GET /api/v1/admin/roles.
func (h *Handler) ListRoles(w http.ResponseWriter, _ *http.Request) {
	roles := h.content.Users.Roles()
	out := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		out = append(out, RoleResponse{Role: role, Capabilities: role.Capabilities()})
	}
	WriteSuccess(w, out, nil)
}

// ListUsers handles GET /api/v1/admin/users.
func (h *Handler) ListUsers(w http.ResponseWriter, _ *http.Request) {
	users := h.content.Users.List()
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	WriteSuccess(w, out, &Meta{Total: int64(len(out))})
}

// CreateUser handles POST /api/v1/admin/users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req admin.NewUser
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.content.Users.Create(r.Context(), req)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategoryUser, "User created", map[string]any{"user_id": user.ID, "role": user.Role})
	WriteCreated(w, toUserResponse(user))
}

// UpdateUser handles PATCH /api/v1/admin/users/{id}.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req admin.UserUpdate
	if !decodeJSON(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "id")
	user, err := h.content.Users.Update(r.Context(), id, req)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategoryUser, "User updated", map[string]any{"user_id": id})
	WriteSuccess(w, toUserResponse(user), nil)
}

// AssignRole handles PUT /api/v1/admin/users/{id}/role.
func (h *Handler) AssignRole(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "id")
	user, err := h.content.Users.AssignRole(r.Context(), id, req.Role)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategoryUser, "User role assigned", map[string]any{"user_id": id, "role": req.Role})
	WriteSuccess(w, toUserResponse(user), nil)
}

// DeleteUser handles DELETE /api/v1/admin/users/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.content.Users.Delete(r.Context(), id); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.record(r.Context(), model.EventCategoryUser, "User deleted", map[string]any{"user_id": id})
	WriteNoContent(w)
}
