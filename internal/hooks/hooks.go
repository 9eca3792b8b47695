// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package hooks lets one store react to changes committed by another,
// for example reassigning custom entries when a user is deleted.
package hooks

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Hook names.
const (
	// HookUserDeleted fires after a user was removed. Data is UserDeleted.
	HookUserDeleted = "user.after_delete"
	// HookMediaReferenced fires when content points at an image URL.
	// Data is MediaReference.
	HookMediaReferenced = "media.referenced"
)

// UserDeleted is the payload of HookUserDeleted.
type UserDeleted struct {
	UserID string // removed account
	HeirID string // account that inherits its content
}

// MediaReference is the payload of HookMediaReferenced.
type MediaReference struct {
	URL    string
	Name   string
	Author string // username of the acting user
}

// Func handles one hook call.
type Func func(ctx context.Context, data any) error

// Handler wraps a Func with metadata.
type Handler struct {
	Name     string // for logs
	Owner    string // component that registered the handler
	Priority int    // lower runs first
	Fn       Func
}

// Registry manages hook registration and execution.
type Registry struct {
	mu     sync.RWMutex
	hooks  map[string][]Handler
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		hooks:  make(map[string][]Handler),
		logger: logger,
	}
}

// Register adds a handler for name, keeping handlers ordered by priority.
func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	handlers := append(r.hooks[name], h)
	slices.SortStableFunc(handlers, func(a, b Handler) int { return a.Priority - b.Priority })
	r.hooks[name] = handlers

	r.logger.Debug("hook registered", "hook", name, "handler", h.Name, "owner", h.Owner)
}

// RegisterFunc registers fn with default priority.
func (r *Registry) RegisterFunc(name, handlerName, owner string, fn Func) {
	r.Register(name, Handler{Name: handlerName, Owner: owner, Fn: fn})
}

// Call runs every handler for name in priority order. The first failing
// handler stops the chain and its error is returned.
func (r *Registry) Call(ctx context.Context, name string, data any) error {
	r.mu.RLock()
	handlers := slices.Clone(r.hooks[name])
	r.mu.RUnlock()

	for _, h := range handlers {
		if err := h.Fn(ctx, data); err != nil {
			r.logger.Error("hook handler error", "hook", name, "handler", h.Name, "owner", h.Owner, "error", err)
			return fmt.Errorf("hook %s handler %s: %w", name, h.Name, err)
		}
	}
	return nil
}

// HandlerCount returns the number of handlers registered for name.
func (r *Registry) HandlerCount(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hooks[name])
}

// Unregister removes the handlers owner registered for name.
func (r *Registry) Unregister(name, owner string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks[name] = slices.DeleteFunc(r.hooks[name], func(h Handler) bool { return h.Owner == owner })
}
