// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"

	"github.com/olegiv/funteco-cms/internal/session"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeySession holds the *session.Record of the request.
const ContextKeySession ContextKey = "session"

// LoginPath is where unauthenticated page requests are sent.
const LoginPath = "/admin/login"

func loadSession(sessions *session.Store, r *http.Request) (*session.Record, bool) {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	rec, ok, err := sessions.Get(r.Context(), cookie.Value)
	if err != nil || !ok {
		return nil, false
	}
	return &rec, true
}

// RequireSession redirects to the login page unless the request carries a
// valid admin_session cookie.
func RequireSession(sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec, ok := loadSession(sessions, r)
			if !ok {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), rec)))
		})
	}
}

// RequireSessionAPI is RequireSession for JSON routes: it answers 401.
func RequireSessionAPI(sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec, ok := loadSession(sessions, r)
			if !ok {
				WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "sesión no válida o expirada", nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), rec)))
		})
	}
}

func withSession(ctx context.Context, rec *session.Record) context.Context {
	return context.WithValue(ctx, ContextKeySession, rec)
}

// GetSession returns the session loaded by RequireSession, or nil.
func GetSession(r *http.Request) *session.Record {
	rec, _ := r.Context().Value(ContextKeySession).(*session.Record)
	return rec
}
