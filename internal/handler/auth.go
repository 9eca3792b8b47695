// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the HTML handlers of the collaborator panel.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"mime"
	"net/http"
	"strings"

	"github.com/olegiv/funteco-cms/internal/middleware"
	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/render"
	"github.com/olegiv/funteco-cms/internal/service"
	"github.com/olegiv/funteco-cms/internal/session"
)

// Redirect targets.
const (
	redirectAdmin            = "/admin"
	redirectLogin            = middleware.LoginPath
	redirectLoginCredentials = middleware.LoginPath + "?error=credentials"
)

// maxFormBytes caps the size of login request bodies.
const maxFormBytes = 64 << 10

// AuthHandler handles the collaborator login and logout.
type AuthHandler struct {
	renderer        *render.Renderer
	authenticator   *session.Authenticator
	eventService    *service.EventService
	loginProtection *middleware.LoginProtection
	secureCookies   bool
	logger          *slog.Logger
}

// AuthConfig holds the dependencies of an AuthHandler. EventService and
// LoginProtection are optional.
type AuthConfig struct {
	Renderer        *render.Renderer
	Authenticator   *session.Authenticator
	EventService    *service.EventService
	LoginProtection *middleware.LoginProtection
	SecureCookies   bool
	Logger          *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg AuthConfig) *AuthHandler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		renderer:        cfg.Renderer,
		authenticator:   cfg.Authenticator,
		eventService:    cfg.EventService,
		loginProtection: cfg.LoginProtection,
		secureCookies:   cfg.SecureCookies,
		logger:          logger,
	}
}

// LoginForm renders the login page.
// GET /admin/login
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	data := render.TemplateData{Title: "Ingresar"}
	if r.URL.Query().Get("error") == "credentials" {
		data.Flash = model.ErrInvalidCredentials.Message
		data.FlashType = "error"
	}
	if err := h.renderer.Render(w, http.StatusOK, "auth/login", data); err != nil {
		h.logger.Error("render error", "template", "auth/login", "error", err)
		http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
	}
}

type loginRequest struct {
	email    string
	password string
	remember bool
}

var errUnsupportedMediaType = errors.New("unsupported content type")

// parseLoginRequest reads a form or JSON login body.
func parseLoginRequest(w http.ResponseWriter, r *http.Request) (loginRequest, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return loginRequest{}, errUnsupportedMediaType
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	switch mediaType {
	case "application/json":
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			Remember any    `json:"remember"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return loginRequest{}, err
		}
		return loginRequest{email: body.Email, password: body.Password, remember: rememberValue(body.Remember)}, nil
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if mediaType == "multipart/form-data" {
			err = r.ParseMultipartForm(maxFormBytes)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return loginRequest{}, err
		}
		return loginRequest{
			email:    r.PostFormValue("email"),
			password: r.PostFormValue("password"),
			remember: rememberValue(r.PostFormValue("remember")),
		}, nil
	default:
		return loginRequest{}, errUnsupportedMediaType
	}
}

// rememberValue accepts true and the checkbox value "on".
func rememberValue(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		return s == "on" || s == "true"
	default:
		return false
	}
}

// CreateSession handles the login form submission.
// POST /admin/sessions
func (h *AuthHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	req, err := parseLoginRequest(w, r)
	if err != nil {
		if errors.Is(err, errUnsupportedMediaType) {
			http.Error(w, "Tipo de contenido no soportado", http.StatusUnsupportedMediaType)
			return
		}
		http.Error(w, "Solicitud inválida", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	meta := map[string]any{"email": req.email, "ip": r.RemoteAddr}

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsAccountLocked(req.email); locked {
			h.logEvent(r, model.EventLevelWarning, "Login attempt on locked account", withDuration(meta, remaining.String()))
			h.rejectLogin(w, r)
			return
		}
	}

	result, err := h.authenticator.Authenticate(ctx, req.email, req.password, req.remember)
	if err != nil {
		if !model.IsCredentials(err) {
			h.logger.Error("session creation failed", "category", model.EventCategorySession, "error", err)
			http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
			return
		}
		h.logEvent(r, model.EventLevelWarning, "Login failed: invalid credentials", meta)
		if h.loginProtection != nil {
			if locked, lockDuration := h.loginProtection.RecordFailedAttempt(req.email); locked {
				h.logEvent(r, model.EventLevelWarning, "Account locked due to failed attempts", withDuration(meta, lockDuration.String()))
			}
		}
		h.rejectLogin(w, r)
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(req.email)
	}
	http.SetCookie(w, session.CookieFor(result.Token, result.MaxAge, h.secureCookies))
	h.logger.Info("collaborator logged in", "category", model.EventCategoryAuth, "email", result.Email, "remember", req.remember)
	h.logEvent(r, model.EventLevelInfo, "Collaborator logged in", map[string]any{"email": result.Email, "remember": req.remember})
	http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
}

// rejectLogin clears any session cookie and sends the browser back to the
// login page. It never says whether the account exists.
func (h *AuthHandler) rejectLogin(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, session.ClearCookie(h.secureCookies))
	http.Redirect(w, r, redirectLoginCredentials, http.StatusSeeOther)
}

// Logout ends the session of the request.
// POST /admin/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if err := h.authenticator.Sessions().Revoke(r.Context(), cookie.Value); err != nil {
			h.logger.Error("session revoke failed", "category", model.EventCategorySession, "error", err)
		}
		h.logEvent(r, model.EventLevelInfo, "Collaborator logged out", nil)
	}
	http.SetCookie(w, session.ClearCookie(h.secureCookies))
	http.Redirect(w, r, redirectLogin, http.StatusSeeOther)
}

func (h *AuthHandler) logEvent(r *http.Request, level, message string, metadata map[string]any) {
	if h.eventService == nil {
		return
	}
	_ = h.eventService.LogAuthEvent(r.Context(), level, message, "", metadata)
}

func withDuration(meta map[string]any, d string) map[string]any {
	out := maps.Clone(meta)
	out["duration"] = d
	return out
}
