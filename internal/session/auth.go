// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"context"
	"strings"
	"time"

	"github.com/olegiv/funteco-cms/internal/auth"
	"github.com/olegiv/funteco-cms/internal/model"
)

// Credentials are the single collaborator account of the admin panel.
// Password may be an argon2id hash.
type Credentials struct {
	Email    string
	Password string
}

// Result is a successful authentication.
type Result struct {
	Token  string
	Email  string
	MaxAge time.Duration
}

// Authenticator checks credentials and opens sessions.
type Authenticator struct {
	creds    Credentials
	sessions *Store
}

// NewAuthenticator creates an Authenticator for creds.
func NewAuthenticator(creds Credentials, sessions *Store) *Authenticator {
	return &Authenticator{creds: creds, sessions: sessions}
}

func normaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Authenticate opens a session when email matches (ignoring case and
// surrounding spaces) and password matches exactly, or verifies against
// the configured hash.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string, remember bool) (Result, error) {
	if normaliseEmail(email) != normaliseEmail(a.creds.Email) || !auth.Matches(password, a.creds.Password) {
		return Result{}, model.ErrInvalidCredentials
	}
	token, maxAge, err := a.sessions.Create(ctx, a.creds.Email, remember)
	if err != nil {
		return Result{}, err
	}
	return Result{Token: token, Email: a.creds.Email, MaxAge: maxAge}, nil
}

// Sessions returns the underlying session store.
func (a *Authenticator) Sessions() *Store {
	return a.sessions
}
