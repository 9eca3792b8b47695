// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session keeps the collaborator sessions of the admin panel:
// opaque tokens mapped to a record in a TTL cache (memory or Redis).
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/olegiv/funteco-cms/internal/cache"
)

// CookieName is the name of the session cookie.
const CookieName = "admin_session"

// Default session lifetimes.
const (
	DefaultTTL         = 4 * time.Hour
	DefaultExtendedTTL = 30 * 24 * time.Hour
)

// Record is the data kept for an active session.
type Record struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Remember  bool      `json:"remember"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store maps session tokens to records.
type Store struct {
	records     *cache.TypedCache[Record]
	ttl         time.Duration
	extendedTTL time.Duration
	now         func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the lifetime of normal and "remember me" sessions.
func WithTTL(ttl, extended time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
		if extended > 0 {
			s.extendedTTL = extended
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates a session store on top of c.
func NewStore(c cache.Cache, opts ...Option) *Store {
	s := &Store{
		ttl:         DefaultTTL,
		extendedTTL: DefaultExtendedTTL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.records = cache.NewTypedCache[Record](c, s.ttl)
	return s
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Create starts a session for email and returns its token and lifetime.
func (s *Store) Create(ctx context.Context, email string, remember bool) (token string, maxAge time.Duration, err error) {
	token, err = newToken()
	if err != nil {
		return "", 0, err
	}
	maxAge = s.ttl
	if remember {
		maxAge = s.extendedTTL
	}
	now := s.now().UTC()
	rec := Record{
		Token:     token,
		Email:     email,
		Remember:  remember,
		CreatedAt: now,
		ExpiresAt: now.Add(maxAge),
	}
	if err := s.records.SetWithTTL(ctx, token, &rec, maxAge); err != nil {
		return "", 0, fmt.Errorf("storing session: %w", err)
	}
	return token, maxAge, nil
}

// Get returns the record of an active session.
func (s *Store) Get(ctx context.Context, token string) (Record, bool, error) {
	if token == "" {
		return Record{}, false, nil
	}
	rec, ok, err := s.records.Get(ctx, token)
	if err != nil || !ok {
		return Record{}, false, err
	}
	if !s.now().Before(rec.ExpiresAt) {
		_ = s.records.Delete(ctx, token)
		return Record{}, false, nil
	}
	return *rec, true, nil
}

// Validate reports whether token belongs to an active session.
func (s *Store) Validate(ctx context.Context, token string) bool {
	_, ok, err := s.Get(ctx, token)
	return err == nil && ok
}

// Revoke ends a session. Unknown tokens are ignored.
func (s *Store) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.records.Delete(ctx, token)
}

// Clear ends every session.
func (s *Store) Clear(ctx context.Context) error {
	return s.records.Clear(ctx)
}

// CookieFor builds the session cookie for token.
func CookieFor(token string, maxAge time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie returns a cookie that deletes the session cookie.
func ClearCookie(secure bool) *http.Cookie {
	c := CookieFor("", 0, secure)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}
