// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package admin implements the demo administration core: accounts with
// role capabilities, the login pointer, and the governed sections, team
// members and events. Everything lives in one persisted document.
package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/olegiv/funteco-cms/internal/hooks"
	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/state"
	"github.com/olegiv/funteco-cms/internal/storage"
)

// Store is the admin document plus the operations that mutate it.
type Store struct {
	doc    *state.Store[State]
	logger *slog.Logger
	hooks  *hooks.Registry
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithHooks shares a hook registry with other stores.
func WithHooks(r *hooks.Registry) Option {
	return func(s *Store) {
		if r != nil {
			s.hooks = r
		}
	}
}

// Open loads the admin document from st, seeding it when absent.
func Open(ctx context.Context, st storage.Storage, opts ...Option) (*Store, error) {
	s := &Store{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.hooks == nil {
		s.hooks = hooks.NewRegistry(s.logger)
	}

	doc, err := state.Open(ctx, st, StorageKey, defaultState, state.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}
	s.doc = doc
	return s, nil
}

// State returns a deep copy of the whole document.
func (s *Store) State() State {
	return s.doc.Snapshot()
}

// Subscribe registers fn to run after every successful mutation.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	return s.doc.Subscribe(fn)
}

// Reload re-reads the document from storage.
func (s *Store) Reload(ctx context.Context) error {
	return s.doc.Reload(ctx)
}

// Hooks returns the registry the store emits change hooks on.
func (s *Store) Hooks() *hooks.Registry {
	return s.hooks
}

// CurrentUser returns the logged-in user.
func (s *Store) CurrentUser() (model.User, bool) {
	var (
		user model.User
		ok   bool
	)
	s.doc.View(func(st State) {
		user, ok = st.currentUser()
	})
	return user, ok
}

// Login points the session at the user with exactly this username and
// password.
func (s *Store) Login(ctx context.Context, username, password string) (model.User, error) {
	var user model.User
	err := s.doc.Update(ctx, func(st *State) error {
		for _, u := range st.Users {
			if u.Username == username && u.Password == password {
				user = u
				st.CurrentUserID = u.ID
				return nil
			}
		}
		return model.ErrInvalidCredentials
	})
	if err != nil {
		s.logger.Warn("admin login failed", "category", model.EventCategoryAuth, "username", username)
		return model.User{}, err
	}
	s.logger.Info("admin login", "category", model.EventCategoryAuth, "user_id", user.ID)
	return user, nil
}

// Logout clears the session pointer.
func (s *Store) Logout(ctx context.Context) error {
	return s.doc.Update(ctx, func(st *State) error {
		st.CurrentUserID = ""
		return nil
	})
}

// CanManageUsers reports whether the current user may manage accounts.
func (s *Store) CanManageUsers() bool {
	user, ok := s.CurrentUser()
	return ok && user.Capabilities().ManageUsers
}

// CanPublish reports whether the current user may publish content.
func (s *Store) CanPublish() bool {
	user, ok := s.CurrentUser()
	return ok && user.Capabilities().Publish
}

// mutate runs fn with the current user, or nil when nobody is logged in.
func (s *Store) mutate(ctx context.Context, fn func(st *State, user *model.User) error) error {
	return s.doc.Update(ctx, func(st *State) error {
		var current *model.User
		if u, ok := st.currentUser(); ok {
			current = &u
		}
		return fn(st, current)
	})
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

func (s *Store) emit(ctx context.Context, name string, data any) {
	if err := s.hooks.Call(ctx, name, data); err != nil {
		s.logger.Error("admin hook failed", "category", model.EventCategorySystem, "hook", name, "error", err)
	}
}

func (s *Store) warnDowngrade(user model.User, n Noun) {
	s.logger.Warn("role cannot publish, saving as draft",
		"category", model.EventCategoryContent, "role", user.Role, "user_id", user.ID, "collection", n.Plural)
}

// referenceImage announces an image URL used by team or event content.
func (s *Store) referenceImage(ctx context.Context, url, name string, author model.User) {
	if url == "" {
		return
	}
	s.emit(ctx, hooks.HookMediaReferenced, hooks.MediaReference{URL: url, Name: name, Author: author.Username})
}
