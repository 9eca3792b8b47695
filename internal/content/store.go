// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content is the dynamic content layer on top of the admin store:
// a schema registry of content types, a generic entry manager that also
// fronts the built-in collections, a media catalogue and a users module.
package content

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/funteco-cms/internal/admin"
	"github.com/olegiv/funteco-cms/internal/hooks"
	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/state"
	"github.com/olegiv/funteco-cms/internal/storage"
)

const hookOwner = "content"

type core struct {
	doc    *state.Store[State]
	admin  *admin.Store
	logger *slog.Logger
	now    func() time.Time
}

// Store bundles the content modules. They share one persisted document
// and the identity of the admin store.
type Store struct {
	core *core

	Builder *Builder
	Manager *Manager
	Media   *MediaLibrary
	Users   *Users
}

// Option configures a Store.
type Option func(*core)

// WithLogger sets the store logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *core) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *core) {
		if now != nil {
			c.now = now
		}
	}
}

// Open loads the module document from st and subscribes to the hooks of
// adm: deleted users hand their entries to the deleting user, and images
// used by team members or events are catalogued.
func Open(ctx context.Context, st storage.Storage, adm *admin.Store, opts ...Option) (*Store, error) {
	c := &core{
		admin:  adm,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	defaults := func() State { return defaultState(adm.State()) }
	doc, err := state.Open(ctx, st, StorageKey, defaults, state.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}
	c.doc = doc
	if err := c.adoptOrphans(ctx); err != nil {
		return nil, err
	}

	s := &Store{
		core:    c,
		Builder: &Builder{c},
		Manager: &Manager{c},
		Media:   &MediaLibrary{c},
		Users:   &Users{c},
	}

	r := adm.Hooks()
	r.Unregister(hooks.HookUserDeleted, hookOwner)
	r.Unregister(hooks.HookMediaReferenced, hookOwner)
	r.RegisterFunc(hooks.HookUserDeleted, "reassign-entries", hookOwner, c.onUserDeleted)
	r.RegisterFunc(hooks.HookMediaReferenced, "register-media", hookOwner, c.onMediaReferenced)
	return s, nil
}

// State returns a deep copy of the module document.
func (s *Store) State() State {
	return s.core.doc.Snapshot()
}

// Subscribe registers fn to run after every successful mutation.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	return s.core.doc.Subscribe(fn)
}

// Reload re-reads the module document from storage.
func (s *Store) Reload(ctx context.Context) error {
	if err := s.core.doc.Reload(ctx); err != nil {
		return err
	}
	return s.core.adoptOrphans(ctx)
}

func (c *core) currentUser() *model.User {
	if u, ok := c.admin.CurrentUser(); ok {
		return &u
	}
	return nil
}

func (c *core) timestamp() time.Time {
	return c.now().UTC()
}

func (c *core) onUserDeleted(ctx context.Context, data any) error {
	ev, ok := data.(hooks.UserDeleted)
	if !ok {
		return fmt.Errorf("unexpected payload %T", data)
	}
	return c.doc.Update(ctx, func(st *State) error {
		for _, entries := range st.CustomCollections {
			for i := range entries {
				if entries[i].OwnerID == ev.UserID {
					entries[i].OwnerID = ev.HeirID
				}
			}
		}
		return nil
	})
}

// adoptOrphans hands custom entries whose owner no longer exists to the
// fallback owner of the admin document. It only writes when something
// changes.
func (c *core) adoptOrphans(ctx context.Context) error {
	adm := c.admin.State()
	heir := adm.FallbackOwner()
	if heir == "" {
		return nil
	}
	orphaned := false
	c.doc.View(func(st State) {
		for _, entries := range st.CustomCollections {
			for _, e := range entries {
				if !adm.HasUser(e.OwnerID) {
					orphaned = true
					return
				}
			}
		}
	})
	if !orphaned {
		return nil
	}
	err := c.doc.Update(ctx, func(st *State) error {
		for _, entries := range st.CustomCollections {
			for i := range entries {
				if !adm.HasUser(entries[i].OwnerID) {
					entries[i].OwnerID = heir
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("reassigning orphaned entries: %w", err)
	}
	c.logger.Warn("orphaned entries reassigned", "category", model.EventCategoryContent, "heir_id", heir)
	return nil
}

func (c *core) onMediaReferenced(ctx context.Context, data any) error {
	ref, ok := data.(hooks.MediaReference)
	if !ok {
		return fmt.Errorf("unexpected payload %T", data)
	}
	return c.doc.Update(ctx, func(st *State) error {
		c.registerAsset(st, ref)
		return nil
	})
}
