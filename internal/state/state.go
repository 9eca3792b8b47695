// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package state persists one JSON document under one storage key and
// notifies subscribers after every successful mutation.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/olegiv/funteco-cms/internal/storage"
)

// Document is a value that can deep-copy itself.
type Document[T any] interface {
	Clone() T
}

// Repairer is implemented by documents that need to fill in fields a
// stored payload left empty. Repair runs after every load.
type Repairer interface {
	Repair()
}

// Option configures a Store.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for load warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Store owns a document of type T. Every mutation is one
// clone, modify, persist, swap cycle; a failed mutation leaves the
// document and the storage untouched.
type Store[T Document[T]] struct {
	storage  storage.Storage
	key      string
	defaults func() T
	logger   *slog.Logger

	mu        sync.Mutex
	doc       T
	listeners map[int]func()
	nextID    int
}

// Open loads the document stored under key, or the defaults when the key
// is absent or holds malformed JSON. A malformed payload is logged, not
// returned. Only storage read failures are errors.
func Open[T Document[T]](ctx context.Context, st storage.Storage, key string, defaults func() T, opts ...Option) (*Store[T], error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store[T]{
		storage:   st,
		key:       key,
		defaults:  defaults,
		logger:    o.logger,
		listeners: make(map[int]func()),
	}

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.doc = doc
	return s, nil
}

func (s *Store[T]) load(ctx context.Context) (T, error) {
	raw, ok, err := s.storage.GetItem(ctx, s.key)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("loading %s: %w", s.key, err)
	}

	doc := s.defaults()
	if !ok || raw == "" {
		return doc, nil
	}

	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		s.logger.Warn("stored document is malformed, using defaults",
			"category", "system", "key", s.key, "error", err)
		return s.defaults(), nil
	}

	if r, ok := any(&doc).(Repairer); ok {
		r.Repair()
	}
	return doc, nil
}

// Key returns the storage key of the document.
func (s *Store[T]) Key() string {
	return s.key
}

// Snapshot returns a deep copy of the current document.
func (s *Store[T]) Snapshot() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// View runs fn against the current document without copying it.
// fn must not retain or modify doc.
func (s *Store[T]) View(fn func(doc T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
}

// Update applies fn to a copy of the document, persists the result and
// notifies subscribers. If fn or the storage write fails, nothing changes.
func (s *Store[T]) Update(ctx context.Context, fn func(doc *T) error) error {
	s.mu.Lock()

	work := s.doc.Clone()
	if err := fn(&work); err != nil {
		s.mu.Unlock()
		return err
	}

	if err := s.persist(ctx, work); err != nil {
		s.mu.Unlock()
		return err
	}
	s.doc = work
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners)
	return nil
}

// Reload replaces the in-memory document with what storage holds now and
// notifies subscribers.
func (s *Store[T]) Reload(ctx context.Context) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.doc = doc
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners)
	return nil
}

// Subscribe registers fn to run after every mutation and reload. The
// returned function removes the subscription.
func (s *Store[T]) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store[T]) persist(ctx context.Context, doc T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.key, err)
	}
	if err := s.storage.SetItem(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("saving %s: %w", s.key, err)
	}
	return nil
}

// snapshotListeners must be called with s.mu held.
func (s *Store[T]) snapshotListeners() []func() {
	out := make([]func(), 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func notify(listeners []func()) {
	for _, fn := range listeners {
		fn()
	}
}
