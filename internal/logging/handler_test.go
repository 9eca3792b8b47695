// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/store"
)

// testDB creates a temporary test database with migrations applied.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := store.NewDB(filepath.Join(t.TempDir(), "logging.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := store.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

// discardHandler is a slog.Handler that discards all logs.
type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func listEvents(t *testing.T, db *sql.DB) []store.Event {
	t.Helper()
	events, err := store.New(db).ListEvents(context.Background(), store.ListEventsParams{Limit: 50})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	return events
}

func TestEventLogHandler_Levels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  slog.Level
		log       func(*slog.Logger)
		wantLevel string // empty means nothing recorded
	}{
		{"error", slog.LevelWarn, func(l *slog.Logger) { l.Error("remote cms unreachable", "host", "cms") }, model.EventLevelError},
		{"warn", slog.LevelWarn, func(l *slog.Logger) { l.Warn("admin login failed") }, model.EventLevelWarning},
		{"info skipped", slog.LevelWarn, func(l *slog.Logger) { l.Info("server started") }, ""},
		{"debug skipped", slog.LevelWarn, func(l *slog.Logger) { l.Debug("request") }, ""},
		{"info with custom level", slog.LevelInfo, func(l *slog.Logger) { l.Info("server started") }, model.EventLevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testDB(t)
			tt.log(slog.New(NewEventLogHandlerWithLevel(discardHandler{}, db, tt.minLevel)))

			events := listEvents(t, db)
			if tt.wantLevel == "" {
				if len(events) != 0 {
					t.Fatalf("expected no events, got %d", len(events))
				}
				return
			}
			if len(events) != 1 {
				t.Fatalf("expected 1 event, got %d", len(events))
			}
			if events[0].Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", events[0].Level, tt.wantLevel)
			}
		})
	}
}

func TestEventLogHandler_ForwardsToInner(t *testing.T) {
	db := testDB(t)
	var buf bytes.Buffer
	logger := slog.New(NewEventLogHandler(slog.NewTextHandler(&buf, nil), db))

	logger.Info("server started")
	if !bytes.Contains(buf.Bytes(), []byte("server started")) {
		t.Errorf("inner handler output = %q", buf.String())
	}
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"admin login failed", model.EventCategoryAuth},
		{"user authentication failed", model.EventCategoryAuth},
		{"logout completed", model.EventCategoryAuth},
		{"session revoked", model.EventCategorySession},
		{"content type created", model.EventCategorySchema},
		{"media uploaded", model.EventCategoryMedia},
		{"role cannot publish, saving as draft", model.EventCategoryContent},
		{"user deleted", model.EventCategoryUser},
		{"shutting down", model.EventCategorySystem},
	}

	for _, tt := range tests {
		if got := inferCategory(tt.message); got != tt.want {
			t.Errorf("inferCategory(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestEventLogHandler_ExplicitCategoryAndUser(t *testing.T) {
	db := testDB(t)
	logger := slog.New(NewEventLogHandler(discardHandler{}, db))

	logger.Warn("something odd", "category", model.EventCategoryMedia, "user_id", "user-admin", "url", `https://x.org/"a"`)

	events := listEvents(t, db)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.Category != model.EventCategoryMedia {
		t.Errorf("Category = %q, want media", e.Category)
	}
	if !e.UserID.Valid || e.UserID.String != "user-admin" {
		t.Errorf("UserID = %+v, want user-admin", e.UserID)
	}

	var meta map[string]string
	if err := json.Unmarshal([]byte(e.Metadata), &meta); err != nil {
		t.Fatalf("metadata is not JSON: %v (%s)", err, e.Metadata)
	}
	if _, ok := meta["category"]; ok {
		t.Error("category should not be repeated in metadata")
	}
	if meta["url"] != `https://x.org/"a"` {
		t.Errorf("metadata url = %q", meta["url"])
	}
}

func TestEventLogHandler_WithAttrs(t *testing.T) {
	db := testDB(t)
	logger := slog.New(NewEventLogHandler(discardHandler{}, db)).With("category", model.EventCategorySession)

	logger.Error("store unavailable")

	events := listEvents(t, db)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Category != model.EventCategorySession {
		t.Errorf("Category = %q, want session from bound attrs", events[0].Category)
	}
	if events[0].Metadata != "{}" {
		t.Errorf("Metadata = %q, want {}", events[0].Metadata)
	}
}

func TestEventLogHandler_WithGroup(t *testing.T) {
	db := testDB(t)
	logger := slog.New(NewEventLogHandler(discardHandler{}, db)).WithGroup("http")

	logger.Warn("slow request", "path", "/api/v1/events")

	if n := len(listEvents(t, db)); n != 1 {
		t.Fatalf("expected 1 event, got %d", n)
	}
}

func TestEventLevel(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, model.EventLevelInfo},
		{slog.LevelInfo, model.EventLevelInfo},
		{slog.LevelWarn, model.EventLevelWarning},
		{slog.LevelError, model.EventLevelError},
		{slog.LevelError + 4, model.EventLevelError},
	}
	for _, tt := range tests {
		if got := eventLevel(tt.level); got != tt.want {
			t.Errorf("eventLevel(%v) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
