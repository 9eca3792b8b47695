// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/sitedata"
)

const (
	eventsPath = "/api/events"
	teamPath   = "/api/team-members"
)

var errNoClient = errors.New("cms client not configured")

// Source serves events and team members from the CMS, or from the
// fallback data when the CMS fails. It never returns an error.
type Source struct {
	client *Client
	logger *slog.Logger
	now    func() time.Time
	locale string

	fallbackEvents func() []model.Event
	fallbackTeam   func() []model.TeamMember
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithLogger sets the logger used to report CMS failures.
func WithLogger(logger *slog.Logger) SourceOption {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for undated events.
func WithClock(now func() time.Time) SourceOption {
	return func(s *Source) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocale asks the CMS for entries of locale, e.g. "es-EC".
func WithLocale(locale string) SourceOption {
	return func(s *Source) { s.locale = locale }
}

// WithFallback replaces the bundled site data used when the CMS fails.
func WithFallback(events []model.Event, team []model.TeamMember) SourceOption {
	return func(s *Source) {
		if events != nil {
			ev := model.CloneEvents(events)
			s.fallbackEvents = func() []model.Event { return model.CloneEvents(ev) }
		}
		if team != nil {
			tm := model.CloneTeamMembers(team)
			s.fallbackTeam = func() []model.TeamMember { return model.CloneTeamMembers(tm) }
		}
	}
}

// NewSource creates a Source. A nil client always serves the fallback.
func NewSource(client *Client, opts ...SourceOption) *Source {
	s := &Source{
		client:         client,
		logger:         slog.Default(),
		now:            time.Now,
		fallbackEvents: sitedata.Events,
		fallbackTeam:   sitedata.TeamMembers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) fetch(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if s.client == nil {
		return nil, errNoClient
	}
	if s.locale != "" {
		query.Set("locale", s.locale)
	}
	return s.client.Fetch(ctx, path, query)
}

func (s *Source) warn(msg string, err error, args ...any) {
	if errors.Is(err, errNoClient) {
		s.logger.Debug(msg, append(args, "error", err)...)
		return
	}
	s.logger.Warn(msg, append(args, "category", model.EventCategorySystem, "error", err)...)
}

func listQuery(sort string) url.Values {
	return url.Values{
		"populate":             {"*"},
		"sort":                 {sort},
		"pagination[pageSize]": {"100"},
	}
}

func slugQuery(slug string) url.Values {
	return url.Values{
		"populate":             {"*"},
		"filters[slug][$eq]":   {slug},
		"pagination[pageSize]": {"1"},
	}
}

// GetEvents returns every event, sorted by date.
func (s *Source) GetEvents(ctx context.Context) []model.Event {
	events, err := s.remoteEvents(ctx, listQuery("date:asc"))
	if err == nil && len(events) == 0 {
		err = errors.New("cms returned no valid events")
	}
	if err != nil {
		s.warn("fetching events from cms failed, using local data", err)
		return s.fallbackEvents()
	}
	return events
}

// GetEventBySlug returns one event.
func (s *Source) GetEventBySlug(ctx context.Context, slug string) (model.Event, bool) {
	events, err := s.remoteEvents(ctx, slugQuery(slug))
	if err == nil && len(events) > 0 {
		return events[0], true
	}
	if err != nil {
		s.warn("fetching event from cms failed", err, "slug", slug)
	}
	if e, ok := sitedata.EventBySlug(slug); ok {
		return e, true
	}
	for _, e := range s.fallbackEvents() {
		if e.Slug == slug {
			return e, true
		}
	}
	return model.Event{}, false
}

// GetTeamMembers returns every team member, sorted by name.
func (s *Source) GetTeamMembers(ctx context.Context) []model.TeamMember {
	members, err := s.remoteTeam(ctx, listQuery("name:asc"))
	if err == nil && len(members) == 0 {
		err = errors.New("cms returned no valid team members")
	}
	if err != nil {
		s.warn("fetching team members from cms failed, using local data", err)
		return s.fallbackTeam()
	}
	return members
}

// GetTeamMemberBySlug returns one team member.
func (s *Source) GetTeamMemberBySlug(ctx context.Context, slug string) (model.TeamMember, bool) {
	members, err := s.remoteTeam(ctx, slugQuery(slug))
	if err == nil && len(members) > 0 {
		return members[0], true
	}
	if err != nil {
		s.warn("fetching team member from cms failed", err, "slug", slug)
	}
	if m, ok := sitedata.TeamMemberBySlug(slug); ok {
		return m, true
	}
	for _, m := range s.fallbackTeam() {
		if m.Slug == slug {
			return m, true
		}
	}
	return model.TeamMember{}, false
}

func (s *Source) remoteEvents(ctx context.Context, query url.Values) ([]model.Event, error) {
	body, err := s.fetch(ctx, eventsPath, query)
	if err != nil {
		return nil, err
	}
	records, ok := items(body)
	if !ok {
		return nil, fmt.Errorf("unexpected %s response", eventsPath)
	}
	var out []model.Event
	for _, r := range records {
		if e, ok := s.mapEvent(r); ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Source) remoteTeam(ctx context.Context, query url.Values) ([]model.TeamMember, error) {
	body, err := s.fetch(ctx, teamPath, query)
	if err != nil {
		return nil, err
	}
	records, ok := items(body)
	if !ok {
		return nil, fmt.Errorf("unexpected %s response", teamPath)
	}
	var out []model.TeamMember
	for _, r := range records {
		if m, ok := s.mapTeamMember(r); ok {
			out = append(out, m)
		}
	}
	return out, nil
}
