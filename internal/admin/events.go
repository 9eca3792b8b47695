// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"context"
	"slices"
	"time"

	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/util"
)

// EventInput is the input of CreateEvent. Date is YYYY-MM-DD or RFC 3339.
type EventInput struct {
	Title            string       `json:"title"`
	ShortDescription string       `json:"shortDescription"`
	Description      []string     `json:"description"`
	Date             string       `json:"date"`
	Image            string       `json:"image"`
	Location         string       `json:"location"`
	Tags             []string     `json:"tags"`
	Status           model.Status `json:"status"`
}

// EventUpdate is a partial event update; nil fields are unchanged.
type EventUpdate struct {
	Title            *string       `json:"title,omitempty"`
	ShortDescription *string       `json:"shortDescription,omitempty"`
	Description      *[]string     `json:"description,omitempty"`
	Date             *string       `json:"date,omitempty"`
	Image            *string       `json:"image,omitempty"`
	Location         *string       `json:"location,omitempty"`
	Tags             *[]string     `json:"tags,omitempty"`
	Status           *model.Status `json:"status,omitempty"`
}

func eventID(e model.ManagedEvent) string { return e.ID }

func eventKey(e model.ManagedEvent) (string, string) { return e.ID, e.Slug }

// Events returns every managed event.
func (s *Store) Events() []model.ManagedEvent {
	var out []model.ManagedEvent
	s.doc.View(func(st State) { out = model.CloneManagedEvents(st.Events) })
	return out
}

// Event returns the managed event with id.
func (s *Store) Event(id string) (model.ManagedEvent, error) {
	var (
		e  model.ManagedEvent
		ok bool
	)
	s.doc.View(func(st State) {
		if i := indexByID(st.Events, id, eventID); i >= 0 {
			e, ok = st.Events[i].Clone(), true
		}
	})
	if !ok {
		return model.ManagedEvent{}, model.NotFound(EventNoun.NotFound)
	}
	return e, nil
}

// CreateEvent adds an event owned by the current user. The formatted
// date is derived from Date; a missing date means today.
func (s *Store) CreateEvent(ctx context.Context, in EventInput) (model.ManagedEvent, error) {
	var (
		created    model.ManagedEvent
		downgraded bool
		author     model.User
	)
	err := s.mutate(ctx, func(st *State, user *model.User) error {
		if err := AuthorizeCreate(user, EventNoun); err != nil {
			return err
		}
		slug, err := uniqueSlug(st.Events, in.Title, "título", "", EventNoun, eventKey)
		if err != nil {
			return err
		}

		var status model.Status
		status, downgraded = CreateStatus(*user, in.Status)
		author = *user
		now := s.timestamp()
		date := in.Date
		if date == "" {
			date = now.Format(time.DateOnly)
		}
		created = model.ManagedEvent{
			Event: model.Event{
				Slug:             slug,
				Title:            in.Title,
				ShortDescription: in.ShortDescription,
				Description:      in.Description,
				Date:             date,
				FormattedDate:    model.FormatEventDate(date),
				Image:            in.Image,
				Location:         in.Location,
				Tags:             in.Tags,
			}.Clone(),
			Governance: model.Governance{
				ID:        util.NewID("event"),
				Status:    status,
				OwnerID:   user.ID,
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		st.Events = slices.Insert(st.Events, 0, created)
		return nil
	})
	if err != nil {
		return model.ManagedEvent{}, err
	}
	if downgraded {
		s.warnDowngrade(author, EventNoun)
	}
	s.referenceImage(ctx, created.Image, created.Title, author)
	return created.Clone(), nil
}

// UpdateEvent applies in to the event with id.
func (s *Store) UpdateEvent(ctx context.Context, id string, in EventUpdate) (model.ManagedEvent, error) {
	var (
		updated model.ManagedEvent
		author  model.User
	)
	err := s.mutate(ctx, func(st *State, user *model.User) error {
		if user == nil {
			return AuthorizeUpdate(nil, "", nil, EventNoun)
		}
		i := indexByID(st.Events, id, eventID)
		if i < 0 {
			return model.NotFound(EventNoun.NotFound)
		}
		e := st.Events[i]
		if err := AuthorizeUpdate(user, e.OwnerID, in.Status, EventNoun); err != nil {
			return err
		}

		if in.Title != nil {
			slug, err := uniqueSlug(st.Events, *in.Title, "título", e.ID, EventNoun, eventKey)
			if err != nil {
				return err
			}
			e.Title, e.Slug = *in.Title, slug
		}
		if in.Date != nil {
			e.Date = *in.Date
			e.FormattedDate = model.FormatEventDate(e.Date)
		}
		setIf(&e.ShortDescription, in.ShortDescription)
		setIf(&e.Image, in.Image)
		setIf(&e.Location, in.Location)
		setSliceIf(&e.Description, in.Description)
		setSliceIf(&e.Tags, in.Tags)
		setIf(&e.Status, in.Status)
		e.UpdatedAt = s.timestamp()

		st.Events[i] = e
		updated = e.Clone()
		author = *user
		return nil
	})
	if err != nil {
		return model.ManagedEvent{}, err
	}
	if in.Image != nil {
		s.referenceImage(ctx, updated.Image, updated.Title, author)
	}
	return updated, nil
}

// DeleteEvent removes the event with id.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *State, user *model.User) error {
		if user == nil {
			return AuthorizeDelete(nil, "", EventNoun)
		}
		i := indexByID(st.Events, id, eventID)
		if i < 0 {
			return model.NotFound(EventNoun.NotFound)
		}
		if err := AuthorizeDelete(user, st.Events[i].OwnerID, EventNoun); err != nil {
			return err
		}
		st.Events = slices.Delete(st.Events, i, i+1)
		return nil
	})
}

// ReorderEvents moves the events listed in ids to the front.
func (s *Store) ReorderEvents(ctx context.Context, ids []string) error {
	return s.mutate(ctx, func(st *State, user *model.User) error {
		if err := AuthorizeReorder(user, EventNoun); err != nil {
			return err
		}
		st.Events = util.ReorderByID(st.Events, ids, eventID)
		return nil
	})
}
