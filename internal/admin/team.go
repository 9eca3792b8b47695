// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"context"
	"slices"

	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/util"
)

// TeamMemberInput is the input of CreateTeamMember.
type TeamMemberInput struct {
	Name       string             `json:"name"`
	Role       string             `json:"role"`
	Image      string             `json:"image"`
	ShortBio   string             `json:"shortBio"`
	Bio        []string           `json:"bio"`
	Focus      string             `json:"focus"`
	Expertise  []string           `json:"expertise"`
	Highlights []string           `json:"highlights"`
	Socials    []model.SocialLink `json:"socials"`
	Status     model.Status       `json:"status"`
}

// TeamMemberUpdate is a partial profile update; nil fields are unchanged.
type TeamMemberUpdate struct {
	Name       *string             `json:"name,omitempty"`
	Role       *string             `json:"role,omitempty"`
	Image      *string             `json:"image,omitempty"`
	ShortBio   *string             `json:"shortBio,omitempty"`
	Bio        *[]string           `json:"bio,omitempty"`
	Focus      *string             `json:"focus,omitempty"`
	Expertise  *[]string           `json:"expertise,omitempty"`
	Highlights *[]string           `json:"highlights,omitempty"`
	Socials    *[]model.SocialLink `json:"socials,omitempty"`
	Status     *model.Status       `json:"status,omitempty"`
}

func teamID(m model.ManagedTeamMember) string { return m.ID }

func teamKey(m model.ManagedTeamMember) (string, string) { return m.ID, m.Slug }

// TeamMembers returns every managed profile.
func (s *Store) TeamMembers() []model.ManagedTeamMember {
	var out []model.ManagedTeamMember
	s.doc.View(func(st State) { out = model.CloneManagedTeamMembers(st.TeamMembers) })
	return out
}

// TeamMember returns the managed profile with id.
func (s *Store) TeamMember(id string) (model.ManagedTeamMember, error) {
	var (
		m  model.ManagedTeamMember
		ok bool
	)
	s.doc.View(func(st State) {
		if i := indexByID(st.TeamMembers, id, teamID); i >= 0 {
			m, ok = st.TeamMembers[i].Clone(), true
		}
	})
	if !ok {
		return model.ManagedTeamMember{}, model.NotFound(TeamNoun.NotFound)
	}
	return m, nil
}

// CreateTeamMember adds a profile owned by the current user.
func (s *Store) CreateTeamMember(ctx context.Context, in TeamMemberInput) (model.ManagedTeamMember, error) {
	var (
		created    model.ManagedTeamMember
		downgraded bool
		author     model.User
	)
	err := s.mutate(ctx, func(st *State, user *model.User) error {
		if err := AuthorizeCreate(user, TeamNoun); err != nil {
			return err
		}
		slug, err := uniqueSlug(st.TeamMembers, in.Name, "nombre", "", TeamNoun, teamKey)
		if err != nil {
			return err
		}

		var status model.Status
		status, downgraded = CreateStatus(*user, in.Status)
		author = *user
		now := s.timestamp()
		created = model.ManagedTeamMember{
			TeamMember: model.TeamMember{
				Slug:       slug,
				Name:       in.Name,
				Role:       in.Role,
				Image:      in.Image,
				ShortBio:   in.ShortBio,
				Bio:        in.Bio,
				Focus:      in.Focus,
				Expertise:  in.Expertise,
				Highlights: in.Highlights,
				Socials:    in.Socials,
			}.Clone(),
			Governance: model.Governance{
				ID:        util.NewID("team"),
				Status:    status,
				OwnerID:   user.ID,
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		st.TeamMembers = slices.Insert(st.TeamMembers, 0, created)
		return nil
	})
	if err != nil {
		return model.ManagedTeamMember{}, err
	}
	if downgraded {
		s.warnDowngrade(author, TeamNoun)
	}
	s.referenceImage(ctx, created.Image, created.Name, author)
	return created.Clone(), nil
}

// UpdateTeamMember applies in to the profile with id.
func (s *Store) UpdateTeamMember(ctx context.Context, id string, in TeamMemberUpdate) (model.ManagedTeamMember, error) {
	var (
		updated model.ManagedTeamMember
		author  model.User
	)
	err := s.mutate(ctx, func(st *State, user *model.User) error {
		if user == nil {
			return AuthorizeUpdate(nil, "", nil, TeamNoun)
		}
		i := indexByID(st.TeamMembers, id, teamID)
		if i < 0 {
			return model.NotFound(TeamNoun.NotFound)
		}
		m := st.TeamMembers[i]
		if err := AuthorizeUpdate(user, m.OwnerID, in.Status, TeamNoun); err != nil {
			return err
		}

		if in.Name != nil {
			slug, err := uniqueSlug(st.TeamMembers, *in.Name, "nombre", m.ID, TeamNoun, teamKey)
			if err != nil {
				return err
			}
			m.Name, m.Slug = *in.Name, slug
		}
		setIf(&m.Role, in.Role)
		setIf(&m.Image, in.Image)
		setIf(&m.ShortBio, in.ShortBio)
		setIf(&m.Focus, in.Focus)
		setSliceIf(&m.Bio, in.Bio)
		setSliceIf(&m.Expertise, in.Expertise)
		setSliceIf(&m.Highlights, in.Highlights)
		setSliceIf(&m.Socials, in.Socials)
		setIf(&m.Status, in.Status)
		m.UpdatedAt = s.timestamp()

		st.TeamMembers[i] = m
		updated = m.Clone()
		author = *user
		return nil
	})
	if err != nil {
		return model.ManagedTeamMember{}, err
	}
	if in.Image != nil {
		s.referenceImage(ctx, updated.Image, updated.Name, author)
	}
	return updated, nil
}

// DeleteTeamMember removes the profile with id.
func (s *Store) DeleteTeamMember(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *State, user *model.User) error {
		if user == nil {
			return AuthorizeDelete(nil, "", TeamNoun)
		}
		i := indexByID(st.TeamMembers, id, teamID)
		if i < 0 {
			return model.NotFound(TeamNoun.NotFound)
		}
		if err := AuthorizeDelete(user, st.TeamMembers[i].OwnerID, TeamNoun); err != nil {
			return err
		}
		st.TeamMembers = slices.Delete(st.TeamMembers, i, i+1)
		return nil
	})
}

// ReorderTeamMembers moves the profiles listed in ids to the front.
func (s *Store) ReorderTeamMembers(ctx context.Context, ids []string) error {
	return s.mutate(ctx, func(st *State, user *model.User) error {
		if err := AuthorizeReorder(user, TeamNoun); err != nil {
			return err
		}
		st.TeamMembers = util.ReorderByID(st.TeamMembers, ids, teamID)
		return nil
	})
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setSliceIf[T any](dst *[]T, v *[]T) {
	if v != nil {
		*dst = slices.Clone(*v)
	}
}
