// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"time"

	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/sitedata"
)

// Seed account ids.
const (
	SeedAdminID        = "user-admin"
	SeedModeratorID    = "user-moderator"
	SeedCollaboratorID = "user-colab"
)

func day(value string) time.Time {
	t, _ := time.Parse(time.DateOnly, value)
	return t.UTC()
}

func seedUsers() []model.User {
	return []model.User{
		{ID: SeedAdminID, Username: "admin", Password: "admin123", Role: model.RoleAdministrator, CreatedAt: day("2023-01-01")},
		{ID: SeedModeratorID, Username: "moderador", Password: "mod123", Role: model.RoleModerator, CreatedAt: day("2023-01-05")},
		{ID: SeedCollaboratorID, Username: "colab", Password: "colab123", Role: model.RoleCollaborator, CreatedAt: day("2023-01-08")},
	}
}

func seedSections() []model.Section {
	return []model.Section{
		{
			ID:        "section-1",
			Title:     "Bienvenida",
			Slug:      "bienvenida",
			Content:   "Mensaje de bienvenida editable desde el módulo de administración.",
			Status:    model.StatusPublished,
			OwnerID:   SeedAdminID,
			UpdatedAt: day("2023-02-01"),
		},
		{
			ID:        "section-2",
			Title:     "Próximos eventos",
			Slug:      "proximos-eventos",
			Content:   "Listado de eventos futuros gestionable por el equipo.",
			Status:    model.StatusDraft,
			OwnerID:   SeedAdminID,
			UpdatedAt: day("2023-02-10"),
		},
	}
}

func seedGovernance(id string) model.Governance {
	return model.Governance{
		ID:        id,
		Status:    model.StatusPublished,
		OwnerID:   SeedAdminID,
		CreatedAt: day("2023-03-01"),
		UpdatedAt: day("2023-03-01"),
	}
}

func seedTeamMembers() []model.ManagedTeamMember {
	members := sitedata.TeamMembers()
	out := make([]model.ManagedTeamMember, len(members))
	for i, m := range members {
		out[i] = model.ManagedTeamMember{TeamMember: m, Governance: seedGovernance("team-" + m.Slug)}
	}
	return out
}

func seedEvents() []model.ManagedEvent {
	events := sitedata.Events()
	out := make([]model.ManagedEvent, len(events))
	for i, e := range events {
		out[i] = model.ManagedEvent{Event: e, Governance: seedGovernance("event-" + e.Slug)}
	}
	return out
}
