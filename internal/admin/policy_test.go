// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"testing"

	"github.com/olegiv/funteco-cms/internal/model"
)

func TestCreateStatus(t *testing.T) {
	tests := []struct {
		role           model.Role
		requested      model.Status
		want           model.Status
		wantDowngraded bool
	}{
		{model.RoleAdministrator, model.StatusPublished, model.StatusPublished, false},
		{model.RoleAuthor, model.StatusPublished, model.StatusPublished, false},
		{model.RoleCollaborator, model.StatusPublished, model.StatusDraft, true},
		{model.RoleCollaborator, model.StatusDraft, model.StatusDraft, false},
		{model.RoleEditor, "", model.StatusDraft, false},
		{model.RoleEditor, "archived", model.StatusDraft, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.requested), func(t *testing.T) {
			got, downgraded := CreateStatus(model.User{Role: tt.role}, tt.requested)
			if got != tt.want || downgraded != tt.wantDowngraded {
				t.Errorf("CreateStatus() = (%q, %v), want (%q, %v)", got, downgraded, tt.want, tt.wantDowngraded)
			}
		})
	}
}

func TestOwnershipRules(t *testing.T) {
	tests := []struct {
		role       model.Role
		own        bool
		wantEdit   bool
		wantDelete bool
	}{
		{model.RoleAdministrator, false, true, true},
		{model.RoleEditor, false, true, true},
		{model.RoleAuthor, false, false, false},
		{model.RoleAuthor, true, true, true},
		{model.RoleCollaborator, false, false, false},
		{model.RoleCollaborator, true, true, true},
		{model.RoleModerator, false, true, false},
		{model.RoleModerator, true, true, true},
	}

	for _, tt := range tests {
		user := model.User{ID: "u1", Role: tt.role}
		owner := "someone-else"
		if tt.own {
			owner = user.ID
		}
		if got := CanEdit(user, owner); got != tt.wantEdit {
			t.Errorf("CanEdit(%s, own=%v) = %v, want %v", tt.role, tt.own, got, tt.wantEdit)
		}
		if got := CanDelete(user, owner); got != tt.wantDelete {
			t.Errorf("CanDelete(%s, own=%v) = %v, want %v", tt.role, tt.own, got, tt.wantDelete)
		}
	}
}

func TestAuthorizeUpdatePublishGate(t *testing.T) {
	published := model.StatusPublished
	draft := model.StatusDraft
	collab := &model.User{ID: "c", Role: model.RoleCollaborator}

	if err := AuthorizeUpdate(collab, "c", &published, SectionNoun); !model.IsForbidden(err) {
		t.Errorf("collaborator publishing own section: err = %v, want forbidden", err)
	}
	if err := AuthorizeUpdate(collab, "c", &draft, SectionNoun); err != nil {
		t.Errorf("collaborator keeping draft: err = %v", err)
	}
	if err := AuthorizeUpdate(nil, "c", nil, SectionNoun); !model.IsForbidden(err) {
		t.Errorf("anonymous update: err = %v, want forbidden", err)
	}
}
