// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"reflect"
	"testing"
)

func TestFieldTypeIsValid(t *testing.T) {
	valid := []FieldType{"string", "text", "richtext", "uid", "media", "enumeration",
		"json", "date", "datetime", "boolean", "number", "relation"}
	for _, ft := range valid {
		if !ft.IsValid() {
			t.Errorf("IsValid(%q) = false", ft)
		}
	}
	for _, ft := range []FieldType{"", "integer", "String", "component"} {
		if ft.IsValid() {
			t.Errorf("IsValid(%q) = true", ft)
		}
	}
}

func TestKindOfUID(t *testing.T) {
	tests := map[string]ContentTypeKind{
		"sections":     KindSections,
		"team-members": KindTeamMembers,
		"events":       KindEvents,
		"programas":    KindCustom,
	}
	for uid, want := range tests {
		if got := KindOfUID(uid); got != want {
			t.Errorf("KindOfUID(%q) = %v, want %v", uid, got, want)
		}
	}
}

func TestEntryCloneIsDeep(t *testing.T) {
	e := ContentEntry{
		ID: "entry-1",
		Attributes: map[string]any{
			"titulo": "Uno",
			"meta":   map[string]any{"tags": []any{"a", "b"}},
		},
	}
	c := e.Clone()
	c.Attributes["titulo"] = "Dos"
	c.Attributes["meta"].(map[string]any)["tags"].([]any)[0] = "z"

	if e.Attributes["titulo"] != "Uno" {
		t.Error("top-level attribute aliased")
	}
	if e.Attributes["meta"].(map[string]any)["tags"].([]any)[0] != "a" {
		t.Error("nested attribute aliased")
	}
}

func TestContentTypeCloneAndField(t *testing.T) {
	ct := ContentType{
		UID: "programas",
		Fields: []ContentTypeField{
			{ID: "titulo", Name: "Título", Type: FieldString, Options: map[string]any{"max": 10.0}},
		},
	}
	c := ct.Clone()
	c.Fields[0].Name = "Otro"
	c.Fields[0].Options["max"] = 20.0

	f, ok := ct.Field("titulo")
	if !ok {
		t.Fatal("Field(titulo) not found")
	}
	if f.Name != "Título" || f.Options["max"] != 10.0 {
		t.Errorf("clone aliased field data: %+v", f)
	}
	if _, ok := ct.Field("missing"); ok {
		t.Error("Field(missing) found")
	}
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"string", "a", "a"},
		{"int", 12, 12.0},
		{"string slice", []string{"a"}, []any{"a"}},
		{"map slice", []map[string]any{{"n": 1}}, []any{map[string]any{"n": 1.0}}},
		{"status", StatusDraft, "draft"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeValue(tt.in)
			if err != nil {
				t.Fatalf("NormalizeValue: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeValue(%#v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := NormalizeAttributes(map[string]any{"ch": make(chan int)}); err == nil {
		t.Error("NormalizeAttributes accepted a channel")
	}
}
