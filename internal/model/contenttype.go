// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"fmt"
	"maps"
)

// FieldType is the data type of a content type field.
type FieldType string

// Supported field types.
const (
	FieldString      FieldType = "string"
	FieldText        FieldType = "text"
	FieldRichText    FieldType = "richtext"
	FieldUID         FieldType = "uid"
	FieldMedia       FieldType = "media"
	FieldEnumeration FieldType = "enumeration"
	FieldJSON        FieldType = "json"
	FieldDate        FieldType = "date"
	FieldDateTime    FieldType = "datetime"
	FieldBoolean     FieldType = "boolean"
	FieldNumber      FieldType = "number"
	FieldRelation    FieldType = "relation"
)

// IsValid reports whether t is a supported field type.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldString, FieldText, FieldRichText, FieldUID, FieldMedia,
		FieldEnumeration, FieldJSON, FieldDate, FieldDateTime,
		FieldBoolean, FieldNumber, FieldRelation:
		return true
	default:
		return false
	}
}

// Built-in content type UIDs. They back the site's core public content.
const (
	UIDSections    = "sections"
	UIDTeamMembers = "team-members"
	UIDEvents      = "events"
)

// ContentTypeKind distinguishes the built-in collections from custom ones.
type ContentTypeKind int

// Content type kinds.
const (
	KindCustom ContentTypeKind = iota
	KindSections
	KindTeamMembers
	KindEvents
)

// KindOfUID returns the kind of collection a UID refers to.
func KindOfUID(uid string) ContentTypeKind {
	switch uid {
	case UIDSections:
		return KindSections
	case UIDTeamMembers:
		return KindTeamMembers
	case UIDEvents:
		return KindEvents
	default:
		return KindCustom
	}
}

// ContentTypeField describes one attribute of a content type.
type ContentTypeField struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Type         FieldType      `json:"type"`
	Required     bool           `json:"required"`
	Configurable bool           `json:"configurable"`
	DefaultValue any            `json:"defaultValue,omitempty"`
	Options      map[string]any `json:"options,omitempty"`
}

// Clone returns a deep copy of f.
func (f ContentTypeField) Clone() ContentTypeField {
	f.DefaultValue = CloneValue(f.DefaultValue)
	f.Options = CloneAttributes(f.Options)
	return f
}

// ContentType is a schema describing a collection of entries.
type ContentType struct {
	UID             string             `json:"uid"`
	DisplayName     string             `json:"displayName"`
	Description     string             `json:"description"`
	Category        string             `json:"category"`
	Icon            string             `json:"icon"`
	DraftAndPublish bool               `json:"draftAndPublish"`
	Kind            string             `json:"kind"`
	Configurable    bool               `json:"configurable"`
	Fields          []ContentTypeField `json:"fields"`
}

// CollectionTypeKind is the only schema kind supported today.
const CollectionTypeKind = "collectionType"

// Clone returns a deep copy of ct.
func (ct ContentType) Clone() ContentType {
	if ct.Fields != nil {
		fields := make([]ContentTypeField, len(ct.Fields))
		for i, f := range ct.Fields {
			fields[i] = f.Clone()
		}
		ct.Fields = fields
	}
	return ct
}

// Field returns the field with the given id.
func (ct ContentType) Field(id string) (ContentTypeField, bool) {
	for _, f := range ct.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return ContentTypeField{}, false
}

// CloneContentTypes deep-copies a slice of content types.
func CloneContentTypes(types []ContentType) []ContentType {
	if types == nil {
		return nil
	}
	out := make([]ContentType, len(types))
	for i, ct := range types {
		out[i] = ct.Clone()
	}
	return out
}

// CloneAttributes deep-copies a JSON-shaped attribute map.
func CloneAttributes(attrs map[string]any) map[string]any {
	if attrs == nil {
		return nil
	}
	out := maps.Clone(attrs)
	for k, v := range out {
		out[k] = CloneValue(v)
	}
	return out
}

// NormalizeValue converts v into the shapes encoding/json decodes into
// (map[string]any, []any, float64, string, bool, nil), the form stored
// documents are read back in.
func NormalizeValue(v any) (any, error) {
	switch v.(type) {
	case nil, string, bool, float64:
		return v, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NormalizeAttributes applies NormalizeValue to every value of attrs.
func NormalizeAttributes(attrs map[string]any) (map[string]any, error) {
	if attrs == nil {
		return nil, nil
	}
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		n, err := NormalizeValue(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k, err)
		}
		out[k] = n
	}
	return out, nil
}

// CloneValue deep-copies a JSON-shaped value. Maps and slices of the
// shapes produced by encoding/json are copied recursively; other values
// are returned as is, so callers normalize foreign values first.
func CloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CloneAttributes(val)
	case []any:
		if val == nil {
			return val
		}
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = CloneValue(item)
		}
		return out
	case []string:
		if val == nil {
			return val
		}
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}
