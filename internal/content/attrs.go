// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/olegiv/funteco-cms/internal/model"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

func stringAttr(attrs map[string]any, key string) (string, bool) {
	v, ok := attrs[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

func stringPtr(attrs map[string]any, key string) *string {
	if s, ok := stringAttr(attrs, key); ok {
		return &s
	}
	return nil
}

// listAttr reads a list attribute. Arrays are taken as is, strings are
// cut with split.
func listAttr(attrs map[string]any, key string, split func(string) []string) ([]string, bool) {
	v, ok := attrs[key]
	if !ok || v == nil {
		return nil, false
	}
	switch val := v.(type) {
	case []string:
		return append([]string(nil), val...), true
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, fmt.Sprint(item))
		}
		return out, true
	case string:
		return split(val), true
	default:
		return nil, false
	}
}

func listPtr(attrs map[string]any, key string, split func(string) []string) *[]string {
	if l, ok := listAttr(attrs, key, split); ok {
		return &l
	}
	return nil
}

func splitLines(s string) []string {
	return compact(lineBreak.Split(s, -1))
}

func splitComma(s string) []string {
	return compact(strings.Split(s, ","))
}

func compact(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// socialsAttr decodes a list of social links from any JSON-shaped value.
func socialsAttr(attrs map[string]any) ([]model.SocialLink, bool) {
	v, ok := attrs["socials"]
	if !ok || v == nil {
		return nil, false
	}
	if links, ok := v.([]model.SocialLink); ok {
		return append([]model.SocialLink(nil), links...), true
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var links []model.SocialLink
	if err := json.Unmarshal(raw, &links); err != nil {
		return nil, false
	}
	return links, true
}

// toStatus coerces v to a status, defaulting to draft.
func toStatus(v any) model.Status {
	s, _ := v.(string)
	if st := model.Status(s); st.IsValid() {
		return st
	}
	if st, ok := v.(model.Status); ok && st.IsValid() {
		return st
	}
	return model.StatusDraft
}

// statusPtr returns the raw requested status, leaving validation to the
// store.
func statusPtr(attrs map[string]any) *model.Status {
	v, ok := attrs["status"]
	if !ok || v == nil {
		return nil
	}
	var st model.Status
	switch val := v.(type) {
	case model.Status:
		st = val
	case string:
		st = model.Status(val)
	default:
		st = model.Status(fmt.Sprint(val))
	}
	return &st
}

// entryAttributes drops the status key and normalizes the rest into the
// JSON shapes the document is persisted in.
func entryAttributes(attrs map[string]any) (map[string]any, error) {
	rest := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if k != "status" {
			rest[k] = v
		}
	}
	out, err := model.NormalizeAttributes(rest)
	if err != nil {
		return nil, model.Invalid("atributos no admitidos: " + err.Error())
	}
	return out, nil
}

// fieldValues normalizes the default value and options of a field.
func fieldValues(def any, opts map[string]any) (any, map[string]any, error) {
	d, err := model.NormalizeValue(def)
	if err != nil {
		return nil, nil, model.Invalid("valor por defecto no admitido")
	}
	o, err := model.NormalizeAttributes(opts)
	if err != nil {
		return nil, nil, model.Invalid("opciones no admitidas")
	}
	return d, o, nil
}
