// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package remote

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/olegiv/funteco-cms/internal/model"
)

// Defaults for attributes the CMS left empty.
const (
	DefaultShortDescription = "Pronto compartiremos más detalles sobre este evento."
	DefaultLocation         = "Ubicación por confirmar"
	DefaultShortBio         = "Este perfil se actualizará en cuanto el equipo cargue la información completa en Strapi."
	DefaultFocus            = "Detalle de foco en construcción"
)

var (
	lineBreaks = regexp.MustCompile(`\r?\n`)
	tagSep     = regexp.MustCompile(`[,;]+`)
	listSep    = regexp.MustCompile(`\r?\n|[,;]+`)
)

// items returns the records of a collection response. Strapi v4 nests the
// fields under "attributes"; v5 returns them flat.
func items(body []byte) ([]gjson.Result, bool) {
	data := gjson.GetBytes(body, "data")
	if !data.IsArray() {
		return nil, false
	}
	var out []gjson.Result
	for _, item := range data.Array() {
		if attrs := item.Get("attributes"); attrs.IsObject() {
			out = append(out, attrs)
			continue
		}
		out = append(out, item)
	}
	return out, true
}

func present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

// first returns the first present attribute among keys.
func first(attrs gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if r := attrs.Get(k); present(r) {
			return r
		}
	}
	return gjson.Result{}
}

func str(attrs gjson.Result, keys ...string) (string, bool) {
	r := first(attrs, keys...)
	if !present(r) {
		return "", false
	}
	return r.String(), true
}

// split turns an array of strings or a separated string into a trimmed
// list without empty items.
func split(r gjson.Result, sep *regexp.Regexp) []string {
	var parts []string
	switch {
	case r.IsArray():
		for _, item := range r.Array() {
			if item.Type == gjson.String {
				parts = append(parts, item.String())
			}
		}
	case r.Type == gjson.String:
		parts = sep.Split(r.String(), -1)
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// mediaURL reads a media attribute: a plain URL, a v4 relation
// ({data:{attributes:{url}}}) or a v5 object ({url}).
func (s *Source) mediaURL(r gjson.Result) string {
	var raw string
	switch {
	case r.Type == gjson.String:
		raw = r.String()
	case r.IsObject():
		raw = r.Get("data.attributes.url").String()
		if raw == "" {
			raw = r.Get("url").String()
		}
	}
	if raw == "" || s.client == nil {
		return raw
	}
	return s.client.ResolveMediaURL(raw)
}

func (s *Source) mapEvent(attrs gjson.Result) (model.Event, bool) {
	slug, _ := str(attrs, "slug")
	title, _ := str(attrs, "title")
	if slug == "" || title == "" {
		return model.Event{}, false
	}

	date, ok := str(attrs, "date", "eventDate", "publishedAt")
	if !ok {
		date = s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
	}
	formatted, ok := str(attrs, "formattedDate")
	if !ok {
		formatted = model.FormatEventDate(date)
	}
	description := split(first(attrs, "description", "body", "content", "summary"), lineBreaks)
	short, ok := str(attrs, "shortDescription")
	if !ok {
		short = DefaultShortDescription
		if len(description) > 0 {
			short = description[0]
		}
	}
	if len(description) == 0 {
		description = []string{short}
	}
	location, ok := str(attrs, "location")
	if !ok {
		location = DefaultLocation
	}

	image := ""
	for _, key := range []string{"image", "cover", "hero"} {
		if image = s.mediaURL(attrs.Get(key)); image != "" {
			break
		}
	}
	if image == "" {
		if fb := s.fallbackEvents(); len(fb) > 0 {
			image = fb[0].Image
		}
	}

	return model.Event{
		Slug:             slug,
		Title:            title,
		ShortDescription: short,
		Description:      description,
		Date:             date,
		FormattedDate:    formatted,
		Image:            image,
		Location:         location,
		Tags:             split(attrs.Get("tags"), tagSep),
	}, true
}

func (s *Source) mapTeamMember(attrs gjson.Result) (model.TeamMember, bool) {
	slug, _ := str(attrs, "slug")
	name, _ := str(attrs, "name")
	role, _ := str(attrs, "role")
	if slug == "" || name == "" || role == "" {
		return model.TeamMember{}, false
	}

	shortBio, ok := str(attrs, "shortBio")
	if !ok {
		shortBio = DefaultShortBio
	}
	focus, ok := str(attrs, "focus")
	if !ok {
		focus = DefaultFocus
	}
	orDefault := func(list []string, def string) []string {
		if len(list) == 0 {
			return []string{def}
		}
		return list
	}

	var socials []model.SocialLink
	if r := attrs.Get("socials"); r.IsArray() {
		_ = json.Unmarshal([]byte(r.Raw), &socials)
	}
	if socials == nil {
		socials = []model.SocialLink{}
	}

	image := s.mediaURL(attrs.Get("image"))
	if image == "" {
		image = s.mediaURL(attrs.Get("portrait"))
	}
	if image == "" {
		image = s.fallbackTeamImage(slug)
	}

	return model.TeamMember{
		Slug:       slug,
		Name:       name,
		Role:       role,
		Image:      image,
		ShortBio:   shortBio,
		Bio:        orDefault(split(attrs.Get("bio"), listSep), shortBio),
		Focus:      focus,
		Expertise:  orDefault(split(attrs.Get("expertise"), listSep), focus),
		Highlights: orDefault(split(attrs.Get("highlights"), listSep), shortBio),
		Socials:    socials,
	}, true
}

func (s *Source) fallbackTeamImage(slug string) string {
	members := s.fallbackTeam()
	for _, m := range members {
		if m.Slug == slug {
			return m.Image
		}
	}
	if len(members) > 0 {
		return members[0].Image
	}
	return ""
}
