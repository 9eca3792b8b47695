// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import "github.com/olegiv/funteco-cms/internal/model"

// Noun names a governed collection in error messages.
type Noun struct {
	Plural    string // "secciones"
	This      string // "esta sección"
	NotFound  string // "sección no encontrada"
	Duplicate string // "ya existe una sección con ese identificador"
}

// Governed collection nouns.
var (
	SectionNoun = Noun{
		Plural:    "secciones",
		This:      "esta sección",
		NotFound:  "sección no encontrada",
		Duplicate: "ya existe una sección con ese identificador",
	}
	TeamNoun = Noun{
		Plural:    "integrantes",
		This:      "este integrante",
		NotFound:  "integrante no encontrado",
		Duplicate: "ya existe un integrante con ese identificador",
	}
	EventNoun = Noun{
		Plural:    "eventos",
		This:      "este evento",
		NotFound:  "evento no encontrado",
		Duplicate: "ya existe un evento con ese identificador",
	}
)

// AuthorizeCreate checks that user may create entries of a governed
// collection. A nil user is not logged in.
func AuthorizeCreate(user *model.User, n Noun) error {
	if user == nil {
		return model.Forbidden("debes iniciar sesión para crear " + n.Plural)
	}
	if !user.Capabilities().CreateSections {
		return model.Forbidden("sin permisos para crear " + n.Plural)
	}
	return nil
}

// AuthorizeUpdate checks that user may modify an entry owned by ownerID
// and, when next is non-nil, move it to *next. Requesting published
// without the publish capability fails.
func AuthorizeUpdate(user *model.User, ownerID string, next *model.Status, n Noun) error {
	if user == nil {
		return model.Forbidden("debes iniciar sesión para editar " + n.Plural)
	}
	if !CanEdit(*user, ownerID) {
		return model.Forbidden("sin permisos para editar " + n.This)
	}
	if next == nil {
		return nil
	}
	if *next == model.StatusPublished && !user.Capabilities().Publish {
		return model.Forbidden("sin permisos para publicar " + n.This)
	}
	if !next.IsValid() {
		return model.Invalid("estado no válido")
	}
	return nil
}

// AuthorizeDelete checks that user may delete an entry owned by ownerID.
func AuthorizeDelete(user *model.User, ownerID string, n Noun) error {
	if user == nil {
		return model.Forbidden("debes iniciar sesión para eliminar " + n.Plural)
	}
	if !CanDelete(*user, ownerID) {
		return model.Forbidden("sin permisos para eliminar " + n.This)
	}
	return nil
}

// AuthorizeReorder checks that user may resequence a whole collection.
func AuthorizeReorder(user *model.User, n Noun) error {
	if user == nil {
		return model.Forbidden("debes iniciar sesión para ordenar " + n.Plural)
	}
	if !user.Capabilities().EditAnySection {
		return model.Forbidden("sin permisos para ordenar " + n.Plural)
	}
	return nil
}

// CanEdit reports whether user may edit content owned by ownerID.
func CanEdit(user model.User, ownerID string) bool {
	return user.Capabilities().EditAnySection || user.ID == ownerID
}

// CanDelete reports whether user may delete content owned by ownerID.
func CanDelete(user model.User, ownerID string) bool {
	return user.Capabilities().DeleteAnySection || user.ID == ownerID
}

// CreateStatus returns the status new content gets when user asks for
// requested. Unknown statuses become draft. A publish request from a role
// that cannot publish is downgraded to draft and reported as such.
func CreateStatus(user model.User, requested model.Status) (status model.Status, downgraded bool) {
	if !requested.IsValid() {
		return model.StatusDraft, false
	}
	if requested == model.StatusPublished && !user.Capabilities().Publish {
		return model.StatusDraft, true
	}
	return requested, false
}
