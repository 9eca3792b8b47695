// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "github.com/olegiv/funteco-cms/internal/model"

// Categories of the schema registry.
const (
	SystemCategory = "Colecciones FunTeco"
	CustomCategory = "Colecciones personalizadas"
)

func statusField() model.ContentTypeField {
	return model.ContentTypeField{
		ID:           "status",
		Name:         "Estado",
		Type:         model.FieldEnumeration,
		Required:     true,
		Configurable: true,
		Options:      map[string]any{"values": []any{string(model.StatusDraft), string(model.StatusPublished)}},
	}
}

func field(id, name string, t model.FieldType, required, configurable bool) model.ContentTypeField {
	return model.ContentTypeField{ID: id, Name: name, Type: t, Required: required, Configurable: configurable}
}

func builtinTypes() []model.ContentType {
	return []model.ContentType{
		{
			UID:             model.UIDSections,
			DisplayName:     "Secciones del sitio",
			Description:     "Componentes editoriales que alimentan el hero, llamados a la acción y otros bloques informativos.",
			Category:        SystemCategory,
			Icon:            "align-left",
			DraftAndPublish: true,
			Kind:            model.CollectionTypeKind,
			Fields: []model.ContentTypeField{
				field("title", "Título", model.FieldString, true, true),
				field("slug", "Slug", model.FieldUID, true, false),
				field("content", "Contenido", model.FieldRichText, true, true),
				statusField(),
			},
		},
		{
			UID:             model.UIDTeamMembers,
			DisplayName:     "Integrantes del equipo",
			Description:     "Perfiles con biografías ampliadas, galerías multimedia y enlaces a redes sociales.",
			Category:        SystemCategory,
			Icon:            "users",
			DraftAndPublish: true,
			Kind:            model.CollectionTypeKind,
			Fields: []model.ContentTypeField{
				field("name", "Nombre", model.FieldString, true, true),
				field("slug", "Slug", model.FieldUID, true, false),
				field("role", "Rol", model.FieldString, true, true),
				field("image", "Imagen", model.FieldMedia, true, true),
				field("shortBio", "Resumen", model.FieldText, true, true),
				field("bio", "Biografía", model.FieldJSON, true, true),
				field("focus", "Enfoque", model.FieldString, true, true),
				field("expertise", "Experticias", model.FieldJSON, true, true),
				field("highlights", "Logros", model.FieldJSON, true, true),
				field("socials", "Redes", model.FieldJSON, false, true),
				statusField(),
			},
		},
		{
			UID:             model.UIDEvents,
			DisplayName:     "Eventos y actividades",
			Description:     "Agenda programática y experiencias formativas de la fundación.",
			Category:        SystemCategory,
			Icon:            "calendar",
			DraftAndPublish: true,
			Kind:            model.CollectionTypeKind,
			Fields: []model.ContentTypeField{
				field("title", "Título", model.FieldString, true, true),
				field("slug", "Slug", model.FieldUID, true, false),
				field("shortDescription", "Descripción corta", model.FieldText, true, true),
				field("description", "Descripción", model.FieldJSON, true, true),
				field("date", "Fecha", model.FieldDate, true, true),
				field("image", "Imagen", model.FieldMedia, true, true),
				field("location", "Ubicación", model.FieldString, true, true),
				field("tags", "Etiquetas", model.FieldJSON, false, true),
				statusField(),
			},
		},
	}
}
