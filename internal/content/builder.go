// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"slices"

	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/util"
)

// Builder manages the schema registry. Every mutation needs the
// manage-users capability; built-in types are read-only.
type Builder struct{ c *core }

// TypeInput is the input of Builder.Create. UID defaults to the slug of
// DisplayName.
type TypeInput struct {
	UID             string       `json:"uid,omitempty"`
	DisplayName     string       `json:"displayName"`
	Description     string       `json:"description"`
	Category        string       `json:"category,omitempty"`
	Icon            string       `json:"icon,omitempty"`
	DraftAndPublish *bool        `json:"draftAndPublish,omitempty"`
	Fields          []FieldInput `json:"fields,omitempty"`
}

// TypeUpdate changes the descriptive attributes of a type. Fields are
// managed with AddField, UpdateField and RemoveField.
type TypeUpdate struct {
	DisplayName     *string `json:"displayName,omitempty"`
	Description     *string `json:"description,omitempty"`
	Category        *string `json:"category,omitempty"`
	Icon            *string `json:"icon,omitempty"`
	DraftAndPublish *bool   `json:"draftAndPublish,omitempty"`
}

// FieldInput describes a new field. ID defaults to the slug of Name.
type FieldInput struct {
	ID           string          `json:"id,omitempty"`
	Name         string          `json:"name"`
	Type         model.FieldType `json:"type"`
	Required     bool            `json:"required"`
	Configurable *bool           `json:"configurable,omitempty"`
	DefaultValue any             `json:"defaultValue,omitempty"`
	Options      map[string]any  `json:"options,omitempty"`
}

// FieldUpdate is a partial field update. The field id never changes.
type FieldUpdate struct {
	Name         *string          `json:"name,omitempty"`
	Type         *model.FieldType `json:"type,omitempty"`
	Required     *bool            `json:"required,omitempty"`
	DefaultValue any              `json:"defaultValue,omitempty"`
	Options      map[string]any   `json:"options,omitempty"`
}

func requireSchemaAccess(user *model.User, action string) error {
	if user == nil || !user.Capabilities().ManageUsers {
		return model.Forbidden("sin permisos para " + action)
	}
	return nil
}

// List returns every content type, built-ins first.
func (b *Builder) List() []model.ContentType {
	var out []model.ContentType
	b.c.doc.View(func(st State) { out = model.CloneContentTypes(st.ContentTypes) })
	return out
}

// Get returns the content type with uid.
func (b *Builder) Get(uid string) (model.ContentType, error) {
	var (
		ct model.ContentType
		ok bool
	)
	b.c.doc.View(func(st State) {
		if i, found := st.contentType(uid); found {
			ct, ok = st.ContentTypes[i].Clone(), true
		}
	})
	if !ok {
		return model.ContentType{}, model.NotFound("tipo de contenido no encontrado")
	}
	return ct, nil
}

// Create registers a custom content type with an empty collection.
func (b *Builder) Create(ctx context.Context, in TypeInput) (model.ContentType, error) {
	user := b.c.currentUser()
	var created model.ContentType
	err := b.c.doc.Update(ctx, func(st *State) error {
		if err := requireSchemaAccess(user, "crear tipos de contenido"); err != nil {
			return err
		}
		uid := in.UID
		switch {
		case uid == "":
			uid = util.Slugify(in.DisplayName)
		case !util.IsValidSlug(uid):
			return model.Invalid("el UID solo admite minúsculas, números y guiones")
		}
		if uid == "" {
			return model.Invalid("el nombre interno del tipo no puede estar vacío")
		}
		if _, exists := st.contentType(uid); exists {
			return model.Invalid("ya existe un tipo de contenido con ese UID")
		}

		ct := model.ContentType{
			UID:             uid,
			DisplayName:     in.DisplayName,
			Description:     in.Description,
			Category:        in.Category,
			Icon:            in.Icon,
			DraftAndPublish: true,
			Kind:            model.CollectionTypeKind,
			Configurable:    true,
			Fields:          []model.ContentTypeField{},
		}
		if ct.Category == "" {
			ct.Category = CustomCategory
		}
		if ct.Icon == "" {
			ct.Icon = "database"
		}
		if in.DraftAndPublish != nil {
			ct.DraftAndPublish = *in.DraftAndPublish
		}
		for _, fi := range in.Fields {
			f, err := newField(ct.Fields, fi)
			if err != nil {
				return err
			}
			ct.Fields = append(ct.Fields, f)
		}

		st.ContentTypes = append(st.ContentTypes, ct)
		st.CustomCollections[uid] = []model.ContentEntry{}
		created = ct.Clone()
		return nil
	})
	if err != nil {
		return model.ContentType{}, err
	}
	b.c.logger.Info("content type created", "category", model.EventCategorySchema, "uid", created.UID)
	return created, nil
}

// editable returns the index of a configurable type or the reason it
// cannot be changed.
func editable(st *State, uid string) (int, error) {
	i, ok := st.contentType(uid)
	if !ok {
		return -1, model.NotFound("tipo de contenido no encontrado")
	}
	if !st.ContentTypes[i].Configurable {
		return -1, model.Forbidden("el tipo de contenido no permite modificaciones")
	}
	return i, nil
}

// Update changes the descriptive attributes of a custom type.
func (b *Builder) Update(ctx context.Context, uid string, in TypeUpdate) (model.ContentType, error) {
	user := b.c.currentUser()
	var updated model.ContentType
	err := b.c.doc.Update(ctx, func(st *State) error {
		if err := requireSchemaAccess(user, "editar tipos de contenido"); err != nil {
			return err
		}
		i, err := editable(st, uid)
		if err != nil {
			return err
		}
		ct := &st.ContentTypes[i]
		if in.DisplayName != nil {
			ct.DisplayName = *in.DisplayName
		}
		if in.Description != nil {
			ct.Description = *in.Description
		}
		if in.Category != nil {
			ct.Category = *in.Category
		}
		if in.Icon != nil {
			ct.Icon = *in.Icon
		}
		if in.DraftAndPublish != nil {
			ct.DraftAndPublish = *in.DraftAndPublish
		}
		updated = ct.Clone()
		return nil
	})
	if err != nil {
		return model.ContentType{}, err
	}
	return updated, nil
}

// Delete removes a custom type and its whole collection. Built-in types
// can never be deleted.
func (b *Builder) Delete(ctx context.Context, uid string) error {
	user := b.c.currentUser()
	err := b.c.doc.Update(ctx, func(st *State) error {
		if model.KindOfUID(uid) != model.KindCustom {
			return model.Forbidden("no es posible eliminar un tipo del sistema")
		}
		if err := requireSchemaAccess(user, "eliminar tipos de contenido"); err != nil {
			return err
		}
		i, err := editable(st, uid)
		if err != nil {
			return err
		}
		st.ContentTypes = slices.Delete(st.ContentTypes, i, i+1)
		delete(st.CustomCollections, uid)
		return nil
	})
	if err != nil {
		return err
	}
	b.c.logger.Info("content type deleted", "category", model.EventCategorySchema, "uid", uid)
	return nil
}

func newField(existing []model.ContentTypeField, in FieldInput) (model.ContentTypeField, error) {
	if !in.Type.IsValid() {
		return model.ContentTypeField{}, model.Invalid("tipo de campo no admitido")
	}
	source := in.ID
	if source == "" {
		source = in.Name
	}
	id := util.Slugify(source)
	if id == "" {
		return model.ContentTypeField{}, model.Invalid("el nombre del campo es obligatorio")
	}
	if slices.ContainsFunc(existing, func(f model.ContentTypeField) bool { return f.ID == id }) {
		return model.ContentTypeField{}, model.Invalid("ya existe un campo con ese identificador")
	}

	def, opts, err := fieldValues(in.DefaultValue, in.Options)
	if err != nil {
		return model.ContentTypeField{}, err
	}
	f := model.ContentTypeField{
		ID:           id,
		Name:         in.Name,
		Type:         in.Type,
		Required:     in.Required,
		Configurable: true,
		DefaultValue: def,
		Options:      opts,
	}
	if in.Configurable != nil {
		f.Configurable = *in.Configurable
	}
	return f, nil
}

// AddField appends a field to a custom type.
func (b *Builder) AddField(ctx context.Context, uid string, in FieldInput) (model.ContentTypeField, error) {
	user := b.c.currentUser()
	var added model.ContentTypeField
	err := b.c.doc.Update(ctx, func(st *State) error {
		if err := requireSchemaAccess(user, "gestionar campos"); err != nil {
			return err
		}
		i, err := editable(st, uid)
		if err != nil {
			return err
		}
		f, err := newField(st.ContentTypes[i].Fields, in)
		if err != nil {
			return err
		}
		st.ContentTypes[i].Fields = append(st.ContentTypes[i].Fields, f)
		added = f.Clone()
		return nil
	})
	if err != nil {
		return model.ContentTypeField{}, err
	}
	return added, nil
}

func fieldIndex(ct model.ContentType, id string) (int, error) {
	j := slices.IndexFunc(ct.Fields, func(f model.ContentTypeField) bool { return f.ID == id })
	if j < 0 {
		return -1, model.NotFound("campo no encontrado")
	}
	if !ct.Fields[j].Configurable {
		return -1, model.Forbidden("el campo es parte del sistema")
	}
	return j, nil
}

// UpdateField changes a configurable field of a custom type.
func (b *Builder) UpdateField(ctx context.Context, uid, fieldID string, in FieldUpdate) (model.ContentTypeField, error) {
	user := b.c.currentUser()
	var updated model.ContentTypeField
	err := b.c.doc.Update(ctx, func(st *State) error {
		if err := requireSchemaAccess(user, "editar campos"); err != nil {
			return err
		}
		i, err := editable(st, uid)
		if err != nil {
			return err
		}
		j, err := fieldIndex(st.ContentTypes[i], fieldID)
		if err != nil {
			return err
		}
		if in.Type != nil && !in.Type.IsValid() {
			return model.Invalid("tipo de campo no admitido")
		}

		f := &st.ContentTypes[i].Fields[j]
		if in.Name != nil {
			f.Name = *in.Name
		}
		if in.Type != nil {
			f.Type = *in.Type
		}
		if in.Required != nil {
			f.Required = *in.Required
		}
		def, opts, err := fieldValues(in.DefaultValue, in.Options)
		if err != nil {
			return err
		}
		if in.DefaultValue != nil {
			f.DefaultValue = def
		}
		if in.Options != nil {
			f.Options = opts
		}
		updated = f.Clone()
		return nil
	})
	if err != nil {
		return model.ContentTypeField{}, err
	}
	return updated, nil
}

// RemoveField drops a configurable field from a custom type. Stored
// entry attributes are kept.
func (b *Builder) RemoveField(ctx context.Context, uid, fieldID string) error {
	user := b.c.currentUser()
	return b.c.doc.Update(ctx, func(st *State) error {
		if err := requireSchemaAccess(user, "eliminar campos"); err != nil {
			return err
		}
		i, err := editable(st, uid)
		if err != nil {
			return err
		}
		j, err := fieldIndex(st.ContentTypes[i], fieldID)
		if err != nil {
			return err
		}
		st.ContentTypes[i].Fields = slices.Delete(st.ContentTypes[i].Fields, j, j+1)
		return nil
	})
}
