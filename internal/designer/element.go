// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package designer

import (
	"github.com/google/uuid"

	"awarepress/internal/models"
)

// elementDefaults maps each element type to the geometry, placeholder,
// and style a freshly added element starts with. Text gets a wide,
// short, centered box; the image-like types get a small square box.
var elementDefaults = map[models.ElementType]models.Element{
	models.ElementText: {
		X: 30, Y: 42, Width: 40, Height: 8,
		Placeholder: "Add text",
		Style:       models.Style{"align": "center"},
	},
	models.ElementImage: {
		X: 42, Y: 38, Width: 16, Height: 16,
		Placeholder: "Image",
	},
	models.ElementSignature: {
		X: 42, Y: 38, Width: 16, Height: 16,
		Placeholder: "Signature",
	},
	models.ElementCertifyingBody: {
		X: 42, Y: 38, Width: 16, Height: 16,
		Placeholder: "Certifying body",
	},
}

// ElementPatch is a partial element update. Nil fields are left
// untouched; Style entries are merged into the existing style map
// rather than replacing it.
type ElementPatch struct {
	X           *float64
	Y           *float64
	Width       *float64
	Height      *float64
	Content     *string
	Placeholder *string
	Style       models.Style
}

// AddElement appends a new element of the given type with its
// deterministic defaults, selects it, and returns a copy. Unknown
// types return the zero Element and change nothing.
func (e *Editor) AddElement(t models.ElementType) models.Element {
	def, ok := elementDefaults[t]
	if !ok {
		return models.Element{}
	}

	el := def
	el.ID = uuid.New()
	el.Type = t
	el.Style = def.Style.Clone()

	e.tpl.Elements = append(e.tpl.Elements, el)
	e.selected = el.ID
	return el
}

// UpdateElement shallow-merges the patch into the element with the given
// id. A missing id is a silent no-op — callers are expected to only
// reference ids they obtained from this session.
//
// Width/height changes deliberately do not re-clamp x/y: an element
// resized past its remaining canvas space keeps its position. Only the
// interactive drag path clamps.
func (e *Editor) UpdateElement(id uuid.UUID, patch ElementPatch) {
	el := e.tpl.FindElement(id)
	if el == nil {
		return
	}

	if patch.X != nil {
		el.X = *patch.X
	}
	if patch.Y != nil {
		el.Y = *patch.Y
	}
	if patch.Width != nil {
		el.Width = *patch.Width
	}
	if patch.Height != nil {
		el.Height = *patch.Height
	}
	if patch.Content != nil {
		el.Content = *patch.Content
	}
	if patch.Placeholder != nil {
		el.Placeholder = *patch.Placeholder
	}
	if len(patch.Style) > 0 {
		if el.Style == nil {
			el.Style = make(models.Style, len(patch.Style))
		}
		for k, v := range patch.Style {
			el.Style[k] = v
		}
	}
}

// RemoveElement deletes the element with the given id. If it was
// selected, the selection is cleared. Missing ids are a no-op.
func (e *Editor) RemoveElement(id uuid.UUID) {
	for i := range e.tpl.Elements {
		if e.tpl.Elements[i].ID == id {
			e.tpl.Elements = append(e.tpl.Elements[:i], e.tpl.Elements[i+1:]...)
			if e.selected == id {
				e.selected = uuid.Nil
			}
			return
		}
	}
}
