// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package designer

import (
	"github.com/google/uuid"

	"awarepress/internal/models"
)

// Editor is one certificate editing session: the working copy of a
// template, the current selection, the drag state machine, and the
// active coordinate transform. It is the sole writer of the working
// copy and holds no locks — all mutations happen synchronously on the
// caller's event loop.
type Editor struct {
	tpl      *models.Template
	selected uuid.UUID // uuid.Nil means nothing selected
	drag     dragState
	tf       Transform
}

// NewEditor opens an editing session over a deep copy of the template,
// sized for the given container width. The caller's template is never
// mutated; changes live only in the working copy until saved.
func NewEditor(t *models.Template, containerW float64) *Editor {
	return &Editor{
		tpl: t.Clone(),
		tf:  NewTransform(t.Orientation, containerW),
	}
}

// Template returns the working copy. The rendering surface reads through
// this pointer; only the editor writes to it.
func (e *Editor) Template() *models.Template {
	return e.tpl
}

// Transform returns the active coordinate transform.
func (e *Editor) Transform() Transform {
	return e.tf
}

// SetContainerWidth recomputes the transform for a resized container.
// A drag in progress picks up the new scale on its next pointer move.
func (e *Editor) SetContainerWidth(containerW float64) {
	e.tf = NewTransform(e.tpl.Orientation, containerW)
}

// SetOrientation switches the canvas orientation and recomputes the
// transform. containerW is the container's current pixel width.
func (e *Editor) SetOrientation(o models.Orientation, containerW float64) {
	if !o.Valid() {
		return
	}
	e.tpl.Orientation = o
	e.tf = NewTransform(o, containerW)
}

// Selected returns the id of the selected element and whether one is
// selected. The selected element renders on top; there is no other
// z-ordering between elements.
func (e *Editor) Selected() (uuid.UUID, bool) {
	return e.selected, e.selected != uuid.Nil
}

// Select marks an element as selected. Unknown ids clear the selection.
func (e *Editor) Select(id uuid.UUID) {
	if e.tpl.FindElement(id) == nil {
		e.selected = uuid.Nil
		return
	}
	e.selected = id
}

// ClearSelection deselects whatever is selected.
func (e *Editor) ClearSelection() {
	e.selected = uuid.Nil
}
