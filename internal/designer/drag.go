// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// drag.go implements the pointer drag state machine (Idle → Dragging →
// Idle). The three Pointer methods are the only entry points; they are
// toolkit-independent, taking pixel coordinates relative to the canvas
// origin.
package designer

import (
	"github.com/google/uuid"
)

// dragState carries an in-progress drag. grabDX/grabDY are the pointer's
// pixel offset from the element's top-left at pointer-down; width/height
// are the element's size in percent, captured once at drag start and used
// for clamping for the whole drag.
type dragState struct {
	active bool
	id     uuid.UUID
	grabDX float64
	grabDY float64
	width  float64
	height float64
}

// Dragging reports whether a drag is in progress.
func (e *Editor) Dragging() bool {
	return e.drag.active
}

// PointerDown starts an interaction at pixel position (px, py). A non-nil
// id selects that element and arms a drag; uuid.Nil means the pointer
// went down on empty canvas, which clears the selection. Selection fires
// on pointer-down so a zero-distance drag (a plain click) still selects.
func (e *Editor) PointerDown(id uuid.UUID, px, py float64) {
	if id == uuid.Nil {
		e.selected = uuid.Nil
		return
	}

	el := e.tpl.FindElement(id)
	if el == nil {
		return
	}

	e.selected = id

	ex, ey := e.tf.ToPixels(el.X, el.Y)
	e.drag = dragState{
		active: true,
		id:     id,
		grabDX: px - ex,
		grabDY: py - ey,
		width:  el.Width,
		height: el.Height,
	}
}

// PointerMove commits a new clamped position for the dragged element.
// The transform is read fresh on every move, so a container resize
// mid-drag takes effect immediately. Clamping keeps the element fully
// inside the canvas; it is the intended interaction, not an error.
func (e *Editor) PointerMove(px, py float64) {
	if !e.drag.active {
		return
	}
	el := e.tpl.FindElement(e.drag.id)
	if el == nil {
		// Element removed mid-drag; nothing left to move.
		e.drag = dragState{}
		return
	}

	nx, ny := e.tf.ToPercent(px-e.drag.grabDX, py-e.drag.grabDY)
	el.X = clamp(nx, 0, 100-e.drag.width)
	el.Y = clamp(ny, 0, 100-e.drag.height)
}

// PointerUp ends the drag no matter where the pointer is. Callers hook
// this to a global pointer-up capture so a drag never sticks when the
// pointer leaves the element.
func (e *Editor) PointerUp() {
	e.drag = dragState{}
}

// clamp bounds v to [lo, hi]. If hi < lo (element larger than the
// canvas), lo wins.
func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
