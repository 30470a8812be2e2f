// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package designer implements the certificate design surface: a canvas of
// typed, positioned elements edited through pointer drags and persisted as
// a percentage-based layout document. The package owns the in-memory model
// and its mutation protocol only — rendering is internal/render's job.
package designer

import (
	"awarepress/internal/models"
)

// Logical canvas size in points (A4 page at 72 dpi). Percent-space
// geometry is resolved against these dimensions regardless of how many
// screen pixels the canvas currently occupies.
const (
	CanvasLongEdge  = 842.0
	CanvasShortEdge = 595.0
)

// CanvasSize returns the logical canvas dimensions for an orientation.
func CanvasSize(o models.Orientation) (w, h float64) {
	if o == models.OrientationPortrait {
		return CanvasShortEdge, CanvasLongEdge
	}
	return CanvasLongEdge, CanvasShortEdge
}

// Transform converts between device pixel offsets and percent space for
// one canvas at one container width. It is a value type: the editor
// replaces it wholesale whenever the container resizes or the template
// orientation changes, so a drag in progress always reads current scale.
type Transform struct {
	LogicalW float64
	LogicalH float64
	Scale    float64
}

// NewTransform derives a transform from the template orientation and the
// rendering container's current pixel width.
func NewTransform(o models.Orientation, containerW float64) Transform {
	w, h := CanvasSize(o)
	t := Transform{LogicalW: w, LogicalH: h}
	if containerW > 0 {
		t.Scale = containerW / w
	}
	return t
}

// ToPercent converts a pixel offset from the canvas origin into percent
// space. With scale = containerW/logicalW this reduces to dx/containerW,
// but the two-factor form mirrors how the scale is derived and applied.
func (t Transform) ToPercent(dx, dy float64) (px, py float64) {
	if t.Scale == 0 {
		return 0, 0
	}
	return dx / (t.LogicalW * t.Scale) * 100, dy / (t.LogicalH * t.Scale) * 100
}

// ToPixels converts a percent-space position into device pixels relative
// to the canvas origin.
func (t Transform) ToPixels(x, y float64) (dx, dy float64) {
	return x / 100 * t.LogicalW * t.Scale, y / 100 * t.LogicalH * t.Scale
}
