// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Orientation determines the logical canvas size of a certificate template.
type Orientation string

const (
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
)

// Valid reports whether the orientation is a known value.
func (o Orientation) Valid() bool {
	return o == OrientationLandscape || o == OrientationPortrait
}

// BorderStyle selects the decorative frame drawn around a certificate.
type BorderStyle string

const (
	BorderNone    BorderStyle = "none"
	BorderClassic BorderStyle = "classic"
	BorderModern  BorderStyle = "modern"
	BorderRibbon  BorderStyle = "ribbon"
)

// Valid reports whether the border style is a known value.
func (b BorderStyle) Valid() bool {
	switch b {
	case BorderNone, BorderClassic, BorderModern, BorderRibbon:
		return true
	}
	return false
}

// ElementType is the closed set of content kinds that can be placed on a
// certificate canvas.
type ElementType string

const (
	ElementText           ElementType = "text"
	ElementImage          ElementType = "image"
	ElementSignature      ElementType = "signature"
	ElementCertifyingBody ElementType = "certifying_body"
)

// Valid reports whether the element type is a known value.
func (t ElementType) Valid() bool {
	switch t {
	case ElementText, ElementImage, ElementSignature, ElementCertifyingBody:
		return true
	}
	return false
}

// Style is an open map of presentation attributes layered on top of an
// element's type. Keys are free-form (font_size, weight, align, color,
// title for signature captions); unknown keys pass through untouched.
type Style map[string]string

// Clone returns a copy of the style map. A nil receiver yields nil.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Element is a single positioned piece of content on a certificate canvas.
// Geometry lives in percent space: x/y/width/height are percentages of the
// logical canvas size, so the same layout renders at any pixel size.
type Element struct {
	ID          uuid.UUID   `json:"id"`
	Type        ElementType `json:"type"`
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	Width       float64     `json:"width"`
	Height      float64     `json:"height"`
	Content     string      `json:"content"`
	Placeholder string      `json:"placeholder,omitempty"`
	// No omitempty: an empty style map round-trips as {} and a nil
	// one as null, keeping documents structurally stable.
	Style Style `json:"style"`
}

// Template is a certificate layout: a set of positioned elements over a
// background, sized by orientation. Element order carries no meaning —
// the only stacking rule is that the selected element renders on top.
type Template struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Orientation     Orientation `json:"orientation"`
	BorderStyle     BorderStyle `json:"border_style"`
	BackgroundColor string      `json:"background_color"`
	BackgroundImage *string     `json:"background_image,omitempty"`
	Elements        []Element   `json:"elements"`
	IsDefault       bool        `json:"is_default"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// FindElement returns a pointer to the element with the given id, or nil.
func (t *Template) FindElement(id uuid.UUID) *Element {
	for i := range t.Elements {
		if t.Elements[i].ID == id {
			return &t.Elements[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the template. The editing session works on
// a clone so an unsaved working copy never aliases the loaded record.
func (t *Template) Clone() *Template {
	out := *t
	out.Elements = make([]Element, len(t.Elements))
	for i, el := range t.Elements {
		el.Style = el.Style.Clone()
		out.Elements[i] = el
	}
	if t.BackgroundImage != nil {
		img := *t.BackgroundImage
		out.BackgroundImage = &img
	}
	return &out
}
