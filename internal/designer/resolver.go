// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// resolver.go computes the effective displayed content and style of an
// element. Renderers call these functions instead of reading raw fields,
// so the placeholder and style-default chain lives in one place.
package designer

import (
	"fmt"

	"github.com/google/uuid"

	"awarepress/internal/models"
)

// Default text style applied when an element's style map leaves an
// attribute unset.
const (
	DefaultFontSize = "14px"
	DefaultWeight   = "normal"
	DefaultAlign    = "left"
	DefaultColor    = "#333"
)

// EffectiveContent returns what an element displays: its content if
// non-empty, otherwise its placeholder. Placeholder text is display-only
// and never written back into content.
func EffectiveContent(el *models.Element) string {
	if el.Content != "" {
		return el.Content
	}
	return el.Placeholder
}

// IsPlaceholder reports whether the element currently displays its
// placeholder rather than real content.
func IsPlaceholder(el *models.Element) bool {
	return el.Content == ""
}

// EffectiveStyle returns a copy of the element's style. For text
// elements, unset attributes fall back to the font defaults; other
// types pass their style through as-is.
func EffectiveStyle(el *models.Element) models.Style {
	s := el.Style.Clone()
	if s == nil {
		s = models.Style{}
	}
	if el.Type != models.ElementText {
		return s
	}
	if s["font_size"] == "" {
		s["font_size"] = DefaultFontSize
	}
	if s["weight"] == "" {
		s["weight"] = DefaultWeight
	}
	if s["align"] == "" {
		s["align"] = DefaultAlign
	}
	if s["color"] == "" {
		s["color"] = DefaultColor
	}
	return s
}

// assetElementKind maps bindable element types to the asset kind they
// accept. Text and image elements take literal content only.
var assetElementKind = map[models.ElementType]models.AssetKind{
	models.ElementSignature:      models.AssetSignature,
	models.ElementCertifyingBody: models.AssetCertifyingBody,
}

// BindAsset copies a catalog asset's content and caption into the
// element. The copy happens once, at bind time: editing or deleting the
// asset later does not reach back into elements already bound to it.
func (e *Editor) BindAsset(elementID uuid.UUID, asset *models.Asset) error {
	el := e.tpl.FindElement(elementID)
	if el == nil {
		return fmt.Errorf("bind asset: element %s not found", elementID)
	}

	want, ok := assetElementKind[el.Type]
	if !ok {
		return fmt.Errorf("bind asset: element type %q does not take assets", el.Type)
	}
	if asset.Kind != want {
		return fmt.Errorf("bind asset: element type %q needs a %q asset, got %q", el.Type, want, asset.Kind)
	}

	el.Content = asset.Content
	if el.Style == nil {
		el.Style = models.Style{}
	}
	el.Style["title"] = asset.Caption
	return nil
}
