// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// serializer.go converts templates to and from the persisted layout
// document. Serialization is plain JSON; the value it adds is the
// validation gate — a document that violates the geometry or enum
// invariants is rejected outright, never silently coerced.
package designer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"awarepress/internal/models"
)

// ErrInvalidDocument is wrapped by every validation failure from
// Serialize, Deserialize, and ValidateTemplate. Handlers test for it with
// errors.Is to distinguish bad documents from infrastructure errors.
var ErrInvalidDocument = errors.New("invalid layout document")

// Serialize produces the persisted layout document for a template.
// The template is validated first so an invalid working copy can never
// reach the backend.
func Serialize(t *models.Template) ([]byte, error) {
	if err := ValidateTemplate(t); err != nil {
		return nil, err
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("serialize template: %w", err)
	}
	return data, nil
}

// Deserialize reconstructs a template from a persisted layout document,
// rejecting documents whose elements violate the bounds invariants.
// For any valid t, Deserialize(Serialize(t)) is structurally equal to t.
func Deserialize(data []byte) (*models.Template, error) {
	var t models.Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := ValidateTemplate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ValidateTemplate checks the structural invariants of a template and
// its elements. It returns the first violation found, wrapped in
// ErrInvalidDocument.
func ValidateTemplate(t *models.Template) error {
	if !t.Orientation.Valid() {
		return fmt.Errorf("%w: unknown orientation %q", ErrInvalidDocument, t.Orientation)
	}
	if !t.BorderStyle.Valid() {
		return fmt.Errorf("%w: unknown border style %q", ErrInvalidDocument, t.BorderStyle)
	}

	seen := make(map[uuid.UUID]bool, len(t.Elements))
	for i := range t.Elements {
		el := &t.Elements[i]
		if err := validateElement(el); err != nil {
			return err
		}
		if seen[el.ID] {
			return fmt.Errorf("%w: duplicate element id %s", ErrInvalidDocument, el.ID)
		}
		seen[el.ID] = true
	}
	return nil
}

// validateElement checks one element's type and geometry invariants:
// 0 ≤ x, 0 ≤ y, x+width ≤ 100, y+height ≤ 100, width > 0, height > 0.
func validateElement(el *models.Element) error {
	if el.ID == uuid.Nil {
		return fmt.Errorf("%w: element with nil id", ErrInvalidDocument)
	}
	if !el.Type.Valid() {
		return fmt.Errorf("%w: element %s: unknown type %q", ErrInvalidDocument, el.ID, el.Type)
	}
	if el.Width <= 0 || el.Height <= 0 {
		return fmt.Errorf("%w: element %s: non-positive size %gx%g", ErrInvalidDocument, el.ID, el.Width, el.Height)
	}
	if el.X < 0 || el.Y < 0 {
		return fmt.Errorf("%w: element %s: negative position (%g, %g)", ErrInvalidDocument, el.ID, el.X, el.Y)
	}
	if el.X+el.Width > 100 {
		return fmt.Errorf("%w: element %s: x+width = %g exceeds 100", ErrInvalidDocument, el.ID, el.X+el.Width)
	}
	if el.Y+el.Height > 100 {
		return fmt.Errorf("%w: element %s: y+height = %g exceeds 100", ErrInvalidDocument, el.ID, el.Y+el.Height)
	}
	return nil
}
