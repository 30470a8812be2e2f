// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"awarepress/internal/models"
)

func testTemplate(name string) *models.Template {
	return &models.Template{
		Name:            name,
		Orientation:     models.OrientationLandscape,
		BorderStyle:     models.BorderModern,
		BackgroundColor: "#ffffff",
		Elements: []models.Element{
			{
				ID:   uuid.New(),
				Type: models.ElementText,
				X:    10, Y: 10, Width: 40, Height: 8,
				Content: "Certificate of Completion",
				Style:   models.Style{"fontSize": "28px"},
			},
			{
				ID:   uuid.New(),
				Type: models.ElementSignature,
				X:    60, Y: 70, Width: 20, Height: 16,
				Placeholder: "Signature",
			},
		},
	}
}

func TestTemplateCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewTemplateStore(db)

	name := "store-test-create"
	t.Cleanup(func() { cleanTemplates(t, db, name) })

	created, err := s.Create(testTemplate(name))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected a generated ID")
	}
	if len(created.Elements) != 2 {
		t.Fatalf("elements: got %d, want 2", len(created.Elements))
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected template, got nil")
	}
	if found.Elements[0].Content != "Certificate of Completion" {
		t.Errorf("element content lost in JSONB round trip: %q", found.Elements[0].Content)
	}
	if found.Elements[0].Style["fontSize"] != "28px" {
		t.Error("element style lost in JSONB round trip")
	}
	if found.BorderStyle != models.BorderModern {
		t.Errorf("border style: got %q, want modern", found.BorderStyle)
	}
}

func TestTemplateFindMissing(t *testing.T) {
	db := testDB(t)
	s := NewTemplateStore(db)

	tpl, err := s.FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if tpl != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestTemplateUpdate(t *testing.T) {
	db := testDB(t)
	s := NewTemplateStore(db)

	name := "store-test-update"
	t.Cleanup(func() { cleanTemplates(t, db, name, name+"-renamed") })

	created, err := s.Create(testTemplate(name))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created.Name = name + "-renamed"
	created.Orientation = models.OrientationPortrait
	created.Elements[0].X = 25
	created.Elements = created.Elements[:1]

	updated, err := s.Update(created)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != name+"-renamed" {
		t.Errorf("name: got %q", updated.Name)
	}
	if updated.Orientation != models.OrientationPortrait {
		t.Errorf("orientation: got %q, want portrait", updated.Orientation)
	}
	if len(updated.Elements) != 1 || updated.Elements[0].X != 25 {
		t.Error("element changes not persisted")
	}

	// Updating a nonexistent template returns nil, not an error.
	ghost := testTemplate("ghost")
	ghost.ID = uuid.New()
	got, err := s.Update(ghost)
	if err != nil {
		t.Fatalf("Update (missing): %v", err)
	}
	if got != nil {
		t.Error("expected nil updating an unknown template")
	}
}

func TestTemplateSetDefault(t *testing.T) {
	db := testDB(t)
	s := NewTemplateStore(db)

	nameA := "store-test-default-a"
	nameB := "store-test-default-b"
	t.Cleanup(func() { cleanTemplates(t, db, nameA, nameB) })

	a, err := s.Create(testTemplate(nameA))
	if err != nil {
		t.Fatalf("Create a: %v", err)
	}
	b, err := s.Create(testTemplate(nameB))
	if err != nil {
		t.Fatalf("Create b: %v", err)
	}

	if err := s.SetDefault(a.ID); err != nil {
		t.Fatalf("SetDefault a: %v", err)
	}
	if err := s.SetDefault(b.ID); err != nil {
		t.Fatalf("SetDefault b: %v", err)
	}

	// Only b may hold the flag now.
	gotA, _ := s.FindByID(a.ID)
	gotB, _ := s.FindByID(b.ID)
	if gotA.IsDefault {
		t.Error("template a should have lost the default flag")
	}
	if !gotB.IsDefault {
		t.Error("template b should be the default")
	}

	def, err := s.FindDefault()
	if err != nil {
		t.Fatalf("FindDefault: %v", err)
	}
	if def == nil || def.ID != b.ID {
		t.Error("FindDefault should return template b")
	}

	if err := s.SetDefault(uuid.New()); err == nil {
		t.Error("expected error setting an unknown template as default")
	}
}

func TestTemplateDeleteDefaultBlocked(t *testing.T) {
	db := testDB(t)
	s := NewTemplateStore(db)

	name := "store-test-delete-default"
	t.Cleanup(func() { cleanTemplates(t, db, name) })

	created, err := s.Create(testTemplate(name))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.SetDefault(created.ID); err != nil {
		t.Fatalf("SetDefault: %v", err)
	}

	err = s.Delete(created.ID)
	if !errors.Is(err, ErrDefaultTemplate) {
		t.Errorf("Delete default: got %v, want ErrDefaultTemplate", err)
	}

	// Unknown ids delete silently.
	if err := s.Delete(uuid.New()); err != nil {
		t.Errorf("Delete unknown: %v", err)
	}
}

func TestTemplateDelete(t *testing.T) {
	db := testDB(t)
	s := NewTemplateStore(db)

	name := "store-test-delete"
	t.Cleanup(func() { cleanTemplates(t, db, name) })

	created, err := s.Create(testTemplate(name))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got != nil {
		t.Error("expected nil after delete")
	}
}
