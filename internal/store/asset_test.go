package store

import (
	"testing"

	"github.com/google/uuid"

	"awarepress/internal/models"
)

// A 1x1 transparent PNG, enough to act as asset content in tests.
const tinyPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func TestAssetCreateAndList(t *testing.T) {
	db := testDB(t)
	s := NewAssetStore(db)

	caption := "store-test-asset"
	t.Cleanup(func() { cleanAssets(t, db, caption) })

	created, err := s.Create(&models.Asset{
		Kind:    models.AssetSignature,
		Caption: caption,
		Content: tinyPNG,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected a generated ID")
	}
	if created.Thumbnail != nil {
		t.Error("thumbnail should be nil when not provided")
	}

	signatures, err := s.ListByKind(models.AssetSignature)
	if err != nil {
		t.Fatalf("ListByKind: %v", err)
	}
	found := false
	for _, a := range signatures {
		if a.ID == created.ID {
			found = true
			if a.Content != tinyPNG {
				t.Error("asset content mangled in storage")
			}
		}
	}
	if !found {
		t.Error("created asset missing from signature list")
	}

	// The other kind must not include it.
	bodies, err := s.ListByKind(models.AssetCertifyingBody)
	if err != nil {
		t.Fatalf("ListByKind: %v", err)
	}
	for _, a := range bodies {
		if a.ID == created.ID {
			t.Error("signature asset leaked into certifying body list")
		}
	}
}

func TestAssetFindAndDelete(t *testing.T) {
	db := testDB(t)
	s := NewAssetStore(db)

	caption := "store-test-asset-delete"
	t.Cleanup(func() { cleanAssets(t, db, caption) })

	thumb := tinyPNG
	created, err := s.Create(&models.Asset{
		Kind:      models.AssetCertifyingBody,
		Caption:   caption,
		Content:   tinyPNG,
		Thumbnail: &thumb,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected asset, got nil")
	}
	if found.Thumbnail == nil || *found.Thumbnail != tinyPNG {
		t.Error("thumbnail not persisted")
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	gone, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if gone != nil {
		t.Error("expected nil after delete")
	}

	if missing, err := s.FindByID(uuid.New()); err != nil || missing != nil {
		t.Errorf("unknown id: got (%v, %v), want (nil, nil)", missing, err)
	}
}
