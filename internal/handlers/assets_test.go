package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"awarepress/internal/models"
)

// pngDataURI builds a solid-color PNG data URI of the given size.
func pngDataURI(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 60, B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func createAsset(t *testing.T, env *testEnv, kind models.AssetKind, caption string, content string) models.Asset {
	t.Helper()

	body, _ := json.Marshal(map[string]any{
		"kind":    kind,
		"caption": caption,
		"content": content,
	})
	req := authedRequest(http.MethodPost, "/api/assets", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	env.Assets.Create(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("create asset: got %d: %s", rr.Code, rr.Body.String())
	}

	var created models.Asset
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created asset: %v", err)
	}
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM assets WHERE id = $1", created.ID)
	})
	return created
}

func TestAssetCreateGeneratesThumbnail(t *testing.T) {
	env := newTestEnv(t)

	created := createAsset(t, env, models.AssetSignature, "handler-test-sig", pngDataURI(t, 800, 400))

	if created.Thumbnail == nil {
		t.Fatal("expected a generated thumbnail")
	}
	if !strings.HasPrefix(*created.Thumbnail, "data:image/png;base64,") {
		t.Error("thumbnail should be a PNG data URI")
	}
	// The thumbnail is strictly smaller than the 800px original.
	if len(*created.Thumbnail) >= len(created.Content) {
		t.Error("thumbnail should be smaller than the original")
	}
}

func TestAssetCreateRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)

	post := func(body string) int {
		req := authedRequest(http.MethodPost, "/api/assets", strings.NewReader(body))
		rr := httptest.NewRecorder()
		env.Assets.Create(rr, req)
		return rr.Code
	}

	if code := post(`{"kind": "wallpaper", "caption": "x", "content": "data:image/png;base64,AAAA"}`); code != http.StatusUnprocessableEntity {
		t.Errorf("unknown kind: got %d, want 422", code)
	}
	if code := post(`{"kind": "signature", "caption": "x", "content": ""}`); code != http.StatusUnprocessableEntity {
		t.Errorf("empty content: got %d, want 422", code)
	}
	if code := post(`{"kind": "signature", "caption": "x", "content": "https://example.com/img.png"}`); code != http.StatusUnprocessableEntity {
		t.Errorf("non data URI: got %d, want 422", code)
	}
	if code := post(`{broken`); code != http.StatusBadRequest {
		t.Errorf("malformed JSON: got %d, want 400", code)
	}
}

func TestAssetListFiltersByKind(t *testing.T) {
	env := newTestEnv(t)

	sig := createAsset(t, env, models.AssetSignature, "handler-test-list-sig", pngDataURI(t, 64, 64))
	body := createAsset(t, env, models.AssetCertifyingBody, "handler-test-list-body", pngDataURI(t, 64, 64))

	list := func(kind string) []models.Asset {
		req := authedRequest(http.MethodGet, "/api/assets?kind="+kind, nil)
		rr := httptest.NewRecorder()
		env.Assets.List(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("list %s: got %d", kind, rr.Code)
		}
		var assets []models.Asset
		json.Unmarshal(rr.Body.Bytes(), &assets)
		return assets
	}

	for _, a := range list("signature") {
		if a.ID == body.ID {
			t.Error("certifying body asset leaked into signature list")
		}
	}
	found := false
	for _, a := range list("certifying_body") {
		if a.ID == body.ID {
			found = true
		}
		if a.ID == sig.ID {
			t.Error("signature asset leaked into certifying body list")
		}
	}
	if !found {
		t.Error("created certifying body asset missing from its list")
	}

	// Missing or unknown kind is a 400.
	req := authedRequest(http.MethodGet, "/api/assets", nil)
	rr := httptest.NewRecorder()
	env.Assets.List(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("missing kind: got %d, want 400", rr.Code)
	}
}

func TestAssetDelete(t *testing.T) {
	env := newTestEnv(t)

	created := createAsset(t, env, models.AssetSignature, "handler-test-delete", pngDataURI(t, 64, 64))

	req := withURLParam(authedRequest(http.MethodDelete, "/api/assets/"+created.ID.String(), nil), "id", created.ID.String())
	rr := httptest.NewRecorder()
	env.Assets.Delete(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete: got %d", rr.Code)
	}

	req = withURLParam(authedRequest(http.MethodGet, fmt.Sprintf("/api/assets/%s", created.ID), nil), "id", created.ID.String())
	rr = httptest.NewRecorder()
	env.Assets.Get(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("get after delete: got %d, want 404", rr.Code)
	}
}
