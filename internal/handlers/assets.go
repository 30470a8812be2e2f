package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"awarepress/internal/imaging"
	"awarepress/internal/models"
	"awarepress/internal/store"
)

// Assets groups the signature and certifying body image library handlers.
type Assets struct {
	assets *store.AssetStore
}

// NewAssets creates a new Assets handler group.
func NewAssets(assets *store.AssetStore) *Assets {
	return &Assets{assets: assets}
}

// List returns all assets of the kind given in the ?kind= query.
func (h *Assets) List(w http.ResponseWriter, r *http.Request) {
	kind := models.AssetKind(r.URL.Query().Get("kind"))
	if !kind.Valid() {
		respondError(w, http.StatusBadRequest, "unknown asset kind")
		return
	}

	assets, err := h.assets.ListByKind(kind)
	if err != nil {
		slog.Error("list assets failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if assets == nil {
		assets = []models.Asset{}
	}
	respondJSON(w, http.StatusOK, assets)
}

// Get returns a single asset by ID.
func (h *Assets) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	asset, err := h.assets.FindByID(id)
	if err != nil {
		slog.Error("find asset failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if asset == nil {
		respondError(w, http.StatusNotFound, "asset not found")
		return
	}
	respondJSON(w, http.StatusOK, asset)
}

// Create stores a new image asset. The content arrives as a data URI; a
// downsized thumbnail is generated for the library grid. Thumbnail
// failure is not fatal — the original is stored either way.
func (h *Assets) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind    models.AssetKind `json:"kind"`
		Caption string           `json:"caption"`
		Content string           `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !req.Kind.Valid() {
		respondError(w, http.StatusUnprocessableEntity, "unknown asset kind")
		return
	}
	if msg := validateAsset(req.Caption, req.Content); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	asset := &models.Asset{
		Kind:    req.Kind,
		Caption: req.Caption,
		Content: req.Content,
	}

	thumb, err := imaging.ThumbnailDataURI(req.Content, imaging.ThumbnailMaxWidth)
	if err != nil {
		slog.Warn("thumbnail generation failed", "error", err)
	} else {
		asset.Thumbnail = &thumb
	}

	created, err := h.assets.Create(asset)
	if err != nil {
		slog.Error("create asset failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Delete removes an asset from the library. Elements that already bound
// it keep their copied content.
func (h *Assets) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	if err := h.assets.Delete(id); err != nil {
		slog.Error("delete asset failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
