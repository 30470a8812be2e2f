// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"awarepress/internal/blocks"
	"awarepress/internal/cache"
	"awarepress/internal/models"
	"awarepress/internal/render"
	"awarepress/internal/slug"
	"awarepress/internal/store"
)

// Pages groups the landing page CRUD, preview, and public handlers.
type Pages struct {
	pages    *store.PageStore
	renderer *render.Renderer
	previews *cache.PreviewCache
}

// NewPages creates a new Pages handler group.
func NewPages(pages *store.PageStore, renderer *render.Renderer, previews *cache.PreviewCache) *Pages {
	return &Pages{
		pages:    pages,
		renderer: renderer,
		previews: previews,
	}
}

// pageRequest is the JSON body for page create and update.
type pageRequest struct {
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Published bool           `json:"published"`
	Blocks    []models.Block `json:"blocks"`
}

func pageID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid page id")
		return uuid.Nil, false
	}
	return id, true
}

// List returns all pages.
func (h *Pages) List(w http.ResponseWriter, r *http.Request) {
	pages, err := h.pages.List()
	if err != nil {
		slog.Error("list pages failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if pages == nil {
		pages = []models.Page{}
	}
	respondJSON(w, http.StatusOK, pages)
}

// Get returns a single page by ID.
func (h *Pages) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pageID(w, r)
	if !ok {
		return
	}

	page, err := h.pages.FindByID(id)
	if err != nil {
		slog.Error("find page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if page == nil {
		respondError(w, http.StatusNotFound, "page not found")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// Create inserts a new page. An empty slug is derived from the title.
// The block list is validated and renumbered before saving.
func (h *Pages) Create(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Slug == "" {
		req.Slug = slug.Generate(req.Title)
	}
	if msg := validatePageFields(req.Title, req.Slug); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	normalized, ok := normalizeBlocks(w, req.Blocks)
	if !ok {
		return
	}

	created, err := h.pages.Create(&models.Page{
		Title:     req.Title,
		Slug:      req.Slug,
		Published: req.Published,
		Blocks:    normalized,
	})
	if err != nil {
		slog.Error("create page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Update replaces a page's fields and block list, invalidating its
// cached preview.
func (h *Pages) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pageID(w, r)
	if !ok {
		return
	}

	var req pageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Slug == "" {
		req.Slug = slug.Generate(req.Title)
	}
	if msg := validatePageFields(req.Title, req.Slug); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	normalized, ok := normalizeBlocks(w, req.Blocks)
	if !ok {
		return
	}

	updated, err := h.pages.Update(&models.Page{
		ID:        id,
		Title:     req.Title,
		Slug:      req.Slug,
		Published: req.Published,
		Blocks:    normalized,
	})
	if err != nil {
		slog.Error("update page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "page not found")
		return
	}

	h.previews.Invalidate(r.Context(), cache.PageKey(id.String()))
	respondJSON(w, http.StatusOK, updated)
}

// Delete removes a page.
func (h *Pages) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pageID(w, r)
	if !ok {
		return
	}

	if err := h.pages.Delete(id); err != nil {
		slog.Error("delete page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.previews.Invalidate(r.Context(), cache.PageKey(id.String()))
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// BlockTypes returns the block type catalog with default content, so
// the client palette stays in sync with the server.
func (h *Pages) BlockTypes(w http.ResponseWriter, r *http.Request) {
	types := blocks.Types()
	catalog := make([]map[string]any, 0, len(types))
	for _, bt := range types {
		catalog = append(catalog, map[string]any{
			"type":    bt,
			"content": blocks.DefaultContent(bt),
		})
	}
	respondJSON(w, http.StatusOK, catalog)
}

// Preview renders the page as an HTML fragment, served from Valkey when
// available.
func (h *Pages) Preview(w http.ResponseWriter, r *http.Request) {
	id, ok := pageID(w, r)
	if !ok {
		return
	}

	key := cache.PageKey(id.String())
	if html, hit := h.previews.Get(r.Context(), key); hit {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(html)
		return
	}

	page, err := h.pages.FindByID(id)
	if err != nil {
		slog.Error("find page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if page == nil {
		respondError(w, http.StatusNotFound, "page not found")
		return
	}

	html, err := h.renderer.Page(page)
	if err != nil {
		slog.Error("render page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.previews.Set(r.Context(), key, []byte(html))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// PublicBySlug serves a published page to end users.
func (h *Pages) PublicBySlug(w http.ResponseWriter, r *http.Request) {
	page, err := h.pages.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		slog.Error("find page by slug failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if page == nil {
		respondError(w, http.StatusNotFound, "page not found")
		return
	}

	html, err := h.renderer.Page(page)
	if err != nil {
		slog.Error("render page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// normalizeBlocks validates the submitted block list and returns the
// tree's working copy. Validation runs on the raw input: gapped or
// duplicate order values are a 422, never silently rewritten.
func normalizeBlocks(w http.ResponseWriter, list []models.Block) ([]models.Block, bool) {
	if len(list) > maxBlockCount {
		respondError(w, http.StatusUnprocessableEntity, "too many blocks")
		return nil, false
	}

	if err := blocks.Validate(list); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return nil, false
	}
	return blocks.NewTree(list).Blocks(), true
}
