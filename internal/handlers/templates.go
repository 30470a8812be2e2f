// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"awarepress/internal/cache"
	"awarepress/internal/designer"
	"awarepress/internal/models"
	"awarepress/internal/render"
	"awarepress/internal/store"
)

// Templates groups the certificate template CRUD and preview handlers.
type Templates struct {
	templates *store.TemplateStore
	renderer  *render.Renderer
	previews  *cache.PreviewCache
}

// NewTemplates creates a new Templates handler group.
func NewTemplates(templates *store.TemplateStore, renderer *render.Renderer, previews *cache.PreviewCache) *Templates {
	return &Templates{
		templates: templates,
		renderer:  renderer,
		previews:  previews,
	}
}

// templateID parses the {id} URL parameter. Responds with 400 and
// returns false when it is not a UUID.
func templateID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid template id")
		return uuid.Nil, false
	}
	return id, true
}

// List returns all templates.
func (h *Templates) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templates.List()
	if err != nil {
		slog.Error("list templates failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if templates == nil {
		templates = []models.Template{}
	}
	respondJSON(w, http.StatusOK, templates)
}

// Get returns a single template by ID.
func (h *Templates) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := templateID(w, r)
	if !ok {
		return
	}

	tpl, err := h.templates.FindByID(id)
	if err != nil {
		slog.Error("find template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if tpl == nil {
		respondError(w, http.StatusNotFound, "template not found")
		return
	}
	respondJSON(w, http.StatusOK, tpl)
}

// Create inserts a new template. The body is a layout document; its
// elements may be empty. Invalid documents are rejected with 422.
func (h *Templates) Create(w http.ResponseWriter, r *http.Request) {
	tpl, ok := h.decodeDocument(w, r)
	if !ok {
		return
	}

	if msg := validateTemplateName(tpl.Name); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	created, err := h.templates.Create(tpl)
	if err != nil {
		slog.Error("create template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Update replaces a template's layout document. The stored preview for
// the template is invalidated.
func (h *Templates) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := templateID(w, r)
	if !ok {
		return
	}

	tpl, ok := h.decodeDocument(w, r)
	if !ok {
		return
	}

	if msg := validateTemplateName(tpl.Name); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	tpl.ID = id
	updated, err := h.templates.Update(tpl)
	if err != nil {
		slog.Error("update template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "template not found")
		return
	}

	h.previews.Invalidate(r.Context(), cache.TemplateKey(id.String()))
	respondJSON(w, http.StatusOK, updated)
}

// Delete removes a template. The default template cannot be deleted.
func (h *Templates) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := templateID(w, r)
	if !ok {
		return
	}

	err := h.templates.Delete(id)
	if errors.Is(err, store.ErrDefaultTemplate) {
		respondError(w, http.StatusConflict, "cannot delete the default template")
		return
	}
	if err != nil {
		slog.Error("delete template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.previews.Invalidate(r.Context(), cache.TemplateKey(id.String()))
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// SetDefault marks a template as the default for new certificates.
func (h *Templates) SetDefault(w http.ResponseWriter, r *http.Request) {
	id, ok := templateID(w, r)
	if !ok {
		return
	}

	if err := h.templates.SetDefault(id); err != nil {
		slog.Error("set default template failed", "error", err)
		respondError(w, http.StatusNotFound, "template not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Preview renders the template as an HTML fragment. Output is served
// from Valkey when available, falling back to the renderer (which keeps
// its own in-process memo).
func (h *Templates) Preview(w http.ResponseWriter, r *http.Request) {
	id, ok := templateID(w, r)
	if !ok {
		return
	}

	key := cache.TemplateKey(id.String())
	if html, hit := h.previews.Get(r.Context(), key); hit {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(html)
		return
	}

	tpl, err := h.templates.FindByID(id)
	if err != nil {
		slog.Error("find template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if tpl == nil {
		respondError(w, http.StatusNotFound, "template not found")
		return
	}

	html, err := h.renderer.Certificate(tpl)
	if err != nil {
		slog.Error("render template failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.previews.Set(r.Context(), key, []byte(html))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// decodeDocument reads and validates a layout document from the request
// body. Malformed JSON gets a 400; structurally invalid documents a 422.
func (h *Templates) decodeDocument(w http.ResponseWriter, r *http.Request) (*models.Template, bool) {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, 4_000_000))
	if err != nil {
		respondError(w, http.StatusBadRequest, "cannot read request body")
		return nil, false
	}

	// Deserialize wraps both malformed JSON and invariant violations in
	// ErrInvalidDocument.
	tpl, err := designer.Deserialize(body)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return nil, false
	}
	return tpl, true
}
