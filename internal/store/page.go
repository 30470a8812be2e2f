// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"awarepress/internal/models"
)

// PageStore handles landing page persistence. The block list is stored
// as a JSONB column.
type PageStore struct {
	db *sql.DB
}

// NewPageStore creates a new PageStore with the given database connection.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

const pageColumns = `id, title, slug, published, blocks, created_at, updated_at`

func scanPage(row interface{ Scan(...any) error }) (*models.Page, error) {
	p := &models.Page{}
	var blocks []byte
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Published, &blocks, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(blocks, &p.Blocks); err != nil {
		return nil, fmt.Errorf("decode page blocks: %w", err)
	}
	return p, nil
}

// List returns all pages ordered by creation date descending.
func (s *PageStore) List() ([]models.Page, error) {
	rows, err := s.db.Query(`
		SELECT ` + pageColumns + `
		FROM pages
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, *p)
	}
	return pages, rows.Err()
}

// FindByID retrieves a page by its UUID. Returns nil if not found.
func (s *PageStore) FindByID(id uuid.UUID) (*models.Page, error) {
	p, err := scanPage(s.db.QueryRow(`
		SELECT `+pageColumns+` FROM pages WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a published page by its slug. Used for public
// page rendering. Returns nil if not found or unpublished.
func (s *PageStore) FindBySlug(slug string) (*models.Page, error) {
	p, err := scanPage(s.db.QueryRow(`
		SELECT `+pageColumns+` FROM pages WHERE slug = $1 AND published
	`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new page and returns it with the generated ID.
func (s *PageStore) Create(p *models.Page) (*models.Page, error) {
	blocks, err := marshalBlocks(p.Blocks)
	if err != nil {
		return nil, err
	}

	created, err := scanPage(s.db.QueryRow(`
		INSERT INTO pages (title, slug, published, blocks)
		VALUES ($1, $2, $3, $4)
		RETURNING `+pageColumns+`
	`, p.Title, p.Slug, p.Published, blocks))
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return created, nil
}

// Update saves changes to an existing page. Returns nil if no page with
// the given ID exists.
func (s *PageStore) Update(p *models.Page) (*models.Page, error) {
	blocks, err := marshalBlocks(p.Blocks)
	if err != nil {
		return nil, err
	}

	updated, err := scanPage(s.db.QueryRow(`
		UPDATE pages
		SET title = $1, slug = $2, published = $3, blocks = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING `+pageColumns+`
	`, p.Title, p.Slug, p.Published, blocks, p.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update page: %w", err)
	}
	return updated, nil
}

// Delete removes a page by ID.
func (s *PageStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM pages WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

// marshalBlocks encodes a block slice as JSON, normalizing nil to [].
func marshalBlocks(blocks []models.Block) ([]byte, error) {
	if blocks == nil {
		blocks = []models.Block{}
	}
	payload, err := json.Marshal(blocks)
	if err != nil {
		return nil, fmt.Errorf("encode page blocks: %w", err)
	}
	return payload, nil
}
