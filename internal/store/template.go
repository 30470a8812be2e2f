// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"awarepress/internal/models"
)

// ErrDefaultTemplate is returned when attempting to delete the template
// currently marked as the default.
var ErrDefaultTemplate = errors.New("cannot delete the default template")

// TemplateStore handles certificate template persistence. Element layouts
// are stored as a JSONB column.
type TemplateStore struct {
	db *sql.DB
}

// NewTemplateStore creates a new TemplateStore with the given database connection.
func NewTemplateStore(db *sql.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

const templateColumns = `id, name, orientation, border_style, background_color, background_image, elements, is_default, created_at, updated_at`

// scanTemplate scans one template row, decoding the elements JSONB payload.
func scanTemplate(row interface{ Scan(...any) error }) (*models.Template, error) {
	t := &models.Template{}
	var elements []byte
	err := row.Scan(
		&t.ID, &t.Name, &t.Orientation, &t.BorderStyle,
		&t.BackgroundColor, &t.BackgroundImage, &elements,
		&t.IsDefault, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(elements, &t.Elements); err != nil {
		return nil, fmt.Errorf("decode template elements: %w", err)
	}
	return t, nil
}

// List returns all templates ordered by creation date descending.
func (s *TemplateStore) List() ([]models.Template, error) {
	rows, err := s.db.Query(`
		SELECT ` + templateColumns + `
		FROM certificate_templates
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, *t)
	}
	return templates, rows.Err()
}

// FindByID retrieves a template by its UUID. Returns nil if not found.
func (s *TemplateStore) FindByID(id uuid.UUID) (*models.Template, error) {
	t, err := scanTemplate(s.db.QueryRow(`
		SELECT `+templateColumns+`
		FROM certificate_templates WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template by id: %w", err)
	}
	return t, nil
}

// FindDefault retrieves the template marked as default. Returns nil if
// no default is set.
func (s *TemplateStore) FindDefault() (*models.Template, error) {
	t, err := scanTemplate(s.db.QueryRow(`
		SELECT ` + templateColumns + `
		FROM certificate_templates WHERE is_default
	`))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find default template: %w", err)
	}
	return t, nil
}

// Create inserts a new template and returns it with the generated ID.
func (s *TemplateStore) Create(t *models.Template) (*models.Template, error) {
	elements, err := marshalElements(t.Elements)
	if err != nil {
		return nil, err
	}

	created, err := scanTemplate(s.db.QueryRow(`
		INSERT INTO certificate_templates (name, orientation, border_style, background_color, background_image, elements)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+templateColumns+`
	`, t.Name, t.Orientation, t.BorderStyle, t.BackgroundColor, t.BackgroundImage, elements))
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	return created, nil
}

// Update saves changes to an existing template. Returns nil if no
// template with the given ID exists.
func (s *TemplateStore) Update(t *models.Template) (*models.Template, error) {
	elements, err := marshalElements(t.Elements)
	if err != nil {
		return nil, err
	}

	updated, err := scanTemplate(s.db.QueryRow(`
		UPDATE certificate_templates
		SET name = $1, orientation = $2, border_style = $3,
		    background_color = $4, background_image = $5,
		    elements = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+templateColumns+`
	`, t.Name, t.Orientation, t.BorderStyle, t.BackgroundColor, t.BackgroundImage, elements, t.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}
	return updated, nil
}

// SetDefault marks the given template as the default, clearing the flag
// from any other template in the same transaction.
func (s *TemplateStore) SetDefault(id uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("set default template: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE certificate_templates SET is_default = FALSE WHERE is_default`); err != nil {
		return fmt.Errorf("clear default template: %w", err)
	}

	res, err := tx.Exec(`UPDATE certificate_templates SET is_default = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("set default template: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("set default template: no template with id %s", id)
	}

	return tx.Commit()
}

// Delete removes a template by ID. The default template cannot be deleted.
func (s *TemplateStore) Delete(id uuid.UUID) error {
	var isDefault bool
	err := s.db.QueryRow(`SELECT is_default FROM certificate_templates WHERE id = $1`, id).Scan(&isDefault)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if isDefault {
		return ErrDefaultTemplate
	}

	if _, err := s.db.Exec(`DELETE FROM certificate_templates WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

// marshalElements encodes an element slice as JSON, normalizing nil to [].
func marshalElements(elements []models.Element) ([]byte, error) {
	if elements == nil {
		elements = []models.Element{}
	}
	payload, err := json.Marshal(elements)
	if err != nil {
		return nil, fmt.Errorf("encode template elements: %w", err)
	}
	return payload, nil
}
