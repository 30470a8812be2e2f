package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"awarepress/internal/models"
)

// AssetStore handles the signature and certifying body image library.
// Asset content is stored inline as data URIs.
type AssetStore struct {
	db *sql.DB
}

// NewAssetStore creates a new AssetStore with the given database connection.
func NewAssetStore(db *sql.DB) *AssetStore {
	return &AssetStore{db: db}
}

const assetColumns = `id, kind, caption, content, thumbnail, created_at, updated_at`

// ListByKind returns all assets of the given kind, newest first.
func (s *AssetStore) ListByKind(kind models.AssetKind) ([]models.Asset, error) {
	rows, err := s.db.Query(`
		SELECT `+assetColumns+`
		FROM assets
		WHERE kind = $1
		ORDER BY created_at DESC
	`, kind)
	if err != nil {
		return nil, fmt.Errorf("list assets by kind: %w", err)
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(
			&a.ID, &a.Kind, &a.Caption, &a.Content, &a.Thumbnail,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// FindByID retrieves an asset by its UUID. Returns nil if not found.
func (s *AssetStore) FindByID(id uuid.UUID) (*models.Asset, error) {
	a := &models.Asset{}
	err := s.db.QueryRow(`
		SELECT `+assetColumns+` FROM assets WHERE id = $1
	`, id).Scan(
		&a.ID, &a.Kind, &a.Caption, &a.Content, &a.Thumbnail,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find asset by id: %w", err)
	}
	return a, nil
}

// Create inserts a new asset and returns it with the generated ID.
func (s *AssetStore) Create(a *models.Asset) (*models.Asset, error) {
	created := &models.Asset{}
	err := s.db.QueryRow(`
		INSERT INTO assets (kind, caption, content, thumbnail)
		VALUES ($1, $2, $3, $4)
		RETURNING `+assetColumns+`
	`, a.Kind, a.Caption, a.Content, a.Thumbnail).Scan(
		&created.ID, &created.Kind, &created.Caption, &created.Content,
		&created.Thumbnail, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}
	return created, nil
}

// Delete removes an asset by ID. Templates that already bound the asset
// keep their copied content.
func (s *AssetStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM assets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}
