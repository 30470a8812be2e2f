package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"awarepress/internal/models"
)

// Seed populates the database with initial development data: a default
// admin user, a preset certificate template, and a sample landing page.
// The admin will be prompted to set up 2FA on first login.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// Default admin user. 2FA is not enabled — they must set it up
	// on first login.
	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@awarepress.local", string(hash), "Admin", "admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	if err := seedDefaultTemplate(db); err != nil {
		return err
	}
	if err := seedSamplePage(db); err != nil {
		return err
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@awarepress.local",
		"password", "admin",
	)

	return nil
}

// seedDefaultTemplate inserts the preset certificate layout marked as
// the default for new course completions.
func seedDefaultTemplate(db *sql.DB) error {
	elements := []models.Element{
		{
			ID:     uuid.New(),
			Type:   models.ElementText,
			X:      20, Y: 18, Width: 60, Height: 10,
			Content: "Certificate of Completion",
			Style: models.Style{
				"fontSize":   "32px",
				"fontWeight": "bold",
				"textAlign":  "center",
			},
		},
		{
			ID:     uuid.New(),
			Type:   models.ElementText,
			X:      20, Y: 40, Width: 60, Height: 8,
			Placeholder: "Recipient name",
			Style:       models.Style{"fontSize": "24px", "textAlign": "center"},
		},
		{
			ID:     uuid.New(),
			Type:   models.ElementSignature,
			X:      14, Y: 70, Width: 20, Height: 16,
			Placeholder: "Signature",
		},
		{
			ID:     uuid.New(),
			Type:   models.ElementCertifyingBody,
			X:      66, Y: 70, Width: 20, Height: 16,
			Placeholder: "Certifying body",
		},
	}

	payload, err := json.Marshal(elements)
	if err != nil {
		return fmt.Errorf("seed marshal template: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO certificate_templates (name, orientation, border_style, background_color, elements, is_default)
		VALUES ($1, $2, $3, $4, $5, TRUE)
	`, "Classic Completion", models.OrientationLandscape, models.BorderClassic, "#fffdf5", payload)
	if err != nil {
		return fmt.Errorf("seed insert template: %w", err)
	}

	return nil
}

// seedSamplePage inserts a published landing page demonstrating the
// block types the page builder supports.
func seedSamplePage(db *sql.DB) error {
	blocks := []models.Block{
		{
			BlockID: uuid.New(),
			Type:    models.BlockHero,
			Order:   0,
			Content: map[string]any{
				"title":    "Security Awareness Training",
				"subtitle": "Practical courses for every team",
				"image":    "",
				"cta_text": "Start training",
				"cta_url":  "/courses",
			},
		},
		{
			BlockID: uuid.New(),
			Type:    models.BlockText,
			Order:   1,
			Content: map[string]any{
				"markdown": "Welcome to **AwarePress**. Edit this page in the admin console.",
			},
		},
		{
			BlockID: uuid.New(),
			Type:    models.BlockButton,
			Order:   2,
			Content: map[string]any{
				"text":  "Browse courses",
				"url":   "/courses",
				"style": "primary",
			},
		},
	}

	payload, err := json.Marshal(blocks)
	if err != nil {
		return fmt.Errorf("seed marshal page: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO pages (title, slug, published, blocks)
		VALUES ($1, $2, TRUE, $3)
	`, "Welcome", "welcome", payload)
	if err != nil {
		return fmt.Errorf("seed insert page: %w", err)
	}

	return nil
}
