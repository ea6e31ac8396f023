package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// seedCategory is one entry of the fixed homepage taxonomy.
type seedCategory struct {
	name        string
	slug        string
	description string
	sortOrder   int
}

// The six shop categories. Slugs double as asset bucket names, so they
// are fixed here rather than derived from the Turkish display names.
var seedCategories = []seedCategory{
	{"At Koşu Ekipmanları", "kosum-takimi", "At koşu ekipmanları ve aksesuarları", 1},
	{"Tımar Ekipmanları", "timar", "At tımar ekipmanları ve bakım ürünleri", 2},
	{"At Bakım Ekipmanları", "bakim", "At bakım ekipmanları ve ürünleri", 3},
	{"Nalbant Ekipmanları", "nalbant", "Nalbant ekipmanları ve aksesuarları", 4},
	{"Binici Ekipmanları", "binici", "Binici ekipmanları ve aksesuarları", 5},
	{"Araba ve Fayton Takımı", "eyer", "Araba ve fayton takımı ekipmanları", 6},
}

// SeedCategories upserts the fixed category taxonomy, keyed by slug.
// Running it repeatedly refreshes names and ordering without duplicating
// rows, so it is safe on every startup.
func SeedCategories(db *sql.DB) error {
	for _, c := range seedCategories {
		_, err := db.Exec(`
			INSERT INTO categories (name, slug, description, sort_order, is_active)
			VALUES ($1, $2, $3, $4, TRUE)
			ON CONFLICT (slug) DO UPDATE SET
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				sort_order = EXCLUDED.sort_order,
				is_active = TRUE,
				updated_at = NOW()
		`, c.name, c.slug, c.description, c.sortOrder)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", c.slug, err)
		}
	}
	slog.Info("category taxonomy seeded", "count", len(seedCategories))
	return nil
}

// EnsureAdmin creates the admin account named by ADMIN_USERNAME,
// ADMIN_EMAIL and ADMIN_PASSWORD when it does not exist yet. With the
// variables unset, or when the schema is not ready, it does nothing.
func EnsureAdmin(db *sql.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || email == "" || password == "" {
		return nil
	}

	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		// Runs during startup, possibly before migrations on a fresh
		// database. Log and move on rather than aborting boot.
		slog.Warn("admin bootstrap skipped", "error", err)
		return nil
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
	`, username, email, string(hash))
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	slog.Info("admin account created", "username", username)
	return nil
}
