// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"ihsantack/internal/models"
	"ihsantack/internal/slug"
)

// BrandStore manages equipment manufacturers.
type BrandStore struct {
	db *sql.DB
}

// NewBrandStore returns a new BrandStore.
func NewBrandStore(db *sql.DB) *BrandStore {
	return &BrandStore{db: db}
}

const brandColumns = `id, name, slug, logo, description, website, is_active, created_at`

func scanBrand(scanner interface{ Scan(...any) error }) (*models.Brand, error) {
	var b models.Brand
	err := scanner.Scan(
		&b.ID, &b.Name, &b.Slug, &b.Logo, &b.Description, &b.Website,
		&b.IsActive, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListActive returns active brands ordered by name.
func (s *BrandStore) ListActive() ([]models.Brand, error) {
	rows, err := s.db.Query(`SELECT ` + brandColumns + ` FROM brands
		WHERE is_active = TRUE ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list active brands: %w", err)
	}
	defer rows.Close()

	var items []models.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// ByID retrieves a brand by primary key. Returns nil if not found.
func (s *BrandStore) ByID(id uuid.UUID) (*models.Brand, error) {
	row := s.db.QueryRow(`SELECT `+brandColumns+` FROM brands WHERE id = $1`, id)
	b, err := scanBrand(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("brand by id: %w", err)
	}
	return b, nil
}

// ActiveBySlug retrieves an active brand by slug. Returns nil if not found.
func (s *BrandStore) ActiveBySlug(brandSlug string) (*models.Brand, error) {
	row := s.db.QueryRow(`SELECT `+brandColumns+` FROM brands
		WHERE slug = $1 AND is_active = TRUE`, brandSlug)
	b, err := scanBrand(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("brand by slug: %w", err)
	}
	return b, nil
}

// Create inserts a new brand, deriving the slug from the name when empty.
func (s *BrandStore) Create(b *models.Brand) (*models.Brand, error) {
	if b.Slug == "" {
		b.Slug = slug.Generate(b.Name)
	}
	row := s.db.QueryRow(`
		INSERT INTO brands (name, slug, logo, description, website, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+brandColumns,
		b.Name, b.Slug, b.Logo, b.Description, b.Website, b.IsActive,
	)
	result, err := scanBrand(row)
	if err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}
	return result, nil
}

// Delete removes a brand. Products referencing it keep existing with a
// nulled brand reference (ON DELETE SET NULL).
func (s *BrandStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}
