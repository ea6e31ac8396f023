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

// ProductStore manages database-registered products. Most catalog items
// exist only as static files; these rows carry the rich data (price, stock,
// 3D model) for the registered subset.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore returns a new ProductStore.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, name, slug, description, short_description,
	category_id, brand_id, price, old_price, stock_status, stock_quantity,
	main_image, image_2, image_3, weight, dimensions, material, color, size,
	sketchfab_model_id, is_featured, is_new, is_active,
	meta_title, meta_description, created_at, updated_at`

func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.ShortDescription,
		&p.CategoryID, &p.BrandID, &p.Price, &p.OldPrice, &p.StockStatus, &p.StockQuantity,
		&p.MainImage, &p.Image2, &p.Image3, &p.Weight, &p.Dimensions, &p.Material, &p.Color, &p.Size,
		&p.SketchfabModelID, &p.IsFeatured, &p.IsNew, &p.IsActive,
		&p.MetaTitle, &p.MetaDescription, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ActiveBySlug retrieves an active product by its exact slug.
// Returns nil if not found.
func (s *ProductStore) ActiveBySlug(productSlug string) (*models.Product, error) {
	row := s.db.QueryRow(`SELECT `+productColumns+` FROM products
		WHERE slug = $1 AND is_active = TRUE`, productSlug)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("product by slug: %w", err)
	}
	return p, nil
}

// FirstActiveNameContains returns any active product whose name contains
// the text case-insensitively. Returns nil if none matches. This is the
// fallback leg of the asset cross-link heuristic.
func (s *ProductStore) FirstActiveNameContains(name string) (*models.Product, error) {
	row := s.db.QueryRow(`SELECT `+productColumns+` FROM products
		WHERE is_active = TRUE AND name ILIKE '%' || $1 || '%'
		LIMIT 1`, name)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("product by name: %w", err)
	}
	return p, nil
}

// SearchActive returns active products whose name or short description
// contains the term case-insensitively, newest first. Feeds the search
// suggestion endpoint.
func (s *ProductStore) SearchActive(term string, limit int) ([]models.Product, error) {
	rows, err := s.db.Query(`SELECT `+productColumns+` FROM products
		WHERE is_active = TRUE
		  AND (name ILIKE '%' || $1 || '%' OR short_description ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC
		LIMIT $2`, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// ListFeatured returns active featured products, newest first.
func (s *ProductStore) ListFeatured(limit int) ([]models.Product, error) {
	rows, err := s.db.Query(`SELECT `+productColumns+` FROM products
		WHERE is_active = TRUE AND is_featured = TRUE
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list featured products: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// Count returns the number of products (admin dashboard).
func (s *ProductStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// Create inserts a new product, deriving the slug from the name when empty.
func (s *ProductStore) Create(p *models.Product) (*models.Product, error) {
	if p.Slug == "" {
		p.Slug = slug.Generate(p.Name)
	}
	if p.StockStatus == "" {
		p.StockStatus = models.StockInStock
	}
	row := s.db.QueryRow(`
		INSERT INTO products (
			name, slug, description, short_description, category_id, brand_id,
			price, old_price, stock_status, stock_quantity,
			main_image, image_2, image_3,
			weight, dimensions, material, color, size,
			sketchfab_model_id, is_featured, is_new, is_active,
			meta_title, meta_description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING `+productColumns,
		p.Name, p.Slug, p.Description, p.ShortDescription, p.CategoryID, p.BrandID,
		p.Price, p.OldPrice, p.StockStatus, p.StockQuantity,
		p.MainImage, p.Image2, p.Image3,
		p.Weight, p.Dimensions, p.Material, p.Color, p.Size,
		p.SketchfabModelID, p.IsFeatured, p.IsNew, p.IsActive,
		p.MetaTitle, p.MetaDescription,
	)
	result, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return result, nil
}

// Update modifies an existing product and refreshes updated_at.
func (s *ProductStore) Update(p *models.Product) error {
	_, err := s.db.Exec(`
		UPDATE products SET
			name = $1, slug = $2, description = $3, short_description = $4,
			category_id = $5, brand_id = $6, price = $7, old_price = $8,
			stock_status = $9, stock_quantity = $10,
			main_image = $11, image_2 = $12, image_3 = $13,
			weight = $14, dimensions = $15, material = $16, color = $17, size = $18,
			sketchfab_model_id = $19, is_featured = $20, is_new = $21, is_active = $22,
			meta_title = $23, meta_description = $24, updated_at = NOW()
		WHERE id = $25
	`, p.Name, p.Slug, p.Description, p.ShortDescription,
		p.CategoryID, p.BrandID, p.Price, p.OldPrice,
		p.StockStatus, p.StockQuantity,
		p.MainImage, p.Image2, p.Image3,
		p.Weight, p.Dimensions, p.Material, p.Color, p.Size,
		p.SketchfabModelID, p.IsFeatured, p.IsNew, p.IsActive,
		p.MetaTitle, p.MetaDescription, p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes a product by ID.
func (s *ProductStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
