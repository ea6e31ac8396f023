// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"ihsantack/internal/models"
)

// HeroStore manages homepage hero slides.
type HeroStore struct {
	db *sql.DB
}

// NewHeroStore returns a new HeroStore.
func NewHeroStore(db *sql.DB) *HeroStore {
	return &HeroStore{db: db}
}

// ListActive returns active hero sections ordered by sort_order.
func (s *HeroStore) ListActive() ([]models.HeroSection, error) {
	rows, err := s.db.Query(`SELECT id, title, subtitle, image,
		primary_button_text, primary_button_url, secondary_button_text, secondary_button_url,
		tag_text, is_active, sort_order, created_at
		FROM hero_sections WHERE is_active = TRUE ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("list hero sections: %w", err)
	}
	defer rows.Close()

	var items []models.HeroSection
	for rows.Next() {
		var h models.HeroSection
		err := rows.Scan(
			&h.ID, &h.Title, &h.Subtitle, &h.Image,
			&h.PrimaryButtonText, &h.PrimaryButtonURL, &h.SecondaryButtonText, &h.SecondaryButtonURL,
			&h.TagText, &h.IsActive, &h.SortOrder, &h.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan hero section: %w", err)
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

// PromoStore manages homepage promotional banners.
type PromoStore struct {
	db *sql.DB
}

// NewPromoStore returns a new PromoStore.
func NewPromoStore(db *sql.DB) *PromoStore {
	return &PromoStore{db: db}
}

// ListActive returns active promo sections ordered by sort_order.
func (s *PromoStore) ListActive() ([]models.PromoSection, error) {
	rows, err := s.db.Query(`SELECT id, title, description, image, button_text, button_url,
		is_active, sort_order, created_at
		FROM promo_sections WHERE is_active = TRUE ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("list promo sections: %w", err)
	}
	defer rows.Close()

	var items []models.PromoSection
	for rows.Next() {
		var p models.PromoSection
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Image, &p.ButtonText, &p.ButtonURL,
			&p.IsActive, &p.SortOrder, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan promo section: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
