// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"ihsantack/internal/models"
)

// ShowcaseStore manages interactive 3D showcase models.
type ShowcaseStore struct {
	db *sql.DB
}

// NewShowcaseStore returns a new ShowcaseStore.
func NewShowcaseStore(db *sql.DB) *ShowcaseStore {
	return &ShowcaseStore{db: db}
}

// ListActive returns active showcase models ordered by sort_order, then
// creation time. limit <= 0 means no limit.
func (s *ShowcaseStore) ListActive(limit int) ([]models.ShowcaseModel, error) {
	query := `SELECT id, title, topic, description, sketchfab_model_id,
		button_text, button_url, badge_text, is_active, sort_order, created_at, updated_at
		FROM showcase_models WHERE is_active = TRUE
		ORDER BY sort_order, created_at`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.Query(query+` LIMIT $1`, limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("list showcase models: %w", err)
	}
	defer rows.Close()

	var items []models.ShowcaseModel
	for rows.Next() {
		var m models.ShowcaseModel
		err := rows.Scan(
			&m.ID, &m.Title, &m.Topic, &m.Description, &m.SketchfabModelID,
			&m.ButtonText, &m.ButtonURL, &m.BadgeText, &m.IsActive, &m.SortOrder,
			&m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan showcase model: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
