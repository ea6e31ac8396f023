// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ShowcaseModel is a homepage 3D showcase entry backed by a Sketchfab model.
// Unlike products, the Sketchfab id is mandatory here.
type ShowcaseModel struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Topic            string    `json:"topic"`
	Description      string    `json:"description"`
	SketchfabModelID string    `json:"sketchfab_model_id"`
	ButtonText       string    `json:"button_text"`
	ButtonURL        string    `json:"button_url"`
	BadgeText        string    `json:"badge_text"`
	IsActive         bool      `json:"is_active"`
	SortOrder        int       `json:"sort_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SketchfabEmbedURL returns the interactive embed URL for the showcase model.
func (m *ShowcaseModel) SketchfabEmbedURL() string {
	return SketchfabEmbedURL(m.SketchfabModelID)
}
