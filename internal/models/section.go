// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// HeroSection is an admin-configured homepage hero banner.
type HeroSection struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Subtitle            string    `json:"subtitle"`
	Image               string    `json:"image"`
	PrimaryButtonText   string    `json:"primary_button_text"`
	PrimaryButtonURL    string    `json:"primary_button_url"`
	SecondaryButtonText string    `json:"secondary_button_text"`
	SecondaryButtonURL  string    `json:"secondary_button_url"`
	TagText             string    `json:"tag_text"`
	IsActive            bool      `json:"is_active"`
	SortOrder           int       `json:"sort_order"`
	CreatedAt           time.Time `json:"created_at"`
}

// PromoSection is an admin-configured homepage promotional block.
type PromoSection struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	ButtonText  string    `json:"button_text"`
	ButtonURL   string    `json:"button_url"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}
