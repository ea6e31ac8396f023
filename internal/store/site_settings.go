// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"ihsantack/internal/models"
)

var (
	// ErrSettingsExist is returned when creating settings while a row exists.
	ErrSettingsExist = errors.New("site settings already exist")
	// ErrSettingsProtected is returned on any attempt to delete the settings.
	ErrSettingsProtected = errors.New("site settings cannot be deleted")
)

// SiteSettingsStore manages the single site settings row.
type SiteSettingsStore struct {
	db *sql.DB
}

// NewSiteSettingsStore returns a new SiteSettingsStore.
func NewSiteSettingsStore(db *sql.DB) *SiteSettingsStore {
	return &SiteSettingsStore{db: db}
}

const settingsColumns = `site_name, site_description, logo, favicon, email, phone,
	whatsapp, instagram_url, youtube_url, trust_message_1, trust_message_2,
	trust_message_3, updated_at`

// Get returns the settings row, or nil when none has been saved yet.
func (s *SiteSettingsStore) Get() (*models.SiteSettings, error) {
	row := s.db.QueryRow(`SELECT ` + settingsColumns + ` FROM site_settings WHERE id = 1`)
	var st models.SiteSettings
	err := row.Scan(
		&st.SiteName, &st.SiteDescription, &st.Logo, &st.Favicon, &st.Email, &st.Phone,
		&st.WhatsApp, &st.InstagramURL, &st.YouTubeURL, &st.TrustMessage1, &st.TrustMessage2,
		&st.TrustMessage3, &st.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get site settings: %w", err)
	}
	return &st, nil
}

// Create inserts the settings row. Fails with ErrSettingsExist when one
// is already present.
func (s *SiteSettingsStore) Create(st *models.SiteSettings) error {
	existing, err := s.Get()
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrSettingsExist
	}
	_, err = s.db.Exec(`
		INSERT INTO site_settings (id, `+settingsColumns+`)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())`,
		st.SiteName, st.SiteDescription, st.Logo, st.Favicon, st.Email, st.Phone,
		st.WhatsApp, st.InstagramURL, st.YouTubeURL, st.TrustMessage1, st.TrustMessage2,
		st.TrustMessage3,
	)
	if err != nil {
		return fmt.Errorf("create site settings: %w", err)
	}
	return nil
}

// Save upserts the sole settings row.
func (s *SiteSettingsStore) Save(st *models.SiteSettings) error {
	_, err := s.db.Exec(`
		INSERT INTO site_settings (id, `+settingsColumns+`)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		ON CONFLICT (id) DO UPDATE SET
			site_name = EXCLUDED.site_name,
			site_description = EXCLUDED.site_description,
			logo = EXCLUDED.logo,
			favicon = EXCLUDED.favicon,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			whatsapp = EXCLUDED.whatsapp,
			instagram_url = EXCLUDED.instagram_url,
			youtube_url = EXCLUDED.youtube_url,
			trust_message_1 = EXCLUDED.trust_message_1,
			trust_message_2 = EXCLUDED.trust_message_2,
			trust_message_3 = EXCLUDED.trust_message_3,
			updated_at = NOW()`,
		st.SiteName, st.SiteDescription, st.Logo, st.Favicon, st.Email, st.Phone,
		st.WhatsApp, st.InstagramURL, st.YouTubeURL, st.TrustMessage1, st.TrustMessage2,
		st.TrustMessage3,
	)
	if err != nil {
		return fmt.Errorf("save site settings: %w", err)
	}
	return nil
}

// Delete always refuses; the settings row is protected.
func (s *SiteSettingsStore) Delete() error {
	return ErrSettingsProtected
}
