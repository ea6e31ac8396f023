// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

package models

import "time"

// SiteSettings holds the site-wide configuration. Exactly one row may exist;
// the store rejects creating a second instance or deleting the sole one.
type SiteSettings struct {
	SiteName        string    `json:"site_name"`
	SiteDescription string    `json:"site_description"`
	Logo            string    `json:"logo"`
	Favicon         string    `json:"favicon"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	WhatsApp        string    `json:"whatsapp"`
	InstagramURL    string    `json:"instagram_url"`
	YouTubeURL      string    `json:"youtube_url"`
	TrustMessage1   string    `json:"trust_message_1"`
	TrustMessage2   string    `json:"trust_message_2"`
	TrustMessage3   string    `json:"trust_message_3"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DefaultSiteSettings returns the settings used before an admin saves any.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		SiteName:        "İhsan At Ekipmanları",
		SiteDescription: "Pistten ahıra, tüm ekipman tek yerde.",
		Email:           "destek@ihsan.tack",
		Phone:           "0(850) xxx xx xx",
		TrustMessage1:   "Hızlı kargo",
		TrustMessage2:   "30 gün iade",
		TrustMessage3:   "Güvenli ödeme",
	}
}
