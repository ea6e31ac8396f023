// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"ihsantack/internal/catalog"
	"ihsantack/internal/models"
	"ihsantack/internal/render"
	"ihsantack/internal/store"
)

// Admin groups the admin-area handlers.
type Admin struct {
	renderer   *render.Renderer
	resolver   *catalog.Resolver
	categories *store.CategoryStore
	products   *store.ProductStore
	blogPosts  *store.BlogPostStore
	settings   *store.SiteSettingsStore
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(
	renderer *render.Renderer,
	resolver *catalog.Resolver,
	categories *store.CategoryStore,
	products *store.ProductStore,
	blogPosts *store.BlogPostStore,
	settings *store.SiteSettingsStore,
) *Admin {
	return &Admin{
		renderer:   renderer,
		resolver:   resolver,
		categories: categories,
		products:   products,
		blogPosts:  blogPosts,
		settings:   settings,
	}
}

// Dashboard shows content counts and the asset bucket distribution.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	productCount, err := a.products.Count()
	if err != nil && !store.IsNotReady(err) {
		slog.Error("count products failed", "error", err)
	}

	categories, err := store.OrEmpty(a.categories.ListActive(0))
	if err != nil {
		slog.Error("list categories failed", "error", err)
	}
	posts, err := store.OrEmpty(a.blogPosts.ListActive(0))
	if err != nil {
		slog.Error("list posts failed", "error", err)
	}
	featured, err := store.OrEmpty(a.products.ListFeatured(5))
	if err != nil {
		slog.Error("list featured products failed", "error", err)
	}

	snapshot := a.resolver.Snapshot()
	assetCount := 0
	bucketCounts := make(map[string]int, len(snapshot))
	for bucket, files := range snapshot {
		assetCount += len(files)
		bucketCounts[bucket] = len(files)
	}

	a.renderer.Admin(w, r, "dashboard", &render.PageData{
		Title:   "Panel",
		Section: "dashboard",
		Data: map[string]any{
			"ProductCount":  productCount,
			"AssetCount":    assetCount,
			"CategoryCount": len(categories),
			"PostCount":     len(posts),
			"BucketCounts":  bucketCounts,
			"Featured":      featured,
		},
	})
}

// SettingsPage renders the site settings form, pre-filled with the stored
// row or the defaults when none exists yet.
func (a *Admin) SettingsPage(w http.ResponseWriter, r *http.Request) {
	settings, err := a.settings.Get()
	if err != nil && !store.IsNotReady(err) {
		slog.Error("load site settings failed", "error", err)
	}
	if settings == nil {
		settings = models.DefaultSiteSettings()
	}

	a.renderer.Admin(w, r, "settings", &render.PageData{
		Title:   "Site Ayarları",
		Section: "settings",
		Data: map[string]any{
			"Settings": settings,
			"Saved":    r.URL.Query().Get("saved") == "1",
		},
	})
}

// SettingsSave persists the settings form into the single settings row.
func (a *Admin) SettingsSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	settings := &models.SiteSettings{
		SiteName:        r.FormValue("site_name"),
		SiteDescription: r.FormValue("site_description"),
		Logo:            r.FormValue("logo"),
		Favicon:         r.FormValue("favicon"),
		Email:           r.FormValue("email"),
		Phone:           r.FormValue("phone"),
		WhatsApp:        r.FormValue("whatsapp"),
		InstagramURL:    r.FormValue("instagram_url"),
		YouTubeURL:      r.FormValue("youtube_url"),
		TrustMessage1:   r.FormValue("trust_message_1"),
		TrustMessage2:   r.FormValue("trust_message_2"),
		TrustMessage3:   r.FormValue("trust_message_3"),
	}

	if err := a.settings.Save(settings); err != nil {
		slog.Error("save site settings failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/settings?saved=1", http.StatusSeeOther)
}
