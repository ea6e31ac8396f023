// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// storefront. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"ihsantack/internal/handlers"
	"ihsantack/internal/middleware"
	"ihsantack/internal/session"
	"ihsantack/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. assetsDir is the on-disk product image
// directory, served under /static/images/products/ so asset paths stay
// stable whether a file ships embedded or lives on disk.
func New(sessionStore *session.Store, public *handlers.Public, auth *handlers.Auth, admin *handlers.Admin, assetsDir string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", handlers.Health)

	// Static assets. Product images come from disk and shadow the
	// embedded tree; everything else is served from the binary.
	r.Handle("/static/images/products/*",
		http.StripPrefix("/static/images/products/", http.FileServer(http.FS(os.DirFS(assetsDir)))))
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	// Admin routes — CSRF-protected, login rate-limited.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.CSRF)

		// Auth pages — accessible without a session.
		r.With(loginLimiter.Middleware).Get("/login", auth.LoginPage)
		r.With(loginLimiter.Middleware).Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// Authenticated admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/", admin.Dashboard)
			r.Get("/settings", admin.SettingsPage)
			r.Post("/settings", admin.SettingsSave)
		})
	})

	// Public storefront.
	r.Get("/", public.Home)
	r.Get("/kategoriler/", public.CategoryList)
	r.Get("/kategori/{slug}/", public.CategoryDetail)
	r.Get("/urunler/", public.ProductList)
	r.Get("/urun/{name}", public.ProductDetail)
	r.Get("/blog/", public.BlogList)
	r.Get("/blog/{slug}/", public.BlogDetail)
	r.Get("/api/search-suggestions/", public.SearchSuggestions)
	r.Get("/cikis/", auth.Logout)

	r.NotFound(public.NotFound)

	return r
}
