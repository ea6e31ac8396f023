// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site and
// the admin interface. Templates are embedded at compile time; every page
// template is paired with its section's base layout.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"strings"

	"ihsantack/internal/middleware"
	"ihsantack/internal/models"
	"ihsantack/internal/session"
)

//go:embed templates/site/*.html templates/admin/*.html
var templateFS embed.FS

// PageData holds all data passed to templates.
type PageData struct {
	Title         string             // Page title for <title> tag
	Section       string             // Active nav section (e.g., "home", "blog")
	Session       *session.Data      // Current admin session (nil if unauthenticated)
	CSRFToken     string             // CSRF token for forms
	Settings      *models.SiteSettings // Site-wide settings for the chrome
	NavCategories []models.Category  // Categories shown in the header nav
	Data          map[string]any     // Page-specific data
}

// Renderer handles template parsing and execution.
type Renderer struct {
	site    map[string]*template.Template
	admin   map[string]*template.Template
	funcMap template.FuncMap
}

// standaloneAdminTemplates render as full HTML pages without the admin
// base layout (they carry their own <html> and <head>).
var standaloneAdminTemplates = map[string]bool{
	"login": true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem.
func New() (*Renderer, error) {
	r := &Renderer{
		site:  make(map[string]*template.Template),
		admin: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			// deref safely dereferences a float pointer for use in templates.
			"deref": func(f *float64) float64 {
				if f == nil {
					return 0
				}
				return *f
			},
			// price formats an amount the way Turkish storefronts print it.
			"price": func(v float64) string {
				s := strconv.FormatFloat(v, 'f', 2, 64)
				return strings.Replace(s, ".", ",", 1) + " TL"
			},
			// safeHTML marks pre-rendered HTML (markdown output) as trusted.
			"safeHTML": func(s string) template.HTML {
				return template.HTML(s)
			},
			// safeURL marks vetted embed URLs as trusted for iframe src.
			"safeURL": func(s string) template.URL {
				return template.URL(s)
			},
		},
	}

	if err := r.parseSet(r.site, "templates/site", nil); err != nil {
		return nil, err
	}
	if err := r.parseSet(r.admin, "templates/admin", standaloneAdminTemplates); err != nil {
		return nil, err
	}

	return r, nil
}

// parseSet parses every page template in dir, pairing it with the set's
// base.html unless the template is listed as standalone.
func (rn *Renderer) parseSet(dst map[string]*template.Template, dir string, standalone map[string]bool) error {
	entries, err := templateFS.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read templates %s: %w", dir, err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmplName := strings.TrimSuffix(name, ".html")

		var tmpl *template.Template
		var parseErr error
		if standalone[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(rn.funcMap).ParseFS(
				templateFS, dir+"/"+name,
			)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(rn.funcMap).ParseFS(
				templateFS, dir+"/base.html", dir+"/"+name,
			)
		}
		if parseErr != nil {
			return fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		dst[tmplName] = tmpl
	}

	return nil
}

// Site renders a public page with the site layout.
func (rn *Renderer) Site(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.site[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}
	if data.Settings == nil {
		data.Settings = models.DefaultSiteSettings()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := executeTemplate(w, tmpl, "base.html", data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Admin renders an admin page, injecting the session and CSRF token from
// the request context.
func (rn *Renderer) Admin(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.admin[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	data.CSRFToken = middleware.GetCSRFToken(r)
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	execName := "base.html"
	if standaloneAdminTemplates[name] {
		execName = name + ".html"
	}

	if err := executeTemplate(w, tmpl, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}
