// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the public storefront
// and the admin area.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"ihsantack/internal/catalog"
	"ihsantack/internal/markdown"
	"ihsantack/internal/models"
	"ihsantack/internal/render"
	"ihsantack/internal/store"
)

const blogPageSize = 6

// CategoryCard pairs a taxonomy row with its homepage display mapping and
// the assets currently classified under its bucket.
type CategoryCard struct {
	Category models.Category
	Style    catalog.CategoryStyle
	Count    int
	Assets   []catalog.Asset
}

// Public groups handlers for the public-facing site. Database reads
// degrade gracefully: a missing schema renders empty sections instead of
// failing the page.
type Public struct {
	renderer   *render.Renderer
	resolver   *catalog.Resolver
	categories *store.CategoryStore
	products   *store.ProductStore
	brands     *store.BrandStore
	blogPosts  *store.BlogPostStore
	heroes     *store.HeroStore
	promos     *store.PromoStore
	showcases  *store.ShowcaseStore
	settings   *store.SiteSettingsStore
}

// NewPublic creates a new Public handler group.
func NewPublic(
	renderer *render.Renderer,
	resolver *catalog.Resolver,
	categories *store.CategoryStore,
	products *store.ProductStore,
	brands *store.BrandStore,
	blogPosts *store.BlogPostStore,
	heroes *store.HeroStore,
	promos *store.PromoStore,
	showcases *store.ShowcaseStore,
	settings *store.SiteSettingsStore,
) *Public {
	return &Public{
		renderer:   renderer,
		resolver:   resolver,
		categories: categories,
		products:   products,
		brands:     brands,
		blogPosts:  blogPosts,
		heroes:     heroes,
		promos:     promos,
		showcases:  showcases,
		settings:   settings,
	}
}

// chrome loads the data every public page needs: site settings and the
// header nav categories. Both fall back to safe defaults when the schema
// is not ready, so the site renders even against an empty database.
func (p *Public) chrome() (*models.SiteSettings, []models.Category) {
	settings, err := p.settings.Get()
	if err != nil && !store.IsNotReady(err) {
		slog.Error("load site settings failed", "error", err)
	}
	if settings == nil {
		settings = models.DefaultSiteSettings()
	}

	categories, err := store.OrEmpty(p.categories.ListActive(6))
	if err != nil {
		slog.Error("load nav categories failed", "error", err)
	}
	return settings, categories
}

// categoryCards builds the homepage/category-list cards by joining nav
// categories with the current asset snapshot. withAssets controls whether
// each card also carries its bucket's asset strip.
func (p *Public) categoryCards(categories []models.Category, withAssets bool) []CategoryCard {
	snapshot := p.resolver.Snapshot()

	cards := make([]CategoryCard, 0, len(categories))
	for _, c := range categories {
		style := catalog.StyleForCategory(c.Name, c.Slug)
		files := snapshot[style.Bucket]
		card := CategoryCard{
			Category: c,
			Style:    style,
			Count:    len(files),
		}
		if withAssets {
			card.Assets = p.resolver.Assets(files)
		}
		cards = append(cards, card)
	}
	return cards
}

// Home renders the homepage: hero and promo sections, category cards with
// per-category asset strips, random picks, and the 3D showcase.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	settings, categories := p.chrome()

	heroes, err := store.OrEmpty(p.heroes.ListActive())
	if err != nil {
		slog.Error("load hero sections failed", "error", err)
	}
	promos, err := store.OrEmpty(p.promos.ListActive())
	if err != nil {
		slog.Error("load promo sections failed", "error", err)
	}
	showcases, err := store.OrEmpty(p.showcases.ListActive(8))
	if err != nil {
		slog.Error("load showcase models failed", "error", err)
	}

	p.renderer.Site(w, r, "home", &render.PageData{
		Section:       "home",
		Settings:      settings,
		NavCategories: categories,
		Data: map[string]any{
			"Heroes":        heroes,
			"Promos":        promos,
			"Showcases":     showcases,
			"CategoryCards": p.categoryCards(categories, true),
			"NewArrivals":   p.resolver.RandomPicks(4),
			"Featured":      p.resolver.RandomPicks(15),
		},
	})
}

// CategoryList renders all active categories as cards.
func (p *Public) CategoryList(w http.ResponseWriter, r *http.Request) {
	settings, categories := p.chrome()

	all, err := store.OrEmpty(p.categories.ListActive(0))
	if err != nil {
		slog.Error("load categories failed", "error", err)
	}

	p.renderer.Site(w, r, "category_list", &render.PageData{
		Title:         "Kategoriler",
		Section:       "categories",
		Settings:      settings,
		NavCategories: categories,
		Data: map[string]any{
			"CategoryCards": p.categoryCards(all, false),
		},
	})
}

// CategoryDetail renders one category's paginated asset listing.
func (p *Public) CategoryDetail(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	page := catalog.ParsePage(r.URL.Query().Get("page"))

	category, assetPage, err := p.resolver.ByCategory(slugParam, page)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) || store.IsNotReady(err) {
			p.NotFound(w, r)
			return
		}
		slog.Error("resolve category failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	settings, categories := p.chrome()
	p.renderer.Site(w, r, "category_detail", &render.PageData{
		Title:         category.Name,
		Section:       "categories",
		Settings:      settings,
		NavCategories: categories,
		Data: map[string]any{
			"Category": category,
			"Page":     assetPage,
		},
	})
}

// ProductList renders the full asset listing with category filter and
// free-text search.
func (p *Public) ProductList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	categoryFilter := q.Get("category")
	search := q.Get("search")
	page := catalog.ParsePage(q.Get("page"))

	assetPage := p.resolver.Filtered(categoryFilter, search, page)

	// The filter dropdown lists every active category alphabetically,
	// not just the six shown in the header nav.
	filterCategories, err := store.OrEmpty(p.categories.ListActiveByName())
	if err != nil {
		slog.Error("load filter categories failed", "error", err)
	}

	settings, categories := p.chrome()
	p.renderer.Site(w, r, "product_list", &render.PageData{
		Title:         "Tüm Ürünler",
		Section:       "products",
		Settings:      settings,
		NavCategories: categories,
		Data: map[string]any{
			"Page":             assetPage,
			"FilterCategories": filterCategories,
			"CategoryFilter":   categoryFilter,
			"Search":           search,
		},
	})
}

// ProductDetail renders the detail view of one asset file.
func (p *Public) ProductDetail(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	detail, err := p.resolver.Detail(name)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			p.NotFound(w, r)
			return
		}
		slog.Error("resolve asset detail failed", "error", err, "name", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var brand *models.Brand
	if detail.Product != nil && detail.Product.BrandID != nil {
		brand, err = p.brands.ByID(*detail.Product.BrandID)
		if err != nil && !store.IsNotReady(err) {
			slog.Error("load brand failed", "error", err)
		}
	}

	settings, categories := p.chrome()
	p.renderer.Site(w, r, "product_detail", &render.PageData{
		Title:         detail.Name,
		Section:       "products",
		Settings:      settings,
		NavCategories: categories,
		Data: map[string]any{
			"Detail": detail,
			"Brand":  brand,
		},
	})
}

// BlogList renders the paginated blog index.
func (p *Public) BlogList(w http.ResponseWriter, r *http.Request) {
	page := catalog.ParsePage(r.URL.Query().Get("page"))

	posts, err := store.OrEmpty(p.blogPosts.ListActive(0))
	if err != nil {
		slog.Error("load blog posts failed", "error", err)
	}

	settings, categories := p.chrome()
	p.renderer.Site(w, r, "blog_list", &render.PageData{
		Title:         "Blog",
		Section:       "blog",
		Settings:      settings,
		NavCategories: categories,
		Data: map[string]any{
			"Page": catalog.Paginate(posts, page, blogPageSize),
		},
	})
}

// BlogDetail renders a single post with its Markdown body converted to
// HTML and up to three same-category related posts.
func (p *Public) BlogDetail(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	post, err := p.blogPosts.ActiveBySlug(slugParam)
	if err != nil {
		if store.IsNotReady(err) {
			p.NotFound(w, r)
			return
		}
		slog.Error("find blog post failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		p.NotFound(w, r)
		return
	}

	contentHTML, err := markdown.ToHTML(post.Content)
	if err != nil {
		slog.Error("render post markdown failed", "error", err, "slug", slugParam)
		contentHTML = ""
	}

	related, err := store.OrEmpty(p.blogPosts.Related(post, 3))
	if err != nil {
		slog.Error("load related posts failed", "error", err)
	}

	settings, categories := p.chrome()
	p.renderer.Site(w, r, "blog_detail", &render.PageData{
		Title:         post.Title,
		Section:       "blog",
		Settings:      settings,
		NavCategories: categories,
		Data: map[string]any{
			"Post":        post,
			"ContentHTML": contentHTML,
			"Related":     related,
		},
	})
}

// Suggestion is one entry of the search-suggestion payload.
type Suggestion struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// SearchSuggestions returns JSON suggestions for the header search box:
// up to 5 product matches and 3 category matches. Queries shorter than
// two characters yield an empty list.
func (p *Public) SearchSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	suggestions := []Suggestion{}
	if utf8.RuneCountInString(query) >= 2 {
		products, err := store.OrEmpty(p.products.SearchActive(query, 5))
		if err != nil {
			slog.Error("product suggestions failed", "error", err)
		}
		for i := range products {
			suggestions = append(suggestions, Suggestion{
				Name: products[i].Name,
				URL:  products[i].URL(),
				Type: "Ürün",
			})
		}

		categories, err := store.OrEmpty(p.categories.SearchActiveByName(query, 3))
		if err != nil {
			slog.Error("category suggestions failed", "error", err)
		}
		for i := range categories {
			suggestions = append(suggestions, Suggestion{
				Name: categories[i].Name,
				URL:  "/kategori/" + categories[i].Slug + "/",
				Type: "Kategori",
			})
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(map[string][]Suggestion{"suggestions": suggestions})
}

// NotFound renders the site 404 page.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	settings, categories := p.chrome()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	p.renderer.Site(w, r, "not_found", &render.PageData{
		Title:         "Sayfa Bulunamadı",
		Settings:      settings,
		NavCategories: categories,
		Data:          map[string]any{},
	})
}

// Health is a minimal liveness endpoint.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
