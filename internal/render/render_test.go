package render

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"ihsantack/internal/catalog"
	"ihsantack/internal/models"
	"ihsantack/internal/session"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	rn, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	return rn
}

func TestNew_ParsesAllTemplates(t *testing.T) {
	rn := newTestRenderer(t)

	for _, name := range []string{
		"home", "category_list", "category_detail",
		"product_list", "product_detail", "blog_list", "blog_detail", "not_found",
	} {
		if _, ok := rn.site[name]; !ok {
			t.Errorf("expected site template %q to be parsed", name)
		}
	}
	for _, name := range []string{"login", "dashboard", "settings"} {
		if _, ok := rn.admin[name]; !ok {
			t.Errorf("expected admin template %q to be parsed", name)
		}
	}

	// base.html should not register as a page template.
	if _, ok := rn.site["base"]; ok {
		t.Error("base.html registered as a site page template")
	}
}

func TestSite_RendersHomeWithDefaults(t *testing.T) {
	rn := newTestRenderer(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	rn.Site(w, r, "home", &PageData{
		Section: "home",
		NavCategories: []models.Category{
			{Name: "Tımar Ekipmanları", Slug: "timar"},
		},
		Data: map[string]any{},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	// Default settings fill the chrome when none are stored.
	if !strings.Contains(body, "İhsan At Ekipmanları") {
		t.Error("default site name missing from rendered page")
	}
	if !strings.Contains(body, `/kategori/timar/`) {
		t.Error("nav category link missing")
	}
}

func TestSite_RendersProductDetail(t *testing.T) {
	rn := newTestRenderer(t)

	old := 450.0
	detail := &catalog.AssetDetail{
		Name:     "gem_klasik",
		FileName: "gem_klasik.jpg",
		Path:     "/static/images/products/gem_klasik.jpg",
		Bucket:   "kosum-takimi",
		Category: &models.Category{Name: "At Koşu Ekipmanları", Slug: "kosum-takimi"},
		Product: &models.Product{
			Name:     "Klasik Gem",
			Slug:     "klasik-gem",
			Price:    300,
			OldPrice: &old,
		},
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/urun/gem_klasik.jpg", nil)
	rn.Site(w, r, "product_detail", &PageData{
		Title: detail.Name,
		Data:  map[string]any{"Detail": detail},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "gem_klasik") {
		t.Error("asset name missing")
	}
	if !strings.Contains(body, "300,00 TL") {
		t.Error("formatted price missing")
	}
	if !strings.Contains(body, "450,00 TL") {
		t.Error("formatted old price missing")
	}
	if !strings.Contains(body, "/kategori/kosum-takimi/") {
		t.Error("category link missing")
	}
}

func TestSite_RendersBlogDetailHTML(t *testing.T) {
	rn := newTestRenderer(t)

	post := &models.BlogPost{
		Title:     "Eyer Bakımı",
		Slug:      "eyer-bakimi",
		Category:  "bakim",
		CreatedAt: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/blog/eyer-bakimi/", nil)
	rn.Site(w, r, "blog_detail", &PageData{
		Title: post.Title,
		Data: map[string]any{
			"Post":        post,
			"ContentHTML": "<p>Deri eyerler <strong>düzenli</strong> bakım ister.</p>",
		},
	})

	body := w.Body.String()
	if !strings.Contains(body, "<strong>düzenli</strong>") {
		t.Error("markdown HTML should render unescaped")
	}
	if !strings.Contains(body, "15.03.2026") {
		t.Error("Turkish date format missing")
	}
}

func TestAdmin_LoginIsStandalone(t *testing.T) {
	rn := newTestRenderer(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/admin/login", nil)
	rn.Admin(w, r, "login", &PageData{Title: "Giriş", Data: map[string]any{}})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Yönetici Girişi") {
		t.Error("login heading missing")
	}
	// Standalone pages must not carry the admin sidebar.
	if strings.Contains(body, "sidebar") {
		t.Error("login page rendered with the base layout")
	}
}

func TestAdmin_DashboardShowsSessionUser(t *testing.T) {
	rn := newTestRenderer(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/admin/", nil)
	rn.Admin(w, r, "dashboard", &PageData{
		Title:   "Panel",
		Section: "dashboard",
		Session: &session.Data{UserID: uuid.New(), Username: "yonetici"},
		Data: map[string]any{
			"ProductCount":  3,
			"AssetCount":    42,
			"CategoryCount": 6,
			"PostCount":     2,
			"BucketCounts":  map[string]int{"timar": 10},
		},
	})

	body := w.Body.String()
	if !strings.Contains(body, "yonetici") {
		t.Error("session username missing from layout")
	}
	if !strings.Contains(body, "42") {
		t.Error("asset count missing")
	}
}

func TestSite_UnknownTemplate(t *testing.T) {
	rn := newTestRenderer(t)

	w := httptest.NewRecorder()
	rn.Site(w, httptest.NewRequest("GET", "/", nil), "no_such_page", &PageData{})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
