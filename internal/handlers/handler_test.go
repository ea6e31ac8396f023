// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests needing PostgreSQL are skipped when it is
// unavailable.
package handlers

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"ihsantack/internal/catalog"
	"ihsantack/internal/database"
	"ihsantack/internal/render"
	"ihsantack/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
// Skips the test when the database is unavailable.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "ihsantack")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "ihsantack")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testAssets populates a temp directory with a small product image set
// covering several buckets.
func testAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{
		"gem_klasik.jpg", "dizgin_deri.jpg",
		"firca_seti.png", "kapali_nal_seti.jpg",
		"rastgele_esya.jpg",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644); err != nil {
			t.Fatalf("write asset %s: %v", name, err)
		}
	}
	return dir
}

// newTestSite builds the public handler group against a real database,
// seeded categories, and a temp asset directory, mounted on the public
// routes it serves in production.
func newTestSite(t *testing.T) (*Public, *chi.Mux, *sql.DB) {
	t.Helper()

	db := testDB(t)
	if err := database.SeedCategories(db); err != nil {
		t.Fatalf("seed categories: %v", err)
	}

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	categories := store.NewCategoryStore(db)
	products := store.NewProductStore(db)
	scanner := catalog.NewScanner(testAssets(t))
	resolver := catalog.NewResolver(scanner, categories, products)

	public := NewPublic(
		renderer, resolver,
		categories, products,
		store.NewBrandStore(db),
		store.NewBlogPostStore(db),
		store.NewHeroStore(db),
		store.NewPromoStore(db),
		store.NewShowcaseStore(db),
		store.NewSiteSettingsStore(db),
	)

	mux := chi.NewRouter()
	mux.Get("/", public.Home)
	mux.Get("/kategoriler/", public.CategoryList)
	mux.Get("/kategori/{slug}/", public.CategoryDetail)
	mux.Get("/urunler/", public.ProductList)
	mux.Get("/urun/{name}", public.ProductDetail)
	mux.Get("/blog/", public.BlogList)
	mux.Get("/blog/{slug}/", public.BlogDetail)
	mux.Get("/api/search-suggestions/", public.SearchSuggestions)
	mux.NotFound(public.NotFound)
	mux.Get("/health", Health)

	return public, mux, db
}
