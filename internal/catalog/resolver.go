// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ihsantack/internal/models"
	"ihsantack/internal/slug"
)

// ListPageSize is the fixed page size for catalog listings.
const ListPageSize = 12

// AssetURLPrefix is the public URL prefix under which the product image
// directory is served.
const AssetURLPrefix = "/static/images/products/"

// ErrNotFound reports that a requested category or asset does not exist.
// The HTTP boundary surfaces it as a 404.
var ErrNotFound = errors.New("catalog: not found")

// CategoryDirectory is the taxonomy lookup the resolver depends on.
// *store.CategoryStore satisfies it.
type CategoryDirectory interface {
	// ActiveBySlug returns the active category with the given slug,
	// or nil when no such category exists.
	ActiveBySlug(slug string) (*models.Category, error)
}

// ProductDirectory is the registered-product lookup used for best-effort
// cross-linking of assets to database rows. *store.ProductStore satisfies it.
type ProductDirectory interface {
	ActiveBySlug(slug string) (*models.Product, error)
	// FirstActiveNameContains returns any active product whose name
	// contains the given text case-insensitively, or nil.
	FirstActiveNameContains(name string) (*models.Product, error)
}

// Asset is one product image file prepared for display. Product is non-nil
// only when a database row was cross-linked; its absence is normal.
type Asset struct {
	Name    string
	Path    string
	Product *models.Product
}

// AssetDetail is the full detail view of a single asset.
type AssetDetail struct {
	Name     string // display name, extension stripped
	FileName string
	Path     string
	Bucket   string
	Category *models.Category // nil when no category shares the bucket slug
	Product  *models.Product  // nil when no database row matches
	Related  []Asset          // up to 4 other assets from the same bucket
}

// Resolver merges taxonomy rows with scanner buckets into catalog listings.
// It is stateless; every call re-scans the asset directory.
type Resolver struct {
	scanner    *Scanner
	categories CategoryDirectory
	products   ProductDirectory
}

// NewResolver returns a Resolver over the given scanner and directories.
func NewResolver(scanner *Scanner, categories CategoryDirectory, products ProductDirectory) *Resolver {
	return &Resolver{
		scanner:    scanner,
		categories: categories,
		products:   products,
	}
}

// Snapshot returns the current bucket → file names mapping.
func (r *Resolver) Snapshot() map[string][]string {
	return r.scanner.Scan()
}

// Assets wraps bare file names into display assets, without product linking.
func (r *Resolver) Assets(names []string) []Asset {
	assets := make([]Asset, 0, len(names))
	for _, n := range names {
		assets = append(assets, r.asset(n))
	}
	return assets
}

// ByCategory resolves the public category slug and returns that category's
// asset page. The category's display name is translated to its bucket via
// the name-keyed map, falling back to the public slug itself.
// Returns ErrNotFound when no active category has the slug.
func (r *Resolver) ByCategory(categorySlug string, page int) (*models.Category, Page[Asset], error) {
	category, err := r.categories.ActiveBySlug(categorySlug)
	if err != nil {
		return nil, Page[Asset]{}, fmt.Errorf("resolve category %q: %w", categorySlug, err)
	}
	if category == nil {
		return nil, Page[Asset]{}, ErrNotFound
	}

	bucket := BucketForCategoryName(category.Name, categorySlug)
	files := r.scanner.Scan()[bucket]

	paged := Paginate(r.Assets(files), page, ListPageSize)
	return category, paged, nil
}

// Filtered returns the filtered, searched, sorted asset page. The category
// filter is resolved as a Category slug first, then through the hyphenated
// slug dictionary, and finally treated literally as a bucket slug. Failures
// along the way degrade to the unfiltered set; this method never errors.
// Database products are attached to the returned page items best-effort.
func (r *Resolver) Filtered(categoryFilter, search string, page int) Page[Asset] {
	buckets := r.scanner.Scan()

	var files []string
	for _, names := range buckets {
		files = append(files, names...)
	}

	if categoryFilter != "" {
		category, err := r.categories.ActiveBySlug(categoryFilter)
		if err == nil && category != nil {
			if bucket := BucketForCategoryName(category.Name, ""); bucket != "" {
				if matched, ok := buckets[bucket]; ok {
					files = matched
				}
			}
		} else {
			if matched, ok := buckets[BucketForSlug(categoryFilter)]; ok {
				files = matched
			}
		}
	}

	if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
		var kept []string
		for _, f := range files {
			if strings.Contains(strings.ToLower(f), term) {
				kept = append(kept, f)
			}
		}
		files = kept
	}

	sort.Strings(files)

	paged := Paginate(r.Assets(files), page, ListPageSize)
	for i := range paged.Items {
		paged.Items[i].Product = r.crossLink(displayName(paged.Items[i].Name))
	}
	return paged
}

// Detail returns the detail view for one asset file name. The name must
// carry an accepted image extension and exist on disk; otherwise ErrNotFound.
func (r *Resolver) Detail(fileName string) (*AssetDetail, error) {
	if fileName == "" || fileName != filepath.Base(fileName) {
		return nil, ErrNotFound
	}
	if !IsImageFile(fileName) {
		return nil, ErrNotFound
	}
	if _, err := os.Stat(filepath.Join(r.scanner.Dir(), fileName)); err != nil {
		return nil, ErrNotFound
	}

	detail := &AssetDetail{
		Name:     displayName(fileName),
		FileName: fileName,
		Path:     assetPath(fileName),
	}

	// Locate the owning bucket by linear scan of the current snapshot.
	buckets := r.scanner.Scan()
	for _, b := range Buckets {
		if containsName(buckets[b.Slug], fileName) {
			detail.Bucket = b.Slug
			break
		}
	}
	if detail.Bucket == "" && containsName(buckets[OtherBucket], fileName) {
		detail.Bucket = OtherBucket
	}

	if detail.Bucket != "" {
		// Categories seeded by the shop use bucket slugs as their own
		// slugs, so the owning category is a direct slug-identity lookup.
		// Best-effort: lookup failures leave Category nil.
		if category, err := r.categories.ActiveBySlug(detail.Bucket); err == nil {
			detail.Category = category
		}

		for _, name := range buckets[detail.Bucket] {
			if name == fileName {
				continue
			}
			detail.Related = append(detail.Related, r.asset(name))
			if len(detail.Related) == 4 {
				break
			}
		}
	}

	detail.Product = r.crossLink(detail.Name)
	return detail, nil
}

// crossLink finds the database Product matching an asset display name:
// exact slug match among active products first, then case-insensitive name
// containment. Heuristic and never authoritative; all failures yield nil.
func (r *Resolver) crossLink(display string) *models.Product {
	if candidate := slug.Generate(display); candidate != "" {
		if p, err := r.products.ActiveBySlug(candidate); err == nil && p != nil {
			return p
		}
	}
	if p, err := r.products.FirstActiveNameContains(display); err == nil {
		return p
	}
	return nil
}

// RandomPicks returns up to n assets drawn randomly from the whole
// directory. Used for the homepage "new arrivals" and featured strips.
func (r *Resolver) RandomPicks(n int) []Asset {
	var files []string
	for _, names := range r.scanner.Scan() {
		files = append(files, names...)
	}
	rand.Shuffle(len(files), func(i, j int) {
		files[i], files[j] = files[j], files[i]
	})
	if len(files) > n {
		files = files[:n]
	}
	return r.Assets(files)
}

func (r *Resolver) asset(name string) Asset {
	return Asset{Name: name, Path: assetPath(name)}
}

// assetPath builds the public URL for an asset file, escaping any spaces
// or reserved characters in the name.
func assetPath(name string) string {
	return AssetURLPrefix + url.PathEscape(name)
}

// displayName strips the extension from a file name.
func displayName(fileName string) string {
	if i := strings.LastIndexByte(fileName, '.'); i >= 0 {
		return fileName[:i]
	}
	return fileName
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
