// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

// Package catalog reconciles the database-backed category taxonomy with the
// static product image directory. Sellable items live as image files; the
// scanner classifies them into keyword buckets and the resolver merges those
// buckets with Category rows into paginated listings.
package catalog

// Bucket groups asset file names under a slug via keyword matching.
// Buckets are evaluated in declaration order and a file belongs to the
// first bucket whose keywords match, so order is load-bearing.
type Bucket struct {
	Slug     string
	Keywords []string
}

// OtherBucket collects files no bucket claims.
const OtherBucket = "diger"

// Buckets is the fixed priority-ordered keyword table. Keywords are
// lowercase substrings matched case-insensitively against file names.
var Buckets = []Bucket{
	{
		Slug:     "eyer",
		Keywords: []string{"araba", "hamut", "fayton", "takimi"},
	},
	{
		Slug: "kosum-takimi",
		Keywords: []string{
			"gem", "getir", "kolon", "uzengi", "dizgin", "baslik", "yular",
			"martingal", "gogusluk", "araka", "pert", "tokatli", "lastikli",
			"ithal", "yerli", "dortlu", "uclu", "zincirli", "capraz",
			"v_alinsalik", "burunsalik", "metal_islemeli", "rugan",
			"zincir_islemeli",
		},
	},
	{
		Slug: "timar",
		Keywords: []string{
			"firca", "kil", "tarak", "gebre", "kasagi", "maya", "bicagi",
			"temizleme", "tuy", "toplayici", "plastik_firca", "kil_firca",
			"fircali", "ahsap", "plastik_kasagi",
		},
	},
	{
		Slug: "bakim",
		Keywords: []string{
			"bandaj", "yele", "blanket", "ter", "maskesi", "absorbine",
			"red_cell", "elite", "electroltyle", "animalintex", "cool_cast",
			"powerflex", "polar", "at_maskesi", "tam_boy", "yarim_boy",
			"ter_ve_su",
		},
	},
	{
		Slug: "nalbant",
		Keywords: []string{
			"nal", "civi", "cekm", "pensesi", "kerpeten", "dovme", "nalbant",
			"acik_nal", "kapali_nal",
		},
	},
	{
		Slug: "binici",
		Keywords: []string{
			"eyer", "eldiven", "togu", "yelegi", "chaps", "mahmuz", "binici",
			"suvari", "western", "avrupa", "alman", "endurance", "pony",
			"konfor", "idman", "yaprak", "pelus", "uzengi_kayisi",
			"krom_uzengi", "plastik_uzengi", "kazan_uzengi",
		},
	},
}

// categoryNameBuckets maps Category display names to bucket slugs. Category
// names and bucket slugs were named independently, so the bridge is explicit.
// NOTE: this table and slugBuckets must be kept in sync by hand when a
// category is renamed; nothing reconciles them at runtime.
var categoryNameBuckets = map[string]string{
	"At Koşu Ekipmanları":  "kosum-takimi",
	"Tımar Ekipmanları":    "timar",
	"At Bakım Ekipmanları": "bakim",
	"Nalbant Ekipmanları":  "nalbant",
	"Binici Ekipmanları":   "binici",
	"Araba ve Fayton Takımı": "eyer",
}

// slugBuckets bridges human-readable hyphenated slugs (as they appear in
// shared links) to bucket slugs. Checked only when no Category matches.
var slugBuckets = map[string]string{
	"at-kosu-ekipmanlari":    "kosum-takimi",
	"timar-ekipmanlari":      "timar",
	"at-bakim-ekipmanlari":   "bakim",
	"nalbant-ekipmanlari":    "nalbant",
	"binici-ekipmanlari":     "binici",
	"araba-ve-fayton-takimi": "eyer",
}

// BucketForCategoryName returns the bucket slug for a category display name,
// falling back to the supplied slug when the name has no mapping entry.
func BucketForCategoryName(name, fallback string) string {
	if b, ok := categoryNameBuckets[name]; ok {
		return b
	}
	return fallback
}

// BucketForSlug returns the bucket slug for a hyphenated public slug,
// treating unmapped input literally as a bucket slug.
func BucketForSlug(slug string) string {
	if b, ok := slugBuckets[slug]; ok {
		return b
	}
	return slug
}

// CategoryStyle carries the homepage display mapping for a category:
// its CSS class, fallback card image, and owning bucket.
type CategoryStyle struct {
	CSSClass string
	Image    string
	Bucket   string
}

// categoryStyles maps Category display names to their homepage styling.
var categoryStyles = map[string]CategoryStyle{
	"At Koşu Ekipmanları":  {CSSClass: "cat--racing", Image: "kosum-takimi.jpg", Bucket: "kosum-takimi"},
	"Tımar Ekipmanları":    {CSSClass: "cat--grooming", Image: "timar.jpg", Bucket: "timar"},
	"At Bakım Ekipmanları": {CSSClass: "cat--care", Image: "bakim.jpg", Bucket: "bakim"},
	"Nalbant Ekipmanları":  {CSSClass: "cat--farrier", Image: "nalbant.jpg", Bucket: "nalbant"},
	"Binici Ekipmanları":   {CSSClass: "cat--rider", Image: "binici.jpg", Bucket: "binici"},
	"Araba ve Fayton Takımı": {CSSClass: "cat--carriage", Image: "eyer.jpg", Bucket: "eyer"},
}

// StyleForCategory returns the homepage styling for a category name.
// Unknown categories get the default racing style with their own slug
// as the bucket.
func StyleForCategory(name, slug string) CategoryStyle {
	if s, ok := categoryStyles[name]; ok {
		return s
	}
	return CategoryStyle{CSSClass: "cat--racing", Image: "kosum-takimi.jpg", Bucket: slug}
}
