// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
// Turkish and other Latin-script diacritics are folded to ASCII so that
// category names like "Tımar Ekipmanları" yield stable slugs.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit,
	// underscore, or space. Underscores survive so that file-style names
	// like "gem_klasik" slugify to themselves.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9_\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// turkish maps the Turkish letters that do not decompose to an ASCII base
// under NFD. The dotless ı in particular would otherwise be dropped entirely.
var turkish = strings.NewReplacer(
	"ı", "i", "İ", "I",
	"ş", "s", "Ş", "S",
	"ğ", "g", "Ğ", "G",
	"ç", "c", "Ç", "C",
	"ö", "o", "Ö", "O",
	"ü", "u", "Ü", "U",
)

// asciiFold decomposes accented characters and strips the combining marks,
// turning e.g. "é" into "e".
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Generate creates a URL-friendly slug from the given string.
// Example: "Tımar Ekipmanları" → "timar-ekipmanlari"
func Generate(s string) string {
	result := turkish.Replace(strings.TrimSpace(s))
	if folded, _, err := transform.String(asciiFold, result); err == nil {
		result = folded
	}
	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}
