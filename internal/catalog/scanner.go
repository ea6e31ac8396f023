// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// imageExtensions lists the file extensions treated as product assets.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// IsImageFile reports whether the file name has an accepted image extension.
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// Scanner lists the product image directory and classifies each file into a
// keyword bucket. It holds no state between calls; every Scan re-reads the
// directory, so results track file-system changes with no cache to invalidate.
type Scanner struct {
	dir string
}

// NewScanner returns a Scanner over the given directory.
func NewScanner(dir string) *Scanner {
	return &Scanner{dir: dir}
}

// Dir returns the scanned directory path.
func (s *Scanner) Dir() string {
	return s.dir
}

// Scan returns the bucket-slug → sorted file names mapping for the current
// directory snapshot. A file is claimed by the first bucket in priority
// order whose keywords match it; leftovers land in the "diger" bucket,
// which is present only when non-empty. A missing or unreadable directory
// degrades to an empty mapping.
func (s *Scanner) Scan() map[string][]string {
	buckets := make(map[string][]string)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		slog.Warn("product image directory unavailable", "dir", s.dir, "error", err)
		return buckets
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if IsImageFile(e.Name()) {
			files = append(files, e.Name())
		}
	}

	claimed := make(map[string]bool, len(files))
	for _, b := range Buckets {
		var matched []string
		for _, f := range files {
			if claimed[f] {
				continue
			}
			if matchesAny(f, b.Keywords) {
				matched = append(matched, f)
				claimed[f] = true
			}
		}
		sort.Strings(matched)
		buckets[b.Slug] = matched
	}

	var unmatched []string
	for _, f := range files {
		if !claimed[f] {
			unmatched = append(unmatched, f)
		}
	}
	if len(unmatched) > 0 {
		sort.Strings(unmatched)
		buckets[OtherBucket] = unmatched
	}

	return buckets
}

// matchesAny reports whether the file name contains any keyword,
// case-insensitively.
func matchesAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
