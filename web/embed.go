// Package web provides the embedded static assets (CSS, JS, category
// fallback images) served at /static/. Product photos are the exception:
// they live on disk under PRODUCT_ASSETS_DIR so the shop can add and
// remove images without rebuilding the binary.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS
