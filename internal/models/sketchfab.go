// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

package models

import (
	"regexp"
	"strings"
)

// sketchfabModelPath matches the model id inside a full Sketchfab URL,
// e.g. https://sketchfab.com/models/4dd909743761457e8d916a142a1e3e95/embed
var sketchfabModelPath = regexp.MustCompile(`/models/([a-fA-F0-9]+)`)

// sketchfabEmbedParams tunes the embedded viewer for touch-friendly,
// interactive display. dnt=1 reduces viewer tracking.
const sketchfabEmbedParams = "autostart=1&preload=1&autospin=0.2&ui_controls=1&ui_theme=dark&transparent=1&camera=0&scrollwheel=1&ui_infos=0&ui_hint=0&ui_stop=0&ui_fullscreen=1&dnt=1"

// ExtractSketchfabID returns the bare model id from either a raw id or a
// full sketchfab.com URL. Returns "" when the value is empty.
func ExtractSketchfabID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" {
		return ""
	}
	if strings.Contains(id, "sketchfab.com") {
		if m := sketchfabModelPath.FindStringSubmatch(id); m != nil {
			return m[1]
		}
	}
	return id
}

// SketchfabEmbedURL builds the viewer embed URL for a model id or URL,
// or "" when no model is configured.
func SketchfabEmbedURL(raw string) string {
	id := ExtractSketchfabID(raw)
	if id == "" {
		return ""
	}
	return "https://sketchfab.com/models/" + id + "/embed?" + sketchfabEmbedParams
}
