package utils

import (
	"regexp"
	"strings"
)

// DefaultCatalogFilename is used when the export title yields no usable name.
const DefaultCatalogFilename = "stonedepot-catalog.pdf"

var nonFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// CatalogFilename derives the suggested download filename from the export
// title. Non-identifier characters collapse to single underscores; a blank or
// fully-stripped title falls back to the generic name.
func CatalogFilename(title string) string {
	sanitized := nonFilenameChars.ReplaceAllString(strings.TrimSpace(title), "_")
	sanitized = strings.Trim(sanitized, "_")
	if sanitized == "" {
		return DefaultCatalogFilename
	}
	return sanitized + ".pdf"
}
