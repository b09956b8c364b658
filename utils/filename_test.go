package utils

import "testing"

func TestCatalogFilename(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain title", "Living Room Selection", "Living_Room_Selection.pdf"},
		{"already clean", "catalog-2026", "catalog-2026.pdf"},
		{"punctuation collapses", "Mr. Shah's Tiles!!", "Mr_Shah_s_Tiles.pdf"},
		{"blank falls back", "", DefaultCatalogFilename},
		{"whitespace falls back", "   ", DefaultCatalogFilename},
		{"only punctuation falls back", "!!!", DefaultCatalogFilename},
		{"leading and trailing stripped", "  (draft)  ", "draft.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CatalogFilename(tt.title); got != tt.want {
				t.Errorf("CatalogFilename(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
