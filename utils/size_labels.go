package utils

import "strings"

// MapSizeToLabel maps raw product size descriptors to the human-readable
// label printed in catalog headings and size lines. The label table is
// curated independently of the layout footprint tables and does not cover
// every footprint key; coverage gaps are expected.
// Matching is exact; input is trimmed but not case-normalized.
func MapSizeToLabel(rawSize string) string {
	sizeTrimmed := strings.TrimSpace(rawSize)

	labelMap := map[string]string{
		"600x600 mm":                "600x600 mm (24x24 inch)",
		"600x1200 mm":               "600x1200 mm (24x48 inch)",
		"800x800 mm":                "800x800 mm (32x32 inch)",
		"800x1600 mm":               "800x1600 mm (32x64 inch)",
		"300x450 mm":                "300x450 mm (12x18 inch)",
		"300x600 mm":                "300x600 mm (12x24 inch)",
		"200x300 mm":                "200x300 mm (8x12 inch)",
		"250x375 mm":                "250x375 mm (10x15 inch)",
		"400x400 mm":                "400x400 mm (16x16 inch)",
		"1000x1000 mm":              "1000x1000 mm (40x40 inch)",
		"1200x1200 mm":              "1200x1200 mm (48x48 inch)",
		"1200x1800 mm":              "1200x1800 mm (48x72 inch)",
		"800x2400 mm":               "800x2400 mm (32x96 inch)",
		"1200x2400 mm":              "1200x2400 mm (48x96 inch)",
		"1600x3200 mm":              "1600x3200 mm (64x128 inch)",
		"900x1800 mm":               "900x1800 mm (36x72 inch)",
		"145x600 mm":                "145x600 mm (6x24 inch)",
		"2x2":                       "2x2 ft (600x600 mm)",
		"2x4":                       "2x4 ft (600x1200 mm)",
		"4x4":                       "4x4 ft (1200x1200 mm)",
		"1x1":                       "1x1 ft (300x300 mm)",
		"8x12":                      "8x12 inch (200x300 mm)",
		"12x18":                     "12x18 inch (300x450 mm)",
		"12x24":                     "12x24 inch (300x600 mm)",
		"16x16":                     "16x16 inch (400x400 mm)",
		"24x24":                     "24x24 inch (600x600 mm)",
		"24x48":                     "24x48 inch (600x1200 mm)",
		"32x32":                     "32x32 inch (800x800 mm)",
		"6x36(w)":                   "6x36 inch plank",
		"6x48(w)":                   "6x48 inch plank",
		"8x48(w)":                   "8x48 inch plank",
		"9x48(w)":                   "9x48 inch plank",
		"(Sugar) 600x600 mm":        "600x600 mm Sugar finish",
		"(Sugar) 600x1200 mm":       "600x1200 mm Sugar finish",
		"(Glossy) 600x600 mm":       "600x600 mm Glossy finish",
		"(Matt) 600x1200 mm":        "600x1200 mm Matt finish",
		"4x8":                       "4x8 ft slab",
		"4x8 ft":                    "4x8 ft slab",
		"5x10 ft":                   "5x10 ft slab",
		"9x11":                      "9x11 inch roofing",
		"9x13":                      "9x13 inch roofing",
		"12x39.5":                   "12x39.5 inch step",
		"600x1200 mm (24x48 inch)":  "600x1200 mm (24x48 inch)",
		"600x600 mm (24x24 inch)":   "600x600 mm (24x24 inch)",
	}

	if label, exists := labelMap[sizeTrimmed]; exists {
		return label
	}

	// If not found, the raw descriptor is its own label
	return sizeTrimmed
}

// GroupLabel builds the catalog group heading for a subcategory and its
// primary size, e.g. "Glazed Vitrified Tiles (600x1200 mm (24x48 inch))".
func GroupLabel(subcategory, primarySize string) string {
	label := MapSizeToLabel(primarySize)
	if label == "" {
		return subcategory
	}
	return subcategory + " (" + label + ")"
}
