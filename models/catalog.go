package models

// CatalogItem represents one product the user selected for the exported catalog.
// Only Sizes[0] is used for layout purposes; it is the item's primary declared size.
type CatalogItem struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	ImageURL      string         `json:"imageUrl"`
	Category      string         `json:"category"`
	Subcategory   string         `json:"subcategory"`
	Sizes         []string       `json:"sizes"`
	SelectedSizes []string       `json:"selectedSizes"`
	SizeConfigs   map[string]int `json:"sizeConfigs"` // size string -> requested quantity
}

// PrimarySize returns the item's primary declared size, or "" when none is declared.
func (i CatalogItem) PrimarySize() string {
	if len(i.Sizes) == 0 {
		return ""
	}
	return i.Sizes[0]
}

// TotalQuantity returns the sum of requested quantities across selected sizes.
func (i CatalogItem) TotalQuantity() int {
	total := 0
	for _, size := range i.SelectedSizes {
		total += i.SizeConfigs[size]
	}
	return total
}

// CatalogGroup is one labeled group of items in the export request.
// Group order and item order come from the caller and are never re-sorted here.
type CatalogGroup struct {
	Label string        `json:"label"`
	Items []CatalogItem `json:"items"`
}

// CatalogMetadata is the free-form export metadata. All fields tolerate blank values.
type CatalogMetadata struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GenerateCatalogRequest is the body of the PDF generation and email endpoints.
type GenerateCatalogRequest struct {
	Metadata CatalogMetadata `json:"metadata"`
	Groups   []CatalogGroup  `json:"groups"`
}

// GeneratedDocument is the finished, immutable export artifact.
type GeneratedDocument struct {
	Data     []byte
	Filename string
}
