package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"reflect"
	"testing"

	"stonedepot-catalog/layout"
	"stonedepot-catalog/models"
)

// stubFetcher serves canned image bytes by URL; unknown URLs come back nil,
// mimicking fetch failures.
type stubFetcher struct {
	images map[string][]byte
}

func (f *stubFetcher) FetchAll(_ context.Context, urls []string) [][]byte {
	results := make([][]byte, len(urls))
	for i, url := range urls {
		results[i] = f.images[url]
	}
	return results
}

func testJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: 180, G: 120, B: 80, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func testItem(id, name, size string) models.CatalogItem {
	return models.CatalogItem{
		ID:            id,
		Name:          name,
		ImageURL:      "/api/products/" + id + "/image",
		Category:      "Tiles",
		Subcategory:   "Floor Tiles",
		Sizes:         []string{size},
		SelectedSizes: []string{size},
		SizeConfigs:   map[string]int{size: 3},
	}
}

func TestGeneratePDFEmptyCatalog(t *testing.T) {
	svc := NewCatalogService(&stubFetcher{})

	tests := []struct {
		name   string
		groups []models.CatalogGroup
	}{
		{"no groups", nil},
		{"groups without items", []models.CatalogGroup{{Label: "Floor Tiles (2x2)"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GeneratePDF(context.Background(), models.GenerateCatalogRequest{Groups: tt.groups})
			if !errors.Is(err, ErrEmptyCatalog) {
				t.Errorf("err = %v, want ErrEmptyCatalog", err)
			}
		})
	}
}

func TestGeneratePDFProducesDocument(t *testing.T) {
	item := testItem("p1", "Verona Beige", "2x2")
	fetcher := &stubFetcher{images: map[string][]byte{item.ImageURL: testJPEG(t)}}
	svc := NewCatalogService(fetcher)

	req := models.GenerateCatalogRequest{
		Metadata: models.CatalogMetadata{Title: "Living Room Selection", Name: "A. Shah"},
		Groups: []models.CatalogGroup{
			{Label: "Floor Tiles (2x2 ft (600x600 mm))", Items: []models.CatalogItem{item}},
		},
	}

	doc, err := svc.GeneratePDF(context.Background(), req)
	if err != nil {
		t.Fatalf("GeneratePDF: %v", err)
	}
	if !bytes.HasPrefix(doc.Data, []byte("%PDF")) {
		t.Errorf("document does not start with %%PDF header")
	}
	if doc.Filename != "Living_Room_Selection.pdf" {
		t.Errorf("filename = %q, want Living_Room_Selection.pdf", doc.Filename)
	}
}

func TestGeneratePDFToleratesMissingImages(t *testing.T) {
	// Every fetch fails; the document still renders with caption-only slots.
	item := testItem("p1", "Verona Beige", "2x2")
	svc := NewCatalogService(&stubFetcher{})

	req := models.GenerateCatalogRequest{
		Groups: []models.CatalogGroup{
			{Label: "Floor Tiles", Items: []models.CatalogItem{item, testItem("p2", "Carrara White", "600x1200 mm")}},
		},
	}

	doc, err := svc.GeneratePDF(context.Background(), req)
	if err != nil {
		t.Fatalf("GeneratePDF with failing images: %v", err)
	}
	if len(doc.Data) == 0 {
		t.Error("empty document")
	}
}

func TestGeneratePDFCancelledContext(t *testing.T) {
	svc := NewCatalogService(&stubFetcher{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := models.GenerateCatalogRequest{
		Groups: []models.CatalogGroup{{Label: "g", Items: []models.CatalogItem{testItem("p1", "x", "2x2")}}},
	}
	_, err := svc.GeneratePDF(ctx, req)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestBuildPlanSingleItemScenario(t *testing.T) {
	svc := NewCatalogService(&stubFetcher{})
	geom := svc.geometry
	startY := geom.TopMargin + 20

	groups := []models.CatalogGroup{
		{Label: "Floor Tiles (2x2 ft (600x600 mm))", Items: []models.CatalogItem{testItem("p1", "Verona Beige", "2x2")}},
	}
	plans := svc.buildPlan(groups, startY)

	if len(plans) != 1 {
		t.Fatalf("got %d group plans, want 1", len(plans))
	}
	plan := plans[0]
	if plan.heading.Page != 1 || plan.heading.Y != startY {
		t.Errorf("heading at page %d Y %v, want page 1 Y %v", plan.heading.Page, plan.heading.Y, startY)
	}
	if len(plan.items) != 1 {
		t.Fatalf("got %d placements, want 1", len(plan.items))
	}

	rect := plan.items[0].rect
	if rect.Page != 1 {
		t.Errorf("item on page %d, want 1", rect.Page)
	}
	if rect.X != geom.Margin {
		t.Errorf("item X = %v, want margin %v", rect.X, geom.Margin)
	}
	if rect.Y != startY+geom.HeadingHeight {
		t.Errorf("item Y = %v, want %v", rect.Y, startY+geom.HeadingHeight)
	}
	// "2x2" is (8, 18) in the page table.
	wantWidth := 8*geom.ColumnUnit() - layout.GutterMM
	if rect.Width != wantWidth {
		t.Errorf("item width = %v, want %v", rect.Width, wantWidth)
	}
	if rect.Height != 18*layout.RowUnitMM {
		t.Errorf("item height = %v, want %v", rect.Height, 18*layout.RowUnitMM)
	}
}

func TestBuildPlanGeometryIsIdempotent(t *testing.T) {
	// Placement geometry is a pure function of the request; image bytes
	// never influence it.
	svc := NewCatalogService(&stubFetcher{})
	groups := []models.CatalogGroup{
		{Label: "Floor Tiles", Items: []models.CatalogItem{
			testItem("p1", "Verona Beige", "2x2"),
			testItem("p2", "Carrara White", "600x1200 mm"),
			testItem("p3", "Slate Grey", "no such size"),
		}},
		{Label: "Step & Riser", Items: []models.CatalogItem{
			{ID: "p4", Name: "Classic Step", Subcategory: layout.SubcategoryStepRiser},
		}},
	}

	first := svc.buildPlan(groups, svc.geometry.TopMargin)
	second := svc.buildPlan(groups, svc.geometry.TopMargin)
	if !reflect.DeepEqual(first, second) {
		t.Error("plans differ between identical runs")
	}
}

func TestFormatSelectedSizes(t *testing.T) {
	tests := []struct {
		name string
		item models.CatalogItem
		want string
	}{
		{
			"single size with quantity",
			testItem("p1", "Verona Beige", "2x2"),
			"2x2 ft (600x600 mm) (3)",
		},
		{
			"multiple sizes keep selection order",
			models.CatalogItem{
				SelectedSizes: []string{"600x600 mm", "300x600 mm"},
				SizeConfigs:   map[string]int{"600x600 mm": 2, "300x600 mm": 5},
			},
			"600x600 mm (24x24 inch) (2), 300x600 mm (12x24 inch) (5)",
		},
		{
			"unmapped size is its own label",
			models.CatalogItem{
				SelectedSizes: []string{"oddball"},
				SizeConfigs:   map[string]int{"oddball": 1},
			},
			"oddball (1)",
		},
		{"no selection", models.CatalogItem{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSelectedSizes(tt.item); got != tt.want {
				t.Errorf("formatSelectedSizes() = %q, want %q", got, tt.want)
			}
		})
	}
}
