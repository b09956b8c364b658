package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"stonedepot-catalog/layout"
	"stonedepot-catalog/models"
	"stonedepot-catalog/utils"

	"github.com/jung-kurt/gofpdf"
)

// DefaultCatalogTitle is printed when the export metadata carries no title.
const DefaultCatalogTitle = "Stonedepot Product Catalog"

// CatalogService generates the catalog PDF from a grouped export request.
// All packer state is request-local; a CatalogService is safe for concurrent
// exports.
type CatalogService struct {
	fetcher  ImageFetcherInterface
	geometry layout.PageGeometry
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(fetcher ImageFetcherInterface) *CatalogService {
	return &CatalogService{
		fetcher:  fetcher,
		geometry: layout.DefaultPageGeometry(),
	}
}

// placedItem pairs one catalog item with its assigned rectangle and the
// index of its slot in the flattened image list.
type placedItem struct {
	item       models.CatalogItem
	rect       layout.Placement
	imageIndex int
}

// groupPlan is one group's heading rectangle plus its item placements.
type groupPlan struct {
	label   string
	heading layout.Placement
	items   []placedItem
}

// titleBlockHeight is the vertical space the page-1 title block consumes
// before the first group heading. Geometry depends only on which metadata
// fields are present, never on image content.
func (s *CatalogService) titleBlockHeight(meta models.CatalogMetadata) float64 {
	height := 12.0 // title line
	if strings.TrimSpace(meta.Name) != "" {
		height += 6
	}
	if strings.TrimSpace(meta.Description) != "" {
		height += 6
	}
	return height + 4
}

// buildPlan folds the packer over every group and returns the complete
// placement plan. The plan is a pure function of the request: building it
// twice yields identical geometry.
func (s *CatalogService) buildPlan(groups []models.CatalogGroup, startY float64) []groupPlan {
	state := layout.NewPackerState(s.geometry)
	state.Y = startY

	plans := make([]groupPlan, 0, len(groups))
	imageIndex := 0

	for _, group := range groups {
		var plan groupPlan
		plan.label = group.Label
		plan.heading, state = s.geometry.PlaceHeading(state)

		for _, item := range group.Items {
			fp := layout.FootprintFor(layout.ContextPage, item.PrimarySize(), item.Subcategory)
			var rect layout.Placement
			rect, state = s.geometry.PlaceItem(state, fp)
			plan.items = append(plan.items, placedItem{
				item:       item,
				rect:       rect,
				imageIndex: imageIndex,
			})
			imageIndex++
		}

		state = s.geometry.FinishGroup(state)
		plans = append(plans, plan)
	}
	return plans
}

// collectImageURLs flattens every item's image URL in draw order.
func collectImageURLs(groups []models.CatalogGroup) []string {
	var urls []string
	for _, group := range groups {
		for _, item := range group.Items {
			urls = append(urls, item.ImageURL)
		}
	}
	return urls
}

// countItems returns the total number of items across all groups.
func countItems(groups []models.CatalogGroup) int {
	total := 0
	for _, group := range groups {
		total += len(group.Items)
	}
	return total
}

// GeneratePDF lays out and renders the export request into a finished PDF.
// Per-item image failures degrade to caption-only slots; an empty request,
// a serialization failure, or a context deadline abort with no partial
// artifact.
func (s *CatalogService) GeneratePDF(ctx context.Context, req models.GenerateCatalogRequest) (*models.GeneratedDocument, error) {
	if countItems(req.Groups) == 0 {
		log.Printf("⚠️  GeneratePDF: rejected empty catalog request")
		return nil, ErrEmptyCatalog
	}

	title := strings.TrimSpace(req.Metadata.Title)
	if title == "" {
		title = DefaultCatalogTitle
	}

	log.Printf("📄 GeneratePDF: title=%q groups=%d items=%d", title, len(req.Groups), countItems(req.Groups))

	// Prefetch all images up front, in parallel, joined back in draw order.
	// Layout never waits on the network per item.
	images := s.fetcher.FetchAll(ctx, collectImageURLs(req.Groups))
	for i, data := range images {
		if data == nil {
			continue
		}
		optimized, err := OptimizeImage(data, "medium")
		if err != nil {
			log.Printf("⚠️  Warning: failed to optimize image %d: %v", i, err)
			images[i] = nil
			continue
		}
		images[i] = optimized
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("catalog generation aborted: %w", err)
	}

	plans := s.buildPlan(req.Groups, s.geometry.TopMargin+s.titleBlockHeight(req.Metadata))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.SetXY(s.geometry.Margin, 8)
		pdf.CellFormat(s.geometry.UsableWidth(), 5, DefaultCatalogTitle, "", 0, "R", false, 0, "")
		pdf.SetDrawColor(200, 200, 200)
		pdf.Line(s.geometry.Margin, 15, s.geometry.PageWidth-s.geometry.Margin, 15)
	})
	pdf.AddPage()

	s.drawTitleBlock(pdf, title, req.Metadata)

	currentPage := 1
	for _, plan := range plans {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("catalog generation aborted: %w", err)
		}

		currentPage = s.ensurePage(pdf, currentPage, plan.heading.Page)
		s.drawHeading(pdf, plan.label, plan.heading)

		for _, placed := range plan.items {
			currentPage = s.ensurePage(pdf, currentPage, placed.rect.Page)
			s.drawItem(pdf, placed, images[placed.imageIndex])
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	doc := &models.GeneratedDocument{
		Data:     buf.Bytes(),
		Filename: utils.CatalogFilename(req.Metadata.Title),
	}
	log.Printf("✓ GeneratePDF: finished %q (%d pages, %d bytes)", doc.Filename, pdf.PageCount(), len(doc.Data))
	return doc, nil
}

// ensurePage adds pages until the canvas is on the packer's target page.
func (s *CatalogService) ensurePage(pdf *gofpdf.Fpdf, current, target int) int {
	for current < target {
		pdf.AddPage()
		current++
	}
	return current
}

func (s *CatalogService) drawTitleBlock(pdf *gofpdf.Fpdf, title string, meta models.CatalogMetadata) {
	y := s.geometry.TopMargin

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(40, 40, 40)
	pdf.SetXY(s.geometry.Margin, y)
	pdf.CellFormat(s.geometry.UsableWidth(), 9, title, "", 0, "C", false, 0, "")
	y += 12

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(90, 90, 90)
	if name := strings.TrimSpace(meta.Name); name != "" {
		pdf.SetXY(s.geometry.Margin, y)
		pdf.CellFormat(s.geometry.UsableWidth(), 5, "Prepared for: "+name, "", 0, "C", false, 0, "")
		y += 6
	}
	if desc := strings.TrimSpace(meta.Description); desc != "" {
		pdf.SetXY(s.geometry.Margin, y)
		pdf.CellFormat(s.geometry.UsableWidth(), 5, desc, "", 0, "C", false, 0, "")
	}
}

func (s *CatalogService) drawHeading(pdf *gofpdf.Fpdf, label string, rect layout.Placement) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(40, 40, 40)
	pdf.SetXY(rect.X, rect.Y)
	pdf.CellFormat(rect.Width, rect.Height-2, label, "B", 0, "L", false, 0, "")
}

// drawItem draws one placed item: image (when available), name caption, and
// the selected size/quantity line. A missing image leaves the slot empty but
// keeps the caption at its reserved position, so geometry never depends on
// image availability.
func (s *CatalogService) drawItem(pdf *gofpdf.Fpdf, placed placedItem, imageData []byte) {
	rect := placed.rect

	if imageData != nil {
		name := fmt.Sprintf("item-%d", placed.imageIndex)
		opts := gofpdf.ImageOptions{ImageType: "JPG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(imageData))
		pdf.ImageOptions(name, rect.X, rect.Y, rect.Width, rect.Height, false, opts, 0, "")
	} else {
		// Ghost frame so a failed image still reads as a product slot.
		pdf.SetDrawColor(220, 220, 220)
		pdf.Rect(rect.X, rect.Y, rect.Width, rect.Height, "D")
	}

	// Caption, clipped to the item width.
	captionY := rect.Y + rect.Height + 1.5
	pdf.ClipRect(rect.X, captionY, rect.Width, 5, false)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(40, 40, 40)
	pdf.SetXY(rect.X, captionY)
	pdf.CellFormat(rect.Width, 4.5, placed.item.Name, "", 0, "L", false, 0, "")
	pdf.ClipEnd()

	sizesLine := formatSelectedSizes(placed.item)
	if sizesLine == "" {
		return
	}
	pdf.ClipRect(rect.X, captionY+5, rect.Width, 4.5, false)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(110, 110, 110)
	pdf.SetXY(rect.X, captionY+5)
	pdf.CellFormat(rect.Width, 4, sizesLine, "", 0, "L", false, 0, "")
	pdf.ClipEnd()
}

// formatSelectedSizes renders the ordered "{size} ({qty})" line for the
// item's selected sizes, or "" when nothing was selected.
func formatSelectedSizes(item models.CatalogItem) string {
	if len(item.SelectedSizes) == 0 {
		return ""
	}
	parts := make([]string, 0, len(item.SelectedSizes))
	for _, size := range item.SelectedSizes {
		parts = append(parts, fmt.Sprintf("%s (%d)", utils.MapSizeToLabel(size), item.SizeConfigs[size]))
	}
	return strings.Join(parts, ", ")
}
