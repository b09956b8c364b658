// Package layout implements the catalog page layout engine: the size
// footprint tables and the row/page packer that together decide where each
// selected product lands on a printable page.
package layout

// Context selects which curated footprint table applies. The on-screen card
// grid and the printable page were tuned independently and their values for
// the same size key disagree on purpose; they are never derived from each
// other.
type Context int

const (
	// ContextCard is the on-screen catalog card grid.
	ContextCard Context = iota
	// ContextPage is the printable PDF page grid.
	ContextPage
)

// Footprint is the slot an item occupies, in virtual grid units.
// ColSpan is measured against the 24-column grid; RowSpan against the fixed
// row unit height.
type Footprint struct {
	ColSpan int
	RowSpan int
}

const (
	// GridColumns is the number of virtual columns across the usable width.
	GridColumns = 24
	// RowUnitMM is the physical height of one row grid unit.
	RowUnitMM = 2.25
	// GutterMM is subtracted from each item's drawn width so neighbours in a
	// row do not touch.
	GutterMM = 2.0
)

// Subcategory sentinels that override the size-based footprint entirely.
// Matching is exact and case-sensitive.
const (
	SubcategoryStepRiser        = "Step & Riser"
	SubcategoryDesignCollection = "Design Collection"
)

// defaultFootprint is returned for any size key absent from the tables.
// The historical implementations disagreed between 8x16 and 12x16; 8x16 is
// the one kept.
var defaultFootprint = Footprint{ColSpan: 8, RowSpan: 16}

// stepRiserFootprint renders step/riser entries as a single full-width
// illustrative strip rather than a tile swatch.
var stepRiserFootprint = Footprint{ColSpan: 24, RowSpan: 100}

// designCollectionFootprint is the fixed half-width slot for design
// collection entries.
var designCollectionFootprint = Footprint{ColSpan: 12, RowSpan: 18}

// pageFootprints maps raw size descriptor strings to printable-page grid
// spans. The keys are the exact strings that appear in the product data;
// metric and imperial spellings of the same physical size are independent
// rows, not derived from parsed dimensions. Values encode manually tuned
// visual proportions and must not be recomputed.
var pageFootprints = map[string]Footprint{
	// Mosaic and small wall tiles
	"6x6":           {4, 10},
	"8x8":           {5, 11},
	"8x12":          {5, 12},
	"200x300 mm":    {5, 12},
	"200x300":       {5, 12},
	"10x15":         {5, 13},
	"250x375 mm":    {5, 13},
	"250x375":       {5, 13},
	"12x12":         {6, 12},
	"300x300 mm":    {6, 12},
	"300x300":       {6, 12},
	"12x18":         {6, 14},
	"300x450 mm":    {6, 14},
	"300x450":       {6, 14},
	"12x18 inch":    {6, 14},
	"12x24":         {6, 16},
	"300x600 mm":    {6, 16},
	"300x600":       {6, 16},
	"145x600 mm":    {4, 16},
	"1x1":           {6, 14},
	"16x16":         {7, 14},
	"400x400 mm":    {7, 14},
	"400x400":       {7, 14},
	"16x24":         {7, 16},
	"400x600 mm":    {7, 16},

	// Floor tiles and GVT/PGVT
	"2x2":            {8, 18},
	"2x2 ft":         {8, 18},
	"24x24":          {8, 18},
	"600x600 mm":     {8, 18},
	"600x600":        {8, 18},
	"600x600mm":      {8, 18},
	"2x4":            {8, 24},
	"24x48":          {8, 24},
	"24x48 inch":     {8, 24},
	"600x1200 mm":    {8, 24},
	"600x1200":       {8, 24},
	"600X1200 mm":    {8, 24},
	"32x32":          {9, 19},
	"800x800 mm":     {9, 19},
	"800x800":        {9, 19},
	"26x52":          {9, 22},
	"650x1300 mm":    {9, 22},
	"40x40":          {10, 20},
	"1000x1000 mm":   {10, 20},
	"32x64":          {9, 26},
	"800x1600 mm":    {9, 26},
	"800x1600":       {9, 26},
	"36x72":          {10, 28},
	"900x1800 mm":    {10, 28},
	"900x1800":       {10, 28},

	// Metric + imperial annotated spellings
	"200x300 mm (8x12 inch)":    {5, 12},
	"250x375 mm (10x15 inch)":   {5, 13},
	"300x450 mm (12x18 inch)":   {6, 14},
	"300x600 mm (12x24 inch)":   {6, 16},
	"145x600 mm (6x24 inch)":    {4, 16},
	"400x400 mm (16x16 inch)":   {7, 14},
	"600x600 mm (24x24 inch)":   {8, 18},
	"600x1200 mm (24x48 inch)":  {8, 24},
	"800x800 mm (32x32 inch)":   {9, 19},
	"800x1600 mm (32x64 inch)":  {9, 26},
	"900x1800 mm (36x72 inch)":  {10, 28},
	"1000x1000 mm (40x40 inch)": {10, 20},
	"1200x1200 mm (48x48 inch)": {11, 22},
	"1200x1800 mm (48x72 inch)": {11, 28},
	"800x2400 mm (32x96 inch)":  {9, 32},
	"1200x2400 mm (48x96 inch)": {11, 34},

	// Marble slabs and large-format bodies
	"4x4":          {11, 22},
	"48x48":        {11, 22},
	"1200x1200 mm": {11, 22},
	"1200x1200":    {11, 22},
	"48x72":        {11, 28},
	"1200x1800 mm": {11, 28},
	"1200x1800":    {11, 28},
	"32x96":        {9, 32},
	"800x2400 mm":  {9, 32},
	"800x2400":     {9, 32},
	"800x3000 mm":  {9, 36},
	"48x96":        {11, 34},
	"1200x2400 mm": {11, 34},
	"1200x2400":    {11, 34},
	"1200x2780 mm": {11, 36},
	"1600x3200 mm": {12, 38},
	"1600x3200":    {12, 38},
	"4x8":          {10, 30},
	"4x8 ft":       {10, 30},
	"5x10 ft":      {12, 34},

	// Wood-look planks; the (w) suffix marks plank orientation
	"6x24(w)":     {8, 8},
	"6x36(w)":     {12, 10},
	"6x48(w)":     {16, 10},
	"8x24(w)":     {8, 9},
	"8x36(w)":     {12, 11},
	"8x48(w)":     {16, 12},
	"9x48(w)":     {16, 13},
	"150x900 mm":  {12, 10},
	"200x1200 mm": {16, 12},
	"250x1200 mm": {16, 13},

	// Finish-prefixed variants carried verbatim from the product data
	"(Sugar) 600x600 mm":  {8, 18},
	"(Sugar) 600x1200 mm": {8, 24},
	"(Sugar) 800x1600 mm": {9, 26},
	"(Glossy) 600x600 mm": {8, 18},
	"(Matt) 600x1200 mm":  {8, 24},
	"(God) 8x12":          {5, 12},
	"(God) 12x18":         {6, 14},

	// Composite comma-separated alternatives kept as single keys
	"600x600 mm, 300x600 mm":  {8, 18},
	"600x1200 mm, 600x600 mm": {8, 24},
	"8x12, 12x18":             {6, 14},
	"12x18, 12x24":            {6, 16},

	// Roofing and step stock sizes
	"9x11":        {5, 12},
	"9x13":        {5, 13},
	"220x280 mm":  {5, 12},
	"310x320 mm":  {6, 13},
	"420x330 mm":  {7, 13},
	"12x39.5":     {14, 11},
	"300x1000 mm": {14, 11},
}

// cardFootprints maps the same raw size keys to on-screen card grid spans.
// Tuned separately from pageFootprints for the taller card aspect; partial
// coverage relative to the page table is accepted.
var cardFootprints = map[string]Footprint{
	"6x6":          {4, 16},
	"8x8":          {5, 18},
	"8x12":         {5, 20},
	"200x300 mm":   {5, 20},
	"10x15":        {5, 21},
	"250x375 mm":   {5, 21},
	"12x12":        {6, 20},
	"300x300 mm":   {6, 20},
	"12x18":        {6, 23},
	"300x450 mm":   {6, 23},
	"12x24":        {6, 26},
	"300x600 mm":   {6, 26},
	"1x1":          {6, 23},
	"16x16":        {7, 23},
	"400x400 mm":   {7, 23},
	"2x2":          {8, 30},
	"2x2 ft":       {8, 30},
	"24x24":        {8, 30},
	"600x600 mm":   {8, 30},
	"2x4":          {8, 40},
	"24x48":        {8, 40},
	"600x1200 mm":  {8, 40},
	"32x32":        {9, 32},
	"800x800 mm":   {9, 32},
	"32x64":        {9, 43},
	"800x1600 mm":  {9, 43},
	"36x72":        {10, 46},
	"900x1800 mm":  {10, 46},
	"4x4":          {11, 36},
	"1200x1200 mm": {11, 36},
	"48x72":        {11, 46},
	"1200x1800 mm": {11, 46},
	"800x2400 mm":  {9, 53},
	"1200x2400 mm": {11, 56},
	"1600x3200 mm": {12, 62},
	"6x36(w)":      {12, 16},
	"6x48(w)":      {16, 16},
	"8x48(w)":      {16, 20},
	"9x48(w)":      {16, 21},

	"600x600 mm (24x24 inch)":   {8, 30},
	"600x1200 mm (24x48 inch)":  {8, 40},
	"800x1600 mm (32x64 inch)":  {9, 43},
	"300x450 mm (12x18 inch)":   {6, 23},
	"300x600 mm (12x24 inch)":   {6, 26},
	"1200x1200 mm (48x48 inch)": {11, 36},
	"1200x2400 mm (48x96 inch)": {11, 56},
}

// Lookup returns the footprint recorded for rawSize in the given context.
// Matching is exact and case-sensitive; the raw string is its own canonical
// key. If not found, returns the default footprint. Never fails.
func Lookup(ctx Context, rawSize string) Footprint {
	var table map[string]Footprint
	switch ctx {
	case ContextCard:
		table = cardFootprints
	default:
		table = pageFootprints
	}

	if fp, exists := table[rawSize]; exists {
		return fp
	}
	return defaultFootprint
}

// FootprintFor resolves the footprint for an item, applying the subcategory
// sentinel overrides before any size-based lookup. An unknown subcategory
// falls through to the size path, including the empty string.
func FootprintFor(ctx Context, rawSize, subcategory string) Footprint {
	switch subcategory {
	case SubcategoryStepRiser:
		return stepRiserFootprint
	case SubcategoryDesignCollection:
		return designCollectionFootprint
	}
	return Lookup(ctx, rawSize)
}

// Dimensions converts grid spans to physical millimeters for a given column
// unit width: width loses the inter-item gutter, height is exact.
func (f Footprint) Dimensions(columnUnitWidth float64) (width, height float64) {
	width = float64(f.ColSpan)*columnUnitWidth - GutterMM
	height = float64(f.RowSpan) * RowUnitMM
	return width, height
}
