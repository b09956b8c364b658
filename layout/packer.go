package layout

// PageGeometry is the fixed printable-page geometry the packer works against.
// All values are millimeters.
type PageGeometry struct {
	PageWidth      float64
	PageHeight     float64
	Margin         float64 // left/right/bottom margin
	TopMargin      float64 // first usable Y on every page (page header sits above)
	CaptionReserve float64 // reserved under each image for name + sizes lines
	RowGap         float64 // vertical gap between wrapped rows
	GroupGap       float64 // vertical gap after a finished group
	HeadingHeight  float64 // height of a group heading line
}

// DefaultPageGeometry is the A4 portrait geometry used by the PDF renderer.
func DefaultPageGeometry() PageGeometry {
	return PageGeometry{
		PageWidth:      210,
		PageHeight:     297,
		Margin:         10,
		TopMargin:      24,
		CaptionReserve: 22,
		RowGap:         15,
		GroupGap:       18,
		HeadingHeight:  10,
	}
}

// UsableWidth is the drawable width between the side margins.
func (g PageGeometry) UsableWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// ColumnUnit is the width of one virtual grid column.
func (g PageGeometry) ColumnUnit() float64 {
	return g.UsableWidth() / GridColumns
}

// usableBottom is the last Y an item plus its caption may reach.
func (g PageGeometry) usableBottom() float64 {
	return g.PageHeight - g.Margin
}

// PackerState is the packer's running cursor. It is a value: every step
// returns a new state, and placement order fully determines geometry.
type PackerState struct {
	Page         int
	X            float64
	Y            float64
	UsedCols     int
	MaxRowHeight float64
}

// NewPackerState returns the cursor positioned at the top of page 1.
func NewPackerState(g PageGeometry) PackerState {
	return PackerState{Page: 1, X: g.Margin, Y: g.TopMargin}
}

// atRowStart reports whether the cursor sits at the start of an empty row at
// the top of a page.
func (s PackerState) atRowStart(g PageGeometry) bool {
	return s.UsedCols == 0 && s.Y <= g.TopMargin
}

// Placement is one item's assigned rectangle.
type Placement struct {
	Page   int
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// newPage moves the cursor to the top of a fresh page.
func (g PageGeometry) newPage(s PackerState) PackerState {
	return PackerState{Page: s.Page + 1, X: g.Margin, Y: g.TopMargin}
}

// wrapRow advances the cursor below the current row.
func (g PageGeometry) wrapRow(s PackerState) PackerState {
	s.Y += s.MaxRowHeight + g.RowGap
	s.X = g.Margin
	s.UsedCols = 0
	s.MaxRowHeight = 0
	return s
}

// PlaceItem assigns the next item its rectangle and returns the advanced
// cursor. The item's footprint is resolved to millimeters against this
// geometry's column unit.
//
// A row wraps when the footprint's column span would push the row past the
// 24-column grid. The vertical fit check (item height plus caption reserve
// against the bottom margin) runs after any wrap, so a wrap can never strand
// an item past the bottom of the page. An item taller than a full page is
// still placed at the top of a fresh page and allowed to overflow; nothing is
// ever dropped.
func (g PageGeometry) PlaceItem(s PackerState, f Footprint) (Placement, PackerState) {
	width, height := f.Dimensions(g.ColumnUnit())

	if s.UsedCols+f.ColSpan > GridColumns {
		s = g.wrapRow(s)
	}

	if s.Y+height+g.CaptionReserve > g.usableBottom() && !s.atRowStart(g) {
		s = g.newPage(s)
	}

	placement := Placement{
		Page:   s.Page,
		X:      s.X,
		Y:      s.Y,
		Width:  width,
		Height: height,
	}

	s.X += float64(f.ColSpan) * g.ColumnUnit()
	s.UsedCols += f.ColSpan
	if height > s.MaxRowHeight {
		s.MaxRowHeight = height
	}
	return placement, s
}

// PlaceHeading assigns a full-width group heading at the current Y, starting
// a new page first when the heading itself would not fit. The cursor after a
// heading is a hard row reset: the new group never inherits the previous
// row's state.
func (g PageGeometry) PlaceHeading(s PackerState) (Placement, PackerState) {
	if s.Y+g.HeadingHeight+g.CaptionReserve > g.usableBottom() {
		s = g.newPage(s)
	}

	placement := Placement{
		Page:   s.Page,
		X:      g.Margin,
		Y:      s.Y,
		Width:  g.UsableWidth(),
		Height: g.HeadingHeight,
	}

	s.Y += g.HeadingHeight
	s.X = g.Margin
	s.UsedCols = 0
	s.MaxRowHeight = 0
	return placement, s
}

// FinishGroup advances the cursor below the group's trailing row and resets
// the row state for the next group.
func (g PageGeometry) FinishGroup(s PackerState) PackerState {
	s.Y += s.MaxRowHeight + g.GroupGap
	s.X = g.Margin
	s.UsedCols = 0
	s.MaxRowHeight = 0
	return s
}
