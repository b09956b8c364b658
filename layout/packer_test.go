package layout

import (
	"math/rand"
	"testing"
)

func testGeometry() PageGeometry {
	return DefaultPageGeometry()
}

func TestPlaceItemRowWrap(t *testing.T) {
	// Four items of colSpan 8 on the 24-column grid: three fit in row one,
	// the fourth wraps.
	geom := testGeometry()
	state := NewPackerState(geom)
	fp := Footprint{ColSpan: 8, RowSpan: 18}

	var placements []Placement
	for i := 0; i < 4; i++ {
		var pl Placement
		pl, state = geom.PlaceItem(state, fp)
		placements = append(placements, pl)
	}

	rowY := placements[0].Y
	for i := 1; i < 3; i++ {
		if placements[i].Y != rowY {
			t.Errorf("placement %d: Y = %v, want %v (same row)", i, placements[i].Y, rowY)
		}
	}
	if placements[3].Y == rowY {
		t.Errorf("placement 3 did not wrap: Y = %v", placements[3].Y)
	}
	if placements[3].X != geom.Margin {
		t.Errorf("placement 3: X = %v, want margin %v after wrap", placements[3].X, geom.Margin)
	}

	_, rowHeight := fp.Dimensions(geom.ColumnUnit())
	wantY := rowY + rowHeight + geom.RowGap
	if placements[3].Y != wantY {
		t.Errorf("placement 3: Y = %v, want %v", placements[3].Y, wantY)
	}

	// X advances by full column units; width excludes the gutter.
	if placements[1].X != geom.Margin+8*geom.ColumnUnit() {
		t.Errorf("placement 1: X = %v, want %v", placements[1].X, geom.Margin+8*geom.ColumnUnit())
	}
	if placements[0].Width != 8*geom.ColumnUnit()-GutterMM {
		t.Errorf("placement 0: Width = %v, want %v", placements[0].Width, 8*geom.ColumnUnit()-GutterMM)
	}
}

func TestPlaceItemPageBreak(t *testing.T) {
	// Full-width tall items stack down the page until one would cross the
	// bottom margin with its caption; that one opens page 2.
	geom := testGeometry()
	state := NewPackerState(geom)
	fp := Footprint{ColSpan: 24, RowSpan: 40} // 90mm tall

	var placements []Placement
	for i := 0; i < 4; i++ {
		var pl Placement
		pl, state = geom.PlaceItem(state, fp)
		placements = append(placements, pl)
	}

	// 90mm items with 15mm row gaps: two fit above the 287mm bottom line,
	// the third would reach past it.
	if placements[0].Page != 1 || placements[1].Page != 1 {
		t.Fatalf("first two placements on pages %d, %d, want 1, 1", placements[0].Page, placements[1].Page)
	}
	if placements[2].Page != 2 {
		t.Errorf("placement 2 on page %d, want 2", placements[2].Page)
	}
	if placements[2].Y != geom.TopMargin {
		t.Errorf("placement 2: Y = %v, want top margin %v", placements[2].Y, geom.TopMargin)
	}
}

func TestPlaceItemOversizedNeverDropped(t *testing.T) {
	// An item taller than a full page still gets placed at the top of a
	// fresh page; overflow is tolerated, dropping is not.
	geom := testGeometry()
	state := NewPackerState(geom)

	// Put something small first so the cursor is mid-page.
	_, state = geom.PlaceItem(state, Footprint{ColSpan: 8, RowSpan: 18})

	pl, next := geom.PlaceItem(state, Footprint{ColSpan: 24, RowSpan: 200})
	if pl.Page != 2 {
		t.Errorf("oversized item on page %d, want 2", pl.Page)
	}
	if pl.Y != geom.TopMargin {
		t.Errorf("oversized item Y = %v, want top margin %v", pl.Y, geom.TopMargin)
	}
	if next.Page != 2 {
		t.Errorf("state page = %d, want 2", next.Page)
	}
}

func TestPlaceHeadingBreaksNearBottom(t *testing.T) {
	geom := testGeometry()
	state := NewPackerState(geom)
	state.Y = geom.PageHeight - geom.Margin - 5 // almost at the bottom

	pl, next := geom.PlaceHeading(state)
	if pl.Page != 2 {
		t.Errorf("heading placed on page %d, want 2", pl.Page)
	}
	if next.UsedCols != 0 || next.MaxRowHeight != 0 {
		t.Errorf("heading did not reset row state: %+v", next)
	}
	if next.Y != geom.TopMargin+geom.HeadingHeight {
		t.Errorf("state Y = %v, want %v", next.Y, geom.TopMargin+geom.HeadingHeight)
	}
}

func TestFinishGroupResetsRowState(t *testing.T) {
	geom := testGeometry()
	state := NewPackerState(geom)

	_, state = geom.PlaceItem(state, Footprint{ColSpan: 8, RowSpan: 18})
	yBefore := state.Y
	rowHeight := state.MaxRowHeight

	state = geom.FinishGroup(state)
	if state.X != geom.Margin || state.UsedCols != 0 || state.MaxRowHeight != 0 {
		t.Errorf("group finish did not reset row state: %+v", state)
	}
	if state.Y != yBefore+rowHeight+geom.GroupGap {
		t.Errorf("Y = %v, want %v", state.Y, yBefore+rowHeight+geom.GroupGap)
	}
}

func TestPackerDeterminism(t *testing.T) {
	geom := testGeometry()
	footprints := []Footprint{{8, 18}, {12, 18}, {24, 100}, {6, 14}, {8, 16}, {16, 12}}

	run := func() []Placement {
		state := NewPackerState(geom)
		var placements []Placement
		for _, fp := range footprints {
			var pl Placement
			pl, state = geom.PlaceItem(state, fp)
			placements = append(placements, pl)
		}
		return placements
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("placement %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestPackerInvariantsRandomSequences(t *testing.T) {
	// Property check over random footprint sequences: no placement crosses
	// the right margin, no row exceeds 24 columns, and nothing crosses the
	// bottom margin unless it was placed alone at the top of a page.
	geom := testGeometry()
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		state := NewPackerState(geom)
		n := 5 + rng.Intn(40)

		for i := 0; i < n; i++ {
			fp := Footprint{
				ColSpan: 1 + rng.Intn(GridColumns),
				RowSpan: 4 + rng.Intn(40),
			}
			usedBefore := state.UsedCols
			pageBefore := state.Page

			pl, next := geom.PlaceItem(state, fp)

			if pl.X+pl.Width > geom.PageWidth-geom.Margin+1e-9 {
				t.Fatalf("trial %d item %d: right overflow: x=%v w=%v", trial, i, pl.X, pl.Width)
			}
			if next.UsedCols > GridColumns {
				t.Fatalf("trial %d item %d: row uses %d columns", trial, i, next.UsedCols)
			}
			if pl.Y+pl.Height+geom.CaptionReserve > geom.PageHeight-geom.Margin+1e-9 {
				// Only legal when the item sits alone at the top of its page.
				if pl.Y != geom.TopMargin {
					t.Fatalf("trial %d item %d: bottom overflow mid-page: y=%v h=%v", trial, i, pl.Y, pl.Height)
				}
			}
			// Same row on the same page keeps accumulating columns.
			if next.Page == pageBefore && pl.X != geom.Margin && next.UsedCols != usedBefore+fp.ColSpan {
				t.Fatalf("trial %d item %d: column accounting broke: %d -> %d (+%d)",
					trial, i, usedBefore, next.UsedCols, fp.ColSpan)
			}
			state = next
		}
	}
}
