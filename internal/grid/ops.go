package grid

import "math/rand"

// Axis selects whether a line operation targets a row or a column.
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "row"
	case AxisColumn:
		return "column"
	default:
		return "unknown"
	}
}

// lineLen returns the number of cells in a line along the axis, or 0 when
// the index is out of range.
func (b *Board) lineLen(axis Axis, idx int) int {
	switch axis {
	case AxisRow:
		if idx < 0 || idx >= b.height {
			return 0
		}
		return b.width
	case AxisColumn:
		if idx < 0 || idx >= b.width {
			return 0
		}
		return b.height
	default:
		return 0
	}
}

// lineCell maps a position along a line to board coordinates.
func lineCell(axis Axis, idx, pos int) (x, y int) {
	if axis == AxisRow {
		return pos, idx
	}
	return idx, pos
}

// Clear sets every cell on the board to Empty.
func (b *Board) Clear() {
	b.Fill(Empty)
}

// ClearLine sets every cell of the selected row or column to Empty.
// An out-of-range index is a no-op.
func (b *Board) ClearLine(axis Axis, idx int) {
	b.FillLine(axis, idx, Empty)
}

// ClearRect sets every cell of the w×h rectangle at (x, y) to Empty.
// Cells falling outside the board are skipped.
func (b *Board) ClearRect(x, y, w, h int) {
	b.FillRect(x, y, w, h, Empty)
}

// ClearToEdge clears the rectangle spanning from (x, y) to the board's
// bottom-right corner.
func (b *Board) ClearToEdge(x, y int) {
	b.FillToEdge(x, y, Empty)
}

// ClearWhere sets to Empty every cell flagged by the mask (any non-Empty
// mask cell). The mask must match the board's dimensions exactly; any
// mismatch is a no-op.
func (b *Board) ClearWhere(mask Overlay) {
	b.FillWhere(mask, Empty)
}

// ClearOverlay sets to Empty every board cell covered by an opaque cell of
// ov placed at (x, y). Transparent overlay cells leave the board untouched;
// cells falling outside the board are skipped.
func (b *Board) ClearOverlay(x, y int, ov Overlay) {
	if !overlayValid(ov) {
		return
	}
	w, h := ov.Size()
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if ov.Cell(dx, dy) != Empty {
				b.Set(x+dx, y+dy, Empty)
			}
		}
	}
}

// Fill sets every cell on the board to v.
func (b *Board) Fill(v int) {
	for i := range b.cells {
		b.cells[i] = v
	}
}

// FillLine sets every cell of the selected row or column to v.
// An out-of-range index is a no-op.
func (b *Board) FillLine(axis Axis, idx, v int) {
	n := b.lineLen(axis, idx)
	for pos := 0; pos < n; pos++ {
		x, y := lineCell(axis, idx, pos)
		b.Set(x, y, v)
	}
}

// FillRect sets every cell of the w×h rectangle at (x, y) to v.
// Cells falling outside the board are skipped.
func (b *Board) FillRect(x, y, w, h, v int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			b.Set(x+dx, y+dy, v)
		}
	}
}

// FillToEdge fills the rectangle spanning from (x, y) to the board's
// bottom-right corner with v.
func (b *Board) FillToEdge(x, y, v int) {
	b.FillRect(x, y, b.width-x, b.height-y, v)
}

// FillWhere sets to v every cell flagged by the mask (any non-Empty mask
// cell). The mask must match the board's dimensions exactly; any mismatch
// is a no-op.
func (b *Board) FillWhere(mask Overlay, v int) {
	if !b.overlayMatches(mask) {
		return
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if mask.Cell(x, y) != Empty {
				b.cells[y*b.width+x] = v
			}
		}
	}
}

// FillOverlay stamps the opaque cells of ov onto the board at (x, y),
// writing the overlay's own values. Transparent overlay cells leave the
// board untouched; cells falling outside the board are skipped.
func (b *Board) FillOverlay(x, y int, ov Overlay) {
	if !overlayValid(ov) {
		return
	}
	w, h := ov.Size()
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if v := ov.Cell(dx, dy); v != Empty {
				b.Set(x+dx, y+dy, v)
			}
		}
	}
}

// Randomize fills the whole board with pseudorandom tile codes in
// [Empty, maxCode]. A nil rng uses the package default source; a
// non-positive maxCode clears the board.
func (b *Board) Randomize(rng *rand.Rand, maxCode int) {
	if maxCode <= 0 {
		b.Clear()
		return
	}
	next := rand.Intn
	if rng != nil {
		next = rng.Intn
	}
	for i := range b.cells {
		b.cells[i] = next(maxCode + 1)
	}
}

// RemoveRow drops row y, shifts every row above it down by one, and clears
// the vacated top row. An out-of-range index is a no-op.
func (b *Board) RemoveRow(y int) {
	if y < 0 || y >= b.height {
		return
	}
	for yy := y; yy > 0; yy-- {
		copy(b.cells[yy*b.width:(yy+1)*b.width], b.cells[(yy-1)*b.width:yy*b.width])
	}
	b.ClearLine(AxisRow, 0)
}
