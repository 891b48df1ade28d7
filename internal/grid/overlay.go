package grid

// Overlay is a rectangular region of tile values with transparent cells.
// Cells holding Empty are transparent: region operations skip them, so an
// overlay can describe a piece shape, a batch edit, or a boolean mask (any
// non-Empty value flags "affected").
//
// A Board is itself an Overlay, so a whole board can be stamped onto another.
type Overlay interface {
	// Size returns the overlay's extent. Both dimensions must be positive
	// for the overlay to be usable; consumers fail closed otherwise.
	Size() (w, h int)

	// Cell returns the value at local offset (dx, dy), or Empty when the
	// cell is transparent or the offset is outside the overlay.
	Cell(dx, dy int) int
}

// Matrix is a raw row-major value matrix used directly as an Overlay.
// Short rows read as transparent beyond their length.
type Matrix [][]int

// Size returns the matrix extent. The width is that of the longest row.
func (m Matrix) Size() (w, h int) {
	for _, row := range m {
		if len(row) > w {
			w = len(row)
		}
	}
	return w, len(m)
}

// Cell returns the value at (dx, dy), or Empty outside the matrix.
func (m Matrix) Cell(dx, dy int) int {
	if dy < 0 || dy >= len(m) || dx < 0 || dx >= len(m[dy]) {
		return Empty
	}
	return m[dy][dx]
}

// overlayValid reports whether ov is usable: non-nil with positive extent.
func overlayValid(ov Overlay) bool {
	if ov == nil {
		return false
	}
	w, h := ov.Size()
	return w > 0 && h > 0
}

// overlayMatches reports whether ov is valid and exactly board-sized,
// the precondition of the whole-board mask operations.
func (b *Board) overlayMatches(ov Overlay) bool {
	if !overlayValid(ov) {
		return false
	}
	w, h := ov.Size()
	return w == b.width && h == b.height
}
