package grid

// SwapCells exchanges the values of two cells. If either coordinate is out
// of bounds the board is left unchanged.
func (b *Board) SwapCells(x1, y1, x2, y2 int) {
	if !b.InBounds(x1, y1) || !b.InBounds(x2, y2) {
		return
	}
	i := y1*b.width + x1
	j := y2*b.width + x2
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// SwapLines exchanges two whole rows or two whole columns.
// An invalid index on either side is a no-op.
func (b *Board) SwapLines(axis Axis, i, j int) {
	n := b.lineLen(axis, i)
	if n == 0 || b.lineLen(axis, j) == 0 {
		return
	}
	if i == j {
		return
	}
	for pos := 0; pos < n; pos++ {
		x1, y1 := lineCell(axis, i, pos)
		x2, y2 := lineCell(axis, j, pos)
		b.SwapCells(x1, y1, x2, y2)
	}
}

// rectsOverlap reports whether two w×h rectangles placed at their board
// positions geometrically intersect.
func rectsOverlap(x1, y1, x2, y2, w, h int) bool {
	if x1 >= x2+w || x2 >= x1+w {
		return false
	}
	if y1 >= y2+h || y2 >= y1+h {
		return false
	}
	return true
}

// SwapRects exchanges the contents of two equal-size w×h rectangles at
// (x1, y1) and (x2, y2). Both rectangles must lie fully on the board and
// must not overlap; violating either precondition leaves the board
// completely unchanged, never partially swapped.
func (b *Board) SwapRects(x1, y1, x2, y2, w, h int) {
	if !b.RectInBounds(x1, y1, w, h) || !b.RectInBounds(x2, y2, w, h) {
		return
	}
	if rectsOverlap(x1, y1, x2, y2, w, h) {
		return
	}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			b.SwapCells(x1+dx, y1+dy, x2+dx, y2+dy)
		}
	}
}
