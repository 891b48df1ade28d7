package grid

// shiftLine compacts one line of the board in place: all non-Empty values
// slide toward the far end (toFarEnd=true) or the near end (toFarEnd=false)
// of the line, keeping their relative order, and vacated cells become Empty.
// The line is addressed through lineCell so the same code serves rows and
// columns.
func (b *Board) shiftLine(axis Axis, idx int, toFarEnd bool) {
	n := b.lineLen(axis, idx)
	if n == 0 {
		return
	}

	kept := make([]int, 0, n)
	for pos := 0; pos < n; pos++ {
		x, y := lineCell(axis, idx, pos)
		if v := b.Get(x, y); v != Empty {
			kept = append(kept, v)
		}
	}

	start := 0
	if toFarEnd {
		start = n - len(kept)
	}
	for pos := 0; pos < n; pos++ {
		x, y := lineCell(axis, idx, pos)
		if pos >= start && pos < start+len(kept) {
			b.Set(x, y, kept[pos-start])
		} else {
			b.Set(x, y, Empty)
		}
	}
}

// ShiftDown slides the non-Empty cells of every column toward the bottom
// edge, preserving their top-to-bottom order. The classic gravity compaction.
func (b *Board) ShiftDown() {
	for x := 0; x < b.width; x++ {
		b.shiftLine(AxisColumn, x, true)
	}
}

// ShiftUp slides the non-Empty cells of every column toward the top edge,
// preserving their top-to-bottom order.
func (b *Board) ShiftUp() {
	for x := 0; x < b.width; x++ {
		b.shiftLine(AxisColumn, x, false)
	}
}

// ShiftLeft slides the non-Empty cells of every row toward the left edge,
// preserving their left-to-right order.
func (b *Board) ShiftLeft() {
	for y := 0; y < b.height; y++ {
		b.shiftLine(AxisRow, y, false)
	}
}

// ShiftRight slides the non-Empty cells of every row toward the right edge,
// preserving their left-to-right order.
func (b *Board) ShiftRight() {
	for y := 0; y < b.height; y++ {
		b.shiftLine(AxisRow, y, true)
	}
}
