package grid

// countMatching scans the w×h rectangle at (x, y), skipping cells outside
// the board, and returns how many in-bounds cells were examined and how many
// of those satisfy the predicate "cell is Empty" (wantEmpty) or its inverse.
func (b *Board) countMatching(x, y, w, h int, wantEmpty bool) (examined, matching int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if !b.InBounds(x+dx, y+dy) {
				continue
			}
			examined++
			empty := b.Get(x+dx, y+dy) == Empty
			if empty == wantEmpty {
				matching++
			}
		}
	}
	return examined, matching
}

// IsFull reports whether every cell on the board holds a tile.
func (b *Board) IsFull() bool {
	examined, matching := b.countMatching(0, 0, b.width, b.height, false)
	return examined > 0 && matching == examined
}

// IsEmpty reports whether every cell on the board is Empty.
func (b *Board) IsEmpty() bool {
	examined, matching := b.countMatching(0, 0, b.width, b.height, true)
	return examined > 0 && matching == examined
}

// IsFullLine reports whether every cell of the selected row or column holds
// a tile. An out-of-range index reports false.
func (b *Board) IsFullLine(axis Axis, idx int) bool {
	n := b.lineLen(axis, idx)
	if n == 0 {
		return false
	}
	for pos := 0; pos < n; pos++ {
		x, y := lineCell(axis, idx, pos)
		if b.Get(x, y) == Empty {
			return false
		}
	}
	return true
}

// IsEmptyLine reports whether every cell of the selected row or column is
// Empty. An out-of-range index reports false.
func (b *Board) IsEmptyLine(axis Axis, idx int) bool {
	n := b.lineLen(axis, idx)
	if n == 0 {
		return false
	}
	for pos := 0; pos < n; pos++ {
		x, y := lineCell(axis, idx, pos)
		if b.Get(x, y) != Empty {
			return false
		}
	}
	return true
}

// IsFullRect reports whether every in-bounds cell of the w×h rectangle at
// (x, y) holds a tile. A rectangle with no in-bounds cells reports false.
func (b *Board) IsFullRect(x, y, w, h int) bool {
	examined, matching := b.countMatching(x, y, w, h, false)
	return examined > 0 && matching == examined
}

// IsEmptyRect reports whether every in-bounds cell of the w×h rectangle at
// (x, y) is Empty. A rectangle with no in-bounds cells reports false.
func (b *Board) IsEmptyRect(x, y, w, h int) bool {
	examined, matching := b.countMatching(x, y, w, h, true)
	return examined > 0 && matching == examined
}

// underOverlay checks the board cells covered by the opaque cells of ov
// placed at (x, y). Transparent overlay cells and cells falling outside the
// board are excluded from the check. Fails closed: a nil, zero-sized, or
// fully transparent overlay, or one with no in-bounds opaque cells, reports
// false for both the full and the empty variant.
func (b *Board) underOverlay(x, y int, ov Overlay, wantEmpty bool) bool {
	if !overlayValid(ov) {
		return false
	}
	w, h := ov.Size()
	examined := 0
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if ov.Cell(dx, dy) == Empty || !b.InBounds(x+dx, y+dy) {
				continue
			}
			examined++
			if (b.Get(x+dx, y+dy) == Empty) != wantEmpty {
				return false
			}
		}
	}
	return examined > 0
}

// IsFullUnder reports whether every board cell covered by an opaque cell of
// ov at (x, y) holds a tile.
func (b *Board) IsFullUnder(x, y int, ov Overlay) bool {
	return b.underOverlay(x, y, ov, false)
}

// IsEmptyUnder reports whether every board cell covered by an opaque cell of
// ov at (x, y) is Empty. Used as the collision test for piece placement.
func (b *Board) IsEmptyUnder(x, y int, ov Overlay) bool {
	return b.underOverlay(x, y, ov, true)
}
