// Package grid provides a bounds-safe 2D tile board and the batch region
// operations (clear, fill, shift, swap, rotate, predicates) that game logic
// is built on. It contains no external dependencies to keep the engine pure
// and testable.
package grid

import (
	"errors"
	"hash/fnv"
	"strconv"
	"strings"
)

// Empty is the sentinel tile code meaning "no tile present".
// Overlay cells holding Empty are treated as transparent.
const Empty = 0

var (
	// ErrInvalidDimension is returned when a board is constructed with a
	// non-positive width or height.
	ErrInvalidDimension = errors.New("grid: board dimensions must be positive")

	// ErrInvalidSource is returned when a board is constructed from a nil
	// or zero-sized source matrix.
	ErrInvalidSource = errors.New("grid: source matrix is nil or zero-sized")
)

// Board is a rectangular tile matrix. Dimensions are fixed for the board's
// lifetime; Rotate returns a new board instead of resizing in place.
//
// Construction is the only operation that can fail. After that, out-of-range
// reads return Empty and out-of-range writes are ignored.
type Board struct {
	width  int
	height int
	cells  []int // row-major, index y*width+x
}

// New creates a board of the given dimensions with every cell set to Empty.
func New(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
	}, nil
}

// FromMatrix creates a board from a row-major value matrix. Dimensions are
// inferred from the matrix; the width is that of the longest row and short
// rows are padded with Empty.
func FromMatrix(rows [][]int) (*Board, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidSource
	}
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, ErrInvalidSource
	}

	b := &Board{
		width:  width,
		height: len(rows),
		cells:  make([]int, width*len(rows)),
	}
	for y, row := range rows {
		copy(b.cells[y*width:], row)
	}
	return b, nil
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// Get returns the tile code at (x, y).
// Returns Empty for out-of-bounds coordinates.
func (b *Board) Get(x, y int) int {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[y*b.width+x]
}

// Set places a tile code at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (b *Board) Set(x, y, v int) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = v
}

// InBounds reports whether (x, y) is a valid board coordinate.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// RectInBounds reports whether the w×h rectangle at (x, y) lies entirely on
// the board. Zero or negative extents never qualify.
func (b *Board) RectInBounds(x, y, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	return b.InBounds(x, y) && b.InBounds(x+w-1, y+h-1)
}

// OverlayInBounds reports whether every opaque cell of ov, placed with its
// origin at (x, y), lands on a valid board cell. A nil, zero-sized, or fully
// transparent overlay fails closed and reports false.
func (b *Board) OverlayInBounds(x, y int, ov Overlay) bool {
	if !overlayValid(ov) {
		return false
	}
	w, h := ov.Size()
	opaque := 0
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if ov.Cell(dx, dy) == Empty {
				continue
			}
			if !b.InBounds(x+dx, y+dy) {
				return false
			}
			opaque++
		}
	}
	return opaque > 0
}

// Equal reports whether two boards have identical dimensions and cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Hash returns a value-derived hash consistent with Equal: two value-equal
// boards always hash identically.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)
	writeInt := func(v int) {
		u := uint64(v)
		for i := range buf {
			buf[i] = byte(u >> (8 * i))
		}
		h.Write(buf)
	}
	writeInt(b.width)
	writeInt(b.height)
	for _, v := range b.cells {
		writeInt(v)
	}
	return h.Sum64()
}

// Clone returns a new, independently owned board with identical contents.
func (b *Board) Clone() *Board {
	dup := &Board{
		width:  b.width,
		height: b.height,
		cells:  make([]int, len(b.cells)),
	}
	copy(dup.cells, b.cells)
	return dup
}

// Size implements Overlay, letting a board act as a shape for region
// operations on another board.
func (b *Board) Size() (w, h int) {
	return b.width, b.height
}

// Cell implements Overlay. Equivalent to Get.
func (b *Board) Cell(dx, dy int) int {
	return b.Get(dx, dy)
}

// String returns a debug dump of the board, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			v := b.cells[y*b.width+x]
			if v == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(strconv.Itoa(v))
			}
		}
	}
	return sb.String()
}
