package grid

import "testing"

func TestSwapCells(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 2},
		{3, 4},
	})
	b.SwapCells(0, 0, 1, 1)

	want := mustBoard(t, [][]int{
		{4, 2},
		{3, 1},
	})
	if !b.Equal(want) {
		t.Errorf("SwapCells:\n%v\nwant\n%v", b, want)
	}

	// Either endpoint out of bounds: no-op.
	before := b.Clone()
	b.SwapCells(0, 0, 5, 5)
	b.SwapCells(-1, 0, 1, 1)
	if !b.Equal(before) {
		t.Error("out-of-bounds SwapCells mutated the board")
	}
}

func TestSwapLines(t *testing.T) {
	tests := []struct {
		name string
		axis Axis
		i, j int
		want [][]int
	}{
		{
			name: "rows",
			axis: AxisRow,
			i:    0,
			j:    2,
			want: [][]int{{7, 8, 9}, {4, 5, 6}, {1, 2, 3}},
		},
		{
			name: "columns",
			axis: AxisColumn,
			i:    0,
			j:    1,
			want: [][]int{{2, 1, 3}, {5, 4, 6}, {8, 7, 9}},
		},
		{
			name: "same index",
			axis: AxisRow,
			i:    1,
			j:    1,
			want: [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		},
		{
			name: "invalid first index is a no-op",
			axis: AxisRow,
			i:    -1,
			j:    1,
			want: [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		},
		{
			name: "invalid second index is a no-op",
			axis: AxisColumn,
			i:    0,
			j:    3,
			want: [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, [][]int{
				{1, 2, 3},
				{4, 5, 6},
				{7, 8, 9},
			})
			b.SwapLines(tt.axis, tt.i, tt.j)
			if want := mustBoard(t, tt.want); !b.Equal(want) {
				t.Errorf("SwapLines(%v, %d, %d):\n%v\nwant\n%v", tt.axis, tt.i, tt.j, b, want)
			}
		})
	}
}

func TestSwapRects(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 2, 2},
		{0, 0, 2, 2},
	})
	b.SwapRects(0, 0, 2, 2, 2, 2)

	want := mustBoard(t, [][]int{
		{2, 2, 0, 0},
		{2, 2, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	})
	if !b.Equal(want) {
		t.Errorf("SwapRects:\n%v\nwant\n%v", b, want)
	}
}

// TestSwapRectsRejection covers spec scenario D plus the in-bounds
// precondition: a rejected swap leaves the board completely unchanged,
// never partially swapped.
func TestSwapRectsRejection(t *testing.T) {
	newBoard := func() *Board {
		return mustBoard(t, [][]int{
			{1, 2, 3, 4},
			{5, 6, 7, 8},
			{9, 10, 11, 12},
			{13, 14, 15, 16},
		})
	}

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		w, h           int
	}{
		{name: "overlapping rects", x1: 0, y1: 0, x2: 1, y2: 1, w: 2, h: 2},
		{name: "touching is fine but identical origin overlaps", x1: 1, y1: 1, x2: 1, y2: 1, w: 2, h: 2},
		{name: "first rect out of bounds", x1: 3, y1: 3, x2: 0, y2: 0, w: 2, h: 2},
		{name: "second rect out of bounds", x1: 0, y1: 0, x2: -1, y2: 2, w: 2, h: 2},
		{name: "zero extent", x1: 0, y1: 0, x2: 2, y2: 2, w: 0, h: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBoard()
			b.SwapRects(tt.x1, tt.y1, tt.x2, tt.y2, tt.w, tt.h)
			if !b.Equal(newBoard()) {
				t.Errorf("rejected swap mutated the board:\n%v", b)
			}
		})
	}
}

func TestSwapRectsAdjacent(t *testing.T) {
	// Edge-adjacent rectangles do not geometrically intersect and must swap.
	b := mustBoard(t, [][]int{
		{1, 2},
		{3, 4},
	})
	b.SwapRects(0, 0, 1, 0, 1, 2)

	want := mustBoard(t, [][]int{
		{2, 1},
		{4, 3},
	})
	if !b.Equal(want) {
		t.Errorf("adjacent rect swap:\n%v\nwant\n%v", b, want)
	}
}
