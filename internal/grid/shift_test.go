package grid

import "testing"

// TestShiftDown covers spec scenario B: non-Empty cells slide toward the
// bottom of each column, keeping their top-to-bottom order.
func TestShiftDown(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 2, 3},
		{4, 0, 5},
		{6, 7, 8},
	})
	b.ShiftDown()

	want := mustBoard(t, [][]int{
		{1, 0, 3},
		{4, 2, 5},
		{6, 7, 8},
	})
	if !b.Equal(want) {
		t.Errorf("ShiftDown:\n%v\nwant\n%v", b, want)
	}
}

func TestShiftUp(t *testing.T) {
	b := mustBoard(t, [][]int{
		{0, 2, 0},
		{4, 0, 0},
		{0, 7, 8},
	})
	b.ShiftUp()

	want := mustBoard(t, [][]int{
		{4, 2, 8},
		{0, 7, 0},
		{0, 0, 0},
	})
	if !b.Equal(want) {
		t.Errorf("ShiftUp:\n%v\nwant\n%v", b, want)
	}
}

func TestShiftLeft(t *testing.T) {
	b := mustBoard(t, [][]int{
		{0, 1, 0, 2},
		{3, 0, 0, 0},
		{0, 0, 0, 0},
	})
	b.ShiftLeft()

	want := mustBoard(t, [][]int{
		{1, 2, 0, 0},
		{3, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if !b.Equal(want) {
		t.Errorf("ShiftLeft:\n%v\nwant\n%v", b, want)
	}
}

func TestShiftRight(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 0, 2, 0},
		{0, 3, 0, 4},
	})
	b.ShiftRight()

	want := mustBoard(t, [][]int{
		{0, 0, 1, 2},
		{0, 0, 3, 4},
	})
	if !b.Equal(want) {
		t.Errorf("ShiftRight:\n%v\nwant\n%v", b, want)
	}
}

// TestShiftStability verifies the required property directly: per line, the
// multiset and relative order of non-Empty values is preserved.
func TestShiftStability(t *testing.T) {
	b := mustBoard(t, [][]int{
		{5, 0, 1},
		{0, 0, 1},
		{5, 0, 2},
		{0, 9, 2},
	})

	// Column 0 holds [5, 5] top-to-bottom, column 2 holds [1, 1, 2, 2].
	b.ShiftDown()

	col := func(x int) []int {
		var vals []int
		for y := 0; y < b.Height(); y++ {
			if v := b.Get(x, y); v != Empty {
				vals = append(vals, v)
			}
		}
		return vals
	}

	wantCols := map[int][]int{
		0: {5, 5},
		1: {9},
		2: {1, 1, 2, 2},
	}
	for x, want := range wantCols {
		got := col(x)
		if len(got) != len(want) {
			t.Fatalf("column %d: got %v, want %v", x, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("column %d: got %v, want %v (order not preserved)", x, got, want)
				break
			}
		}
	}
}

func TestShiftIdempotent(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 0, 3},
		{0, 2, 0},
		{4, 0, 5},
	})
	b.ShiftDown()
	once := b.Clone()
	b.ShiftDown()
	if !b.Equal(once) {
		t.Error("a second ShiftDown on a settled board should change nothing")
	}
}

func TestShiftEmptyAndFullBoards(t *testing.T) {
	empty, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	empty.ShiftDown()
	if !empty.IsEmpty() {
		t.Error("shifting an empty board should keep it empty")
	}

	full, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	full.Fill(2)
	before := full.Clone()
	full.ShiftLeft()
	if !full.Equal(before) {
		t.Error("shifting a full board should change nothing")
	}
}
