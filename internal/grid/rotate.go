package grid

// Rotation selects the direction of a quarter-turn board rotation.
type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// String returns a human-readable name for the rotation direction.
func (r Rotation) String() string {
	switch r {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}

// Rotate returns a new board turned a quarter-turn in the given direction.
// The new board has swapped dimensions; the receiver is left untouched.
// Four rotations in the same direction reproduce the original board.
func (b *Board) Rotate(dir Rotation) *Board {
	rotated := &Board{
		width:  b.height,
		height: b.width,
		cells:  make([]int, len(b.cells)),
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			v := b.cells[y*b.width+x]
			if dir == Clockwise {
				rotated.Set(b.height-1-y, x, v)
			} else {
				rotated.Set(y, b.width-1-x, v)
			}
		}
	}
	return rotated
}
