package blocks

// Observer receives gameplay event notifications from a Controller. The
// controller fires them but never acts on them; the host wires in whatever
// feedback it wants (sound, animation, stats). One method per event keeps
// implementations free to ignore what they don't care about.
type Observer interface {
	// PieceLocked fires when the falling piece is stamped onto the board.
	PieceLocked()

	// LinesCleared fires after a lock that completed n full rows.
	LinesCleared(n int)

	// PieceRotated fires when a rotation is accepted.
	PieceRotated()
}

// NopObserver is an Observer that ignores every event.
type NopObserver struct{}

func (NopObserver) PieceLocked()     {}
func (NopObserver) LinesCleared(int) {}
func (NopObserver) PieceRotated()    {}
