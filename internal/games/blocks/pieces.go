package blocks

import (
	"math/rand"

	"github.com/velikanov/gridfall/internal/grid"
)

// Tile codes for the seven tetrominoes. Each shape is flood-filled with its
// own code so locked cells keep their identity (and color) on the board.
const (
	TileI = iota + 1
	TileJ
	TileL
	TileO
	TileS
	TileZ
	TileT

	PieceCount = 7
)

// pieceShapes holds the canonical spawn orientation of each tetromino,
// trimmed to its bounding box. Rotations are derived at runtime.
var pieceShapes = [PieceCount]grid.Matrix{
	{ // I
		{TileI, TileI, TileI, TileI},
	},
	{ // J
		{TileJ, 0, 0},
		{TileJ, TileJ, TileJ},
	},
	{ // L
		{0, 0, TileL},
		{TileL, TileL, TileL},
	},
	{ // O
		{TileO, TileO},
		{TileO, TileO},
	},
	{ // S
		{0, TileS, TileS},
		{TileS, TileS, 0},
	},
	{ // Z
		{TileZ, TileZ, 0},
		{0, TileZ, TileZ},
	},
	{ // T
		{0, TileT, 0},
		{TileT, TileT, TileT},
	},
}

// NewPiece returns a fresh board holding the canonical shape for the given
// tile code (TileI..TileT). Unknown codes fall back to the I piece.
func NewPiece(code int) *grid.Board {
	idx := code - 1
	if idx < 0 || idx >= PieceCount {
		idx = 0
	}
	// The catalogue shapes are static and well-formed, so FromMatrix
	// cannot fail here.
	p, _ := grid.FromMatrix(pieceShapes[idx])
	return p
}

// RandomPiece draws a piece uniformly from the catalogue.
func RandomPiece(rng *rand.Rand) *grid.Board {
	return NewPiece(1 + rng.Intn(PieceCount))
}
