package blocks

import (
	"math/rand"
	"time"

	"github.com/velikanov/gridfall/internal/grid"
)

// Timings groups the cadence intervals driving the controller. Each held
// input repeats on its own independent interval; gravity runs regardless of
// input and speeds up as lines are cleared.
type Timings struct {
	Move       time.Duration // horizontal move repeat while held
	Rotate     time.Duration // rotation repeat while held
	SoftDrop   time.Duration // accelerated fall repeat while held
	Gravity    time.Duration // initial gravity interval
	SpawnGrace time.Duration // soft-drop dead time after a spawn
	SpeedUp    time.Duration // gravity shortening per cleared line
	MinGravity time.Duration // floor the gravity interval never drops below
}

// DefaultTimings returns the standard cadence set.
func DefaultTimings() Timings {
	return Timings{
		Move:       110 * time.Millisecond,
		Rotate:     250 * time.Millisecond,
		SoftDrop:   50 * time.Millisecond,
		Gravity:    700 * time.Millisecond,
		SpawnGrace: 300 * time.Millisecond,
		SpeedUp:    25 * time.Millisecond,
		MinGravity: 80 * time.Millisecond,
	}
}

// Controller is the falling-piece state machine. It owns a board, the active
// and queued pieces, the input-held flags, and the cadence accumulators, and
// advances only when the host calls Update with elapsed time. There is no
// internal clock, and all access must come from a single goroutine.
//
// Once the game-over flag is set the controller is terminal: Update keeps
// accepting calls but mutates nothing, and press events are ignored.
type Controller struct {
	board  *grid.Board
	active *grid.Board
	next   *grid.Board

	cursorX int
	cursorY int

	score    int
	gameOver bool

	leftHeld   bool
	rightHeld  bool
	rotateHeld bool
	dropHeld   bool

	moveElapsed    time.Duration
	rotateElapsed  time.Duration
	dropElapsed    time.Duration
	gravityElapsed time.Duration
	sinceSpawn     time.Duration

	gravityEvery time.Duration

	timings  Timings
	rng      *rand.Rand
	observer Observer
}

// NewController creates a controller with an empty width×height board and
// the first two pieces drawn. A nil rng seeds from the current time; a nil
// observer discards all events. Fails only on invalid board dimensions.
func NewController(width, height int, timings Timings, rng *rand.Rand, obs Observer) (*Controller, error) {
	board, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	return newController(board, timings, rng, obs), nil
}

// NewControllerFromMatrix creates a controller whose board starts with the
// given contents, for resuming or staging a position. Fails only on a nil or
// zero-sized source matrix.
func NewControllerFromMatrix(rows [][]int, timings Timings, rng *rand.Rand, obs Observer) (*Controller, error) {
	board, err := grid.FromMatrix(rows)
	if err != nil {
		return nil, err
	}
	return newController(board, timings, rng, obs), nil
}

func newController(board *grid.Board, timings Timings, rng *rand.Rand, obs Observer) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if obs == nil {
		obs = NopObserver{}
	}

	c := &Controller{
		board:        board,
		timings:      timings,
		gravityEvery: timings.Gravity,
		rng:          rng,
		observer:     obs,
	}
	c.active = RandomPiece(rng)
	c.next = RandomPiece(rng)
	c.spawn()
	return c
}

// Board returns the controller's board. Callers must treat it as read-only;
// all gameplay mutation goes through Update and the press/release events.
func (c *Controller) Board() *grid.Board {
	return c.board
}

// ActivePiece returns the falling piece's shape.
func (c *Controller) ActivePiece() grid.Overlay {
	return c.active
}

// NextPiece returns the queued piece's shape.
func (c *Controller) NextPiece() grid.Overlay {
	return c.next
}

// Cursor returns the board coordinate of the active piece's top-left corner.
func (c *Controller) Cursor() (x, y int) {
	return c.cursorX, c.cursorY
}

// Score returns the accumulated score.
func (c *Controller) Score() int {
	return c.score
}

// GameOver reports whether the controller has reached its terminal state.
func (c *Controller) GameOver() bool {
	return c.gameOver
}

// GravityInterval returns the current gravity cadence (it shortens as lines
// are cleared). Exposed for HUD display.
func (c *Controller) GravityInterval() time.Duration {
	return c.gravityEvery
}

// PressLeft marks left as held and immediately attempts one move; the move
// cadence then repeats it while held.
func (c *Controller) PressLeft() {
	if c.gameOver {
		return
	}
	c.leftHeld = true
	c.tryMove(-1)
}

// PressRight marks right as held and immediately attempts one move.
func (c *Controller) PressRight() {
	if c.gameOver {
		return
	}
	c.rightHeld = true
	c.tryMove(1)
}

// PressRotate marks rotate as held and primes its accumulator so the first
// rotation fires on the next Update.
func (c *Controller) PressRotate() {
	if c.gameOver {
		return
	}
	c.rotateHeld = true
	c.rotateElapsed = c.timings.Rotate
}

// PressDrop marks soft-drop as held. It takes effect once the post-spawn
// grace period has elapsed.
func (c *Controller) PressDrop() {
	if c.gameOver {
		return
	}
	c.dropHeld = true
}

// ReleaseLeft clears the left-held flag.
func (c *Controller) ReleaseLeft() {
	c.leftHeld = false
}

// ReleaseRight clears the right-held flag.
func (c *Controller) ReleaseRight() {
	c.rightHeld = false
}

// ReleaseRotate clears the rotate-held flag and its accumulator.
func (c *Controller) ReleaseRotate() {
	c.rotateHeld = false
	c.rotateElapsed = 0
}

// ReleaseDrop clears the soft-drop flag.
func (c *Controller) ReleaseDrop() {
	c.dropHeld = false
}

// Update advances the state machine by the elapsed time supplied by the
// host. Returns whether a gravity step (descent, lock, or game over)
// occurred on this call.
func (c *Controller) Update(elapsed time.Duration) bool {
	if c.gameOver {
		return false
	}

	c.sinceSpawn += elapsed

	// Held horizontal movement repeats on its own cadence, independent of
	// the other timers.
	if c.leftHeld || c.rightHeld {
		c.moveElapsed += elapsed
		if c.moveElapsed >= c.timings.Move {
			c.moveElapsed = 0
			if c.leftHeld {
				c.tryMove(-1)
			} else {
				c.tryMove(1)
			}
		}
	}

	if c.rotateHeld {
		c.rotateElapsed += elapsed
		if c.rotateElapsed >= c.timings.Rotate {
			c.rotateElapsed = 0
			c.tryRotate()
		}
	}

	// Soft drop is gated by the spawn grace period so a held key does not
	// slam a freshly spawned piece.
	if c.dropHeld && c.sinceSpawn >= c.timings.SpawnGrace {
		c.dropElapsed += elapsed
		if c.dropElapsed >= c.timings.SoftDrop {
			c.dropElapsed = 0
			if c.canPlace(c.cursorX, c.cursorY+1) {
				c.cursorY++
			}
		}
	}

	c.gravityElapsed += elapsed
	if c.gravityElapsed < c.gravityEvery {
		return false
	}
	c.gravityElapsed = 0

	switch {
	case !c.board.IsEmptyLine(grid.AxisRow, 0):
		c.gameOver = true
	case c.canPlace(c.cursorX, c.cursorY+1):
		c.cursorY++
	default:
		c.lock()
	}
	return true
}

// canPlace reports whether the active piece fits at (x, y): every opaque
// cell in bounds and over an empty board cell.
func (c *Controller) canPlace(x, y int) bool {
	return c.board.OverlayInBounds(x, y, c.active) &&
		c.board.IsEmptyUnder(x, y, c.active)
}

// tryMove attempts one cell of horizontal motion.
func (c *Controller) tryMove(dx int) {
	if c.canPlace(c.cursorX+dx, c.cursorY) {
		c.cursorX += dx
	}
}

// tryRotate replaces the active piece with its clockwise rotation if the
// rotated shape fits at the current cursor. No wall kicks: a rotation that
// doesn't fit is rejected outright.
func (c *Controller) tryRotate() {
	rotated := c.active.Rotate(grid.Clockwise)
	if !c.board.OverlayInBounds(c.cursorX, c.cursorY, rotated) {
		return
	}
	if !c.board.IsEmptyUnder(c.cursorX, c.cursorY, rotated) {
		return
	}
	c.active = rotated
	c.observer.PieceRotated()
}

// spawn resets the cursor to the spawn position for the active piece and
// restarts the grace timer.
func (c *Controller) spawn() {
	w, _ := c.active.Size()
	c.cursorX = (c.board.Width() - w) / 2
	c.cursorY = 0
	c.sinceSpawn = 0
	c.dropElapsed = 0
}

// lock stamps the active piece onto the board, promotes the queue, and
// clears any completed rows.
func (c *Controller) lock() {
	c.board.FillOverlay(c.cursorX, c.cursorY, c.active)
	c.observer.PieceLocked()

	c.active = c.next
	c.next = RandomPiece(c.rng)
	c.spawn()

	cleared := 0
	for y := 0; y < c.board.Height(); {
		if c.board.IsFullLine(grid.AxisRow, y) {
			c.board.RemoveRow(y)
			cleared++
			// The rows above slid down; re-examine the same index.
			continue
		}
		y++
	}
	if cleared == 0 {
		return
	}

	c.observer.LinesCleared(cleared)
	c.score += cleared * cleared * 100

	c.gravityEvery -= time.Duration(cleared) * c.timings.SpeedUp
	if c.gravityEvery < c.timings.MinGravity {
		c.gravityEvery = c.timings.MinGravity
	}
}
