package blocks

import (
	"math/rand"
	"testing"
	"time"

	"github.com/velikanov/gridfall/internal/grid"
)

// recordingObserver counts lifecycle events for assertions.
type recordingObserver struct {
	locked  int
	rotated int
	cleared []int
}

func (r *recordingObserver) PieceLocked()       { r.locked++ }
func (r *recordingObserver) LinesCleared(n int) { r.cleared = append(r.cleared, n) }
func (r *recordingObserver) PieceRotated()      { r.rotated++ }

// testTimings uses round numbers and a gravity interval long enough that
// cadence tests can advance time without triggering a descent.
func testTimings() Timings {
	return Timings{
		Move:       100 * time.Millisecond,
		Rotate:     200 * time.Millisecond,
		SoftDrop:   50 * time.Millisecond,
		Gravity:    10 * time.Second,
		SpawnGrace: 300 * time.Millisecond,
		SpeedUp:    25 * time.Millisecond,
		MinGravity: 80 * time.Millisecond,
	}
}

func newTestController(t *testing.T, w, h int) (*Controller, *recordingObserver) {
	t.Helper()
	obs := &recordingObserver{}
	c, err := NewController(w, h, testTimings(), rand.New(rand.NewSource(1)), obs)
	if err != nil {
		t.Fatalf("NewController(%d, %d) failed: %v", w, h, err)
	}
	return c, obs
}

func TestNewControllerInvalidDimensions(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 20},
		{"zero height", 10, 0},
		{"negative width", -3, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewController(tc.w, tc.h, testTimings(), nil, nil); err == nil {
				t.Errorf("NewController(%d, %d) should fail", tc.w, tc.h)
			}
		})
	}
}

func TestNewControllerFromMatrix(t *testing.T) {
	rows := [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{5, 5, 0, 5},
	}
	c, err := NewControllerFromMatrix(rows, testTimings(), rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatalf("NewControllerFromMatrix failed: %v", err)
	}
	if w, h := c.Board().Width(), c.Board().Height(); w != 4 || h != 3 {
		t.Errorf("board dims = %dx%d, want 4x3", w, h)
	}
	if got := c.Board().Get(0, 2); got != 5 {
		t.Errorf("board (0,2) = %d, want 5", got)
	}

	if _, err := NewControllerFromMatrix(nil, testTimings(), nil, nil); err == nil {
		t.Error("nil source matrix should fail")
	}
}

func TestNewControllerSpawnsCentered(t *testing.T) {
	c, _ := newTestController(t, 10, 20)

	x, y := c.Cursor()
	if y != 0 {
		t.Errorf("spawn y = %d, want 0", y)
	}
	w, _ := c.ActivePiece().Size()
	if want := (10 - w) / 2; x != want {
		t.Errorf("spawn x = %d, want %d", x, want)
	}
	if c.Score() != 0 || c.GameOver() {
		t.Errorf("fresh controller: score=%d gameOver=%v", c.Score(), c.GameOver())
	}
	if c.NextPiece() == nil {
		t.Error("next piece should be queued at construction")
	}
}

func TestPressMovesImmediately(t *testing.T) {
	c, _ := newTestController(t, 10, 20)
	x, _ := c.Cursor()

	c.PressLeft()
	if nx, _ := c.Cursor(); nx != x-1 {
		t.Errorf("after PressLeft cursor x = %d, want %d", nx, x-1)
	}
	c.ReleaseLeft()

	c.PressRight()
	if nx, _ := c.Cursor(); nx != x {
		t.Errorf("after PressRight cursor x = %d, want %d", nx, x)
	}
}

func TestHeldMoveRepeatsOnCadence(t *testing.T) {
	c, _ := newTestController(t, 10, 20)
	c.active = NewPiece(TileO)
	c.cursorX = 5

	c.leftHeld = true

	c.Update(50 * time.Millisecond)
	if x, _ := c.Cursor(); x != 5 {
		t.Errorf("before cadence elapses cursor x = %d, want 5", x)
	}
	c.Update(50 * time.Millisecond)
	if x, _ := c.Cursor(); x != 4 {
		t.Errorf("after cadence elapses cursor x = %d, want 4", x)
	}
	c.Update(100 * time.Millisecond)
	if x, _ := c.Cursor(); x != 3 {
		t.Errorf("second repeat cursor x = %d, want 3", x)
	}
}

func TestMoveStopsAtWall(t *testing.T) {
	c, _ := newTestController(t, 6, 20)
	c.active = NewPiece(TileO)
	c.cursorX = 1

	c.PressLeft()
	c.PressLeft()
	c.PressLeft()
	if x, _ := c.Cursor(); x != 0 {
		t.Errorf("cursor x = %d, want 0 (pinned at wall)", x)
	}
}

func TestLeftWinsWhenBothHeld(t *testing.T) {
	c, _ := newTestController(t, 10, 20)
	c.active = NewPiece(TileO)
	c.cursorX = 4
	c.leftHeld = true
	c.rightHeld = true

	c.Update(100 * time.Millisecond)
	if x, _ := c.Cursor(); x != 3 {
		t.Errorf("both held: cursor x = %d, want 3 (left wins)", x)
	}
}

func TestRotateFiresOnFirstUpdate(t *testing.T) {
	c, obs := newTestController(t, 10, 20)
	c.active = NewPiece(TileT)
	c.cursorX = 4
	c.cursorY = 5

	c.PressRotate()
	c.Update(time.Millisecond)

	if obs.rotated != 1 {
		t.Fatalf("rotated events = %d, want 1", obs.rotated)
	}
	w, h := c.ActivePiece().Size()
	if w != 2 || h != 3 {
		t.Errorf("rotated T size = %dx%d, want 2x3", w, h)
	}
}

func TestRotateRepeatsWhileHeld(t *testing.T) {
	c, obs := newTestController(t, 10, 20)
	c.active = NewPiece(TileT)
	c.cursorX = 4
	c.cursorY = 5

	c.PressRotate()
	c.Update(time.Millisecond)       // primed: first rotation
	c.Update(100 * time.Millisecond) // mid-cadence
	if obs.rotated != 1 {
		t.Fatalf("rotated events = %d, want 1 before cadence elapses", obs.rotated)
	}
	c.Update(100 * time.Millisecond)
	if obs.rotated != 2 {
		t.Errorf("rotated events = %d, want 2 after cadence elapses", obs.rotated)
	}
}

func TestRotateRejectedWithoutRoom(t *testing.T) {
	c, obs := newTestController(t, 10, 20)
	// Horizontal I on the bottom row: the 4-tall rotation cannot fit.
	c.active = NewPiece(TileI)
	c.cursorX = 3
	c.cursorY = 19

	c.PressRotate()
	c.Update(time.Millisecond)

	if obs.rotated != 0 {
		t.Fatalf("rotated events = %d, want 0", obs.rotated)
	}
	w, h := c.ActivePiece().Size()
	if w != 4 || h != 1 {
		t.Errorf("piece size = %dx%d, want 4x1 (rotation rejected)", w, h)
	}
}

func TestRotateRejectedOverTiles(t *testing.T) {
	c, obs := newTestController(t, 10, 20)
	c.active = NewPiece(TileI)
	c.cursorX = 3
	c.cursorY = 5
	// Rotated I would occupy (3,5)..(3,8); block one of those cells.
	c.board.Set(3, 7, TileO)

	c.PressRotate()
	c.Update(time.Millisecond)

	if obs.rotated != 0 {
		t.Errorf("rotated events = %d, want 0 (cell occupied)", obs.rotated)
	}
}

func TestGravityDescends(t *testing.T) {
	c, _ := newTestController(t, 10, 20)
	_, y := c.Cursor()

	if stepped := c.Update(5 * time.Second); stepped {
		t.Error("Update before gravity interval should not report a step")
	}
	if stepped := c.Update(5 * time.Second); !stepped {
		t.Error("Update at gravity interval should report a step")
	}
	if _, ny := c.Cursor(); ny != y+1 {
		t.Errorf("cursor y = %d, want %d", ny, y+1)
	}
}

func TestSoftDropWaitsForGrace(t *testing.T) {
	c, _ := newTestController(t, 10, 20)
	c.active = NewPiece(TileO)
	_, y := c.Cursor()

	c.PressDrop()
	c.Update(100 * time.Millisecond)
	c.Update(100 * time.Millisecond)
	if _, ny := c.Cursor(); ny != y {
		t.Fatalf("cursor y = %d during grace, want %d", ny, y)
	}

	// Grace (300ms) expires at the third update, whose 100ms already
	// exceeds the 50ms drop cadence.
	c.Update(100 * time.Millisecond)
	if _, ny := c.Cursor(); ny != y+1 {
		t.Fatalf("cursor y = %d after grace, want %d", ny, y+1)
	}
	c.Update(50 * time.Millisecond)
	if _, ny := c.Cursor(); ny != y+2 {
		t.Errorf("cursor y = %d, want %d (drop cadence)", ny, y+2)
	}
}

func TestLockPromotesQueue(t *testing.T) {
	c, obs := newTestController(t, 10, 20)
	c.active = NewPiece(TileO)
	c.cursorX = 0
	c.cursorY = 18 // O is 2 tall: flush against the floor
	queued := c.next

	if stepped := c.Update(10 * time.Second); !stepped {
		t.Fatal("gravity tick should report a step")
	}

	if obs.locked != 1 {
		t.Fatalf("locked events = %d, want 1", obs.locked)
	}
	if c.board.Get(0, 18) != TileO || c.board.Get(1, 19) != TileO {
		t.Error("locked piece not stamped onto the board")
	}
	if c.active != queued {
		t.Error("queued piece should become active after lock")
	}
	if _, y := c.Cursor(); y != 0 {
		t.Errorf("cursor y = %d after respawn, want 0", y)
	}
	if c.NextPiece() == nil {
		t.Error("a new piece should be queued after lock")
	}
}

func TestLineClearScoresQuadratically(t *testing.T) {
	c, obs := newTestController(t, 4, 10)
	// Bottom two rows full except the two leftmost columns; the O piece
	// drops into the notch and completes both.
	for y := 8; y <= 9; y++ {
		for x := 2; x < 4; x++ {
			c.board.Set(x, y, TileI)
		}
	}
	c.active = NewPiece(TileO)
	c.cursorX = 0
	c.cursorY = 8

	c.Update(10 * time.Second)

	if len(obs.cleared) != 1 || obs.cleared[0] != 2 {
		t.Fatalf("cleared events = %v, want [2]", obs.cleared)
	}
	if c.Score() != 400 {
		t.Errorf("score = %d, want 400 (2 lines squared x 100)", c.Score())
	}
	if !c.board.IsEmpty() {
		t.Errorf("board should be empty after the clear:\n%s", c.board)
	}
	want := testTimings().Gravity - 2*testTimings().SpeedUp
	if c.GravityInterval() != want {
		t.Errorf("gravity interval = %v, want %v", c.GravityInterval(), want)
	}
}

func TestStackedRowsSlideDownOnClear(t *testing.T) {
	c, _ := newTestController(t, 4, 10)
	// A full row at the bottom with a lone survivor above it.
	for x := 0; x < 4; x++ {
		c.board.Set(x, 9, TileI)
	}
	c.board.Set(0, 8, TileT)
	// Park the active piece where its lock touches nothing else.
	c.active = NewPiece(TileO)
	c.cursorX = 2
	c.cursorY = 6

	// Descend until it rests on the survivor's row, then lock.
	for !c.GameOver() && c.board.Get(2, 7) == grid.Empty {
		c.Update(10 * time.Second)
	}

	if c.board.Get(0, 9) != TileT {
		t.Errorf("survivor tile should slide to the bottom row:\n%s", c.board)
	}
	if got := c.Score(); got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
}

func TestGravityIntervalClampsAtFloor(t *testing.T) {
	c, _ := newTestController(t, 4, 10)
	c.gravityEvery = c.timings.MinGravity + 10*time.Millisecond

	for x := 0; x < 2; x++ {
		c.board.Set(x, 9, TileI)
	}
	c.active = NewPiece(TileO)
	c.cursorX = 2
	c.cursorY = 8

	c.Update(c.gravityEvery) // lock, completing row 9

	if c.GravityInterval() != c.timings.MinGravity {
		t.Errorf("gravity interval = %v, want floor %v", c.GravityInterval(), c.timings.MinGravity)
	}
}

func TestGameOverWhenTopRowBlocked(t *testing.T) {
	c, _ := newTestController(t, 10, 20)
	c.board.Set(0, 0, TileZ)

	if stepped := c.Update(10 * time.Second); !stepped {
		t.Fatal("the game-over transition is a gravity step")
	}
	if !c.GameOver() {
		t.Fatal("controller should be game over with the top row blocked")
	}
}

func TestGameOverFreezesEverything(t *testing.T) {
	c, _ := newTestController(t, 10, 20)
	c.board.Set(0, 0, TileZ)
	c.Update(10 * time.Second)
	if !c.GameOver() {
		t.Fatal("setup should end the game")
	}

	x, y := c.Cursor()
	score := c.Score()
	snapshot := c.board.Clone()

	c.PressLeft()
	c.PressRotate()
	c.PressDrop()
	if stepped := c.Update(time.Minute); stepped {
		t.Error("Update after game over should not report steps")
	}

	if nx, ny := c.Cursor(); nx != x || ny != y {
		t.Errorf("cursor moved after game over: (%d,%d) -> (%d,%d)", x, y, nx, ny)
	}
	if c.Score() != score {
		t.Errorf("score changed after game over: %d -> %d", score, c.Score())
	}
	if !c.board.Equal(snapshot) {
		t.Error("board changed after game over")
	}
}

func TestReleaseStopsRepeats(t *testing.T) {
	c, _ := newTestController(t, 10, 20)
	c.active = NewPiece(TileO)
	c.cursorX = 5

	c.leftHeld = true
	c.Update(100 * time.Millisecond)
	c.ReleaseLeft()
	c.Update(time.Second)

	if x, _ := c.Cursor(); x != 4 {
		t.Errorf("cursor x = %d, want 4 (no repeats after release)", x)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() []int {
		c, err := NewController(10, 20, testTimings(), rand.New(rand.NewSource(7)), nil)
		if err != nil {
			t.Fatal(err)
		}
		var dims []int
		for i := 0; i < 5; i++ {
			w, h := c.ActivePiece().Size()
			dims = append(dims, w, h)
			c.active = c.next
			c.next = RandomPiece(c.rng)
		}
		return dims
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different pieces: %v vs %v", a, b)
		}
	}
}
