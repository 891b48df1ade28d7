// Package blocks implements the falling-blocks game: a piece-driven state
// machine (Controller) over the grid engine, plus the platform adapter that
// feeds it input edges and ticks.
package blocks

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/velikanov/gridfall/internal/config"
	"github.com/velikanov/gridfall/internal/core"
	"github.com/velikanov/gridfall/internal/grid"
	"github.com/velikanov/gridfall/internal/registry"
)

// direction indexes the four held inputs for edge synthesis.
type direction int

const (
	dirLeft direction = iota
	dirRight
	dirRotate
	dirDrop
	dirCount
)

var directionActions = [dirCount]core.Action{
	dirLeft:   core.ActionLeft,
	dirRight:  core.ActionRight,
	dirRotate: core.ActionRotate,
	dirDrop:   core.ActionSoftDrop,
}

// Game adapts the Controller to the platform's tick-driven Game interface.
// Terminals report key presses but never releases, so the adapter
// synthesizes the controller's press/release edges: a direction seen in an
// input frame is pressed and kept held for a short window that key
// autorepeat keeps refreshing; when the repeats stop, the release fires.
type Game struct {
	ctrl         *Controller
	cfg          config.BlocksConfig
	tickInterval time.Duration

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool

	held    [dirCount]bool
	holdTTL [dirCount]int
	window  int // hold window in ticks

	// Observer feedback surfaced in the HUD.
	flashTicks int
	lastClear  int
}

// New creates a new falling-blocks game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blocks"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.flashTicks = 0
	g.lastClear = 0
	g.held = [dirCount]bool{}
	g.holdTTL = [dirCount]int{}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickInterval = time.Second / time.Duration(tickRate)
	// ~200ms hold window, enough to bridge terminal key autorepeat gaps.
	g.window = tickRate / 5

	bc, err := config.LoadBlocks(cfg.ConfigPath)
	if err != nil {
		bc = config.DefaultBlocksConfig()
	}
	config.ApplyBlocksPreset(&bc, config.DifficultyPreset(cfg.Difficulty))
	g.cfg = bc

	rng := rand.New(rand.NewSource(cfg.Seed))
	ctrl, err := NewController(bc.Board.Width, bc.Board.Height, timingsFrom(bc.Timing), rng, g)
	if err != nil {
		// Malformed board dimensions in a user config: fall back to the
		// defaults rather than dying mid-session.
		bc = config.DefaultBlocksConfig()
		ctrl, _ = NewController(bc.Board.Width, bc.Board.Height, timingsFrom(bc.Timing), rng, g)
	}
	g.ctrl = ctrl

	g.checkScreenSize()
}

// timingsFrom converts the YAML millisecond values into controller timings.
func timingsFrom(t config.BlocksTiming) Timings {
	ms := func(v, fallback int) time.Duration {
		if v <= 0 {
			v = fallback
		}
		return time.Duration(v) * time.Millisecond
	}
	d := config.DefaultBlocksConfig().Timing
	return Timings{
		Move:       ms(t.MoveMS, d.MoveMS),
		Rotate:     ms(t.RotateMS, d.RotateMS),
		SoftDrop:   ms(t.SoftDropMS, d.SoftDropMS),
		Gravity:    ms(t.GravityMS, d.GravityMS),
		SpawnGrace: ms(t.SpawnGraceMS, d.SpawnGraceMS),
		SpeedUp:    ms(t.SpeedUpMS, d.SpeedUpMS),
		MinGravity: ms(t.MinGravityMS, d.MinGravityMS),
	}
}

// checkScreenSize checks if the screen is large enough for the board,
// border, and sidebar.
func (g *Game) checkScreenSize() {
	minW := g.ctrl.Board().Width()*2 + 2 + 14 // board + border + sidebar
	minH := g.ctrl.Board().Height() + 4       // board + border + HUD
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.ctrl.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)

	if g.flashTicks > 0 {
		g.flashTicks--
	}

	g.ctrl.Update(g.tickInterval)
	return core.StepResult{State: g.State()}
}

// applyInput converts per-frame action repeats into press/release edges.
func (g *Game) applyInput(in core.InputFrame) {
	for d := direction(0); d < dirCount; d++ {
		if in.Has(directionActions[d]) {
			if !g.held[d] {
				g.held[d] = true
				g.press(d)
			}
			g.holdTTL[d] = g.window
			continue
		}
		if g.held[d] {
			g.holdTTL[d]--
			if g.holdTTL[d] <= 0 {
				g.held[d] = false
				g.release(d)
			}
		}
	}
}

func (g *Game) press(d direction) {
	switch d {
	case dirLeft:
		g.ctrl.PressLeft()
	case dirRight:
		g.ctrl.PressRight()
	case dirRotate:
		g.ctrl.PressRotate()
	case dirDrop:
		g.ctrl.PressDrop()
	}
}

func (g *Game) release(d direction) {
	switch d {
	case dirLeft:
		g.ctrl.ReleaseLeft()
	case dirRight:
		g.ctrl.ReleaseRight()
	case dirRotate:
		g.ctrl.ReleaseRotate()
	case dirDrop:
		g.ctrl.ReleaseDrop()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ctrl.Score(),
		GameOver: g.ctrl.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// PieceLocked implements Observer.
func (g *Game) PieceLocked() {}

// LinesCleared implements Observer: surface the clear in the HUD briefly.
func (g *Game) LinesCleared(n int) {
	g.lastClear = n
	g.flashTicks = 45
}

// PieceRotated implements Observer.
func (g *Game) PieceRotated() {}

// tileColors maps tile codes to display colors.
var tileColors = map[int]core.Color{
	TileI: core.ColorCyan,
	TileJ: core.ColorBlue,
	TileL: core.ColorOrange,
	TileO: core.ColorYellow,
	TileS: core.ColorGreen,
	TileZ: core.ColorRed,
	TileT: core.ColorMagenta,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	board := g.ctrl.Board()
	boxW := board.Width()*2 + 2
	boxH := board.Height() + 2
	boxX := (dst.Width() - boxW - 14) / 2
	if boxX < 0 {
		boxX = 0
	}
	boxY := 2

	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Settled tiles.
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			g.renderCell(dst, boxX, boxY, x, y, board.Get(x, y))
		}
	}

	// Active piece at the cursor.
	cx, cy := g.ctrl.Cursor()
	g.renderPiece(dst, g.ctrl.ActivePiece(), boxX+1+cx*2, boxY+1+cy)

	g.renderSidebar(dst, boxX+boxW+2, boxY)

	switch {
	case g.ctrl.GameOver():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d (R to restart)", g.ctrl.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderCell draws one board cell as a two-column block.
func (g *Game) renderCell(dst *core.Screen, boxX, boxY, x, y, v int) {
	if v == grid.Empty {
		return
	}
	color := tileColors[v]
	sx := boxX + 1 + x*2
	sy := boxY + 1 + y
	dst.SetCell(sx, sy, '[', color)
	dst.SetCell(sx+1, sy, ']', color)
}

// renderPiece draws an overlay's opaque cells at a screen position.
func (g *Game) renderPiece(dst *core.Screen, p grid.Overlay, sx, sy int) {
	if p == nil {
		return
	}
	w, h := p.Size()
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			v := p.Cell(dx, dy)
			if v == grid.Empty {
				continue
			}
			color := tileColors[v]
			dst.SetCell(sx+dx*2, sy+dy, '[', color)
			dst.SetCell(sx+dx*2+1, sy+dy, ']', color)
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Blocks | Score: %d  Gravity: %dms",
		g.ctrl.Score(), g.ctrl.GravityInterval().Milliseconds())
	if g.flashTicks > 0 {
		suffix := "line!"
		if g.lastClear > 1 {
			suffix = fmt.Sprintf("%d lines!", g.lastClear)
		}
		hud += "  ** " + suffix + " **"
	}
	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderSidebar draws the next-piece preview.
func (g *Game) renderSidebar(dst *core.Screen, sx, sy int) {
	dst.DrawText(sx, sy, "Next:")
	g.renderPiece(dst, g.ctrl.NextPiece(), sx, sy+2)

	dst.DrawText(sx, sy+7, "Controls:")
	dst.DrawText(sx, sy+8, "←/→ move")
	dst.DrawText(sx, sy+9, "↑ rotate")
	dst.DrawText(sx, sy+10, "↓ drop")
	dst.DrawText(sx, sy+11, "P pause")
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
