// Package tetris2048 implements the falling-block game whose locked tiles
// merge like 2048: equal tiles stacked vertically double, full rows clear.
package tetris2048

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/games/tetris2048/grid"
	"github.com/vovakirdan/tetris2048/internal/games/tetris2048/piece"
)

// ID is the game identifier used for storage and the CLI.
const ID = "tetris2048"

// Stats counts what happened during one game.
type Stats struct {
	Lines   int // rows cleared
	Merges  int
	Pieces  int // pieces locked
	MaxTile int
}

// Game implements core.Game for tetris2048.
type Game struct {
	cfg      config.Config
	rng      *rand.Rand
	tick     uint64
	interval time.Duration

	grid    *grid.Grid
	current *piece.Piece
	next    *piece.Piece

	score int
	stats Stats
	last  grid.Result // most recent consolidation

	// Screen dimensions
	screenW  int
	screenH  int
	headless bool

	gameOver bool
	paused   bool
	tooSmall bool
}

var _ core.Game = (*Game)(nil)

// New creates a game for cfg. Call Reset before stepping it.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris 2048" }

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config { return g.cfg }

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.interval = rc.TickInterval
	if g.interval <= 0 {
		g.interval = g.cfg.TickInterval()
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.headless = rc.Headless

	g.grid = grid.New(g.cfg.Grid.Height, g.cfg.Grid.Width)
	g.score = 0
	g.stats = Stats{}
	g.last = grid.Result{}
	g.gameOver = false
	g.paused = false

	g.current = g.spawn()
	g.next = g.spawn()

	g.checkScreenSize()
}

// Resize updates the screen dimensions without resetting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) spawn() *piece.Piece {
	kind := piece.RandomKind(g.rng)
	return piece.Spawn(kind, g.cfg.Grid.Height, g.cfg.Grid.Width, g.rng, g.cfg.Spawn.FourProbability)
}

// checkScreenSize checks if the screen is large enough.
// Headless games draw through a RenderSink and never pause for size.
func (g *Game) checkScreenSize() {
	if g.headless {
		g.tooSmall = false
		return
	}
	minW, minH := g.MinScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Interval returns the time between automatic descents.
func (g *Game) Interval() time.Duration { return g.interval }

// Step advances the game by one tick: at most one player action, then the
// automatic descent. A piece that cannot descend locks, the grid settles,
// and the next piece takes its place.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.applyAction(in)

	res := core.StepResult{}
	if !g.current.Move(piece.Down, g.grid) {
		g.lock()
		res.Locked = true
		res.RowsCleared = g.last.RowsCleared
		res.Merges = g.last.Merges
	}
	res.State = g.State()
	return res
}

// applyAction applies the highest-priority action in the frame.
func (g *Game) applyAction(in core.InputFrame) {
	switch {
	case in.Has(core.ActionHardDrop):
		for i := 0; i < g.grid.Height(); i++ {
			if !g.current.Move(piece.Down, g.grid) {
				break
			}
		}
	case in.Has(core.ActionRotate):
		g.current.Rotate(g.grid)
	case in.Has(core.ActionMoveLeft):
		g.current.Move(piece.Left, g.grid)
	case in.Has(core.ActionMoveRight):
		g.current.Move(piece.Right, g.grid)
	case in.Has(core.ActionMoveDown):
		g.current.Move(piece.Down, g.grid)
	}
}

// lock hands the current piece to the grid and promotes the next one.
func (g *Game) lock() {
	g.last = g.grid.LockAndConsolidate(g.current.Tiles())
	g.score += g.last.Score
	g.stats.Lines += g.last.RowsCleared
	g.stats.Merges += g.last.Merges
	g.stats.Pieces++
	g.stats.MaxTile = max(g.stats.MaxTile, g.grid.MaxTile())

	if g.last.GameOver {
		g.gameOver = true
		g.current = nil
		return
	}
	g.current = g.next
	g.next = g.spawn()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Stats returns the running counters.
func (g *Game) Stats() Stats { return g.stats }

// LastResult returns the most recent consolidation result.
func (g *Game) LastResult() grid.Result { return g.last }

// Grid returns the board. Callers must not mutate it.
func (g *Game) Grid() *grid.Grid { return g.grid }

// Current returns the falling piece, nil once the game is over.
func (g *Game) Current() *piece.Piece { return g.current }

// Next returns the piece shown in the preview.
func (g *Game) Next() *piece.Piece { return g.next }
