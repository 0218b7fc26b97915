package tetris2048

import "github.com/vovakirdan/tetris2048/internal/games/tetris2048/grid"

// StateType is a coarse summary of the game state.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StateGameOver    StateType = "game_over"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Score       int
	Stats       Stats
	Board       [][]int // row 0 first
	Piece       string  // current kind, empty after game over
	Orientation int
	Tiles       []grid.Pos
	Next        string
	State       StateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:  g.tick,
		Score: g.score,
		Stats: g.stats,
		Board: g.grid.Numbers(),
		State: state,
	}
	if g.current != nil {
		s.Piece = g.current.Kind().String()
		s.Orientation = g.current.Orientation()
		s.Tiles = g.current.Positions()
	}
	if g.next != nil {
		s.Next = g.next.Kind().String()
	}
	return s
}
