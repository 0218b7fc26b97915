package tetris2048

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/games/tetris2048/grid"
)

// ErrQuit is returned by Loop.Run when the input source asks to quit.
var ErrQuit = errors.New("tetris2048: quit")

// InputSource yields at most one action per tick. Implementations collapse
// queued duplicates and return core.ActionNone when nothing was pressed.
type InputSource interface {
	PollEvent() core.Action
}

// RenderSink draws a frame. Present shows it and blocks for the tick
// interval, which paces the loop.
type RenderSink interface {
	DrawGrid(cells [][]grid.Cell)
	DrawActivePiece(tiles []*grid.Tile)
	DrawScore(score int)
	Present(interval time.Duration) error
}

// Loop drives a Game from an input source to a render sink, one tick per
// Present call.
type Loop struct {
	Game     *Game
	Input    InputSource
	Sink     RenderSink
	Interval time.Duration // zero means Game.Interval()
}

// Run plays until game over, quit, or ctx is done. It returns the final
// state; quitting yields ErrQuit and cancellation yields ctx.Err().
func (l *Loop) Run(ctx context.Context) (core.GameState, error) {
	interval := l.Interval
	if interval <= 0 {
		interval = l.Game.Interval()
	}

	for {
		if err := ctx.Err(); err != nil {
			return l.Game.State(), err
		}

		action := l.Input.PollEvent()
		if action == core.ActionQuit {
			return l.Game.State(), ErrQuit
		}

		res := l.Game.Step(core.FrameOf(action))
		l.draw()
		if err := l.Sink.Present(interval); err != nil {
			return res.State, fmt.Errorf("tetris2048: present: %w", err)
		}
		if res.State.GameOver {
			return res.State, nil
		}
	}
}

func (l *Loop) draw() {
	g := l.Game
	l.Sink.DrawGrid(g.grid.Cells())
	if g.current != nil {
		l.Sink.DrawActivePiece(g.current.Visible(g.grid.Height()))
	} else {
		l.Sink.DrawActivePiece(nil)
	}
	l.Sink.DrawScore(g.score)
}
