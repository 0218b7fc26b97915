package term

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/games/tetris2048"
	"github.com/vovakirdan/tetris2048/internal/games/tetris2048/grid"
)

func newTestSink(w *bytes.Buffer, profile termenv.Profile) (*ANSISink, *[]time.Duration) {
	var slept []time.Duration
	s := NewANSISink(w)
	s.renderer.SetColorProfile(profile)
	s.sleep = func(d time.Duration) { slept = append(slept, d) }
	return s, &slept
}

// drawSample puts a locked 16 at the bottom and a falling 2 at the top of a 4x4 grid.
func drawSample(t *testing.T, s *ANSISink) {
	t.Helper()
	g := grid.New(4, 4)
	require.True(t, g.Place(grid.NewTile(16, grid.Pos{Row: 0, Col: 1})))
	s.DrawGrid(g.Cells())
	s.DrawActivePiece([]*grid.Tile{grid.NewTile(2, grid.Pos{Row: 3, Col: 0})})
	s.DrawScore(36)
}

func TestPresentFrame(t *testing.T) {
	var buf bytes.Buffer
	s, slept := newTestSink(&buf, termenv.ANSI256)
	drawSample(t, s)

	require.NoError(t, s.Present(243*time.Millisecond))
	assert.Equal(t, []time.Duration{243 * time.Millisecond}, *slept)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, resetPos))
	assert.Contains(t, out, "Score: 36")

	lines := strings.Split(out, "\r\n")
	require.GreaterOrEqual(t, len(lines), 6)
	// lines[1] is the top row, lines[4] the bottom row.
	assert.Contains(t, lines[1], " 2  ")
	assert.Contains(t, lines[4], " 16 ")
	assert.Contains(t, lines[4], "38;5;231")
	assert.Contains(t, lines[4], "48;5;209")
	assert.True(t, strings.HasPrefix(lines[5], "└"))
}

func TestPresentFrameFollowsColorProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile termenv.Profile
		want    []string
		notWant []string
	}{
		{
			name:    "no color terminal",
			profile: termenv.Ascii,
			want:    []string{"│  · " + " 16 "},
			notWant: []string{"38;5;", "48;5;", "\033[1;"},
		},
		{
			name:    "16 color terminal",
			profile: termenv.ANSI,
			want:    []string{" 16 "},
			notWant: []string{"38;5;", "48;5;"},
		},
		{
			name:    "256 color terminal",
			profile: termenv.ANSI256,
			want:    []string{"38;5;238", "48;5;255"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s, _ := newTestSink(&buf, tt.profile)
			drawSample(t, s)
			require.NoError(t, s.Present(0))

			out := buf.String()
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, out, nw)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestPresentWriteError(t *testing.T) {
	s := NewANSISink(failingWriter{})
	s.sleep = func(time.Duration) { t.Fatal("must not sleep after a failed write") }
	err := s.Present(time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "term: write frame")
}

func TestBeginEnd(t *testing.T) {
	var buf bytes.Buffer
	s := NewANSISink(&buf)
	require.NoError(t, s.Begin())
	require.NoError(t, s.End())
	assert.Contains(t, buf.String(), hideCursor)
	assert.Contains(t, buf.String(), showCursor)
}

// The sleep hook feeds keys, so every tick sees exactly the scripted input.
func TestLoopWithKeyboardAndSink(t *testing.T) {
	keys := make(chan keyboard.KeyEvent, 4)
	var buf bytes.Buffer
	sink := NewANSISink(&buf)

	presents := 0
	sink.sleep = func(time.Duration) {
		presents++
		switch {
		case presents < 5:
			keys <- keyboard.KeyEvent{Key: keyboard.KeyArrowLeft}
		case presents == 5:
			keys <- keyboard.KeyEvent{Rune: 'q'}
		}
	}

	game := tetris2048.New(config.Default())
	game.Reset(core.RuntimeConfig{Seed: 7, Headless: true})

	loop := &tetris2048.Loop{
		Game:  game,
		Input: NewKeyboardInput(keys, quiet()),
		Sink:  sink,
	}
	state, err := loop.Run(context.Background())

	require.ErrorIs(t, err, tetris2048.ErrQuit)
	assert.False(t, state.GameOver)
	assert.Equal(t, 5, presents)
	assert.Equal(t, 5, strings.Count(buf.String(), "TETRIS 2048"))
}
