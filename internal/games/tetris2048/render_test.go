package tetris2048

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/games/tetris2048/piece"
)

func TestTileLabel(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{2, " 2  "},
		{16, " 16 "},
		{128, "128 "},
		{2048, "2048"},
		{16384, "16k "},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, TileLabel(tc.n), "TileLabel(%d)", tc.n)
	}
}

func TestRenderBoardRowZeroAtBottom(t *testing.T) {
	g := newTestGame(t, 1)
	g.current = mustPiece(t, piece.O, 0, 2, 4, 1024, 2048)
	require.True(t, g.Step(core.FrameOf(core.ActionHardDrop)).Locked)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "TETRIS 2048")
	assert.Contains(t, out, "NEXT")

	// The box spans 22 lines starting at y=1; row 0 sits just above its bottom edge.
	layoutW, _ := layoutSize(20, 12)
	boardX := (80 - layoutW) / 2
	bottom := []rune(screen.Row(21))
	assert.Equal(t, "10242048", strings.ReplaceAll(string(bottom[boardX+1:boardX+9]), " ", ""))
	assert.Equal(t, core.ColorTile2048, screen.GetCell(boardX+5, 21).Color)
	assert.Equal(t, '└', screen.Get(boardX, 22))
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Step(core.FrameOf(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.Step(core.FrameOf(core.ActionPause))
	g.gameOver = true
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
	assert.NotContains(t, screen.String(), "PAUSED")
}

func TestRenderTooSmall(t *testing.T) {
	g := New(config.Default())
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 12, Seed: 1})
	screen := core.NewScreen(40, 12)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestMinScreenSize(t *testing.T) {
	g := New(config.Default())
	w, h := g.MinScreenSize()
	assert.Equal(t, 70, w)
	assert.Equal(t, 23, h)
}
