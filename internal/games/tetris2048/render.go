package tetris2048

import (
	"fmt"

	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/games/tetris2048/grid"
	"github.com/vovakirdan/tetris2048/internal/games/tetris2048/piece"
)

const (
	cellWidth = 4 // fits "2048"
	hudWidth  = 18
	hudGap    = 2
)

// layoutSize returns the smallest screen that fits the board and the HUD.
func layoutSize(gridH, gridW int) (w, h int) {
	return gridW*cellWidth + 2 + hudGap + hudWidth, gridH + 3
}

// MinScreenSize returns the smallest screen Render draws the board on.
func (g *Game) MinScreenSize() (w, h int) {
	return layoutSize(g.cfg.Grid.Height, g.cfg.Grid.Width)
}

// TileLabel formats a tile number to fit a cell.
func TileLabel(n int) string {
	s := fmt.Sprint(n)
	if len(s) > cellWidth {
		s = fmt.Sprintf("%dk", n/1024)
	}
	// Center within the cell, leaning left.
	pad := cellWidth - len(s)
	left := pad / 2
	return fmt.Sprintf("%*s%s%*s", left, "", s, pad-left, "")
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	h, w := g.grid.Height(), g.grid.Width()
	layoutW, _ := layoutSize(h, w)
	board := core.NewRect(core.Clamp((g.screenW-layoutW)/2, 0, g.screenW), 1, w*cellWidth+2, h+2)
	boardX, boardY := board.X, board.Y
	hudX := board.Right() + hudGap

	dst.DrawText(boardX, 0, "TETRIS 2048")
	dst.DrawBox(board)

	for _, row := range g.grid.Cells() {
		for _, cell := range row {
			if t, ok := cell.Tile(); ok {
				g.drawTile(dst, boardX, boardY, t)
			}
		}
	}
	if g.current != nil {
		for _, t := range g.current.Visible(h) {
			g.drawTile(dst, boardX, boardY, t)
		}
	}

	g.renderHUD(dst, hudX, boardY)
	g.renderOverlays(dst, board)
}

// drawTile paints one tile; row 0 is the bottom line inside the box.
func (g *Game) drawTile(dst *core.Screen, boardX, boardY int, t *grid.Tile) {
	x := boardX + 1 + t.Pos.Col*cellWidth
	y := boardY + g.grid.Height() - t.Pos.Row
	dst.DrawTextColored(x, y, TileLabel(t.Number), t.Color)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.MinScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	lines := []string{
		fmt.Sprintf("Score  %d", g.score),
		fmt.Sprintf("Best   %d", g.grid.MaxTile()),
		fmt.Sprintf("Lines  %d", g.stats.Lines),
		fmt.Sprintf("Merges %d", g.stats.Merges),
		fmt.Sprintf("Pieces %d", g.stats.Pieces),
	}
	for i, s := range lines {
		dst.DrawText(x, y+1+i, s)
	}

	previewY := y + len(lines) + 2
	dst.DrawText(x, previewY, "NEXT")
	if g.next != nil {
		drawPreview(dst, x, previewY+1, g.next)
	}

	help := []string{"←→ move  ↑ rotate", "↓ drop  space slam", "p pause  q quit"}
	for i, s := range help {
		dst.DrawText(x, previewY+7+i, s)
	}
}

// drawPreview draws p inside a 4x4 box of cells relative to its anchor.
func drawPreview(dst *core.Screen, x, y int, p *piece.Piece) {
	a := p.Anchor()
	for _, t := range p.Tiles() {
		dc := t.Pos.Col - a.Col
		dr := t.Pos.Row - a.Row
		dst.DrawTextColored(x+dc*cellWidth, y+3-dr, TileLabel(t.Number), t.Color)
	}
}

// renderOverlays blanks a band across the board and centers msgs in it.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	var msgs []string
	switch {
	case g.gameOver:
		msgs = []string{"GAME OVER", fmt.Sprintf("Score: %d", g.score), "R restart  Q quit"}
	case g.paused:
		msgs = []string{"PAUSED", "P to resume"}
	default:
		return
	}

	cx, cy := board.Center()
	top := cy - len(msgs)/2
	dst.DrawRect(core.NewRect(board.X+1, top-1, board.W-2, len(msgs)+2), ' ')
	for i, m := range msgs {
		dst.DrawText(cx-len([]rune(m))/2, top+i, m)
	}
}
