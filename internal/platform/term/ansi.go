package term

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/games/tetris2048"
	"github.com/vovakirdan/tetris2048/internal/games/tetris2048/grid"
	"github.com/vovakirdan/tetris2048/internal/platform/tui"
)

const (
	clearScreen = "\033[2J"
	resetPos    = "\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	resetStyle  = "\033[0m"

	cellWidth = 4
	emptyCell = "  · "
)

// ANSISink renders frames to an io.Writer. Tiles are styled through a
// lipgloss renderer bound to the writer; raw escapes only move the cursor.
// Present writes the whole frame then sleeps for the tick interval.
type ANSISink struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	tiles    map[core.Color]lipgloss.Style
	sleep    func(time.Duration)

	cells  [][]grid.Cell
	active []*grid.Tile
	score  int
}

var _ tetris2048.RenderSink = (*ANSISink)(nil)

// NewANSISink creates a sink writing to w.
func NewANSISink(w io.Writer) *ANSISink {
	r := lipgloss.NewRenderer(w)
	tiles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorTile2; c <= core.ColorTileDark; c++ {
		if style, ok := tui.TileStyle(r, c); ok {
			tiles[c] = style
		}
	}
	return &ANSISink{w: w, renderer: r, tiles: tiles, sleep: time.Sleep}
}

// Begin clears the screen and hides the cursor.
func (s *ANSISink) Begin() error {
	_, err := io.WriteString(s.w, clearScreen+resetPos+hideCursor)
	return err
}

// End restores the cursor.
func (s *ANSISink) End() error {
	_, err := io.WriteString(s.w, resetStyle+showCursor+"\n")
	return err
}

// DrawGrid stores the locked cells for the next frame, row 0 first.
func (s *ANSISink) DrawGrid(cells [][]grid.Cell) {
	s.cells = cells
}

// DrawActivePiece stores the falling piece's visible tiles.
func (s *ANSISink) DrawActivePiece(tiles []*grid.Tile) {
	s.active = tiles
}

// DrawScore stores the score line.
func (s *ANSISink) DrawScore(score int) {
	s.score = score
}

// Present writes the frame and blocks for interval.
func (s *ANSISink) Present(interval time.Duration) error {
	if _, err := s.w.Write(s.frame()); err != nil {
		return fmt.Errorf("term: write frame: %w", err)
	}
	if interval > 0 {
		s.sleep(interval)
	}
	return nil
}

// frame builds one full frame, top row first.
func (s *ANSISink) frame() []byte {
	var b bytes.Buffer
	b.WriteString(resetPos)

	height := len(s.cells)
	width := 0
	if height > 0 {
		width = len(s.cells[0])
	}

	active := make(map[grid.Pos]*grid.Tile, len(s.active))
	for _, t := range s.active {
		active[t.Pos] = t
	}

	fmt.Fprintf(&b, "TETRIS 2048   Score: %d\033[K\r\n", s.score)
	for r := height - 1; r >= 0; r-- {
		b.WriteString("│")
		for c := 0; c < width; c++ {
			t, ok := s.cells[r][c].Tile()
			if at, isActive := active[grid.Pos{Row: r, Col: c}]; isActive {
				t, ok = at, true
			}
			if !ok {
				b.WriteString(emptyCell)
				continue
			}
			s.writeTile(&b, t)
		}
		b.WriteString("│\r\n")
	}
	b.WriteString("└" + strings.Repeat("─", width*cellWidth) + "┘\r\n")
	b.WriteString("←→ move  ↑ rotate  ↓ drop  space slam  p pause  q quit\033[K\r\n")
	return b.Bytes()
}

func (s *ANSISink) writeTile(b *bytes.Buffer, t *grid.Tile) {
	label := tetris2048.TileLabel(t.Number)
	style, ok := s.tiles[t.Color]
	if !ok {
		b.WriteString(label)
		return
	}
	b.WriteString(style.Render(label))
}
