package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris2048/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// tileColors is the 2048 palette as foreground/background pairs,
// dark text on the light tiles.
var tileColors = map[core.Color][2]lipgloss.Color{
	core.ColorTile2:    {"238", "255"},
	core.ColorTile4:    {"238", "230"},
	core.ColorTile8:    {"231", "215"},
	core.ColorTile16:   {"231", "209"},
	core.ColorTile32:   {"231", "203"},
	core.ColorTile64:   {"231", "196"},
	core.ColorTile128:  {"238", "222"},
	core.ColorTile256:  {"238", "221"},
	core.ColorTile512:  {"238", "220"},
	core.ColorTile1024: {"231", "214"},
	core.ColorTile2048: {"231", "178"},
	core.ColorTileDark: {"231", "236"},
}

func init() {
	for c := range tileColors {
		colorStyles[c], _ = TileStyle(lipgloss.DefaultRenderer(), c)
	}
}

// TileStyle returns the tile style for c bound to r, so output is
// downsampled to whatever r's terminal supports. ok is false when c is
// not a tile color.
func TileStyle(r *lipgloss.Renderer, c core.Color) (style lipgloss.Style, ok bool) {
	colors, ok := tileColors[c]
	if !ok {
		return r.NewStyle(), false
	}
	return r.NewStyle().
		Bold(true).
		Foreground(colors[0]).
		Background(colors[1]), true
}

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	style, ok := colorStyles[c]
	if !ok {
		return colorStyles[core.ColorDefault]
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
