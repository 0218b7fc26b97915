package grid

import "github.com/vovakirdan/tetris2048/internal/core"

// Pos is a cell position. Row 0 is the bottom of the grid and rows grow upward.
type Pos struct {
	Row int
	Col int
}

// Add returns p shifted by (dx, dy), x being the column axis.
func (p Pos) Add(dx, dy int) Pos {
	return Pos{Row: p.Row + dy, Col: p.Col + dx}
}

// Tile is a single numbered unit. It belongs to a falling piece until the
// piece locks, then to the grid.
type Tile struct {
	Number int
	Color  core.Color
	Pos    Pos
}

// NewTile creates a tile colored for its number.
func NewTile(number int, pos Pos) *Tile {
	return &Tile{Number: number, Color: PaletteColor(number), Pos: pos}
}

// Double doubles the tile's number and recolors it.
func (t *Tile) Double() {
	t.Number *= 2
	t.Color = PaletteColor(t.Number)
}

// Clone returns an independent copy of the tile.
func (t *Tile) Clone() *Tile {
	c := *t
	return &c
}

var palette = map[int]core.Color{
	2:    core.ColorTile2,
	4:    core.ColorTile4,
	8:    core.ColorTile8,
	16:   core.ColorTile16,
	32:   core.ColorTile32,
	64:   core.ColorTile64,
	128:  core.ColorTile128,
	256:  core.ColorTile256,
	512:  core.ColorTile512,
	1024: core.ColorTile1024,
	2048: core.ColorTile2048,
}

// PaletteColor returns the 2048 palette color for a tile number.
// Anything past 2048 is dark.
func PaletteColor(number int) core.Color {
	if c, ok := palette[number]; ok {
		return c
	}
	return core.ColorTileDark
}

// Cell is one grid position: either empty or holding exactly one tile.
type Cell struct {
	tile *Tile
}

// Empty returns an empty cell.
func Empty() Cell { return Cell{} }

// Filled returns a cell holding t.
func Filled(t *Tile) Cell { return Cell{tile: t} }

// Tile returns the cell's tile and whether there is one.
func (c Cell) Tile() (*Tile, bool) {
	return c.tile, c.tile != nil
}

// Occupied reports whether the cell holds a tile.
func (c Cell) Occupied() bool {
	return c.tile != nil
}

// Number returns the tile number, or 0 for an empty cell.
func (c Cell) Number() int {
	if c.tile == nil {
		return 0
	}
	return c.tile.Number
}
