// Package grid holds the locked tiles of a tetris2048 board and the
// consolidation pipeline that runs after every lock: floating tiles fall,
// equal stacked tiles merge, and full rows clear.
package grid

import "fmt"

// Grid is the board of locked tiles. Cells are indexed [row][col] with
// row 0 at the bottom.
type Grid struct {
	height   int
	width    int
	cells    [][]Cell
	gameOver bool
}

// New creates an empty grid. It panics on non-positive dimensions.
func New(height, width int) *Grid {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", height, width))
	}
	g := &Grid{height: height, width: width}
	g.cells = make([][]Cell, height)
	for r := range g.cells {
		g.cells[r] = make([]Cell, width)
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// IsInside reports whether p lies within the grid bounds.
func (g *Grid) IsInside(p Pos) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// IsOccupied reports whether p holds a locked tile.
// Positions outside the grid are never occupied.
func (g *Grid) IsOccupied(p Pos) bool {
	return g.IsInside(p) && g.cells[p.Row][p.Col].Occupied()
}

// At returns the cell at p, or an empty cell when p is outside the grid.
func (g *Grid) At(p Pos) Cell {
	if !g.IsInside(p) {
		return Empty()
	}
	return g.cells[p.Row][p.Col]
}

// Place puts t into the grid at t.Pos without running the pipeline.
// It returns false and changes nothing if the position is outside the grid
// or already taken.
func (g *Grid) Place(t *Tile) bool {
	if !g.IsInside(t.Pos) || g.IsOccupied(t.Pos) {
		return false
	}
	g.cells[t.Pos.Row][t.Pos.Col] = Filled(t)
	return true
}

// GameOver reports whether a lock has failed.
func (g *Grid) GameOver() bool { return g.gameOver }

// Cells returns a copy of the cell rows for drawing.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.height)
	for r := range g.cells {
		out[r] = make([]Cell, g.width)
		for c, cell := range g.cells[r] {
			if cell.tile != nil {
				out[r][c] = Filled(cell.tile.Clone())
			}
		}
	}
	return out
}

// Numbers returns the tile numbers per cell, 0 for empty.
func (g *Grid) Numbers() [][]int {
	out := make([][]int, g.height)
	for r := range g.cells {
		out[r] = make([]int, g.width)
		for c, cell := range g.cells[r] {
			out[r][c] = cell.Number()
		}
	}
	return out
}

// MaxTile returns the largest tile number on the board, 0 when empty.
func (g *Grid) MaxTile() int {
	best := 0
	for _, row := range g.cells {
		for _, cell := range row {
			best = max(best, cell.Number())
		}
	}
	return best
}

// TileCount returns the number of locked tiles.
func (g *Grid) TileCount() int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.Occupied() {
				n++
			}
		}
	}
	return n
}

func (g *Grid) occupancy() [][]bool {
	occ := make([][]bool, g.height)
	for r, row := range g.cells {
		occ[r] = make([]bool, g.width)
		for c, cell := range row {
			occ[r][c] = cell.Occupied()
		}
	}
	return occ
}

// move relocates the tile at from into the empty cell at to.
func (g *Grid) move(from, to Pos) {
	cell := g.cells[from.Row][from.Col]
	if t, ok := cell.Tile(); ok {
		t.Pos = to
	}
	g.cells[to.Row][to.Col] = cell
	g.cells[from.Row][from.Col] = Empty()
}
