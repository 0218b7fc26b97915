// Package piece implements the falling tetromino: its shape templates,
// the four-orientation rotation table and movement legality checks.
package piece

import (
	"fmt"

	"github.com/vovakirdan/tetris2048/internal/games/tetris2048/grid"
)

// Direction is a unit move of the whole piece.
type Direction int

const (
	Left Direction = iota
	Right
	Down
)

func (d Direction) delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, -1
	}
}

// Occupancy is the view of the board a piece needs to validate moves.
type Occupancy interface {
	IsOccupied(p grid.Pos) bool
	Height() int
	Width() int
}

// Rand is the randomness a spawn draws from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Piece is the active tetromino. It owns its tiles until they are locked
// into the grid.
type Piece struct {
	kind        Kind
	tiles       []*grid.Tile
	anchor      grid.Pos // bottom-left corner of the template box
	orientation int
}

// New builds a piece with its box's bottom-left corner at column anchorX and
// row gridH, just above the visible grid. numbers gives each tile's value in
// template order.
func New(kind Kind, anchorX, gridH, gridW int, numbers []int) (*Piece, error) {
	sh, ok := shapes[kind]
	if !ok {
		return nil, fmt.Errorf("piece: unknown kind %d", int(kind))
	}
	if anchorX < 0 || anchorX+sh.size > gridW {
		return nil, fmt.Errorf("piece: anchor %d puts %s outside width %d", anchorX, kind, gridW)
	}
	if len(numbers) != len(sh.cells) {
		return nil, fmt.Errorf("piece: %s needs %d numbers, got %d", kind, len(sh.cells), len(numbers))
	}
	return build(kind, grid.Pos{Row: gridH, Col: anchorX}, numbers), nil
}

func build(kind Kind, anchor grid.Pos, numbers []int) *Piece {
	sh := shapes[kind]
	p := &Piece{
		kind:        kind,
		anchor:      anchor,
		orientation: 1,
		tiles:       make([]*grid.Tile, len(sh.cells)),
	}
	for i, c := range sh.cells {
		pos := grid.Pos{Row: anchor.Row + (sh.size - 1) - c.row, Col: anchor.Col + c.col}
		p.tiles[i] = grid.NewTile(numbers[i], pos)
	}
	return p
}

// RandomKind picks a kind uniformly.
func RandomKind(rng Rand) Kind {
	kinds := Kinds()
	return kinds[rng.Intn(len(kinds))]
}

// Spawn creates a piece of the given kind above the grid at a random column.
// Each tile is 4 with probability p4, otherwise 2.
func Spawn(kind Kind, gridH, gridW int, rng Rand, p4 float64) *Piece {
	sh := shapes[kind]
	anchorX := 0
	if span := gridW - sh.size; span > 0 {
		anchorX = rng.Intn(span + 1)
	}
	numbers := make([]int, len(sh.cells))
	for i := range numbers {
		numbers[i] = 2
		if rng.Float64() < p4 {
			numbers[i] = 4
		}
	}
	return build(kind, grid.Pos{Row: gridH, Col: anchorX}, numbers)
}

// Kind returns the piece's shape kind.
func (p *Piece) Kind() Kind { return p.kind }

// Orientation returns the current orientation, 1 through 4.
func (p *Piece) Orientation() int { return p.orientation }

// Anchor returns the bottom-left corner of the template box.
func (p *Piece) Anchor() grid.Pos { return p.anchor }

// Tiles returns the piece's tiles. Locking hands these to the grid.
func (p *Piece) Tiles() []*grid.Tile { return p.tiles }

// Visible returns the tiles that are inside the grid's rows.
func (p *Piece) Visible(gridH int) []*grid.Tile {
	out := make([]*grid.Tile, 0, len(p.tiles))
	for _, t := range p.tiles {
		if t.Pos.Row < gridH {
			out = append(out, t)
		}
	}
	return out
}

// Positions returns a copy of every tile position in tile order.
func (p *Piece) Positions() []grid.Pos {
	out := make([]grid.Pos, len(p.tiles))
	for i, t := range p.tiles {
		out[i] = t.Pos
	}
	return out
}

// CanMove reports whether the piece could shift one cell in dir.
//
// Only the leading tile of each row (horizontal moves) or column (downward
// moves) is checked. A target above the grid is never occupied, so tiles
// still descending into view only have to respect the side walls.
func (p *Piece) CanMove(dir Direction, occ Occupancy) bool {
	dx, dy := dir.delta()
	for _, t := range p.leading(dir) {
		to := t.Pos.Add(dx, dy)
		if to.Col < 0 || to.Col >= occ.Width() || to.Row < 0 {
			return false
		}
		if to.Row < occ.Height() && occ.IsOccupied(to) {
			return false
		}
	}
	return true
}

// Move shifts the piece one cell in dir. It returns false and leaves the
// piece untouched when the move is illegal.
func (p *Piece) Move(dir Direction, occ Occupancy) bool {
	if !p.CanMove(dir, occ) {
		return false
	}
	dx, dy := dir.delta()
	for _, t := range p.tiles {
		t.Pos = t.Pos.Add(dx, dy)
	}
	p.anchor = p.anchor.Add(dx, dy)
	return true
}

// leading returns, per row or column, the outermost tile in dir.
func (p *Piece) leading(dir Direction) []*grid.Tile {
	best := make(map[int]*grid.Tile, len(p.tiles))
	for _, t := range p.tiles {
		key := t.Pos.Row
		if dir == Down {
			key = t.Pos.Col
		}
		cur, ok := best[key]
		switch {
		case !ok:
			best[key] = t
		case dir == Left && t.Pos.Col < cur.Pos.Col,
			dir == Right && t.Pos.Col > cur.Pos.Col,
			dir == Down && t.Pos.Row < cur.Pos.Row:
			best[key] = t
		}
	}
	out := make([]*grid.Tile, 0, len(best))
	for _, t := range best {
		out = append(out, t)
	}
	return out
}

// Rotate advances to the next orientation. The rotation is rejected, and
// nothing changes, if a moved tile would leave the side walls, drop below
// row 0 or land on a locked tile. Tiles may rotate above the grid.
func (p *Piece) Rotate(occ Occupancy) bool {
	offsets := RotationOffsets(p.kind, p.orientation)
	targets := make([]grid.Pos, len(offsets))
	for i, off := range offsets {
		to := p.tiles[off.Tile].Pos.Add(off.DX, off.DY)
		if to.Col < 0 || to.Col >= occ.Width() || to.Row < 0 {
			return false
		}
		if to.Row < occ.Height() && occ.IsOccupied(to) {
			return false
		}
		targets[i] = to
	}
	for i, off := range offsets {
		p.tiles[off.Tile].Pos = targets[i]
	}
	p.orientation = nextOrientation(p.orientation)
	return true
}
