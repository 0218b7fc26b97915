package grid

// Result summarizes one lock-and-consolidate cycle.
type Result struct {
	Score      int // RowScore + MergeScore
	RowScore   int
	MergeScore int

	Passes      int // passes that changed the board
	Drops       int // floating tiles moved down
	Merges      int
	RowsCleared int

	GameOver bool
}

// Lock transfers tiles into the grid. A tile outside the grid, or on a
// taken cell, is not placed; the grid is then marked game over and Lock
// returns false. Tiles that do fit are still placed.
func (g *Grid) Lock(tiles []*Tile) bool {
	ok := true
	for _, t := range tiles {
		if !g.Place(t) {
			ok = false
		}
	}
	if !ok {
		g.gameOver = true
	}
	return ok
}

// LockAndConsolidate locks tiles and, if that succeeds, settles the board.
func (g *Grid) LockAndConsolidate(tiles []*Tile) Result {
	if !g.Lock(tiles) {
		return Result{GameOver: true}
	}
	return g.Consolidate()
}

// Consolidate repeats floating-tile elimination, the merge cascade and row
// clearance until a pass changes nothing. Accumulators are per pass.
//
// Every change either lowers a tile or removes one, so the loop ends.
func (g *Grid) Consolidate() Result {
	var res Result
	for {
		drops := g.DropFloating()
		mergeScore, merges := g.MergeColumns()
		rowScore, rows := g.ClearFullRows()
		if drops == 0 && merges == 0 && rows == 0 {
			break
		}

		res.Passes++
		res.Drops += drops
		res.Merges += merges
		res.RowsCleared += rows
		res.MergeScore += mergeScore
		res.RowScore += rowScore
		res.Score += mergeScore + rowScore
	}
	res.GameOver = g.gameOver
	return res
}

// DropFloating moves every tile that has no path to the floor down one row
// and returns how many tiles moved. Columns are walked bottom-up so a
// floating stack moves together.
func (g *Grid) DropFloating() int {
	lab := Label(g.occupancy())
	if lab.Count <= 1 {
		return 0
	}

	moved := 0
	for c := 0; c < g.width; c++ {
		for r := 1; r < g.height; r++ {
			if !g.cells[r][c].Occupied() || !lab.Floating(r, c) {
				continue
			}
			below := Pos{Row: r - 1, Col: c}
			if g.IsOccupied(below) {
				continue
			}
			g.move(Pos{Row: r, Col: c}, below)
			moved++
		}
	}
	return moved
}

// MergeColumns merges vertically adjacent equal tiles. The lower tile
// doubles, the upper one is removed and everything above it in the column
// shifts down one row. Each column is rescanned from the bottom after every
// merge so cascades complete. Every merge scores the doubled value.
func (g *Grid) MergeColumns() (score, merges int) {
	for c := 0; c < g.width; c++ {
		for {
			r := g.lowestPair(c)
			if r < 0 {
				break
			}
			lower, _ := g.cells[r][c].Tile()
			lower.Double()
			score += lower.Number
			merges++

			g.cells[r+1][c] = Empty()
			for rr := r + 2; rr < g.height; rr++ {
				if g.cells[rr][c].Occupied() {
					g.move(Pos{Row: rr, Col: c}, Pos{Row: rr - 1, Col: c})
				}
			}
		}
	}
	return score, merges
}

// lowestPair returns the lowest row r in column c where rows r and r+1
// hold equal numbers, or -1.
func (g *Grid) lowestPair(c int) int {
	for r := 0; r+1 < g.height; r++ {
		lo, hi := g.cells[r][c], g.cells[r+1][c]
		if lo.Occupied() && hi.Occupied() && lo.Number() == hi.Number() {
			return r
		}
	}
	return -1
}

// ClearFullRows removes every full row, shifting the rows above it down,
// and returns the summed tile numbers of the removed rows.
func (g *Grid) ClearFullRows() (score, rows int) {
	r := 0
	for r < g.height {
		sum, full := g.rowSum(r)
		if !full {
			r++
			continue
		}
		score += sum
		rows++
		for rr := r; rr+1 < g.height; rr++ {
			g.cells[rr] = g.cells[rr+1]
			for _, cell := range g.cells[rr] {
				if t, ok := cell.Tile(); ok {
					t.Pos.Row = rr
				}
			}
		}
		g.cells[g.height-1] = make([]Cell, g.width)
		// Row r now holds what was above it; check it again.
	}
	return score, rows
}

func (g *Grid) rowSum(r int) (sum int, full bool) {
	for _, cell := range g.cells[r] {
		if !cell.Occupied() {
			return 0, false
		}
		sum += cell.Number()
	}
	return sum, true
}
