package grid

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// FloorLabel is the label always assigned to the synthetic floor row.
const FloorLabel = 1

// Labeling is the result of connected-component labeling over an occupancy
// grid augmented with a synthetic floor row.
//
// Labels has one more row than the labeled grid: Labels[0] is the floor and
// Labels[r+1] mirrors real row r. Unoccupied cells carry label 0.
type Labeling struct {
	Labels [][]int
	Count  int // distinct non-zero labels after resolution
}

// Floating reports whether the tile at real-grid (row, col) has no path to
// the floor. It is always false when the whole grid is one component.
func (l Labeling) Floating(row, col int) bool {
	if l.Count <= 1 {
		return false
	}
	r := row + 1
	if r < 1 || r >= len(l.Labels) || col < 0 || col >= len(l.Labels[r]) {
		return false
	}
	label := l.Labels[r][col]
	return label != 0 && label != FloorLabel
}

// Label runs two-pass 4-connected component labeling over occupied, which
// is indexed [row][col] with row 0 at the bottom. A floor row is prepended
// before scanning so that everything resting on it resolves to FloorLabel.
//
// Label panics if occupied is empty or ragged.
func Label(occupied [][]bool) Labeling {
	h := len(occupied)
	if h == 0 || len(occupied[0]) == 0 {
		panic("grid: Label called with empty occupancy")
	}
	w := len(occupied[0])
	for r, row := range occupied {
		if len(row) != w {
			panic(fmt.Sprintf("grid: Label row %d has width %d, want %d", r, len(row), w))
		}
	}

	labels := make([][]int, h+1)
	for r := range labels {
		labels[r] = make([]int, w)
	}
	isSet := func(r, c int) bool {
		if r == 0 {
			return true
		}
		return occupied[r-1][c]
	}

	uf := newUnionFind()
	next := 1
	for r := 0; r <= h; r++ {
		for c := 0; c < w; c++ {
			if !isSet(r, c) {
				continue
			}
			var below, left int
			if r > 0 {
				below = labels[r-1][c]
			}
			if c > 0 {
				left = labels[r][c-1]
			}
			switch {
			case below == 0 && left == 0:
				labels[r][c] = next
				uf.add(next)
				next++
			case below == 0:
				labels[r][c] = left
			case left == 0:
				labels[r][c] = below
			default:
				labels[r][c] = min(below, left)
				if below != left {
					uf.union(below, left)
				}
			}
		}
	}

	// Compact canonical labels to 1..Count in first-seen order. The floor
	// is scanned first, so it always becomes 1.
	dense := intmap.New[int, int](next)
	count := 0
	for r := 0; r <= h; r++ {
		for c := 0; c < w; c++ {
			if labels[r][c] == 0 {
				continue
			}
			root := uf.find(labels[r][c])
			d, ok := dense.Get(root)
			if !ok {
				count++
				d = count
				dense.Put(root, d)
			}
			labels[r][c] = d
		}
	}

	return Labeling{Labels: labels, Count: count}
}

// unionFind keeps, for every provisional label, the smallest label it was
// ever merged with.
type unionFind struct {
	parent *intmap.Map[int, int]
}

func newUnionFind() *unionFind {
	return &unionFind{parent: intmap.New[int, int](64)}
}

func (u *unionFind) add(label int) {
	u.parent.Put(label, label)
}

func (u *unionFind) find(label int) int {
	root := label
	for {
		p, ok := u.parent.Get(root)
		if !ok || p == root {
			break
		}
		root = p
	}
	// Path compression.
	for label != root {
		p, _ := u.parent.Get(label)
		u.parent.Put(label, root)
		label = p
	}
	return root
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if ra < rb {
		u.parent.Put(rb, ra)
	} else {
		u.parent.Put(ra, rb)
	}
}
