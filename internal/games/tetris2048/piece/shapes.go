package piece

import (
	"fmt"
	"strings"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	I Kind = iota
	O
	Z
	L
	J
	S
	T
)

var kindNames = [...]string{"I", "O", "Z", "L", "J", "S", "T"}

// Kinds returns every shape kind in spawn-table order.
func Kinds() []Kind {
	return []Kind{I, O, Z, L, J, S, T}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts a shape letter (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("piece: unknown kind %q", s)
}

// cell is a template position inside the shape's n×n box. Row 0 is the
// top of the box.
type cell struct{ col, row int }

type shape struct {
	size  int // box edge
	cells []cell
}

// Tile order matters: rotation offsets address tiles by index.
var shapes = map[Kind]shape{
	I: {size: 4, cells: []cell{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
	O: {size: 2, cells: []cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	Z: {size: 3, cells: []cell{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	L: {size: 3, cells: []cell{{0, 0}, {2, 0}, {1, 0}, {0, 1}}},
	J: {size: 3, cells: []cell{{0, 0}, {2, 0}, {1, 0}, {2, 1}}},
	S: {size: 3, cells: []cell{{0, 1}, {2, 0}, {1, 0}, {1, 1}}},
	T: {size: 3, cells: []cell{{0, 0}, {2, 0}, {1, 0}, {1, 1}}},
}

// Size returns the edge of the kind's bounding box.
func (k Kind) Size() int {
	return shapes[k].size
}

// TileCount returns the number of tiles in the kind's template.
func (k Kind) TileCount() int {
	return len(shapes[k].cells)
}
