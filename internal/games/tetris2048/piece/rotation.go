package piece

// Offset moves one tile of a piece during a rotation.
type Offset struct {
	Tile   int // index into the piece's tiles
	DX, DY int
}

// rotations[kind][o-1] holds the moves applied when leaving orientation o.
// Tiles not listed stay in place and act as the pivot.
var rotations = map[Kind][4][]Offset{
	I: {
		{{0, 0, -1}, {1, 1, 0}, {2, 2, 1}, {3, 3, 2}},
		{{0, 1, -2}, {1, 0, -1}, {2, -1, 0}, {3, -2, 1}},
		{{0, 2, 2}, {1, 1, 1}, {2, 0, 0}, {3, -1, -1}},
		{{0, -3, 1}, {1, -2, 0}, {2, -1, -1}, {3, 0, -2}},
	},
	O: {
		{{0, 1, 0}, {1, 0, -1}, {2, 0, 1}, {3, -1, 0}},
		{{0, 0, -1}, {1, -1, 0}, {2, 1, 0}, {3, 0, 1}},
		{{0, -1, 0}, {1, 0, 1}, {2, 0, -1}, {3, 1, 0}},
		{{0, 0, 1}, {1, 1, 0}, {2, -1, 0}, {3, 0, -1}},
	},
	Z: {
		{{0, 2, 0}, {1, 1, -1}, {3, -1, -1}},
		{{0, 0, -2}, {1, -1, -1}, {3, -1, 1}},
		{{0, -2, 0}, {1, -1, 1}, {3, 1, 1}},
		{{0, 0, 2}, {1, 1, 1}, {3, 1, -1}},
	},
	S: {
		{{2, 1, -1}, {1, 0, -2}, {0, 1, 1}},
		{{2, -1, -1}, {1, -2, 0}, {0, 1, -1}},
		{{2, -1, 1}, {1, 0, 2}, {0, -1, -1}},
		{{2, 1, 1}, {1, 2, 0}, {0, -1, 1}},
	},
	L: {
		{{0, 1, -1}, {2, 0, -2}, {1, -1, -3}},
		{{0, -1, -1}, {2, -2, 0}, {1, -3, 1}},
		{{0, -1, 1}, {2, 0, 2}, {1, 1, 3}},
		{{0, 1, 1}, {2, 2, 0}, {1, 3, -1}},
	},
	J: {
		{{0, 3, 1}, {2, 2, 0}, {1, 1, -1}},
		{{0, 1, -3}, {2, 0, -2}, {1, -1, -1}},
		{{0, -3, -1}, {2, -2, 0}, {1, -1, 1}},
		{{0, -1, 3}, {2, 0, 2}, {1, 1, 1}},
	},
	T: {
		{{0, 2, 0}, {2, 1, -1}, {1, 0, -2}},
		{{0, 0, -2}, {2, -1, -1}, {1, -2, 0}},
		{{0, -2, 0}, {2, -1, 1}, {1, 0, 2}},
		{{0, 0, 2}, {2, 1, 1}, {1, 2, 0}},
	},
}

// RotationOffsets returns the tile moves for rotating a piece of the given
// kind out of orientation from (1..4). It returns nil for unknown input.
func RotationOffsets(kind Kind, from int) []Offset {
	table, ok := rotations[kind]
	if !ok || from < 1 || from > 4 {
		return nil
	}
	return table[from-1]
}

// nextOrientation cycles 1 -> 2 -> 3 -> 4 -> 1.
func nextOrientation(o int) int {
	return o%4 + 1
}
