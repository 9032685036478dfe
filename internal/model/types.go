// Package model implements the constraint-propagation engine that solves
// and generates Battleship Solitaire puzzles: a wave-function-collapse
// search over a per-cell superposition grid, constrained by row/column
// clues and a required multiset of ship lengths.
package model

// Label is a tile of the canonical alphabet used inside the search.
// A richer alphabet exists only at the hint boundary (see HintLabel).
type Label int

// Canonical alphabet. ShipH and ShipV both project to Ship externally;
// the distinction exists only so the grammar can forbid a horizontal
// run from touching another ship vertically.
const (
	Water Label = iota
	ShipH
	ShipV
)

// String renders a Label for debugging and test failure messages.
func (l Label) String() string {
	switch l {
	case Water:
		return "Water"
	case ShipH:
		return "ShipH"
	case ShipV:
		return "ShipV"
	default:
		return "Unknown"
	}
}

// IsShip reports whether the label denotes any ship orientation.
func (l Label) IsShip() bool {
	return l == ShipH || l == ShipV
}

// ProjectedLabel is the external, two-valued alphabet a solved board is
// reported in.
type ProjectedLabel int

// Possible ProjectedLabel values.
const (
	ProjectedWater ProjectedLabel = iota
	ProjectedShip
)

// String renders a ProjectedLabel for debugging and rendering.
func (p ProjectedLabel) String() string {
	if p == ProjectedShip {
		return "Ship"
	}
	return "Water"
}

// Coordinate represents a 2D point on the puzzle grid (X=column, Y=row).
type Coordinate struct {
	X, Y int
}

// direction is one of the eight unit offsets used by the grammar and
// propagator.
type direction struct {
	DX, DY int
}

var eightDirections = [8]direction{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

var fourDirections = [4]direction{
	{0, -1}, {0, 1}, {1, 0}, {-1, 0},
}

func (d direction) isDiagonal() bool {
	return d.DX != 0 && d.DY != 0
}

// ShipMultiset maps a ship length to the number of ship instances of
// that length a valid board must contain.
type ShipMultiset map[int]int

// Clone returns an independent copy of the multiset.
func (s ShipMultiset) Clone() ShipMultiset {
	out := make(ShipMultiset, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// TotalCells returns the total number of ship cells the multiset requires.
func (s ShipMultiset) TotalCells() int {
	total := 0
	for length, count := range s {
		total += length * count
	}
	return total
}

// Board is a fully or partially collapsed puzzle grid, projected to the
// external two-valued alphabet. Grid is indexed [y][x].
type Board struct {
	Width, Height int
	Grid          [][]ProjectedLabel
}

// At returns the projected label at (x, y).
func (b Board) At(x, y int) ProjectedLabel {
	return b.Grid[y][x]
}
