package model

// Ship instances are tracked in a flat, integer-id-indexed table rather
// than as a pointer graph shared across cells, so that cloning a board
// for a search branch is a plain deep copy with no aliasing to worry
// about.

// shipInstance is a single contiguous, axis-aligned run of ship cells.
type shipInstance struct {
	ID    int
	Cells []Coordinate // in positional order along the ship's axis
}

// Length returns the number of cells the ship instance occupies.
func (s *shipInstance) Length() int { return len(s.Cells) }

// searchBoard is the mutable working state of one search-tree node: a
// width×height grid of superpositions plus the ship-instance side table.
// A searchBoard is owned exclusively by the frame that created it;
// recursion clones it so a failed branch discards its mutations.
type searchBoard struct {
	width, height int
	cells         [][]labelSet
	shipID        [][]int // -1 when the cell is not a collapsed ship cell
	ships         map[int]*shipInstance
	nextShipID    int
}

func newSearchBoard(width, height int) *searchBoard {
	cells := make([][]labelSet, height)
	shipID := make([][]int, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]labelSet, width)
		shipID[y] = make([]int, width)
		for x := 0; x < width; x++ {
			cells[y][x] = fullLabelSet
			shipID[y][x] = -1
		}
	}
	return &searchBoard{
		width:  width,
		height: height,
		cells:  cells,
		shipID: shipID,
		ships:  make(map[int]*shipInstance),
	}
}

// clone returns an independent deep copy; the original is left untouched.
func (b *searchBoard) clone() *searchBoard {
	out := &searchBoard{
		width:      b.width,
		height:     b.height,
		cells:      make([][]labelSet, b.height),
		shipID:     make([][]int, b.height),
		ships:      make(map[int]*shipInstance, len(b.ships)),
		nextShipID: b.nextShipID,
	}
	for y := 0; y < b.height; y++ {
		out.cells[y] = append([]labelSet(nil), b.cells[y]...)
		out.shipID[y] = append([]int(nil), b.shipID[y]...)
	}
	for id, ship := range b.ships {
		out.ships[id] = &shipInstance{ID: ship.ID, Cells: append([]Coordinate(nil), ship.Cells...)}
	}
	return out
}

func (b *searchBoard) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// accessCell returns the current superposition at (x, y).
func (b *searchBoard) accessCell(x, y int) labelSet {
	return b.cells[y][x]
}

// accessShip returns the ship instance a collapsed ship cell belongs to,
// or nil if the cell is not a collapsed ship cell.
func (b *searchBoard) accessShip(x, y int) *shipInstance {
	id := b.shipID[y][x]
	if id < 0 {
		return nil
	}
	return b.ships[id]
}

func (b *searchBoard) isCollapsed(x, y int) bool {
	return b.cells[y][x].cardinality() == 1
}

// place narrows the superposition at (x, y) to s. When s collapses to a
// single ship label it also updates the ship-instance table: zero ship
// neighbours starts a new instance, one extends it, two merge through
// it, and more than two is an engine bug.
func (b *searchBoard) place(x, y int, s labelSet) error {
	if s.isEmpty() {
		return errInfeasible
	}
	b.cells[y][x] = s

	if s.cardinality() != 1 || !s.labels()[0].IsShip() {
		return nil
	}

	return b.bindShip(x, y)
}

func (b *searchBoard) bindShip(x, y int) error {
	type neighbour struct {
		x, y int
		id   int
	}
	var neighbours []neighbour
	for _, d := range fourDirections {
		nx, ny := x+d.DX, y+d.DY
		if !b.inBounds(nx, ny) {
			continue
		}
		if id := b.shipID[ny][nx]; id >= 0 {
			neighbours = append(neighbours, neighbour{nx, ny, id})
		}
	}

	switch len(neighbours) {
	case 0:
		id := b.nextShipID
		b.nextShipID++
		b.ships[id] = &shipInstance{ID: id, Cells: []Coordinate{{X: x, Y: y}}}
		b.shipID[y][x] = id
		return nil

	case 1:
		ship := b.ships[neighbours[0].id]
		ship.Cells = appendInOrder(ship.Cells, Coordinate{X: x, Y: y})
		b.shipID[y][x] = ship.ID
		return nil

	case 2:
		a, c := neighbours[0], neighbours[1]
		if a.x != c.x && a.y != c.y {
			return ErrInvariantViolated
		}
		shipA, shipC := b.ships[a.id], b.ships[c.id]
		merged := mergeCollinear(shipA, shipC, Coordinate{X: x, Y: y}, a.id)
		b.shipID[y][x] = shipA.ID
		for _, cell := range merged.Cells {
			b.shipID[cell.Y][cell.X] = shipA.ID
		}
		b.ships[shipA.ID] = merged
		delete(b.ships, shipC.ID)
		return nil

	default:
		return ErrInvariantViolated
	}
}

// appendInOrder inserts c into a contiguous axis-aligned run, keeping
// the slice ordered along its axis (c is always adjacent to one end).
func appendInOrder(cells []Coordinate, c Coordinate) []Coordinate {
	first := cells[0]
	if adjacent(c, first) {
		return append([]Coordinate{c}, cells...)
	}
	return append(cells, c)
}

func adjacent(a, b Coordinate) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// mergeCollinear joins two ship instances through the newly placed cell
// between them; the merged cells run in ascending positional order.
func mergeCollinear(a, c *shipInstance, middle Coordinate, keepID int) *shipInstance {
	left, right := a.Cells, c.Cells
	if left[0].X > middle.X || left[0].Y > middle.Y {
		left, right = right, left
	}
	if !adjacent(left[len(left)-1], middle) {
		left = reverseCoords(left)
	}
	if !adjacent(right[0], middle) {
		right = reverseCoords(right)
	}
	merged := make([]Coordinate, 0, len(left)+1+len(right))
	merged = append(merged, left...)
	merged = append(merged, middle)
	merged = append(merged, right...)
	return &shipInstance{ID: keepID, Cells: merged}
}

func reverseCoords(cs []Coordinate) []Coordinate {
	out := make([]Coordinate, len(cs))
	for i, c := range cs {
		out[len(cs)-1-i] = c
	}
	return out
}

// shipHistogram computes, for each distinct ship instance currently on
// the board, a count keyed by its length.
func (b *searchBoard) shipHistogram() map[int]int {
	hist := make(map[int]int)
	for _, ship := range b.ships {
		hist[ship.Length()]++
	}
	return hist
}

// project converts a fully collapsed searchBoard to the external,
// two-valued Board representation.
func (b *searchBoard) project() Board {
	grid := make([][]ProjectedLabel, b.height)
	for y := 0; y < b.height; y++ {
		grid[y] = make([]ProjectedLabel, b.width)
		for x := 0; x < b.width; x++ {
			if b.cells[y][x].labels()[0].IsShip() {
				grid[y][x] = ProjectedShip
			} else {
				grid[y][x] = ProjectedWater
			}
		}
	}
	return Board{Width: b.width, Height: b.height, Grid: grid}
}
