package model

// clues carries the puzzle's row/column requirements and required ship
// multiset into the predicate functions. A nil RowClues/ColClues slice
// (used while generating a board with no target clues yet) makes the
// corresponding row/column predicate vacuously true.
type clues struct {
	RowClues []int
	ColClues []int
	Ships    ShipMultiset
}

// lineCounts returns, for one row or column, the number of cells
// collapsed to a ship label (k) and the number of still-uncollapsed
// cells whose superposition still contains a ship label (u).
func lineCounts(cellsInLine []labelSet) (k, u int) {
	for _, c := range cellsInLine {
		containsShip := c.has(ShipH) || c.has(ShipV)
		switch {
		case c.cardinality() == 1 && containsShip:
			k++
		case c.cardinality() > 1 && containsShip:
			u++
		}
	}
	return k, u
}

func rowCells(b *searchBoard, y int) []labelSet {
	out := make([]labelSet, b.width)
	for x := 0; x < b.width; x++ {
		out[x] = b.accessCell(x, y)
	}
	return out
}

func colCells(b *searchBoard, x int) []labelSet {
	out := make([]labelSet, b.height)
	for y := 0; y < b.height; y++ {
		out[y] = b.accessCell(x, y)
	}
	return out
}

// softLines checks that for every row and column whose clue is known,
// k <= clue <= k+u: the partial board is still completable.
func softLines(b *searchBoard, c clues) bool {
	if c.RowClues != nil {
		for y, clue := range c.RowClues {
			k, u := lineCounts(rowCells(b, y))
			if !(k <= clue && k+u >= clue) {
				return false
			}
		}
	}
	if c.ColClues != nil {
		for x, clue := range c.ColClues {
			k, u := lineCounts(colCells(b, x))
			if !(k <= clue && k+u >= clue) {
				return false
			}
		}
	}
	return true
}

// hardLines checks that every row and column exactly matches its clue
// with no uncollapsed cells left — only meaningful on a fully collapsed
// board.
func hardLines(b *searchBoard, c clues) bool {
	if c.RowClues != nil {
		for y, clue := range c.RowClues {
			k, u := lineCounts(rowCells(b, y))
			if !(k == clue && u == 0) {
				return false
			}
		}
	}
	if c.ColClues != nil {
		for x, clue := range c.ColClues {
			k, u := lineCounts(colCells(b, x))
			if !(k == clue && u == 0) {
				return false
			}
		}
	}
	return true
}

// softShipLengths is a cheap prune: walking required lengths from
// longest to shortest, the walk accepts at the first length that is
// absent from the current histogram (nothing committed yet) or short of
// its count (more may still be placed), continues past an exact match,
// and rejects at the first length with an excess. Lengths after the
// point where the walk accepts, and lengths outside the multiset, are
// not checked. This deliberately under-constrains — it tolerates
// histograms that will eventually over-supply short ships — and is
// compensated for by the hard predicate at search leaves.
func softShipLengths(b *searchBoard, ships ShipMultiset) bool {
	hist := b.shipHistogram()
	for _, length := range descendingKeys(ships) {
		have, ok := hist[length]
		if !ok {
			return true
		}
		want := ships[length]
		if have != want {
			return have < want
		}
	}
	return true
}

// hardShipLengths requires the histogram to match the required
// multiset exactly.
func hardShipLengths(b *searchBoard, ships ShipMultiset) bool {
	hist := b.shipHistogram()
	if len(hist) != len(ships) {
		return false
	}
	for length, want := range ships {
		if hist[length] != want {
			return false
		}
	}
	return true
}

func descendingKeys(ships ShipMultiset) []int {
	keys := make([]int, 0, len(ships))
	for k := range ships {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] < keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// softPredicate is the conservative feasibility test used to prune
// partial boards during search: soft row ∧ soft col ∧ soft ships.
func softPredicate(b *searchBoard, c clues) bool {
	return softLines(b, c) && softShipLengths(b, c.Ships)
}

// hardPredicate is the validity test evaluated only on a fully
// collapsed board: hard row ∧ hard col ∧ hard ships.
func hardPredicate(b *searchBoard, c clues) bool {
	return hardLines(b, c) && hardShipLengths(b, c.Ships)
}
