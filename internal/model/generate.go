package model

import "math/rand"

// Generate drives the search on an empty board with no row/column
// clues to synthesize a solved layout, derives row and column clues
// from it, then samples resolution cells and emits them as hints in
// the richer hint alphabet. It retries internally if a synthesis
// attempt yields ErrNoSolution; retries are never observable to the
// caller except as additional random draws from rng.
func Generate(width, height int, ships ShipMultiset, resolution int, rng *rand.Rand) ([]Hint, []int, []int, error) {
	if width <= 0 || height <= 0 {
		return nil, nil, nil, ErrInvalidInput
	}
	if resolution < 0 || resolution > width*height {
		return nil, nil, nil, ErrInvalidInput
	}
	// No row clues exist yet at generation time, so there is nothing to
	// bound the multiset against beyond the board's total cell count.
	if err := validateShipMultiset(width, height, nil, ships); err != nil {
		return nil, nil, nil, err
	}

	cfg := searchConfig{clues: clues{Ships: ships}, rng: rng}

	for attempt := 0; attempt < generateMaxAttempts; attempt++ {
		b := newSearchBoard(width, height)

		solved, err := search(b, cfg)
		if err == ErrNoSolution {
			continue
		}
		if err != nil {
			return nil, nil, nil, err
		}

		rowClues, colClues := deriveClues(solved)
		hints := sampleHints(solved, resolution, rng)
		return hints, rowClues, colClues, nil
	}

	return nil, nil, nil, ErrNoSolution
}

const generateMaxAttempts = 64

func deriveClues(b *searchBoard) (rowClues, colClues []int) {
	rowClues = make([]int, b.height)
	colClues = make([]int, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.accessCell(x, y).labels()[0].IsShip() {
				rowClues[y]++
				colClues[x]++
			}
		}
	}
	return rowClues, colClues
}

// sampleHints picks resolution distinct cells uniformly at random and
// classifies each into the hint alphabet: a water cell becomes a plain
// Water hint; a ship cell with no four-neighbour ship cell becomes
// Single; with exactly one, a directional cap naming that neighbour;
// with two, Middle.
func sampleHints(b *searchBoard, resolution int, rng *rand.Rand) []Hint {
	all := make([]Coordinate, 0, b.width*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			all = append(all, Coordinate{X: x, Y: y})
		}
	}
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

	if resolution > len(all) {
		resolution = len(all)
	}

	hints := make([]Hint, 0, resolution)
	for _, c := range all[:resolution] {
		hints = append(hints, Hint{X: c.X, Y: c.Y, Label: classifyCell(b, c)})
	}
	return hints
}

func classifyCell(b *searchBoard, c Coordinate) HintLabel {
	if !b.accessCell(c.X, c.Y).labels()[0].IsShip() {
		return HintWater
	}

	var neighbours []direction
	for _, d := range fourDirections {
		nx, ny := c.X+d.DX, c.Y+d.DY
		if !b.inBounds(nx, ny) {
			continue
		}
		if b.accessCell(nx, ny).labels()[0].IsShip() {
			neighbours = append(neighbours, d)
		}
	}

	switch len(neighbours) {
	case 0:
		return HintSingle
	case 1:
		return capLabelFor(neighbours[0])
	default:
		return HintMiddle
	}
}

// capLabelFor returns the cap hint naming the direction of a ship
// cell's sole known ship neighbour.
func capLabelFor(d direction) HintLabel {
	switch d {
	case direction{-1, 0}:
		return HintCapLeft
	case direction{1, 0}:
		return HintCapRight
	case direction{0, -1}:
		return HintCapUp
	default:
		return HintCapDown
	}
}
