package model

import "math/rand"

// Solve searches for a board matching the given hints, row/column
// clues, and required ship multiset. It returns ErrInvalidInput for
// malformed parameters, ErrNoSolution if no board satisfies every
// constraint, and otherwise the solved Board.
func Solve(width, height int, hints []Hint, rowClues, colClues []int, ships ShipMultiset, rng *rand.Rand) (Board, error) {
	if err := validateDimensions(width, height, rowClues, colClues); err != nil {
		return Board{}, err
	}
	if err := validateShipMultiset(width, height, rowClues, ships); err != nil {
		return Board{}, err
	}

	b := newSearchBoard(width, height)

	if err := forceZeroClueLines(b, rowClues, colClues); err != nil {
		if err == errInfeasible {
			return Board{}, ErrNoSolution
		}
		return Board{}, err
	}
	if err := applyHints(b, hints); err != nil {
		if err == errInfeasible {
			return Board{}, ErrNoSolution
		}
		return Board{}, err
	}

	cfg := searchConfig{
		clues: clues{RowClues: rowClues, ColClues: colClues, Ships: ships},
		rng:   rng,
	}

	solved, err := search(b, cfg)
	if err != nil {
		return Board{}, err
	}

	return solved.project(), nil
}

func validateDimensions(width, height int, rowClues, colClues []int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidInput
	}
	if len(rowClues) != height || len(colClues) != width {
		return ErrInvalidInput
	}
	for _, clue := range rowClues {
		if clue < 0 || clue > width {
			return ErrInvalidInput
		}
	}
	for _, clue := range colClues {
		if clue < 0 || clue > height {
			return ErrInvalidInput
		}
	}
	return nil
}

func validateShipMultiset(width, height int, rowClues []int, ships ShipMultiset) error {
	maxLen := width
	if height > maxLen {
		maxLen = height
	}
	for length, count := range ships {
		if length <= 0 || length > maxLen || count < 0 {
			return ErrInvalidInput
		}
	}
	if ships.TotalCells() > width*height {
		return ErrInvalidInput
	}

	if rowClues != nil {
		rowClueTotal := 0
		for _, clue := range rowClues {
			rowClueTotal += clue
		}
		if ships.TotalCells() > rowClueTotal {
			return ErrInvalidInput
		}
	}

	return nil
}

// forceZeroClueLines forces every row or column whose clue is exactly
// zero to Water before the general search starts, so the min-entropy
// driver never spends a branch choice on a cell whose value soft-line
// pruning would reject one step later anyway.
func forceZeroClueLines(b *searchBoard, rowClues, colClues []int) error {
	for y, clue := range rowClues {
		if clue != 0 {
			continue
		}
		for x := 0; x < b.width; x++ {
			if err := forceWaterAndPropagate(b, x, y); err != nil {
				return err
			}
		}
	}
	for x, clue := range colClues {
		if clue != 0 {
			continue
		}
		for y := 0; y < b.height; y++ {
			if err := forceWaterAndPropagate(b, x, y); err != nil {
				return err
			}
		}
	}
	return nil
}

func forceWaterAndPropagate(b *searchBoard, x, y int) error {
	if b.isCollapsed(x, y) {
		return nil
	}
	if err := b.place(x, y, newLabelSet(Water)); err != nil {
		return err
	}
	return propagate(b, Coordinate{X: x, Y: y})
}
