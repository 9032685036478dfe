package model

import (
	"math/rand"
	"testing"
)

func TestMinEntropyCellPicksSmallestSuperposition(t *testing.T) {
	t.Parallel()

	b := newSearchBoard(2, 1)
	if err := b.place(0, 0, newLabelSet(Water, ShipH)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	// (1,0) keeps the full three-label superposition; (0,0) has two.
	c, ok := minEntropyCell(b, rand.New(rand.NewSource(1)))
	if !ok {
		t.Fatalf("minEntropyCell() found nothing, want (0,0)")
	}
	if c != (Coordinate{X: 0, Y: 0}) {
		t.Errorf("minEntropyCell() = %v, want (0,0)", c)
	}
}

func TestMinEntropyCellReportsNoneWhenFullyCollapsed(t *testing.T) {
	t.Parallel()

	b := newSearchBoard(1, 1)
	if err := b.place(0, 0, newLabelSet(Water)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	if _, ok := minEntropyCell(b, rand.New(rand.NewSource(1))); ok {
		t.Errorf("minEntropyCell() found a cell on a fully collapsed board")
	}
}

func TestSearchAcceptsAlreadyCollapsedValidBoard(t *testing.T) {
	t.Parallel()

	b := newSearchBoard(1, 1)
	if err := b.place(0, 0, newLabelSet(Water)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	cfg := searchConfig{clues: clues{RowClues: []int{0}, ColClues: []int{0}, Ships: ShipMultiset{}}, rng: rand.New(rand.NewSource(1))}
	solved, err := search(b, cfg)
	if err != nil {
		t.Fatalf("search() unexpected error: %v", err)
	}
	if solved.accessCell(0, 0) != newLabelSet(Water) {
		t.Errorf("search() returned a board with cell (0,0) = %v, want Water", solved.accessCell(0, 0).labels())
	}
}

func TestSearchReturnsNoSolutionWhenUnsatisfiable(t *testing.T) {
	t.Parallel()

	b := newSearchBoard(1, 1)
	if err := b.place(0, 0, newLabelSet(Water)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	cfg := searchConfig{clues: clues{RowClues: []int{1}, ColClues: []int{1}, Ships: ShipMultiset{1: 1}}, rng: rand.New(rand.NewSource(1))}
	if _, err := search(b, cfg); err != ErrNoSolution {
		t.Fatalf("search() error = %v, want ErrNoSolution", err)
	}
}
