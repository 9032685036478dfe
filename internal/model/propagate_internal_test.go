package model

import "testing"

func TestPropagateNarrowsDiagonalNeighboursToWater(t *testing.T) {
	t.Parallel()

	b := newSearchBoard(3, 3)
	if err := b.place(1, 1, newLabelSet(ShipH)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	if err := propagate(b, Coordinate{X: 1, Y: 1}); err != nil {
		t.Fatalf("propagate() unexpected error: %v", err)
	}

	for _, c := range []Coordinate{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
		if got := b.accessCell(c.X, c.Y); got != newLabelSet(Water) {
			t.Errorf("corner %v = %v, want {Water} after propagating a horizontal ship", c, got.labels())
		}
	}
	for _, c := range []Coordinate{{1, 0}, {1, 2}} {
		if got := b.accessCell(c.X, c.Y); got != newLabelSet(Water) {
			t.Errorf("vertical neighbour %v = %v, want {Water}", c, got.labels())
		}
	}
	east := b.accessCell(2, 1)
	if !east.has(Water) || !east.has(ShipH) || east.has(ShipV) {
		t.Errorf("east neighbour = %v, want {Water, ShipH}", east.labels())
	}
}

func TestPropagateSignalsInfeasibleOnContradiction(t *testing.T) {
	t.Parallel()

	// (1,1) is forced to some ship orientation (as a Middle/ShipAny hint
	// would), but it sits diagonally from a collapsed ShipH cell, which
	// permits only Water on its diagonals — the two requirements share
	// no label, so propagation must detect an empty superposition.
	b := newSearchBoard(3, 3)
	if err := b.place(0, 0, newLabelSet(ShipH)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	if err := b.place(1, 1, newLabelSet(ShipH, ShipV)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	if err := propagate(b, Coordinate{X: 0, Y: 0}); err != errInfeasible {
		t.Fatalf("propagate() error = %v, want errInfeasible", err)
	}
}
