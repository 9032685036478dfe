package model_test

import (
	"math/rand"
	"testing"

	m "github.com/foglight/battlesolitaire/internal/model"
)

func TestSolveHonoursWaterHint(t *testing.T) {
	t.Parallel()

	hints := []m.Hint{{X: 0, Y: 0, Label: m.HintWater}}
	got, err := m.Solve(1, 1, hints, []int{0}, []int{0}, m.ShipMultiset{}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Solve() unexpected error: %v", err)
	}
	if got.At(0, 0) != m.ProjectedWater {
		t.Errorf("Solve() cell (0,0) = %v, want Water", got.At(0, 0))
	}
}

func TestSolveHonoursSingleHint(t *testing.T) {
	t.Parallel()

	hints := []m.Hint{{X: 1, Y: 1, Label: m.HintSingle}}
	got, err := m.Solve(3, 3, hints, []int{0, 1, 0}, []int{0, 1, 0}, m.ShipMultiset{1: 1}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Solve() unexpected error: %v", err)
	}
	if got.At(1, 1) != m.ProjectedShip {
		t.Fatalf("Solve() cell (1,1) = %v, want Ship", got.At(1, 1))
	}
	for _, c := range []m.Coordinate{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}} {
		if got.At(c.X, c.Y) != m.ProjectedWater {
			t.Errorf("Solve() cell %v = %v, want Water around a Single hint", c, got.At(c.X, c.Y))
		}
	}
}

func TestSolveRejectsContradictoryHints(t *testing.T) {
	t.Parallel()

	hints := []m.Hint{
		{X: 0, Y: 0, Label: m.HintWater},
		{X: 0, Y: 0, Label: m.HintShipAny},
	}
	_, err := m.Solve(1, 1, hints, []int{0}, []int{0}, m.ShipMultiset{}, rand.New(rand.NewSource(1)))
	if err != m.ErrInvalidInput {
		t.Fatalf("Solve() error = %v, want ErrInvalidInput", err)
	}
}

func TestSolveRejectsHintOutsideBoard(t *testing.T) {
	t.Parallel()

	hints := []m.Hint{{X: 5, Y: 5, Label: m.HintWater}}
	_, err := m.Solve(2, 2, hints, []int{0, 0}, []int{0, 0}, m.ShipMultiset{}, rand.New(rand.NewSource(1)))
	if err != m.ErrInvalidInput {
		t.Fatalf("Solve() error = %v, want ErrInvalidInput", err)
	}
}
