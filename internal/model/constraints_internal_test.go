package model

import "testing"

func TestSoftLinesToleratesIncompleteRows(t *testing.T) {
	t.Parallel()

	b := newSearchBoard(2, 1)
	if err := b.place(0, 0, newLabelSet(ShipH)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	c := clues{RowClues: []int{2}, ColClues: []int{1, 1}}
	if !softLines(b, c) {
		t.Errorf("softLines() = false, want true for a still-completable row")
	}
}

func TestSoftLinesRejectsOverCommittedRow(t *testing.T) {
	t.Parallel()

	b := newSearchBoard(2, 1)
	if err := b.place(0, 0, newLabelSet(ShipH)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	if err := b.place(1, 0, newLabelSet(Water)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	c := clues{RowClues: []int{2}, ColClues: []int{1, 1}}
	if softLines(b, c) {
		t.Errorf("softLines() = true, want false: row can never reach clue 2")
	}
}

func TestHardLinesRequiresNoUncollapsedCells(t *testing.T) {
	t.Parallel()

	b := newSearchBoard(2, 1)
	if err := b.place(0, 0, newLabelSet(ShipH)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	c := clues{RowClues: []int{1}, ColClues: []int{1, 0}}
	if hardLines(b, c) {
		t.Errorf("hardLines() = true, want false while a cell is still uncollapsed")
	}
	if err := b.place(1, 0, newLabelSet(Water)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	if !hardLines(b, c) {
		t.Errorf("hardLines() = false, want true on a fully collapsed matching board")
	}
}

func TestSoftShipLengthsRejectsExcess(t *testing.T) {
	t.Parallel()

	b := newSearchBoard(3, 1)
	if err := b.place(0, 0, newLabelSet(ShipH)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	if err := b.place(2, 0, newLabelSet(ShipH)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	ships := ShipMultiset{1: 0}
	if softShipLengths(b, ships) {
		t.Errorf("softShipLengths() = true, want false: two length-1 ships exceed target of 0")
	}
}

func TestSoftShipLengthsAllowsDeficit(t *testing.T) {
	t.Parallel()

	b := newSearchBoard(3, 1)
	if err := b.place(0, 0, newLabelSet(ShipH)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	ships := ShipMultiset{1: 2}
	if !softShipLengths(b, ships) {
		t.Errorf("softShipLengths() = false, want true: only one of two required length-1 ships placed so far")
	}
}

func TestHardShipLengthsRequiresExactHistogram(t *testing.T) {
	t.Parallel()

	b := newSearchBoard(3, 1)
	if err := b.place(0, 0, newLabelSet(ShipH)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	if hardShipLengths(b, ShipMultiset{1: 2}) {
		t.Errorf("hardShipLengths() = true, want false: only one length-1 ship placed")
	}
	if err := b.place(2, 0, newLabelSet(ShipH)); err != nil {
		t.Fatalf("place() unexpected error: %v", err)
	}
	if !hardShipLengths(b, ShipMultiset{1: 2}) {
		t.Errorf("hardShipLengths() = false, want true: two length-1 ships now match")
	}
}
