package model

import "testing"

func TestLabelSetBasics(t *testing.T) {
	t.Parallel()

	s := newLabelSet(Water, ShipH)
	if !s.has(Water) || !s.has(ShipH) || s.has(ShipV) {
		t.Fatalf("newLabelSet(Water, ShipH) has = %v", s.labels())
	}
	if s.cardinality() != 2 {
		t.Errorf("cardinality() = %d, want 2", s.cardinality())
	}
	if s.isEmpty() {
		t.Errorf("isEmpty() = true for a non-empty set")
	}

	var zero labelSet
	if !zero.isEmpty() {
		t.Errorf("isEmpty() = false for the zero value")
	}

	intersected := s.intersect(newLabelSet(ShipH, ShipV))
	if intersected != newLabelSet(ShipH) {
		t.Errorf("intersect() = %v, want {ShipH}", intersected.labels())
	}
}

func TestShipGrammarForbidsTouching(t *testing.T) {
	t.Parallel()

	for _, d := range eightDirections {
		allowed := shipGrammar.allowedAt(newLabelSet(ShipH), d)
		if d.isDiagonal() || (d.DX == 0) {
			if allowed.has(ShipH) || allowed.has(ShipV) {
				t.Errorf("ShipH at %+v allows %v, want Water only", d, allowed.labels())
			}
		}
	}
	for _, d := range eightDirections {
		allowed := shipGrammar.allowedAt(newLabelSet(ShipV), d)
		if d.isDiagonal() || (d.DY == 0) {
			if allowed.has(ShipH) || allowed.has(ShipV) {
				t.Errorf("ShipV at %+v allows %v, want Water only", d, allowed.labels())
			}
		}
	}
}

func TestShipGrammarAllowsCollinearExtension(t *testing.T) {
	t.Parallel()

	east := direction{1, 0}
	allowed := shipGrammar.allowedAt(newLabelSet(ShipH), east)
	if !allowed.has(ShipH) || !allowed.has(Water) || allowed.has(ShipV) {
		t.Errorf("ShipH east allows %v, want {Water, ShipH}", allowed.labels())
	}

	south := direction{0, 1}
	allowedV := shipGrammar.allowedAt(newLabelSet(ShipV), south)
	if !allowedV.has(ShipV) || !allowedV.has(Water) || allowedV.has(ShipH) {
		t.Errorf("ShipV south allows %v, want {Water, ShipV}", allowedV.labels())
	}
}

func TestWaterImposesNoConstraint(t *testing.T) {
	t.Parallel()

	for _, d := range eightDirections {
		allowed := shipGrammar.allowedAt(newLabelSet(Water), d)
		if allowed != fullLabelSet {
			t.Errorf("Water at %+v allows %v, want the full alphabet", d, allowed.labels())
		}
	}
}
