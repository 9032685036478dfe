package model

// grammar lists, for a label and a unit offset, the set of labels
// permitted at the neighbouring cell. It is immutable and shared by
// every board in a search tree, so it needs no locking.
type grammar map[Label]map[direction]labelSet

// labelSet is a small fixed-alphabet set, implemented as a bitmask over
// the three canonical labels so intersection and union are O(1).
type labelSet uint8

func newLabelSet(labels ...Label) labelSet {
	var s labelSet
	for _, l := range labels {
		s |= 1 << uint(l)
	}
	return s
}

func (s labelSet) has(l Label) bool              { return s&(1<<uint(l)) != 0 }
func (s labelSet) union(o labelSet) labelSet      { return s | o }
func (s labelSet) intersect(o labelSet) labelSet  { return s & o }
func (s labelSet) isEmpty() bool                  { return s == 0 }
func (s labelSet) cardinality() int {
	n := 0
	for l := Label(0); l < 3; l++ {
		if s.has(l) {
			n++
		}
	}
	return n
}

func (s labelSet) labels() []Label {
	out := make([]Label, 0, 3)
	for l := Label(0); l < 3; l++ {
		if s.has(l) {
			out = append(out, l)
		}
	}
	return out
}

var fullLabelSet = newLabelSet(Water, ShipH, ShipV)

// shipGrammar is the static adjacency table: water imposes no
// constraint; a horizontal ship segment forbids any vertical or
// diagonal neighbour from being a ship, and only allows another
// horizontal segment (or water) to its left/right; the vertical case
// is the mirror image. This is what makes ships straight and forbids
// any two ships from touching, even at a corner.
var shipGrammar = buildGrammar()

func buildGrammar() grammar {
	g := make(grammar, 3)

	waterRules := make(map[direction]labelSet, 8)
	for _, d := range eightDirections {
		waterRules[d] = fullLabelSet
	}
	g[Water] = waterRules

	horRules := make(map[direction]labelSet, 8)
	for _, d := range eightDirections {
		switch {
		case d.DY != 0 && d.DX == 0:
			horRules[d] = newLabelSet(Water)
		case d.isDiagonal():
			horRules[d] = newLabelSet(Water)
		default:
			horRules[d] = newLabelSet(Water, ShipH)
		}
	}
	g[ShipH] = horRules

	verRules := make(map[direction]labelSet, 8)
	for _, d := range eightDirections {
		switch {
		case d.DX != 0 && d.DY == 0:
			verRules[d] = newLabelSet(Water)
		case d.isDiagonal():
			verRules[d] = newLabelSet(Water)
		default:
			verRules[d] = newLabelSet(Water, ShipV)
		}
	}
	g[ShipV] = verRules

	return g
}

// allowedAt returns the union, over every label still live in source,
// of what the grammar permits at the neighbour offset d.
func (g grammar) allowedAt(source labelSet, d direction) labelSet {
	var allowed labelSet
	for _, l := range source.labels() {
		allowed = allowed.union(g[l][d])
	}
	return allowed
}
