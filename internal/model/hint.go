package model

// HintLabel is the richer, eight-valued alphabet a puzzle is given in.
// It is expanded into canonical-alphabet placements before the search
// starts; no HintLabel value ever appears in search state.
type HintLabel int

const (
	HintWater HintLabel = iota + 1
	HintShipAny
	HintCapLeft
	HintCapUp
	HintCapRight
	HintCapDown
	HintSingle
	HintMiddle
)

// Hint is a single prefilled cell of the puzzle, given in the richer
// hint alphabet.
type Hint struct {
	X, Y  int
	Label HintLabel
}

// placement is one canonical-alphabet constraint produced by expanding
// a Hint: cell (X, Y) is forced to exactly the labels in Set.
type placement struct {
	X, Y int
	Set  labelSet
}

// expandHint turns a single Hint into the placements it implies: the
// segment itself, plus forced water at the neighbours a cap or single
// rules out. A cap name identifies the cardinal neighbour the ship
// continues toward; every other cardinal neighbour is forced to Water.
// Middle forces only the ship segment and constrains no neighbour.
func expandHint(h Hint) []placement {
	switch h.Label {
	case HintWater:
		return []placement{{h.X, h.Y, newLabelSet(Water)}}

	case HintShipAny:
		return []placement{{h.X, h.Y, newLabelSet(ShipH, ShipV)}}

	case HintMiddle:
		return []placement{{h.X, h.Y, newLabelSet(ShipH, ShipV)}}

	case HintSingle:
		out := []placement{{h.X, h.Y, newLabelSet(ShipH, ShipV)}}
		for _, d := range fourDirections {
			out = append(out, placement{h.X + d.DX, h.Y + d.DY, newLabelSet(Water)})
		}
		return out

	case HintCapLeft:
		return capPlacement(h, ShipH, direction{-1, 0}, []direction{{0, -1}, {1, 0}, {0, 1}})

	case HintCapRight:
		return capPlacement(h, ShipH, direction{1, 0}, []direction{{0, -1}, {-1, 0}, {0, 1}})

	case HintCapUp:
		return capPlacement(h, ShipV, direction{0, -1}, []direction{{-1, 0}, {1, 0}, {0, 1}})

	case HintCapDown:
		return capPlacement(h, ShipV, direction{0, 1}, []direction{{-1, 0}, {1, 0}, {0, -1}})

	default:
		return nil
	}
}

// capPlacement builds the placements for a directional cap: the hinted
// cell and the neighbour the ship continues toward are both forced to
// the oriented ship label, and every other cardinal neighbour is
// forced to Water.
func capPlacement(h Hint, oriented Label, continues direction, waterDirs []direction) []placement {
	out := []placement{
		{h.X, h.Y, newLabelSet(oriented)},
		{h.X + continues.DX, h.Y + continues.DY, newLabelSet(oriented)},
	}
	for _, d := range waterDirs {
		out = append(out, placement{h.X + d.DX, h.Y + d.DY, newLabelSet(Water)})
	}
	return out
}

// applyHints expands and applies every hint, then propagates each
// placement's effects. A placement that falls off the board — a cap's
// continuation neighbour or cardinal water cell at the edge — is
// simply vacuous and dropped. Returns ErrInvalidInput if the hint's own
// cell falls outside the board or two hints disagree on the same cell,
// and errInfeasible if the forced placements are jointly unsatisfiable.
func applyHints(b *searchBoard, hints []Hint) error {
	forced := make(map[Coordinate]labelSet)

	for _, h := range hints {
		if !b.inBounds(h.X, h.Y) {
			return ErrInvalidInput
		}
		for _, p := range expandHint(h) {
			if !b.inBounds(p.X, p.Y) {
				continue
			}
			c := Coordinate{X: p.X, Y: p.Y}
			if existing, ok := forced[c]; ok {
				merged := existing.intersect(p.Set)
				if merged.isEmpty() {
					return ErrInvalidInput
				}
				forced[c] = merged
			} else {
				forced[c] = p.Set
			}
		}
	}

	for c, set := range forced {
		if err := b.place(c.X, c.Y, set); err != nil {
			return err
		}
		if err := propagate(b, c); err != nil {
			return err
		}
	}

	return nil
}
