package model

import "math/rand"

// searchConfig bundles the inputs a search tree needs at every node:
// the target clues/multiset and the random source driving tie-breaks
// and candidate order.
type searchConfig struct {
	clues clues
	rng   *rand.Rand
}

// search performs the wave-function-collapse backtracking loop: pick a
// minimum-entropy cell, try its candidate labels in random order,
// propagate, prune with the soft predicate, and recurse. It returns
// ErrNoSolution once every candidate at every level has been exhausted.
func search(b *searchBoard, cfg searchConfig) (*searchBoard, error) {
	cell, ok := minEntropyCell(b, cfg.rng)
	if !ok {
		if hardPredicate(b, cfg.clues) {
			return b, nil
		}
		return nil, ErrNoSolution
	}

	candidates := b.accessCell(cell.X, cell.Y).labels()
	cfg.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, label := range candidates {
		branch := b.clone()

		if err := branch.place(cell.X, cell.Y, newLabelSet(label)); err != nil {
			if err == errInfeasible {
				continue
			}
			return nil, err
		}
		if err := propagate(branch, cell); err != nil {
			if err == errInfeasible {
				continue
			}
			return nil, err
		}
		if !softPredicate(branch, cfg.clues) {
			continue
		}

		solved, err := search(branch, cfg)
		switch {
		case err == nil:
			return solved, nil
		case err == ErrNoSolution:
			continue
		default:
			return nil, err
		}
	}

	return nil, ErrNoSolution
}

// minEntropyCell returns an uncollapsed cell of minimum superposition
// cardinality, chosen uniformly at random among all cells tied for the
// minimum. The second return is false once every cell is collapsed.
func minEntropyCell(b *searchBoard, rng *rand.Rand) (Coordinate, bool) {
	best := 0
	var minima []Coordinate

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			card := b.accessCell(x, y).cardinality()
			if card <= 1 {
				continue
			}
			switch {
			case best == 0 || card < best:
				best = card
				minima = []Coordinate{{X: x, Y: y}}
			case card == best:
				minima = append(minima, Coordinate{X: x, Y: y})
			}
		}
	}

	if len(minima) == 0 {
		return Coordinate{}, false
	}
	return minima[rng.Intn(len(minima))], true
}
