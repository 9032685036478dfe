package model

// propagate restores local arc-consistency in the eight-neighbour
// closure of origin, transitively. It returns errInfeasible the moment
// any cell's superposition becomes empty; the search driver treats that
// as an ordinary branch prune, never as ErrInvariantViolated — an empty
// superposition during propagation of a tentative choice is expected
// and routine.
func propagate(b *searchBoard, origin Coordinate) error {
	dirty := []Coordinate{origin}
	inQueue := map[Coordinate]bool{origin: true}

	for len(dirty) > 0 {
		p := dirty[0]
		dirty = dirty[1:]
		delete(inQueue, p)

		source := b.accessCell(p.X, p.Y)

		for _, d := range eightDirections {
			nx, ny := p.X+d.DX, p.Y+d.DY
			if !b.inBounds(nx, ny) {
				continue
			}
			if b.isCollapsed(nx, ny) {
				continue
			}

			current := b.accessCell(nx, ny)
			allowed := shipGrammar.allowedAt(source, d)
			narrowed := current.intersect(allowed)

			if narrowed == current {
				continue
			}

			if err := b.place(nx, ny, narrowed); err != nil {
				return err
			}

			if !inQueue[Coordinate{X: nx, Y: ny}] {
				dirty = append(dirty, Coordinate{X: nx, Y: ny})
				inQueue[Coordinate{X: nx, Y: ny}] = true
			}
		}
	}

	return nil
}
