package model

import "errors"

var (
	// ErrNoSolution is returned when the search backtracks past its
	// last candidate at the root: the puzzle as given has no solution.
	ErrNoSolution = errors.New("no solution exists for the given puzzle")

	// ErrInvalidInput is returned for malformed puzzle parameters:
	// non-positive dimensions, clue-length mismatches, hints outside
	// the board, contradictory hints at the same cell, or a ship
	// multiset that cannot possibly fit.
	ErrInvalidInput = errors.New("invalid puzzle input")

	// ErrInvariantViolated signals a bug condition: propagation
	// produced an empty superposition at an already-collapsed cell, or
	// the placer observed more than two collinear ship neighbours.
	// Callers must not attempt to recover from it.
	ErrInvariantViolated = errors.New("engine invariant violated")
)

// errInfeasible is the internal branch-pruning signal raised when a
// tentative placement empties a cell's superposition. It never crosses
// the package boundary; the search driver treats it as an ordinary
// backtrack trigger.
var errInfeasible = errors.New("branch is infeasible")
