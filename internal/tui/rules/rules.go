// Package rules defines client-side guess validation for the TUI.
package rules

import (
	"fmt"

	"github.com/foglight/battlesolitaire/internal/dto"
)

// CanGuess checks if a cell can still be guessed.
// Returns an error if the coordinates are invalid or the cell was already resolved.
func CanGuess(board dto.BoardView, x, y int) error {
	if x < 0 || x >= board.Width || y < 0 || y >= board.Height {
		return fmt.Errorf("coordinates out of bounds: %d,%d", x, y)
	}

	cell := board.Grid[y][x]
	if cell != dto.GuessUnknown {
		return fmt.Errorf("cell already resolved: %d,%d", x, y)
	}

	return nil
}
