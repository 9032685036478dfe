package server

import (
	"errors"
	"strings"

	"github.com/foglight/battlesolitaire/internal/dto"
)

// ErrInvalidGuessLabel is returned when a guess request names a label
// other than "water" or "ship".
var ErrInvalidGuessLabel = errors.New("invalid guess label")

// ParseGuessLabel converts the wire-format guess label into its
// dto.GuessState value.
func ParseGuessLabel(label string) (dto.GuessState, error) {
	switch strings.ToLower(label) {
	case "water":
		return dto.GuessWater, nil
	case "ship":
		return dto.GuessShip, nil
	default:
		return "", ErrInvalidGuessLabel
	}
}
