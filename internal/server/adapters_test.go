package server

import (
	"testing"

	"github.com/foglight/battlesolitaire/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGuessLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		label   string
		want    dto.GuessState
		wantErr bool
	}{
		{name: "water lowercase", label: "water", want: dto.GuessWater},
		{name: "ship lowercase", label: "ship", want: dto.GuessShip},
		{name: "water mixed case", label: "Water", want: dto.GuessWater},
		{name: "unknown label", label: "lava", wantErr: true},
		{name: "empty label", label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseGuessLabel(tt.label)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidGuessLabel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
