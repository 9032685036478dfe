// Package tui implements the terminal client for puzzle sessions.
package tui

import (
	"log"

	"github.com/foglight/battlesolitaire/internal/client"
	"github.com/foglight/battlesolitaire/internal/dto"
	"github.com/foglight/battlesolitaire/internal/env"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Phase represents which screen of the application is active.
type Phase int

const (
	PhaseLogin Phase = iota
	PhaseLobby
	PhasePuzzle
)

// Model is the main TUI model.
type Model struct {
	Phase  Phase
	Client *client.Client

	// Login
	LoginInput textinput.Model

	// Lobby
	Sessions []dto.SessionSummary
	Cursor   int

	// Puzzle
	SessionID string
	View      *dto.SessionView

	// Cursor over the board + which label to submit on guess
	CursorX, CursorY int
	GuessLabel       dto.GuessState

	// Error Handling
	Err error

	// UI
	Width, Height int
}

func New() *Model {
	cfg, err := env.LoadClientConfig()
	if err != nil {
		log.Fatalf("Failed to load client config: %v", err)
	}

	ti := textinput.New()
	ti.Placeholder = "Commander Name"
	ti.Focus()
	ti.CharLimit = 20
	ti.Width = 30

	return &Model{
		Phase:      PhaseLogin,
		Client:     client.New(cfg.BaseURL),
		LoginInput: ti,
		GuessLabel: dto.GuessWater,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}
