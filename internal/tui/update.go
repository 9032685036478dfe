package tui

import (
	"github.com/foglight/battlesolitaire/internal/client"
	"github.com/foglight/battlesolitaire/internal/dto"
	"github.com/foglight/battlesolitaire/internal/tui/rules"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// --- Global Keys (Always generic) ---
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// --- Error Handling ---
	// Block other updates while error is shown
	if m.Err != nil {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "q", "esc":
				m.Err = nil // Dismiss error
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	case error:
		m.Err = msg
		return m, nil
	}

	switch m.Phase {
	case PhaseLogin:
		return m.updateLogin(msg)
	case PhaseLobby:
		return m.updateLobby(msg)
	case PhasePuzzle:
		return m.updatePuzzle(msg)
	}
	return m, cmd
}

// --- Sub-Update Functions ---

func (m *Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.LoginInput, cmd = m.LoginInput.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		username := m.LoginInput.Value()
		return m, func() tea.Msg {
			_, err := m.Client.Login(username)
			if err != nil {
				return err
			}
			return PerformLoginMsg{}
		}
	}

	if _, ok := msg.(PerformLoginMsg); ok {
		m.Phase = PhaseLobby
		return m, fetchSessionsCmd(m.Client)
	}
	return m, cmd
}

func (m *Model) updateLobby(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case GotSessionsMsg:
		m.Sessions = msg
	case tea.KeyMsg:
		return m.handleLobbyKeys(msg)
	case SessionJoinedMsg:
		return m.handleSessionJoined(msg)
	}
	return m, nil
}

func (m *Model) handleLobbyKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Sessions)-1 {
			m.Cursor++
		}
	case "r":
		return m, fetchSessionsCmd(m.Client)
	case "c":
		return m, func() tea.Msg {
			id, err := m.Client.HostSession()
			if err != nil {
				return err
			}
			return SessionJoinedMsg{ID: id}
		}
	case "enter":
		if len(m.Sessions) > 0 {
			selectedID := m.Sessions[m.Cursor].ID
			return m, func() tea.Msg {
				_, err := m.Client.JoinSession(selectedID)
				if err != nil {
					return err
				}
				return SessionJoinedMsg{ID: selectedID}
			}
		}
	}
	return m, nil
}

func (m *Model) handleSessionJoined(msg SessionJoinedMsg) (tea.Model, tea.Cmd) {
	m.SessionID = msg.ID
	m.Phase = PhasePuzzle
	m.CursorX = 0
	m.CursorY = 0
	m.GuessLabel = dto.GuessWater
	return m, tea.Batch(
		func() tea.Msg {
			v, err := m.Client.GetState(m.SessionID)
			if err != nil {
				return err
			}
			return GotStateMsg(v)
		},
		TickCmd(),
	)
}

func (m *Model) updatePuzzle(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case GotStateMsg:
		m.View = msg
	case TickMsg:
		return m, tea.Batch(fetchStateCmd(m.Client, m.SessionID), TickCmd())
	case tea.KeyMsg:
		return m.handlePuzzleKeys(msg)
	}
	return m, nil
}

func (m *Model) handlePuzzleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.View == nil {
		return m, nil
	}

	width, height := m.View.Me.Board.Width, m.View.Me.Board.Height

	switch msg.String() {
	case "up", "k":
		if m.CursorY > 0 {
			m.CursorY--
		}
	case "down", "j":
		if m.CursorY < height-1 {
			m.CursorY++
		}
	case "left", "h":
		if m.CursorX > 0 {
			m.CursorX--
		}
	case "right", "l":
		if m.CursorX < width-1 {
			m.CursorX++
		}
	case "tab":
		if m.GuessLabel == dto.GuessWater {
			m.GuessLabel = dto.GuessShip
		} else {
			m.GuessLabel = dto.GuessWater
		}
	case "enter", "space":
		return m.handleGuess()
	case "q":
		if m.View.State == dto.StateFinished {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) handleGuess() (tea.Model, tea.Cmd) {
	if m.View == nil || m.View.State == dto.StateFinished {
		return m, nil
	}

	cx, cy, label := m.CursorX, m.CursorY, m.GuessLabel

	if err := rules.CanGuess(m.View.Me.Board, cx, cy); err != nil {
		return m, func() tea.Msg {
			return err
		}
	}

	return m, func() tea.Msg {
		v, err := m.Client.Guess(m.SessionID, cx, cy, label)
		if err != nil {
			return err
		}
		return GotStateMsg(v)
	}
}

func fetchSessionsCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		sessions, err := c.ListSessions()
		if err != nil {
			return err
		}
		return GotSessionsMsg(sessions)
	}
}

func fetchStateCmd(c *client.Client, sessionID string) tea.Cmd {
	return func() tea.Msg {
		v, err := c.GetState(sessionID)
		if err != nil {
			return err
		}
		return GotStateMsg(v)
	}
}
