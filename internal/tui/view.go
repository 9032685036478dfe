package tui

import (
	"fmt"
	"strings"

	"github.com/foglight/battlesolitaire/internal/dto"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	var content string

	switch m.Phase {
	case PhaseLogin:
		content = m.viewLogin()
	case PhaseLobby:
		content = m.viewLobby()
	case PhasePuzzle:
		if m.View == nil {
			content = "Loading puzzle state..."
		} else {
			content = m.viewPuzzle()
		}
	default:
		content = "Unknown State"
	}

	if m.Err != nil {
		errBox := StyleErrorBox.Render(
			fmt.Sprintf("ERROR\n\n%v\n\n[Q] Dismiss", m.Err),
		)
		content = fmt.Sprintf("%s\n\n%s", content, errBox)
	}

	if m.Width > 0 && m.Height > 0 {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
	}

	return content
}

// --- View Helpers ---

func (m *Model) viewLogin() string {
	return fmt.Sprintf(
		"\n%s\n\n%s\n\n[Enter] Login",
		StyleTitle.Render("BATTLE SOLITAIRE"),
		m.LoginInput.View(),
	)
}

func (m *Model) viewLobby() string {
	var s strings.Builder
	s.WriteString(StyleTitle.Render("LOBBY") + "\n\n")
	if len(m.Sessions) == 0 {
		s.WriteString("No open sessions found.\n")
	}
	for i, sess := range m.Sessions {
		cursor := " "
		if m.Cursor == i {
			cursor = ">"
		}

		line := fmt.Sprintf(
			"%s Host: %-20s %d player(s) %dx%d",
			cursor,
			sess.HostName,
			sess.PlayerCount,
			sess.Width,
			sess.Height,
		)

		if m.Cursor == i {
			s.WriteString(
				lipgloss.NewStyle().
					Bold(true).
					Foreground(lipgloss.Color("205")).
					Render(line) +
					"\n",
			)
		} else {
			s.WriteString(line + "\n")
		}
	}
	s.WriteString("\n[C] Create New Session | [Enter] Join Selected | [R] Refresh")
	return s.String()
}

func (m *Model) viewPuzzle() string {
	var baseColor lipgloss.Color
	stateLabel := ""

	switch {
	case m.View.State == dto.StateFinished:
		if m.View.Winner == m.View.Me.ID {
			baseColor = ColorWin
			stateLabel = "YOU SOLVED IT"
		} else {
			baseColor = ColorOver
			stateLabel = fmt.Sprintf("SOLVED BY %s", m.View.Winner)
		}
	default:
		baseColor = ColorSolving
		stateLabel = "SOLVING"
	}

	styleBorder := StyleBoardBorder.BorderForeground(baseColor)
	styleLabel := lipgloss.NewStyle().Foreground(baseColor).Bold(true)

	instructions := styleLabel.Render(m.getInstructions())

	board := m.renderBoard(m.View.Me.Board, &styleBorder)

	panel := lipgloss.JoinVertical(
		lipgloss.Left,
		styleLabel.Render(stateLabel),
		styleLabel.Render(fmt.Sprintf("MISTAKES: %d", m.View.Me.Mistakes)),
		board,
	)

	others := m.renderPlayers()

	return fmt.Sprintf("%s\n\n%s\n\n%s", panel, instructions, others)
}

func (m *Model) getInstructions() string {
	labelName := "WATER"
	if m.GuessLabel == dto.GuessShip {
		labelName = "SHIP"
	}

	if m.View.State == dto.StateFinished {
		return fmt.Sprintf("PUZZLE OVER - Winner: %s | [Q] Quit", m.View.Winner)
	}
	return fmt.Sprintf(
		"Guessing: %s | [Arrows] Move | [Tab] Switch Guess | [Enter] Submit",
		labelName,
	)
}

func (m *Model) renderBoard(board dto.BoardView, borderStyle *lipgloss.Style) string {
	var rows []string

	header := "  "
	for x := 0; x < board.Width; x++ {
		clue := 0
		if x < len(board.ColClues) {
			clue = board.ColClues[x]
		}
		header += fmt.Sprintf("%d ", clue)
	}
	rows = append(rows, header)

	for y := 0; y < board.Height; y++ {
		rowClue := 0
		if y < len(board.RowClues) {
			rowClue = board.RowClues[y]
		}
		rowStr := fmt.Sprintf("%2d ", rowClue)
		for x := 0; x < board.Width; x++ {
			cell := board.Grid[y][x]
			rendered := m.renderCell(x, y, cell)
			rowStr += rendered + " "
		}
		rows = append(rows, rowStr)
	}

	return borderStyle.Render(strings.Join(rows, "\n"))
}

func (m *Model) renderCell(x, y int, cell dto.GuessState) string {
	symbol := "?"
	style := StyleCellUnknown

	switch cell {
	case dto.GuessWater:
		symbol = "~"
		style = StyleCellWater
	case dto.GuessShip:
		symbol = "S"
		style = StyleCellShip
	case dto.GuessWrong:
		symbol = "X"
		style = StyleCellWrong
	}

	rendered := style.Render(symbol)

	// Ghost preview of the selected guess label on the hovered, unresolved cell.
	if cell == dto.GuessUnknown && x == m.CursorX && y == m.CursorY {
		ghostSymbol := "~"
		if m.GuessLabel == dto.GuessShip {
			ghostSymbol = "S"
		}
		rendered = StyleCellGhost.Render(ghostSymbol)
	}

	if x == m.CursorX && y == m.CursorY && cell != dto.GuessUnknown {
		rendered = StyleCursor.Render(symbol)
	}

	return rendered
}

func (m *Model) renderPlayers() string {
	if len(m.View.Players) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("OTHER PLAYERS\n")
	for _, p := range m.View.Players {
		status := "solving"
		if p.Solved {
			status = "solved"
		}
		fmt.Fprintf(&sb, "  %s: %d revealed, %d mistake(s), %s\n", p.ID, p.Revealed, p.Mistakes, status)
	}
	return sb.String()
}
