package tui

import (
	"time"

	"github.com/foglight/battlesolitaire/internal/dto"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages
type (
	PerformLoginMsg  struct{}
	GotSessionsMsg   []dto.SessionSummary
	SessionJoinedMsg struct{ ID string }
	GotStateMsg      *dto.SessionView
	TickMsg          time.Time
)

// TickCmd returns a command that triggers a tick, used to poll session state.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
