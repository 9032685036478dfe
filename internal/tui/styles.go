package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorWin     = lipgloss.Color("#FFD700") // Gold
	ColorOver    = lipgloss.Color("#DC143C") // Crimson
	ColorSolving = lipgloss.Color("#00FA9A") // Medium Spring Green

	// General Styles
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	StyleBoardBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(0, 1)

	StyleCellUnknown = lipgloss.NewStyle().Foreground(lipgloss.Color("237")) // Gray
	StyleCellWater   = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))  // Cyan
	StyleCellShip    = lipgloss.NewStyle().Foreground(lipgloss.Color("212")) // Pink
	StyleCellWrong   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // Red
	StyleCellGhost   = lipgloss.NewStyle().Foreground(lipgloss.Color("57"))  // Purple/Ghost
	StyleCursor      = lipgloss.NewStyle().
				Background(lipgloss.Color("252")).
				Foreground(lipgloss.Color("0"))

	StyleErrorBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("196")). // Red
			Foreground(lipgloss.Color("196")).
			Padding(1, 2).
			Align(lipgloss.Center)
)
