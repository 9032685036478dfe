package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/foglight/battlesolitaire/internal/dto"
)

// CoordinateToChess converts numeric coordinates to chess-style (A-Z, 1-based row).
func CoordinateToChess(x, y int) string {
	if x < 0 || x > 25 || y < 0 {
		return fmt.Sprintf("(%d,%d)", x, y)
	}
	col := string(rune('A' + x))
	row := y + 1
	return fmt.Sprintf("%s%d", col, row)
}

// ChessToCoordinate converts chess-style coordinates to numeric (0-based).
func ChessToCoordinate(chess string) (x, y int, err error) {
	chess = strings.ToUpper(strings.TrimSpace(chess))
	if len(chess) < 2 {
		return 0, 0, fmt.Errorf("invalid coordinate format")
	}

	col := chess[0]
	if col < 'A' || col > 'Z' {
		return 0, 0, fmt.Errorf("column must be A-Z")
	}
	x = int(col - 'A')

	var row int
	_, err = fmt.Sscanf(chess[1:], "%d", &row)
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("row must be a positive number")
	}
	y = row - 1

	return x, y, nil
}

// FormatSessionState creates a Discord embed summarizing a player's view
// of a puzzle session.
func FormatSessionState(view *dto.SessionView) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Puzzle session",
		Color: getColorForState(view.State),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "State",
				Value:  string(view.State),
				Inline: true,
			},
			{
				Name:   "Mistakes",
				Value:  fmt.Sprintf("%d", view.Me.Mistakes),
				Inline: true,
			},
		},
	}

	if view.Winner != "" {
		winnerText := view.Winner
		if view.Winner == view.Me.ID {
			winnerText = "You! 🎉"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Winner",
			Value:  winnerText,
			Inline: false,
		})
	}

	myBoard := formatBoardWithChessCoords(view.Me.Board)
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Your board",
		Value:  myBoard,
		Inline: false,
	})

	if others := formatPlayers(view.Players); others != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Other players",
			Value:  others,
			Inline: false,
		})
	}

	return embed
}

func formatBoardWithChessCoords(board dto.BoardView) string {
	var sb strings.Builder

	sb.WriteString("```\n   ")
	for x := 0; x < board.Width; x++ {
		clue := 0
		if x < len(board.ColClues) {
			clue = board.ColClues[x]
		}
		fmt.Fprintf(&sb, "%d ", clue)
	}
	sb.WriteString("\n")

	for y := 0; y < board.Height; y++ {
		fmt.Fprintf(&sb, "%2d ", y+1)
		for x := 0; x < board.Width; x++ {
			sb.WriteString(cellToEmoji(board.Grid[y][x]))
			sb.WriteString(" ")
		}
		if y < len(board.RowClues) {
			fmt.Fprintf(&sb, " %d", board.RowClues[y])
		}
		sb.WriteString("\n")
	}

	sb.WriteString("```")
	return sb.String()
}

func cellToEmoji(cell dto.GuessState) string {
	switch cell {
	case dto.GuessUnknown:
		return "?"
	case dto.GuessWater:
		return "·"
	case dto.GuessShip:
		return "■"
	case dto.GuessWrong:
		return "X"
	default:
		return "?"
	}
}

func formatPlayers(players []dto.PlayerSummary) string {
	if len(players) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, p := range players {
		status := "solving"
		if p.Solved {
			status = "solved"
		}
		fmt.Fprintf(&sb, "%s: %d revealed, %d mistake(s), %s\n", p.ID, p.Revealed, p.Mistakes, status)
	}
	return sb.String()
}

func getColorForState(state dto.SessionState) int {
	switch state {
	case dto.StateSetup:
		return 0xffaa00 // Orange
	case dto.StatePlaying:
		return 0x0099ff // Blue
	case dto.StateFinished:
		return 0x00ff00 // Green
	default:
		return 0x808080 // Gray
	}
}
