package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/foglight/battlesolitaire/internal/dto"
	"github.com/foglight/battlesolitaire/internal/events"
	"github.com/foglight/battlesolitaire/internal/model"
)

// ErrCellOutOfBounds is returned when a guess targets a coordinate
// outside the puzzle grid.
var ErrCellOutOfBounds = errors.New("cell is outside the puzzle board")

// ErrPlayerNotInSession is returned when a guess or state request comes
// from a player who never joined the session.
var ErrPlayerNotInSession = errors.New("player has not joined this session")

// Guess declares what a player believes a cell contains and resolves it
// against the hidden solution.
func (s *MemoryService) Guess(
	ctx context.Context,
	sessionID, playerID string,
	x, y int,
	label dto.GuessState,
) (dto.SessionView, error) {
	sess, err := s.getSafeSession(sessionID)
	if err != nil {
		return dto.SessionView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if x < 0 || x >= sess.width || y < 0 || y >= sess.height {
		return dto.SessionView{}, ErrCellOutOfBounds
	}

	pp, joined := sess.players[playerID]
	if !joined {
		return dto.SessionView{}, ErrPlayerNotInSession
	}

	actual := sess.solution.At(x, y)
	correct := (label == dto.GuessWater && actual == model.ProjectedWater) ||
		(label == dto.GuessShip && actual == model.ProjectedShip)

	resultStr := "wrong"
	if correct {
		pp.revealed[y][x] = label
		if label == dto.GuessShip {
			resultStr = "ship"
		} else {
			resultStr = "water"
		}
	} else {
		pp.mistakes++
		pp.revealed[y][x] = dto.GuessWrong
	}

	sess.updatedAt = time.Now()

	if correct && !pp.solved && boardFullyRevealed(pp) {
		pp.solved = true
		if sess.state != dto.StateFinished {
			sess.state = dto.StateFinished
			sess.winner = playerID
		}
		if s.identity != nil {
			if _, err := s.identity.RecordSolve(ctx, playerID); err != nil {
				log.Printf("record solve for %s: %v", playerID, err)
			}
		}
	}

	if s.eventBus != nil {
		s.eventBus.Publish(&events.SessionEvent{
			Type:      events.EventGuessMade,
			SessionID: sessionID,
			PlayerID:  playerID,
			Timestamp: time.Now(),
			Data:      events.GuessEventData{X: x, Y: y, Result: resultStr},
		})
		if pp.solved {
			s.eventBus.Publish(&events.SessionEvent{
				Type:      events.EventPuzzleSolved,
				SessionID: sessionID,
				PlayerID:  playerID,
				Timestamp: time.Now(),
				Data:      events.PuzzleSolvedEventData{PlayerID: playerID, Mistakes: pp.mistakes},
			})
		}
	}

	return buildSessionView(sess, playerID), nil
}

// GetState retrieves the current session state for a player.
func (s *MemoryService) GetState(
	_ context.Context,
	sessionID, playerID string,
) (dto.SessionView, error) {
	sess, err := s.getSafeSession(sessionID)
	if err != nil {
		return dto.SessionView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if _, joined := sess.players[playerID]; !joined {
		return dto.SessionView{}, ErrPlayerNotInSession
	}

	return buildSessionView(sess, playerID), nil
}

func boardFullyRevealed(pp *playerProgress) bool {
	for _, row := range pp.revealed {
		for _, cell := range row {
			if cell == dto.GuessUnknown || cell == dto.GuessWrong {
				return false
			}
		}
	}
	return true
}

func buildSessionView(sess *safeSession, playerID string) dto.SessionView {
	me := sess.players[playerID]

	hintViews := make([]dto.HintView, len(sess.hints))
	for i, h := range sess.hints {
		hintViews[i] = dto.HintView{X: h.X, Y: h.Y, Label: hintLabelName(h.Label)}
	}

	board := dto.BoardView{
		Grid:      cloneGrid(me.revealed),
		Width:     sess.width,
		Height:    sess.height,
		RowClues:  append([]int(nil), sess.rowClues...),
		ColClues:  append([]int(nil), sess.colClues...),
		HintCells: hintViews,
	}

	var summaries []dto.PlayerSummary
	for _, id := range sess.order {
		if id == playerID {
			continue
		}
		p := sess.players[id]
		summaries = append(summaries, dto.PlayerSummary{
			ID:       id,
			Revealed: countRevealed(p),
			Mistakes: p.mistakes,
			Solved:   p.solved,
		})
	}

	return dto.SessionView{
		State:  sess.state,
		Winner: sess.winner,
		Me: dto.PlayerView{
			ID:       playerID,
			Board:    board,
			Mistakes: me.mistakes,
			Solved:   me.solved,
		},
		Players: summaries,
	}
}

func countRevealed(pp *playerProgress) int {
	count := 0
	for _, row := range pp.revealed {
		for _, cell := range row {
			if cell == dto.GuessWater || cell == dto.GuessShip {
				count++
			}
		}
	}
	return count
}

func cloneGrid(grid [][]dto.GuessState) [][]dto.GuessState {
	out := make([][]dto.GuessState, len(grid))
	for y, row := range grid {
		out[y] = append([]dto.GuessState(nil), row...)
	}
	return out
}

func hintLabelName(l model.HintLabel) string {
	switch l {
	case model.HintWater:
		return "water"
	case model.HintShipAny:
		return "ship"
	case model.HintCapLeft:
		return "cap-left"
	case model.HintCapUp:
		return "cap-up"
	case model.HintCapRight:
		return "cap-right"
	case model.HintCapDown:
		return "cap-down"
	case model.HintSingle:
		return "single"
	case model.HintMiddle:
		return "middle"
	default:
		return "unknown"
	}
}
