package dto

import "github.com/foglight/battlesolitaire/internal/model"

// SessionInfo contains the current status of a puzzle session.
type SessionInfo struct {
	ID        string   `json:"id"`
	Phase     string   `json:"phase"`
	PlayerIDs []string `json:"playerIds"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Winner    string   `json:"winner,omitempty"`
}

// GuessRequest represents the payload for declaring a cell's contents.
type GuessRequest struct {
	PlayerID string `json:"playerId"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Label    string `json:"label"` // "WATER" or "SHIP"
}

// GuessResponse represents the result of a single guess.
type GuessResponse struct {
	Result string `json:"result"` // "water", "ship", "wrong"
}

// Coordinate represents a simple X,Y pair for DTO usage if needed.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ToModel converts a dto.Coordinate to a model.Coordinate
func (c Coordinate) ToModel() model.Coordinate {
	return model.Coordinate{X: c.X, Y: c.Y}
}
