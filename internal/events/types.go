package events

import "time"

// EventType represents the type of puzzle session event.
type EventType string

// EventType possible values.
const (
	EventPlayerJoined EventType = "player.joined"
	EventGuessMade    EventType = "guess.made"
	EventPuzzleSolved EventType = "puzzle.solved"
	EventSessionOver  EventType = "session.over"
)

// SessionEvent represents a session event that can be published to subscribers.
type SessionEvent struct {
	Type      EventType
	SessionID string
	PlayerID  string // player who triggered the event
	TargetID  string // player who should be notified, if targeted
	Data      any
	Timestamp time.Time
}

// GuessEventData contains data for guess events.
type GuessEventData struct {
	X      int
	Y      int
	Result string // "water", "ship", "wrong"
}

// PuzzleSolvedEventData contains data for a single player finishing the board.
type PuzzleSolvedEventData struct {
	PlayerID string
	Mistakes int
}

// SessionOverEventData contains data for session-over events.
type SessionOverEventData struct {
	Winner string
}
