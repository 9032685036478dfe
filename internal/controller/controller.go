// Package controller contains the main application controller orchestrating the flow.
package controller

import (
	"context"

	"github.com/foglight/battlesolitaire/internal/dto"
	"github.com/foglight/battlesolitaire/internal/events"
)

// NotificationService handles event publishing and subscription.
type NotificationService interface {
	// Subscribe streams events for one puzzle session.
	Subscribe(sessionID string) (Subscription, <-chan *events.SessionEvent)
	// SubscribeAll streams events across every session, for integrations
	// (like the Discord bot) that route by session-to-channel mapping
	// rather than caring about a single session.
	SubscribeAll() (Subscription, <-chan *events.SessionEvent)
	Publish(event *events.SessionEvent)
}

// Subscription represents a subscription to events.
type Subscription interface {
	Unsubscribe()
}

// IdentityService handles user registration and login.
type IdentityService interface {
	// LoginOrRegister finds an existing user or creates a new one.
	// source: "web", "discord", "cli"
	// extID: The unique ID from the platform (e.g. Discord User ID, or just the username for Web)
	LoginOrRegister(ctx context.Context, username, source, extID string) (dto.AuthResponse, error)
	// RecordSolve credits userID with having fully revealed a puzzle session's board.
	RecordSolve(ctx context.Context, userID string) (dto.User, error)
}

// LobbyService handles finding and creating puzzle sessions.
type LobbyService interface {
	// CreateSession generates a new puzzle and opens a session with the host joined.
	CreateSession(ctx context.Context, hostID string) (string, error)
	// ListSessions returns all sessions currently open for joining.
	ListSessions(ctx context.Context) ([]dto.SessionSummary, error)
	// JoinSession adds the player to the session.
	JoinSession(ctx context.Context, sessionID, playerID string) (dto.SessionView, error)
}

// PuzzleService handles the actual solving (sessions open in Playing and
// move to Finished).
type PuzzleService interface {
	// Guess declares what a player believes a cell contains.
	Guess(
		ctx context.Context,
		sessionID, playerID string,
		x, y int,
		label dto.GuessState,
	) (dto.SessionView, error)
	// GetState is used for refreshing the UI.
	GetState(ctx context.Context, sessionID, playerID string) (dto.SessionView, error)
}

// AppController is the main controller orchestrating the application flow.
type AppController struct {
	auth     IdentityService
	lobby    LobbyService
	puzzle   PuzzleService
	notifier NotificationService
}

// NewAppController wires everything together.
func NewAppController(
	a IdentityService,
	l LobbyService,
	p PuzzleService,
	n NotificationService,
) *AppController {
	return &AppController{auth: a, lobby: l, puzzle: p, notifier: n}
}

// Login handles user authentication and registration.
func (c *AppController) Login(
	ctx context.Context,
	username, source, platformID string,
) (dto.AuthResponse, error) {
	return c.auth.LoginOrRegister(ctx, username, source, platformID)
}

// HostSessionAction handles a player's request to host a new puzzle session.
func (c *AppController) HostSessionAction(ctx context.Context, playerID string) (string, error) {
	return c.lobby.CreateSession(ctx, playerID)
}

// ListSessionsAction retrieves the list of open sessions in the lobby.
func (c *AppController) ListSessionsAction(ctx context.Context) ([]dto.SessionSummary, error) {
	return c.lobby.ListSessions(ctx)
}

// JoinSessionAction handles a player's request to join an existing session.
func (c *AppController) JoinSessionAction(
	ctx context.Context,
	sessionID, playerID string,
) (dto.SessionView, error) {
	return c.lobby.JoinSession(ctx, sessionID, playerID)
}

// GuessAction handles a guess action from a player.
func (c *AppController) GuessAction(
	ctx context.Context,
	sessionID, playerID string,
	x, y int,
	label dto.GuessState,
) (dto.SessionView, error) {
	return c.puzzle.Guess(ctx, sessionID, playerID, x, y, label)
}

// GetSessionStateAction retrieves the current state of the session for a player.
func (c *AppController) GetSessionStateAction(
	ctx context.Context,
	sessionID, playerID string,
) (dto.SessionView, error) {
	return c.puzzle.GetState(ctx, sessionID, playerID)
}

// SubscribeToSession allows the handler to subscribe to session events.
func (c *AppController) SubscribeToSession(
	sessionID string,
) (sub Subscription, eventChan <-chan *events.SessionEvent) {
	return c.notifier.Subscribe(sessionID)
}
