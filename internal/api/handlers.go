// Package api contains the http handlers
package api

import (
	"net/http"

	"github.com/foglight/battlesolitaire/internal/controller"
	"github.com/foglight/battlesolitaire/internal/server"
	"github.com/labstack/echo/v4"
)

// EchoHandler has the handlers for the http.Server
type EchoHandler struct{ ctrl *controller.AppController }

// NewEchoHandler creates a new http handler using echo
func NewEchoHandler(c *controller.AppController) *EchoHandler {
	return &EchoHandler{ctrl: c}
}

// Login handles the user login request.
// POST /login
func (h *EchoHandler) Login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON")
	}

	user, err := h.ctrl.Login(c.Request().Context(), req.Username, "web", req.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, user)
}

// ListSessions retrieves a list of all open puzzle sessions.
// GET /sessions
func (h *EchoHandler) ListSessions(c echo.Context) error {
	sessions, err := h.ctrl.ListSessionsAction(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, sessions)
}

// HostSession allows a player to host a new puzzle session.
// POST /sessions
func (h *EchoHandler) HostSession(c echo.Context) error {
	playerID := server.PlayerID(c)

	sessionID, err := h.ctrl.HostSessionAction(c.Request().Context(), playerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{"session_id": sessionID})
}

// JoinSession allows a player to join an existing puzzle session.
// POST /sessions/:id/join
func (h *EchoHandler) JoinSession(c echo.Context) error {
	sessionID := server.SessionID(c)
	playerID := server.PlayerID(c)

	view, err := h.ctrl.JoinSessionAction(c.Request().Context(), sessionID, playerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, view)
}

// GetState retrieves the current state of a puzzle session.
// GET /sessions/:id
func (h *EchoHandler) GetState(c echo.Context) error {
	sessionID := server.SessionID(c)
	playerID := server.PlayerID(c)

	view, err := h.ctrl.GetSessionStateAction(c.Request().Context(), sessionID, playerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, view)
}

// Guess allows a player to declare what a cell of the puzzle contains.
// POST /sessions/:id/guess
func (h *EchoHandler) Guess(c echo.Context) error {
	var req struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON")
	}

	label, err := server.ParseGuessLabel(req.Label)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sessionID := server.SessionID(c)
	playerID := server.PlayerID(c)

	view, err := h.ctrl.GuessAction(c.Request().Context(), sessionID, playerID, req.X, req.Y, label)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, view)
}
