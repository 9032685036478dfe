package server

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// contextKeyPlayerID is the echo.Context key RequirePlayerIdentity sets
// and PlayerID reads. Unexported so every read/write goes through the
// accessors below instead of a bare string scattered across packages.
const contextKeyPlayerID = "player_id"

// RequirePlayerIdentity extracts the puzzle session player's ID from the
// JWT subject claim echo-jwt already verified and set as "user", and
// makes it available to session handlers and the guess rate limiter via
// PlayerID.
func RequirePlayerIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "malformed session claims")
		}

		playerID, ok := claims["sub"].(string)
		if !ok || playerID == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "session token missing player id")
		}

		c.Set(contextKeyPlayerID, playerID)

		return next(c)
	}
}

// PlayerID returns the authenticated player ID set by RequirePlayerIdentity,
// or "" if the request never passed through it (e.g. the public /login
// route, or a request whose rate-limit middleware runs before identity
// resolution fails).
func PlayerID(c echo.Context) string {
	id, _ := c.Get(contextKeyPlayerID).(string)
	return id
}

// SessionID returns the ":id" path parameter every session-scoped route
// (join, guess, get state) carries, keeping that extraction in one place
// alongside PlayerID instead of repeated in every handler.
func SessionID(c echo.Context) string {
	return c.Param("id")
}
