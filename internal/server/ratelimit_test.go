package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuessRateLimiter_AllowsBurstThenThrottles(t *testing.T) {
	t.Parallel()

	limiter := NewGuessRateLimiter(1, 1)

	e := echo.New()
	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	handler := limiter.Middleware(next)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(contextKeyPlayerID, "player-1")

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(req, rec2)
	c2.Set(contextKeyPlayerID, "player-1")

	err := handler(c2)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, he.Code)
}

func TestGuessRateLimiter_BucketsArePerPlayer(t *testing.T) {
	t.Parallel()

	limiter := NewGuessRateLimiter(1, 1)

	e := echo.New()
	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	handler := limiter.Middleware(next)

	req := httptest.NewRequest(http.MethodPost, "/", nil)

	for _, playerID := range []string{"player-1", "player-2"} {
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(contextKeyPlayerID, playerID)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestGuessRateLimiter_NoPlayerIDPassesThrough(t *testing.T) {
	t.Parallel()

	limiter := NewGuessRateLimiter(1, 1)

	e := echo.New()
	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	handler := limiter.Middleware(next)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
