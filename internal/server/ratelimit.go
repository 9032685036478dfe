package server

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// GuessRateLimiter throttles guess submissions per player, independent of
// the session they're guessing against, so one fast-clicking player
// can't starve the others sharing the process.
type GuessRateLimiter struct {
	rps     rate.Limit
	burst   int
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewGuessRateLimiter creates a limiter allowing rps guesses per second
// per player, with burst allowed up front.
func NewGuessRateLimiter(rps int, burst int) *GuessRateLimiter {
	return &GuessRateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		buckets: make(map[string]*rate.Limiter),
	}
}

func (l *GuessRateLimiter) bucketFor(playerID string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[playerID]
	if !ok {
		b = rate.NewLimiter(l.rps, l.burst)
		l.buckets[playerID] = b
	}
	return b
}

// Middleware rejects a request with 429 once the calling player (as set
// by RequirePlayerIdentity) exceeds their guess budget.
func (l *GuessRateLimiter) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		playerID := PlayerID(c)
		if playerID == "" {
			return next(c)
		}

		if !l.bucketFor(playerID).Allow() {
			return echo.NewHTTPError(http.StatusTooManyRequests, "guess rate limit exceeded")
		}

		return next(c)
	}
}
