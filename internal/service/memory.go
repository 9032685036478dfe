package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/foglight/battlesolitaire/internal/controller"
	"github.com/foglight/battlesolitaire/internal/dto"
	"github.com/foglight/battlesolitaire/internal/events"
	"github.com/foglight/battlesolitaire/internal/model"
	"github.com/google/uuid"
)

const maxSessionsPerUser = 5

var (
	_ controller.LobbyService  = (*MemoryService)(nil)
	_ controller.PuzzleService = (*MemoryService)(nil)
)

// defaultFleet is the classic Battleship ship multiset: one 4-length
// carrier, two 3-length cruisers, three 2-length destroyers, four
// 1-length submarines.
func defaultFleet() model.ShipMultiset {
	return model.ShipMultiset{4: 1, 3: 2, 2: 3, 1: 4}
}

// MemoryService is an in-memory implementation of the lobby and puzzle
// session service.
type MemoryService struct {
	sessions   map[string]*safeSession
	sessionsMu sync.RWMutex
	eventBus   controller.NotificationService
	identity   controller.IdentityService
	rng        *rand.Rand
	rngMu      sync.Mutex

	width, height, resolution int
}

type safeSession struct {
	id        string
	width     int
	height    int
	ships     model.ShipMultiset
	rowClues  []int
	colClues  []int
	hints     []model.Hint
	solution  model.Board
	host      string
	order     []string
	players   map[string]*playerProgress
	state     dto.SessionState
	winner    string
	createdAt time.Time
	updatedAt time.Time
	mu        sync.Mutex
}

type playerProgress struct {
	revealed [][]dto.GuessState
	mistakes int
	solved   bool
}

func newPlayerProgress(sess *safeSession) *playerProgress {
	grid := make([][]dto.GuessState, sess.height)
	for y := range grid {
		grid[y] = make([]dto.GuessState, sess.width)
		for x := range grid[y] {
			grid[y][x] = dto.GuessUnknown
		}
	}
	for _, h := range sess.hints {
		if h.Y < 0 || h.Y >= sess.height || h.X < 0 || h.X >= sess.width {
			continue
		}
		if h.Label == model.HintWater {
			grid[h.Y][h.X] = dto.GuessWater
		} else {
			grid[h.Y][h.X] = dto.GuessShip
		}
	}
	return &playerProgress{revealed: grid}
}

// NewMemoryService creates a new in-memory lobby and puzzle session
// service. notifier, if non-nil, is used to broadcast guess/solve events.
// identity, if non-nil, is credited once per session when a player fully
// reveals their board.
func NewMemoryService(
	notifier controller.NotificationService,
	identity controller.IdentityService,
) *MemoryService {
	s := &MemoryService{
		sessions:   make(map[string]*safeSession),
		eventBus:   notifier,
		identity:   identity,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		width:      8,
		height:     8,
		resolution: 4,
	}
	go s.cleanupLoop()
	return s
}

// Configure overrides the puzzle generation defaults. seed, if non-zero,
// seeds the service's random source deterministically; otherwise the
// service keeps drawing fresh per-session seeds.
func (s *MemoryService) Configure(width, height, resolution int, seed int64) {
	s.width, s.height, s.resolution = width, height, resolution
	if seed != 0 {
		s.rngMu.Lock()
		s.rng = rand.New(rand.NewSource(seed))
		s.rngMu.Unlock()
	}
}

func (s *MemoryService) nextSeed() int64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Int63()
}

func (s *MemoryService) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.gc()
	}
}

func (s *MemoryService) gc() {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	now := time.Now()
	for id, sess := range s.sessions {
		sess.mu.Lock()
		isFinished := sess.state == dto.StateFinished
		lastUpdate := sess.updatedAt
		sess.mu.Unlock()

		if isFinished {
			// Remove finished sessions after 10m
			if now.Sub(lastUpdate) > 10*time.Minute {
				delete(s.sessions, id)
			}
		} else {
			// Remove stale sessions after 24h
			if now.Sub(lastUpdate) > 24*time.Hour {
				delete(s.sessions, id)
			}
		}
	}
}

// CreateSession generates a fresh puzzle and opens a session with the
// host joined.
func (s *MemoryService) CreateSession(_ context.Context, hostID string) (string, error) {
	if count := s.countActiveSessionsByHost(hostID); count >= maxSessionsPerUser {
		return "", errors.New("max active sessions limit reached")
	}

	width, height, resolution := s.width, s.height, s.resolution
	ships := defaultFleet()
	rng := rand.New(rand.NewSource(s.nextSeed()))

	hints, rowClues, colClues, err := model.Generate(width, height, ships, resolution, rng)
	if err != nil {
		return "", fmt.Errorf("generate puzzle: %w", err)
	}
	solved, err := model.Solve(width, height, hints, rowClues, colClues, ships, rng)
	if err != nil {
		return "", fmt.Errorf("derive solution: %w", err)
	}

	sessionID := fmt.Sprintf("session-%v", uuid.NewString())
	sess := &safeSession{
		id:        sessionID,
		width:     width,
		height:    height,
		ships:     ships,
		rowClues:  rowClues,
		colClues:  colClues,
		hints:     hints,
		solution:  solved,
		host:      hostID,
		order:     []string{hostID},
		players:   make(map[string]*playerProgress),
		state:     dto.StatePlaying,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	sess.players[hostID] = newPlayerProgress(sess)

	s.sessionsMu.Lock()
	s.sessions[sessionID] = sess
	s.sessionsMu.Unlock()

	return sessionID, nil
}

// ListSessions returns all open sessions and their summaries.
func (s *MemoryService) ListSessions(_ context.Context) ([]dto.SessionSummary, error) {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()

	summaries := make([]dto.SessionSummary, 0, len(s.sessions))
	for sessionID, sess := range s.sessions {
		sess.mu.Lock()
		if sess.state != dto.StateFinished {
			summaries = append(summaries, dto.SessionSummary{
				ID:          sessionID,
				CreatedAt:   sess.createdAt,
				HostName:    sess.host,
				PlayerCount: len(sess.order),
				Width:       sess.width,
				Height:      sess.height,
			})
		}
		sess.mu.Unlock()
	}

	return summaries, nil
}

// JoinSession adds a player to an existing session.
func (s *MemoryService) JoinSession(
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
		sess.players[playerID] = newPlayerProgress(sess)
		sess.order = append(sess.order, playerID)
		sess.updatedAt = time.Now()

		if s.eventBus != nil {
			s.eventBus.Publish(&events.SessionEvent{
				Type:      events.EventPlayerJoined,
				SessionID: sessionID,
				PlayerID:  playerID,
				Timestamp: time.Now(),
			})
		}
	}

	return buildSessionView(sess, playerID), nil
}

func (s *MemoryService) getSafeSession(sessionID string) (*safeSession, error) {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()

	sess, exists := s.sessions[sessionID]
	if !exists {
		return nil, errors.New("session not found")
	}

	return sess, nil
}

func (s *MemoryService) countActiveSessionsByHost(hostID string) int {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()

	count := 0
	for _, sess := range s.sessions {
		sess.mu.Lock()
		isHost := sess.host == hostID
		isFinished := sess.state == dto.StateFinished
		sess.mu.Unlock()

		if isHost && !isFinished {
			count++
		}
	}
	return count
}
