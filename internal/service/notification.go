package service

import (
	"sync"

	"github.com/foglight/battlesolitaire/internal/controller"
	"github.com/foglight/battlesolitaire/internal/events"
	"github.com/google/uuid"
)

// NotificationService implements controller.NotificationService. Per-session
// listeners (AppController.SubscribeToSession) and cross-session
// listeners (the Discord bot, which routes events by its own session-to-
// channel map) are tracked in separate registries rather than overloading
// the session-ID key with a sentinel value, so a session can never collide
// with the all-sessions audience.
type NotificationService struct {
	bySession map[string][]notifySubscriber
	global    []notifySubscriber
	mu        sync.RWMutex
}

type notifySubscriber struct {
	id string
	ch chan *events.SessionEvent
}

// notifySubscription closes over a removal function so the same type
// cancels both a per-session and a global subscription.
type notifySubscription struct {
	remove func(id string)
	id     string
}

// NewNotificationService creates a new notification service.
func NewNotificationService() *NotificationService {
	return &NotificationService{
		bySession: make(map[string][]notifySubscriber),
	}
}

// Subscribe returns a channel of events for one puzzle session.
func (s *NotificationService) Subscribe(
	sessionID string,
) (sub controller.Subscription, out <-chan *events.SessionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan *events.SessionEvent, 100)
	s.bySession[sessionID] = append(s.bySession[sessionID], notifySubscriber{id: id, ch: ch})

	return &notifySubscription{id: id, remove: func(id string) { s.removeFromSession(sessionID, id) }}, ch
}

// SubscribeAll returns a channel of events across every session.
func (s *NotificationService) SubscribeAll() (sub controller.Subscription, out <-chan *events.SessionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan *events.SessionEvent, 100)
	s.global = append(s.global, notifySubscriber{id: id, ch: ch})

	return &notifySubscription{id: id, remove: s.removeFromGlobal}, ch
}

// Publish delivers event to that session's subscribers and to every
// cross-session listener.
func (s *NotificationService) Publish(event *events.SessionEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deliver(event, s.bySession[event.SessionID])
	deliver(event, s.global)
}

func deliver(event *events.SessionEvent, subscribers []notifySubscriber) {
	for _, sub := range subscribers {
		select {
		case sub.ch <- event:
		default:
			// Non-blocking send: a slow subscriber drops events rather
			// than stalling Publish for everyone else.
		}
	}
}

func (s *NotificationService) removeFromSession(sessionID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := s.bySession[sessionID]
	for i, sub := range subs {
		if sub.id == id {
			close(sub.ch)
			s.bySession[sessionID] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

func (s *NotificationService) removeFromGlobal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.global {
		if sub.id == id {
			close(sub.ch)
			s.global = append(s.global[:i], s.global[i+1:]...)
			return
		}
	}
}

// Unsubscribe removes the subscription.
func (s *notifySubscription) Unsubscribe() {
	s.remove(s.id)
}
