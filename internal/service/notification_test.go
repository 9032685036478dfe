package service_test

import (
	"testing"
	"time"

	"github.com/foglight/battlesolitaire/internal/events"
	"github.com/foglight/battlesolitaire/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_SessionSubscriberOnlySeesItsSession(t *testing.T) {
	t.Parallel()

	n := service.NewNotificationService()
	_, ch := n.Subscribe("session-a")

	n.Publish(&events.SessionEvent{Type: events.EventGuessMade, SessionID: "session-a"})
	n.Publish(&events.SessionEvent{Type: events.EventGuessMade, SessionID: "session-b"})

	select {
	case ev := <-ch:
		assert.Equal(t, "session-a", ev.SessionID)
	case <-time.After(time.Second):
		t.Fatal("expected an event for session-a")
	}

	select {
	case ev := <-ch:
		t.Fatalf("session-a subscriber should not see session-b's event, got %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNotificationService_GlobalSubscriberSeesEverySession(t *testing.T) {
	t.Parallel()

	n := service.NewNotificationService()
	_, ch := n.SubscribeAll()

	n.Publish(&events.SessionEvent{Type: events.EventGuessMade, SessionID: "session-a"})
	n.Publish(&events.SessionEvent{Type: events.EventGuessMade, SessionID: "session-b"})

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case ev := <-ch:
			seen[ev.SessionID] = true
		case <-time.After(time.Second):
			t.Fatal("expected two events on the global subscription")
		}
	}

	assert.True(t, seen["session-a"])
	assert.True(t, seen["session-b"])
}

func TestNotificationService_UnsubscribeClosesChannel(t *testing.T) {
	t.Parallel()

	n := service.NewNotificationService()
	sub, ch := n.Subscribe("session-a")

	sub.Unsubscribe()

	_, open := <-ch
	assert.False(t, open, "channel should be closed after Unsubscribe")

	// Publishing after unsubscribe must not panic or block.
	require.NotPanics(t, func() {
		n.Publish(&events.SessionEvent{Type: events.EventGuessMade, SessionID: "session-a"})
	})
}

func TestNotificationService_UnsubscribeIsIndependentPerListener(t *testing.T) {
	t.Parallel()

	n := service.NewNotificationService()
	sessionSub, sessionCh := n.Subscribe("session-a")
	_, globalCh := n.SubscribeAll()

	sessionSub.Unsubscribe()

	n.Publish(&events.SessionEvent{Type: events.EventGuessMade, SessionID: "session-a"})

	_, open := <-sessionCh
	assert.False(t, open)

	select {
	case ev := <-globalCh:
		assert.Equal(t, "session-a", ev.SessionID)
	case <-time.After(time.Second):
		t.Fatal("global subscription should be unaffected by the session unsubscribe")
	}
}
