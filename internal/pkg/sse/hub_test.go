package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastReachesEverySubscriber(t *testing.T) {
	hub := NewHub()

	ch1, cancel1 := hub.Subscribe()
	defer cancel1()
	ch2, cancel2 := hub.Subscribe()
	defer cancel2()

	hub.Broadcast(Event{Event: "alert", Data: "emp-1"})

	for _, ch := range []chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, "alert", ev.Event)
		default:
			t.Fatal("expected a buffered event")
		}
	}
}

func TestHub_CancelledSubscriberStopsReceiving(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe()
	cancel()

	// Must not panic or deliver to the closed channel.
	hub.Broadcast(Event{Event: "alert"})

	_, open := <-ch
	assert.False(t, open)
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe()
	defer cancel()

	for i := 0; i < cap(ch)+5; i++ {
		hub.Broadcast(Event{Event: "alert", Data: i})
	}

	require.Len(t, ch, cap(ch))
}
