package sse

import (
	"sync"
)

// Event is one server-sent event on the admin alert stream.
type Event struct {
	Event string
	Data  interface{}
}

// Hub fans alert events out to every connected admin console.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a listener and returns its channel plus a cleanup
// function the caller must invoke when the connection closes.
func (h *Hub) Subscribe() (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)
	h.subscribers[ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers, ch)
		close(ch)
	}

	return ch, cleanup
}

// Broadcast delivers an event to every subscriber. A slow subscriber whose
// buffer is full misses the event rather than blocking the sender.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
