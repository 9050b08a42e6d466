package sse

import (
	"sync"
)

// AdminStream is the stream every admin dashboard subscribes to; employee
// streams are addressed by employee id.
const AdminStream = "admin"

// Event is one SSE event delivered to a stream's subscribers.
type Event struct {
	Stream string
	Event  string
	Data   interface{}
}

// Hub fans events out to stream subscribers. Delivery is at-most-once:
// a subscriber with a full channel is skipped rather than blocked on.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a subscriber for a stream and returns the event
// channel and a cleanup function.
func (h *Hub) Subscribe(stream string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[stream] == nil {
		h.subscribers[stream] = make(map[chan Event]struct{})
	}
	h.subscribers[stream][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[stream], ch)
		close(ch)
		if len(h.subscribers[stream]) == 0 {
			delete(h.subscribers, stream)
		}
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of a stream.
func (h *Hub) Publish(stream string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[stream]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// PublishToMany sends an event to multiple streams.
func (h *Hub) PublishToMany(streams []string, event Event) {
	for _, stream := range streams {
		eventCopy := event
		eventCopy.Stream = stream
		h.Publish(stream, eventCopy)
	}
}

// SubscriberCount returns the number of active subscribers for a stream.
func (h *Hub) SubscriberCount(stream string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[stream]; ok {
		return len(subs)
	}
	return 0
}
