// Package feed streams per-tick game snapshots to external renderers over
// WebSocket. Each subscriber only ever sees the newest snapshot: a slow
// client drops frames instead of stalling the game loop.
package feed

import "sync"

// Subscription receives published values until it is closed.
type Subscription struct {
	C <-chan any

	ch chan any
}

// Hub fans published values out to every subscriber.
type Hub struct {
	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	closed bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[*Subscription]struct{}),
	}
}

// Subscribe registers a new subscriber. The channel of a subscription
// made after Close is already closed.
func (h *Hub) Subscribe() *Subscription {
	ch := make(chan any, 1)
	sub := &Subscription{C: ch, ch: ch}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(ch)
		return sub
	}
	h.subs[sub] = struct{}{}
	return sub
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.ch)
	}
}

// Publish hands v to every subscriber without blocking. A subscriber that
// has not consumed the previous value gets it replaced by v.
func (h *Hub) Publish(v any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		select {
		case sub.ch <- v:
			continue
		default:
		}
		// Buffer full: drop the stale value.
		select {
		case <-sub.ch:
		default:
		}
		sub.ch <- v
	}
}

// Len returns the number of active subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close closes every subscription and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for sub := range h.subs {
		close(sub.ch)
	}
	clear(h.subs)
}
