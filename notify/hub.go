// Package notify implements the snapshot publish/subscribe contract shared by
// the dice and stopwatch engines.
//
// Engines call Publish while holding their own state lock, so subscribers see
// snapshots in exactly the order the mutations happened. The flip side is
// that a subscriber must never call back into the publishing engine
// synchronously; hand the snapshot off (fyne.Do, a channel) instead.
package notify

import "sync"

// Hub fans a snapshot value out to every registered subscriber.
type Hub[S any] struct {
	mu     sync.Mutex
	nextID int
	order  []int
	subs   map[int]func(S)
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (h *Hub[S]) Subscribe(fn func(S)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs == nil {
		h.subs = make(map[int]func(S))
	}
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	h.order = append(h.order, id)

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[id]; !ok {
			return
		}
		delete(h.subs, id)
		for i, v := range h.order {
			if v == id {
				h.order = append(h.order[:i], h.order[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers s to all subscribers in subscription order.
func (h *Hub[S]) Publish(s S) {
	h.mu.Lock()
	fns := make([]func(S), 0, len(h.order))
	for _, id := range h.order {
		fns = append(fns, h.subs[id])
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// Clear drops every subscriber.
func (h *Hub[S]) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = nil
	h.order = nil
}
