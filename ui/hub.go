// Package ui holds the server-side interaction state of the site shell:
// the menu state machines of the navigation bar and the page-wide
// pointer-down listener used to dismiss the language menu.
package ui

import "sync"

// PointerEvent is a pointer-down anywhere on the page.
// Path lists the element ids from the event target up to the document root.
type PointerEvent struct {
	Path []string
}

// Within reports whether the event target is the element id or inside it.
func (e PointerEvent) Within(id string) bool {
	if id == "" {
		return false
	}
	for _, p := range e.Path {
		if p == id {
			return true
		}
	}
	return false
}

// Hub fans page-wide pointer-down events out to the current subscribers.
// One Hub exists per mounted page.
type Hub struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func(PointerEvent)
}

func NewHub() *Hub {
	return &Hub{handlers: map[int]func(PointerEvent){}}
}

// Subscribe registers fn until the returned Subscription is released.
func (h *Hub) Subscribe(fn func(PointerEvent)) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	h.handlers[h.nextID] = fn
	return &Subscription{hub: h, id: h.nextID}
}

// Dispatch delivers ev to every subscriber registered when it was called.
// Handlers run without the hub lock held so they may release themselves.
func (h *Hub) Dispatch(ev PointerEvent) {
	h.mu.Lock()
	fns := make([]func(PointerEvent), 0, len(h.handlers))
	for _, fn := range h.handlers {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Active is the number of live subscriptions.
func (h *Hub) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handlers)
}

func (h *Hub) remove(id int) {
	h.mu.Lock()
	delete(h.handlers, id)
	h.mu.Unlock()
}

// Subscription is a handle on one registered listener.
type Subscription struct {
	hub  *Hub
	id   int
	once sync.Once
}

// Release deregisters the listener. Calling it again is a no-op.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() { s.hub.remove(s.id) })
}
