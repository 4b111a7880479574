package history

import (
	"sync"

	"doctor-directory/internal/domain/entity"
)

// MemoryHistory is an in-process session history: a stack of locations with a
// cursor, in the manner of a browser tab.
type MemoryHistory struct {
	mu        sync.Mutex
	entries   []string
	index     int
	writes    int
	listeners map[int]func(entity.NavigationEvent)
	nextID    int
}

func NewMemoryHistory(initial string) *MemoryHistory {
	return &MemoryHistory{
		entries:   []string{initial},
		listeners: make(map[int]func(entity.NavigationEvent)),
	}
}

func (h *MemoryHistory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Replace overwrites the current entry and notifies listeners with a
// programmatic event.
func (h *MemoryHistory) Replace(location string) {
	h.mu.Lock()
	h.entries[h.index] = location
	h.writes++
	h.mu.Unlock()

	h.emit(entity.NavigationEvent{Origin: entity.OriginProgrammatic, Location: location})
}

// Push records a user navigation to a new location, discarding any forward
// entries.
func (h *MemoryHistory) Push(location string) {
	h.mu.Lock()
	h.entries = append(h.entries[:h.index+1], location)
	h.index++
	h.mu.Unlock()

	h.emit(entity.NavigationEvent{Origin: entity.OriginExternal, Location: location})
}

// Back moves one entry back. It reports false at the start of the history.
func (h *MemoryHistory) Back() bool {
	return h.move(-1)
}

// Forward moves one entry forward. It reports false at the end of the history.
func (h *MemoryHistory) Forward() bool {
	return h.move(1)
}

// Writes counts Replace calls.
func (h *MemoryHistory) Writes() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.writes
}

// Len is the number of entries in the stack.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *MemoryHistory) Listen(fn func(entity.NavigationEvent)) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.listeners, id)
		h.mu.Unlock()
	}
}

func (h *MemoryHistory) move(delta int) bool {
	h.mu.Lock()
	target := h.index + delta
	if target < 0 || target >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.index = target
	location := h.entries[target]
	h.mu.Unlock()

	h.emit(entity.NavigationEvent{Origin: entity.OriginExternal, Location: location})
	return true
}

// emit runs listeners outside the lock so they may read the history.
func (h *MemoryHistory) emit(event entity.NavigationEvent) {
	h.mu.Lock()
	listeners := make([]func(entity.NavigationEvent), 0, len(h.listeners))
	for id := 0; id < h.nextID; id++ {
		if fn, ok := h.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(event)
	}
}
