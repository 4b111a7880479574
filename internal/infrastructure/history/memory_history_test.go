package history

import (
	"testing"

	"doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestMemoryHistory_ReplaceEmitsProgrammatic(t *testing.T) {
	h := NewMemoryHistory("/")
	var events []entity.NavigationEvent
	h.Listen(func(e entity.NavigationEvent) { events = append(events, e) })

	h.Replace("/?search=rao")

	assert.Equal(t, "/?search=rao", h.Location())
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 1, h.Writes())
	assert.Equal(t, []entity.NavigationEvent{{Origin: entity.OriginProgrammatic, Location: "/?search=rao"}}, events)
}

func TestMemoryHistory_BackForward(t *testing.T) {
	h := NewMemoryHistory("/a")
	h.Push("/b")
	h.Push("/c")

	var events []entity.NavigationEvent
	h.Listen(func(e entity.NavigationEvent) { events = append(events, e) })

	assert.True(t, h.Back())
	assert.True(t, h.Back())
	assert.False(t, h.Back())
	assert.Equal(t, "/a", h.Location())

	assert.True(t, h.Forward())
	assert.Equal(t, "/b", h.Location())

	assert.Len(t, events, 3)
	for _, e := range events {
		assert.Equal(t, entity.OriginExternal, e.Origin)
	}
	assert.Equal(t, 0, h.Writes())
}

func TestMemoryHistory_PushDropsForwardEntries(t *testing.T) {
	h := NewMemoryHistory("/a")
	h.Push("/b")
	h.Push("/c")
	h.Back()
	h.Back()

	h.Push("/d")

	assert.Equal(t, 2, h.Len())
	assert.False(t, h.Forward())
	assert.True(t, h.Back())
	assert.Equal(t, "/a", h.Location())
}

func TestMemoryHistory_Unsubscribe(t *testing.T) {
	h := NewMemoryHistory("/")
	calls := 0
	stop := h.Listen(func(entity.NavigationEvent) { calls++ })
	h.Listen(func(entity.NavigationEvent) {})

	h.Push("/a")
	stop()
	h.Push("/b")

	assert.Equal(t, 1, calls)
}

func TestMemoryHistory_ListenerMayReadHistory(t *testing.T) {
	h := NewMemoryHistory("/")
	var seen string
	h.Listen(func(entity.NavigationEvent) { seen = h.Location() })

	h.Push("/next")

	assert.Equal(t, "/next", seen)
}
