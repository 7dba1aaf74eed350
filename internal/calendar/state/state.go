// Package state holds the in-memory view of the merged calendar. It is
// the single writer-synchronized container every surface reads from;
// refreshes replace the event list wholesale and optimistic mutations
// prepend, nothing else touches it.
package state

import (
	"sync"
	"time"

	"unified-calendar/internal/model"
)

// Snapshot is a point-in-time copy of the container, safe to hand to
// callers without further locking.
type Snapshot struct {
	Events         []model.CalendarEvent
	Sources        []model.CalendarSource
	Selected       []model.Source
	Loading        bool
	Polling        bool
	AppleConnected bool
	LastSynced     time.Time
	Dropped        int
}

// Container is the shared calendar state. Refreshes are sequenced: each
// BeginRefresh hands out a monotonically increasing ticket, and a
// completion only lands if no optimistic write fenced it off in the
// meantime. This closes the window where a slow fetch that started
// before an optimistic insert would overwrite the insert on arrival.
type Container struct {
	mu sync.RWMutex

	events  []model.CalendarEvent
	sources []model.CalendarSource

	selected map[model.Source]bool

	loading        bool
	polling        bool
	appleConnected bool
	lastSynced     time.Time
	dropped        int

	nextSeq uint64 // last ticket issued
	applied uint64 // last ticket whose result landed
	fence   uint64 // tickets at or below this are stale

	subs []chan struct{}
}

// NewContainer creates an empty container with every source selected.
func NewContainer() *Container {
	selected := make(map[model.Source]bool)
	for _, s := range model.DefaultSelectedSources() {
		selected[s] = true
	}
	return &Container{selected: selected}
}

// BeginRefresh marks the container loading and returns the ticket the
// eventual completion must present.
func (c *Container) BeginRefresh() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextSeq++
	c.loading = true
	return c.nextSeq
}

// CompleteRefresh replaces the event list with the result of the
// refresh identified by seq. It reports false, leaving the state
// untouched, when the result is stale: a newer refresh already landed
// or an optimistic write fenced this ticket off.
func (c *Container) CompleteRefresh(seq uint64, events []model.CalendarEvent, appleConnected bool, dropped int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq <= c.fence || seq <= c.applied {
		if seq == c.nextSeq {
			c.loading = false
		}
		return false
	}

	c.applied = seq
	c.events = events
	c.appleConnected = appleConnected
	c.dropped = dropped
	c.lastSynced = time.Now()
	if seq == c.nextSeq {
		c.loading = false
	}
	c.notifyLocked()
	return true
}

// AbortRefresh clears the loading flag for a refresh that failed.
func (c *Container) AbortRefresh(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq == c.nextSeq {
		c.loading = false
	}
}

// PrependOptimistic puts ev at the head of the list and fences off
// every refresh already in flight so a stale result cannot erase it.
func (c *Container) PrependOptimistic(ev model.CalendarEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fence = c.nextSeq
	c.events = append([]model.CalendarEvent{ev}, c.events...)
	c.notifyLocked()
}

// ReplaceOptimistic swaps the event with the given id for ev, as a
// whole element. It reports false when no event with that id exists.
func (c *Container) ReplaceOptimistic(id string, ev model.CalendarEvent) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.events {
		if c.events[i].ID == id {
			c.fence = c.nextSeq
			c.events[i] = ev
			c.notifyLocked()
			return true
		}
	}
	return false
}

// RemoveOptimistic drops the event with the given id from the list.
func (c *Container) RemoveOptimistic(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.events {
		if c.events[i].ID == id {
			c.fence = c.nextSeq
			c.events = append(c.events[:i:i], c.events[i+1:]...)
			c.notifyLocked()
			return true
		}
	}
	return false
}

// ToggleSource flips the selection flag for one source and returns the
// new value.
func (c *Container) ToggleSource(s model.Source) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selected[s] = !c.selected[s]
	c.notifyLocked()
	return c.selected[s]
}

// SelectedSources returns the enabled sources in canonical order.
func (c *Container) SelectedSources() []model.Source {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []model.Source
	for _, s := range model.DefaultSelectedSources() {
		if c.selected[s] {
			out = append(out, s)
		}
	}
	return out
}

// SetSelectedSources replaces the source filter wholesale.
func (c *Container) SetSelectedSources(sources []model.Source) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selected = make(map[model.Source]bool)
	for _, s := range sources {
		c.selected[s] = true
	}
	c.notifyLocked()
}

// SetSources stores calendar source metadata.
func (c *Container) SetSources(sources []model.CalendarSource) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sources = sources
	c.notifyLocked()
}

// SetPolling records whether the background scheduler is running.
func (c *Container) SetPolling(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.polling = on
}

// SetAppleConnected records the Apple link state outside a refresh.
func (c *Container) SetAppleConnected(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.appleConnected = on
	c.notifyLocked()
}

// FindEvent looks up an event by id in the current list.
func (c *Container) FindEvent(id string) (model.CalendarEvent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, ev := range c.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return model.CalendarEvent{}, false
}

// Snapshot copies the current state.
func (c *Container) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	events := make([]model.CalendarEvent, len(c.events))
	copy(events, c.events)
	sources := make([]model.CalendarSource, len(c.sources))
	copy(sources, c.sources)

	var selected []model.Source
	for _, s := range model.DefaultSelectedSources() {
		if c.selected[s] {
			selected = append(selected, s)
		}
	}

	return Snapshot{
		Events:         events,
		Sources:        sources,
		Selected:       selected,
		Loading:        c.loading,
		Polling:        c.polling,
		AppleConnected: c.appleConnected,
		LastSynced:     c.lastSynced,
		Dropped:        c.dropped,
	}
}

// Subscribe returns a channel that receives a signal after each state
// change. The channel has a buffer of one; coalesced signals are fine
// because subscribers re-read the snapshot anyway.
func (c *Container) Subscribe() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan struct{}, 1)
	c.subs = append(c.subs, ch)
	return ch
}

// Unsubscribe removes a channel obtained from Subscribe. The channel
// is not closed; the caller stops reading instead.
func (c *Container) Unsubscribe(ch <-chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, sub := range c.subs {
		if sub == ch {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return
		}
	}
}

func (c *Container) notifyLocked() {
	for _, ch := range c.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
