package input

import (
	"sync"
	"time"
)

// localSource owns the keys set through the HeldKeys methods themselves
const localSource = ""

// HeldKeys is the set of currently held keys
// Producers (terminal poller, remote clients) write from their own goroutines; the
// frame loop reads one snapshot per frame. Each producer holds keys under its own
// source, so a key stays held while any source holds it
type HeldKeys struct {
	mu   sync.Mutex
	keys map[Key]map[string]time.Time // source -> release deadline, zero = held until KeyUp
}

// NewHeldKeys creates an empty set
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{keys: make(map[Key]map[string]time.Time)}
}

// KeyDown marks k held until KeyUp
func (h *HeldKeys) KeyDown(k Key) {
	h.set(localSource, k, time.Time{})
}

// KeyDownFor marks k held until KeyUp or until ttl elapses from now
func (h *HeldKeys) KeyDownFor(k Key, now time.Time, ttl time.Duration) {
	h.set(localSource, k, now.Add(ttl))
}

// Press marks k held for sources without key release
// A press of a key not yet held lasts initial, long enough to bridge the
// auto-repeat delay; repeat presses extend the hold by repeat
func (h *HeldKeys) Press(k Key, now time.Time, initial, repeat time.Duration) {
	h.press(localSource, k, now, initial, repeat)
}

// KeyUp releases k
func (h *HeldKeys) KeyUp(k Key) {
	h.release(localSource, k)
}

// Clear releases every key of every source
func (h *HeldKeys) Clear() {
	h.mu.Lock()
	clear(h.keys)
	h.mu.Unlock()
}

// Source returns the keys held by one producer; releasing them leaves the
// same keys held by other producers untouched
func (h *HeldKeys) Source(id string) *Source {
	return &Source{held: h, id: id}
}

// Snapshot returns the keys held at now and drops expired ones
func (h *HeldKeys) Snapshot(now time.Time) map[Key]bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make(map[Key]bool, len(h.keys))
	for k, sources := range h.keys {
		for id, deadline := range sources {
			if expired(deadline, now) {
				delete(sources, id)
			}
		}
		if len(sources) == 0 {
			delete(h.keys, k)
			continue
		}
		out[k] = true
	}
	return out
}

func (h *HeldKeys) set(id string, k Key, deadline time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sources := h.keys[k]
	if sources == nil {
		sources = make(map[string]time.Time, 1)
		h.keys[k] = sources
	}
	sources[id] = deadline
}

func (h *HeldKeys) press(id string, k Key, now time.Time, initial, repeat time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sources := h.keys[k]
	if sources == nil {
		sources = make(map[string]time.Time, 1)
		h.keys[k] = sources
	}

	deadline, ok := sources[id]
	switch {
	case ok && deadline.IsZero():
		// Explicit key-down outlives any press
	case !ok || expired(deadline, now):
		sources[id] = now.Add(initial)
	default:
		if next := now.Add(repeat); next.After(deadline) {
			sources[id] = next
		}
	}
}

func (h *HeldKeys) release(id string, k Key) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sources := h.keys[k]
	delete(sources, id)
	if len(sources) == 0 {
		delete(h.keys, k)
	}
}

func (h *HeldKeys) releaseAll(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for k, sources := range h.keys {
		delete(sources, id)
		if len(sources) == 0 {
			delete(h.keys, k)
		}
	}
}

func expired(deadline, now time.Time) bool {
	return !deadline.IsZero() && !now.Before(deadline)
}

// Source is one producer's view of a HeldKeys set
type Source struct {
	held *HeldKeys
	id   string
}

// KeyDown marks k held by this source until KeyUp
func (s *Source) KeyDown(k Key) {
	s.held.set(s.id, k, time.Time{})
}

// KeyDownFor marks k held by this source until KeyUp or until ttl elapses from now
func (s *Source) KeyDownFor(k Key, now time.Time, ttl time.Duration) {
	s.held.set(s.id, k, now.Add(ttl))
}

// Press is HeldKeys.Press scoped to this source
func (s *Source) Press(k Key, now time.Time, initial, repeat time.Duration) {
	s.held.press(s.id, k, now, initial, repeat)
}

// KeyUp releases this source's hold on k
func (s *Source) KeyUp(k Key) {
	s.held.release(s.id, k)
}

// Release drops every key this source holds
func (s *Source) Release() {
	s.held.releaseAll(s.id)
}
