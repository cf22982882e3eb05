package engine

import (
	"sync"
	"time"
)

// TimeProvider abstracts the wall clock so loops can be driven from tests
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// FrameClock turns wall-clock readings into per-frame deltas
// Deltas are capped at maxDelta; while paused every tick is zero and the pause
// interval never reaches the simulation
type FrameClock struct {
	provider TimeProvider
	maxDelta time.Duration

	last    time.Time
	started bool
	paused  bool
}

// NewFrameClock creates a clock reading provider; maxDelta <= 0 disables the cap
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{provider: provider, maxDelta: maxDelta}
}

// Tick returns the time since the previous tick; the first tick returns zero
func (c *FrameClock) Tick() time.Duration {
	now := c.provider.Now()
	if !c.started || c.paused {
		c.last = now
		c.started = true
		return 0
	}

	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// Pause freezes simulation time
func (c *FrameClock) Pause() {
	c.paused = true
}

// Resume continues from the current reading, skipping the paused interval
func (c *FrameClock) Resume() {
	if c.paused {
		c.paused = false
		c.last = c.provider.Now()
	}
}

// TogglePause flips the pause state and returns the new state
func (c *FrameClock) TogglePause() bool {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
	return c.paused
}

func (c *FrameClock) Paused() bool {
	return c.paused
}
