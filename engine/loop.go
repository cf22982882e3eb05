package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/tank-pusher/input"
)

// Command is a discrete request handled between frames
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandToggleView
	CommandTogglePause
)

// Loop drives a session at a fixed tick rate from the held-keys set
// All session access happens on the goroutine calling Run
type Loop struct {
	session  *Session
	held     *input.HeldKeys
	bindings input.Bindings

	provider TimeProvider
	clock    *FrameClock
	interval time.Duration

	commands chan Command

	// OnPausedTick runs instead of a step while paused
	OnPausedTick func()
}

// NewLoop creates a loop; interval is the tick period, maxDelta caps a single step
func NewLoop(s *Session, held *input.HeldKeys, bindings input.Bindings, provider TimeProvider, interval, maxDelta time.Duration) *Loop {
	return &Loop{
		session:  s,
		held:     held,
		bindings: bindings,
		provider: provider,
		clock:    NewFrameClock(provider, maxDelta),
		interval: interval,
		commands: make(chan Command, 16),
	}
}

// Send queues a command without blocking; returns false when the queue is full
func (l *Loop) Send(c Command) bool {
	select {
	case l.commands <- c:
		return true
	default:
		return false
	}
}

// Tick reads one intent snapshot and steps the session
// Returns false while paused
func (l *Loop) Tick() (Frame, bool) {
	dt := l.clock.Tick()
	if l.clock.Paused() {
		if l.OnPausedTick != nil {
			l.OnPausedTick()
		}
		return Frame{}, false
	}
	in := l.bindings.Intent(l.held, l.provider.Now())
	return l.session.Step(in, dt), true
}

// handle applies c and reports whether the loop should keep running
func (l *Loop) handle(c Command) bool {
	switch c {
	case CommandQuit:
		return false
	case CommandToggleView:
		l.session.ToggleView()
	case CommandTogglePause:
		l.session.SetPaused(l.clock.TogglePause())
	}
	return true
}

// Run ticks until ctx is cancelled or CommandQuit arrives
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	// Prime the clock so the first frame has a real delta
	l.clock.Tick()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case c := <-l.commands:
			if !l.handle(c) {
				return nil
			}

		case <-ticker.C:
			l.Tick()
		}
	}
}
