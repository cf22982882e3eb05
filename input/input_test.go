package input

import (
	"sync"
	"testing"
	"time"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		raw  string
		want Key
	}{
		{"W", "w"},
		{" a ", "a"},
		{"ArrowUp", KeyUp},
		{"ShiftLeft", KeyShift},
		{"Shift", KeyShift},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.raw); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestIntentFromHeldKeys(t *testing.T) {
	h := NewHeldKeys()
	b := DefaultBindings()

	h.KeyDown("w")
	h.KeyDown(KeyShift)
	in := b.Intent(h, t0)
	if !in.Forward || !in.Sprint || in.Backward || in.TurnLeft || in.TurnRight {
		t.Errorf("intent = %+v", in)
	}
	if in.Direction() != 1 {
		t.Errorf("Direction = %v, want 1", in.Direction())
	}

	h.KeyUp("w")
	in = b.Intent(h, t0)
	if in.Any() {
		t.Errorf("sprint alone should not count as movement: %+v", in)
	}
}

func TestIntentOpposingKeysCancel(t *testing.T) {
	in := Intent{Forward: true, Backward: true, TurnLeft: true, TurnRight: true}
	if in.Direction() != 0 || in.Turn() != 0 {
		t.Errorf("Direction=%v Turn=%v, want 0/0", in.Direction(), in.Turn())
	}
	if !in.Any() {
		t.Error("held keys should still count as movement intent")
	}
}

func TestPressExpiresAfterWindow(t *testing.T) {
	h := NewHeldKeys()
	initial, repeat := 500*time.Millisecond, 150*time.Millisecond

	h.Press("a", t0, initial, repeat)
	if !h.Snapshot(t0.Add(400 * time.Millisecond))["a"] {
		t.Fatal("first press released before the auto-repeat delay")
	}

	// Auto-repeat extends the hold by the short window
	h.Press("a", t0.Add(450*time.Millisecond), initial, repeat)
	if !h.Snapshot(t0.Add(550 * time.Millisecond))["a"] {
		t.Fatal("repeat press did not extend the hold")
	}
	if h.Snapshot(t0.Add(650 * time.Millisecond))["a"] {
		t.Fatal("key still held after the repeat window")
	}

	// A press after expiry starts a fresh hold
	h.Press("a", t0.Add(time.Second), initial, repeat)
	if !h.Snapshot(t0.Add(1400 * time.Millisecond))["a"] {
		t.Error("press after release did not get the initial window")
	}
}

func TestPressHoldsAcrossRepeatDelay(t *testing.T) {
	tests := []struct {
		name  string
		delay time.Duration
	}{
		{"fast repeat", 250 * time.Millisecond},
		{"default repeat", 500 * time.Millisecond},
		{"slow repeat", 660 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeldKeys()
			initial, repeat := 700*time.Millisecond, 150*time.Millisecond
			next := t0
			h.Press("w", next, initial, repeat)
			next = next.Add(tt.delay)

			for now := t0; now.Before(t0.Add(2 * time.Second)); now = now.Add(16 * time.Millisecond) {
				for !next.After(now) {
					h.Press("w", next, initial, repeat)
					next = next.Add(33 * time.Millisecond)
				}
				if !h.Snapshot(now)["w"] {
					t.Fatalf("key dropped at %v", now.Sub(t0))
				}
			}
		})
	}
}

func TestPressDoesNotShortenExplicitHold(t *testing.T) {
	h := NewHeldKeys()
	h.KeyDown("d")
	h.Press("d", t0, time.Millisecond, time.Millisecond)

	if !h.Snapshot(t0.Add(time.Second))["d"] {
		t.Error("explicit key-down was turned into a timed hold")
	}
}

func TestSourcesHoldKeysIndependently(t *testing.T) {
	h := NewHeldKeys()
	peerA := h.Source("a")
	peerB := h.Source("b")

	h.KeyDown("w")
	peerA.KeyDown("w")
	peerA.KeyDown("d")
	peerB.KeyDownFor("d", t0, time.Second)

	peerA.KeyUp("w")
	if !h.Snapshot(t0)["w"] {
		t.Error("source key-up released the local hold")
	}

	peerA.Release()
	got := h.Snapshot(t0)
	if !got["w"] || !got["d"] {
		t.Errorf("after release held = %v, want w and d", got)
	}

	peerB.KeyUp("d")
	h.KeyUp("w")
	if got := h.Snapshot(t0); len(got) != 0 {
		t.Errorf("held = %v, want none", got)
	}
}

func TestKeyDownForExpires(t *testing.T) {
	h := NewHeldKeys()
	h.KeyDownFor("s", t0, time.Second)
	if !h.Snapshot(t0.Add(500 * time.Millisecond))["s"] {
		t.Fatal("key released early")
	}
	if h.Snapshot(t0.Add(2 * time.Second))["s"] {
		t.Error("timed key never released")
	}
}

func TestHeldKeysConcurrentProducers(t *testing.T) {
	h := NewHeldKeys()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k := Key(string(rune('a' + i)))
			for j := 0; j < 200; j++ {
				h.KeyDown(k)
				h.KeyUp(k)
			}
			h.KeyDown(k)
		}(i)
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				h.Snapshot(t0)
			}
		}
	}()

	wg.Wait()
	close(done)

	if got := len(h.Snapshot(t0)); got != 8 {
		t.Errorf("held = %d, want 8", got)
	}
}
