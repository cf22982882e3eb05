package main

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tank-pusher/engine"
	"github.com/lixenwraith/tank-pusher/input"
	"github.com/lixenwraith/tank-pusher/parameter"
)

// keyEvent is what one terminal key press means to the front-end
type keyEvent struct {
	Key     input.Key // movement key to press, empty if none
	Shift   bool      // press sprint alongside Key
	Command engine.Command
	Mute    bool
}

// translateKey maps a tcell key event; terminals report Shift only through
// upper-case runes or the Shift modifier on named keys
func translateKey(ev *tcell.EventKey) keyEvent {
	shift := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return keyEvent{Command: engine.CommandQuit}
	case tcell.KeyUp:
		return keyEvent{Key: input.KeyUp, Shift: shift}
	case tcell.KeyDown:
		return keyEvent{Key: input.KeyDown, Shift: shift}
	case tcell.KeyLeft:
		return keyEvent{Key: input.KeyLeft, Shift: shift}
	case tcell.KeyRight:
		return keyEvent{Key: input.KeyRight, Shift: shift}
	case tcell.KeyRune:
	default:
		return keyEvent{}
	}

	r := ev.Rune()
	lower := unicode.ToLower(r)
	if lower != r {
		shift = true
	}

	switch lower {
	case 'q':
		return keyEvent{Command: engine.CommandQuit}
	case 'v':
		return keyEvent{Command: engine.CommandToggleView}
	case 'p':
		return keyEvent{Command: engine.CommandTogglePause}
	case 'm':
		return keyEvent{Mute: true}
	}
	return keyEvent{Key: input.NormalizeKey(string(lower)), Shift: shift}
}

// pressKey holds the movement keys of ev; the first press of a key bridges the
// auto-repeat delay, later repeats extend by the short window
func pressKey(held *input.HeldKeys, ev keyEvent, now time.Time) {
	if ev.Key == "" {
		return
	}
	held.Press(ev.Key, now, parameter.KeyInitialHoldWindow, parameter.KeyHoldWindow)
	if ev.Shift {
		held.Press(input.KeyShift, now, parameter.KeyInitialHoldWindow, parameter.KeyHoldWindow)
	}
}
