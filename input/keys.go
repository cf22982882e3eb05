package input

import "strings"

// Key is a normalized key name: lower-case letters or named keys like "up", "shift"
type Key string

const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyShift Key = "shift"
)

// NormalizeKey lower-cases a raw key name and maps common aliases
func NormalizeKey(raw string) Key {
	k := strings.ToLower(strings.TrimSpace(raw))
	switch k {
	case "arrowup":
		return KeyUp
	case "arrowdown":
		return KeyDown
	case "arrowleft":
		return KeyLeft
	case "arrowright":
		return KeyRight
	case "shiftleft", "shiftright":
		return KeyShift
	}
	return Key(k)
}

// Action is a movement command a key can be bound to
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBackward
	ActionTurnLeft
	ActionTurnRight
	ActionSprint
)

// Bindings maps keys to movement actions
type Bindings map[Key]Action

// DefaultBindings returns WASD plus arrows, Shift sprints
func DefaultBindings() Bindings {
	return Bindings{
		"w":      ActionForward,
		KeyUp:    ActionForward,
		"s":      ActionBackward,
		KeyDown:  ActionBackward,
		"a":      ActionTurnLeft,
		KeyLeft:  ActionTurnLeft,
		"d":      ActionTurnRight,
		KeyRight: ActionTurnRight,
		KeyShift: ActionSprint,
	}
}
