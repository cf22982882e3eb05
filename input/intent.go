package input

import "time"

// Intent is the per-frame movement snapshot
type Intent struct {
	Forward   bool `json:"forward,omitempty"`
	Backward  bool `json:"backward,omitempty"`
	TurnLeft  bool `json:"turn_left,omitempty"`
	TurnRight bool `json:"turn_right,omitempty"`
	Sprint    bool `json:"sprint,omitempty"`
}

// Any reports whether a movement or turn key is held; sprint alone does not count
func (i Intent) Any() bool {
	return i.Forward || i.Backward || i.TurnLeft || i.TurnRight
}

// Direction is +1 forward, -1 backward, 0 when neither or both are held
func (i Intent) Direction() float64 {
	switch {
	case i.Forward && !i.Backward:
		return 1
	case i.Backward && !i.Forward:
		return -1
	default:
		return 0
	}
}

// Turn is +1 for left, -1 for right, 0 when neither or both are held
func (i Intent) Turn() float64 {
	switch {
	case i.TurnLeft && !i.TurnRight:
		return 1
	case i.TurnRight && !i.TurnLeft:
		return -1
	default:
		return 0
	}
}

// IntentFromKeys builds an intent from a held-key snapshot
func (b Bindings) IntentFromKeys(held map[Key]bool) Intent {
	var in Intent
	for k := range held {
		switch b[k] {
		case ActionForward:
			in.Forward = true
		case ActionBackward:
			in.Backward = true
		case ActionTurnLeft:
			in.TurnLeft = true
		case ActionTurnRight:
			in.TurnRight = true
		case ActionSprint:
			in.Sprint = true
		}
	}
	return in
}

// Intent snapshots h at now and maps it through the bindings
func (b Bindings) Intent(h *HeldKeys, now time.Time) Intent {
	return b.IntentFromKeys(h.Snapshot(now))
}
