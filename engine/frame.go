package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/tank-pusher/camera"
	"github.com/lixenwraith/tank-pusher/input"
)

// Frame is a value snapshot of one session step, safe to hand to other goroutines
type Frame struct {
	Seq     uint64        `json:"seq"`
	Delta   time.Duration `json:"-"`
	DT      float64       `json:"dt"` // seconds
	Elapsed float64       `json:"elapsed"`
	Intent  input.Intent  `json:"intent"`

	Position mgl64.Vec3 `json:"position"`
	Yaw      float64    `json:"yaw"`
	Anim     string     `json:"anim"`

	// Movement outcome, empty when no translation was attempted
	Outcome  string `json:"outcome,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Obstacle int    `json:"obstacle,omitempty"`

	Transition   bool               `json:"transition,omitempty"`
	PlaybackRate float64            `json:"playback_rate"`
	Weights      map[string]float64 `json:"weights,omitempty"`

	Boxes  []BoxState  `json:"boxes,omitempty"`
	Camera camera.Pose `json:"-"`
}

// BoxState is the position of one pushable obstacle
type BoxState struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Position mgl64.Vec3 `json:"position"`
}

// Attempted reports whether the frame proposed a translation
func (f Frame) Attempted() bool {
	return f.Outcome != ""
}

// Blocked reports whether an attempted translation was rejected
func (f Frame) Blocked() bool {
	return f.Outcome == "blocked"
}

// Pushed reports whether a box moved this frame
func (f Frame) Pushed() bool {
	return f.Outcome == "push"
}

// FrameObserver receives every frame after the step completes
// Implementations must not block the frame loop
type FrameObserver interface {
	OnFrame(f Frame)
}

// FrameObserverFunc adapts a function to FrameObserver
type FrameObserverFunc func(f Frame)

func (fn FrameObserverFunc) OnFrame(f Frame) {
	fn(f)
}
