// Package animation provides the action/mixer collaborator the animation state
// machine drives, plus a clip-based reference implementation with weight fades
// and time-scale warping
package animation

// Action is a playable animation clip instance
type Action interface {
	Play()
	Stop()
	CrossFadeTo(target Action, durationSeconds float64, warp bool)
	SetEnabled(enabled bool)
	Enabled() bool
	SetEffectiveTimeScale(scale float64)
	SetEffectiveWeight(weight float64)
	SetTimeScale(scale float64)
	TimeScale() float64
}

// Mixer advances every action it owns
type Mixer interface {
	Update(dt float64)
}

// Clip describes an animation by name and length in seconds
type Clip struct {
	Name     string
	Duration float64
}

// ramp is a linear factor from..to over mixer time [start, end]
type ramp struct {
	start, end float64
	from, to   float64
}

func (r *ramp) at(t float64) float64 {
	if r.end <= r.start || t >= r.end {
		return r.to
	}
	if t <= r.start {
		return r.from
	}
	k := (t - r.start) / (r.end - r.start)
	return r.from + (r.to-r.from)*k
}
